// Command generate-golden writes a JSON snapshot of the classical F(n, r)
// derivations with exact arithmetic, one entry per instance and policy. The
// derivation tests pin the same reference matrices inline; the snapshot is
// for diffing between revisions and for external consumers.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/agbru/wincalc/internal/winograd"
)

// GoldenCase represents a single derivation case in the golden file.
type GoldenCase struct {
	N      int        `json:"n"`
	R      int        `json:"r"`
	Points string     `json:"points"`
	Policy string     `json:"policy"`
	AT     [][]string `json:"at"`
	G      [][]string `json:"g"`
	BT     [][]string `json:"bt"`
	F      [][]string `json:"f"`
}

// caseSpec names a derivation instance to record.
type caseSpec struct {
	n, r   int
	points string
	policy winograd.Policy
}

func main() {
	outputDir := flag.String("out", "internal/winograd/testdata", "Output directory for the golden file")
	flag.Parse()

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	filename := filepath.Join(*outputDir, "transforms_golden.json")
	file, err := os.Create(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	// The classical instances from the minimal-filtering literature, plus the
	// non-default policies for the smallest one.
	specs := []caseSpec{
		{2, 3, "0,1,-1", winograd.FractionsInFilter},
		{2, 3, "0,1,-1", winograd.FractionsInOutput},
		{2, 3, "0,1,-1", winograd.FractionsInInput},
		{2, 3, "0,1,-1", winograd.FractionsInScale},
		{4, 3, "0,1,-1,2,-2", winograd.FractionsInFilter},
		{3, 4, "0,1,-1,2,-2", winograd.FractionsInFilter},
		{6, 3, "0,1,-1,2,-2,1/2,-1/2", winograd.FractionsInFilter},
		{4, 5, "0,1,-1,2,-2,1/2,-1/2", winograd.FractionsInFilter},
	}

	var data []GoldenCase

	fmt.Println("Generating golden transforms...")

	for _, spec := range specs {
		points, err := winograd.ParsePoints(spec.points)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing points %q: %v\n", spec.points, err)
			os.Exit(1)
		}
		t, err := winograd.CookToom(points, spec.n, spec.r, spec.policy, 0)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error deriving F(%d,%d): %v\n", spec.n, spec.r, err)
			os.Exit(1)
		}
		data = append(data, GoldenCase{
			N:      spec.n,
			R:      spec.r,
			Points: spec.points,
			Policy: spec.policy.String(),
			AT:     t.AT.Strings(),
			G:      t.G.Strings(),
			BT:     t.BT.Strings(),
			F:      t.F.Strings(),
		})
		fmt.Printf("Generated F(%d,%d), fractions in %s\n", spec.n, spec.r, spec.policy)
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated golden file at %s\n", filename)
}
