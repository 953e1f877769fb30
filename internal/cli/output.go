// Package cli provides output utilities for presenting and exporting derived
// transforms.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/agbru/wincalc/internal/config"
	"github.com/agbru/wincalc/internal/exact"
	"github.com/agbru/wincalc/internal/winograd"
	"github.com/agbru/wincalc/pkg/models"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	// JSON outputs the result as JSON instead of rendered matrices.
	JSON bool
	// Quiet mode suppresses colors, headers, and informational messages.
	Quiet bool
	// Form selects the presentation: filter, convolution, or both.
	Form string
}

// FormatMatrix renders a matrix as aligned bracketed rows. Entries are
// right-aligned per column so rational and surd entries of different widths
// line up.
//
// Parameters:
//   - m: The matrix to render.
//
// Returns:
//   - string: The multi-line rendering, without a trailing newline.
func FormatMatrix(m exact.Matrix) string {
	rows := m.Strings()
	widths := make([]int, m.Cols())
	for _, row := range rows {
		for j, s := range row {
			if len(s) > widths[j] {
				widths[j] = len(s)
			}
		}
	}

	var builder strings.Builder
	for i, row := range rows {
		if i > 0 {
			builder.WriteByte('\n')
		}
		builder.WriteString("[")
		for j, s := range row {
			builder.WriteString(fmt.Sprintf(" %*s", widths[j], s))
		}
		builder.WriteString(" ]")
	}
	return builder.String()
}

// writeNamedMatrix prints a matrix under its name, colored unless quiet.
func writeNamedMatrix(out io.Writer, name string, m exact.Matrix, quiet bool) {
	if quiet {
		fmt.Fprintf(out, "%s =\n%s\n", name, FormatMatrix(m))
		return
	}
	fmt.Fprintf(out, "%s%s =%s\n%s%s%s\n", ColorBold(), name, ColorReset(), ColorGreen(), FormatMatrix(m), ColorReset())
}

// DisplayTransforms formats and prints a completed derivation.
// The filter form shows the FIR transforms AT, G, BT; the convolution form
// shows the transposed linear-convolution matrices A, G, B. Under the scale
// policy the diagonal scale matrix F is shown as well, since the transforms
// alone do not carry the fractions.
//
// Parameters:
//   - out: The io.Writer for the output.
//   - res: The completed derivation.
//   - form: The presentation form (filter, convolution, or both).
//   - quiet: If true, suppresses colors and the summary header.
func DisplayTransforms(out io.Writer, res winograd.Result, form string, quiet bool) {
	t := res.Transforms

	if !quiet {
		fmt.Fprintf(out, "\n%sF(%d,%d)%s transforms, fractions in %s%s%s",
			ColorBold(), t.N, t.R, ColorReset(), ColorMagenta(), t.Policy, ColorReset())
		if t.Precision > 0 {
			fmt.Fprintf(out, ", %s%d significant digits%s", ColorCyan(), t.Precision, ColorReset())
		}
		fmt.Fprintln(out)
		if res.Verified {
			fmt.Fprintf(out, "%s✓ Symbolic verification passed%s\n", ColorGreen(), ColorReset())
		}
		fmt.Fprintln(out)
	}

	if form == config.FormFilter || form == config.FormBoth {
		writeNamedMatrix(out, "AT", t.AT, quiet)
		writeNamedMatrix(out, "G", t.G, quiet)
		writeNamedMatrix(out, "BT", t.BT, quiet)
	}
	if form == config.FormConvolution || form == config.FormBoth {
		writeNamedMatrix(out, "A", t.AT.Transpose(), quiet)
		if form != config.FormBoth {
			writeNamedMatrix(out, "G", t.G, quiet)
		}
		writeNamedMatrix(out, "B", t.BT.Transpose(), quiet)
	}
	if t.Policy == winograd.FractionsInScale {
		writeNamedMatrix(out, "f", t.F, quiet)
	}
}

// BuildModel converts a completed derivation into its serialized form.
//
// Parameters:
//   - res: The completed derivation.
//   - points: The interpolation points the derivation used.
//   - form: The presentation form; the convolution matrices A and B are
//     included when it is convolution or both.
//
// Returns:
//   - models.DerivationResult: The serializable result.
func BuildModel(res winograd.Result, points []exact.Scalar, form string) models.DerivationResult {
	t := res.Transforms
	pointStrs := make([]string, len(points))
	for i, p := range points {
		pointStrs[i] = p.String()
	}

	result := models.DerivationResult{
		N:          t.N,
		R:          t.R,
		Alpha:      t.Alpha(),
		Policy:     t.Policy.String(),
		Points:     pointStrs,
		Precision:  t.Precision,
		AT:         t.AT.Strings(),
		G:          t.G.Strings(),
		BT:         t.BT.Strings(),
		F:          t.F.Strings(),
		Verified:   res.Verified,
		DurationMs: float64(res.Duration.Microseconds()) / 1000.0,
	}
	if form == config.FormConvolution || form == config.FormBoth {
		result.A = t.AT.Transpose().Strings()
		result.B = t.BT.Transpose().Strings()
	}
	return result
}

// WriteResultToFile writes a derivation result to a file as plain text with a
// commented header.
//
// Parameters:
//   - res: The completed derivation.
//   - points: The interpolation points the derivation used.
//   - config: Output configuration; OutputFile must be non-empty.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteResultToFile(res winograd.Result, points []exact.Scalar, outputConfig OutputConfig) error {
	if outputConfig.OutputFile == "" {
		return nil
	}

	// Ensure directory exists
	dir := filepath.Dir(outputConfig.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(outputConfig.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if outputConfig.JSON {
		data, err := BuildModel(res, points, outputConfig.Form).ToJSON()
		if err != nil {
			return fmt.Errorf("failed to serialize result: %w", err)
		}
		if _, err := file.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		return nil
	}

	t := res.Transforms
	pointStrs := make([]string, len(points))
	for i, p := range points {
		pointStrs[i] = p.String()
	}

	// Write header
	fmt.Fprintf(file, "# Winograd transform derivation F(%d,%d)\n", t.N, t.R)
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Points: %s\n", strings.Join(pointStrs, ", "))
	fmt.Fprintf(file, "# Fractions in: %s\n", t.Policy)
	if t.Precision > 0 {
		fmt.Fprintf(file, "# Precision: %d significant digits\n", t.Precision)
	}
	fmt.Fprintf(file, "# Verified: %t\n", res.Verified)
	fmt.Fprintf(file, "# Duration: %s\n", FormatExecutionDuration(res.Duration))
	fmt.Fprintf(file, "\n")

	DisplayTransforms(file, res, outputConfig.Form, true)
	return nil
}

// DisplayResultWithConfig displays a derivation result with the given output
// configuration. This is a unified function that handles all output modes.
//
// Parameters:
//   - out: The output writer.
//   - res: The completed derivation.
//   - points: The interpolation points the derivation used.
//   - outputConfig: Output configuration.
//
// Returns:
//   - error: An error if serialization or file output fails.
func DisplayResultWithConfig(out io.Writer, res winograd.Result, points []exact.Scalar, outputConfig OutputConfig) error {
	if outputConfig.JSON {
		data, err := BuildModel(res, points, outputConfig.Form).ToJSON()
		if err != nil {
			return fmt.Errorf("failed to serialize result: %w", err)
		}
		fmt.Fprintln(out, string(data))
	} else {
		DisplayTransforms(out, res, outputConfig.Form, outputConfig.Quiet)
		if !outputConfig.Quiet {
			fmt.Fprintf(out, "\nDerivation time: %s%s%s\n", ColorGreen(), FormatExecutionDuration(res.Duration), ColorReset())
		}
	}

	// Save to file if requested
	if outputConfig.OutputFile != "" {
		if err := WriteResultToFile(res, points, outputConfig); err != nil {
			return err
		}
		if !outputConfig.Quiet {
			fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
				ColorGreen(), ColorCyan(), outputConfig.OutputFile, ColorReset())
		}
	}

	return nil
}
