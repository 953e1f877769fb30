package winograd

import (
	"errors"
	"reflect"
	"testing"

	"github.com/agbru/wincalc/internal/exact"
)

// mustPoints parses a point list or fails the test.
func mustPoints(t *testing.T, s string) []exact.Scalar {
	t.Helper()
	points, err := ParsePoints(s)
	if err != nil {
		t.Fatalf("ParsePoints(%q): %v", s, err)
	}
	return points
}

// TestParsePoints tests the comma-separated point syntax.
func TestParsePoints(t *testing.T) {
	points, err := ParsePoints("0, 1, -1, 1/2, -0.5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := make([]string, len(points))
	for i, p := range points {
		got[i] = p.String()
	}
	want := []string{"0", "1", "-1", "1/2", "-1/2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("points = %v, want %v", got, want)
	}

	// Empty fields are skipped
	points, err = ParsePoints("0,,1,")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 2 {
		t.Errorf("got %d points, want 2", len(points))
	}

	if _, err := ParsePoints("0,x,1"); err == nil {
		t.Error("expected error for a non-numeric point")
	}
}

// TestCookToomInputValidation tests the sentinel errors for bad requests.
func TestCookToomInputValidation(t *testing.T) {
	points := mustPoints(t, "0,1,-1")

	if _, err := CookToom(points, 0, 3, FractionsInFilter, 0); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("n=0: got %v, want ErrInvalidSize", err)
	}
	if _, err := CookToom(points, 2, -1, FractionsInFilter, 0); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("r=-1: got %v, want ErrInvalidSize", err)
	}
	if _, err := CookToom(mustPoints(t, "0,1"), 2, 3, FractionsInFilter, 0); !errors.Is(err, ErrTooFewPoints) {
		t.Errorf("2 points for F(2,3): got %v, want ErrTooFewPoints", err)
	}
	if _, err := CookToom(mustPoints(t, "0,1,1"), 2, 3, FractionsInFilter, 0); !errors.Is(err, ErrDuplicatePoints) {
		t.Errorf("repeated point: got %v, want ErrDuplicatePoints", err)
	}
	if _, err := CookToom(points, 2, 3, Policy(99), 0); err == nil {
		t.Error("expected error for an out-of-range policy")
	}
}

// TestCookToomExtraPointsIgnored tests that surplus points beyond α - 1 are
// not consulted, even when they would collide.
func TestCookToomExtraPointsIgnored(t *testing.T) {
	points := mustPoints(t, "0,1,-1,0")
	if _, err := CookToom(points, 2, 3, FractionsInFilter, 0); err != nil {
		t.Errorf("unexpected error with surplus duplicate: %v", err)
	}
}

// TestCookToomF23 tests the classical F(2,3) derivation on points 0, 1, -1
// under every fraction-placement policy.
func TestCookToomF23(t *testing.T) {
	points := mustPoints(t, "0,1,-1")

	scaledBT := [][]string{
		{"1", "0", "-1", "0"},
		{"0", "1", "1", "0"},
		{"0", "-1", "1", "0"},
		{"0", "-1", "0", "1"},
	}
	integerAT := [][]string{
		{"1", "1", "1", "0"},
		{"0", "1", "-1", "1"},
	}
	integerG := [][]string{
		{"1", "0", "0"},
		{"1", "1", "1"},
		{"1", "-1", "1"},
		{"0", "0", "1"},
	}
	scale := [][]string{
		{"1", "0", "0", "0"},
		{"0", "2", "0", "0"},
		{"0", "0", "2", "0"},
		{"0", "0", "0", "1"},
	}

	tests := []struct {
		policy     Policy
		at, g, bt  [][]string
	}{
		{
			policy: FractionsInFilter,
			at:     integerAT,
			g: [][]string{
				{"1", "0", "0"},
				{"1/2", "1/2", "1/2"},
				{"1/2", "-1/2", "1/2"},
				{"0", "0", "1"},
			},
			bt: scaledBT,
		},
		{
			policy: FractionsInOutput,
			at: [][]string{
				{"1", "1/2", "1/2", "0"},
				{"0", "1/2", "-1/2", "1"},
			},
			g:  integerG,
			bt: scaledBT,
		},
		{
			policy: FractionsInInput,
			at:     integerAT,
			g:      integerG,
			bt: [][]string{
				{"1", "0", "-1", "0"},
				{"0", "1/2", "1/2", "0"},
				{"0", "-1/2", "1/2", "0"},
				{"0", "-1", "0", "1"},
			},
		},
		{
			policy: FractionsInScale,
			at:     integerAT,
			g:      integerG,
			bt:     scaledBT,
		},
	}

	for _, tc := range tests {
		t.Run(tc.policy.String(), func(t *testing.T) {
			tr, err := CookToom(points, 2, 3, tc.policy, 0)
			if err != nil {
				t.Fatalf("CookToom: %v", err)
			}
			if tr.Alpha() != 4 {
				t.Errorf("Alpha() = %d, want 4", tr.Alpha())
			}
			if got := tr.AT.Strings(); !reflect.DeepEqual(got, tc.at) {
				t.Errorf("AT = %v, want %v", got, tc.at)
			}
			if got := tr.G.Strings(); !reflect.DeepEqual(got, tc.g) {
				t.Errorf("G = %v, want %v", got, tc.g)
			}
			if got := tr.BT.Strings(); !reflect.DeepEqual(got, tc.bt) {
				t.Errorf("BT = %v, want %v", got, tc.bt)
			}
			if got := tr.F.Strings(); !reflect.DeepEqual(got, scale) {
				t.Errorf("F = %v, want %v", got, scale)
			}
		})
	}
}

// TestCookToomF43 tests the classical F(4,3) derivation on points
// 0, 1, -1, 2, -2 against the reference matrices from the minimal-filtering
// literature.
func TestCookToomF43(t *testing.T) {
	points := mustPoints(t, "0,1,-1,2,-2")
	tr, err := CookToom(points, 4, 3, FractionsInFilter, 0)
	if err != nil {
		t.Fatalf("CookToom: %v", err)
	}

	wantAT := [][]string{
		{"1", "1", "1", "1", "1", "0"},
		{"0", "1", "-1", "2", "-2", "0"},
		{"0", "1", "1", "4", "4", "0"},
		{"0", "1", "-1", "8", "-8", "1"},
	}
	wantG := [][]string{
		{"1/4", "0", "0"},
		{"-1/6", "-1/6", "-1/6"},
		{"-1/6", "1/6", "-1/6"},
		{"1/24", "1/12", "1/6"},
		{"1/24", "-1/12", "1/6"},
		{"0", "0", "1"},
	}
	wantBT := [][]string{
		{"4", "0", "-5", "0", "1", "0"},
		{"0", "-4", "-4", "1", "1", "0"},
		{"0", "4", "-4", "-1", "1", "0"},
		{"0", "-2", "-1", "2", "1", "0"},
		{"0", "2", "-1", "-2", "1", "0"},
		{"0", "4", "0", "-5", "0", "1"},
	}
	wantFDiag := []string{"4", "-6", "-6", "24", "24", "1"}

	if got := tr.AT.Strings(); !reflect.DeepEqual(got, wantAT) {
		t.Errorf("AT = %v, want %v", got, wantAT)
	}
	if got := tr.G.Strings(); !reflect.DeepEqual(got, wantG) {
		t.Errorf("G = %v, want %v", got, wantG)
	}
	if got := tr.BT.Strings(); !reflect.DeepEqual(got, wantBT) {
		t.Errorf("BT = %v, want %v", got, wantBT)
	}
	for i, want := range wantFDiag {
		if got := tr.F.At(i, i).String(); got != want {
			t.Errorf("F[%d][%d] = %s, want %s", i, i, got, want)
		}
	}
}

// TestCookToomF63 tests the classical F(6,3) derivation on points
// 0, 1, -1, 2, -2, 1/2, -1/2 against the reference matrices from the
// minimal-filtering literature.
func TestCookToomF63(t *testing.T) {
	points := mustPoints(t, "0,1,-1,2,-2,1/2,-1/2")
	tr, err := CookToom(points, 6, 3, FractionsInFilter, 0)
	if err != nil {
		t.Fatalf("CookToom: %v", err)
	}

	wantAT := [][]string{
		{"1", "1", "1", "1", "1", "1", "1", "0"},
		{"0", "1", "-1", "2", "-2", "1/2", "-1/2", "0"},
		{"0", "1", "1", "4", "4", "1/4", "1/4", "0"},
		{"0", "1", "-1", "8", "-8", "1/8", "-1/8", "0"},
		{"0", "1", "1", "16", "16", "1/16", "1/16", "0"},
		{"0", "1", "-1", "32", "-32", "1/32", "-1/32", "1"},
	}
	wantG := [][]string{
		{"1", "0", "0"},
		{"-2/9", "-2/9", "-2/9"},
		{"-2/9", "2/9", "-2/9"},
		{"1/90", "1/45", "2/45"},
		{"1/90", "-1/45", "2/45"},
		{"32/45", "16/45", "8/45"},
		{"32/45", "-16/45", "8/45"},
		{"0", "0", "1"},
	}
	wantBT := [][]string{
		{"1", "0", "-21/4", "0", "21/4", "0", "-1", "0"},
		{"0", "1", "1", "-17/4", "-17/4", "1", "1", "0"},
		{"0", "-1", "1", "17/4", "-17/4", "-1", "1", "0"},
		{"0", "1/2", "1/4", "-5/2", "-5/4", "2", "1", "0"},
		{"0", "-1/2", "1/4", "5/2", "-5/4", "-2", "1", "0"},
		{"0", "2", "4", "-5/2", "-5", "1/2", "1", "0"},
		{"0", "-2", "4", "5/2", "-5", "-1/2", "1", "0"},
		{"0", "-1", "0", "21/4", "0", "-21/4", "0", "1"},
	}
	wantFDiag := []string{"1", "-9/2", "-9/2", "90", "90", "45/32", "45/32", "1"}

	if got := tr.AT.Strings(); !reflect.DeepEqual(got, wantAT) {
		t.Errorf("AT = %v, want %v", got, wantAT)
	}
	if got := tr.G.Strings(); !reflect.DeepEqual(got, wantG) {
		t.Errorf("G = %v, want %v", got, wantG)
	}
	if got := tr.BT.Strings(); !reflect.DeepEqual(got, wantBT) {
		t.Errorf("BT = %v, want %v", got, wantBT)
	}
	for i, want := range wantFDiag {
		if got := tr.F.At(i, i).String(); got != want {
			t.Errorf("F[%d][%d] = %s, want %s", i, i, got, want)
		}
	}
}

// TestScaleSignNormalization tests that the leading scale entry is flipped
// to be non-negative regardless of point ordering.
func TestScaleSignNormalization(t *testing.T) {
	for _, pts := range []string{"0,1,-1", "1,0,-1", "-1,1,0", "2,0,1,-1,-2"} {
		points := mustPoints(t, pts)
		n := len(points) - 1
		tr, err := CookToom(points, n, 2, FractionsInFilter, 0)
		if err != nil {
			t.Fatalf("CookToom on %q: %v", pts, err)
		}
		if tr.F.At(0, 0).Sign() < 0 {
			t.Errorf("points %q: F[0][0] = %s, want non-negative", pts, tr.F.At(0, 0))
		}
	}
}

// TestCookToomShapes tests the documented matrix shapes for a larger instance.
func TestCookToomShapes(t *testing.T) {
	points := mustPoints(t, "0,1,-1,2,-2,1/2,-1/2")
	tr, err := CookToom(points, 6, 3, FractionsInFilter, 0)
	if err != nil {
		t.Fatalf("CookToom: %v", err)
	}
	alpha := tr.Alpha()
	if tr.AT.Rows() != 6 || tr.AT.Cols() != alpha {
		t.Errorf("AT is %dx%d, want 6x%d", tr.AT.Rows(), tr.AT.Cols(), alpha)
	}
	if tr.G.Rows() != alpha || tr.G.Cols() != 3 {
		t.Errorf("G is %dx%d, want %dx3", tr.G.Rows(), tr.G.Cols(), alpha)
	}
	if tr.BT.Rows() != alpha || tr.BT.Cols() != alpha {
		t.Errorf("BT is %dx%d, want %dx%d", tr.BT.Rows(), tr.BT.Cols(), alpha, alpha)
	}
	if tr.F.Rows() != alpha || tr.F.Cols() != alpha {
		t.Errorf("F is %dx%d, want %dx%d", tr.F.Rows(), tr.F.Cols(), alpha, alpha)
	}
	// The infinite point always carries unit scale
	if got := tr.F.At(alpha-1, alpha-1).String(); got != "1" {
		t.Errorf("last scale entry = %s, want 1", got)
	}
}

// TestCookToomPrecision tests the decimal evaluation mode.
func TestCookToomPrecision(t *testing.T) {
	points := mustPoints(t, "0,1,-1")
	tr, err := CookToom(points, 2, 3, FractionsInFilter, 4)
	if err != nil {
		t.Fatalf("CookToom: %v", err)
	}
	if tr.Precision != 4 {
		t.Errorf("Precision = %d, want 4", tr.Precision)
	}
	if got := tr.G.At(1, 0).String(); got != "0.5" {
		t.Errorf("rounded G entry = %s, want 0.5", got)
	}
	if _, ok := tr.G.At(1, 0).(exact.Dec); !ok {
		t.Errorf("rounded entry has type %T, want exact.Dec", tr.G.At(1, 0))
	}
}

// TestPolicyRoundTrip tests the name mapping in both directions.
func TestPolicyRoundTrip(t *testing.T) {
	for _, p := range Policies() {
		got, err := ParsePolicy(p.String())
		if err != nil {
			t.Fatalf("ParsePolicy(%q): %v", p.String(), err)
		}
		if got != p {
			t.Errorf("round trip of %v produced %v", p, got)
		}
	}
	if _, err := ParsePolicy("weights"); err == nil {
		t.Error("expected error for an unknown policy name")
	}
}
