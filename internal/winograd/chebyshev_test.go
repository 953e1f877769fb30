package winograd

import (
	"math"
	"testing"
)

// TestChebyshevPointsExact tests the closed-form point sets.
func TestChebyshevPointsExact(t *testing.T) {
	tests := []struct {
		n    int
		want []string
	}{
		{1, []string{"0"}},
		{2, []string{"sqrt(2)/2", "-sqrt(2)/2"}},
		{3, []string{"sqrt(3)/2", "0", "-sqrt(3)/2"}},
	}
	for _, tc := range tests {
		points, err := ChebyshevPoints(tc.n, 0)
		if err != nil {
			t.Fatalf("ChebyshevPoints(%d, 0): %v", tc.n, err)
		}
		for i, w := range tc.want {
			if got := points[i].String(); got != w {
				t.Errorf("n=%d point %d = %s, want %s", tc.n, i, got, w)
			}
		}
	}
}

// TestChebyshevPointsSymbolic tests that points without a closed form stay
// symbolic and numerically correct.
func TestChebyshevPointsSymbolic(t *testing.T) {
	points, err := ChebyshevPoints(4, 0)
	if err != nil {
		t.Fatalf("ChebyshevPoints(4, 0): %v", err)
	}
	if got := points[0].String(); got != "cos(pi/8)" {
		t.Errorf("point 0 = %s, want cos(pi/8)", got)
	}
	for k, p := range points {
		got, _ := p.Float(64).Float64()
		want := math.Cos(float64(2*k+1) * math.Pi / 8)
		if math.Abs(got-want) > 1e-15 {
			t.Errorf("point %d = %v, want %v", k, got, want)
		}
	}
}

// TestChebyshevPointsPrecision tests the decimal evaluation mode.
func TestChebyshevPointsPrecision(t *testing.T) {
	points, err := ChebyshevPoints(5, 15)
	if err != nil {
		t.Fatalf("ChebyshevPoints(5, 15): %v", err)
	}
	for k, p := range points {
		got, _ := p.Float(64).Float64()
		want := math.Cos(float64(2*k+1) * math.Pi / 10)
		if math.Abs(got-want) > 1e-15 {
			t.Errorf("point %d = %v, want %v", k, got, want)
		}
	}
}

// TestChebyshevPointsOrdering tests the descending order from +1 to -1.
func TestChebyshevPointsOrdering(t *testing.T) {
	points, err := ChebyshevPoints(6, 0)
	if err != nil {
		t.Fatalf("ChebyshevPoints(6, 0): %v", err)
	}
	for i := 1; i < len(points); i++ {
		if points[i-1].Sub(points[i]).Sign() != 1 {
			t.Errorf("points %d and %d are not strictly decreasing", i-1, i)
		}
	}
}

// TestChebyshevPointsInvalid tests the count guard.
func TestChebyshevPointsInvalid(t *testing.T) {
	if _, err := ChebyshevPoints(0, 0); err == nil {
		t.Error("expected error for zero points")
	}
}

// TestCookToomOnChebyshevPoints tests an exact derivation over a quadratic
// extension: the three-point set lives entirely in one surd field, so the
// identity check stays fully symbolic.
func TestCookToomOnChebyshevPoints(t *testing.T) {
	points, err := ChebyshevPoints(3, 0)
	if err != nil {
		t.Fatalf("ChebyshevPoints(3, 0): %v", err)
	}
	tr, err := CookToom(points, 2, 3, FractionsInFilter, 0)
	if err != nil {
		t.Fatalf("CookToom: %v", err)
	}
	if err := VerifyTransforms(tr); err != nil {
		t.Errorf("Chebyshev-point derivation failed verification: %v", err)
	}
}
