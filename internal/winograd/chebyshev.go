package winograd

import (
	"fmt"

	"github.com/agbru/wincalc/internal/exact"
)

// ChebyshevPoints returns the n roots of the degree-n Chebyshev polynomial
// of the first kind, cos((2k+1)π/(2n)) for k = 0..n-1, ordered from the
// point nearest +1 down to the point nearest -1. They are better
// conditioned than integer points for larger transforms and can be fed
// directly to CookToom.
//
// With precision 0 the points are exact: rationals or quadratic surds
// where a closed form exists (e.g. n = 3 gives √3/2, 0, -√3/2), symbolic
// cosines otherwise. A positive precision yields fixed-point decimals with
// that many significant digits.
func ChebyshevPoints(n, precision int) ([]exact.Scalar, error) {
	if n < 1 {
		return nil, fmt.Errorf("winograd: need at least one Chebyshev point, got %d", n)
	}
	points := make([]exact.Scalar, n)
	for k := 0; k < n; k++ {
		p := exact.CosPi(int64(2*k+1), int64(2*n))
		if precision > 0 {
			p = exact.RoundScalar(p, precision)
		}
		points[k] = p
	}
	return points, nil
}
