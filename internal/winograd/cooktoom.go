package winograd

import (
	"fmt"

	"github.com/agbru/wincalc/internal/exact"
)

// Policy selects where the rational fractions produced by the Lagrange
// normalization are concentrated in the returned transforms. All four
// policies share one composition path; the policy is consumed as a tagged
// variant so the sign-normalization and validation logic stays centralized.
type Policy int

const (
	// FractionsInFilter places fractions in the filter transform G
	// (the default, and the usual choice for CNN inference where G is
	// applied to the weights once, offline).
	FractionsInFilter Policy = iota
	// FractionsInOutput places fractions in the output transform AT.
	FractionsInOutput
	// FractionsInInput places fractions in the input transform BT.
	FractionsInInput
	// FractionsInScale keeps all three transforms integer and leaves the
	// fractions entirely in the scale matrix F, which the caller must apply
	// separately. Transforms produced under this policy do not satisfy the
	// convolution identity on their own and are exempt from verification.
	FractionsInScale
)

// Policies returns all fraction-placement policies in enum order.
func Policies() []Policy {
	return []Policy{FractionsInFilter, FractionsInOutput, FractionsInInput, FractionsInScale}
}

// String implements fmt.Stringer.
func (p Policy) String() string {
	switch p {
	case FractionsInFilter:
		return "filter"
	case FractionsInOutput:
		return "output"
	case FractionsInInput:
		return "input"
	case FractionsInScale:
		return "scale"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ParsePolicy converts a policy name ("filter", "output", "input", "scale")
// into a Policy.
func ParsePolicy(s string) (Policy, error) {
	for _, p := range Policies() {
		if p.String() == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("winograd: unknown fraction-placement policy %q", s)
}

// Transforms is the derived transform triple plus the diagonal scale matrix
// used in its construction.
//
// Shapes: AT is n×α, G is α×r, BT is α×α, and F is α×α diagonal with the
// last diagonal entry fixed at 1 for the point at infinity.
type Transforms struct {
	AT exact.Matrix
	G  exact.Matrix
	BT exact.Matrix
	F  exact.Matrix

	N      int
	R      int
	Policy Policy
	// Precision is the significant-digit count of the decimal evaluation
	// mode, or 0 when all entries are exact.
	Precision int
}

// Alpha returns the transform dimension n + r - 1.
func (t Transforms) Alpha() int { return t.N + t.R - 1 }

// Round returns the transforms with every matrix entry converted to its
// fixed-precision decimal form at the given significant-digit count.
// Entries are already in canonical exact form, so equivalent symbolic
// values round identically.
func (t Transforms) Round(digits int) Transforms {
	t.AT = t.AT.Round(digits)
	t.G = t.G.Round(digits)
	t.BT = t.BT.Round(digits)
	t.F = t.F.Round(digits)
	t.Precision = digits
	return t
}

// CookToom derives the Winograd transform triple for F(n, r) from the given
// interpolation points. At least n + r - 2 points are required; extras are
// ignored. precision 0 keeps every entry exact; a positive precision
// converts all entries to fixed-point decimals with that many significant
// digits after the exact derivation completes.
//
// The first diagonal entry of the scale matrix is normalized to be
// non-negative by negating its row, so the derived algorithm is
// output-sign-consistent regardless of point ordering.
func CookToom(points []exact.Scalar, n, r int, policy Policy, precision int) (Transforms, error) {
	if n < 1 || r < 1 {
		return Transforms{}, fmt.Errorf("%w: n=%d, r=%d", ErrInvalidSize, n, r)
	}
	if policy < FractionsInFilter || policy > FractionsInScale {
		return Transforms{}, fmt.Errorf("winograd: unknown fraction-placement policy %d", int(policy))
	}
	alpha := n + r - 1
	if err := checkPoints(points, alpha-1); err != nil {
		return Transforms{}, err
	}

	f := diagonalScaleInf(points, alpha)
	if f.At(0, 0).Sign() < 0 {
		f = f.WithRowNegated(0)
	}

	t := Transforms{F: f, N: n, R: r, Policy: policy}
	scaledBT := func() exact.Matrix {
		return f.Mul(inputTransformInf(points, alpha).Transpose())
	}
	switch policy {
	case FractionsInFilter:
		t.AT = vandermondeInf(points, alpha, n).Transpose()
		t.G = vandermondeInf(points, alpha, r).Transpose().Mul(f.InverseDiagonal()).Transpose()
		t.BT = scaledBT()
	case FractionsInOutput:
		t.BT = scaledBT()
		t.G = vandermondeInf(points, alpha, r)
		t.AT = vandermondeInf(points, alpha, n).Transpose().Mul(f.InverseDiagonal())
	case FractionsInInput:
		t.AT = vandermondeInf(points, alpha, n).Transpose()
		t.G = vandermondeInf(points, alpha, r)
		t.BT = inputTransformInf(points, alpha).Transpose()
	case FractionsInScale:
		t.AT = vandermondeInf(points, alpha, n).Transpose()
		t.G = vandermondeInf(points, alpha, r)
		t.BT = scaledBT()
	}

	if precision > 0 {
		t = t.Round(precision)
	}
	return t, nil
}
