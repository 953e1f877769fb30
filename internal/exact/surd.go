package exact

import (
	"fmt"
	"math/big"
)

// Surd is the quadratic algebraic value a + b·√m with rational a, b and a
// positive non-square integer radicand m. Surds with the same radicand form
// a field, so the matrix builders stay fully exact on interpolation points
// drawn from a single quadratic extension (e.g. the three-point Chebyshev
// set {√3/2, 0, -√3/2}).
type Surd struct {
	a, b *big.Rat
	m    int64
}

// NewSurd returns the value a + b·√m. It panics if m < 2; callers pass
// radicands produced by the cosine table, which are always non-square.
// A zero b collapses to the rational a.
func NewSurd(a, b *big.Rat, m int64) Scalar {
	if m < 2 {
		panic(fmt.Sprintf("exact: invalid radicand %d", m))
	}
	if b.Sign() == 0 {
		return Rat{v: new(big.Rat).Set(a)}
	}
	return Surd{a: new(big.Rat).Set(a), b: new(big.Rat).Set(b), m: m}
}

// SqrtRat returns c·√m for a rational coefficient c.
func SqrtRat(c *big.Rat, m int64) Scalar {
	return NewSurd(new(big.Rat), c, m)
}

// Radicand returns the integer under the radical.
func (s Surd) Radicand() int64 { return s.m }

// Add implements Scalar.
func (s Surd) Add(other Scalar) Scalar {
	switch o := other.(type) {
	case Rat:
		return NewSurd(new(big.Rat).Add(s.a, o.v), s.b, s.m)
	case Surd:
		if o.m == s.m {
			return NewSurd(new(big.Rat).Add(s.a, o.a), new(big.Rat).Add(s.b, o.b), s.m)
		}
		return newSum(s, o)
	case Dec:
		return o.Add(s)
	default:
		return newSum(s, other)
	}
}

// Sub implements Scalar.
func (s Surd) Sub(other Scalar) Scalar { return s.Add(other.Neg()) }

// Mul implements Scalar.
func (s Surd) Mul(other Scalar) Scalar {
	switch o := other.(type) {
	case Rat:
		return NewSurd(new(big.Rat).Mul(s.a, o.v), new(big.Rat).Mul(s.b, o.v), s.m)
	case Surd:
		if o.m == s.m {
			// (a1 + b1√m)(a2 + b2√m) = a1a2 + b1b2·m + (a1b2 + a2b1)√m
			mRat := new(big.Rat).SetInt64(s.m)
			ra := new(big.Rat).Mul(s.a, o.a)
			ra.Add(ra, new(big.Rat).Mul(new(big.Rat).Mul(s.b, o.b), mRat))
			rb := new(big.Rat).Mul(s.a, o.b)
			rb.Add(rb, new(big.Rat).Mul(s.b, o.a))
			return NewSurd(ra, rb, s.m)
		}
		return newProd(s, o)
	case Dec:
		return o.Mul(s)
	default:
		return newProd(s, other)
	}
}

// Div implements Scalar.
func (s Surd) Div(other Scalar) Scalar {
	if other.Sign() == 0 {
		panic("exact: division by zero")
	}
	switch o := other.(type) {
	case Rat:
		inv := new(big.Rat).Inv(o.v)
		return s.Mul(Rat{v: inv})
	case Surd:
		if o.m == s.m {
			return s.Mul(o.reciprocal())
		}
		return newQuot(s, o)
	case Dec:
		return decOf(s, o.prec).Div(o)
	default:
		return newQuot(s, other)
	}
}

// reciprocal returns 1/(a + b√m) by rationalizing with the conjugate.
func (s Surd) reciprocal() Scalar {
	// (a - b√m) / (a² - b²m)
	mRat := new(big.Rat).SetInt64(s.m)
	den := new(big.Rat).Mul(s.a, s.a)
	den.Sub(den, new(big.Rat).Mul(new(big.Rat).Mul(s.b, s.b), mRat))
	if den.Sign() == 0 {
		// a² = b²m would force √m rational, impossible for non-square m
		// unless the value itself is zero, which Div has already excluded.
		panic("exact: degenerate surd")
	}
	ra := new(big.Rat).Quo(s.a, den)
	rb := new(big.Rat).Quo(new(big.Rat).Neg(s.b), den)
	return NewSurd(ra, rb, s.m)
}

// Neg implements Scalar.
func (s Surd) Neg() Scalar {
	return NewSurd(new(big.Rat).Neg(s.a), new(big.Rat).Neg(s.b), s.m)
}

// Sign implements Scalar.
func (s Surd) Sign() int {
	sa, sb := s.a.Sign(), s.b.Sign()
	switch {
	case sa == 0:
		return sb
	case sb == 0:
		return sa
	case sa == sb:
		return sa
	}
	// Opposite signs: a + b√m has the sign of the dominant term,
	// decided by comparing a² against b²·m.
	mRat := new(big.Rat).SetInt64(s.m)
	lhs := new(big.Rat).Mul(s.a, s.a)
	rhs := new(big.Rat).Mul(new(big.Rat).Mul(s.b, s.b), mRat)
	switch lhs.Cmp(rhs) {
	case 1:
		return sa
	case -1:
		return sb
	default:
		return 0
	}
}

// Float implements Scalar.
func (s Surd) Float(prec uint) *big.Float {
	work := prec + 8
	root := new(big.Float).SetPrec(work).SetInt64(s.m)
	root.Sqrt(root)
	bf := new(big.Float).SetPrec(work).SetRat(s.b)
	bf.Mul(bf, root)
	af := new(big.Float).SetPrec(work).SetRat(s.a)
	return af.Add(af, bf).SetPrec(prec)
}

// String renders the surd as, e.g., "sqrt(3)/2", "-sqrt(2)/2" or
// "1/4 + sqrt(5)/4".
func (s Surd) String() string {
	radical := fmt.Sprintf("sqrt(%d)", s.m)
	bs := formatCoeff(s.b, radical)
	if s.a.Sign() == 0 {
		return bs
	}
	as := Rat{v: s.a}.String()
	if s.b.Sign() < 0 {
		return fmt.Sprintf("%s - %s", as, formatCoeff(new(big.Rat).Neg(s.b), radical))
	}
	return fmt.Sprintf("%s + %s", as, bs)
}

// formatCoeff renders c·radical compactly: "sqrt(3)", "-sqrt(3)/2", "2*sqrt(3)/5".
func formatCoeff(c *big.Rat, radical string) string {
	num := c.Num()
	out := ""
	switch {
	case num.CmpAbs(big.NewInt(1)) == 0:
		if num.Sign() < 0 {
			out = "-" + radical
		} else {
			out = radical
		}
	default:
		out = num.String() + "*" + radical
	}
	if c.Denom().Cmp(big.NewInt(1)) != 0 {
		out += "/" + c.Denom().String()
	}
	return out
}
