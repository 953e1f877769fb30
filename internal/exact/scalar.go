// Package exact implements the arithmetic substrate for the Winograd
// transform derivation: arbitrary-precision rationals, quadratic surds,
// symbolic cosine constants, and a fixed-precision decimal evaluation mode,
// all behind a single Scalar interface. It also provides the sparse
// polynomial and immutable matrix types built on top of Scalar.
//
// The interface captures exactly the capability set the matrix builders
// need: ring operations, division, sign inspection, and conversion to a
// fixed-precision decimal. The rational and surd paths are fully exact;
// compound symbolic expressions fall back to high-precision numeric
// evaluation for sign tests only.
package exact

import (
	"fmt"
	"math/big"
)

// Scalar is an exact numeric value closed under field arithmetic.
// Implementations: Rat (rational), Surd (quadratic algebraic), Cos
// (symbolic cosine), expr (compound symbolic), and Dec (fixed-precision
// decimal, the alternate evaluation mode).
//
// All operations return fresh values; Scalars are immutable.
type Scalar interface {
	// Add returns the sum of the receiver and other.
	Add(other Scalar) Scalar
	// Sub returns the difference of the receiver and other.
	Sub(other Scalar) Scalar
	// Mul returns the product of the receiver and other.
	Mul(other Scalar) Scalar
	// Div returns the quotient of the receiver by other.
	// It panics if other is zero; callers validate divisors first.
	Div(other Scalar) Scalar
	// Neg returns the additive inverse of the receiver.
	Neg() Scalar
	// Sign returns -1, 0, or +1 according to the sign of the value.
	Sign() int
	// Float returns the value as a big.Float with prec bits of mantissa.
	Float(prec uint) *big.Float
	// String renders the value in its canonical exact form.
	String() string
}

// Rat is an arbitrary-precision rational Scalar backed by math/big.Rat.
type Rat struct {
	v *big.Rat
}

// Int64 returns the integer n as a Rat scalar.
func Int64(n int64) Rat {
	return Rat{v: new(big.Rat).SetInt64(n)}
}

// NewRat returns the rational p/q as a Rat scalar. It panics if q is zero.
func NewRat(p, q int64) Rat {
	if q == 0 {
		panic("exact: zero denominator")
	}
	return Rat{v: new(big.Rat).SetFrac64(p, q)}
}

// FromBigRat returns a Rat scalar holding a copy of r.
func FromBigRat(r *big.Rat) Rat {
	return Rat{v: new(big.Rat).Set(r)}
}

// Zero is the rational zero.
func Zero() Rat { return Int64(0) }

// One is the rational one.
func One() Rat { return Int64(1) }

// Parse converts a textual scalar into a Rat. It accepts integer,
// fraction ("p/q") and decimal ("0.5", "1.25e-1") forms.
func Parse(s string) (Rat, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Rat{}, fmt.Errorf("exact: cannot parse %q as a rational", s)
	}
	return Rat{v: r}, nil
}

// Rat returns a copy of the underlying big.Rat.
func (r Rat) Rat() *big.Rat { return new(big.Rat).Set(r.v) }

// Add implements Scalar.
func (r Rat) Add(other Scalar) Scalar {
	switch o := other.(type) {
	case Rat:
		return Rat{v: new(big.Rat).Add(r.v, o.v)}
	default:
		return other.Add(r)
	}
}

// Sub implements Scalar.
func (r Rat) Sub(other Scalar) Scalar { return r.Add(other.Neg()) }

// Mul implements Scalar.
func (r Rat) Mul(other Scalar) Scalar {
	switch o := other.(type) {
	case Rat:
		return Rat{v: new(big.Rat).Mul(r.v, o.v)}
	default:
		return other.Mul(r)
	}
}

// Div implements Scalar.
func (r Rat) Div(other Scalar) Scalar {
	if other.Sign() == 0 {
		panic("exact: division by zero")
	}
	switch o := other.(type) {
	case Rat:
		return Rat{v: new(big.Rat).Quo(r.v, o.v)}
	case Surd:
		return o.reciprocal().Mul(r)
	case Dec:
		return decOf(r, o.prec).Div(o)
	default:
		return newQuot(r, other)
	}
}

// Neg implements Scalar.
func (r Rat) Neg() Scalar { return Rat{v: new(big.Rat).Neg(r.v)} }

// Sign implements Scalar.
func (r Rat) Sign() int { return r.v.Sign() }

// Float implements Scalar.
func (r Rat) Float(prec uint) *big.Float {
	return new(big.Float).SetPrec(prec).SetRat(r.v)
}

// String renders the rational as "p" or "p/q" in lowest terms.
func (r Rat) String() string {
	if r.v.IsInt() {
		return r.v.Num().String()
	}
	return r.v.RatString()
}

// IsZero reports whether s is exactly zero.
func IsZero(s Scalar) bool { return s.Sign() == 0 }

// Equal reports whether a and b denote the same value.
// For purely symbolic operands the comparison goes through the same
// high-precision sign test as expr.Sign.
func Equal(a, b Scalar) bool { return a.Sub(b).Sign() == 0 }

// Pow returns s raised to the non-negative integer power k.
func Pow(s Scalar, k int) Scalar {
	if k < 0 {
		panic("exact: negative exponent")
	}
	var acc Scalar = One()
	for i := 0; i < k; i++ {
		acc = acc.Mul(s)
	}
	return acc
}
