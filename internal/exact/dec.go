package exact

import (
	"math"
	"math/big"
)

// Dec is a fixed-precision decimal Scalar, the alternate evaluation mode
// selected by a significant-digit count. Once a Dec enters an operation the
// result stays Dec: precision mode is absorbing, mirroring how requesting a
// decimal rendering of a derivation converts every entry.
type Dec struct {
	v      *big.Float
	digits int
	prec   uint
}

// decBits converts a significant-decimal-digit count to mantissa bits,
// with guard bits so that printing at the requested digit count is stable.
func decBits(digits int) uint {
	return uint(math.Ceil(float64(digits)*math.Log2(10))) + 16
}

// NewDec returns the decimal rendering of f at the given number of
// significant digits.
func NewDec(f *big.Float, digits int) Dec {
	prec := decBits(digits)
	return Dec{v: new(big.Float).SetPrec(prec).Set(f), digits: digits, prec: prec}
}

// decOf converts any scalar to a Dec at the given mantissa precision.
func decOf(s Scalar, prec uint) Dec {
	if d, ok := s.(Dec); ok && d.prec == prec {
		return d
	}
	digits := int(float64(prec-16) / math.Log2(10))
	return Dec{v: s.Float(prec), digits: digits, prec: prec}
}

// RoundScalar converts s to its fixed-precision decimal form at the given
// number of significant digits. A Dec input is re-rounded.
func RoundScalar(s Scalar, digits int) Dec {
	prec := decBits(digits)
	return Dec{v: s.Float(prec), digits: digits, prec: prec}
}

// Digits returns the significant-digit count the value was rounded to.
func (d Dec) Digits() int { return d.digits }

// BigFloat returns a copy of the underlying float.
func (d Dec) BigFloat() *big.Float { return new(big.Float).Set(d.v) }

// Float64 returns the value as a float64.
func (d Dec) Float64() float64 {
	f, _ := d.v.Float64()
	return f
}

func (d Dec) binary(other Scalar, apply func(z, x, y *big.Float) *big.Float) Scalar {
	o := decOf(other, d.prec)
	z := new(big.Float).SetPrec(d.prec)
	apply(z, d.v, o.v)
	return Dec{v: z, digits: d.digits, prec: d.prec}
}

// Add implements Scalar.
func (d Dec) Add(other Scalar) Scalar {
	return d.binary(other, func(z, x, y *big.Float) *big.Float { return z.Add(x, y) })
}

// Sub implements Scalar.
func (d Dec) Sub(other Scalar) Scalar {
	return d.binary(other, func(z, x, y *big.Float) *big.Float { return z.Sub(x, y) })
}

// Mul implements Scalar.
func (d Dec) Mul(other Scalar) Scalar {
	return d.binary(other, func(z, x, y *big.Float) *big.Float { return z.Mul(x, y) })
}

// Div implements Scalar.
func (d Dec) Div(other Scalar) Scalar {
	if other.Sign() == 0 {
		panic("exact: division by zero")
	}
	return d.binary(other, func(z, x, y *big.Float) *big.Float { return z.Quo(x, y) })
}

// Neg implements Scalar.
func (d Dec) Neg() Scalar {
	return Dec{v: new(big.Float).SetPrec(d.prec).Neg(d.v), digits: d.digits, prec: d.prec}
}

// Sign implements Scalar.
func (d Dec) Sign() int { return d.v.Sign() }

// Float implements Scalar.
func (d Dec) Float(prec uint) *big.Float {
	return new(big.Float).SetPrec(prec).Set(d.v)
}

// String renders the value at the configured significant-digit count.
func (d Dec) String() string {
	return d.v.Text('g', d.digits)
}
