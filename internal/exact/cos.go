package exact

import (
	"fmt"
	"math/big"
)

// Cos is the symbolic constant cos(c·π) for a rational c in (0, 1) whose
// value has no quadratic closed form. Angles with a closed form never reach
// this type: CosPi resolves them to Rat or Surd first. Arithmetic that mixes
// a Cos with anything else produces compound expression nodes.
type Cos struct {
	c *big.Rat
}

// CosPi returns cos((num/den)·π) in its most exact available form: a Rat or
// Surd when the reduced angle is a classical constructible case, otherwise a
// symbolic Cos node. den must be non-zero.
func CosPi(num, den int64) Scalar {
	if den == 0 {
		panic("exact: zero denominator in angle")
	}
	c := new(big.Rat).SetFrac64(num, den)
	return cosPiRat(c)
}

func cosPiRat(c *big.Rat) Scalar {
	// Reduce the angle to c ∈ [0, 1]: cos has period 2π and cos(x) = cos(2π - x).
	two := new(big.Rat).SetInt64(2)
	c = new(big.Rat).Set(c)
	for c.Sign() < 0 {
		c.Add(c, two)
	}
	for c.Cmp(two) >= 0 {
		c.Sub(c, two)
	}
	if c.Cmp(new(big.Rat).SetInt64(1)) > 0 {
		c.Sub(two, c)
	}
	if v, ok := cosTable(c); ok {
		return v
	}
	return Cos{c: c}
}

// cosTable resolves cos(c·π) for the reduced c ∈ [0, 1] whose value lies in
// ℚ or a quadratic extension: denominators 1, 2, 3, 4, 5 and 6.
func cosTable(c *big.Rat) (Scalar, bool) {
	num := c.Num().Int64()
	den := c.Denom().Int64()
	half := big.NewRat(1, 2)
	switch den {
	case 1:
		if num == 0 {
			return One(), true
		}
		return Int64(-1), true
	case 2:
		return Zero(), true
	case 3:
		if num == 1 {
			return NewRat(1, 2), true
		}
		return NewRat(-1, 2), true
	case 4:
		if num == 1 {
			return SqrtRat(half, 2), true
		}
		return SqrtRat(new(big.Rat).Neg(half), 2), true
	case 5:
		quarter := big.NewRat(1, 4)
		switch num {
		case 1: // cos(π/5) = (1 + √5)/4
			return NewSurd(quarter, quarter, 5), true
		case 2: // cos(2π/5) = (√5 - 1)/4
			return NewSurd(big.NewRat(-1, 4), quarter, 5), true
		case 3: // cos(3π/5) = (1 - √5)/4
			return NewSurd(quarter, big.NewRat(-1, 4), 5), true
		default: // cos(4π/5) = -(1 + √5)/4
			return NewSurd(big.NewRat(-1, 4), big.NewRat(-1, 4), 5), true
		}
	case 6:
		if num == 1 {
			return SqrtRat(half, 3), true
		}
		return SqrtRat(new(big.Rat).Neg(half), 3), true
	}
	return nil, false
}

// Add implements Scalar.
func (c Cos) Add(other Scalar) Scalar {
	if d, ok := other.(Dec); ok {
		return d.Add(c)
	}
	return newSum(c, other)
}

// Sub implements Scalar.
func (c Cos) Sub(other Scalar) Scalar { return c.Add(other.Neg()) }

// Mul implements Scalar.
func (c Cos) Mul(other Scalar) Scalar {
	if d, ok := other.(Dec); ok {
		return d.Mul(c)
	}
	return newProd(c, other)
}

// Div implements Scalar.
func (c Cos) Div(other Scalar) Scalar {
	if other.Sign() == 0 {
		panic("exact: division by zero")
	}
	if d, ok := other.(Dec); ok {
		return decOf(c, d.prec).Div(d)
	}
	return newQuot(c, other)
}

// Neg uses cos((1-c)·π) = -cos(c·π), keeping the negation inside the
// symbolic form instead of introducing an expression node.
func (c Cos) Neg() Scalar {
	flipped := new(big.Rat).Sub(new(big.Rat).SetInt64(1), c.c)
	return cosPiRat(flipped)
}

// Sign implements Scalar. A reduced Cos angle lies strictly inside (0, 1)
// away from 1/2, so the sign follows directly from which half it is in.
func (c Cos) Sign() int {
	if c.c.Cmp(big.NewRat(1, 2)) < 0 {
		return 1
	}
	return -1
}

// Float implements Scalar.
func (c Cos) Float(prec uint) *big.Float {
	work := prec + 32
	x := new(big.Float).SetPrec(work).SetRat(c.c)
	x.Mul(x, pi(work))
	return cosFloat(x, work).SetPrec(prec)
}

// String renders, e.g., "cos(3*pi/10)".
func (c Cos) String() string {
	if c.c.Num().Cmp(big.NewInt(1)) == 0 {
		return fmt.Sprintf("cos(pi/%s)", c.c.Denom())
	}
	return fmt.Sprintf("cos(%s*pi/%s)", c.c.Num(), c.c.Denom())
}

// pi computes π to prec bits with Machin's formula:
// π = 16·atan(1/5) - 4·atan(1/239).
func pi(prec uint) *big.Float {
	work := prec + 16
	p := new(big.Float).SetPrec(work)
	t1 := atanInv(5, work)
	t2 := atanInv(239, work)
	p.Mul(t1, new(big.Float).SetPrec(work).SetInt64(16))
	t2.Mul(t2, new(big.Float).SetPrec(work).SetInt64(4))
	return p.Sub(p, t2).SetPrec(prec)
}

// atanInv computes atan(1/x) for integer x > 1 by the alternating series
// Σ (-1)^k / ((2k+1)·x^(2k+1)), stopping when a term no longer moves the sum.
func atanInv(x int64, prec uint) *big.Float {
	work := prec + 16
	invX2 := new(big.Float).SetPrec(work).SetInt64(x * x)
	invX2.Quo(new(big.Float).SetPrec(work).SetInt64(1), invX2)

	term := new(big.Float).SetPrec(work).SetInt64(x)
	term.Quo(new(big.Float).SetPrec(work).SetInt64(1), term)

	sum := new(big.Float).SetPrec(work)
	tmp := new(big.Float).SetPrec(work)
	for k := int64(0); ; k++ {
		tmp.Quo(term, new(big.Float).SetPrec(work).SetInt64(2*k+1))
		if k%2 == 0 {
			sum.Add(sum, tmp)
		} else {
			sum.Sub(sum, tmp)
		}
		term.Mul(term, invX2)
		if term.MantExp(nil) < -int(work) {
			break
		}
	}
	return sum
}

// cosFloat computes cos(x) for 0 ≤ x ≤ π by Taylor expansion around zero
// after folding x into [0, π/2] with cos(x) = -cos(π - x).
func cosFloat(x *big.Float, prec uint) *big.Float {
	work := prec + 16
	halfPi := pi(work)
	halfPi.Quo(halfPi, new(big.Float).SetPrec(work).SetInt64(2))
	neg := false
	x = new(big.Float).SetPrec(work).Set(x)
	if x.Cmp(halfPi) > 0 {
		full := pi(work)
		x.Sub(full, x)
		neg = true
	}

	x2 := new(big.Float).SetPrec(work).Mul(x, x)
	term := new(big.Float).SetPrec(work).SetInt64(1)
	sum := new(big.Float).SetPrec(work).SetInt64(1)
	for k := int64(1); ; k++ {
		term.Mul(term, x2)
		term.Quo(term, new(big.Float).SetPrec(work).SetInt64((2*k-1)*(2*k)))
		if term.Sign() == 0 {
			break
		}
		if k%2 == 1 {
			sum.Sub(sum, term)
		} else {
			sum.Add(sum, term)
		}
		if term.MantExp(nil) < -int(work) {
			break
		}
	}
	if neg {
		sum.Neg(sum)
	}
	return sum.SetPrec(prec)
}
