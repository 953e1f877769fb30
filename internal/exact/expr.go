package exact

import (
	"fmt"
	"math/big"
)

// exprSignPrec is the working precision, in bits, for sign tests on compound
// symbolic expressions. Values whose magnitude falls below 2^-exprSignZero at
// this precision are treated as zero. This numeric fallback only applies to
// mixed symbolic arithmetic (e.g. products of unrelated cosines); rational
// and surd scalars never reach it.
const (
	exprSignPrec = 512
	exprSignZero = 400
)

type exprOp int

const (
	opSum exprOp = iota
	opProd
	opQuot
)

// expr is a compound symbolic value: the sum, product, or quotient of two
// scalars that have no common exact closed form. It remains unevaluated
// until rendered to a fixed-precision decimal.
type expr struct {
	op   exprOp
	x, y Scalar
}

func newSum(x, y Scalar) Scalar {
	if x.Sign() == 0 {
		return y
	}
	if y.Sign() == 0 {
		return x
	}
	return expr{op: opSum, x: x, y: y}
}

func newProd(x, y Scalar) Scalar {
	if x.Sign() == 0 || y.Sign() == 0 {
		return Zero()
	}
	if r, ok := x.(Rat); ok && r.v.Cmp(ratOne) == 0 {
		return y
	}
	if r, ok := y.(Rat); ok && r.v.Cmp(ratOne) == 0 {
		return x
	}
	return expr{op: opProd, x: x, y: y}
}

func newQuot(x, y Scalar) Scalar {
	if x.Sign() == 0 {
		return Zero()
	}
	if r, ok := y.(Rat); ok {
		return x.Mul(Rat{v: new(big.Rat).Inv(r.v)})
	}
	return expr{op: opQuot, x: x, y: y}
}

var ratOne = big.NewRat(1, 1)

// Add implements Scalar.
func (e expr) Add(other Scalar) Scalar {
	if d, ok := other.(Dec); ok {
		return d.Add(e)
	}
	return newSum(e, other)
}

// Sub implements Scalar.
func (e expr) Sub(other Scalar) Scalar { return e.Add(other.Neg()) }

// Mul implements Scalar.
func (e expr) Mul(other Scalar) Scalar {
	if d, ok := other.(Dec); ok {
		return d.Mul(e)
	}
	return newProd(e, other)
}

// Div implements Scalar.
func (e expr) Div(other Scalar) Scalar {
	if other.Sign() == 0 {
		panic("exact: division by zero")
	}
	if d, ok := other.(Dec); ok {
		return decOf(e, d.prec).Div(d)
	}
	return newQuot(e, other)
}

// Neg implements Scalar.
func (e expr) Neg() Scalar { return newProd(Int64(-1), e) }

// Sign evaluates the expression numerically at high precision.
func (e expr) Sign() int {
	f := e.Float(exprSignPrec)
	if f.Sign() == 0 {
		return 0
	}
	if f.MantExp(nil) < -exprSignZero {
		return 0
	}
	return f.Sign()
}

// Float implements Scalar.
func (e expr) Float(prec uint) *big.Float {
	work := prec + 16
	xf := e.x.Float(work)
	yf := e.y.Float(work)
	out := new(big.Float).SetPrec(work)
	switch e.op {
	case opSum:
		out.Add(xf, yf)
	case opProd:
		out.Mul(xf, yf)
	default:
		out.Quo(xf, yf)
	}
	return out.SetPrec(prec)
}

// String implements Scalar.
func (e expr) String() string {
	switch e.op {
	case opSum:
		return fmt.Sprintf("(%s + %s)", e.x, e.y)
	case opProd:
		return fmt.Sprintf("(%s * %s)", e.x, e.y)
	default:
		return fmt.Sprintf("(%s / %s)", e.x, e.y)
	}
}
