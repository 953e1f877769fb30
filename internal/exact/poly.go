package exact

import (
	"sort"
	"strconv"
	"strings"
)

// Poly is a sparse univariate polynomial: a map from non-negative exponent
// to Scalar coefficient. It exists purely as a coefficient accumulator for
// the Lagrange numerator expansion; there is no evaluation or division.
// Zero coefficients are never stored.
type Poly struct {
	coeffs map[int]Scalar
}

// PolyConst returns the constant polynomial c.
func PolyConst(c Scalar) Poly {
	p := Poly{coeffs: map[int]Scalar{}}
	if c.Sign() != 0 {
		p.coeffs[0] = c
	}
	return p
}

// PolyLinear returns the monic linear polynomial x + c.
func PolyLinear(c Scalar) Poly {
	p := Poly{coeffs: map[int]Scalar{1: One()}}
	if c.Sign() != 0 {
		p.coeffs[0] = c
	}
	return p
}

// Coeff returns the coefficient of x^k, which is zero when absent.
func (p Poly) Coeff(k int) Scalar {
	if c, ok := p.coeffs[k]; ok {
		return c
	}
	return Zero()
}

// Degree returns the highest stored exponent, or -1 for the zero polynomial.
func (p Poly) Degree() int {
	d := -1
	for k := range p.coeffs {
		if k > d {
			d = k
		}
	}
	return d
}

// Mul returns the product of p and q.
func (p Poly) Mul(q Poly) Poly {
	out := Poly{coeffs: map[int]Scalar{}}
	for i, a := range p.coeffs {
		for j, b := range q.coeffs {
			k := i + j
			term := a.Mul(b)
			if cur, ok := out.coeffs[k]; ok {
				term = cur.Add(term)
			}
			if term.Sign() == 0 {
				delete(out.coeffs, k)
			} else {
				out.coeffs[k] = term
			}
		}
	}
	return out
}

// String renders the polynomial with ascending exponents, e.g.
// "2 - 3*x + x^2".
func (p Poly) String() string {
	if len(p.coeffs) == 0 {
		return "0"
	}
	exps := make([]int, 0, len(p.coeffs))
	for k := range p.coeffs {
		exps = append(exps, k)
	}
	sort.Ints(exps)
	var b strings.Builder
	for i, k := range exps {
		if i > 0 {
			b.WriteString(" + ")
		}
		c := p.coeffs[k]
		switch {
		case k == 0:
			b.WriteString(c.String())
		case Equal(c, One()):
			b.WriteString(monomial(k))
		default:
			b.WriteString(c.String())
			b.WriteString("*")
			b.WriteString(monomial(k))
		}
	}
	return b.String()
}

func monomial(k int) string {
	if k == 1 {
		return "x"
	}
	return "x^" + strconv.Itoa(k)
}
