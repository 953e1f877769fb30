package winograd

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/agbru/wincalc/internal/exact"
)

// ErrVerificationFailed reports that the derived transforms do not
// algebraically reproduce the direct convolution. It indicates a logic
// defect in the composition or an invalid policy/point combination; it is
// surfaced, never auto-corrected.
var ErrVerificationFailed = errors.New("winograd: transforms do not reproduce the direct convolution")

// BilinearForm is a symbolic bilinear expression over the formal data
// symbols d[j] and tap symbols g[k]: a sparse map from the index pair
// (j, k) to the exact coefficient of d[j]·g[k]. It stands in for the
// indexed-symbol vectors a general symbolic engine would use; "simplify"
// is just dropping zero coefficients, which the arithmetic does eagerly.
type BilinearForm struct {
	coeffs map[[2]int]exact.Scalar
}

// Coeff returns the coefficient of d[j]·g[k], zero when absent.
func (f BilinearForm) Coeff(j, k int) exact.Scalar {
	if c, ok := f.coeffs[[2]int{j, k}]; ok {
		return c
	}
	return exact.Zero()
}

// Equal reports whether two forms have identical coefficients.
func (f BilinearForm) Equal(o BilinearForm) bool {
	for key, c := range f.coeffs {
		if !exact.Equal(c, o.Coeff(key[0], key[1])) {
			return false
		}
	}
	for key, c := range o.coeffs {
		if !exact.Equal(c, f.Coeff(key[0], key[1])) {
			return false
		}
	}
	return true
}

// String renders the form with terms ordered by (data, tap) index, e.g.
// "d[0]*g[0] + d[1]*g[1] + d[2]*g[2]".
func (f BilinearForm) String() string {
	if len(f.coeffs) == 0 {
		return "0"
	}
	keys := make([][2]int, 0, len(f.coeffs))
	for k := range f.coeffs {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(a, b int) bool {
		if keys[a][0] != keys[b][0] {
			return keys[a][0] < keys[b][0]
		}
		return keys[a][1] < keys[b][1]
	})
	var b strings.Builder
	for i, key := range keys {
		if i > 0 {
			b.WriteString(" + ")
		}
		c := f.coeffs[key]
		if !exact.Equal(c, exact.One()) {
			b.WriteString(c.String())
			b.WriteString("*")
		}
		fmt.Fprintf(&b, "d[%d]*g[%d]", key[0], key[1])
	}
	return b.String()
}

func (f BilinearForm) addTerm(j, k int, c exact.Scalar) {
	key := [2]int{j, k}
	if cur, ok := f.coeffs[key]; ok {
		c = cur.Add(c)
	}
	if c.Sign() == 0 {
		delete(f.coeffs, key)
		return
	}
	f.coeffs[key] = c
}

// FormsEqual reports elementwise equality of two symbolic vectors.
func FormsEqual(a, b []BilinearForm) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// FilterVerify symbolically evaluates AT · ((G·g) ⊙ (BT·d)) over formal
// indexed symbols, returning the length-n vector of bilinear forms. For a
// correct F(n, r) derivation it equals DirectFilter(n, r).
func FilterVerify(n, r int, AT, G, BT exact.Matrix) ([]BilinearForm, error) {
	alpha := n + r - 1
	if AT.Rows() != n || AT.Cols() != alpha || G.Rows() != alpha || G.Cols() != r ||
		BT.Rows() != alpha || BT.Cols() != alpha {
		return nil, fmt.Errorf("winograd: transform shapes do not match F(%d,%d)", n, r)
	}
	return composeForms(AT, G, BT), nil
}

// ConvolutionVerify symbolically evaluates B · ((G·g) ⊙ (A·d)) using the
// non-transposed matrices, returning the length-(n+r-1) vector of bilinear
// forms. For a correct derivation it equals DirectConvolution(n, r).
func ConvolutionVerify(n, r int, B, G, A exact.Matrix) ([]BilinearForm, error) {
	alpha := n + r - 1
	if B.Rows() != alpha || B.Cols() != alpha || G.Rows() != alpha || G.Cols() != r ||
		A.Rows() != alpha || A.Cols() != n {
		return nil, fmt.Errorf("winograd: transform shapes do not match F(%d,%d)", n, r)
	}
	return composeForms(B, G, A), nil
}

// composeForms computes out · ((G·g) ⊙ (data·d)) where data maps the formal
// data vector into the transform domain and out maps the pointwise products
// back. Row i of the pointwise product is the outer product of the i-th
// rows of G and data.
func composeForms(out, G, data exact.Matrix) []BilinearForm {
	products := make([]BilinearForm, G.Rows())
	for i := range products {
		products[i] = BilinearForm{coeffs: map[[2]int]exact.Scalar{}}
		for j := 0; j < data.Cols(); j++ {
			dc := data.At(i, j)
			if dc.Sign() == 0 {
				continue
			}
			for k := 0; k < G.Cols(); k++ {
				gc := G.At(i, k)
				if gc.Sign() == 0 {
					continue
				}
				products[i].addTerm(j, k, dc.Mul(gc))
			}
		}
	}

	result := make([]BilinearForm, out.Rows())
	for t := range result {
		result[t] = BilinearForm{coeffs: map[[2]int]exact.Scalar{}}
		for i := 0; i < out.Cols(); i++ {
			w := out.At(t, i)
			if w.Sign() == 0 {
				continue
			}
			for key, c := range products[i].coeffs {
				result[t].addTerm(key[0], key[1], w.Mul(c))
			}
		}
	}
	return result
}

// DirectFilter returns the symbolic FIR filter reference
// y[i] = Σ_{k=0}^{r-1} d[i+k]·g[k] for i = 0..n-1.
func DirectFilter(n, r int) []BilinearForm {
	out := make([]BilinearForm, n)
	for i := range out {
		out[i] = BilinearForm{coeffs: map[[2]int]exact.Scalar{}}
		for k := 0; k < r; k++ {
			out[i].addTerm(i+k, k, exact.One())
		}
	}
	return out
}

// DirectConvolution returns the symbolic linear convolution reference
// y[i] = Σ_{j+k=i} d[j]·g[k] for i = 0..n+r-2, with j < n and k < r.
func DirectConvolution(n, r int) []BilinearForm {
	out := make([]BilinearForm, n+r-1)
	for i := range out {
		out[i] = BilinearForm{coeffs: map[[2]int]exact.Scalar{}}
		for j := 0; j < n; j++ {
			k := i - j
			if k >= 0 && k < r {
				out[i].addTerm(j, k, exact.One())
			}
		}
	}
	return out
}

// VerifyTransforms checks the filter-form identity for a derived transform
// triple. Transforms produced under FractionsInScale are exempt: their BT is
// returned unscaled with the fractions held in F, so the identity cannot
// hold without the caller applying F.
func VerifyTransforms(t Transforms) error {
	if t.Policy == FractionsInScale {
		return nil
	}
	got, err := FilterVerify(t.N, t.R, t.AT, t.G, t.BT)
	if err != nil {
		return err
	}
	want := DirectFilter(t.N, t.R)
	for i := range want {
		if !want[i].Equal(got[i]) {
			return fmt.Errorf("%w: row %d is %s, want %s", ErrVerificationFailed, i, got[i], want[i])
		}
	}
	return nil
}
