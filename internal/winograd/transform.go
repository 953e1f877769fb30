// Package winograd derives Winograd / Cook-Toom minimal-filtering transforms
// for short one-dimensional convolutions F(n, r). Given α - 1 interpolation
// points (α = n + r - 1), it constructs the output transform AT, the filter
// transform G, and the input transform BT over exact arithmetic, such that
//
//	AT · ((G·g) ⊙ (BT·d))
//
// equals the direct linear convolution of a length-α data tile d with a
// length-r filter g, using only α pointwise multiplications.
//
// The α-th interpolation point is always the point at infinity: it is never
// drawn from the supplied sequence but appended by the augmentation step,
// and it contributes the highest-degree coefficient a finite point set
// cannot supply.
package winograd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agbru/wincalc/internal/exact"
)

// Sentinel errors for caller-input problems. They are detected up front so
// the pure matrix builders can assume well-formed input.
var (
	// ErrInvalidSize reports a non-positive output or filter size.
	ErrInvalidSize = errors.New("winograd: output and filter sizes must be positive")
	// ErrTooFewPoints reports fewer than α - 1 supplied interpolation points.
	ErrTooFewPoints = errors.New("winograd: not enough interpolation points")
	// ErrDuplicatePoints reports repeated interpolation points, which make
	// the interpolation matrix singular.
	ErrDuplicatePoints = errors.New("winograd: interpolation points must be pairwise distinct")
)

// ParsePoints converts a comma-separated list of exact values
// (e.g. "0,1,-1,2,-2,1/2,-1/2") into interpolation points.
func ParsePoints(s string) ([]exact.Scalar, error) {
	fields := strings.Split(s, ",")
	points := make([]exact.Scalar, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		p, err := exact.Parse(f)
		if err != nil {
			return nil, fmt.Errorf("winograd: bad interpolation point %q: %w", f, err)
		}
		points = append(points, p)
	}
	return points, nil
}

// checkPoints validates that at least needed points are supplied and that
// the first needed of them are pairwise distinct.
func checkPoints(points []exact.Scalar, needed int) error {
	if len(points) < needed {
		return fmt.Errorf("%w: have %d, need %d", ErrTooFewPoints, len(points), needed)
	}
	for i := 0; i < needed; i++ {
		for j := i + 1; j < needed; j++ {
			if exact.Equal(points[i], points[j]) {
				return fmt.Errorf("%w: points %d and %d are both %s", ErrDuplicatePoints, i, j, points[i])
			}
		}
	}
	return nil
}

// vandermonde builds the rows×cols matrix with entry (i, j) = points[i]^j.
func vandermonde(points []exact.Scalar, rows, cols int) exact.Matrix {
	return exact.NewMatrix(rows, cols, func(i, j int) exact.Scalar {
		return exact.Pow(points[i], j)
	})
}

// vandermondeInf is vandermonde on rows-1 finite points with the
// point-at-infinity row [0, ..., 0, 1] appended.
func vandermondeInf(points []exact.Scalar, rows, cols int) exact.Matrix {
	return vandermonde(points, rows-1, cols).AppendRow(unitRow(cols))
}

// unitRow returns [0, ..., 0, 1] of length n.
func unitRow(n int) []exact.Scalar {
	row := make([]exact.Scalar, n)
	for i := range row {
		row[i] = exact.Zero()
	}
	row[n-1] = exact.One()
	return row
}

// lagrangeNumerators expands, for each point index i, the degree-(n-1)
// polynomial Π_{k≠i} (x - points[k]): the numerator of the i-th Lagrange
// basis polynomial.
func lagrangeNumerators(points []exact.Scalar, n int) []exact.Poly {
	out := make([]exact.Poly, n)
	for i := 0; i < n; i++ {
		p := exact.PolyConst(exact.One())
		for k := 0; k < n; k++ {
			if k == i {
				continue
			}
			p = p.Mul(exact.PolyLinear(points[k].Neg()))
		}
		out[i] = p
	}
	return out
}

// leadingScaleFactors computes, for each point index i, the Lagrange
// denominator Π_{k≠i} (points[i] - points[k]).
func leadingScaleFactors(points []exact.Scalar, n int) []exact.Scalar {
	out := make([]exact.Scalar, n)
	for i := 0; i < n; i++ {
		acc := exact.Scalar(exact.One())
		for k := 0; k < n; k++ {
			if k == i {
				continue
			}
			acc = acc.Mul(points[i].Sub(points[k]))
		}
		out[i] = acc
	}
	return out
}

// diagonalScale builds the n×n diagonal matrix of leading scale factors.
func diagonalScale(points []exact.Scalar, n int) exact.Matrix {
	f := leadingScaleFactors(points, n)
	return exact.NewMatrix(n, n, func(i, j int) exact.Scalar {
		if i == j {
			return f[i]
		}
		return exact.Zero()
	})
}

// diagonalScaleInf pads diagonalScale on n-1 points to n×n with a zero
// column and the point-at-infinity row, whose unit diagonal entry reflects
// the infinite point having unit scale.
func diagonalScaleInf(points []exact.Scalar, n int) exact.Matrix {
	core := diagonalScale(points, n-1)
	zeros := make([]exact.Scalar, n-1)
	for i := range zeros {
		zeros[i] = exact.Zero()
	}
	return core.AppendCol(zeros).AppendRow(unitRow(n))
}

// negatedPowerColumn is the n×(n+1) identity with an appended column whose
// i-th entry is -points[i]^n: the "subtract the top-degree term" step
// applied before normalizing by the Lagrange basis.
func negatedPowerColumn(points []exact.Scalar, n int) exact.Matrix {
	col := make([]exact.Scalar, n)
	for i := 0; i < n; i++ {
		col[i] = exact.Pow(points[i], n).Neg()
	}
	return exact.Identity(n).AppendCol(col)
}

// lagrangeMatrix is the n×n matrix of row-normalized Lagrange basis
// coefficients: entry (i, j) is the coefficient of x^j in the i-th Lagrange
// numerator divided by the i-th leading scale factor, transposed so that
// rows index output components.
func lagrangeMatrix(points []exact.Scalar, n int) exact.Matrix {
	nums := lagrangeNumerators(points, n)
	factors := leadingScaleFactors(points, n)
	return exact.NewMatrix(n, n, func(i, j int) exact.Scalar {
		return nums[i].Coeff(j).Div(factors[i])
	}).Transpose()
}

// inputTransform composes Lagrange basis extraction with the top-degree
// correction: lagrangeMatrix × negatedPowerColumn, an n×(n+1) matrix.
func inputTransform(points []exact.Scalar, n int) exact.Matrix {
	return lagrangeMatrix(points, n).Mul(negatedPowerColumn(points, n))
}

// inputTransformInf is inputTransform on n-1 finite points with the
// point-at-infinity row appended, giving the n×n input-transform core.
func inputTransformInf(points []exact.Scalar, n int) exact.Matrix {
	return inputTransform(points, n-1).AppendRow(unitRow(n))
}
