package exact

import (
	"fmt"
	"strings"
)

// Matrix is an immutable dense matrix of Scalars. Every operation returns a
// fresh matrix; builders never mutate their inputs, so intermediate products
// of the transform derivation can be shared freely.
type Matrix struct {
	rows, cols int
	data       []Scalar
}

// NewMatrix builds a rows×cols matrix whose (i, j) entry is gen(i, j).
func NewMatrix(rows, cols int, gen func(i, j int) Scalar) Matrix {
	if rows < 0 || cols < 0 {
		panic("exact: negative matrix dimension")
	}
	data := make([]Scalar, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			data[i*cols+j] = gen(i, j)
		}
	}
	return Matrix{rows: rows, cols: cols, data: data}
}

// Identity returns the n×n identity matrix.
func Identity(n int) Matrix {
	return NewMatrix(n, n, func(i, j int) Scalar {
		if i == j {
			return One()
		}
		return Zero()
	})
}

// Rows returns the row count.
func (m Matrix) Rows() int { return m.rows }

// Cols returns the column count.
func (m Matrix) Cols() int { return m.cols }

// At returns the entry at row i, column j.
func (m Matrix) At(i, j int) Scalar {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("exact: index (%d,%d) out of range for %dx%d matrix", i, j, m.rows, m.cols))
	}
	return m.data[i*m.cols+j]
}

// Mul returns the matrix product m·o.
func (m Matrix) Mul(o Matrix) Matrix {
	if m.cols != o.rows {
		panic(fmt.Sprintf("exact: dimension mismatch %dx%d * %dx%d", m.rows, m.cols, o.rows, o.cols))
	}
	return NewMatrix(m.rows, o.cols, func(i, j int) Scalar {
		acc := Scalar(Zero())
		for k := 0; k < m.cols; k++ {
			acc = acc.Add(m.At(i, k).Mul(o.At(k, j)))
		}
		return acc
	})
}

// Transpose returns the transpose of m.
func (m Matrix) Transpose() Matrix {
	return NewMatrix(m.cols, m.rows, func(i, j int) Scalar { return m.At(j, i) })
}

// AppendRow returns m with one extra row at the bottom.
func (m Matrix) AppendRow(row []Scalar) Matrix {
	if len(row) != m.cols {
		panic("exact: appended row has wrong length")
	}
	return NewMatrix(m.rows+1, m.cols, func(i, j int) Scalar {
		if i < m.rows {
			return m.At(i, j)
		}
		return row[j]
	})
}

// AppendCol returns m with one extra column on the right.
func (m Matrix) AppendCol(col []Scalar) Matrix {
	if len(col) != m.rows {
		panic("exact: appended column has wrong length")
	}
	return NewMatrix(m.rows, m.cols+1, func(i, j int) Scalar {
		if j < m.cols {
			return m.At(i, j)
		}
		return col[i]
	})
}

// WithRowNegated returns m with every entry of row i negated.
func (m Matrix) WithRowNegated(i int) Matrix {
	return NewMatrix(m.rows, m.cols, func(r, c int) Scalar {
		if r == i {
			return m.At(r, c).Neg()
		}
		return m.At(r, c)
	})
}

// InverseDiagonal returns the inverse of a diagonal matrix. It panics on a
// non-square matrix or a zero diagonal entry; the scale matrix it is applied
// to is non-singular by construction once the interpolation points are
// pairwise distinct.
func (m Matrix) InverseDiagonal() Matrix {
	if m.rows != m.cols {
		panic("exact: diagonal inverse of non-square matrix")
	}
	return NewMatrix(m.rows, m.cols, func(i, j int) Scalar {
		if i != j {
			return Zero()
		}
		return One().Div(m.At(i, i))
	})
}

// Round returns m with every entry converted to its fixed-precision decimal
// form at the given significant-digit count.
func (m Matrix) Round(digits int) Matrix {
	return NewMatrix(m.rows, m.cols, func(i, j int) Scalar {
		return RoundScalar(m.At(i, j), digits)
	})
}

// Equal reports entrywise equality of two matrices of the same shape.
func (m Matrix) Equal(o Matrix) bool {
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for i := range m.data {
		if !Equal(m.data[i], o.data[i]) {
			return false
		}
	}
	return true
}

// Strings returns the matrix as a grid of canonical entry renderings.
func (m Matrix) Strings() [][]string {
	out := make([][]string, m.rows)
	for i := 0; i < m.rows; i++ {
		out[i] = make([]string, m.cols)
		for j := 0; j < m.cols; j++ {
			out[i][j] = m.At(i, j).String()
		}
	}
	return out
}

// String renders the matrix on one line per row, entries space-separated.
func (m Matrix) String() string {
	var b strings.Builder
	for i := 0; i < m.rows; i++ {
		b.WriteString("[")
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				b.WriteString(" ")
			}
			b.WriteString(m.At(i, j).String())
		}
		b.WriteString("]")
		if i < m.rows-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
