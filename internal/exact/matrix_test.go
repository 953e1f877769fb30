package exact

import (
	"reflect"
	"testing"
)

// matrixOf builds a matrix from a literal grid of int64 values.
func matrixOf(grid [][]int64) Matrix {
	return NewMatrix(len(grid), len(grid[0]), func(i, j int) Scalar {
		return Int64(grid[i][j])
	})
}

// TestMatrixMul tests the matrix product.
func TestMatrixMul(t *testing.T) {
	a := matrixOf([][]int64{{1, 2}, {3, 4}})
	b := matrixOf([][]int64{{5, 6}, {7, 8}})
	want := matrixOf([][]int64{{19, 22}, {43, 50}})
	if got := a.Mul(b); !got.Equal(want) {
		t.Errorf("product = \n%s\nwant\n%s", got, want)
	}
}

// TestMatrixMulDimensionMismatch tests the shape guard.
func TestMatrixMulDimensionMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on dimension mismatch")
		}
	}()
	matrixOf([][]int64{{1, 2}}).Mul(matrixOf([][]int64{{1, 2}}))
}

// TestMatrixTranspose tests the transpose.
func TestMatrixTranspose(t *testing.T) {
	m := matrixOf([][]int64{{1, 2, 3}, {4, 5, 6}})
	want := matrixOf([][]int64{{1, 4}, {2, 5}, {3, 6}})
	if got := m.Transpose(); !got.Equal(want) {
		t.Errorf("transpose = \n%s\nwant\n%s", got, want)
	}
}

// TestMatrixIdentity tests that identity is a multiplicative unit.
func TestMatrixIdentity(t *testing.T) {
	m := matrixOf([][]int64{{2, -1}, {0, 3}})
	if !m.Mul(Identity(2)).Equal(m) || !Identity(2).Mul(m).Equal(m) {
		t.Error("identity should leave the matrix unchanged")
	}
}

// TestMatrixAppend tests row and column extension.
func TestMatrixAppend(t *testing.T) {
	m := matrixOf([][]int64{{1, 2}})

	withRow := m.AppendRow([]Scalar{Int64(3), Int64(4)})
	if !withRow.Equal(matrixOf([][]int64{{1, 2}, {3, 4}})) {
		t.Errorf("AppendRow = \n%s", withRow)
	}

	withCol := m.AppendCol([]Scalar{Int64(9)})
	if !withCol.Equal(matrixOf([][]int64{{1, 2, 9}})) {
		t.Errorf("AppendCol = \n%s", withCol)
	}
}

// TestWithRowNegated tests single-row negation.
func TestWithRowNegated(t *testing.T) {
	m := matrixOf([][]int64{{-1, 2}, {3, 4}})
	want := matrixOf([][]int64{{1, -2}, {3, 4}})
	if got := m.WithRowNegated(0); !got.Equal(want) {
		t.Errorf("WithRowNegated(0) = \n%s\nwant\n%s", got, want)
	}
}

// TestInverseDiagonal tests diagonal inversion.
func TestInverseDiagonal(t *testing.T) {
	d := NewMatrix(3, 3, func(i, j int) Scalar {
		if i != j {
			return Zero()
		}
		return Int64(int64(i + 1))
	})
	inv := d.InverseDiagonal()
	if !d.Mul(inv).Equal(Identity(3)) {
		t.Error("D * D^-1 should be the identity")
	}
	if got := inv.At(2, 2).String(); got != "1/3" {
		t.Errorf("inverse entry = %s, want 1/3", got)
	}
}

// TestMatrixRound tests entrywise decimal conversion.
func TestMatrixRound(t *testing.T) {
	m := NewMatrix(1, 2, func(i, j int) Scalar { return NewRat(1, 3) })
	r := m.Round(4)
	if got := r.At(0, 1).String(); got != "0.3333" {
		t.Errorf("rounded entry = %s, want 0.3333", got)
	}
}

// TestMatrixStrings tests the canonical grid rendering.
func TestMatrixStrings(t *testing.T) {
	m := NewMatrix(2, 2, func(i, j int) Scalar {
		if i == j {
			return One()
		}
		return NewRat(-1, 2)
	})
	want := [][]string{{"1", "-1/2"}, {"-1/2", "1"}}
	if got := m.Strings(); !reflect.DeepEqual(got, want) {
		t.Errorf("Strings() = %v, want %v", got, want)
	}
	if got := m.String(); got != "[1 -1/2]\n[-1/2 1]" {
		t.Errorf("String() = %q", got)
	}
}

// TestMatrixEqualShapes tests shape-sensitive equality.
func TestMatrixEqualShapes(t *testing.T) {
	if matrixOf([][]int64{{1}}).Equal(matrixOf([][]int64{{1, 0}})) {
		t.Error("matrices of different shapes should not be equal")
	}
}
