package numeric

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

var (
	ErrLengthMismatch = errors.New("vector lengths differ")
	ErrEmpty          = errors.New("empty input")
	ErrRagged         = errors.New("matrix rows differ in length")
)

// Vector is a one-dimensional array of values.
type Vector []float64

// Matrix is a row-major two-dimensional array.
type Matrix [][]float64

// gonum panics on mismatched lengths, so every binary op checks first.
func elementwise(a, b Vector, op func(dst, s, t []float64) []float64) (Vector, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: %d and %d", ErrLengthMismatch, len(a), len(b))
	}
	return op(make(Vector, len(a)), a, b), nil
}

// Add returns a+b element-wise.
func Add(a, b Vector) (Vector, error) {
	return elementwise(a, b, floats.AddTo)
}

// Subtract returns a-b element-wise.
func Subtract(a, b Vector) (Vector, error) {
	return elementwise(a, b, floats.SubTo)
}

// Multiply returns a*b element-wise.
func Multiply(a, b Vector) (Vector, error) {
	return elementwise(a, b, floats.MulTo)
}

// Divide returns a/b element-wise. Division by zero yields ±Inf or NaN.
func Divide(a, b Vector) (Vector, error) {
	return elementwise(a, b, floats.DivTo)
}

// Mean returns the arithmetic mean of v.
func Mean(v Vector) (float64, error) {
	if len(v) == 0 {
		return 0, ErrEmpty
	}
	return stat.Mean(v, nil), nil
}

// Dot returns the inner product of a and b.
func Dot(a, b Vector) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d and %d", ErrLengthMismatch, len(a), len(b))
	}
	return floats.Dot(a, b), nil
}

// Transpose returns the transpose of m. An empty matrix transposes to an
// empty matrix.
func Transpose(m Matrix) (Matrix, error) {
	rows := len(m)
	if rows == 0 {
		return Matrix{}, nil
	}
	cols := len(m[0])
	data := make([]float64, 0, rows*cols)
	for i, row := range m {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrRagged, i, len(row), cols)
		}
		data = append(data, row...)
	}
	if cols == 0 {
		return Matrix{}, nil
	}

	t := mat.DenseCopyOf(mat.NewDense(rows, cols, data).T())
	out := make(Matrix, cols)
	for i := range out {
		out[i] = append([]float64(nil), t.RawRowView(i)...)
	}
	return out, nil
}
