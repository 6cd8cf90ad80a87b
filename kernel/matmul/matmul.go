// Package matmul provides dense matrix multiplication over row-major
// float64 matrices.
//
// The multiply itself runs through the dispatched kernel suite: a plain
// triple loop in the scalar variant, a two-lane inner loop in the SIMD
// shaped variants. There is no blocking or tiling; the shape of the
// computation is the benchmark subject.
package matmul

import (
	"errors"

	"github.com/cwbudde/algo-bench/internal/kernels"
)

// ErrInvalidDimensions is returned when two matrices cannot be multiplied
// because the left operand's column count differs from the right operand's
// row count, or when a matrix's backing slice does not match its declared
// shape. This is the only error condition in the kernel suite.
var ErrInvalidDimensions = errors.New("matrix inner dimensions do not match")

// Matrix is a dense row-major float64 matrix. Element (r, c) lives at
// Data[r*Cols+c]. Data must have length Rows*Cols.
type Matrix struct {
	Rows int
	Cols int
	Data []float64
}

// New returns a zero-filled matrix of the given shape.
// Negative dimensions are clamped to zero.
func New(rows, cols int) Matrix {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return Matrix{
		Rows: rows,
		Cols: cols,
		Data: make([]float64, rows*cols),
	}
}

// NewFromRows builds a matrix from row slices. The width is taken from the
// first row; shorter rows are zero-padded and longer rows truncated.
func NewFromRows(rows [][]float64) Matrix {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}

	m := New(len(rows), cols)
	for r, row := range rows {
		copy(m.Data[r*cols:(r+1)*cols], row)
	}
	return m
}

// At returns the element at row r, column c.
func (m Matrix) At(r, c int) float64 {
	return m.Data[r*m.Cols+c]
}

// Set assigns the element at row r, column c.
func (m Matrix) Set(r, c int, v float64) {
	m.Data[r*m.Cols+c] = v
}

// Fill sets every element to v.
func (m Matrix) Fill(v float64) {
	for i := range m.Data {
		m.Data[i] = v
	}
}

// Sum returns the sum of all elements, computed by the dispatched reduction
// kernel. The benchmark driver uses this as the product checksum.
func (m Matrix) Sum() float64 {
	return kernels.Sum(m.Data)
}

// valid reports whether the backing slice matches the declared shape.
func (m Matrix) valid() bool {
	return len(m.Data) == m.Rows*m.Cols
}

// Mul returns the product a × b.
// Returns ErrInvalidDimensions when a.Cols != b.Rows or when either
// operand's backing slice does not match its shape.
func Mul(a, b Matrix) (Matrix, error) {
	var dst Matrix
	if err := MulTo(&dst, a, b); err != nil {
		return Matrix{}, err
	}
	return dst, nil
}

// MulTo computes dst = a × b, reusing dst's backing slice when it has
// sufficient capacity. dst must not alias a or b.
// Returns ErrInvalidDimensions when a.Cols != b.Rows or when either
// operand's backing slice does not match its shape.
func MulTo(dst *Matrix, a, b Matrix) error {
	if a.Cols != b.Rows || !a.valid() || !b.valid() {
		return ErrInvalidDimensions
	}

	need := a.Rows * b.Cols
	if cap(dst.Data) >= need {
		dst.Data = dst.Data[:need]
	} else {
		dst.Data = make([]float64, need)
	}
	dst.Rows = a.Rows
	dst.Cols = b.Cols

	kernels.MatMul(dst.Data, a.Data, b.Data, a.Rows, a.Cols, b.Cols)
	return nil
}
