// SPDX-License-Identifier: MIT
// Package matrix: the Matrix type, construction, element access and formatting.
//
// Purpose:
//   - Provide a fixed-shape R×C matrix backed by a flat row-major buffer.
//   - Keep public indexers panic-free: out-of-range access returns ErrOutOfRange.
//
// Notes:
//   - The shape lives in the type: Matrix[float64, [4]float64, [2]float64] is 4x2.
//   - A nil or zero-value *Matrix reads as the zero matrix; writes allocate lazily.

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/vector"
)

// Formatting tokens for String.
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Matrix is an R-row by C-column matrix of S, with R = len(R) and C = len(C).
// Storage is row-major: element (i,j) lives at data[i*cols+j].
// Matrices are handled by pointer; use Clone for an independent copy.
type Matrix[S scalar.Scalar, R vector.Dim[S], C vector.Dim[S]] struct {
	data []S // len == rows*cols once allocated; nil reads as zeros
}

// Matrix2, Matrix3 and Matrix4 are the square shapes used by transforms.
type (
	Matrix2[S scalar.Scalar] = Matrix[S, [2]S, [2]S]
	Matrix3[S scalar.Scalar] = Matrix[S, [3]S, [3]S]
	Matrix4[S scalar.Scalar] = Matrix[S, [4]S, [4]S]
)

// New returns a zero-filled R×C matrix.
// Complexity: O(R*C) for zeroing.
func New[S scalar.Scalar, R vector.Dim[S], C vector.Dim[S]]() *Matrix[S, R, C] {
	r, c := shape[S, R, C]()

	return &Matrix[S, R, C]{data: make([]S, r*c)}
}

// FromSlice copies a row-major slice of exactly R*C values.
// Returns ErrDimensionMismatch on a length mismatch.
func FromSlice[S scalar.Scalar, R vector.Dim[S], C vector.Dim[S]](s []S) (*Matrix[S, R, C], error) {
	r, c := shape[S, R, C]()
	if len(s) != r*c {
		return nil, matrixErrorf(opFromSlice, fmt.Errorf("want %d values, got %d: %w", r*c, len(s), ErrDimensionMismatch))
	}
	m := &Matrix[S, R, C]{data: make([]S, r*c)}
	copy(m.data, s)

	return m, nil
}

// FromValues builds a matrix from up to R*C row-major values; the rest are zero.
// Returns ErrTooManyValues when more than R*C values are given.
func FromValues[S scalar.Scalar, R vector.Dim[S], C vector.Dim[S]](values ...S) (*Matrix[S, R, C], error) {
	m := New[S, R, C]()
	if len(values) > len(m.data) {
		return nil, matrixErrorf(opFromValues, ErrTooManyValues)
	}
	copy(m.data, values)

	return m, nil
}

// FromVector reinterprets a flat vector of R*C components as a row-major matrix.
// Returns ErrDimensionMismatch if len(F) != R*C.
func FromVector[R vector.Dim[S], C vector.Dim[S], S scalar.Scalar, F vector.Dim[S]](v vector.Vector[S, F]) (*Matrix[S, R, C], error) {
	m, err := FromSlice[S, R, C](v.Slice())
	if err != nil {
		return nil, matrixErrorf(opFromVector, err)
	}

	return m, nil
}

// values returns the backing buffer, or nil for an unallocated matrix.
func (m *Matrix[S, R, C]) values() []S {
	if m == nil {
		return nil
	}

	return m.data
}

// at reads (i,j) without bounds checks; unallocated storage reads as zero.
func (m *Matrix[S, R, C]) at(i, j int) S {
	d := m.values()
	if d == nil {
		return 0
	}

	return d[i*m.Cols()+j]
}

// ensure allocates the buffer of a zero-value matrix.
func (m *Matrix[S, R, C]) ensure() {
	if m.data == nil {
		r, c := shape[S, R, C]()
		m.data = make([]S, r*c)
	}
}

// Rows returns the number of rows.
func (m *Matrix[S, R, C]) Rows() int {
	r, _ := shape[S, R, C]()

	return r
}

// Cols returns the number of columns.
func (m *Matrix[S, R, C]) Cols() int {
	_, c := shape[S, R, C]()

	return c
}

// Shape returns (rows, cols).
func (m *Matrix[S, R, C]) Shape() (int, int) { return shape[S, R, C]() }

// Get returns element (i,j) or ErrOutOfRange.
func (m *Matrix[S, R, C]) Get(i, j int) (S, error) {
	if err := validateIndex(i, j, m.Rows(), m.Cols()); err != nil {
		return 0, matrixErrorf(opGet, err)
	}

	return m.at(i, j), nil
}

// Set assigns element (i,j). Returns ErrNilMatrix for a nil receiver and
// ErrOutOfRange for a bad index.
func (m *Matrix[S, R, C]) Set(i, j int, v S) error {
	if m == nil {
		return matrixErrorf(opSet, ErrNilMatrix)
	}
	if err := validateIndex(i, j, m.Rows(), m.Cols()); err != nil {
		return matrixErrorf(opSet, err)
	}
	m.ensure()
	m.data[i*m.Cols()+j] = v

	return nil
}

// Row returns row i as a vector, or ErrOutOfRange.
func (m *Matrix[S, R, C]) Row(i int) (vector.Vector[S, C], error) {
	var out C
	if err := validateIndex(i, 0, m.Rows(), m.Cols()); err != nil {
		return vector.Vector[S, C]{}, matrixErrorf(opRow, err)
	}
	for j := 0; j < len(out); j++ {
		out[j] = m.at(i, j)
	}

	return vector.FromArray[S](out), nil
}

// Slice returns a row-major copy of all elements.
func (m *Matrix[S, R, C]) Slice() []S {
	r, c := shape[S, R, C]()
	out := make([]S, r*c)
	copy(out, m.values())

	return out
}

// Clone returns an independent deep copy. A nil receiver clones to a zero matrix.
// Complexity: O(R*C).
func (m *Matrix[S, R, C]) Clone() *Matrix[S, R, C] {
	return &Matrix[S, R, C]{data: m.Slice()}
}

// Equal reports exact element equality.
func (m *Matrix[S, R, C]) Equal(o *Matrix[S, R, C]) bool {
	r, c := shape[S, R, C]()
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if m.at(i, j) != o.at(i, j) {
				return false
			}
		}
	}

	return true
}

// String renders one bracketed row per line, e.g. "[1, 0]\n[0, 1]\n".
func (m *Matrix[S, R, C]) String() string {
	var b strings.Builder
	r, c := shape[S, R, C]()
	var i, j int
	for i = 0; i < r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen)
		for j = 0; j < c; j++ {
			fmt.Fprint(&b, m.at(i, j))
			if j < c-1 {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
