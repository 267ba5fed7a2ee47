// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Dense keeps its elements in one flat slice with the explicit index
// formula i*cols + j. Safety lives at the public surface: At/Set return
// errors instead of panicking, and every bounds error names both the
// offending index and the declared dimension.
package matrix

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Dense is a concrete row-major matrix.
//   - r, c hold dimensions (rows, cols), both strictly positive.
//   - data is a flat buffer of length r*c in row-major order
//     (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts (>0)
	data []float64 // contiguous row-major storage, len == r*c
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
// Returns ErrInvalidDimensions when rows <= 0 or cols <= 0.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// make() zero-fills the buffer deterministically.
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFill creates an r×c matrix with every cell set to v.
// Complexity: O(r*c).
func NewDenseFill(rows, cols int, v float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	for k := range m.data {
		m.data[k] = v
	}

	return m, nil
}

// NewDenseFunc creates an r×c matrix where cell (i,j) is initialized to
// f(i, j). Cells are visited in row-major, ascending order.
// Complexity: O(r*c).
func NewDenseFunc(rows, cols int, f func(i, j int) float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var i, j, base int
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			m.data[base+j] = f(i, j)
		}
	}

	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call. Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// boundsErr builds the ErrOutOfRange wrapper naming the offending
// coordinate and the declared dimension, e.g. "Dense.At: row 5/3".
func (m *Dense) boundsErr(method string, i, j int) error {
	if i < 0 || i >= m.r {
		return fmt.Errorf("matrix: Dense.%s: row %d/%d: %w", method, i, m.r, ErrOutOfRange)
	}

	return fmt.Errorf("matrix: Dense.%s: col %d/%d: %w", method, j, m.c, ErrOutOfRange)
}

// offset computes the row-major offset or returns the wrapped bounds error.
func (m *Dense) offset(method string, i, j int) (int, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, m.boundsErr(method, i, j)
	}

	return i*m.c + j, nil
}

// At returns the value at (row, col), or ErrOutOfRange wrapped with the
// offending index and the declared dimension. Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.offset("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[off], nil
}

// Set stores v at (row, col), or returns ErrOutOfRange wrapped with the
// offending index and the declared dimension. Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.offset("Set", row, col)
	if err != nil {
		return err
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy; mutations on the copy never reach the
// original. Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Map returns a new matrix where cell (i,j) holds f(i, j, old). The
// receiver is never mutated. Cells are visited in row-major, ascending
// order, always reading the receiver's original values.
// Complexity: O(r*c) time and memory.
func (m *Dense) Map(f func(i, j int, v float64) float64) *Dense {
	out := m.Clone()
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			out.data[base+j] = f(i, j, m.data[base+j])
		}
	}

	return out
}

// Apply replaces every cell with f(i, j, old) in place, walking cells in
// row-major, ascending order. Later cells observe values written by
// earlier cells in the same pass; intra-pass recurrences rely on this.
// Complexity: O(r*c), no allocations.
func (m *Dense) Apply(f func(i, j int, v float64) float64) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			m.data[base+j] = f(i, j, m.data[base+j])
		}
	}
}

// ApplyRange behaves like Apply restricted to the half-open window
// [rowLo, rowHi) × [colLo, colHi). Returns ErrBadRange when the window is
// inverted or escapes the matrix. An empty window is legal and a no-op.
// Complexity: O((rowHi-rowLo)*(colHi-colLo)).
func (m *Dense) ApplyRange(rowLo, rowHi, colLo, colHi int, f func(i, j int, v float64) float64) error {
	if rowLo < 0 || rowHi > m.r || rowLo > rowHi ||
		colLo < 0 || colHi > m.c || colLo > colHi {
		return fmt.Errorf("matrix: Dense.ApplyRange(%d:%d,%d:%d) of %dx%d: %w",
			rowLo, rowHi, colLo, colHi, m.r, m.c, ErrBadRange)
	}
	var i, j, base int
	for i = rowLo; i < rowHi; i++ {
		base = i * m.c
		for j = colLo; j < colHi; j++ {
			m.data[base+j] = f(i, j, m.data[base+j])
		}
	}

	return nil
}

// RowView returns the row as a no-copy window into the backing storage:
// writes through the slice are writes into the matrix. Callers that need
// an independent lifetime must copy. Complexity: O(1).
func (m *Dense) RowView(row int) ([]float64, error) {
	if row < 0 || row >= m.r {
		return nil, fmt.Errorf("matrix: Dense.RowView: row %d/%d: %w", row, m.r, ErrOutOfRange)
	}
	base := row * m.c

	return m.data[base : base+m.c], nil
}

// Sum returns the total of all cells. Complexity: O(r*c).
func (m *Dense) Sum() float64 {
	return floats.Sum(m.data)
}

// String renders a readable row-wise dump for diagnostics; not for hot
// paths. Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString("[")
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%g", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(", ")
			}
		}
		b.WriteString("]\n")
	}

	return b.String()
}
