// SPDX-License-Identifier: MIT

// Package matrix - lazy row/column folds.
//
// Vec is the fold primitive behind Row and Col: a finite, single-pass,
// forward-only sequence of cells. Every reduction (Sum, Max, Min,
// IndexOf) consumes the sequence; obtain a fresh Vec for each pass.
package matrix

import (
	"fmt"
	"math"
)

// Vec is a lazy, single-pass, forward-only sequence over one row or one
// column of a Dense. It is finite and not restartable: once a fold has
// consumed it, further folds see an exhausted sequence.
type Vec struct {
	next func() (float64, bool)
}

// Row returns a lazy sequence over row i, left to right.
// Returns ErrOutOfRange (with index and dimension) for an invalid row.
// Complexity: O(1) to build; each fold is O(cols).
func (m *Dense) Row(row int) (Vec, error) {
	if row < 0 || row >= m.r {
		return Vec{}, fmt.Errorf("matrix: Dense.Row: row %d/%d: %w", row, m.r, ErrOutOfRange)
	}
	base, k, c := row*m.c, 0, m.c

	return Vec{next: func() (float64, bool) {
		if k >= c {
			return 0, false
		}
		v := m.data[base+k]
		k++

		return v, true
	}}, nil
}

// Col returns a lazy sequence over column j, top to bottom.
// Returns ErrOutOfRange (with index and dimension) for an invalid column.
// Complexity: O(1) to build; each fold is O(rows).
func (m *Dense) Col(col int) (Vec, error) {
	if col < 0 || col >= m.c {
		return Vec{}, fmt.Errorf("matrix: Dense.Col: col %d/%d: %w", col, m.c, ErrOutOfRange)
	}
	off, r, stride, k := col, m.r, m.c, 0
	data := m.data

	return Vec{next: func() (float64, bool) {
		if k >= r {
			return 0, false
		}
		v := data[off]
		off += stride
		k++

		return v, true
	}}, nil
}

// Fold consumes the sequence, threading an accumulator through f.
func (v Vec) Fold(init float64, f func(acc, x float64) float64) float64 {
	acc := init
	for x, ok := v.next(); ok; x, ok = v.next() {
		acc = f(acc, x)
	}

	return acc
}

// Sum consumes the sequence and returns the total of its cells.
func (v Vec) Sum() float64 {
	return v.Fold(0, func(acc, x float64) float64 { return acc + x })
}

// Max consumes the sequence and returns its largest cell.
// An already-exhausted sequence yields -Inf.
func (v Vec) Max() float64 {
	return v.Fold(math.Inf(-1), math.Max)
}

// Min consumes the sequence and returns its smallest cell.
// An already-exhausted sequence yields +Inf.
func (v Vec) Min() float64 {
	return v.Fold(math.Inf(1), math.Min)
}

// IndexOf consumes the sequence and returns the position of the first
// cell equal to x, or -1 when absent. Positions count from the start of
// this pass (forward-only semantics).
func (v Vec) IndexOf(x float64) int {
	idx, found := 0, -1
	for cell, ok := v.next(); ok; cell, ok = v.next() {
		if cell == x {
			found = idx

			break
		}
		idx++
	}

	return found
}
