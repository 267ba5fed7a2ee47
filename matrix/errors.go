// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// matrix package. All operations MUST return these sentinels and tests
// MUST check them via errors.Is. No operation panics on user-triggered
// error conditions.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive. Constructors validate before any allocation.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers (At/Set/Row/Col) MUST return this, not panic.
	// The wrapping message carries the offending index and the declared
	// dimension, e.g. "row 5/3".
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrBadRange indicates an invalid half-open sub-range passed to
	// ApplyRange (lo > hi, or the window escapes the matrix).
	ErrBadRange = errors.New("matrix: invalid cell range")
)
