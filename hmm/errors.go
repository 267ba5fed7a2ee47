// SPDX-License-Identifier: MIT
// Package hmm: sentinel error set.
// All user-triggered failures surface as these sentinels (possibly wrapped
// with call-site context); match them via errors.Is. No public operation
// panics — panics are reserved for nonsensical option construction.

package hmm

import "errors"

var (
	// ErrInvalidCounts rejects construction with states <= 0 or
	// outputs <= 0, checked eagerly before any algorithm runs.
	ErrInvalidCounts = errors.New("hmm: states and outputs must be > 0")

	// ErrDimensionMismatch rejects π/A/B whose shapes disagree with the
	// declared state and output counts.
	ErrDimensionMismatch = errors.New("hmm: parameter shape mismatch")

	// ErrEmptySequence rejects observation sequences of length 0;
	// every operation requires T >= 1.
	ErrEmptySequence = errors.New("hmm: observation sequence must be non-empty")

	// ErrSymbolRange rejects an observation symbol outside [0, outputs).
	ErrSymbolRange = errors.New("hmm: observation symbol out of range")

	// ErrStateRange rejects a state index outside [0, states).
	ErrStateRange = errors.New("hmm: state index out of range")

	// ErrNonPositiveIterations rejects a Learn iteration budget <= 0.
	ErrNonPositiveIterations = errors.New("hmm: iteration budget must be > 0")

	// ErrNonPositiveLength rejects a Generate length <= 0.
	ErrNonPositiveLength = errors.New("hmm: sequence length must be > 0")
)
