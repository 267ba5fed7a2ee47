// SPDX-License-Identifier: MIT

// Package hmm: functional configuration for sequence generation.
// Defaults are documented constants; option constructors panic only on
// nonsensical values (programmer error), never on runtime conditions.

package hmm

import "math/rand"

// DefaultSeed seeds the sampling source used when no WithRand option is
// supplied. A fixed seed keeps bare Generate calls reproducible.
const DefaultSeed int64 = 33

// DefaultStartState is the hidden state the sampling walk begins in when
// neither WithStartState nor WithInitialDraw is supplied. Starting at
// state 0 (rather than drawing from π) mirrors the classical
// implementation of this sampler; use WithInitialDraw for a
// statistically sampled start.
const DefaultStartState = 0

// genOptions carries the resolved Generate configuration.
type genOptions struct {
	r           *rand.Rand
	start       int
	initialDraw bool
}

// GenOption configures Generate.
type GenOption func(*genOptions)

// WithRand injects the random source used for every draw, making the
// walk deterministic under the caller's control. Panics on nil (there is
// no sensible fallback, and ambient global randomness is banned by
// design).
func WithRand(r *rand.Rand) GenOption {
	if r == nil {
		panic("hmm: WithRand: nil *rand.Rand")
	}

	return func(o *genOptions) { o.r = r }
}

// WithStartState overrides the starting hidden state. The index is
// validated against the model inside Generate (ErrStateRange).
func WithStartState(state int) GenOption {
	return func(o *genOptions) {
		o.start = state
		o.initialDraw = false
	}
}

// WithInitialDraw makes the walk draw its starting state from π instead
// of beginning at DefaultStartState.
func WithInitialDraw() GenOption {
	return func(o *genOptions) { o.initialDraw = true }
}

// gatherGenOptions applies opts over the documented defaults.
func gatherGenOptions(opts []GenOption) genOptions {
	o := genOptions{
		r:     rand.New(rand.NewSource(DefaultSeed)),
		start: DefaultStartState,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
