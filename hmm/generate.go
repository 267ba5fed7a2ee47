// SPDX-License-Identifier: MIT

package hmm

import "fmt"

// Generate draws a synthetic observation sequence of the given length by
// stochastically walking the model: at each step the emitted symbol is
// sampled from B[state] and the next state from A[state], both via
// inverse-CDF inversion against a uniform draw in [0,1).
//
// The walk starts at DefaultStartState unless WithStartState or
// WithInitialDraw says otherwise, and uses a source seeded with
// DefaultSeed unless WithRand injects one — so Generate is deterministic
// for a fixed model and options.
//
// Errors: ErrNonPositiveLength, ErrStateRange (bad WithStartState).
// Complexity: O(length · (states + outputs)).
func (m *Model) Generate(length int, opts ...GenOption) ([]int, error) {
	if length <= 0 {
		return nil, fmt.Errorf("hmm: Generate(length=%d): %w", length, ErrNonPositiveLength)
	}
	o := gatherGenOptions(opts)
	if o.start < 0 || o.start >= m.states {
		return nil, fmt.Errorf("hmm: Generate: start state %d/%d: %w", o.start, m.states, ErrStateRange)
	}

	tr, em, err := m.paramRows()
	if err != nil {
		return nil, err
	}

	state := o.start
	if o.initialDraw {
		state = nextIndex(m.initial, o.r.Float64())
	}

	seq := make([]int, length)
	for t := range seq {
		seq[t] = nextIndex(em[state], o.r.Float64())
		state = nextIndex(tr[state], o.r.Float64())
	}

	return seq, nil
}

// nextIndex is the linear-scan inverse-CDF sampler: it accumulates the
// distribution left to right and picks the first index whose cumulative
// sum reaches u. Rounding shortfall (cumulative total < u) falls through
// to the last index.
func nextIndex(dist []float64, u float64) int {
	var cum float64
	for k, p := range dist {
		cum += p
		if cum >= u {
			return k
		}
	}

	return len(dist) - 1
}
