// SPDX-License-Identifier: MIT

package hmm

import (
	"fmt"

	"github.com/katalvlaran/markov/matrix"
)

// Model is a discrete-output Hidden Markov Model:
//
//	π — initial-state distribution, length states
//	A — transition matrix, states×states, A[i][j] = P(next=j | current=i)
//	B — emission matrix, states×outputs, B[i][k] = P(emit=k | state=i)
//
// The Model owns no algorithm logic; Evaluate/Viterbi/Learn/Generate are
// defined over it. Learn mutates A and B in place — the matrices passed
// to New stay live inside the Model (no defensive copy), so callers that
// need the pre-training parameters should Clone first.
type Model struct {
	states  int
	outputs int
	initial []float64     // π, copied at construction
	trans   *matrix.Dense // A, states×states, live reference
	emit    *matrix.Dense // B, states×outputs, live reference
}

// New constructs a Model over the given parameters.
//
// Errors:
//   - ErrInvalidCounts when states <= 0 or outputs <= 0 (eager, before
//     any shape inspection).
//   - ErrDimensionMismatch when π is not length states, transition is not
//     states×states, or emission is not states×outputs (nil matrices
//     included).
//
// Stochasticity of π and the rows of A and B (non-negative, summing to 1)
// is the caller's responsibility and is not enforced.
func New(states, outputs int, initial []float64, transition, emission *matrix.Dense) (*Model, error) {
	if states <= 0 || outputs <= 0 {
		return nil, fmt.Errorf("hmm: New(states=%d, outputs=%d): %w", states, outputs, ErrInvalidCounts)
	}
	if len(initial) != states {
		return nil, fmt.Errorf("hmm: New: initial has length %d, want %d: %w", len(initial), states, ErrDimensionMismatch)
	}
	if transition == nil || transition.Rows() != states || transition.Cols() != states {
		return nil, fmt.Errorf("hmm: New: transition must be %dx%d: %w", states, states, ErrDimensionMismatch)
	}
	if emission == nil || emission.Rows() != states || emission.Cols() != outputs {
		return nil, fmt.Errorf("hmm: New: emission must be %dx%d: %w", states, outputs, ErrDimensionMismatch)
	}

	pi := make([]float64, states)
	copy(pi, initial)

	return &Model{
		states:  states,
		outputs: outputs,
		initial: pi,
		trans:   transition,
		emit:    emission,
	}, nil
}

// NewUniform constructs a Model with uniform π, A and B — the standard
// uninformed starting point for Baum-Welch training.
func NewUniform(states, outputs int) (*Model, error) {
	if states <= 0 || outputs <= 0 {
		return nil, fmt.Errorf("hmm: NewUniform(states=%d, outputs=%d): %w", states, outputs, ErrInvalidCounts)
	}

	pi := make([]float64, states)
	for i := range pi {
		pi[i] = 1 / float64(states)
	}
	a, err := matrix.NewDenseFill(states, states, 1/float64(states))
	if err != nil {
		return nil, err
	}
	b, err := matrix.NewDenseFill(states, outputs, 1/float64(outputs))
	if err != nil {
		return nil, err
	}

	return New(states, outputs, pi, a, b)
}

// States returns the hidden-state count.
func (m *Model) States() int { return m.states }

// Outputs returns the output-alphabet size.
func (m *Model) Outputs() int { return m.outputs }

// Initial returns a copy of π.
func (m *Model) Initial() []float64 {
	pi := make([]float64, len(m.initial))
	copy(pi, m.initial)

	return pi
}

// Transition returns the live transition matrix A; Learn mutates it.
func (m *Model) Transition() *matrix.Dense { return m.trans }

// Emission returns the live emission matrix B; Learn mutates it.
func (m *Model) Emission() *matrix.Dense { return m.emit }

// Clone returns a deep copy; training the copy never reaches the original.
func (m *Model) Clone() *Model {
	pi := make([]float64, len(m.initial))
	copy(pi, m.initial)

	return &Model{
		states:  m.states,
		outputs: m.outputs,
		initial: pi,
		trans:   m.trans.Clone(),
		emit:    m.emit.Clone(),
	}
}

// checkSequence validates an observation sequence: T >= 1 and every
// symbol in [0, outputs).
func (m *Model) checkSequence(obs []int) error {
	if len(obs) == 0 {
		return ErrEmptySequence
	}
	for t, o := range obs {
		if o < 0 || o >= m.outputs {
			return fmt.Errorf("hmm: symbol %d/%d at position %d: %w", o, m.outputs, t, ErrSymbolRange)
		}
	}

	return nil
}

// viewRows exposes every row of d as a no-copy window, so recurrences can
// run over contiguous slices after a single bounds check per row.
func viewRows(d *matrix.Dense) ([][]float64, error) {
	rows := make([][]float64, d.Rows())
	for i := range rows {
		r, err := d.RowView(i)
		if err != nil {
			return nil, err
		}
		rows[i] = r
	}

	return rows, nil
}

// paramRows returns row views over A and B.
func (m *Model) paramRows() (tr, em [][]float64, err error) {
	if tr, err = viewRows(m.trans); err != nil {
		return nil, nil, err
	}
	if em, err = viewRows(m.emit); err != nil {
		return nil, nil, err
	}

	return tr, em, nil
}
