// SPDX-License-Identifier: MIT

package hmm

import (
	"github.com/katalvlaran/markov/matrix"
	"gonum.org/v1/gonum/floats"
)

// forward computes the α table, T×states, where α[t][j] is the joint
// probability of the symbol prefix obs[0..t] and being in state j at
// time t.
//
//  1. Initialization: α[0][j] = π[j]·B[j][obs[0]]
//  2. Induction:      α[t][j] = (Σ_i α[t-1][i]·A[i][j]) · B[j][obs[t]]
//
// The caller owns the returned table; it is scratch state, never cached.
// Complexity: O(T·states²).
func (m *Model) forward(obs []int) (*matrix.Dense, error) {
	T, n := len(obs), m.states
	alpha, err := matrix.NewDense(T, n)
	if err != nil {
		return nil, err
	}
	aRows, err := viewRows(alpha)
	if err != nil {
		return nil, err
	}
	tr, em, err := m.paramRows()
	if err != nil {
		return nil, err
	}

	// Initialization.
	for j := 0; j < n; j++ {
		aRows[0][j] = m.initial[j] * em[j][obs[0]]
	}

	// Induction: each row depends only on the finalized previous row.
	var t, i, j int
	var sum float64
	for t = 1; t < T; t++ {
		prev, curr := aRows[t-1], aRows[t]
		for j = 0; j < n; j++ {
			sum = 0
			for i = 0; i < n; i++ {
				sum += prev[i] * tr[i][j]
			}
			curr[j] = sum * em[j][obs[t]]
		}
	}

	return alpha, nil
}

// Evaluate returns the total probability of the observed sequence under
// the model: Σ_j α[T-1][j] (termination of the Forward algorithm).
//
// Errors: ErrEmptySequence, ErrSymbolRange.
func (m *Model) Evaluate(obs []int) (float64, error) {
	if err := m.checkSequence(obs); err != nil {
		return 0, err
	}
	alpha, err := m.forward(obs)
	if err != nil {
		return 0, err
	}
	last, err := alpha.RowView(len(obs) - 1)
	if err != nil {
		return 0, err
	}

	return floats.Sum(last), nil
}
