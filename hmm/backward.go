// SPDX-License-Identifier: MIT

package hmm

import "github.com/katalvlaran/markov/matrix"

// backward computes the β table, T×states, where β[t][i] is the
// probability of the symbol suffix obs[t+1..T-1] given state i at time t.
//
//  1. Initialization: β[T-1][i] = 1
//  2. Induction:      β[t][i] = Σ_j A[i][j]·B[j][obs[t+1]]·β[t+1][j]
//
// Used only by Learn; never returned to callers. The table is scratch
// state owned by the invoking call. Complexity: O(T·states²).
func (m *Model) backward(obs []int) (*matrix.Dense, error) {
	T, n := len(obs), m.states
	beta, err := matrix.NewDense(T, n)
	if err != nil {
		return nil, err
	}
	bRows, err := viewRows(beta)
	if err != nil {
		return nil, err
	}
	tr, em, err := m.paramRows()
	if err != nil {
		return nil, err
	}

	// Initialization.
	for i := 0; i < n; i++ {
		bRows[T-1][i] = 1
	}

	// Induction, walking time backwards.
	var t, i, j int
	var sum float64
	for t = T - 2; t >= 0; t-- {
		next, curr, o := bRows[t+1], bRows[t], obs[t+1]
		for i = 0; i < n; i++ {
			sum = 0
			for j = 0; j < n; j++ {
				sum += tr[i][j] * em[j][o] * next[j]
			}
			curr[i] = sum
		}
	}

	return beta, nil
}
