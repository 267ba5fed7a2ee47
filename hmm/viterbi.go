// SPDX-License-Identifier: MIT

package hmm

import "github.com/katalvlaran/markov/matrix"

// Viterbi decodes the single most probable hidden-state path explaining
// the observations, returning (best path probability, path of length T).
//
// Recurrence over the δ (best partial-path probability) and ψ
// (backpointer) tables, both T×states:
//
//	δ[0][j] = π[j]·B[j][obs[0]]
//	δ[t][j] = (max_i δ[t-1][i]·A[i][j]) · B[j][obs[t]]
//	ψ[t][j] = argmax_i δ[t-1][i]·A[i][j]
//
// Termination takes max_j δ[T-1][j]; the path is recovered by walking ψ
// backwards.
//
// Tie-break contract: whenever several states attain the maximum — in the
// per-step argmax and in the final-state argmax — the FIRST (lowest)
// state index wins. This is a documented, deliberate rule; callers may
// rely on it.
//
// Edge case: T=1 returns the base-case probability and a single-element
// path with no backtracking.
//
// Errors: ErrEmptySequence, ErrSymbolRange.
// Complexity: O(T·states²) time, O(T·states) memory.
func (m *Model) Viterbi(obs []int) (float64, []int, error) {
	if err := m.checkSequence(obs); err != nil {
		return 0, nil, err
	}
	T, n := len(obs), m.states

	delta, err := matrix.NewDense(T, n)
	if err != nil {
		return 0, nil, err
	}
	// ψ stores previous-state indices as numbers in the same 2-D buffer
	// abstraction; row 0 stays unused.
	psi, err := matrix.NewDense(T, n)
	if err != nil {
		return 0, nil, err
	}
	dRows, err := viewRows(delta)
	if err != nil {
		return 0, nil, err
	}
	pRows, err := viewRows(psi)
	if err != nil {
		return 0, nil, err
	}
	tr, em, err := m.paramRows()
	if err != nil {
		return 0, nil, err
	}

	// Base case.
	for j := 0; j < n; j++ {
		dRows[0][j] = m.initial[j] * em[j][obs[0]]
	}

	// Recursion. Strict ">" keeps the first index on ties.
	var t, i, j, arg int
	var best, cand float64
	for t = 1; t < T; t++ {
		prev, curr := dRows[t-1], dRows[t]
		for j = 0; j < n; j++ {
			best, arg = prev[0]*tr[0][j], 0
			for i = 1; i < n; i++ {
				if cand = prev[i] * tr[i][j]; cand > best {
					best, arg = cand, i
				}
			}
			curr[j] = best * em[j][obs[t]]
			pRows[t][j] = float64(arg)
		}
	}

	// Termination: best final state, first index on ties.
	last := dRows[T-1]
	best, arg = last[0], 0
	for j = 1; j < n; j++ {
		if last[j] > best {
			best, arg = last[j], j
		}
	}

	// Backtrack.
	path := make([]int, T)
	path[T-1] = arg
	for t = T - 2; t >= 0; t-- {
		path[t] = int(pRows[t+1][path[t+1]])
	}

	return best, path, nil
}
