// SPDX-License-Identifier: MIT

package hmm

import (
	"math"

	"github.com/katalvlaran/markov/matrix"
	"gonum.org/v1/gonum/floats"
)

// DefaultEpsilon is the convergence tolerance for Learn: iteration stops
// once the absolute change in sequence likelihood drops below it.
const DefaultEpsilon = 1e-6

// Learn reestimates the transition and emission matrices in place from
// one observation sequence via Baum-Welch (EM), running at most
// maxIterations iterations as an explicit bounded loop.
//
// Per iteration:
//
//  1. Compute α and β under the current A, B.
//  2. Normalization term: total forward mass Σ_j α[T-1][j] (the sequence
//     likelihood under the current parameters).
//  3. η[t][i][j] = α[t][i]·A[i][j]·B[j][obs[t+1]]·β[t+1][j] / norm,
//     γ[t][i] = Σ_j η[t][i][j], both for t ∈ [0, T-1). The final
//     timestep's γ row has no corresponding η and is excluded from every
//     reestimation sum (boundary policy, fixed here).
//  4. A[i][j] ← Σ_t η[t][i][j] / Σ_t γ[t][i]
//     B[i][k] ← Σ_{t: obs[t]=k} γ[t][i] / Σ_t γ[t][i]
//  5. Recompute the likelihood under the updated parameters; stop when
//     |new − previous| < DefaultEpsilon or the budget is exhausted.
//
// Degenerate-denominator policy (documented contract): when state i has
// zero occupancy (Σ_t γ[t][i] = 0), rows i of A and B are FROZEN at
// their previous values for that iteration. Freezing keeps the rows
// stochastic; NaN never propagates out of Learn.
//
// Degenerate sequences with zero likelihood under the current parameters
// stop the loop immediately — there is no posterior mass to reestimate
// from.
//
// T=1 is a no-op beyond validation: there are no transitions to count.
//
// Errors: ErrEmptySequence, ErrSymbolRange, ErrNonPositiveIterations.
// Complexity: O(iterations · T·states²) time, O(T·states) memory (η is
// folded into its running sums; only γ is materialized).
func (m *Model) Learn(obs []int, maxIterations int) error {
	if err := m.checkSequence(obs); err != nil {
		return err
	}
	if maxIterations <= 0 {
		return ErrNonPositiveIterations
	}
	T, n := len(obs), m.states
	if T == 1 {
		return nil
	}

	tr, em, err := m.paramRows()
	if err != nil {
		return err
	}

	for iter := 0; iter < maxIterations; iter++ {
		alpha, err := m.forward(obs)
		if err != nil {
			return err
		}
		beta, err := m.backward(obs)
		if err != nil {
			return err
		}
		aRows, err := viewRows(alpha)
		if err != nil {
			return err
		}
		bRows, err := viewRows(beta)
		if err != nil {
			return err
		}

		// Likelihood under the current parameters doubles as the η
		// normalization term.
		norm := floats.Sum(aRows[T-1])
		if norm == 0 {
			return nil
		}

		// Expectation: fold η into its running transition sums and the
		// γ table as it is produced.
		sumEta, err := matrix.NewDense(n, n) // Σ_t η[t][i][j]
		if err != nil {
			return err
		}
		gamma, err := matrix.NewDense(T-1, n) // γ[t][i], t ∈ [0, T-1)
		if err != nil {
			return err
		}
		eRows, err := viewRows(sumEta)
		if err != nil {
			return err
		}
		gRows, err := viewRows(gamma)
		if err != nil {
			return err
		}

		var t, i, j, k int
		var e float64
		for t = 0; t < T-1; t++ {
			at, bt1, gt, o := aRows[t], bRows[t+1], gRows[t], obs[t+1]
			for i = 0; i < n; i++ {
				for j = 0; j < n; j++ {
					e = at[i] * tr[i][j] * em[j][o] * bt1[j] / norm
					eRows[i][j] += e
					gt[i] += e
				}
			}
		}

		// Occupancy denominators: Σ_t γ[t][i] over t ∈ [0, T-1).
		occ := make([]float64, n)
		for t = 0; t < T-1; t++ {
			for i = 0; i < n; i++ {
				occ[i] += gRows[t][i]
			}
		}

		// Maximization. Zero-occupancy states keep their previous rows.
		for i = 0; i < n; i++ {
			if occ[i] == 0 {
				continue
			}
			for j = 0; j < n; j++ {
				tr[i][j] = eRows[i][j] / occ[i]
			}
			for k = 0; k < m.outputs; k++ {
				em[i][k] = 0
			}
			for t = 0; t < T-1; t++ {
				em[i][obs[t]] += gRows[t][i] / occ[i]
			}
		}

		// Convergence check against the pre-update likelihood.
		lik, err := m.Evaluate(obs)
		if err != nil {
			return err
		}
		if math.Abs(lik-norm) < DefaultEpsilon {
			return nil
		}
	}

	return nil
}
