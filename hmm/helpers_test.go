package hmm_test

import (
	"testing"

	"github.com/katalvlaran/markov/hmm"
	"github.com/katalvlaran/markov/matrix"
	"github.com/stretchr/testify/require"
)

// denseOf lifts a literal [][]float64 into a Dense, failing the test on
// malformed input.
func denseOf(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFunc(len(rows), len(rows[0]), func(i, j int) float64 {
		return rows[i][j]
	})
	require.NoError(t, err)

	return m
}

// mustModel builds a model, failing the test on error.
func mustModel(t *testing.T, states, outputs int, pi []float64, a, b [][]float64) *hmm.Model {
	t.Helper()
	m, err := hmm.New(states, outputs, pi, denseOf(t, a), denseOf(t, b))
	require.NoError(t, err)

	return m
}

// flipModel is the 2-state, 2-symbol deterministic-emission fixture:
// π=[0.5,0.5], A constant 0.5, B=identity (state 0 always emits 0,
// state 1 always emits 1).
func flipModel(t *testing.T) *hmm.Model {
	t.Helper()

	return mustModel(t, 2, 2,
		[]float64{0.5, 0.5},
		[][]float64{{0.5, 0.5}, {0.5, 0.5}},
		[][]float64{{1, 0}, {0, 1}},
	)
}

// chainModel is the 3-state monotonic-walk fixture: no return transitions,
// state 2 absorbing.
func chainModel(t *testing.T) *hmm.Model {
	t.Helper()

	return mustModel(t, 3, 2,
		[]float64{1, 0, 0},
		[][]float64{{0.5, 0.5, 0}, {0, 0.5, 0.5}, {0, 0, 1}},
		[][]float64{{1, 0}, {0, 1}, {1, 0}},
	)
}

// mixedModel is a well-posed 2-state fixture with strictly positive
// parameters, suitable for EM iterations.
func mixedModel(t *testing.T) *hmm.Model {
	t.Helper()

	return mustModel(t, 2, 2,
		[]float64{0.6, 0.4},
		[][]float64{{0.7, 0.3}, {0.4, 0.6}},
		[][]float64{{0.8, 0.2}, {0.3, 0.7}},
	)
}
