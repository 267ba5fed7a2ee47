package hmm_test

import (
	"testing"

	"github.com/katalvlaran/markov/hmm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestViterbi_FlipScenarios pins the 2-state deterministic-emission
// scenarios: with B=identity the decoded path must mirror the symbols.
func TestViterbi_FlipScenarios(t *testing.T) {
	m := flipModel(t)

	for _, tc := range []struct {
		obs  []int
		path []int
	}{
		{[]int{0, 1}, []int{0, 1}},
		{[]int{0, 0}, []int{0, 0}},
		{[]int{1, 1}, []int{1, 1}},
	} {
		prob, path, err := m.Viterbi(tc.obs)
		require.NoError(t, err)
		assert.Equal(t, tc.path, path, "obs %v", tc.obs)
		assert.InDelta(t, 0.25, prob, 1e-12, "obs %v", tc.obs)
	}
}

// TestViterbi_ChainScenarios pins the 3-state chain: no return
// transitions force a monotonic state walk even when the observed symbol
// would locally favor staying.
func TestViterbi_ChainScenarios(t *testing.T) {
	m := chainModel(t)

	_, path, err := m.Viterbi([]int{0, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 1}, path)

	_, path, err = m.Viterbi([]int{0, 1, 0})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, path, "symbol 0 at t=2 must push the walk into state 2")
}

// TestViterbi_SingleObservation covers the T=1 edge case: base-case
// probability, single-element path, no backtracking.
func TestViterbi_SingleObservation(t *testing.T) {
	m := flipModel(t)

	prob, path, err := m.Viterbi([]int{1})
	require.NoError(t, err)
	assert.Equal(t, []int{1}, path)
	assert.InDelta(t, 0.5, prob, 1e-12)
}

// TestViterbi_TieBreak verifies the documented first-index rule: on a
// fully uniform model every path ties, so the decoder must return all
// zeros.
func TestViterbi_TieBreak(t *testing.T) {
	m, err := hmm.NewUniform(3, 2)
	require.NoError(t, err)

	_, path, err := m.Viterbi([]int{0, 1, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 0}, path, "ties must resolve to the first state index")
}

// TestViterbi_PathShape verifies path length and state range on a
// non-trivial model.
func TestViterbi_PathShape(t *testing.T) {
	m := mixedModel(t)
	obs := []int{0, 1, 1, 0, 0, 1, 0}

	_, path, err := m.Viterbi(obs)
	require.NoError(t, err)
	require.Len(t, path, len(obs))
	for i, s := range path {
		assert.GreaterOrEqual(t, s, 0, "path[%d]", i)
		assert.Less(t, s, m.States(), "path[%d]", i)
	}
}

// TestViterbi_BoundedByEvaluate verifies the best single path never
// exceeds the total path-summed probability.
func TestViterbi_BoundedByEvaluate(t *testing.T) {
	for name, m := range map[string]*hmm.Model{
		"mixed": mixedModel(t),
		"flip":  flipModel(t),
		"chain": chainModel(t),
	} {
		t.Run(name, func(t *testing.T) {
			for _, obs := range [][]int{{0}, {0, 1}, {0, 1, 0, 0}, {1, 1, 0}} {
				total, err := m.Evaluate(obs)
				require.NoError(t, err)
				best, _, err := m.Viterbi(obs)
				require.NoError(t, err)
				assert.LessOrEqual(t, best, total+1e-12, "obs %v", obs)
			}
		})
	}
}

// TestViterbi_Validation covers sequence validation errors.
func TestViterbi_Validation(t *testing.T) {
	m := flipModel(t)

	_, _, err := m.Viterbi([]int{})
	assert.ErrorIs(t, err, hmm.ErrEmptySequence)

	_, _, err = m.Viterbi([]int{0, 5})
	assert.ErrorIs(t, err, hmm.ErrSymbolRange)
}
