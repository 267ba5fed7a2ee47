package hmm_test

import (
	"testing"

	"github.com/katalvlaran/markov/hmm"
	"github.com/katalvlaran/markov/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_InvalidCounts verifies eager rejection of non-positive state or
// output counts, before any shape inspection.
func TestNew_InvalidCounts(t *testing.T) {
	_, err := hmm.New(0, 2, nil, nil, nil)
	assert.ErrorIs(t, err, hmm.ErrInvalidCounts)

	_, err = hmm.New(2, 0, nil, nil, nil)
	assert.ErrorIs(t, err, hmm.ErrInvalidCounts)

	_, err = hmm.New(-3, -1, nil, nil, nil)
	assert.ErrorIs(t, err, hmm.ErrInvalidCounts)

	_, err = hmm.NewUniform(0, 5)
	assert.ErrorIs(t, err, hmm.ErrInvalidCounts)
}

// TestNew_DimensionMismatch verifies shape validation of π, A and B.
func TestNew_DimensionMismatch(t *testing.T) {
	a, err := matrix.NewDenseFill(2, 2, 0.5)
	require.NoError(t, err)
	b, err := matrix.NewDenseFill(2, 3, 1.0/3.0)
	require.NoError(t, err)
	pi := []float64{0.5, 0.5}

	// Wrong π length.
	_, err = hmm.New(2, 3, []float64{1}, a, b)
	assert.ErrorIs(t, err, hmm.ErrDimensionMismatch)

	// Wrong transition shape.
	wrongA, err := matrix.NewDenseFill(2, 3, 0.5)
	require.NoError(t, err)
	_, err = hmm.New(2, 3, pi, wrongA, b)
	assert.ErrorIs(t, err, hmm.ErrDimensionMismatch)

	// Wrong emission shape.
	wrongB, err := matrix.NewDenseFill(3, 3, 0.5)
	require.NoError(t, err)
	_, err = hmm.New(2, 3, pi, a, wrongB)
	assert.ErrorIs(t, err, hmm.ErrDimensionMismatch)

	// Nil matrices.
	_, err = hmm.New(2, 3, pi, nil, b)
	assert.ErrorIs(t, err, hmm.ErrDimensionMismatch)
	_, err = hmm.New(2, 3, pi, a, nil)
	assert.ErrorIs(t, err, hmm.ErrDimensionMismatch)

	// Well-formed construction succeeds.
	m, err := hmm.New(2, 3, pi, a, b)
	require.NoError(t, err)
	assert.Equal(t, 2, m.States())
	assert.Equal(t, 3, m.Outputs())
}

// TestNewUniform verifies the uniform starting point is row-stochastic.
func TestNewUniform(t *testing.T) {
	m, err := hmm.NewUniform(4, 6)
	require.NoError(t, err)

	pi := m.Initial()
	var piSum float64
	for _, p := range pi {
		piSum += p
	}
	assert.InDelta(t, 1.0, piSum, 1e-12)

	for i := 0; i < 4; i++ {
		row, err := m.Transition().Row(i)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, row.Sum(), 1e-12, "A row %d", i)

		row, err = m.Emission().Row(i)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, row.Sum(), 1e-12, "B row %d", i)
	}
}

// TestModel_InitialIsCopy verifies π cannot be mutated from outside.
func TestModel_InitialIsCopy(t *testing.T) {
	m := flipModel(t)

	pi := m.Initial()
	pi[0] = 99

	again := m.Initial()
	assert.Equal(t, 0.5, again[0], "Initial must return a defensive copy")
}

// TestModel_Clone verifies training-grade independence of clones.
func TestModel_Clone(t *testing.T) {
	m := mixedModel(t)
	cp := m.Clone()

	require.NoError(t, cp.Transition().Set(0, 0, 0.123))
	orig, err := m.Transition().At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.7, orig, "clone mutation must not reach the original")
}
