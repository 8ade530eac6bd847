package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitPolynomial_LinearExact(t *testing.T) {
	// y = 100 + 20*i
	y := []float64{100, 120, 140, 160}

	model, err := fitPolynomial(y, 1)
	require.NoError(t, err)
	require.Len(t, model, 2)

	assert.InDelta(t, 100, model[0], 1e-6)
	assert.InDelta(t, 20, model[1], 1e-6)
	assert.InDelta(t, 180, model.eval(4), 1e-6)
	assert.InDelta(t, 200, model.eval(5), 1e-6)
}

func TestFitPolynomial_QuadraticExact(t *testing.T) {
	// y = 3 - 2*i + i^2
	y := make([]float64, 6)
	for i := range y {
		x := float64(i)
		y[i] = 3 - 2*x + x*x
	}

	model, err := fitPolynomial(y, 2)
	require.NoError(t, err)

	assert.InDelta(t, 3, model[0], 1e-6)
	assert.InDelta(t, -2, model[1], 1e-6)
	assert.InDelta(t, 1, model[2], 1e-6)
	assert.InDelta(t, 3-2*6+36, model.eval(6), 1e-6)
}

// A higher-degree fit over noisy data still interpolates exactly when the
// point count equals degree+1.
func TestFitPolynomial_ExactInterpolation(t *testing.T) {
	y := []float64{5, -1, 4, 2}

	model, err := fitPolynomial(y, 3)
	require.NoError(t, err)
	for i, want := range y {
		assert.InDelta(t, want, model.eval(float64(i)), 1e-6, "i=%d", i)
	}
}

func TestFitPolynomial_TooFewPoints(t *testing.T) {
	_, err := fitPolynomial([]float64{1, 2}, 2)
	assert.Error(t, err)
}

func TestFitPolynomial_Deterministic(t *testing.T) {
	y := []float64{10, 14, 9, 22, 31, 28, 40}

	first, err := fitPolynomial(y, 3)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := fitPolynomial(y, 3)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestSolve_Singular(t *testing.T) {
	a := [][]float64{{1, 2}, {2, 4}}
	b := []float64{1, 2}

	_, err := solve(a, b)
	assert.Error(t, err)
}
