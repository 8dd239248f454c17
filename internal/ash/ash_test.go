package ash

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var paperData = []float64{
	-0.38763, 0.80928, 1.5736, -0.19156, -1.2762, 0.012471, 2.7392,
	-0.14373, 1.5309, -0.71012, 2.6883, -0.97024, -0.18379, 0.39052,
	0.89383, -0.28856, -0.82227, -1.2461, 2.8595, 0.50082,
}

func TestComputeDensityIntegratesToOne(t *testing.T) {
	den, err := Compute(paperData)
	require.NoError(t, err)
	require.NotEmpty(t, den.Mesh)
	require.Len(t, den.Values, len(den.Mesh))

	// Riemann sum over the fine mesh should be close to 1.
	delta := den.Mesh[1] - den.Mesh[0]
	total := 0.0
	for _, v := range den.Values {
		require.False(t, math.IsNaN(v))
		require.GreaterOrEqual(t, v, 0.0)
		total += v * delta
	}
	assert.InDelta(t, 1.0, total, 0.05)
}

func TestComputeMeshCoversData(t *testing.T) {
	den, err := Compute(paperData)
	require.NoError(t, err)

	assert.Less(t, den.Mesh[0], -1.2762)
	assert.Greater(t, den.Mesh[len(den.Mesh)-1], 2.8595)
	for i := 1; i < len(den.Mesh); i++ {
		assert.Greater(t, den.Mesh[i], den.Mesh[i-1])
	}
}

func TestComputeDegenerateSpread(t *testing.T) {
	den, err := Compute([]float64{5, 5, 5, 5})
	require.NoError(t, err)
	require.NotEmpty(t, den.Values)

	peak := 0.0
	for _, v := range den.Values {
		require.False(t, math.IsNaN(v))
		if v > peak {
			peak = v
		}
	}
	assert.Greater(t, peak, 0.0)
}

func TestComputeRejectsTinySamples(t *testing.T) {
	_, err := Compute(nil)
	assert.Error(t, err)
	_, err = Compute([]float64{1.0})
	assert.Error(t, err)
}

func TestSummarize(t *testing.T) {
	sum, err := Summarize([]float64{1, 2, 3, 4, 5})
	require.NoError(t, err)

	assert.Equal(t, 5, sum.N)
	assert.InDelta(t, 3.0, sum.Mean, 1e-12)
	assert.InDelta(t, 3.0, sum.Median, 1e-12)
	assert.InDelta(t, math.Sqrt(2.5), sum.StdDev, 1e-12)
	assert.Equal(t, 1.0, sum.Min)
	assert.Equal(t, 5.0, sum.Max)
	assert.InDelta(t, 0.0, sum.Skewness, 1e-12)
}

func TestSummarizeEmpty(t *testing.T) {
	_, err := Summarize(nil)
	assert.Error(t, err)
}

func TestNormalReference(t *testing.T) {
	mesh := []float64{-1, 0, 1}
	vals := NormalReference(mesh, 0, 1)
	require.Len(t, vals, 3)

	// Standard normal peak at 0 is 1/sqrt(2*pi).
	assert.InDelta(t, 0.3989, vals[1], 1e-3)
	assert.InDelta(t, vals[0], vals[2], 1e-12)

	zeros := NormalReference(mesh, 0, 0)
	assert.Equal(t, []float64{0, 0, 0}, zeros)
}
