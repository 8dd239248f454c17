package peirce

import "math"

const (
	// bisectEps is both the convergence tolerance on |f| and the margin
	// kept below the upper bracket bound.
	bisectEps = 2e-12

	// bracketLow is the lower bound of the search bracket. The criterion
	// function is ill-behaved near zero; 0.1 keeps the bracket inside the
	// region where the domain guards can classify failures cleanly.
	bracketLow = 0.1

	maxBisectIters = 100
)

// solveThreshold finds R in (bracketLow, sqrt((N-m)/n)) such that
// criterionFunc(nObs, nSuspect, mUnknown, R) is within bisectEps of zero.
//
// The second return value is false when no root exists: a degenerate
// bracket, no sign change across it, an undefined objective mid-search,
// or an exhausted iteration budget. None of these are errors; they mean
// no threshold is determinable at this suspect count.
func solveThreshold(nObs, nSuspect, mUnknown int) (float64, bool) {
	if nSuspect <= 0 || nObs-mUnknown <= 0 {
		return 0, false
	}

	// The objective's lambda term needs n R^2 < N - m, so the largest
	// meaningful candidate is sqrt((N-m)/n).
	ratio := float64(nObs-mUnknown) / float64(nSuspect)
	if ratio <= bracketLow*bracketLow {
		return 0, false
	}

	xl := bracketLow
	xr := math.Sqrt(ratio) - bisectEps
	if xr <= xl {
		return 0, false
	}

	fl := criterionFunc(nObs, nSuspect, mUnknown, xl)
	fr := criterionFunc(nObs, nSuspect, mUnknown, xr)
	if math.IsNaN(fl) || math.IsNaN(fr) || math.IsInf(fl, 0) || math.IsInf(fr, 0) || fl*fr > 0 {
		return 0, false
	}

	xo := (xl + xr) / 2
	fo := criterionFunc(nObs, nSuspect, mUnknown, xo)

	for iter := 0; math.Abs(fo) > bisectEps && iter < maxBisectIters; iter++ {
		if math.IsNaN(fo) || math.IsInf(fo, 0) {
			return 0, false
		}
		if fl*fo < 0 {
			xr = xo
		} else {
			xl = xo
			fl = fo
		}
		xo = (xl + xr) / 2
		fo = criterionFunc(nObs, nSuspect, mUnknown, xo)
	}

	if math.Abs(fo) > bisectEps {
		return 0, false
	}
	return xo, true
}
