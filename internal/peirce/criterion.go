// Package peirce implements Peirce's Criterion for outlier rejection.
//
// Peirce's Criterion is an iterative statistical method that decides,
// without an a-priori threshold, how many points in a sample are
// inconsistent with the rest. Each round solves a transcendental
// equation for a rejection threshold R (in units of the sample standard
// deviation) and rejects the points whose residual exceeds sigma*R.
//
// References:
//   - Peirce, B. (1852). Criterion for the rejection of doubtful
//     observations. The Astronomical Journal, 2, 161-163.
//   - Ross, S. M. (2003). Peirce's Criterion for the Rejection of
//     Outliers. Journal of Engineering Technology, 20(2), 38-41.
package peirce

import "math"

// erfcFloor is the smallest erfc value treated as nonzero. Below this the
// log term is pinned to -Inf instead of producing NaN.
const erfcFloor = 1e-300

// criterionFunc evaluates the Peirce criterion function f(N, n, m, R)
// whose root in R is the rejection threshold.
//
//	nObs     - total number of observations
//	nSuspect - number of observations suspected to be outliers
//	mUnknown - number of unknown quantities estimated from the sample
//	r        - candidate threshold value
//
// The function is total: inputs outside its mathematical domain yield
// +Inf, and sub-terms that underflow yield -Inf. It never returns NaN,
// so the bisection bracket logic can rely on sign alone.
func criterionFunc(nObs, nSuspect, mUnknown int, r float64) float64 {
	if nSuspect <= 0 || nObs-nSuspect <= 0 || nObs <= 0 {
		return math.Inf(1)
	}

	bigN := float64(nObs)
	n := float64(nSuspect)
	m := float64(mUnknown)

	// log-combinatorial term Q^N = n^n (N-n)^(N-n) / N^N
	logQN := n*math.Log(n) + (bigN-n)*math.Log(bigN-n) - bigN*math.Log(bigN)

	// lambda^2 = (N - m - n R^2) / (N - m - n)
	num := bigN - m - n*r*r
	den := bigN - m - n
	if num <= 0 || den <= 0 {
		return math.Inf(1)
	}
	lambda := math.Sqrt(num / den)

	erfcVal := math.Erfc(r / math.Sqrt2)
	logErfcTerm := math.Inf(-1)
	if erfcVal > erfcFloor {
		logErfcTerm = n * math.Log(erfcVal)
	}
	if math.IsInf(logErfcTerm, -1) {
		return math.Inf(-1)
	}

	return (bigN-n)*math.Log(lambda) + 0.5*n*(r*r-1) + logErfcTerm - logQN
}
