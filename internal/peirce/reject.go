package peirce

import (
	"math"

	"github.com/montanaflynn/stats"
)

// Termination identifies why the rejection loop stopped. It is carried
// for diagnostics only; every terminal state returns the last committed
// result the same way.
type Termination int

const (
	// TerminationExhausted means half or more of the sample would have to
	// be suspected, so no further rounds are possible.
	TerminationExhausted Termination = iota
	// TerminationUnsolvable means no rejection threshold exists for the
	// current suspect count.
	TerminationUnsolvable
	// TerminationStalled means a round failed to strictly grow the
	// rejection set.
	TerminationStalled
)

func (t Termination) String() string {
	switch t {
	case TerminationExhausted:
		return "exhausted"
	case TerminationUnsolvable:
		return "unsolvable"
	case TerminationStalled:
		return "stalled"
	}
	return "unknown"
}

// Result is the accept/reject partition of a sample. It is a value: each
// committed round replaces the whole result rather than mutating it.
type Result struct {
	// Accepted and Rejected are complementary masks over the original
	// sample, in input order.
	Accepted []bool
	Rejected []bool
	// Filtered holds the sample values where Accepted is true.
	Filtered []float64
	// Termination records why the loop stopped.
	Termination Termination
}

// RejectedCount returns the number of rejected points.
func (r Result) RejectedCount() int {
	count := 0
	for _, rej := range r.Rejected {
		if rej {
			count++
		}
	}
	return count
}

// Reject applies Peirce's Criterion to sample with mUnknown estimated
// quantities and returns the final partition.
//
// The mean and sample standard deviation are computed once from the full
// sample and residuals are never recomputed from a shrinking subset, so
// each round's threshold stays comparable. Rounds commit only when they
// strictly grow the rejection set, which bounds the loop at N/2 rounds.
//
// Reject never fails: any input that cannot yield a valid (N, n, m)
// combination, including an empty sample, sigma of zero, or a negative
// mUnknown, terminates cleanly with the all-accepted result. Outlier
// rejection is advisory; doing nothing is always a safe answer.
func Reject(sample []float64, mUnknown int) Result {
	nObs := len(sample)
	result := allAccepted(sample)

	if nObs < 2 || mUnknown < 0 {
		return result
	}

	mean, err := stats.Mean(sample)
	if err != nil {
		return result
	}
	sigma, err := stats.StandardDeviationSample(sample)
	if err != nil || math.IsNaN(sigma) {
		return result
	}

	// Residuals against the original sample, fixed for the whole run.
	delta := make([]float64, nObs)
	for i, x := range sample {
		delta[i] = math.Abs(x - mean)
	}

	prevRejected := 0
	nSuspect := 1

	for {
		if nObs/2 <= nSuspect {
			result.Termination = TerminationExhausted
			return result
		}

		r, ok := solveThreshold(nObs, nSuspect, mUnknown)
		if !ok {
			result.Termination = TerminationUnsolvable
			return result
		}

		rejected := make([]bool, nObs)
		count := 0
		for i, d := range delta {
			if d > sigma*r {
				rejected[i] = true
				count++
			}
		}

		if count <= prevRejected {
			result.Termination = TerminationStalled
			return result
		}

		result = commit(sample, rejected)
		prevRejected = count
		nSuspect++
	}
}

// allAccepted is the initial (and fail-soft) result: every point kept.
func allAccepted(sample []float64) Result {
	accepted := make([]bool, len(sample))
	for i := range accepted {
		accepted[i] = true
	}
	filtered := make([]float64, len(sample))
	copy(filtered, sample)
	return Result{
		Accepted:    accepted,
		Rejected:    make([]bool, len(sample)),
		Filtered:    filtered,
		Termination: TerminationExhausted,
	}
}

// commit builds a fresh Result from a rejection mask.
func commit(sample []float64, rejected []bool) Result {
	accepted := make([]bool, len(sample))
	filtered := make([]float64, 0, len(sample))
	for i, rej := range rejected {
		accepted[i] = !rej
		if !rej {
			filtered = append(filtered, sample[i])
		}
	}
	return Result{Accepted: accepted, Rejected: rejected, Filtered: filtered}
}
