package peirce

import (
	"math"
	"testing"
)

func TestCriterionFuncDomainGuards(t *testing.T) {
	cases := []struct {
		name       string
		nObs, n, m int
		r          float64
	}{
		{"zero suspects", 10, 0, 1, 1.0},
		{"all suspects", 10, 10, 1, 1.0},
		{"negative suspects", 10, -1, 1, 1.0},
		{"zero observations", 0, 1, 1, 1.0},
		{"lambda numerator non-positive", 10, 2, 1, 10.0},
		{"lambda denominator non-positive", 3, 2, 1, 0.5},
	}

	for _, tc := range cases {
		got := criterionFunc(tc.nObs, tc.n, tc.m, tc.r)
		if !math.IsInf(got, 1) {
			t.Errorf("%s: criterionFunc(%d,%d,%d,%g) = %g, want +Inf",
				tc.name, tc.nObs, tc.n, tc.m, tc.r, got)
		}
	}
}

// The root finder relies on sign, not magnitude, so NaN must never
// escape the objective for any input combination.
func TestCriterionFuncNeverNaN(t *testing.T) {
	rValues := []float64{0, 0.1, 0.5, 1, 1.5, 2, 5, 10, 100, 1e8}
	for nObs := 0; nObs <= 12; nObs++ {
		for n := -1; n <= nObs+1; n++ {
			for m := 0; m <= 3; m++ {
				for _, r := range rValues {
					if got := criterionFunc(nObs, n, m, r); math.IsNaN(got) {
						t.Fatalf("criterionFunc(%d,%d,%d,%g) = NaN", nObs, n, m, r)
					}
				}
			}
		}
	}
}

func TestCriterionFuncBracketSignChange(t *testing.T) {
	// For a well-posed (N, n, m) the objective must change sign across
	// the bisection bracket.
	nObs, n, m := 10, 1, 1
	xl := bracketLow
	xr := math.Sqrt(float64(nObs-m)/float64(n)) - bisectEps

	fl := criterionFunc(nObs, n, m, xl)
	fr := criterionFunc(nObs, n, m, xr)

	if math.IsInf(fl, 0) || math.IsInf(fr, 0) {
		t.Fatalf("bracket endpoints not finite: f(xl)=%g f(xr)=%g", fl, fr)
	}
	if fl*fr >= 0 {
		t.Errorf("no sign change across bracket: f(%g)=%g f(%g)=%g", xl, fl, xr, fr)
	}
}

func TestCriterionFuncPure(t *testing.T) {
	a := criterionFunc(8, 1, 1, 1.2)
	b := criterionFunc(8, 1, 1, 1.2)
	if a != b {
		t.Errorf("criterionFunc not deterministic: %g vs %g", a, b)
	}
}
