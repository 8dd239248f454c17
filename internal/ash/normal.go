package ash

import "gonum.org/v1/gonum/stat/distuv"

// NormalReference evaluates the normal density with the given mean and
// standard deviation on mesh, for overlaying a parametric reference on
// an ASH plot. A non-positive sigma yields zeros.
func NormalReference(mesh []float64, mean, sigma float64) []float64 {
	values := make([]float64, len(mesh))
	if sigma <= 0 {
		return values
	}
	dist := distuv.Normal{Mu: mean, Sigma: sigma}
	for i, x := range mesh {
		values[i] = dist.Prob(x)
	}
	return values
}
