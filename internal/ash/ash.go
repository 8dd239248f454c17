// Package ash computes average shifted histogram (ASH) density
// estimates. An ASH averages a set of shifted histograms with a common
// bin width, which smooths out the bin-origin sensitivity of a single
// histogram while staying cheap to evaluate on a fine mesh.
package ash

import (
	"math"

	"github.com/montanaflynn/stats"

	"plotlab/internal/errors"
)

const (
	// defaultShifts is the number of shifted histograms averaged
	// together. The fine mesh spacing is binWidth/defaultShifts.
	defaultShifts = 32

	// maxMeshPoints caps the fine mesh so pathological bin widths cannot
	// blow up memory; the mesh spacing is widened instead.
	maxMeshPoints = 100000
)

// Density is an ASH density estimate evaluated on a fine mesh.
type Density struct {
	// Mesh holds the fine-bin centers, ascending.
	Mesh []float64
	// Values holds the estimated density at each mesh point.
	Values []float64
	// BinWidth is the histogram bin width h chosen by Scott's rule.
	BinWidth float64
	// Shifts is the number of shifted histograms averaged.
	Shifts int
}

// Summary holds the statistics displayed alongside a density plot.
type Summary struct {
	N        int     `json:"n"`
	Mean     float64 `json:"mean"`
	Median   float64 `json:"median"`
	StdDev   float64 `json:"std_dev"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Skewness float64 `json:"skewness"`
}

// Compute estimates the ASH density of data using Scott's rule for the
// bin width and a triangle weight across defaultShifts shifts.
func Compute(data []float64) (Density, error) {
	if len(data) < 2 {
		return Density{}, errors.InvalidInput("ash density needs at least 2 data points")
	}

	min, err := stats.Min(data)
	if err != nil {
		return Density{}, errors.Wrap(err, "ash: min")
	}
	max, err := stats.Max(data)
	if err != nil {
		return Density{}, errors.Wrap(err, "ash: max")
	}

	h := scottBinWidth(data)
	if h <= 0 {
		// Degenerate sample (sigma = 0): spread a unit-width bin around
		// the single value so the density is still drawable.
		h = 1.0
	}

	shifts := defaultShifts
	delta := h / float64(shifts)

	lo := min - h
	hi := max + h
	nBins := int(math.Ceil((hi - lo) / delta))
	if nBins > maxMeshPoints {
		nBins = maxMeshPoints
		delta = (hi - lo) / float64(nBins)
	}
	if nBins < 1 {
		nBins = 1
	}

	// Fine-bin counts.
	counts := make([]float64, nBins)
	for _, x := range data {
		k := int((x - lo) / delta)
		if k < 0 {
			k = 0
		}
		if k >= nBins {
			k = nBins - 1
		}
		counts[k]++
	}

	// Triangle-weighted average of the shifted histograms.
	mesh := make([]float64, nBins)
	values := make([]float64, nBins)
	norm := 1.0 / (float64(len(data)) * h)
	for k := 0; k < nBins; k++ {
		mesh[k] = lo + (float64(k)+0.5)*delta
		sum := 0.0
		for i := 1 - shifts; i <= shifts-1; i++ {
			j := k + i
			if j < 0 || j >= nBins {
				continue
			}
			w := 1.0 - math.Abs(float64(i))/float64(shifts)
			sum += w * counts[j]
		}
		values[k] = norm * sum
	}

	return Density{Mesh: mesh, Values: values, BinWidth: h, Shifts: shifts}, nil
}

// Summarize computes the summary statistics shown on a density plot.
func Summarize(data []float64) (Summary, error) {
	if len(data) == 0 {
		return Summary{}, errors.InvalidInput("cannot summarize empty data")
	}

	mean, err := stats.Mean(data)
	if err != nil {
		return Summary{}, errors.Wrap(err, "ash: mean")
	}
	median, err := stats.Median(data)
	if err != nil {
		return Summary{}, errors.Wrap(err, "ash: median")
	}
	min, err := stats.Min(data)
	if err != nil {
		return Summary{}, errors.Wrap(err, "ash: min")
	}
	max, err := stats.Max(data)
	if err != nil {
		return Summary{}, errors.Wrap(err, "ash: max")
	}

	stdDev := 0.0
	if len(data) > 1 {
		stdDev, err = stats.StandardDeviationSample(data)
		if err != nil {
			return Summary{}, errors.Wrap(err, "ash: std dev")
		}
	}

	return Summary{
		N:        len(data),
		Mean:     mean,
		Median:   median,
		StdDev:   stdDev,
		Min:      min,
		Max:      max,
		Skewness: skewness(data, mean, stdDev),
	}, nil
}

// scottBinWidth returns Scott's rule bin width 3.49 * sigma * n^(-1/3).
func scottBinWidth(data []float64) float64 {
	sigma, err := stats.StandardDeviationSample(data)
	if err != nil || math.IsNaN(sigma) {
		return 0
	}
	return 3.49 * sigma * math.Pow(float64(len(data)), -1.0/3.0)
}

// skewness computes the sample skewness; zero for degenerate spreads.
func skewness(data []float64, mean, stdDev float64) float64 {
	if stdDev == 0 || len(data) < 3 {
		return 0
	}
	sum := 0.0
	for _, x := range data {
		z := (x - mean) / stdDev
		sum += z * z * z
	}
	n := float64(len(data))
	return sum * n / ((n - 1) * (n - 2))
}
