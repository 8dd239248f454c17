package charts

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"plotlab/internal/ash"
	"plotlab/internal/errors"
)

// ASHPlot carries everything needed to draw a density page plot.
type ASHPlot struct {
	Density   ash.Density
	Summary   ash.Summary
	Data      []float64
	XLabel    string
	LineColor string
	FillColor string
	// RejectedCount, when positive, is shown in the stats box.
	RejectedCount int
}

// RenderASH draws the ASH density line with a filled area, a rug of the
// underlying data points, and a summary statistics annotation.
func RenderASH(p ASHPlot, format Format) ([]byte, error) {
	provider, scale, err := format.renderer()
	if err != nil {
		return nil, err
	}
	if len(p.Density.Mesh) == 0 {
		return nil, errors.InvalidInput("empty density mesh")
	}

	line := colorFromHex(p.LineColor)
	fill := colorFromHex(p.FillColor)

	normal := ash.NormalReference(p.Density.Mesh, p.Summary.Mean, p.Summary.StdDev)

	peak := 0.0
	for _, v := range p.Density.Values {
		if v > peak {
			peak = v
		}
	}
	for _, v := range normal {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	series := []chart.Series{
		chart.ContinuousSeries{
			Name:    "density",
			XValues: p.Density.Mesh,
			YValues: p.Density.Values,
			Style: chart.Style{
				StrokeColor: line,
				StrokeWidth: 2,
				FillColor:   fill,
			},
		},
	}
	if p.Summary.StdDev > 0 {
		// Dashed parametric reference with the sample's mean and sigma, so
		// departures from normality are visible at a glance.
		series = append(series, chart.ContinuousSeries{
			Name:    "normal reference",
			XValues: p.Density.Mesh,
			YValues: normal,
			Style: chart.Style{
				StrokeColor:     drawing.ColorFromHex("666666"),
				StrokeWidth:     1,
				StrokeDashArray: []float64{4, 3},
			},
		})
	}
	series = append(series, rugSeries(p.Data, peak, line), statsAnnotation(p, peak, line))

	graph := chart.Chart{
		Width:      baseWidth * scale,
		Height:     baseHeight * scale,
		Background: chart.Style{Padding: chart.Box{Top: 20, Left: 16, Right: 16, Bottom: 24}},
		XAxis:      chart.XAxis{Name: p.XLabel},
		YAxis: chart.YAxis{
			// Density scale carries no units worth labeling; keep room
			// for the rug below zero.
			Range: &chart.ContinuousRange{Min: -0.06 * peak, Max: 1.15 * peak},
		},
		Series: series,
	}

	var buf bytes.Buffer
	if err := graph.Render(provider, &buf); err != nil {
		return nil, errors.RenderError("ash plot render failed", err)
	}
	return buf.Bytes(), nil
}

// RenderXY draws a plain line plot of paired data.
func RenderXY(xs, ys []float64, xLabel, yLabel, colorHex string, format Format) ([]byte, error) {
	provider, scale, err := format.renderer()
	if err != nil {
		return nil, err
	}
	if len(xs) != len(ys) || len(xs) < 2 {
		return nil, errors.InvalidInput("xy plot needs equal-length x and y with at least 2 points")
	}

	graph := chart.Chart{
		Width:      baseWidth * scale,
		Height:     baseHeight * scale,
		Background: chart.Style{Padding: chart.Box{Top: 20, Left: 16, Right: 16, Bottom: 24}},
		XAxis:      chart.XAxis{Name: xLabel},
		YAxis:      chart.YAxis{Name: yLabel},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: colorFromHex(colorHex),
					StrokeWidth: 2,
				},
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(provider, &buf); err != nil {
		return nil, errors.RenderError("xy plot render failed", err)
	}
	return buf.Bytes(), nil
}

// ceOffset keeps the log transform defined when CE reaches (or noisily
// exceeds) exactly 100%.
const ceOffset = 1e-4

// RenderCE draws coulombic efficiency against cycle number. Matplotlib's
// symlog axis has no go-chart equivalent, so CE values are plotted as
// -log10(100 - CE) with fixed percent ticks; the decades toward 100%
// stay evenly spaced and readable.
func RenderCE(cycles, ce []float64, xLabel, yLabel, colorHex string, format Format) ([]byte, error) {
	provider, scale, err := format.renderer()
	if err != nil {
		return nil, err
	}
	if len(cycles) != len(ce) || len(cycles) < 2 {
		return nil, errors.InvalidInput("ce plot needs equal-length cycles and values with at least 2 points")
	}

	transformed := make([]float64, len(ce))
	lo, hi := math.Inf(1), math.Inf(-1)
	for i, v := range ce {
		t := ceTransform(v)
		transformed[i] = t
		if t < lo {
			lo = t
		}
		if t > hi {
			hi = t
		}
	}

	col := colorFromHex(colorHex)
	graph := chart.Chart{
		Width:      baseWidth * scale,
		Height:     baseHeight * scale,
		Background: chart.Style{Padding: chart.Box{Top: 20, Left: 24, Right: 16, Bottom: 24}},
		XAxis:      chart.XAxis{Name: xLabel},
		YAxis: chart.YAxis{
			Name:  yLabel,
			Range: &chart.ContinuousRange{Min: lo - 0.3, Max: hi + 0.3},
			Ticks: ceTicks(lo, hi),
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: cycles,
				YValues: transformed,
				Style: chart.Style{
					StrokeColor: col,
					StrokeWidth: 1,
					DotColor:    col,
					DotWidth:    4,
				},
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(provider, &buf); err != nil {
		return nil, errors.RenderError("ce plot render failed", err)
	}
	return buf.Bytes(), nil
}

// ceTransform maps a CE percentage to -log10(100 + ceOffset - ce), so 99%
// maps to 0, 99.9% to 1, 90% to -1, and values at or above 100% clamp to
// the top of the scale. The clamp keys on ce itself: 100 + ceOffset - 100
// does not round back to exactly ceOffset in floating point.
func ceTransform(ce float64) float64 {
	if ce >= 100 {
		return -math.Log10(ceOffset)
	}
	return -math.Log10(100 + ceOffset - ce)
}

// ceTicks returns the fixed percent ticks that fall inside [lo, hi].
func ceTicks(lo, hi float64) []chart.Tick {
	all := []chart.Tick{
		{Value: ceTransform(0), Label: "0"},
		{Value: ceTransform(90), Label: "90"},
		{Value: ceTransform(99), Label: "99"},
		{Value: ceTransform(99.9), Label: "99.9"},
		{Value: ceTransform(99.99), Label: "99.99"},
	}
	ticks := make([]chart.Tick, 0, len(all))
	for _, tick := range all {
		if tick.Value >= lo-0.3 && tick.Value <= hi+0.3 {
			ticks = append(ticks, tick)
		}
	}
	if len(ticks) < 2 {
		ticks = []chart.Tick{
			{Value: lo - 0.3, Label: ""},
			{Value: hi + 0.3, Label: ""},
		}
	}
	return ticks
}

// rugSeries draws the data points as dots just below the x axis.
func rugSeries(data []float64, peak float64, col drawing.Color) chart.Series {
	ys := make([]float64, len(data))
	for i := range ys {
		ys[i] = -0.03 * peak
	}
	return chart.ContinuousSeries{
		Name:    "rug",
		XValues: data,
		YValues: ys,
		Style: chart.Style{
			StrokeWidth: 0,
			DotWidth:    3,
			DotColor:    col,
		},
	}
}

// statsAnnotation places the summary box near the density peak.
func statsAnnotation(p ASHPlot, peak float64, col drawing.Color) chart.Series {
	lines := []string{
		fmt.Sprintf("N=%d mean=%.4g", p.Summary.N, p.Summary.Mean),
		fmt.Sprintf("median=%.4g sd=%.4g", p.Summary.Median, p.Summary.StdDev),
	}
	if p.RejectedCount > 0 {
		lines = append(lines, fmt.Sprintf("outliers rejected=%d", p.RejectedCount))
	}
	return chart.AnnotationSeries{
		Annotations: []chart.Value2{
			{
				XValue: p.Density.Mesh[0],
				YValue: 1.08 * peak,
				Label:  strings.Join(lines, "  "),
			},
		},
		Style: chart.Style{
			StrokeColor: col,
			FontColor:   col,
		},
	}
}

// colorFromHex converts a form hex color (with or without the leading
// '#') to a drawing color, falling back to the default line blue.
func colorFromHex(hex string) drawing.Color {
	trimmed := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(trimmed) == 3 {
		// Expand shorthand #RGB.
		trimmed = strings.Repeat(string(trimmed[0]), 2) +
			strings.Repeat(string(trimmed[1]), 2) +
			strings.Repeat(string(trimmed[2]), 2)
	}
	if len(trimmed) != 6 {
		return drawing.ColorFromHex("4C72B0")
	}
	return drawing.ColorFromHex(trimmed)
}
