package charts

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plotlab/internal/ash"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func sampleASHPlot(t *testing.T) ASHPlot {
	t.Helper()
	data := []float64{-1.2, -0.8, -0.3, 0.1, 0.2, 0.5, 0.9, 1.4, 1.9, 2.3}
	den, err := ash.Compute(data)
	require.NoError(t, err)
	sum, err := ash.Summarize(data)
	require.NoError(t, err)
	return ASHPlot{
		Density:   den,
		Summary:   sum,
		Data:      data,
		XLabel:    "Voltage (V)",
		LineColor: "#4C72B0",
		FillColor: "#92B2E7",
	}
}

func TestRenderASHFormats(t *testing.T) {
	p := sampleASHPlot(t)

	png, err := RenderASH(p, FormatPNG)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic), "expected PNG header")

	hi, err := RenderASH(p, FormatPNGHiRes)
	require.NoError(t, err)
	assert.Greater(t, len(hi), len(png)/2, "hi-res output should not be trivially small")

	svg, err := RenderASH(p, FormatSVG)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(svg), "<svg"), "expected SVG markup")
}

func TestRenderASHNormalOverlay(t *testing.T) {
	p := sampleASHPlot(t)
	require.Greater(t, p.Summary.StdDev, 0.0)

	svg, err := RenderASH(p, FormatSVG)
	require.NoError(t, err)
	assert.Contains(t, string(svg), "stroke-dasharray",
		"expected the dashed normal reference curve")
}

func TestRenderASHDegenerateSpreadSkipsOverlay(t *testing.T) {
	data := []float64{5, 5, 5, 5, 5}
	den, err := ash.Compute(data)
	require.NoError(t, err)
	sum, err := ash.Summarize(data)
	require.NoError(t, err)
	require.Zero(t, sum.StdDev)

	svg, err := RenderASH(ASHPlot{
		Density:   den,
		Summary:   sum,
		Data:      data,
		LineColor: "#4C72B0",
		FillColor: "#92B2E7",
	}, FormatSVG)
	require.NoError(t, err)
	assert.NotContains(t, string(svg), "stroke-dasharray")
}

func TestRenderASHEmptyMesh(t *testing.T) {
	_, err := RenderASH(ASHPlot{}, FormatPNG)
	assert.Error(t, err)
}

func TestRenderXY(t *testing.T) {
	xs := []float64{0, 1, 2, 3, 4}
	ys := []float64{0, 1, 4, 9, 16}

	img, err := RenderXY(xs, ys, "x", "y", "#4C72B0", FormatPNG)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(img, pngMagic))

	_, err = RenderXY(xs, ys[:3], "x", "y", "#4C72B0", FormatPNG)
	assert.Error(t, err)
	_, err = RenderXY([]float64{1}, []float64{1}, "x", "y", "#4C72B0", FormatPNG)
	assert.Error(t, err)
}

func TestRenderCE(t *testing.T) {
	cycles := []float64{1, 2, 3, 4, 5, 6}
	ce := []float64{87.29, 98.65, 99.25, 99.49, 99.63, 99.70}

	img, err := RenderCE(cycles, ce, "Cycle Number", "CE (%)", "#4C72B0", FormatPNG)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(img, pngMagic))
}

func TestCETransform(t *testing.T) {
	assert.InDelta(t, 0.0, ceTransform(99), 1e-3)
	assert.InDelta(t, 1.0, ceTransform(99.9), 1e-3)
	assert.InDelta(t, -1.0, ceTransform(90), 1e-3)

	// At and above 100% the transform clamps instead of going undefined.
	top := ceTransform(100)
	assert.InDelta(t, 4.0, top, 1e-6)
	assert.Equal(t, top, ceTransform(101.5))
}

func TestFormatMetadata(t *testing.T) {
	assert.Equal(t, "image/png", FormatPNG.ContentType())
	assert.Equal(t, "image/png", FormatPNGHiRes.ContentType())
	assert.Equal(t, "image/svg+xml", FormatSVG.ContentType())

	assert.Equal(t, "ash_plot.png", FormatPNG.Filename("ash_plot"))
	assert.Equal(t, "ash_plot.svg", FormatSVG.Filename("ash_plot"))

	_, _, err := Format("gif").renderer()
	assert.Error(t, err)
}

func TestColorFromHex(t *testing.T) {
	c := colorFromHex("#4C72B0")
	assert.Equal(t, uint8(0x4C), c.R)
	assert.Equal(t, uint8(0x72), c.G)
	assert.Equal(t, uint8(0xB0), c.B)

	short := colorFromHex("#fff")
	assert.Equal(t, uint8(0xFF), short.R)
	assert.Equal(t, uint8(0xFF), short.G)
	assert.Equal(t, uint8(0xFF), short.B)

	fallback := colorFromHex("nonsense")
	assert.Equal(t, uint8(0x4C), fallback.R)
}
