// Package charts renders the tool's plots (ASH density, coulombic
// efficiency, XY line) to downloadable images via go-chart.
package charts

import (
	chart "github.com/wcharczuk/go-chart/v2"

	"plotlab/internal/errors"
)

// Format selects the output encoding of a rendered plot.
type Format string

const (
	// FormatPNG is the inline web resolution PNG.
	FormatPNG Format = "png"
	// FormatPNGHiRes is the 2x resolution PNG served as a download.
	FormatPNGHiRes Format = "pngat"
	// FormatSVG is the vector output served as a download.
	FormatSVG Format = "svg"
)

const (
	baseWidth  = 600
	baseHeight = 600
)

// ContentType returns the MIME type for the format.
func (f Format) ContentType() string {
	if f == FormatSVG {
		return "image/svg+xml"
	}
	return "image/png"
}

// Filename returns a download filename with the right extension.
func (f Format) Filename(base string) string {
	if f == FormatSVG {
		return base + ".svg"
	}
	return base + ".png"
}

// renderer maps the format to a go-chart renderer and pixel scale.
func (f Format) renderer() (chart.RendererProvider, int, error) {
	switch f {
	case FormatPNG:
		return chart.PNG, 1, nil
	case FormatPNGHiRes:
		return chart.PNG, 2, nil
	case FormatSVG:
		return chart.SVG, 1, nil
	}
	return nil, 0, errors.InvalidInput("unknown chart format: " + string(f))
}
