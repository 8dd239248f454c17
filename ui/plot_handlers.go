package ui

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"plotlab/internal/ash"
	"plotlab/internal/charts"
	"plotlab/internal/forms"
	"plotlab/internal/peirce"
)

// ashPage is the view model for the density page.
type ashPage struct {
	Title  string
	Form   *forms.AshForm
	Img    string
	Filled bool
}

func (s *Server) handleAsh(c *gin.Context) {
	form := forms.NewAshForm()
	page := ashPage{Title: "ASH Density Plot", Form: form}

	if c.Request.Method == http.MethodGet {
		c.HTML(http.StatusOK, "ash.html", page)
		return
	}

	action, filled := formAction(c)
	form.Data.Value = c.PostForm("data")
	form.XLabel.Value = c.PostForm("xlabel")
	form.Color.Value = c.PostForm("color")
	form.FillColor.Value = c.PostForm("fill_color")
	form.RejectOutliers = c.PostForm("reject_outliers") != ""

	if action == actionClear {
		form.Reset()
		c.HTML(http.StatusOK, "ash.html", page)
		return
	}

	if !filled || !form.Validate() {
		c.HTML(http.StatusOK, "ash.html", page)
		return
	}

	values, err := form.Values()
	if err != nil {
		// Validation guarantees parseable data; treat this as a bug.
		s.renderError(c, err)
		return
	}

	rejectedCount := 0
	if form.RejectOutliers {
		result := peirce.Reject(values, 1)
		rejectedCount = result.RejectedCount()
		if rejectedCount > 0 {
			values = result.Filtered
			s.logger.Info("peirce rejected %d of %d points (%s)",
				rejectedCount, len(result.Accepted), result.Termination)
		}
	}

	density, err := ash.Compute(values)
	if err != nil {
		s.renderError(c, err)
		return
	}
	summary, err := ash.Summarize(values)
	if err != nil {
		s.renderError(c, err)
		return
	}

	plot := charts.ASHPlot{
		Density:       density,
		Summary:       summary,
		Data:          values,
		XLabel:        form.XLabel.Value,
		LineColor:     form.Color.Value,
		FillColor:     form.FillColor.Value,
		RejectedCount: rejectedCount,
	}

	switch action {
	case actionDownloadSVG:
		img, err := charts.RenderASH(plot, charts.FormatSVG)
		if err != nil {
			s.renderError(c, err)
			return
		}
		s.serveDownload(c, img, charts.FormatSVG, "ash_plot")
	case actionDownloadPNG:
		img, err := charts.RenderASH(plot, charts.FormatPNGHiRes)
		if err != nil {
			s.renderError(c, err)
			return
		}
		s.serveDownload(c, img, charts.FormatPNGHiRes, "ash_plot")
	default:
		img, err := charts.RenderASH(plot, charts.FormatPNG)
		if err != nil {
			s.renderError(c, err)
			return
		}
		page.Img = inlineImage(img)
		page.Filled = true
		c.HTML(http.StatusOK, "ash.html", page)
	}
}

// xyPage is the view model shared by the CE and example pages.
type xyPage struct {
	Title  string
	Form   *forms.XYForm
	Img    string
	Filled bool
}

// xyRenderer renders paired data to an image in the chosen format.
type xyRenderer func(xs, ys []float64, xLabel, yLabel, color string, format charts.Format) ([]byte, error)

// handleXYPage drives a paired-data form page through the common
// submit/download/clear cycle.
func (s *Server) handleXYPage(c *gin.Context, templateName, title, downloadBase string, newForm func() *forms.XYForm, render xyRenderer) {
	form := newForm()
	page := xyPage{Title: title, Form: form}

	if c.Request.Method == http.MethodGet {
		c.HTML(http.StatusOK, templateName, page)
		return
	}

	action, filled := formAction(c)
	form.XData.Value = c.PostForm("x_data")
	form.YData.Value = c.PostForm("y_data")
	form.XLabel.Value = c.PostForm("x_label")
	form.YLabel.Value = c.PostForm("y_label")
	form.Color.Value = c.PostForm("color")

	if action == actionClear {
		form.Reset()
		c.HTML(http.StatusOK, templateName, page)
		return
	}

	if !filled || !form.Validate() {
		c.HTML(http.StatusOK, templateName, page)
		return
	}

	xs, ys, err := form.Values()
	if err != nil {
		s.renderError(c, err)
		return
	}

	format := charts.FormatPNG
	switch action {
	case actionDownloadSVG:
		format = charts.FormatSVG
	case actionDownloadPNG:
		format = charts.FormatPNGHiRes
	}

	img, err := render(xs, ys, form.XLabel.Value, form.YLabel.Value, form.Color.Value, format)
	if err != nil {
		s.renderError(c, err)
		return
	}

	if action == actionDownloadSVG || action == actionDownloadPNG {
		s.serveDownload(c, img, format, downloadBase)
		return
	}

	page.Img = inlineImage(img)
	page.Filled = true
	c.HTML(http.StatusOK, templateName, page)
}

func (s *Server) handleCE(c *gin.Context) {
	s.handleXYPage(c, "ce.html", "Coulombic Efficiency Plot", "ce_plot",
		forms.NewCEForm, charts.RenderCE)
}

func (s *Server) handleExample(c *gin.Context) {
	s.handleXYPage(c, "example.html", "Example XY Plot", "example_plot",
		forms.NewExampleForm, charts.RenderXY)
}
