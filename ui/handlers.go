package ui

import (
	"encoding/base64"
	"net/http"

	"github.com/gin-gonic/gin"

	"plotlab/internal/charts"
)

// plotAction describes what a form submission asked for.
type plotAction int

const (
	actionShow plotAction = iota
	actionDownloadSVG
	actionDownloadPNG
	actionClear
)

// formAction reads the submit buttons and hidden fields that drive every
// plot page: "filled" marks a real submission, the download buttons pick
// a format, and "clear" resets the form.
func formAction(c *gin.Context) (plotAction, bool) {
	filled := c.PostForm("filled") != ""
	switch {
	case c.PostForm("clear") != "":
		return actionClear, filled
	case c.PostForm("svg_download") != "":
		return actionDownloadSVG, filled
	case c.PostForm("png_download") != "":
		return actionDownloadPNG, filled
	}
	return actionShow, filled
}

// serveDownload writes a rendered chart as a file attachment.
func (s *Server) serveDownload(c *gin.Context, img []byte, format charts.Format, base string) {
	c.Header("Content-Disposition", "attachment; filename="+format.Filename(base))
	c.Data(http.StatusOK, format.ContentType(), img)
}

// inlineImage encodes a PNG for embedding in the page.
func inlineImage(img []byte) string {
	return base64.StdEncoding.EncodeToString(img)
}

func (s *Server) handleHome(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", gin.H{"Title": "plotlab"})
}

func (s *Server) renderError(c *gin.Context, err error) {
	s.logger.Error("render failed: %v", err)
	c.String(http.StatusInternalServerError, "plot rendering failed")
}
