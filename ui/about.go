package ui

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// handleAbout renders the embedded method notes (Peirce's Criterion and
// the ASH estimator) from markdown.
func (s *Server) handleAbout(c *gin.Context) {
	source, err := embeddedFiles.ReadFile("docs/methods.md")
	if err != nil {
		s.logger.Error("method notes missing: %v", err)
		c.String(http.StatusInternalServerError, "method notes unavailable")
		return
	}

	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	body := markdown.ToHTML(source, p, renderer)

	c.HTML(http.StatusOK, "about.html", gin.H{
		"Title": "Method Notes",
		"Body":  template.HTML(body),
	})
}
