// Package ui serves the plotting tool's web pages: paste numeric data
// into a form, get a rendered chart back inline or as a download.
package ui

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"

	"plotlab/internal"
	"plotlab/internal/errors"
)

//go:embed templates/* static/* docs/*
var embeddedFiles embed.FS

// Server is the web UI application.
type Server struct {
	router    *gin.Engine
	templates *template.Template
	logger    *internal.Logger
}

// NewServer creates the UI server, parses the embedded templates, and
// wires routes and middleware.
func NewServer(logger *internal.Logger, mode string) (*Server, error) {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	if mode != "" {
		gin.SetMode(mode)
	}

	templates, err := template.New("").ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse templates")
	}

	s := &Server{
		router:    gin.New(),
		templates: templates,
		logger:    logger,
	}
	s.router.Use(gin.Recovery())
	s.router.SetHTMLTemplate(templates)

	s.setupMiddleware()
	s.setupRoutes()
	return s, nil
}

// Handler returns the router for serving or testing.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupMiddleware() {
	staticFS, err := fs.Sub(embeddedFiles, "static")
	if err != nil {
		s.logger.Error("static filesystem unavailable: %v", err)
		return
	}
	s.router.StaticFS("/static", http.FS(staticFS))
}

func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleHome)
	s.router.GET("/about", s.handleAbout)

	s.router.GET("/ash", s.handleAsh)
	s.router.POST("/ash", s.handleAsh)
	s.router.GET("/ce", s.handleCE)
	s.router.POST("/ce", s.handleCE)
	s.router.GET("/example", s.handleExample)
	s.router.POST("/example", s.handleExample)

	s.router.NoRoute(func(c *gin.Context) {
		c.String(http.StatusNotFound, "Error 404: Page not found.")
	})
}
