// Package api exposes the statistics engine as a headless JSON service,
// for callers that want the numbers without the rendered charts.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"plotlab/internal"
)

// Server is the JSON API application.
type Server struct {
	router *chi.Mux
	logger *internal.Logger
}

// NewServer creates the API server and wires its routes.
func NewServer(logger *internal.Logger) *Server {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	s := &Server{
		router: chi.NewRouter(),
		logger: logger,
	}

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)

	s.router.Get("/api/healthz", s.handleHealthz)
	s.router.Post("/api/outliers", s.handleOutliers)
	s.router.Post("/api/ash", s.handleASH)

	return s
}

// Handler returns the router for serving or testing.
func (s *Server) Handler() http.Handler {
	return s.router
}
