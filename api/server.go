// Package api - HTTP boundary for the pricing engine
// The hosted surface re-exposes the in-process entry point with an
// identical contract: one pricing call, one immutable snapshot, one
// consolidated result.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"quote-engine/adapters/storage"
)

// Server is the API server
type Server struct {
	router  chi.Router
	version string
	store   storage.Store
}

// NewServer creates an API server without persistence
func NewServer(version string) *Server {
	return NewServerWithStore(version, nil)
}

// NewServerWithStore creates an API server backed by a quote store
func NewServerWithStore(version string, store storage.Store) *Server {
	s := &Server{
		router:  chi.NewRouter(),
		version: version,
		store:   store,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.router.Post("/v1/price", s.handlePrice)
	s.router.Post("/v1/stats", s.handleStats)
	s.router.Get("/quotes", s.handleListQuotes)
	s.router.Get("/quotes/{id}", s.handleGetQuote)
	s.router.Get("/health", s.handleHealth)
	s.router.Get("/version", s.handleVersion)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
