// Package server exposes the dashboard HTTP API: website scraping, AI
// enrichment, and the company directory.
package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/meridianvc/dealscope/internal/directory"
	"github.com/meridianvc/dealscope/internal/enrich"
	"github.com/meridianvc/dealscope/internal/model"
)

// EnrichService runs the enrichment pipeline for one request.
type EnrichService interface {
	Enrich(ctx context.Context, req model.EnrichmentRequest) (*model.EnrichmentResult, error)
}

// Server routes dashboard API requests to the fetcher, the enricher, and
// the company directory.
type Server struct {
	fetcher  enrich.Fetcher
	enricher EnrichService
	dir      *directory.Directory
	router   chi.Router
}

// New wires the API routes. allowedOrigins configures CORS for the
// dashboard frontend; an empty list allows any origin.
func New(fetcher enrich.Fetcher, enricher EnrichService, dir *directory.Directory, allowedOrigins []string) *Server {
	s := &Server{
		fetcher:  fetcher,
		enricher: enricher,
		dir:      dir,
	}

	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(logRequests)
	r.Use(recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Post("/scrape", s.handleScrape)
		r.Post("/enrich", s.handleEnrich)
		r.Get("/companies", s.handleListCompanies)
		r.Get("/companies/facets", s.handleFacets)
		r.Get("/companies/export", s.handleExport)
		r.Get("/companies/{id}", s.handleGetCompany)
	})

	s.router = r
	return s
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
