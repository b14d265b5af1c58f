package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/meridianvc/dealscope/internal/directory"
	"github.com/meridianvc/dealscope/internal/enrich"
	"github.com/meridianvc/dealscope/internal/model"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScrape returns a page's extracted text. Fetch failures are not
// errors here: the sentinel text comes back with a 200, exactly as the
// dashboard expects.
func (s *Server) handleScrape(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.URL == "" {
		respondError(w, http.StatusBadRequest, "URL is required")
		return
	}

	text := s.fetcher.FetchText(r.Context(), req.URL)
	respondJSON(w, http.StatusOK, map[string]string{"text": text})
}

// handleEnrich runs the enrichment pipeline. Only model-side failures
// produce a 500; fetch failures degrade to placeholder text upstream.
func (s *Server) handleEnrich(w http.ResponseWriter, r *http.Request) {
	var req model.EnrichmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.enricher.Enrich(r.Context(), req)
	if err != nil {
		if eris.Is(err, enrich.ErrMissingURL) {
			respondError(w, http.StatusBadRequest, "URL is required")
			return
		}
		zap.L().Error("enrichment failed",
			zap.String("request_id", RequestIDFromContext(r.Context())),
			zap.String("url", req.URL),
			zap.String("company_id", req.CompanyID),
			zap.Error(err),
		)
		respondError(w, http.StatusInternalServerError, "Failed to enrich company data")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleListCompanies(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	companies := s.dir.List(directory.Filter{
		Query:    q.Get("q"),
		Industry: q.Get("industry"),
		Stage:    q.Get("stage"),
	})
	if companies == nil {
		companies = []model.Company{}
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"companies": companies,
		"total":     len(companies),
	})
}

func (s *Server) handleGetCompany(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	company, ok := s.dir.Get(id)
	if !ok {
		respondError(w, http.StatusNotFound, "Company not found")
		return
	}
	respondJSON(w, http.StatusOK, company)
}

func (s *Server) handleFacets(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"industries": s.dir.Industries(),
		"stages":     s.dir.Stages(),
	})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="companies.xlsx"`)
	if err := s.dir.ExportXLSX(w); err != nil {
		zap.L().Error("spreadsheet export failed",
			zap.String("request_id", RequestIDFromContext(r.Context())),
			zap.Error(err),
		)
	}
}
