package model

import "github.com/rotisserie/eris"

// EnrichmentRequest asks for AI enrichment of a company website.
// URL is required; CompanyID enables caching when present.
type EnrichmentRequest struct {
	URL       string `json:"url"`
	CompanyID string `json:"companyId,omitempty"`
}

// Source records where and when an enrichment result was derived.
type Source struct {
	URL       string `json:"url"`
	Timestamp string `json:"timestamp"` // RFC 3339
}

// EnrichmentResult is the structured output of one enrichment call.
// The four content fields form the schema contract with the model;
// Sources carries provenance and always has exactly one entry.
type EnrichmentResult struct {
	Summary            string   `json:"summary"`
	DescriptionBullets []string `json:"descriptionBullets"`
	Keywords           []string `json:"keywords"`
	Signals            []string `json:"signals"`
	Sources            []Source `json:"sources"`
}

// Validate enforces the schema contract: every content field must be
// present and non-empty. A missing field is a schema failure, never
// silently defaulted.
func (r *EnrichmentResult) Validate() error {
	if r.Summary == "" {
		return eris.New("enrichment result: missing summary")
	}
	if len(r.DescriptionBullets) == 0 {
		return eris.New("enrichment result: missing descriptionBullets")
	}
	if len(r.Keywords) == 0 {
		return eris.New("enrichment result: missing keywords")
	}
	if len(r.Signals) == 0 {
		return eris.New("enrichment result: missing signals")
	}
	return nil
}
