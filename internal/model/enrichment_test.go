package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validResult() EnrichmentResult {
	return EnrichmentResult{
		Summary:            "S",
		DescriptionBullets: []string{"a", "b", "c"},
		Keywords:           []string{"k1", "k2", "k3", "k4", "k5"},
		Signals:            []string{"sig1", "sig2"},
	}
}

func TestEnrichmentResult_Validate(t *testing.T) {
	r := validResult()
	require.NoError(t, r.Validate())

	missing := []func(*EnrichmentResult){
		func(r *EnrichmentResult) { r.Summary = "" },
		func(r *EnrichmentResult) { r.DescriptionBullets = nil },
		func(r *EnrichmentResult) { r.Keywords = []string{} },
		func(r *EnrichmentResult) { r.Signals = nil },
	}
	for _, mutate := range missing {
		r := validResult()
		mutate(&r)
		assert.Error(t, r.Validate())
	}
}

func TestEnrichmentResult_JSONShape(t *testing.T) {
	r := validResult()
	r.Sources = []Source{{URL: "https://example.com", Timestamp: "2026-01-02T15:04:05Z"}}

	data, err := json.Marshal(&r)
	require.NoError(t, err)

	// The dashboard consumes these exact field names.
	for _, key := range []string{`"summary"`, `"descriptionBullets"`, `"keywords"`, `"signals"`, `"sources"`, `"timestamp"`} {
		assert.Contains(t, string(data), key)
	}
}
