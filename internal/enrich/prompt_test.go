package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meridianvc/dealscope/pkg/anthropic"
)

func TestBuildPrompt(t *testing.T) {
	prompt := buildPrompt("https://example.com", "Hello World")

	assert.Contains(t, prompt, "Website URL: https://example.com")
	assert.Contains(t, prompt, "Hello World")
	assert.Contains(t, prompt, `"summary"`)
	assert.Contains(t, prompt, `"descriptionBullets"`)
	assert.Contains(t, prompt, `"keywords"`)
	assert.Contains(t, prompt, `"signals"`)
	// The degrade instruction keeps sentinel text from failing the call.
	assert.Contains(t, prompt, "generic placeholder")
}

func TestExtractText(t *testing.T) {
	assert.Equal(t, "", extractText(nil))

	resp := &anthropic.MessageResponse{
		Content: []anthropic.ContentBlock{
			{Type: "text", Text: "first"},
			{Type: "text", Text: ""},
			{Type: "text", Text: "second"},
		},
	}
	assert.Equal(t, "first\nsecond", extractText(resp))
}

func TestCleanJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"bare", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"plain fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"prose wrapper", `Here is the result: {"a":1} hope that helps`, `{"a":1}`},
		{"no json", "nothing here", "nothing here"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, cleanJSON(tc.in))
		})
	}
}
