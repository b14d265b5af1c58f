package enrich

import (
	"fmt"
	"strings"

	"github.com/meridianvc/dealscope/pkg/anthropic"
)

// enrichSystemText is the fixed system prompt. It is identical for every
// request, so it is sent with a cache breakpoint (see Enricher.Enrich).
const enrichSystemText = "You are a venture capital research analyst. You analyze startup website content to help investors evaluate companies. Return a valid JSON object matching the requested schema, with no prose wrapper and no markdown fences."

// enrichPrompt embeds the extracted website text and the response schema.
// The schema mirrors the dashboard contract: summary, descriptionBullets,
// keywords, signals.
const enrichPrompt = `Analyze the following startup website content for a venture investor evaluating the company.

Website URL: %s
Website content:
%s

If the content is empty, unreadable, or describes a fetch failure, infer what you can from the URL or produce a generic placeholder response rather than failing.

Return a valid JSON object:
{
  "summary": "<1-2 sentence summary of what the company does>",
  "descriptionBullets": ["<3-5 bullets covering product, market, and value proposition>"],
  "keywords": ["<5-10 industry, technology, or business-model terms>"],
  "signals": ["<2-4 investor-relevant positive or negative observations>"]
}`

// buildPrompt composes the user message for one enrichment call.
func buildPrompt(url, pageText string) string {
	return fmt.Sprintf(enrichPrompt, url, pageText)
}

// extractText concatenates all text content blocks from a message response.
func extractText(resp *anthropic.MessageResponse) string {
	if resp == nil {
		return ""
	}
	var parts []string
	for _, block := range resp.Content {
		if block.Text != "" {
			parts = append(parts, block.Text)
		}
	}
	return strings.Join(parts, "\n")
}

// cleanJSON attempts to extract a JSON object from text that may contain
// markdown code fences or other wrapping.
func cleanJSON(text string) string {
	text = strings.TrimSpace(text)

	// Strip markdown code fences.
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
	}

	// Find first { and last }.
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		text = text[start : end+1]
	}

	return strings.TrimSpace(text)
}
