package enrich

import "github.com/rotisserie/eris"

// Pipeline failure sentinels. Fetch failures are not represented here:
// they degrade to placeholder text inside the fetcher and never surface
// as errors (see internal/scrape).
var (
	// ErrMissingURL means the request had no URL. Client error.
	ErrMissingURL = eris.New("enrich: url is required")

	// ErrEmptyResponse means the model call returned no usable content.
	ErrEmptyResponse = eris.New("enrich: model returned no content")

	// ErrMalformedResponse means the model output could not be parsed
	// into the enrichment schema. Not retried within the request.
	ErrMalformedResponse = eris.New("enrich: model returned malformed content")

	// ErrModelTimeout means the model call exceeded its deadline.
	ErrModelTimeout = eris.New("enrich: model call timed out")
)
