package enrich

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"github.com/meridianvc/dealscope/internal/config"
	"github.com/meridianvc/dealscope/internal/model"
	"github.com/meridianvc/dealscope/pkg/anthropic"
)

// Fetcher retrieves website text for enrichment. Implementations never
// return an error: fetch failures resolve to placeholder text that flows
// into the prompt (see internal/scrape).
type Fetcher interface {
	FetchText(ctx context.Context, url string) string
}

// Enricher runs the enrichment pipeline: fetch → prompt → model call →
// parse → cache. The cache is injected so callers control its scope;
// concurrent requests for the same company ID are collapsed into a
// single in-flight enrichment.
type Enricher struct {
	fetcher Fetcher
	ai      anthropic.Client
	cache   Cache
	cfg     config.AnthropicConfig

	limiter *rate.Limiter
	group   singleflight.Group
	system  []anthropic.SystemBlock
}

// New creates an Enricher. A zero RequestsPerMinute disables the model
// call limiter.
func New(fetcher Fetcher, ai anthropic.Client, cache Cache, cfg config.AnthropicConfig) *Enricher {
	e := &Enricher{
		fetcher: fetcher,
		ai:      ai,
		cache:   cache,
		cfg:     cfg,
		system:  anthropic.BuildCachedSystemBlocks(enrichSystemText),
	}
	if cfg.RequestsPerMinute > 0 {
		e.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerMinute/60), 1)
	}
	return e
}

// Enrich validates the request, serves from cache when possible, and
// otherwise runs the full pipeline. Results for a company ID are cached
// for the process lifetime and returned verbatim on every later call.
func (e *Enricher) Enrich(ctx context.Context, req model.EnrichmentRequest) (*model.EnrichmentResult, error) {
	if strings.TrimSpace(req.URL) == "" {
		return nil, ErrMissingURL
	}

	if req.CompanyID == "" {
		return e.enrichOnce(ctx, req)
	}

	if cached, ok := e.cache.Get(req.CompanyID); ok {
		zap.L().Debug("enrich: cache hit", zap.String("company_id", req.CompanyID))
		return cached, nil
	}

	// At most one in-flight enrichment per company ID; late joiners share
	// the first caller's result. Re-check the cache inside the flight in
	// case a previous flight completed between the check above and here.
	v, err, _ := e.group.Do(req.CompanyID, func() (any, error) {
		if cached, ok := e.cache.Get(req.CompanyID); ok {
			return cached, nil
		}
		return e.enrichOnce(ctx, req)
	})
	if err != nil {
		return nil, err
	}
	return v.(*model.EnrichmentResult), nil
}

func (e *Enricher) enrichOnce(ctx context.Context, req model.EnrichmentRequest) (*model.EnrichmentResult, error) {
	pageText := e.fetcher.FetchText(ctx, req.URL)

	if e.limiter != nil {
		if err := e.limiter.Wait(ctx); err != nil {
			return nil, eris.Wrap(err, "enrich: rate limit wait")
		}
	}

	callCtx := ctx
	if e.cfg.TimeoutSecs > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, time.Duration(e.cfg.TimeoutSecs)*time.Second)
		defer cancel()
	}

	resp, err := e.ai.CreateMessage(callCtx, anthropic.MessageRequest{
		Model:     e.cfg.Model,
		MaxTokens: e.cfg.MaxTokens,
		System:    e.system,
		Messages: []anthropic.Message{
			{Role: "user", Content: buildPrompt(req.URL, pageText)},
		},
	})
	if err != nil {
		if eris.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			return nil, eris.Wrap(ErrModelTimeout, e.cfg.Model+" deadline exceeded")
		}
		return nil, eris.Wrap(err, "enrich: model call")
	}

	raw := strings.TrimSpace(extractText(resp))
	if raw == "" {
		return nil, ErrEmptyResponse
	}

	var result model.EnrichmentResult
	if err := json.Unmarshal([]byte(cleanJSON(raw)), &result); err != nil {
		zap.L().Warn("enrich: failed to parse model output",
			zap.String("url", req.URL),
			zap.Error(err),
		)
		return nil, ErrMalformedResponse
	}
	if err := result.Validate(); err != nil {
		zap.L().Warn("enrich: incomplete model output",
			zap.String("url", req.URL),
			zap.Error(err),
		)
		return nil, ErrMalformedResponse
	}

	result.Sources = []model.Source{{
		URL:       req.URL,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}}

	if req.CompanyID != "" {
		e.cache.Put(req.CompanyID, &result)
	}

	resp.Usage.LogCost(e.cfg.Model, "enrich")
	zap.L().Info("enrichment complete",
		zap.String("url", req.URL),
		zap.String("company_id", req.CompanyID),
	)

	return &result, nil
}
