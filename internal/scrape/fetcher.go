package scrape

import (
	"context"
	"net"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Sentinel texts returned when a page cannot be fetched. These are values,
// not errors: they flow into the enrichment prompt like any other content.
const (
	NetworkErrorText   = "Failed to fetch website content due to network error."
	StatusErrorPrefix  = "Could not fetch website content. Status: "
	MaxTextChars       = 15000
	defaultFetchUA     = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	defaultFetchWindow = 15 * time.Second
)

// nonContentSelector matches elements that carry no visible text.
const nonContentSelector = "script, style, noscript, iframe, img, svg"

var whitespaceRe = regexp.MustCompile(`\s+`)

// Option configures a TextFetcher.
type Option func(*TextFetcher)

// WithTimeout sets the overall HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *TextFetcher) {
		f.client.Timeout = d
	}
}

// WithUserAgent overrides the browser identity header.
func WithUserAgent(ua string) Option {
	return func(f *TextFetcher) {
		f.userAgent = ua
	}
}

// WithLimiter applies an outbound rate limit to fetches.
func WithLimiter(l *rate.Limiter) Option {
	return func(f *TextFetcher) {
		f.limiter = l
	}
}

// TextFetcher retrieves a page and reduces it to bounded plaintext.
// Every failure mode resolves to a text value, so callers never see an
// error; a single attempt is made per call and retries are left to them.
type TextFetcher struct {
	client    *http.Client
	userAgent string
	limiter   *rate.Limiter
}

// NewTextFetcher creates a TextFetcher with browser-like identity and
// sensible transport timeouts.
func NewTextFetcher(opts ...Option) *TextFetcher {
	f := &TextFetcher{
		client: &http.Client{
			Timeout: defaultFetchWindow,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 10 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
		userAgent: defaultFetchUA,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FetchText GETs targetURL and returns its visible text, whitespace
// collapsed and hard-truncated to MaxTextChars. Transport failures and
// non-2xx statuses return the sentinel texts instead of an error.
func (f *TextFetcher) FetchText(ctx context.Context, targetURL string) string {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return NetworkErrorText
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		zap.L().Warn("fetch: invalid request", zap.String("url", targetURL), zap.Error(err))
		return NetworkErrorText
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		zap.L().Warn("fetch: transport failure", zap.String("url", targetURL), zap.Error(err))
		return NetworkErrorText
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		zap.L().Warn("fetch: non-success status",
			zap.String("url", targetURL),
			zap.Int("status", resp.StatusCode),
		)
		return StatusText(resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		zap.L().Warn("fetch: parse failure", zap.String("url", targetURL), zap.Error(err))
		return NetworkErrorText
	}

	return ExtractText(doc)
}

// StatusText formats the sentinel for a non-success HTTP status.
func StatusText(code int) string {
	return StatusErrorPrefix + strconv.Itoa(code)
}

// ExtractText strips non-content elements from the document, takes the
// body's visible text, collapses whitespace runs, and truncates.
func ExtractText(doc *goquery.Document) string {
	doc.Find(nonContentSelector).Remove()

	text := doc.Find("body").Text()
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)

	// Hard cut, not word-boundary aware.
	if len(text) > MaxTextChars {
		text = text[:MaxTextChars]
	}
	return text
}
