package scrape

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchText_CleanHTML(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(200)
		_, _ = w.Write([]byte(`<html><head><title>Acme</title><style>body{color:red}</style></head>
<body><script>var x = 1;</script><h1>Welcome</h1>
<img src="logo.png" alt="logo"><noscript>Enable JS</noscript>
<iframe src="ad.html"></iframe><svg><text>chart label</text></svg>
<p>We   build
	great products.</p></body></html>`))
	}))
	defer srv.Close()

	f := NewTextFetcher()
	text := f.FetchText(context.Background(), srv.URL)

	assert.Equal(t, "Welcome We build great products.", text)
	assert.NotContains(t, text, "var x")
	assert.NotContains(t, text, "color:red")
	assert.NotContains(t, text, "Enable JS")
	assert.NotContains(t, text, "chart label")
}

func TestFetchText_ScriptInterleaved(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
		_, _ = w.Write([]byte(`<html><body><script>x</script>Hello <b>World</b></body></html>`))
	}))
	defer srv.Close()

	f := NewTextFetcher()
	assert.Equal(t, "Hello World", f.FetchText(context.Background(), srv.URL))
}

func TestFetchText_NetworkError(t *testing.T) {
	// Grab a URL that is guaranteed to refuse connections.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	f := NewTextFetcher()
	assert.Equal(t, NetworkErrorText, f.FetchText(context.Background(), url))
}

func TestFetchText_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	f := NewTextFetcher(WithTimeout(20 * time.Millisecond))
	assert.Equal(t, NetworkErrorText, f.FetchText(context.Background(), srv.URL))
}

func TestFetchText_NonSuccessStatus(t *testing.T) {
	for _, code := range []int{404, 500, 301} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(code)
		}))

		f := NewTextFetcher()
		f.client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
		assert.Equal(t, StatusText(code), f.FetchText(context.Background(), srv.URL))
		srv.Close()
	}
}

func TestStatusText(t *testing.T) {
	assert.Equal(t, "Could not fetch website content. Status: 404", StatusText(404))
}

func TestFetchText_Truncation(t *testing.T) {
	long := strings.Repeat("abcde ", 4000) // 24000 chars of visible text
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
		_, _ = w.Write([]byte("<html><body><p>" + long + "</p></body></html>"))
	}))
	defer srv.Close()

	f := NewTextFetcher()
	text := f.FetchText(context.Background(), srv.URL)
	assert.Len(t, text, MaxTextChars)
}

func TestFetchText_BrowserUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.WriteHeader(200)
		_, _ = w.Write([]byte(`<html><body>ok</body></html>`))
	}))
	defer srv.Close()

	f := NewTextFetcher()
	f.FetchText(context.Background(), srv.URL)
	assert.Contains(t, gotUA, "Mozilla/5.0")

	f = NewTextFetcher(WithUserAgent("CustomAgent/1.0"))
	f.FetchText(context.Background(), srv.URL)
	assert.Equal(t, "CustomAgent/1.0", gotUA)
}

func TestFetchText_EmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
		_, _ = w.Write([]byte(`<html><body><script>only scripts here</script></body></html>`))
	}))
	defer srv.Close()

	f := NewTextFetcher()
	// Empty text is a valid value; the enrichment prompt handles it.
	require.Equal(t, "", f.FetchText(context.Background(), srv.URL))
}
