package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html/charset"

	"github.com/gnsm/docent/internal/extract"
	"github.com/gnsm/docent/internal/model"
)

// FailureMark is the generic error marker attached to a PageResult when a
// fetch fails for any reason. The underlying cause is logged, not shown.
const FailureMark = "페이지 로드 실패"

// Fetcher retrieves pages from the museum site and extracts FACTS.
//
// Design decision: The Fetcher owns its http.Client rather than requiring
// one from the caller because there is no proxy layer here; the only
// client-level concern is the fixed timeout. Tests inject a client pointed
// at an httptest server via WithHTTPClient.
type Fetcher struct {
	// client issues all HTTP requests. Its timeout is the per-attempt bound.
	client *http.Client

	// origin is the site origin, used to derive the board API endpoint and
	// to resolve root-relative resources during extraction.
	origin string

	// userAgent identifies the assistant to the site.
	userAgent string

	// maxBodySize limits the response body size to read.
	maxBodySize int64

	// extractor converts fetched HTML into FACTS.
	extractor *extract.Extractor

	// logger records fetch failures with their real cause.
	logger *slog.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.client.Timeout = d
	}
}

// WithUserAgent sets the User-Agent header for all requests.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithMaxBodySize sets the maximum response body size.
func WithMaxBodySize(size int64) Option {
	return func(f *Fetcher) {
		f.maxBodySize = size
	}
}

// WithMaxTables caps how many tables the extractor converts per page.
func WithMaxTables(n int) Option {
	return func(f *Fetcher) {
		f.extractor = extract.New(f.origin, extract.WithMaxTables(n))
	}
}

// WithHTTPClient replaces the HTTP client. Intended for tests.
func WithHTTPClient(client *http.Client) Option {
	return func(f *Fetcher) {
		f.client = client
	}
}

// WithLogger sets the logger for fetch failure causes.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Fetcher) {
		f.logger = logger
	}
}

// New creates a Fetcher for the given site origin.
func New(origin string, opts ...Option) *Fetcher {
	f := &Fetcher{
		client:      &http.Client{Timeout: 10 * time.Second},
		origin:      strings.TrimRight(origin, "/"),
		userAgent:   "GNSM-AI-Docent/1.0",
		maxBodySize: 5 * 1024 * 1024,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.extractor == nil {
		f.extractor = extract.New(f.origin)
	}
	return f
}

// Fetch retrieves the page at url and returns its PageResult.
// Notice-detail URLs go through the board API first; if that lookup yields
// no usable HTML, Fetch falls back to a plain page retrieval.
func (f *Fetcher) Fetch(ctx context.Context, url string) model.PageResult {
	f.logger.Info("fetching live page", "url", url)

	if id := noticeID(url); id != "" {
		if result, terminal := f.fetchBoard(ctx, url, id); terminal {
			return result
		}
		// Board lookup succeeded but carried no usable HTML; the public
		// page still renders something, so try it directly.
	}
	return f.fetchPage(ctx, url)
}

// fetchPage performs a plain GET of url and extracts FACTS from the body.
func (f *Fetcher) fetchPage(ctx context.Context, url string) model.PageResult {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return f.failure(url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return f.failure(url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return f.failure(url, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	body, err := f.readBody(resp)
	if err != nil {
		return f.failure(url, err)
	}

	facts, rich := f.extractor.Facts(body)
	return model.PageResult{
		Source:         url,
		Title:          f.extractor.Title(body),
		Facts:          facts,
		HasRichContent: rich,
	}
}

// readBody reads the response body up to maxBodySize, decoding it to UTF-8
// based on the Content-Type header and the document's own declarations.
// Korean public-sector pages still occasionally serve EUC-KR.
func (f *Fetcher) readBody(resp *http.Response) (string, error) {
	limited := io.LimitReader(resp.Body, f.maxBodySize)
	decoded, err := charset.NewReader(limited, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", fmt.Errorf("failed to detect charset: %w", err)
	}
	body, err := io.ReadAll(decoded)
	if err != nil {
		return "", fmt.Errorf("failed to read body: %w", err)
	}
	return string(body), nil
}

// failure logs the real cause and returns the user-safe error result.
func (f *Fetcher) failure(url string, err error) model.PageResult {
	f.logger.Error("page fetch failed", "url", url, "error", err)
	return model.PageResult{Source: url, ErrorMark: FailureMark}
}
