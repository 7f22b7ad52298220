package fetch

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/gnsm/docent/internal/config"
)

// VerifyResult is the reachability outcome for one directory entry.
type VerifyResult struct {
	// Label is the directory label that was checked.
	Label string

	// URL is the resolved absolute URL.
	URL string

	// StatusCode is the HTTP status received, zero when the request failed
	// before a response arrived.
	StatusCode int

	// Err is the transport error, nil when a response was received.
	Err error
}

// OK reports whether the entry responded with a success status.
func (r VerifyResult) OK() bool {
	return r.Err == nil && r.StatusCode >= 200 && r.StatusCode < 400
}

// VerifyDirectory checks every directory entry for reachability.
// Requests run concurrently up to the given limit; results keep directory
// order. This is a maintenance operation for keeping the hand-curated
// directory in sync with the live site; the Q&A path never calls it.
func (f *Fetcher) VerifyDirectory(ctx context.Context, dir *config.Directory, concurrency int) []VerifyResult {
	entries := dir.Entries()
	results := make([]VerifyResult, len(entries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, entry := range entries {
		g.Go(func() error {
			url := dir.Resolve(entry.Path)
			results[i] = VerifyResult{
				Label: entry.Label,
				URL:   url,
			}

			req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
			if err != nil {
				results[i].Err = err
				return nil
			}
			req.Header.Set("User-Agent", f.userAgent)

			resp, err := f.client.Do(req)
			if err != nil {
				results[i].Err = err
				return nil
			}
			resp.Body.Close()

			results[i].StatusCode = resp.StatusCode
			if resp.StatusCode >= 400 {
				f.logger.Warn("directory entry unreachable",
					"label", entry.Label,
					"url", url,
					"status", resp.StatusCode,
				)
			}
			return nil
		})
	}

	// Workers only record per-entry outcomes, they never return errors.
	if err := g.Wait(); err != nil {
		f.logger.Error("directory verification interrupted", "error", fmt.Errorf("unexpected: %w", err))
	}
	return results
}
