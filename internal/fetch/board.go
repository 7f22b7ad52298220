package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/gnsm/docent/internal/model"
)

// noticePathPattern recognizes notice-detail URLs, whose content is served
// through the board API rather than the page itself.
var noticePathPattern = regexp.MustCompile(`/introduce/notice/(\d+)`)

// boardPathPrefix is the board API path; the notice's numeric identifier is
// appended to form the endpoint.
const boardPathPrefix = "/scipia/boards/showBoard/"

// boardTitleKeys are the JSON fields checked, in order, for a notice title.
var boardTitleKeys = []string{"title", "subject", "boardTitle"}

// noticeID extracts the numeric notice identifier from a URL, or returns
// the empty string when the URL is not a notice-detail page.
func noticeID(url string) string {
	m := noticePathPattern.FindStringSubmatch(url)
	if m == nil {
		return ""
	}
	return m[1]
}

// fetchBoard asks the board API for the notice's JSON and extracts FACTS
// from the HTML embedded in it.
//
// The second return value reports whether the result is terminal. A board
// request that fails outright is terminal (the caller gets the failure
// result); a request that succeeds but carries no usable HTML is not, and
// the caller falls back to a plain page fetch.
func (f *Fetcher) fetchBoard(ctx context.Context, sourceURL, id string) (model.PageResult, bool) {
	apiURL := f.origin + boardPathPrefix + id

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader([]byte("{}")))
	if err != nil {
		return f.failure(sourceURL, err), true
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json, text/javascript, */*; q=0.01")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")

	resp, err := f.client.Do(req)
	if err != nil {
		return f.failure(sourceURL, err), true
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return f.failure(sourceURL, fmt.Errorf("board API status %d", resp.StatusCode)), true
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize))
	if err != nil {
		return f.failure(sourceURL, fmt.Errorf("failed to read board response: %w", err)), true
	}

	html, err := findTableHTML(data)
	if err != nil {
		return f.failure(sourceURL, fmt.Errorf("malformed board JSON: %w", err)), true
	}

	content, title := boardFields(data)
	if html == "" {
		html = content
	}
	if html == "" {
		// Nothing extractable in the JSON; let the caller try the page.
		return model.PageResult{}, false
	}

	facts, rich := f.extractor.Facts(html)
	if title == "" {
		title = f.extractor.Title(html)
	}
	return model.PageResult{
		Source:         sourceURL,
		Title:          title,
		Facts:          facts,
		HasRichContent: rich,
	}, true
}

// findTableHTML scans a JSON document, in document order, for the first
// string value containing a table tag.
//
// Design decision: We walk the token stream instead of unmarshalling into
// map[string]any because Go maps do not preserve key order; the token walk
// keeps "first string value" deterministic and identical to the document's
// own ordering. The container stack makes the recursion's termination and
// the key/value alternation inside objects explicit.
func findTableHTML(data []byte) (string, error) {
	type frame struct {
		object    bool
		expectKey bool
	}
	var stack []frame

	// valueDone marks that the current object (if any) finished a value
	// and expects a key next.
	valueDone := func() {
		if len(stack) > 0 && stack[len(stack)-1].object {
			stack[len(stack)-1].expectKey = true
		}
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return "", nil
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case json.Delim:
			switch t {
			case '{':
				stack = append(stack, frame{object: true, expectKey: true})
			case '[':
				stack = append(stack, frame{})
			case '}', ']':
				stack = stack[:len(stack)-1]
				valueDone()
			}
		case string:
			top := len(stack) - 1
			if top >= 0 && stack[top].object && stack[top].expectKey {
				stack[top].expectKey = false
				continue
			}
			if strings.Contains(strings.ToLower(t), "<table") {
				return t, nil
			}
			valueDone()
		default:
			valueDone()
		}
	}
}

// boardFields reads the top-level "content" field and the first title-like
// field from a board JSON object. Both are empty when the document is not
// an object or the fields are absent.
func boardFields(data []byte) (content, title string) {
	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return "", ""
	}
	if s, ok := obj["content"].(string); ok {
		content = s
	}
	for _, key := range boardTitleKeys {
		if s, ok := obj[key].(string); ok {
			title = strings.TrimSpace(s)
			break
		}
	}
	return content, title
}
