package model

// PageResult is the outcome of fetching and extracting a single page.
// It is constructed fresh per fetch, never persisted, and immutable after
// construction.
//
// Exactly one of two shapes occurs: a success carries non-empty Facts (the
// extractor substitutes an explicit "nothing found" placeholder rather than
// leaving Facts empty), or a failure carries only Source and ErrorMark.
// A caller never sees a raw transport error.
type PageResult struct {
	// Source is the URL the fetch was issued against.
	Source string `json:"source"`

	// Title is the inferred page title. May be empty.
	Title string `json:"title,omitempty"`

	// Facts is the layered text representation of the page: text lines,
	// markdown table grids, and image URLs under fixed section headers.
	Facts string `json:"facts,omitempty"`

	// HasRichContent is true when extraction produced at least one
	// non-empty table or one image reference.
	HasRichContent bool `json:"has_rich_content"`

	// ErrorMark is a generic, user-safe failure marker. Empty on success.
	// The underlying cause is logged, never surfaced here.
	ErrorMark string `json:"error,omitempty"`
}

// Failed reports whether the fetch ended in a failure marker.
func (p PageResult) Failed() bool {
	return p.ErrorMark != ""
}
