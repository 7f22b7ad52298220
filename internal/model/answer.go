package model

// FactsSection is one titled block of extracted facts. Sections have no
// identity beyond their position; the bundle is rebuilt for every request.
type FactsSection struct {
	// Title is the section heading, usually the source page's title or
	// its directory label.
	Title string `json:"title"`

	// Body is the section's facts text, or a templated failure notice
	// when the page could not be loaded.
	Body string `json:"body"`
}

// Link is a source page reference shown alongside the answer.
type Link struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Answer is the per-request report that flows through the pipeline.
// Each step fills in its part: matching, fetching, generation, polish.
// It lives for exactly one question and is never shared between requests.
type Answer struct {
	// Query is the raw user question (typed or from a topic shortcut).
	Query string `json:"query"`

	// Match is the structured directory match result.
	Match MatchResult `json:"match"`

	// Pages holds one PageResult per matched directory entry, in match order.
	Pages []PageResult `json:"pages,omitempty"`

	// Sections is the facts bundle assembled from the fetched pages.
	Sections []FactsSection `json:"sections,omitempty"`

	// Links are the source pages backing the answer, deduplicated by URL.
	Links []Link `json:"links,omitempty"`

	// HasRichContent is true when any fetched page carried a table or image,
	// which triggers the "check the homepage" notice.
	HasRichContent bool `json:"has_rich_content"`

	// Response is the final answer text after generation and cleanup.
	Response string `json:"response"`

	// NoMatch is true when no facts could be assembled and the response
	// is a guidance message instead of a generated answer.
	NoMatch bool `json:"no_match"`
}

// AddLink appends a source link, dropping exact URL duplicates.
func (a *Answer) AddLink(title, url string) {
	for _, l := range a.Links {
		if l.URL == url {
			return
		}
	}
	a.Links = append(a.Links, Link{Title: title, URL: url})
}
