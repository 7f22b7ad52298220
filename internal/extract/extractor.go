package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/gnsm/docent/internal/normalize"
)

// Fixed section headers of the FACTS format. The system prompt references
// these literally, so they must not change independently.
const (
	sectionTextHeader   = "### 텍스트"
	sectionTablesHeader = "### 표"
	sectionImagesHeader = "### 이미지 URL"
)

// PlaceholderNoContent is returned when extraction ran successfully but the
// page yielded no text, tables, or images. Callers distinguish this from a
// fetch failure: it is a result, not an error.
const PlaceholderNoContent = "이 페이지에서 텍스트나 표를 찾지 못했습니다."

// noiseSelector matches the non-content elements stripped before
// extraction: scripts, styles, hidden fallbacks, and site chrome.
const noiseSelector = "script, style, noscript, header, footer, nav"

// Extractor converts HTML documents into FACTS text.
// It is stateless apart from its configuration and safe for reuse across
// pages.
type Extractor struct {
	// origin is the site origin used to resolve root-relative URLs
	// (image sources, cell links) to absolute form.
	origin string

	// maxTables caps how many tables are converted per document.
	maxTables int
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithMaxTables caps the number of tables converted per page.
func WithMaxTables(n int) Option {
	return func(e *Extractor) {
		e.maxTables = n
	}
}

// New creates an Extractor resolving relative URLs against the given origin.
func New(origin string, opts ...Option) *Extractor {
	e := &Extractor{
		origin:    strings.TrimRight(origin, "/"),
		maxTables: 10,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Facts converts an HTML document into the layered FACTS representation.
// The second return value reports rich content: at least one non-empty
// table or one image reference.
//
// Facts never returns an empty string. A page with no usable content yields
// PlaceholderNoContent so callers can tell "extraction found nothing" apart
// from "extraction was never run".
func (e *Extractor) Facts(html string) (string, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return PlaceholderNoContent, false
	}
	doc.Find(noiseSelector).Remove()

	textBlock := e.textLines(doc)
	tables := e.tables(doc)
	images := e.images(doc)

	var parts []string
	if textBlock != "" {
		parts = append(parts, sectionTextHeader+"\n"+textBlock)
	}
	if tables != "" {
		parts = append(parts, sectionTablesHeader+"\n"+tables)
	}
	if len(images) > 0 {
		parts = append(parts, sectionImagesHeader+"\n"+strings.Join(images, "\n"))
	}

	if len(parts) == 0 {
		return PlaceholderNoContent, false
	}
	return strings.Join(parts, "\n\n"), tables != "" || len(images) > 0
}

// textLines walks headings (levels 1-4), paragraphs, and list items in
// document order, one output line per element with non-empty visible text.
func (e *Extractor) textLines(doc *goquery.Document) string {
	var lines []string
	doc.Find("h1, h2, h3, h4, p, li").Each(func(_ int, s *goquery.Selection) {
		text := normalize.TimeRanges(collapseText(s))
		if text == "" {
			return
		}

		switch name := goquery.NodeName(s); name {
		case "li":
			lines = append(lines, "- "+text)
		case "h1", "h2", "h3", "h4":
			level := int(name[1] - '0')
			if level > 4 {
				level = 4
			}
			lines = append(lines, strings.Repeat("#", level)+" "+text)
		default:
			lines = append(lines, text)
		}
	})
	return strings.Join(lines, "\n")
}

// Title infers a display title for the document: the first h1, else the
// first h2, else the first h3 with non-empty text, else the <title> element,
// else empty.
func (e *Extractor) Title(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	for _, tag := range []string{"h1", "h2", "h3"} {
		if text := collapseText(doc.Find(tag).First()); text != "" {
			return text
		}
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}

// resolve makes a root-relative source absolute against the site origin.
// Other forms (absolute URLs, protocol-relative, data URIs) pass through.
func (e *Extractor) resolve(src string) string {
	if strings.HasPrefix(src, "/") && !strings.HasPrefix(src, "//") {
		return e.origin + src
	}
	return src
}

// collapseText returns the selection's visible text with all runs of
// whitespace collapsed to single spaces.
func collapseText(s *goquery.Selection) string {
	return strings.Join(strings.Fields(s.Text()), " ")
}
