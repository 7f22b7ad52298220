package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/gnsm/docent/internal/normalize"
)

// linkFallbackText labels a hyperlink that has no visible text of its own.
const linkFallbackText = "자세히 보기"

// tables converts the document's tables, up to maxTables, into fixed-width
// pipe-delimited markdown grids joined by blank lines. A table with no
// non-empty rows contributes nothing.
func (e *Extractor) tables(doc *goquery.Document) string {
	var blocks []string
	doc.Find("table").EachWithBreak(func(i int, table *goquery.Selection) bool {
		if i >= e.maxTables {
			return false
		}
		if grid := e.tableGrid(table); grid != "" {
			blocks = append(blocks, grid)
		}
		return true
	})
	return strings.Join(blocks, "\n\n")
}

// tableGrid renders a single table. Rows are collected in document order
// and padded to the table's maximum column count, then emitted as a header
// row, a separator row, and body rows.
func (e *Extractor) tableGrid(table *goquery.Selection) string {
	var rows [][]string
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		var cells []string
		tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, normalize.TimeRanges(e.cellText(cell)))
		})
		if len(cells) > 0 {
			rows = append(rows, cells)
		}
	})
	if len(rows) == 0 {
		return ""
	}

	maxCols := 0
	for _, r := range rows {
		if len(r) > maxCols {
			maxCols = len(r)
		}
	}
	for i, r := range rows {
		for len(r) < maxCols {
			r = append(r, "")
		}
		rows[i] = r
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, "| "+strings.Join(rows[0], " | ")+" |")
	sep := make([]string, maxCols)
	for i := range sep {
		sep[i] = "---"
	}
	lines = append(lines, "| "+strings.Join(sep, " | ")+" |")
	for _, r := range rows[1:] {
		lines = append(lines, "| "+strings.Join(r, " | ")+" |")
	}
	return strings.Join(lines, "\n")
}

// cellText renders one table cell. Cells containing hyperlinks become a
// concatenation of [text](absoluteURL) fragments; a link without usable
// href degrades to its bare text, and a link without visible text gets the
// fallback label. Cells without links are their whitespace-joined text.
func (e *Extractor) cellText(cell *goquery.Selection) string {
	links := cell.Find("a")
	if links.Length() == 0 {
		return collapseText(cell)
	}

	var parts []string
	links.Each(func(_ int, a *goquery.Selection) {
		text := collapseText(a)
		if text == "" {
			text = linkFallbackText
		}
		href := e.resolve(strings.TrimSpace(a.AttrOr("href", "")))
		if href != "" {
			parts = append(parts, "["+text+"]("+href+")")
		} else {
			parts = append(parts, text)
		}
	})
	return strings.Join(parts, " ")
}

// images collects unique image source URLs from the document in first-seen
// order. Empty sources are skipped; root-relative sources are resolved
// against the site origin before deduplication.
func (e *Extractor) images(doc *goquery.Document) []string {
	seen := make(map[string]bool)
	var urls []string
	doc.Find("img").Each(func(_ int, img *goquery.Selection) {
		src := strings.TrimSpace(img.AttrOr("src", ""))
		if src == "" {
			return
		}
		src = e.resolve(src)
		if !seen[src] {
			seen[src] = true
			urls = append(urls, src)
		}
	})
	return urls
}
