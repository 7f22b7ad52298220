// Package extract converts museum site HTML into FACTS: the structured
// textual representation that is the only information the language model is
// allowed to see.
//
// The conversion walks the document in order and emits three layered
// sections under fixed headers: block text (headings, paragraphs, list
// items), tables rendered as fixed-width markdown grids, and image URLs
// resolved to absolute form. Pages are real-world markup, frequently
// malformed; extraction never fails on bad tags, and absent or broken elements
// simply contribute nothing.
//
// Design decision: We use PuerkitoBio/goquery rather than walking
// x/net/html nodes by hand because the extraction rules are selector-shaped
// ("every th/td in this table", "every a in this cell") and goquery keeps
// document order across combined selectors, which the output format
// depends on.
package extract
