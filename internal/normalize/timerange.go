package normalize

import "regexp"

// DefaultTimeSeparator is inserted between two adjacent clock times that
// have no separator of their own.
const DefaultTimeSeparator = "~"

// timeRangePattern matches two clock-time tokens (1-2 digit hour) with an
// optional tilde-like or dash-like separator between them. The separator
// alternatives include the unicode variants seen in the wild on the site
// (∼, –, —) in addition to ASCII "~" and "-".
var timeRangePattern = regexp.MustCompile(`(\d{1,2}:\d{2})\s*(~|∼|-|–|—)?\s*(\d{1,2}:\d{2})`)

// TimeRanges repairs concatenated clock-time ranges in text.
//
// Two time tokens with no separator, or separated only by whitespace, are
// joined with DefaultTimeSeparator. An existing separator character is
// preserved verbatim, which also makes the function idempotent: applying it
// to its own output is a no-op.
func TimeRanges(text string) string {
	return timeRangePattern.ReplaceAllStringFunc(text, func(m string) string {
		sub := timeRangePattern.FindStringSubmatch(m)
		start, sep, end := sub[1], sub[2], sub[3]
		if sep == "" {
			sep = DefaultTimeSeparator
		}
		return start + sep + end
	})
}
