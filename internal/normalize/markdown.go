package normalize

import "regexp"

// strikethroughTimePattern matches a time range where the model emitted a
// markdown strikethrough "~~" instead of a single range separator
// (e.g. "20:00~~21:30").
var strikethroughTimePattern = regexp.MustCompile(`(\d{1,2}:\d{2})\s*~~\s*(\d{1,2}:\d{2})`)

// strikethroughPattern matches a generic ~~text~~ strikethrough span.
var strikethroughPattern = regexp.MustCompile(`~~([^~]+?)~~`)

// AnswerMarkdown removes stray strikethrough artifacts from a generated
// answer. Time ranges that picked up a doubled tilde are collapsed back to a
// single separator, then remaining ~~spans~~ are unwrapped.
func AnswerMarkdown(answer string) string {
	answer = strikethroughTimePattern.ReplaceAllString(answer, "$1~$2")
	return strikethroughPattern.ReplaceAllString(answer, "$1")
}
