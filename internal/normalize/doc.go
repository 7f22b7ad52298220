// Package normalize provides text normalization helpers for extracted page
// content and model answers.
//
// The museum site frequently renders schedule tables where two clock times
// end up concatenated without a separator ("10:0010:40"). TimeRanges repairs
// these into a canonical "10:00~10:40" form while leaving already-separated
// ranges untouched.
//
// AnswerMarkdown cleans superficial markdown artifacts from generated
// answers, primarily stray "~~" strikethrough markers that appear when a
// model echoes a tilde-separated time range.
package normalize
