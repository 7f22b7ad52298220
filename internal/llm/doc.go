// Package llm turns collected page facts into a visitor-facing answer.
//
// The model never sees the live website. It receives the user's question and
// a facts bundle assembled from fetched pages, under a system prompt that
// forbids adding any information the bundle does not contain. Callers depend
// on the Completer interface so tests can substitute a canned model.
package llm
