// Package pipeline orchestrates answering a single visitor question.
//
// A question flows through four steps in order: match the query against the
// page directory, fetch facts from the matched pages, generate an answer from
// the facts bundle, and polish the answer markdown. Each step mutates the
// shared Answer; a page that fails to load is recorded in the answer rather
// than aborting the run, so one dead page never silences the rest.
package pipeline
