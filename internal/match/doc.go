// Package match resolves a visitor's free-form question to entries in the
// static page directory.
//
// Matching never touches the network. A query first goes through substring
// containment against every directory label, then, when nothing contains,
// through a character-level similarity ratio with a configurable cutoff.
// A small synonym table routes schedule and fee vocabulary to the usage
// guide page even when the question names no page at all.
package match
