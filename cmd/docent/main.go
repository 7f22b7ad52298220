// Package main provides the entry point for the docent CLI.
//
// Docent is a grounded question-answering assistant for the Gwacheon
// National Science Museum website. It fetches live pages, extracts their
// facts, and lets a language model reformat only those facts into answers.
//
// Usage:
//
//	docent ask "휴관일이 언제인가요?"
//	docent chat
//
// See --help for all available options.
package main

// main is the entry point for docent.
func main() {
	Execute()
}
