// Package render writes answers and directory listings for the terminal.
//
// Two formats exist: markdown for humans reading a chat session, and JSON
// for scripts consuming `ask` output. Both implement the same Writer
// interface so commands pick the format without caring about the details.
package render
