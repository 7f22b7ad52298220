package render

import (
	"fmt"
	"io"

	"github.com/gnsm/docent/internal/model"
)

// Writer outputs a finished answer to its destination.
//
// Design decision: We use an interface to allow different output formats
// and destinations. This enables writing to files, stdout, or network
// connections with the same API.
type Writer interface {
	// WriteAnswer outputs the answer to the configured destination.
	// Returns the number of bytes written and any error encountered.
	WriteAnswer(answer *model.Answer) (int, error)
}

// Format identifies an output format.
type Format string

// Supported output formats.
const (
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
)

// NewWriter creates a Writer for the given format.
func NewWriter(format Format, output io.Writer) (Writer, error) {
	switch format {
	case FormatMarkdown:
		return NewMarkdownWriter(output), nil
	case FormatJSON:
		return NewJSONWriter(output, WithPrettyPrint()), nil
	default:
		return nil, fmt.Errorf("render: unknown format %q", format)
	}
}

// baseWriter provides common functionality for answer writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
