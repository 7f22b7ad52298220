package llm

import (
	"context"
	"errors"
)

// ErrNoAPIKey is returned when no OpenAI API key is configured.
var ErrNoAPIKey = errors.New("llm: OpenAI API key is not set")

// ErrEmptyResponse is returned when the model produces no choices.
var ErrEmptyResponse = errors.New("llm: model returned an empty response")

// Completer produces an answer for a question grounded in a facts bundle.
type Completer interface {
	// Complete sends the system prompt, the question, and the facts bundle
	// to the model and returns its answer text.
	Complete(ctx context.Context, question, facts string) (string, error)
}
