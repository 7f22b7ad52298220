package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// OpenAIClient is a Completer backed by the OpenAI chat completions API.
type OpenAIClient struct {
	api          openai.Client
	model        string
	temperature  float64
	instructions string
}

// ClientOption configures an OpenAIClient.
type ClientOption func(*OpenAIClient)

// WithModel sets the chat model name.
func WithModel(model string) ClientOption {
	return func(c *OpenAIClient) {
		c.model = model
	}
}

// WithTemperature sets the sampling temperature. Zero keeps answers close
// to the facts bundle.
func WithTemperature(t float64) ClientOption {
	return func(c *OpenAIClient) {
		c.temperature = t
	}
}

// WithInstructions adds operator-supplied instructions as a secondary
// system message. They are framed so the grounding rules win on conflict.
func WithInstructions(s string) ClientOption {
	return func(c *OpenAIClient) {
		c.instructions = s
	}
}

// NewOpenAIClient creates a Completer for the given API key.
func NewOpenAIClient(apiKey string, opts ...ClientOption) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	c := &OpenAIClient{
		api:         openai.NewClient(option.WithAPIKey(apiKey)),
		model:       "gpt-4o-mini",
		temperature: 0.0,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Complete implements Completer.
func (c *OpenAIClient) Complete(ctx context.Context, question, facts string) (string, error) {
	messages := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(systemPrompt),
	}
	if c.instructions != "" {
		messages = append(messages, openai.SystemMessage(instructionsPrompt(c.instructions)))
	}
	messages = append(messages, openai.UserMessage(userPrompt(question, facts)))

	resp, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(c.model),
		Messages:    messages,
		Temperature: openai.Float(c.temperature),
	})
	if err != nil {
		return "", fmt.Errorf("llm: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	return resp.Choices[0].Message.Content, nil
}
