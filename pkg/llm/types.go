// Package llm provides a uniform call surface over the supported LLM
// provider families. Model routing, temperature, and token counting live
// here; retry behaviour does not, since retries are driven by the agent layer
// through the structured model-retry message format.
package llm

import (
	"context"
	"fmt"
)

// MessageRole represents the role of a conversation message sender.
type MessageRole string

const (
	RoleSystem    MessageRole = "system"
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// Message is a single conversation message.
type Message struct {
	Role    MessageRole `json:"role"`
	Content string      `json:"content"`
}

// GenerateRequest describes one LLM call.
type GenerateRequest struct {
	// Messages is the conversation. When empty, Prompt is used as a single
	// user message.
	Messages []Message
	Prompt   string

	// MaxTokens caps the response length (0 = provider default).
	MaxTokens int

	// Temperature overrides the model spec's default temperature when non-nil.
	Temperature *float64

	// JSONMode requests a JSON-formatted response where the provider
	// supports it.
	JSONMode bool

	// StreamFunc, when non-nil, receives content deltas as they arrive.
	StreamFunc func(ctx context.Context, chunk []byte) error
}

// Usage reports token consumption for one call.
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

// GenerateResult is the outcome of one LLM call.
type GenerateResult struct {
	Content string
	Model   string
	Usage   *Usage
}

// Client is the uniform LLM call surface.
type Client interface {
	// Generate performs one call. Blocking; honors ctx cancellation.
	Generate(ctx context.Context, req *GenerateRequest) (*GenerateResult, error)

	// CountTokens estimates the token count of text for the client's model.
	CountTokens(text string) int

	// ModelID returns the provider-facing model identifier.
	ModelID() string
}

// Error wraps a provider failure with routing context.
type Error struct {
	Provider string
	Model    string
	Attempt  int
	Err      error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("llm call failed (provider=%s model=%s attempt=%d): %v",
		e.Provider, e.Model, e.Attempt, e.Err)
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error {
	return e.Err
}
