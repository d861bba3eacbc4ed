package ai

import (
	"context"
	"errors"
	"fmt"
)

// ErrEmptyResponse is returned when a model answers without any text.
var ErrEmptyResponse = errors.New("empty response")

// Provider defines the interface for AI script generation
type Provider interface {
	// GenerateScript drafts a macro script for the prompt
	GenerateScript(ctx context.Context, prompt string) (string, error)
	// ReviseScript fixes a previous draft given the compiler's diagnostics
	ReviseScript(ctx context.Context, prompt, previous, diagnostics string) (string, error)
}

// NewProvider creates a new AI provider based on the provider name
func NewProvider(name, model string) (Provider, error) {
	switch name {
	case "claude", "anthropic":
		return NewClaudeProvider(model)
	case "openai", "gpt":
		return NewOpenAIProvider(model)
	default:
		return nil, fmt.Errorf("unknown provider: %s (supported: claude, openai)", name)
	}
}
