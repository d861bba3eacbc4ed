package ai

import (
	"context"
	"fmt"
	"os"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// ClaudeProvider implements the Provider interface using Anthropic's Claude
type ClaudeProvider struct {
	client *anthropic.Client
	model  string
}

// NewClaudeProvider creates a new Claude provider
func NewClaudeProvider(model string) (*ClaudeProvider, error) {
	apiKey := os.Getenv("K90MACRO_ANTHROPIC_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("K90MACRO_ANTHROPIC_KEY or ANTHROPIC_API_KEY environment variable required")
	}

	client := anthropic.NewClient(option.WithAPIKey(apiKey))

	if model == "" {
		model = string(anthropic.ModelClaudeSonnet4_20250514)
	}

	return &ClaudeProvider{
		client: &client,
		model:  model,
	}, nil
}

// GenerateScript drafts a macro script from the user prompt
func (p *ClaudeProvider) GenerateScript(ctx context.Context, prompt string) (string, error) {
	return p.complete(ctx, buildUserPrompt(prompt))
}

// ReviseScript asks for a corrected script after compiler diagnostics
func (p *ClaudeProvider) ReviseScript(ctx context.Context, prompt, previous, diagnostics string) (string, error) {
	return p.complete(ctx, buildRevisePrompt(prompt, previous, diagnostics))
}

func (p *ClaudeProvider) complete(ctx context.Context, userPrompt string) (string, error) {
	resp, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: 1024,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("Claude API error: %w", err)
	}

	// Extract text content
	var responseText string
	for _, block := range resp.Content {
		if block.Type == "text" {
			responseText = block.Text
			break
		}
	}

	script, err := extractScript(responseText)
	if err != nil {
		return "", fmt.Errorf("Claude response: %w", err)
	}
	return script, nil
}
