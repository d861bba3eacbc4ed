package ai

import (
	"context"
	"fmt"
	"os"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIProvider implements the Provider interface using OpenAI
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

// NewOpenAIProvider creates a new OpenAI provider
func NewOpenAIProvider(model string) (*OpenAIProvider, error) {
	apiKey := os.Getenv("K90MACRO_OPENAI_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("K90MACRO_OPENAI_KEY or OPENAI_API_KEY environment variable required")
	}

	client := openai.NewClient(apiKey)

	if model == "" {
		model = "gpt-4o"
	}

	return &OpenAIProvider{
		client: client,
		model:  model,
	}, nil
}

// GenerateScript drafts a macro script from the user prompt
func (p *OpenAIProvider) GenerateScript(ctx context.Context, prompt string) (string, error) {
	return p.complete(ctx, buildUserPrompt(prompt))
}

// ReviseScript asks for a corrected script after compiler diagnostics
func (p *OpenAIProvider) ReviseScript(ctx context.Context, prompt, previous, diagnostics string) (string, error) {
	return p.complete(ctx, buildRevisePrompt(prompt, previous, diagnostics))
}

func (p *OpenAIProvider) complete(ctx context.Context, userPrompt string) (string, error) {
	resp, err := p.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: p.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: systemPrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: userPrompt,
				},
			},
			MaxTokens: 1024,
		},
	)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("OpenAI response: %w", ErrEmptyResponse)
	}

	script, err := extractScript(resp.Choices[0].Message.Content)
	if err != nil {
		return "", fmt.Errorf("OpenAI response: %w", err)
	}
	return script, nil
}
