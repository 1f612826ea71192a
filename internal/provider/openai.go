package provider

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"carbonbuddy/internal/domain"
)

// OpenAIProvider implements Provider against an OpenAI-compatible
// chat-completions API using the official SDK.
type OpenAIProvider struct {
	client  openai.Client
	model   string
	baseURL string
}

// NewOpenAIProvider creates a provider for an OpenAI-compatible endpoint.
// baseURL defaults to the public OpenAI API; apiKey is required.
func NewOpenAIProvider(baseURL, apiKey, model string) (*OpenAIProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		return nil, fmt.Errorf("model name is required")
	}

	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &OpenAIProvider{
		client:  openai.NewClient(opts...),
		model:   model,
		baseURL: baseURL,
	}, nil
}

// Model returns the configured model name.
func (p *OpenAIProvider) Model() string {
	return p.model
}

// Send converts the transcript to SDK message params, appends the query as
// the final user turn, and performs one blocking completion call.
func (p *OpenAIProvider) Send(ctx context.Context, history []domain.Message, query string) (string, error) {
	messages := toChatMessages(history, query)

	completion, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: messages,
		Model:    openai.ChatModel(p.model),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	text := completion.Choices[0].Message.Content
	if text == "" {
		return "", fmt.Errorf("chat completion returned empty content")
	}
	return text, nil
}

// toChatMessages converts a transcript plus the pending query into SDK
// message params, preserving order. Unknown roles are skipped rather than
// guessed at.
func toChatMessages(history []domain.Message, query string) []openai.ChatCompletionMessageParamUnion {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(history)+1)
	for _, m := range history {
		switch m.Role {
		case domain.RoleUser:
			messages = append(messages, openai.UserMessage(m.Text))
		case domain.RoleAssistant:
			messages = append(messages, openai.AssistantMessage(m.Text))
		}
	}
	return append(messages, openai.UserMessage(query))
}

var _ Provider = (*OpenAIProvider)(nil)
