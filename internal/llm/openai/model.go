package openai

import (
	"context"
	"fmt"
	"log"

	api "github.com/sashabaranov/go-openai"
)

type Model struct {
	client *api.Client
	model  string
}

type Option func(*api.ClientConfig)

// WithBaseURL points the client at an OpenAI-compatible endpoint.
func WithBaseURL(baseURL string) Option {
	return func(cfg *api.ClientConfig) {
		cfg.BaseURL = baseURL
	}
}

func New(apiKey, model string, opts ...Option) (*Model, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	if model == "" {
		model = api.GPT4oMini
	}

	cfg := api.DefaultConfig(apiKey)
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Model{client: api.NewClientWithConfig(cfg), model: model}, nil
}

func (m *Model) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := m.client.CreateChatCompletion(ctx, api.ChatCompletionRequest{
		Model:       m.model,
		Temperature: 0,
		Messages: []api.ChatCompletionMessage{
			{Role: api.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		log.Printf("[openai/Model.Generate] request error: %v", err)
		return "", fmt.Errorf("openai chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		log.Println("[openai/Model.Generate] no choices in response")
		return "", fmt.Errorf("openai returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
