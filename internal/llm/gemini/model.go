package gemini

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type Model struct {
	client *genai.Client
	model  string
}

func New(ctx context.Context, apiKey, model string) (*Model, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &Model{client: client, model: model}, nil
}

func (m *Model) Generate(ctx context.Context, prompt string) (string, error) {
	gm := m.client.GenerativeModel(m.model)
	gm.SetTemperature(0)

	resp, err := gm.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Printf("[gemini/Model.Generate] request error: %v", err)
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		log.Println("[gemini/Model.Generate] no candidates in response")
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}

	reply := b.String()
	if strings.TrimSpace(reply) == "" {
		return "", fmt.Errorf("gemini returned empty text")
	}
	return reply, nil
}

func (m *Model) Close() error {
	return m.client.Close()
}
