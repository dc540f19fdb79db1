package pipeline

import (
	"context"
	"fmt"

	"financebot/internal/llm"
)

// QueryChain answers a question about recorded expenses:
// fetch schema, generate SQL, execute it, then turn the raw rows into a
// friendly reply. The model sees the schema twice because it is
// re-fetched before the response step.
type QueryChain struct {
	model llm.Model
	db    Database
}

func NewQueryChain(model llm.Model, db Database) *QueryChain {
	return &QueryChain{model: model, db: db}
}

func (c *QueryChain) Run(ctx context.Context, question string) (string, error) {
	schema, err := c.db.Schema(ctx)
	if err != nil {
		return "", fmt.Errorf("fetch schema: %w", err)
	}

	sqlPrompt, err := querySQLPrompt.Render(map[string]string{
		"schema":   schema,
		"question": question,
	})
	if err != nil {
		return "", err
	}

	query, err := c.model.Generate(ctx, sqlPrompt)
	if err != nil {
		return "", fmt.Errorf("generate sql: %w", err)
	}

	schema, err = c.db.Schema(ctx)
	if err != nil {
		return "", fmt.Errorf("refetch schema: %w", err)
	}

	response, err := c.db.Execute(ctx, query)
	if err != nil {
		return "", fmt.Errorf("execute query: %w", err)
	}

	responsePrompt, err := queryResponsePrompt.Render(map[string]string{
		"schema":   schema,
		"question": question,
		"query":    query,
		"response": response,
	})
	if err != nil {
		return "", err
	}

	reply, err := c.model.Generate(ctx, responsePrompt)
	if err != nil {
		return "", fmt.Errorf("generate response: %w", err)
	}

	return reply, nil
}
