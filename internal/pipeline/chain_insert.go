package pipeline

import (
	"context"
	"fmt"

	"financebot/internal/llm"
)

// InsertChain records a new expense: fetch schema, generate an INSERT
// from the message, execute it, then confirm back to the user. The
// execution result is discarded; only its error matters.
type InsertChain struct {
	model llm.Model
	db    Database
}

func NewInsertChain(model llm.Model, db Database) *InsertChain {
	return &InsertChain{model: model, db: db}
}

func (c *InsertChain) Run(ctx context.Context, question string) (string, error) {
	schema, err := c.db.Schema(ctx)
	if err != nil {
		return "", fmt.Errorf("fetch schema: %w", err)
	}

	sqlPrompt, err := insertSQLPrompt.Render(map[string]string{
		"schema":   schema,
		"question": question,
	})
	if err != nil {
		return "", err
	}

	query, err := c.model.Generate(ctx, sqlPrompt)
	if err != nil {
		return "", fmt.Errorf("generate insert: %w", err)
	}

	if _, err := c.db.Execute(ctx, query); err != nil {
		return "", fmt.Errorf("execute insert: %w", err)
	}

	confirmPrompt, err := confirmationPrompt.Render(map[string]string{
		"question": question,
	})
	if err != nil {
		return "", err
	}

	reply, err := c.model.Generate(ctx, confirmPrompt)
	if err != nil {
		return "", fmt.Errorf("generate confirmation: %w", err)
	}

	return reply, nil
}
