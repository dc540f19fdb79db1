package pipeline

import (
	"context"
	"log"

	"financebot/internal/llm"
)

// ApologyReply is what the channel adapters send when a chain fails.
// The specific error is logged server side only.
const ApologyReply = "Desculpe, ocorreu um erro. Não consegui processar sua solicitação."

// Database is the finance database as the chains see it. Schema is
// fetched fresh on every call (the schema may change between calls) and
// Execute is expected to sanitize before running.
type Database interface {
	Schema(ctx context.Context) (string, error)
	Execute(ctx context.Context, query string) (string, error)
}

// Pipeline routes an inbound message to the query or insert chain.
// It holds no state across invocations; concurrent calls are safe as
// long as the model and database are.
type Pipeline struct {
	query  *QueryChain
	insert *InsertChain
}

func New(model llm.Model, db Database) *Pipeline {
	return &Pipeline{
		query:  NewQueryChain(model, db),
		insert: NewInsertChain(model, db),
	}
}

// Answer runs the chain selected for question and returns its reply.
// Errors propagate untouched; recovery happens at the channel boundary.
func (p *Pipeline) Answer(ctx context.Context, question string) (string, error) {
	intent := DetectIntent(question)
	log.Printf("[Pipeline.Answer] intent=%s question=%q", intent, question)

	if intent == IntentInsert {
		return p.insert.Run(ctx, question)
	}
	return p.query.Run(ctx, question)
}
