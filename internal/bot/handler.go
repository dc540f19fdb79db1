package bot

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Handler processes a single Telegram update.
type Handler interface {
	Handle(ctx context.Context, b *bot.Bot, update *models.Update)
}

// Responder turns a free-text user message into a reply.
type Responder interface {
	Answer(ctx context.Context, question string) (string, error)
}
