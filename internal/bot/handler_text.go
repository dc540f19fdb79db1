package bot

import (
	"context"
	"log"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"financebot/internal/pipeline"
)

// TextHandler forwards any plain message to the assistant and sends the
// reply back to the chat. When the assistant fails the user still gets
// an answer, a fixed apology.
type TextHandler struct {
	responder Responder
}

func NewTextHandler(responder Responder) *TextHandler {
	return &TextHandler{responder: responder}
}

func (h *TextHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}

	if update.Message.From != nil {
		log.Printf("[TextHandler.Handle] message from %s: %s", update.Message.From.FirstName, update.Message.Text)
	}

	reply := h.buildReply(ctx, update.Message.Text)

	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text:   reply,
	})
	if err != nil {
		log.Println("[TextHandler.Handle] failed to send message:", err)
	}
}

func (h *TextHandler) buildReply(ctx context.Context, text string) string {
	reply, err := h.responder.Answer(ctx, text)
	if err != nil {
		log.Println("[TextHandler.buildReply] answer failed:", err)
		return pipeline.ApologyReply
	}
	return reply
}
