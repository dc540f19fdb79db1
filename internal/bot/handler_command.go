package bot

import (
	"context"
	"log"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

const startMessage = `Olá! Sou seu assistente de finanças pessoais.

Me conte seus gastos em linguagem natural, por exemplo:
"gastei 30 reais no almoço hoje"

Ou pergunte sobre eles:
"Qual foi o total de gastos em março?"`

// StartHandler replies to the /start command with usage instructions.
type StartHandler struct{}

func NewStartHandler() *StartHandler {
	return &StartHandler{}
}

func (h *StartHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text:   startMessage,
	})
	if err != nil {
		log.Println("[StartHandler.Handle] failed to send message:", err)
	}
}
