package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	tgbot "github.com/go-telegram/bot"

	"financebot/internal/bot"
	"financebot/internal/config"
	"financebot/internal/database"
	"financebot/internal/llm"
	"financebot/internal/llm/gemini"
	"financebot/internal/llm/openai"
	"financebot/internal/pipeline"
	"financebot/internal/whatsapp"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("[main] config: ", err)
	}

	db, err := database.Open(cfg.DbPath)
	if err != nil {
		log.Fatal("[main] open database: ", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Println("[main] close database:", err)
		}
	}()

	var model llm.Model
	switch cfg.LLMProvider {
	case config.ProviderGemini:
		gm, err := gemini.New(ctx, cfg.GoogleAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatal("[main] gemini: ", err)
		}
		defer func() {
			if err := gm.Close(); err != nil {
				log.Println("[main] close gemini client:", err)
			}
		}()
		model = gm
	case config.ProviderOpenAI:
		om, err := openai.New(cfg.OpenAIAPIKey, cfg.OpenAIModel)
		if err != nil {
			log.Fatal("[main] openai: ", err)
		}
		model = om
	}

	assistant := pipeline.New(model, database.NewExecutor(db))

	if cfg.WhatsAppEnabled() {
		client := whatsapp.NewClient(cfg.WhatsAppAccessToken, cfg.WhatsAppPhoneNumberID)
		server := whatsapp.NewServer(cfg.WhatsAppVerifyToken, assistant, client)

		httpServer := &http.Server{
			Addr:    cfg.WhatsAppListenAddr,
			Handler: server.Router(),
		}

		go func() {
			log.Println("[main] whatsapp webhook listening on", cfg.WhatsAppListenAddr)
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Println("[main] whatsapp server:", err)
				cancel()
			}
		}()

		go func() {
			<-ctx.Done()
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()
			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				log.Println("[main] whatsapp server shutdown:", err)
			}
		}()
	}

	if cfg.TelegramEnabled() {
		b, err := tgbot.New(cfg.TelegramBotToken)
		if err != nil {
			log.Fatal("[main] telegram bot: ", err)
		}

		startHandler := bot.NewStartHandler()
		textHandler := bot.NewTextHandler(assistant)

		b.RegisterHandler(tgbot.HandlerTypeMessageText, "/start", tgbot.MatchTypeExact, startHandler.Handle)
		b.RegisterHandler(tgbot.HandlerTypeMessageText, "", tgbot.MatchTypePrefix, textHandler.Handle)

		log.Println("[main] telegram bot started")
		b.Start(ctx)
		return
	}

	<-ctx.Done()
}
