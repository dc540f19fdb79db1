package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

type Config struct {
	// LLM
	LLMProvider  string
	GoogleAPIKey string
	GeminiModel  string
	OpenAIAPIKey string
	OpenAIModel  string

	// Finance database
	DbPath string

	// Telegram channel
	TelegramBotToken string

	// WhatsApp channel
	WhatsAppAccessToken   string
	WhatsAppVerifyToken   string
	WhatsAppPhoneNumberID string
	WhatsAppListenAddr    string
}

func Load() (c Config, err error) {
	if err := godotenv.Load(); err != nil {
		log.Println("[config.Load] no .env file found, using process environment")
	}

	c = Config{
		LLMProvider:           getEnv("LLM_PROVIDER", ProviderGemini),
		GoogleAPIKey:          os.Getenv("GOOGLE_API_KEY"),
		GeminiModel:           getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		OpenAIAPIKey:          os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:           os.Getenv("OPENAI_MODEL"),
		DbPath:                getEnv("DB_PATH", "finance_bot.db"),
		TelegramBotToken:      os.Getenv("TELEGRAM_BOT_TOKEN"),
		WhatsAppAccessToken:   os.Getenv("WHATSAPP_ACCESS_TOKEN"),
		WhatsAppVerifyToken:   os.Getenv("WHATSAPP_VERIFY_TOKEN"),
		WhatsAppPhoneNumberID: os.Getenv("WHATSAPP_PHONE_NUMBER_ID"),
		WhatsAppListenAddr:    getEnv("WHATSAPP_LISTEN_ADDR", ":8080"),
	}

	switch c.LLMProvider {
	case ProviderGemini:
		if c.GoogleAPIKey == "" {
			return c, fmt.Errorf("GOOGLE_API_KEY is required when LLM_PROVIDER=%s", ProviderGemini)
		}
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return c, fmt.Errorf("OPENAI_API_KEY is required when LLM_PROVIDER=%s", ProviderOpenAI)
		}
	default:
		return c, fmt.Errorf("unsupported LLM_PROVIDER: %s", c.LLMProvider)
	}

	if !c.TelegramEnabled() && !c.WhatsAppEnabled() {
		return c, fmt.Errorf("no messaging channel configured: set TELEGRAM_BOT_TOKEN or the WHATSAPP_* variables")
	}

	return c, nil
}

func (c Config) TelegramEnabled() bool {
	return c.TelegramBotToken != ""
}

func (c Config) WhatsAppEnabled() bool {
	return c.WhatsAppAccessToken != "" && c.WhatsAppVerifyToken != "" && c.WhatsAppPhoneNumberID != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
