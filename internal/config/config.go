package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type AppConfig struct {
	// Server
	HTTPAddr     string
	MaxBodyBytes int64

	// Telegram
	TelegramToken   string
	TelegramAPIBase string
	AdminChatID     int64

	// Pricing
	RateURL     string
	RateTimeout time.Duration

	// Promo
	PromoAllowList []string

	// Messaging
	ModeratorContact string
}

// Load loads environment variables into AppConfig.
func Load() AppConfig {
	return AppConfig{
		HTTPAddr:     getEnv("HTTP_ADDR", ":8080"),
		MaxBodyBytes: getEnvInt64("MAX_BODY_BYTES", 20<<20),

		TelegramToken:   getEnv("TELEGRAM_TOKEN", ""),
		TelegramAPIBase: getEnv("TELEGRAM_API_BASE", "https://api.telegram.org"),
		AdminChatID:     getEnvInt64("ADMIN_ID", 0),

		RateURL:     getEnv("RATE_URL", "https://api.exchangerate-api.com/v4/latest/NGN"),
		RateTimeout: time.Duration(getEnvInt64("RATE_TIMEOUT_SECONDS", 5)) * time.Second,

		PromoAllowList: getEnvSlice("PROMO_IDS", nil),

		ModeratorContact: getEnv("MODERATOR_CONTACT", "https://wa.me/2349114301708"),
	}
}

// Validate fails fast when the credentials the relay cannot run without are
// absent, so a misconfigured process never accepts submissions.
func (c AppConfig) Validate() error {
	if c.TelegramToken == "" {
		return fmt.Errorf("TELEGRAM_TOKEN is required")
	}
	if c.AdminChatID == 0 {
		return fmt.Errorf("ADMIN_ID is required")
	}
	if c.MaxBodyBytes < 10<<20 {
		return fmt.Errorf("MAX_BODY_BYTES must allow at least 10 MiB request bodies")
	}
	return nil
}

// --- Helper functions ---

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	}
	return defaultValue
}
