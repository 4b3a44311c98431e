// Package config reads runtime configuration from environment variables.
// Every value has a hardcoded default; missing credentials degrade features
// (scoring, Telegram relay) instead of failing startup.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all runtime configuration for the API server, the dashboard
// client, and the OpenClaw poller.
type Config struct {
	Port              string
	APIBaseURL        string
	PollInterval      time.Duration
	GeminiAPIKey      string
	GeminiModel       string
	TelegramBotToken  string
	TelegramChatID    string
	DigestIntervalHrs int
	DashboardDeepLink string
}

// Load reads environment variables and returns a Config with defaults
// applied.
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}

	apiURL := os.Getenv("API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:" + port
	}

	pollInterval := 60 * time.Second
	if s := os.Getenv("POLL_INTERVAL_MS"); s != "" {
		if ms, err := strconv.Atoi(s); err == nil && ms > 0 {
			pollInterval = time.Duration(ms) * time.Millisecond
		}
	}

	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = "gemini-2.5-flash"
	}

	digestHrs := 24
	if s := os.Getenv("DIGEST_INTERVAL_HOURS"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			digestHrs = v
		}
	}

	return &Config{
		Port:              port,
		APIBaseURL:        apiURL,
		PollInterval:      pollInterval,
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		GeminiModel:       model,
		TelegramBotToken:  os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChatID:    os.Getenv("TELEGRAM_CHAT_ID"),
		DigestIntervalHrs: digestHrs,
		DashboardDeepLink: "/",
	}
}
