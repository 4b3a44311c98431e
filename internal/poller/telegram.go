package poller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

const telegramAPIBase = "https://api.telegram.org"

// TelegramNotifier relays event messages to a Telegram chat via the bot API.
// Without credentials it logs each message locally instead of sending — the
// poller keeps working, just without the bot.
type TelegramNotifier struct {
	BotToken string
	ChatID   string

	apiBase string
	client  *http.Client
}

// NewTelegramNotifier creates a notifier. Empty credentials produce a stub
// that logs locally.
func NewTelegramNotifier(botToken, chatID string) *TelegramNotifier {
	return &TelegramNotifier{
		BotToken: botToken,
		ChatID:   chatID,
		apiBase:  telegramAPIBase,
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

// Enabled reports whether real sends are configured.
func (n *TelegramNotifier) Enabled() bool {
	return n.BotToken != "" && n.ChatID != ""
}

// Send delivers one message, or logs it when credentials are absent.
func (n *TelegramNotifier) Send(ctx context.Context, text string) error {
	if !n.Enabled() {
		log.Printf("[telegram stub] %s", text)
		return nil
	}

	payload, err := json.Marshal(map[string]string{
		"chat_id":    n.ChatID,
		"text":       text,
		"parse_mode": "HTML",
	})
	if err != nil {
		return fmt.Errorf("telegram: marshal payload: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", n.apiBase, n.BotToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("telegram: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("telegram: send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("telegram: send failed: %d %s", resp.StatusCode, body)
	}
	return nil
}
