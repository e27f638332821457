package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const DefaultTimeout = 15 * time.Second

// Bot is a minimal Telegram Bot API client.
type Bot struct {
	token      string
	apiURL     string
	httpClient *http.Client
}

// NewBot creates a client for the bot identified by token.
func NewBot(token string) *Bot {
	return &Bot{
		token:      token,
		apiURL:     fmt.Sprintf("https://api.telegram.org/bot%s", token),
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// SetAPIURL points the client at another Bot API endpoint.
func (b *Bot) SetAPIURL(url string) {
	b.apiURL = url
}

// SetWebhook registers webhookURL. A non-empty secretToken is echoed back by
// Telegram in the X-Telegram-Bot-Api-Secret-Token header of every update.
func (b *Bot) SetWebhook(ctx context.Context, webhookURL, secretToken string) error {
	resp, err := b.post(ctx, "setWebhook", SetWebhookRequest{URL: webhookURL, SecretToken: secretToken})
	if err != nil {
		return fmt.Errorf("failed to set webhook: %w", err)
	}
	defer resp.Body.Close()

	var apiResp APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return fmt.Errorf("failed to decode webhook response: %w", err)
	}
	if !apiResp.OK {
		return fmt.Errorf("telegram setWebhook failed: %s", apiResp.Description)
	}
	return nil
}

// SendMessage sends plain text to a chat.
func (b *Bot) SendMessage(ctx context.Context, chatID int64, text string) error {
	return b.SendMessageWithMode(ctx, chatID, text, "")
}

// SendMessageWithMode sends text rendered with parseMode ("Markdown", "HTML").
func (b *Bot) SendMessageWithMode(ctx context.Context, chatID int64, text string, parseMode string) error {
	resp, err := b.post(ctx, "sendMessage", SendMessageRequest{
		ChatID:    chatID,
		Text:      text,
		ParseMode: parseMode,
	})
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("telegram sendMessage API error %d: %s", resp.StatusCode, string(raw))
	}
	return nil
}

func (b *Bot) post(ctx context.Context, method string, payload interface{}) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s request: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/%s", b.apiURL, method), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return b.httpClient.Do(req)
}
