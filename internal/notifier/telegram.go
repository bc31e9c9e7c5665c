package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"
)

const defaultAPIBase = "https://api.telegram.org"

// Message is one outbound Telegram message together with its render mode.
type Message struct {
	Text      string
	ParseMode string
}

// HTML wraps text that uses Telegram HTML markup (the formatters emit this).
func HTML(text string) Message { return Message{Text: text, ParseMode: "HTML"} }

// Plain wraps text to be sent without any parse mode.
func Plain(text string) Message { return Message{Text: text} }

// TelegramNotifier delivers analysis reports and scan summaries to one chat
// via the Telegram Bot API.
type TelegramNotifier struct {
	BotToken string
	ChatID   string
	// APIBase is overridable for tests; defaults to the public Bot API.
	APIBase string
	// MaxRetries and BackoffBase control SendWithRetry: up to MaxRetries
	// extra attempts, sleeping BackoffBase, 2*BackoffBase, ... between them.
	MaxRetries  int
	BackoffBase time.Duration
	Client      *http.Client

	proxyURL string
}

// newHTTPClient builds an HTTP client with optional proxy support. Shared by
// the send path and the long-polling loop, which need different timeouts.
func newHTTPClient(proxyURL string, timeout time.Duration) *http.Client {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &http.Client{Timeout: timeout, Transport: transport}
}

// NewTelegramNotifier creates a notifier with optional proxy support.
func NewTelegramNotifier(botToken, chatID, proxyURL string) *TelegramNotifier {
	return &TelegramNotifier{
		BotToken:    botToken,
		ChatID:      chatID,
		APIBase:     defaultAPIBase,
		MaxRetries:  3,
		BackoffBase: time.Second,
		Client:      newHTTPClient(proxyURL, 30*time.Second),
		proxyURL:    proxyURL,
	}
}

// Send delivers a single message to the configured chat.
func (t *TelegramNotifier) Send(msg Message) error {
	apiURL := fmt.Sprintf("%s/bot%s/sendMessage", t.APIBase, t.BotToken)
	payload := map[string]string{
		"chat_id": t.ChatID,
		"text":    msg.Text,
	}
	if msg.ParseMode != "" {
		payload["parse_mode"] = msg.ParseMode
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	resp, err := t.Client.Post(apiURL, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("telegram API error: status %d, body: %s", resp.StatusCode, string(respBody))
	}
	return nil
}

// SendWithRetry delivers a message, retrying with exponential backoff per
// the notifier's MaxRetries/BackoffBase policy.
func (t *TelegramNotifier) SendWithRetry(ctx context.Context, msg Message) error {
	var lastErr error
	for i := 0; i <= t.MaxRetries; i++ {
		if err := t.Send(msg); err != nil {
			lastErr = err
			backoff := t.BackoffBase * time.Duration(1<<uint(i))
			log.Printf("[WARN] Telegram send failed (attempt %d/%d): %v, retrying in %v", i+1, t.MaxRetries+1, err, backoff)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
				continue
			}
		}
		return nil
	}
	return fmt.Errorf("all %d retries exhausted: %w", t.MaxRetries+1, lastErr)
}
