// Package telegram is a minimal Telegram Bot API client covering the
// calls the bot needs: webhook registration and message sending with an
// inline web-app keyboard.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/SnickALt21/juego-pardo/internal/errors"
)

const apiBase = "https://api.telegram.org/bot"

// Config holds the settings for the Telegram client
type Config struct {
	Token string

	// HTTPClient is optional; a default client with a timeout is used
	// when nil.
	HTTPClient *http.Client
}

// Validate ensures the config has the required fields
func (c *Config) Validate() error {
	if c.Token == "" {
		return errors.InvalidArgument("token is required")
	}
	return nil
}

// Client talks to the Telegram Bot API
type Client struct {
	token      string
	httpClient *http.Client
}

// New creates a Telegram client from the config
func New(cfg *Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	return &Client{
		token:      cfg.Token,
		httpClient: httpClient,
	}, nil
}

// Update is an incoming webhook payload
type Update struct {
	UpdateID int64    `json:"update_id"`
	Message  *Message `json:"message"`
}

// Message is the subset of the Telegram message object the bot reads
type Message struct {
	MessageID int64  `json:"message_id"`
	Text      string `json:"text"`
	Chat      Chat   `json:"chat"`
	From      *User  `json:"from"`
}

// Chat identifies the conversation a message belongs to
type Chat struct {
	ID int64 `json:"id"`
}

// User identifies the sender of a message
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	Username  string `json:"username"`
}

// SetWebhook registers the given URL for incoming updates. Local
// addresses are skipped so a dev server can run without a public
// endpoint.
func (c *Client) SetWebhook(ctx context.Context, webhookURL string) error {
	if webhookURL == "" || strings.Contains(webhookURL, "localhost") || strings.Contains(webhookURL, "127.0.0.1") {
		return nil
	}

	return c.call(ctx, "setWebhook", map[string]any{
		"url": webhookURL,
	})
}

// SendMessage sends a plain text message to a chat
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string) error {
	return c.call(ctx, "sendMessage", map[string]any{
		"chat_id": chatID,
		"text":    text,
	})
}

// SendGameButton sends a message with an inline keyboard that opens the
// game as a Telegram web app
func (c *Client) SendGameButton(ctx context.Context, chatID int64, text, gameURL string) error {
	return c.call(ctx, "sendMessage", map[string]any{
		"chat_id": chatID,
		"text":    text,
		"reply_markup": map[string]any{
			"inline_keyboard": [][]map[string]any{
				{
					{
						"text":    "🎮 Jugar Pardo RPG",
						"web_app": map[string]string{"url": gameURL},
					},
				},
			},
		},
	})
}

func (c *Client) call(ctx context.Context, method string, payload map[string]any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrapf(err, "failed to encode %s payload", method)
	}

	url := fmt.Sprintf("%s%s/%s", apiBase, c.token, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return errors.Wrapf(err, "failed to build %s request", method)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, fmt.Sprintf("telegram %s failed", method))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Description string `json:"description"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return errors.Internalf("telegram %s returned status %d: %s", method, resp.StatusCode, apiErr.Description)
	}

	return nil
}
