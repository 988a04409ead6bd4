package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Telegram posts notifications to one chat through the Bot API.
type Telegram struct {
	chatID int64
	httpc  *http.Client
	apiURL string
}

func NewTelegram(token string, chatID int64) *Telegram {
	return &Telegram{
		chatID: chatID,
		apiURL: "https://api.telegram.org/bot" + token,
		httpc:  &http.Client{Timeout: 10 * time.Second},
	}
}

// WithBaseURL points the client at another API root, e.g. a test server.
func (c *Telegram) WithBaseURL(u string) *Telegram {
	c.apiURL = u
	return c
}

func (c *Telegram) send(ctx context.Context, method string, payload any) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/"+method, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("telegram %s: %s", method, resp.Status)
	}
	return nil
}

func (c *Telegram) SendMessage(ctx context.Context, chatID int64, text string) error {
	return c.send(ctx, "sendMessage", map[string]any{
		"chat_id":    chatID,
		"text":       text,
		"parse_mode": "HTML",
	})
}

func (c *Telegram) Notify(ctx context.Context, text string) error {
	return c.SendMessage(ctx, c.chatID, text)
}
