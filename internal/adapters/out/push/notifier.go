// Package push sends notifications to a push gateway over HTTP. The gateway
// (FCM proxy or compatible) owns device delivery; this adapter only posts
// the message and reports whether the gateway accepted it.
package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultTimeout = 10 * time.Second

// GatewayNotifier implements ports.Notifier against an HTTP push gateway.
type GatewayNotifier struct {
	client *http.Client
	url    string
	apiKey string
}

// NewGatewayNotifier creates a notifier posting to the given gateway URL.
// apiKey may be empty for gateways without authentication.
func NewGatewayNotifier(url, apiKey string) *GatewayNotifier {
	return &GatewayNotifier{
		client: &http.Client{Timeout: defaultTimeout},
		url:    url,
		apiKey: apiKey,
	}
}

type pushMessage struct {
	To    string `json:"to"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Send posts one message to the gateway. Any non-2xx response is an error;
// the caller decides whether to retry or drop.
func (n *GatewayNotifier) Send(ctx context.Context, deviceToken, title, body string) error {
	payload, err := json.Marshal(pushMessage{
		To:    deviceToken,
		Title: title,
		Body:  body,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if n.apiKey != "" {
		req.Header.Set("Authorization", "key="+n.apiKey)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// Drain a bounded prefix so the connection can be reused.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("push gateway returned %d: %s", resp.StatusCode, snippet)
	}

	return nil
}
