// Package notifypoll is a small client for the notification feed.
// Delivery is poll based: consumers fetch the feed on an interval
// instead of holding a push channel open.
package notifypoll

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Notification mirrors the wire shape of a notification feed item.
type Notification struct {
	NotificationID string    `json:"notificationID"`
	UserID         string    `json:"userID"`
	Type           string    `json:"type"`
	Message        string    `json:"message"`
	Read           bool      `json:"read"`
	CreatedAt      time.Time `json:"createdAt"`
}

// envelope is the server's uniform response body.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// Client talks to the notification endpoints of a dashboard backend.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// ClientOption customises a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a feed client. baseURL is the server root (e.g.
// "http://localhost:8080"); token is the bearer JWT of the user whose
// feed is read.
func NewClient(baseURL, token string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch returns the current feed window, newest first. The server caps
// the window at 50 items.
func (c *Client) Fetch(ctx context.Context) ([]Notification, error) {
	var notifications []Notification
	if err := c.do(ctx, http.MethodGet, "/api/v1/notifications", &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkRead flags a single notification as read and returns the updated
// item.
func (c *Client) MarkRead(ctx context.Context, notificationID string) (*Notification, error) {
	var notification Notification
	path := fmt.Sprintf("/api/v1/notifications/%s/read", notificationID)
	if err := c.do(ctx, http.MethodPut, path, &notification); err != nil {
		return nil, err
	}
	return &notification, nil
}

// MarkAllRead flags the whole feed as read.
func (c *Client) MarkAllRead(ctx context.Context) error {
	return c.do(ctx, http.MethodPut, "/api/v1/notifications/read-all", nil)
}

func (c *Client) do(ctx context.Context, method, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("notifypoll: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("notifypoll: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("notifypoll: read response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("notifypoll: decode response (status %d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode != http.StatusOK || !env.Success {
		msg := env.Error
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return fmt.Errorf("notifypoll: %s %s: server returned %d: %s", method, path, resp.StatusCode, msg)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("notifypoll: decode data: %w", err)
		}
	}
	return nil
}
