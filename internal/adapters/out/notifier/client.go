// Package notifier delivers user-facing notifications to the notification
// service. Delivery is best-effort end to end: the HTTP client reports
// failures as errors, and the async dispatcher in front of it logs and drops
// them.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"ordering/internal/core/ports"
)

// notificationDTO mirrors the notification service's wire format.
type notificationDTO struct {
	UserID  string `json:"userId"`
	OrderID string `json:"orderId"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// Client posts notifications to the notification service synchronously.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a client for the notification service at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Dispatch posts one notification. Any non-2xx response is an error.
func (c *Client) Dispatch(ctx context.Context, notification ports.Notification) error {
	body, err := json.Marshal(notificationDTO{
		UserID:  notification.UserID,
		OrderID: notification.OrderID,
		Message: notification.Message,
		Type:    notification.Type,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/notifications", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("notification service returned %s", resp.Status)
	}

	return nil
}
