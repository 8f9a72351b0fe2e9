// Package directory contains HTTP clients for the user and restaurant
// directories. Both directories are external services that own their data;
// these clients only read from them. Each call carries the request context and
// a per-client timeout, and any failure — missing record, non-2xx status,
// transport error, timeout — is reported as a plain error for the caller to
// interpret.
package directory

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"ordering/internal/core/domain/model/kernel"
)

// UserClient verifies user existence against the user directory.
type UserClient struct {
	baseURL string
	client  *http.Client
}

// NewUserClient creates a client for the user directory at baseURL.
func NewUserClient(baseURL string, timeout time.Duration) *UserClient {
	return &UserClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// GetUser checks that the user exists. Only the status code matters; the
// response body is discarded.
func (c *UserClient) GetUser(ctx context.Context, id kernel.UUID) error {
	url := fmt.Sprintf("%s/api/users/%s", c.baseURL, id.String())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("user directory returned %s", resp.Status)
	}

	return nil
}
