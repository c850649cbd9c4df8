// Package api implements the typed HTTP client for the Workasana backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/workasana/workasana/internal/domain"
)

// Ensure Client implements the full backend surface.
var _ domain.API = (*Client)(nil)

// DefaultBaseURL is the backend address used when none is configured.
const DefaultBaseURL = "http://localhost:5000/api"

// TokenFunc supplies the bearer token for a request. Returning "" sends the
// request unauthenticated.
type TokenFunc func() string

// Client talks to the Workasana REST API.
type Client struct {
	baseURL    string
	token      TokenFunc
	httpClient *http.Client
}

// New creates a Client for the given base URL. The token function is
// consulted on every request, so a login during the process lifetime takes
// effect immediately.
func New(baseURL string, token TokenFunc) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Error is a failed API response. Message carries the backend's error
// envelope when one was present.
type Error struct {
	Message    string
	StatusCode int
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("api error: status %d", e.StatusCode)
}

// IsAuthError returns true if the error is an authentication rejection.
func IsAuthError(err error) bool {
	apiErr, ok := err.(*Error)
	return ok && (apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden)
}

// errorEnvelope is the backend's error body shape.
type errorEnvelope struct {
	Message string `json:"message"`
}

// do issues a request and decodes the JSON response into out (skipped when
// out is nil).
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var envelope errorEnvelope
		_ = json.Unmarshal(data, &envelope)
		return &Error{Message: envelope.Message, StatusCode: resp.StatusCode}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s response: %w", path, err)
	}
	return nil
}

// Health checks backend availability.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}
