// Package scanner is the HTTP client a gate device uses to talk to the booth
// engine checkpoint endpoints.
package scanner

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rktclgh/fairplay-booth/internal/handler/dto"
)

const defaultTimeout = 10 * time.Second

// APIError is a non-2xx answer from the engine.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("engine responded %d: %s", e.Status, e.Message)
}

// IsStatus reports whether err is an APIError with the given HTTP status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func NewClient(baseURL, token string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("scanner: engine url is required")
	}
	if token == "" {
		return nil, errors.New("scanner: operator token is required")
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

func (c *Client) CheckIn(ctx context.Context, code, kind string) (*dto.CheckResultResponse, error) {
	var out dto.CheckResultResponse
	if err := c.post(ctx, "/api/checkpoint/check-in", dto.CodeRequest{Code: code, Kind: kind}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CheckOut(ctx context.Context, code, kind string) (*dto.CheckResultResponse, error) {
	var out dto.CheckResultResponse
	if err := c.post(ctx, "/api/checkpoint/check-out", dto.CodeRequest{Code: code, Kind: kind}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Validate resolves a code without consuming it.
func (c *Client) Validate(ctx context.Context, code, kind string) (*dto.CredentialResponse, error) {
	var out dto.CredentialResponse
	if err := c.post(ctx, "/api/checkpoint/validate", dto.CodeRequest{Code: code, Kind: kind}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("post %s: %w", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var e dto.ErrorResponse
		if jsonErr := json.Unmarshal(data, &e); jsonErr != nil || e.Error == "" {
			e.Error = strings.TrimSpace(string(data))
		}
		return &APIError{Status: resp.StatusCode, Message: e.Error}
	}

	if err = json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
