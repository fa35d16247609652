package shopapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/larkhq/larek/internal/store"
)

// ErrNoBaseURL reports a client constructed without a backend address.
var ErrNoBaseURL = fmt.Errorf("shopapi: base url not configured")

const defaultTimeout = 10 * time.Second

// Client is the HTTP implementation of Source.
type Client struct {
	baseURL string
	timeout time.Duration
	http    *http.Client
}

// NewClient builds a client for the given backend. timeout <= 0 falls
// back to the default.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		timeout: timeout,
		http:    &http.Client{},
	}
}

// listResponse is the backend's catalog envelope.
type listResponse struct {
	Total int          `json:"total"`
	Items []store.Item `json:"items"`
}

// GetCatalog downloads the full catalog in display order.
func (c *Client) GetCatalog(ctx context.Context) ([]store.Item, error) {
	if c.baseURL == "" {
		return nil, ErrNoBaseURL
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/product/", nil)
	if err != nil {
		return nil, fmt.Errorf("catalog request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog fetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("catalog fetch: unexpected status %s", resp.Status)
	}

	var list listResponse
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("catalog decode: %w", err)
	}
	return list.Items, nil
}

// SubmitOrder posts the order and returns the backend's receipt.
func (c *Client) SubmitOrder(ctx context.Context, order Order) (Receipt, error) {
	if c.baseURL == "" {
		return Receipt{}, ErrNoBaseURL
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := json.Marshal(order)
	if err != nil {
		return Receipt{}, fmt.Errorf("order encode: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/order", bytes.NewReader(body))
	if err != nil {
		return Receipt{}, fmt.Errorf("order request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Receipt{}, fmt.Errorf("order submit: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Receipt{}, fmt.Errorf("order submit: status %s: %s", resp.Status, strings.TrimSpace(string(msg)))
	}

	var receipt Receipt
	if err := json.NewDecoder(resp.Body).Decode(&receipt); err != nil {
		return Receipt{}, fmt.Errorf("order decode: %w", err)
	}
	return receipt, nil
}
