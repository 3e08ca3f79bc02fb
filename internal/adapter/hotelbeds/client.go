// Package hotelbeds is the concrete adapter for a Hotelbeds-shaped
// inventory API: signed-header REST, hotel-code-keyed availability, and a
// content catalogue endpoint, wrapped to satisfy provider.HotelProvider.
package hotelbeds

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hotelforge/aggregator/internal/platform/logger"
)

// Client handles HTTP communication with the Hotelbeds-shaped API.
type Client struct {
	apiKey       string
	sharedSecret string
	baseURL      string
	httpClient   *http.Client
	rateLimiter  *rateLimiter
}

// NewClient builds a client rate-limited to requestsPerMinute calls.
func NewClient(apiKey, sharedSecret, baseURL string, requestsPerMinute int) *Client {
	return &Client{
		apiKey:       apiKey,
		sharedSecret: sharedSecret,
		baseURL:      baseURL,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		rateLimiter:  newRateLimiter(requestsPerMinute),
	}
}

func (c *Client) do(ctx context.Context, method, endpoint string, body interface{}) (*http.Response, error) {
	if err := c.rateLimiter.wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	url := c.baseURL + endpoint

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req)

	logger.Debugf("hotelbeds adapter request: %s %s", method, endpoint)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, &httpError{status: resp.StatusCode, body: string(bodyBytes)}
	}

	return resp, nil
}

// httpError carries the status code through to the adapter layer so it can
// be mapped onto the provider error taxonomy.
type httpError struct {
	status int
	body   string
}

func (e *httpError) Error() string {
	return fmt.Sprintf("hotelbeds api error: status %d, body: %s", e.status, e.body)
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Api-Key", c.apiKey)
	req.Header.Set("X-Signature", c.generateSignature())
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Timestamp", time.Now().Format(time.RFC3339))
}

func (c *Client) generateSignature() string {
	timestamp := time.Now().Format(time.RFC3339)
	hash := sha256.Sum256([]byte(c.sharedSecret + timestamp))
	return hex.EncodeToString(hash[:])
}

func (c *Client) get(ctx context.Context, endpoint string) (*http.Response, error) {
	return c.do(ctx, http.MethodGet, endpoint, nil)
}

func (c *Client) post(ctx context.Context, endpoint string, body interface{}) (*http.Response, error) {
	return c.do(ctx, http.MethodPost, endpoint, body)
}

func (c *Client) put(ctx context.Context, endpoint string, body interface{}) (*http.Response, error) {
	return c.do(ctx, http.MethodPut, endpoint, body)
}
