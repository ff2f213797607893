// Package shortener calls the clck.ru link-shortening API.
package shortener

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

const (
	defaultDialTimeout     = 5 * time.Second
	defaultTLSHandshake    = 5 * time.Second
	defaultResponseTimeout = 10 * time.Second
	defaultClientTimeout   = 15 * time.Second

	maxResponseBytes = 4096
)

// Client submits long URLs to the shortening service. The service
// replies with the short URL as a plain-text body; an empty body means
// the service declined without a transport error.
type Client struct {
	httpClient *http.Client
	apiURL     string
	apiKey     string
}

// NewClient creates a client for the given API endpoint
func NewClient(apiURL, apiKey string) *Client {
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           (&net.Dialer{Timeout: defaultDialTimeout}).DialContext,
		TLSHandshakeTimeout:   defaultTLSHandshake,
		ResponseHeaderTimeout: defaultResponseTimeout,
		MaxIdleConnsPerHost:   2,
	}

	return &Client{
		httpClient: &http.Client{
			Timeout:   defaultClientTimeout,
			Transport: transport,
		},
		apiURL: apiURL,
		apiKey: apiKey,
	}
}

// Shorten submits a long URL and returns the shortened form. A nil
// error with an empty result means the service reported failure; the
// caller distinguishes that case from transport errors.
func (c *Client) Shorten(ctx context.Context, longURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL, nil)
	if err != nil {
		return "", fmt.Errorf("build shorten request: %w", err)
	}

	q := req.URL.Query()
	q.Set("url", longURL)
	if c.apiKey != "" {
		q.Set("key", c.apiKey)
	}
	req.URL.RawQuery = q.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("shorten request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("read shorten response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("shorten: unexpected status %d", resp.StatusCode)
	}

	return strings.TrimSpace(string(body)), nil
}
