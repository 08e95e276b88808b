// Package httpx provides the shared HTTP client used by all provider
// adapters: one tuned transport, a fixed per-call timeout, and a stable
// User-Agent.
package httpx

import (
	"context"
	"net"
	"net/http"
	"time"
)

// Client wraps http.Client with the defaults provider adapters need.
// The zero per-call cancellation model is deliberate: a request either
// completes, times out, or errors, and the caller moves on.
type Client struct {
	HTTP      *http.Client
	UserAgent string
}

// New builds a Client whose requests time out after the given duration.
func New(timeout time.Duration) *Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   3 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   20,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   3 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		ForceAttemptHTTP2:     true,
	}
	return &Client{
		HTTP:      &http.Client{Timeout: timeout, Transport: transport},
		UserAgent: "quotepulse/1.0",
	}
}

// Get issues a GET request for the URL with the client's User-Agent.
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	req.Header.Set("Accept", "application/json")
	return c.HTTP.Do(req)
}
