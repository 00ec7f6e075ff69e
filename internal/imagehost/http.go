package imagehost

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// HTTPProber checks existence with a HEAD request. Only 200 counts as present.
type HTTPProber struct {
	httpClient *http.Client
	timeout    time.Duration
}

// Option configures HTTPProber behavior.
type Option func(*HTTPProber)

// WithTimeout bounds each probe.
func WithTimeout(d time.Duration) Option {
	return func(p *HTTPProber) {
		p.timeout = d
	}
}

// WithHTTPClient replaces the underlying client.
func WithHTTPClient(c *http.Client) Option {
	return func(p *HTTPProber) {
		p.httpClient = c
	}
}

// NewHTTPProber creates a prober with a 5 second default timeout.
func NewHTTPProber(opts ...Option) *HTTPProber {
	p := &HTTPProber{
		httpClient: &http.Client{},
		timeout:    5 * time.Second,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Exists sends a HEAD request to url.
func (p *HTTPProber) Exists(ctx context.Context, url string) (bool, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return false, fmt.Errorf("build probe request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return false, err
	}
	resp.Body.Close()

	return resp.StatusCode == http.StatusOK, nil
}
