// Package api implements the client of the reputation service.
package api

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.trai.ch/repute/internal/adapters/cache"
	"go.trai.ch/repute/internal/adapters/telemetry"
	"go.trai.ch/repute/internal/core/domain"
	"go.trai.ch/repute/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

const (
	apiKeyHeader      = "X-API-Key"
	httpClientTimeout = 30 * time.Second
)

var _ ports.ReputationAPI = (*Client)(nil)

// Client issues read-only requests to the reputation service.
// The widget methods are served from a cache shared with every other client
// using the same store.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
	cache   *cache.Store
	logger  ports.Logger
	metrics ports.RequestMetrics
	tracer  ports.Tracer
	flights singleflight.Group
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at another deployment of the service.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithCache makes the client use store instead of the process-wide cache.
func WithCache(store *cache.Store) Option {
	return func(c *Client) {
		if store != nil {
			c.cache = store
		}
	}
}

// WithLogger sets the logger used for non-fatal diagnostics.
func WithLogger(l ports.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMetrics reports every request to m.
func WithMetrics(m ports.RequestMetrics) Option {
	return func(c *Client) {
		if m != nil {
			c.metrics = m
		}
	}
}

// WithTracer wraps every request in a span.
func WithTracer(t ports.Tracer) Option {
	return func(c *Client) {
		if t != nil {
			c.tracer = t
		}
	}
}

// New creates a Client. An empty API key is a configuration error.
func New(apiKey string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, domain.ErrMissingAPIKey
	}

	c := &Client{
		apiKey:  apiKey,
		baseURL: domain.DefaultBaseURL,
		http:    &http.Client{Timeout: httpClientTimeout},
		logger:  discardLogger{},
		metrics: telemetry.NoOpMetrics{},
		tracer:  telemetry.NewNoOpTracer(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.cache == nil {
		c.cache = cache.Default()
	}

	base, err := normalizeBaseURL(c.baseURL)
	if err != nil {
		return nil, err
	}
	c.baseURL = base
	return c, nil
}

// BaseURL returns the endpoint the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Cache returns the store backing the widget methods.
func (c *Client) Cache() *cache.Store {
	return c.cache
}

// ClearCache drops every cached widget response in the client's store.
func (c *Client) ClearCache() {
	c.cache.Clear()
}

// ClearCacheForAddress drops the cached widget responses of address.
func (c *Client) ClearCacheForAddress(address string) int {
	return c.cache.ClearAddress(address)
}

func normalizeBaseURL(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", zerr.With(zerr.Wrap(domain.ErrInvalidBaseURL, "failed to configure api client"), "base_url", raw)
	}
	return strings.TrimRight(u.String(), "/"), nil
}

type discardLogger struct{}

func (discardLogger) Info(string)  {}
func (discardLogger) Warn(string)  {}
func (discardLogger) Error(error) {}
