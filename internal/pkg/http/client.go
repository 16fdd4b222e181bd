package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	nethttp "net/http"
	"strings"
	"time"

	"github.com/piresc/routecalc/internal/pkg/circuitbreaker"
	"github.com/piresc/routecalc/internal/pkg/logger"
	nrpkg "github.com/piresc/routecalc/internal/pkg/newrelic"
	"github.com/piresc/routecalc/internal/pkg/retry"
)

// DefaultTimeout for HTTP requests
const DefaultTimeout = 30 * time.Second

// Response is a fully read HTTP response
type Response struct {
	StatusCode int
	Header     nethttp.Header
	Body       []byte
}

// DecodeJSON unmarshals the response body into v
func (r *Response) DecodeJSON(v interface{}) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}

// HTTPError marks a server side failure that counts against the circuit breaker
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// Client calls one upstream service behind a circuit breaker, with optional retries
type Client struct {
	name       string
	baseURL    string
	httpClient *nethttp.Client
	breaker    *circuitbreaker.CircuitBreaker
	retrier    *retry.Retrier
	headers    map[string]string
}

// Option configures a Client
type Option func(*Client)

// WithBreaker puts every call behind cb
func WithBreaker(cb *circuitbreaker.CircuitBreaker) Option {
	return func(c *Client) { c.breaker = cb }
}

// WithRetrier retries failed calls. Without it each call makes a single attempt.
func WithRetrier(r *retry.Retrier) Option {
	return func(c *Client) { c.retrier = r }
}

// WithHeader sets a header on every request
func WithHeader(key, value string) Option {
	return func(c *Client) { c.headers[key] = value }
}

// WithHTTPClient replaces the underlying transport client
func WithHTTPClient(hc *nethttp.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a client for the service reachable at baseURL
func NewClient(name, baseURL string, timeout time.Duration, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	c := &Client{
		name:       name,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &nethttp.Client{Timeout: timeout},
		headers:    map[string]string{"Accept": "application/json"},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get performs a GET request against endpoint
func (c *Client) Get(ctx context.Context, endpoint string) (*Response, error) {
	return c.Do(ctx, nethttp.MethodGet, endpoint, nil)
}

// PostJSON performs a POST request with a JSON body
func (c *Client) PostJSON(ctx context.Context, endpoint string, body interface{}) (*Response, error) {
	return c.Do(ctx, nethttp.MethodPost, endpoint, body)
}

// Do sends the request and reads the whole response.
// Any HTTP status is returned as a Response; only transport failures and an open breaker are errors.
func (c *Client) Do(ctx context.Context, method, endpoint string, body interface{}) (*Response, error) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	url := c.baseURL + endpoint
	var resp *Response

	err := c.guard(ctx, func(ctx context.Context) error {
		r, err := c.attempt(ctx, method, url, payload)
		if err != nil {
			return err
		}
		resp = r
		if r.StatusCode >= nethttp.StatusInternalServerError {
			return &HTTPError{StatusCode: r.StatusCode, Message: nethttp.StatusText(r.StatusCode)}
		}
		return nil
	})

	var httpErr *HTTPError
	if err != nil && !(errors.As(err, &httpErr) && resp != nil) {
		logger.WarnCtx(ctx, "Upstream request failed",
			logger.String("service", c.name),
			logger.String("method", method),
			logger.String("url", url),
			logger.Err(err))
		return nil, err
	}
	return resp, nil
}

func (c *Client) guard(ctx context.Context, fn func(context.Context) error) error {
	call := fn
	if c.retrier != nil {
		call = func(ctx context.Context) error { return c.retrier.Execute(ctx, fn) }
	}
	if c.breaker != nil {
		return c.breaker.Execute(ctx, call)
	}
	return call(ctx)
}

func (c *Client) attempt(ctx context.Context, method, url string, payload []byte) (*Response, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := nethttp.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	httpResp, err := nrpkg.InstrumentHTTPRequest(ctx, req, func() (*nethttp.Response, error) {
		return c.httpClient.Do(req)
	})
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	logger.DebugCtx(ctx, "Upstream request completed",
		logger.String("service", c.name),
		logger.String("method", method),
		logger.String("url", url),
		logger.Int("status_code", httpResp.StatusCode),
		logger.Duration("latency", time.Since(start)))

	return &Response{StatusCode: httpResp.StatusCode, Header: httpResp.Header, Body: data}, nil
}
