// Package httpx is the JSON client shared by the outbound collectors and
// the local event publisher.
package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/pkg/errors"
)

const (
	defaultTimeout  = 15 * time.Second
	defaultAttempts = 3
	defaultDelay    = 200 * time.Millisecond
	defaultMaxDelay = 2 * time.Second

	// maxErrorBody bounds how much of a failed response is kept in errors.
	maxErrorBody = 512
)

// ErrNotFound is returned when the remote answers 404.
var ErrNotFound = errors.New("resource not found")

// StatusError is a non-success response other than 404.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d: %s", e.Method, e.URL, e.StatusCode, e.Body)
}

// Transient reports whether the request may succeed when repeated.
func (e *StatusError) Transient() bool {
	return e.StatusCode >= http.StatusInternalServerError || e.StatusCode == http.StatusTooManyRequests
}

// decodeError marks a response body that could not be parsed.
type decodeError struct {
	err error
}

func (e *decodeError) Error() string { return "decode response: " + e.err.Error() }

func (e *decodeError) Unwrap() error { return e.err }

// Client issues JSON requests against one base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
	header     http.Header
	username   string
	password   string
	attempts   uint
	delay      time.Duration
	maxDelay   time.Duration
	logger     *slog.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithTimeout bounds each attempt.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithHeader sets a header on every request.
func WithHeader(key, value string) Option {
	return func(c *Client) { c.header.Set(key, value) }
}

// WithBasicAuth authenticates every request.
func WithBasicAuth(username, password string) Option {
	return func(c *Client) {
		c.username = username
		c.password = password
	}
}

// WithRetry sets how many attempts a transient failure gets and the initial backoff.
func WithRetry(attempts uint, delay time.Duration) Option {
	return func(c *Client) {
		if attempts > 0 {
			c.attempts = attempts
		}
		if delay > 0 {
			c.delay = delay
			c.maxDelay = max(c.maxDelay, delay)
		}
	}
}

// New creates a client for baseURL.
func New(baseURL string, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		header:     make(http.Header),
		attempts:   defaultAttempts,
		delay:      defaultDelay,
		maxDelay:   defaultMaxDelay,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// GetJSON fetches path with query and decodes the body into out. A 404 is
// ErrNotFound; 5xx, 429 and transport failures are retried with backoff.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, out any) error {
	// Query strings may carry API keys, so logs and errors only name the endpoint.
	endpoint := c.baseURL + path
	target := endpoint
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	return c.retry(ctx, endpoint, func() error {
		return c.do(ctx, http.MethodGet, endpoint, target, nil, nil, out)
	})
}

// PostJSON sends payload as a JSON body to path with the same retry policy
// as GetJSON. header is added to the client-wide headers.
func (c *Client) PostJSON(ctx context.Context, path string, payload any, header http.Header) error {
	return c.send(ctx, http.MethodPost, path, payload, header, nil)
}

// PatchJSON sends payload as a partial update of path and decodes the
// response into out when out is non-nil. Only field-setting patches belong
// here since failures are retried like GetJSON.
func (c *Client) PatchJSON(ctx context.Context, path string, payload, out any) error {
	return c.send(ctx, http.MethodPatch, path, payload, nil, out)
}

func (c *Client) send(ctx context.Context, method, path string, payload any, header http.Header, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "encode request")
	}
	endpoint := c.baseURL + path

	return c.retry(ctx, endpoint, func() error {
		return c.do(ctx, method, endpoint, endpoint, body, header, out)
	})
}

func (c *Client) retry(ctx context.Context, endpoint string, call func() error) error {
	attempt := 0
	err := retry.Do(
		func() error {
			attempt++

			return call()
		},
		retry.Context(ctx),
		retry.Attempts(c.attempts),
		retry.Delay(c.delay),
		retry.MaxDelay(c.maxDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(isTransient),
		retry.OnRetry(func(n uint, err error) {
			c.logger.Warn("Retrying outbound request",
				slog.String("url", endpoint),
				slog.Uint64("attempt", uint64(n+1)),
				slog.Any("error", err),
			)
		}),
	)
	if err != nil && !errors.Is(err, ErrNotFound) {
		c.logger.Debug("Outbound request failed",
			slog.String("url", endpoint),
			slog.Int("attempts", attempt),
			slog.Any("error", err),
		)
	}

	return err
}

func (c *Client) do(ctx context.Context, method, endpoint, target string, body []byte, header http.Header, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header = c.header.Clone()
	for key, values := range header {
		req.Header[key] = values
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(redactURL(err), "%s %s", method, endpoint)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

		return &StatusError{
			Method:     method,
			URL:        endpoint,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(errBody)),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &decodeError{err: err}
	}

	return nil
}

func isTransient(err error) bool {
	if errors.Is(err, ErrNotFound) {
		return false
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Transient()
	}

	var decodeErr *decodeError

	return !errors.As(err, &decodeErr)
}

// redactURL drops the query string from transport errors.
func redactURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return &url.Error{Op: urlErr.Op, URL: strings.SplitN(urlErr.URL, "?", 2)[0], Err: urlErr.Err}
	}

	return err
}
