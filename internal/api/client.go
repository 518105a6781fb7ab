package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Header names set on every request.
const (
	RequestIDHeader   = "X-Request-ID"
	IdempotencyHeader = "Idempotency-Key"
)

// maxBody caps how much of a response body is read.
const maxBody = 16 << 20

// Options configures a Client.
type Options struct {
	BaseURL string
	Token   string
	Timeout time.Duration
	Retry   RetryConfig
	// Version is the API version this client speaks; servers with another
	// major version are rejected.
	Version   string
	Transport http.RoundTripper
	Logger    *slog.Logger
}

// Client talks to the competency management REST API.
type Client struct {
	base    *url.URL
	token   string
	http    *http.Client
	retry   RetryConfig
	version string
	logger  *slog.Logger
}

// New creates a client for opts.BaseURL.
func New(opts Options) (*Client, error) {
	if opts.BaseURL == "" {
		return nil, errors.New("api: base URL is required")
	}
	base, err := url.Parse(strings.TrimRight(opts.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("api: parse base URL: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("api: unsupported scheme %q", base.Scheme)
	}

	version := opts.Version
	if version == "" {
		version = "v1.0.0"
	}
	version, err = canonicalVersion(version)
	if err != nil {
		return nil, fmt.Errorf("api: client version: %w", err)
	}

	retryCfg := opts.Retry
	if retryCfg.MaxAttempts == 0 {
		retryCfg = DefaultRetryConfig()
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Client{
		base:    base,
		token:   opts.Token,
		http:    &http.Client{Timeout: opts.Timeout, Transport: opts.Transport},
		retry:   retryCfg,
		version: version,
		logger:  logger,
	}, nil
}

// Version returns the canonical API version the client speaks.
func (c *Client) Version() string { return c.version }

func (c *Client) endpoint(path string, query url.Values) string {
	u := *c.base
	u.Path = c.base.Path + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// get performs an idempotent read, retrying transient failures.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return retry(ctx, c.retry, func(ctx context.Context) error {
		return c.once(ctx, http.MethodGet, path, query, nil, out, "")
	})
}

// send performs a mutation exactly once with a fresh idempotency key.
func (c *Client) send(ctx context.Context, method, path string, in, out any) error {
	return c.once(withAttempt(ctx, 1), method, path, nil, in, out, uuid.NewString())
}

func (c *Client) once(ctx context.Context, method, path string, query url.Values, in, out any, idemKey string) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), body)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if idemKey != "" {
		req.Header.Set(IdempotencyHeader, idemKey)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return fmt.Errorf("read %s %s: %w", method, path, err)
	}

	c.logger.Debug("api call",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"request_id", requestID,
		"attempt", AttemptFrom(ctx),
	)

	if err := checkVersion(c.version, resp.Header.Get(VersionHeader)); err != nil {
		return err
	}
	if resp.StatusCode >= 300 {
		return decodeError(resp, raw, requestID)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &InvalidResponseError{Endpoint: path, Body: raw, Err: err}
	}
	return nil
}

// list fetches a collection endpoint, validates it against the schema for
// name and decodes the items. The body may be a bare array or an object
// with a "data" array.
func list[T any](ctx context.Context, c *Client, name, path string, query url.Values) ([]T, error) {
	var raw json.RawMessage
	if err := c.get(ctx, path, query, &raw); err != nil {
		return nil, err
	}

	items, err := unwrapList(raw)
	if err != nil {
		return nil, &InvalidResponseError{Endpoint: path, Body: raw, Err: err}
	}
	if err := validateList(name, path, items); err != nil {
		return nil, err
	}

	out := []T{}
	if err := json.Unmarshal(items, &out); err != nil {
		return nil, &InvalidResponseError{Endpoint: path, Body: items, Err: err}
	}
	return out, nil
}

func unwrapList(raw json.RawMessage) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	switch {
	case len(trimmed) == 0, bytes.Equal(trimmed, []byte("null")):
		return json.RawMessage("[]"), nil
	case trimmed[0] == '[':
		return trimmed, nil
	case trimmed[0] == '{':
		var env struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return nil, err
		}
		if env.Data == nil {
			return nil, errors.New(`object response without "data"`)
		}
		return unwrapList(env.Data)
	}
	return nil, fmt.Errorf("expected a JSON array, got %q", firstByte(trimmed))
}

func firstByte(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return string(b[:1])
}
