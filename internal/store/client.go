package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/vijayguhan10/fourtrip-partner/internal/ratelimiter"
	"github.com/vijayguhan10/fourtrip-partner/internal/session"
	"go.uber.org/zap"
)

var (
	// ErrAuthRequired means no partner session resolved. Callers send the
	// user to login; they never retry.
	ErrAuthRequired = errors.New("authentication required")
	// ErrInvalidCredentials is the login failure signal. The backend reports
	// it through a literal message rather than a status code.
	ErrInvalidCredentials = errors.New("invalid phone number or password")
	// ErrShapeMismatch means a list response was neither a bare array nor a
	// {success, data} envelope.
	ErrShapeMismatch = errors.New("unexpected response shape")
	// ErrUploadFailed marks a single failed file inside an upload batch.
	ErrUploadFailed = errors.New("upload failed")
)

// Client is the HTTP side shared by every resource store: base URL, bearer
// injection from the session store, and optional outbound throttling.
type Client struct {
	baseURL string
	http    *http.Client
	session *session.Store
	logger  *zap.SugaredLogger
	limiter *ratelimiter.FixedWindowRateLimiter
}

func NewClient(baseURL string, sess *session.Store, logger *zap.SugaredLogger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		session: sess,
		logger:  logger,
	}
}

// SetHTTPClient swaps the underlying transport, mainly for tests and custom
// timeouts.
func (c *Client) SetHTTPClient(h *http.Client) {
	c.http = h
}

// SetLimiter enables outbound throttling. Nil disables it.
func (c *Client) SetLimiter(rl *ratelimiter.FixedWindowRateLimiter) {
	c.limiter = rl
}

// Session exposes the session store so callers can scope ids without another
// storage scan.
func (c *Client) Session() *session.Store {
	return c.session
}

// request performs one JSON call against the backend and returns the raw
// body. When authed is true the resolved partner token is attached; with no
// resolvable session the request is never sent and ErrAuthRequired comes
// back. Any 4xx/5xx becomes an error with the status and trimmed body.
func (c *Client) request(ctx context.Context, method, path string, query url.Values, body any, authed bool) ([]byte, error) {
	if err := c.throttle(ctx, path); err != nil {
		return nil, err
	}

	var token string
	if authed {
		sess, ok := c.session.Resolve()
		if !ok {
			return nil, ErrAuthRequired
		}
		token = sess.Token
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: read response: %w", method, path, err)
	}

	if res.StatusCode >= http.StatusBadRequest {
		c.logger.Errorw("backend request failed",
			"method", method,
			"path", path,
			"status", res.StatusCode,
		)
		return nil, fmt.Errorf("%s %s: http %d: %s", method, path, res.StatusCode, strings.TrimSpace(string(raw)))
	}
	return raw, nil
}

// doJSON is request plus decoding into out (out may be nil when the caller
// only cares about success).
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, out any, authed bool) error {
	raw, err := c.request(ctx, method, path, query, body, authed)
	if err != nil {
		return err
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return nil
}

func (c *Client) throttle(ctx context.Context, path string) error {
	if c.limiter == nil {
		return nil
	}
	ok, retryAfter := c.limiter.Allow(path)
	if ok {
		return nil
	}
	c.logger.Infow("throttling outbound request", "path", path, "wait", retryAfter)
	select {
	case <-time.After(retryAfter):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// decodeList accepts the two historical list shapes the backend serves: a
// bare JSON array, or a {success, data} envelope. Anything else is
// ErrShapeMismatch and the caller treats the fetch as failed.
func decodeList[T any](raw []byte) ([]T, error) {
	var bare []T
	if err := json.Unmarshal(raw, &bare); err == nil {
		return bare, nil
	}

	var env struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &env); err == nil && len(env.Data) > 0 {
		var items []T
		if err := json.Unmarshal(env.Data, &items); err == nil {
			return items, nil
		}
	}
	return nil, ErrShapeMismatch
}

// decodeEntity accepts either a bare object or a {success, data} envelope
// around one, mirroring decodeList for single-entity responses.
func decodeEntity[T any](raw []byte) (*T, error) {
	var env struct {
		Success *bool           `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &env); err == nil && env.Success != nil && len(env.Data) > 0 {
		var item T
		if err := json.Unmarshal(env.Data, &item); err == nil {
			return &item, nil
		}
	}
	var item T
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, ErrShapeMismatch
	}
	return &item, nil
}
