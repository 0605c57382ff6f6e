package api

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

	"github.com/viant/clinic/client/auth/transport"
	"github.com/viant/clinic/internal/logctx"
)

// Client issues JSON calls relative to the API base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger

	Employees  *Employees
	Leaves     *Leaves
	Salary     *Salary
	Diagnostic *Diagnostic
}

type Option func(*Client)

// WithLogger sets logger, otherwise the context logger is used
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a Client; httpClient should carry the authenticated transport.
func New(baseURL string, httpClient *http.Client, options ...Option) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	ret := &Client{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient}
	for _, opt := range options {
		opt(ret)
	}
	ret.Employees = &Employees{client: ret}
	ret.Leaves = &Leaves{client: ret}
	ret.Salary = &Salary{client: ret}
	ret.Diagnostic = &Diagnostic{client: ret}
	return ret
}

// BaseURL returns the API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// URL resolves an API path against the base URL.
func (c *Client) URL(path string) string {
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}

// Do sends in (when not nil) as JSON and decodes the response into out (when not nil).
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode %v %v request: %w", method, path, err)
		}
		body = bytes.NewReader(data)
	}
	URL := c.URL(path)
	if len(query) > 0 {
		URL += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, URL, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if transport.Classify(nil, err) == transport.TerminalAuthFailure {
			return &sessionError{err: err}
		}
		return fmt.Errorf("failed to call %v %v: %w", method, path, err)
	}
	defer resp.Body.Close()
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read %v %v response: %w", method, path, err)
	}
	if outcome := transport.Classify(resp, nil); outcome != transport.Success {
		c.log(ctx).Debug("api call failed", slog.String("method", method), slog.String("path", path), slog.Int("status", resp.StatusCode))
		return &Error{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Message:    transport.Message(payload),
			Payload:    payload,
			Outcome:    outcome,
		}
	}
	if out == nil || len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}
	if raw, ok := out.(*json.RawMessage); ok {
		*raw = append((*raw)[:0], payload...)
		return nil
	}
	if err = json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("failed to decode %v %v response: %w", method, path, err)
	}
	return nil
}

func (c *Client) log(ctx context.Context) *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return logctx.From(ctx)
}
