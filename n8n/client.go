package n8n

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// APIVersionPath is appended to the configured host.
	APIVersionPath = "api/v1"
	// APIKeyHeader carries the static API key on every request.
	APIKeyHeader = "X-N8N-API-KEY"

	contentTypeHeader = "Content-Type"
	jsonContentType   = "application/json"
)

// Client forwards domain operations to the n8n public REST API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// WithTimeout sets a whole-request timeout; zero keeps requests unbounded.
func WithTimeout(timeout time.Duration) Option {
	return func(cl *Client) {
		c := *cl.httpClient
		c.Timeout = timeout
		cl.httpClient = &c
	}
}

// WithLogger sets the structured logger used for request tracing.
func WithLogger(l *slog.Logger) Option {
	return func(cl *Client) {
		cl.logger = l
	}
}

// New creates a client for the given host and API key.
func New(host, apiKey string, opts ...Option) *Client {
	ret := &Client{
		baseURL:    BaseURL(host),
		apiKey:     apiKey,
		httpClient: &http.Client{},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// BaseURL normalises host so that it ends with the API version segment and
// exactly one trailing slash.
func BaseURL(host string) string {
	base := strings.TrimRight(host, "/")
	if !strings.HasSuffix(base, "/"+APIVersionPath) {
		base += "/" + APIVersionPath
	}
	return base + "/"
}

// URL joins the base URL and a relative endpoint with a single separator.
func (c *Client) URL(endpoint string) string {
	return c.baseURL + strings.TrimLeft(endpoint, "/")
}

// Request describes one outbound call.
type Request struct {
	Operation string
	Method    string
	Endpoint  string
	Body      interface{}
	Headers   map[string]string
}

// Do issues the request and returns the raw JSON response body. Any non-2xx
// status is reported as *APIError; nothing is retried.
func (c *Client) Do(ctx context.Context, req *Request) (json.RawMessage, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	url := c.URL(req.Endpoint)

	var body io.Reader
	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encode %s request: %w", req.Operation, err)
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", req.Operation, err)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}
	httpReq.Header.Set(APIKeyHeader, c.apiKey)
	httpReq.Header.Set(contentTypeHeader, jsonContentType)

	logger := c.logger.With("request_id", uuid.NewString(), "operation", req.Operation, "method", method, "url", url)
	logger.DebugContext(ctx, "n8n request")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		logger.ErrorContext(ctx, "n8n request failed", "error", err)
		return nil, fmt.Errorf("%s: %w", req.Operation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := newAPIError(resp)
		logger.ErrorContext(ctx, "n8n request failed", "status", apiErr.Status)
		return nil, apiErr
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", req.Operation, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return json.RawMessage("null"), nil
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("%s: response is not valid JSON", req.Operation)
	}
	return data, nil
}

// call issues req and decodes the response into out.
func (c *Client) call(ctx context.Context, req *Request, out interface{}) error {
	data, err := c.Do(ctx, req)
	if err != nil {
		return err
	}
	if err = json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s response: %w", req.Operation, err)
	}
	return nil
}
