// Package databricks provides the remote call helper used by every service
// module: one authenticated HTTP request per call, no retries, non-2xx
// responses mapped to a typed APIError.
package databricks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/databrickslabs/databricks-mcp/pkg/domain/errors"
)

const defaultTimeout = 120 * time.Second

// APIError describes a non-2xx response from the Databricks REST API. The
// status code and response body are carried verbatim.
type APIError struct {
	StatusCode int
	Body       string
	Endpoint   string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("databricks API request to %s failed: %d - %s", e.Endpoint, e.StatusCode, e.Body)
}

// Client issues single-attempt authenticated requests against a Databricks
// workspace. Credentials are resolved per request through the provider.
type Client struct {
	httpClient *http.Client
	creds      CredentialProvider
	logger     zerolog.Logger
}

// Option configures a Client
type Option func(*Client)

// WithCredentialProvider overrides the credential source, primarily for tests
func WithCredentialProvider(p CredentialProvider) Option {
	return func(c *Client) { c.creds = p }
}

// WithHTTPClient overrides the underlying HTTP client
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// NewClient creates a client resolving credentials from the environment
func NewClient(logger zerolog.Logger, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		creds:      CredentialsFromEnv,
		logger:     logger.With().Str("component", "databricks_client").Logger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get issues a GET request against an API path with optional query values
func (c *Client) Get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

// GetJSON issues a GET request and decodes the JSON response body
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values) (map[string]any, error) {
	raw, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}
	return decodeBody(path, raw)
}

// PostJSON issues a POST request with a JSON payload and decodes the JSON
// response body
func (c *Client) PostJSON(ctx context.Context, path string, payload any) (map[string]any, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.New(errors.CodeInternalError, "databricks",
			fmt.Sprintf("failed to encode request body for %s", path), err)
	}
	raw, err := c.do(ctx, http.MethodPost, path, nil, body)
	if err != nil {
		return nil, err
	}
	return decodeBody(path, raw)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body []byte) ([]byte, error) {
	creds, err := c.creds()
	if err != nil {
		return nil, err
	}

	endpoint := creds.BaseURL() + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, errors.New(errors.CodeInternalError, "databricks",
			fmt.Sprintf("failed to build request for %s", path), err)
	}
	req.Header.Set("Authorization", "Bearer "+creds.Token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	requestID := uuid.New().String()
	c.logger.Debug().
		Str("request_id", requestID).
		Str("method", method).
		Str("path", path).
		Msg("Calling Databricks API")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.New(errors.CodeNetworkError, "databricks",
			fmt.Sprintf("request to %s failed", path), err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.New(errors.CodeNetworkError, "databricks",
			fmt.Sprintf("failed to read response from %s", path), err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Debug().
			Str("request_id", requestID).
			Int("status", resp.StatusCode).
			Msg("Databricks API returned an error")
		return nil, errors.New(errors.CodeUpstreamAPIError, "databricks", "upstream request failed",
			&APIError{StatusCode: resp.StatusCode, Body: string(raw), Endpoint: path})
	}

	return raw, nil
}

func decodeBody(path string, raw []byte) (map[string]any, error) {
	if len(raw) == 0 {
		return map[string]any{}, nil
	}
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, errors.New(errors.CodeUpstreamAPIError, "databricks",
			fmt.Sprintf("response from %s is not valid JSON", path), err)
	}
	return payload, nil
}
