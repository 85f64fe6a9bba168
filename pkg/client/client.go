package feedonomics

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is the production Feedonomics API endpoint.
	DefaultBaseURL = "https://meta.feedonomics.com/api.php"

	// DefaultTimeout bounds a single outbound call. There are no retries; a
	// timed-out call is terminal for its operation.
	DefaultTimeout = 60 * time.Second

	msgDbIDRequired = "Database ID is required. Please set it using setDbId() first."
	msgGenericAPI   = "API error"
)

// Config is the explicit construction-time configuration for a Client. The
// library never reads the environment; defaults for optional fields are
// applied by New.
type Config struct {
	// APIToken authenticates every call via the x-api-key header. Required.
	APIToken string
	// BaseURL overrides the API endpoint. Optional.
	BaseURL string
	// Timeout overrides the per-call timeout. Optional.
	Timeout time.Duration
	// DbID presets the active database identifier. Optional.
	DbID string
	// Verbose enables per-call diagnostic logging. The token value itself is
	// never logged.
	Verbose bool
}

// Client is the session context for one logical Feedonomics connection: auth
// token, endpoint, timeout, and the active database identifier that
// database-scoped operations target.
//
// The active database identifier is the only mutable state. Callers must not
// share one Client across concurrent database-scoped workflows.
type Client struct {
	token      string
	baseURL    string
	dbID       string
	verbose    bool
	httpClient *http.Client
}

// New creates a Feedonomics client. A missing API token is a construction
// error and is raised immediately, before any network activity.
func New(cfg Config) (*Client, error) {
	if cfg.APIToken == "" {
		return nil, errors.New("feedonomics: API token is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		token:      cfg.APIToken,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		dbID:       cfg.DbID,
		verbose:    cfg.Verbose,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// SetDbID sets the active database identifier that database-scoped operations
// target. It may be called any number of times.
func (c *Client) SetDbID(id string) {
	c.dbID = id
}

// DbID returns the active database identifier, empty when unset.
func (c *Client) DbID() string {
	return c.dbID
}

// requestOptions carries per-call overrides.
type requestOptions struct {
	headers map[string]string
	timeout time.Duration
}

// RequestOption overrides transport behavior for a single call.
type RequestOption func(*requestOptions)

// WithHeader adds a header to a single call.
func WithHeader(key, value string) RequestOption {
	return func(o *requestOptions) {
		if o.headers == nil {
			o.headers = map[string]string{}
		}
		o.headers[key] = value
	}
}

// WithTimeout bounds a single call with its own timeout instead of the
// session default.
func WithTimeout(d time.Duration) RequestOption {
	return func(o *requestOptions) {
		o.timeout = d
	}
}

// missingDbID is the envelope returned by database-scoped operations invoked
// before SetDbID. No network call is made and no status is attached.
func missingDbID[T any]() Result[T] {
	return fail[T](msgDbIDRequired, 0)
}

// request issues one outbound call and maps every outcome into a Result. It
// never returns a Go error to the caller.
func request[T any](ctx context.Context, c *Client, method, path string, body any, opts ...RequestOption) Result[T] {
	var o requestOptions
	for _, opt := range opts {
		opt(&o)
	}

	url := c.baseURL + path

	if c.verbose {
		l := ctxzap.Extract(ctx)
		l.Debug("feedonomics request", zap.String("url", url))
		l.Debug("feedonomics auth", zap.Bool("token_set", c.token != ""))
	}

	var bodyReader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fail[T](fmt.Sprintf("failed to marshal request body: %v", err), 0)
		}
		bodyReader = bytes.NewReader(payload)
	}

	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fail[T](err.Error(), 0)
	}

	req.Header.Set("x-api-key", c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for k, v := range o.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fail[T](err.Error(), 0)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		// A response was received, so its status survives the read failure.
		return fail[T](err.Error(), resp.StatusCode)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fail[T](serverMessage(respBody), resp.StatusCode)
	}

	var data T
	if len(respBody) > 0 {
		if err := json.Unmarshal(respBody, &data); err != nil {
			return fail[T](fmt.Sprintf("failed to unmarshal response: %v", err), resp.StatusCode)
		}
	}

	return ok(data, resp.StatusCode)
}

// serverMessage extracts the error message the server reported, falling back
// to a generic placeholder when the body carries none.
func serverMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return msgGenericAPI
}
