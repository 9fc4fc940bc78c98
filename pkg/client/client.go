// Package client provides the RT REST2 gateway client with authentication,
// status-to-error mapping, and request metrics.
package client

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"

	"github.com/opsqueue/rt-mcp-server/pkg/config"
	"github.com/opsqueue/rt-mcp-server/pkg/logging"
)

// Prometheus metrics for RT gateway operations.
var (
	rtRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rt_requests_total",
		Help: "Total RT requests by endpoint and status",
	}, []string{"endpoint", "status"})

	rtRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "rt_request_duration_seconds",
		Help:    "RT request duration in seconds by endpoint",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
	}, []string{"endpoint"})

	rtErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rt_errors_total",
		Help: "Total RT errors by kind",
	}, []string{"kind"})
)

// Client is the RT REST2 gateway client. It owns one HTTP connection
// context for its lifetime and is safe for concurrent use; it performs no
// caching and no automatic retries.
type Client struct {
	httpClient *http.Client
	baseURL    string
	authHeader string
	logger     zerolog.Logger
}

// New creates a gateway client from validated configuration. The
// authentication scheme is resolved here, so a configuration with neither
// token nor user/password fails before any request is attempted.
func New(cfg *config.Config) (*Client, error) {
	auth, err := cfg.AuthHeader()
	if err != nil {
		return nil, err
	}

	transport := http.DefaultTransport
	if !cfg.VerifySSL {
		transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	return &Client{
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
		baseURL:    cfg.BaseURL(),
		authHeader: auth,
		logger:     logging.NewLogger("rt-client"),
	}, nil
}

// Close releases the client's idle connections. The client must not be used
// after Close returns.
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

// do performs one authenticated HTTP call and normalizes its outcome. body
// is JSON-encoded when non-nil; headers override or extend the defaults;
// query is appended to the request URL.
func (c *Client) do(ctx context.Context, method, path string, body any, headers map[string]string, query url.Values) (map[string]any, error) {
	endpoint := endpointLabel(path)
	timer := prometheus.NewTimer(rtRequestDuration.WithLabelValues(endpoint))
	defer timer.ObserveDuration()

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, &Error{Kind: KindValidation, Message: fmt.Sprintf("encoding request body: %v", err), Err: err}
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := c.newRequest(ctx, method, path, reqBody)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Msg("Dispatching RT request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.networkError(endpoint, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.networkError(endpoint, path, err)
	}

	rtRequestsTotal.WithLabelValues(endpoint, fmt.Sprintf("%d", resp.StatusCode)).Inc()
	return c.handleResponse(path, resp.StatusCode, raw)
}

// newRequest builds an authenticated request against the configured base URL.
func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Message: fmt.Sprintf("creating request: %v", err), Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", c.authHeader)
	return req, nil
}

// handleResponse decodes the body and maps the status code to either plain
// data or a typed error. A success response that is not valid JSON never
// fails; the raw text is substituted under a "message" key.
func (c *Client) handleResponse(path string, status int, raw []byte) (map[string]any, error) {
	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil || data == nil {
		data = map[string]any{"message": string(raw)}
	}

	switch status {
	case http.StatusOK, http.StatusCreated:
		return data, nil
	case http.StatusNotModified:
		return map[string]any{"_status": "not_modified"}, nil
	}

	kind := kindForStatus(status)
	message, _ := data["message"].(string)
	if message == "" {
		message = "unknown error"
	}

	rtErrorsTotal.WithLabelValues(string(kind)).Inc()
	c.logger.Warn().
		Str("path", path).
		Int("status", status).
		Str("kind", string(kind)).
		Msg("RT request error")

	return nil, &Error{
		Kind:       kind,
		StatusCode: status,
		Message:    message,
		Body:       data,
	}
}

// networkError records and wraps a transport failure, flagging timeouts.
func (c *Client) networkError(endpoint, path string, err error) *Error {
	rtErrorsTotal.WithLabelValues(string(KindNetwork)).Inc()
	rtRequestsTotal.WithLabelValues(endpoint, "network_error").Inc()

	timeout := isTimeout(err)
	c.logger.Error().
		Err(err).
		Str("path", path).
		Bool("timeout", timeout).
		Msg("RT request failed")

	message := "network error"
	if timeout {
		message = "request timeout"
	}
	return &Error{Kind: KindNetwork, Message: message, Timeout: timeout, Err: err}
}

// isTimeout reports whether err was caused by an elapsed deadline.
func isTimeout(err error) bool {
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}

// endpointLabel bounds metric cardinality by labelling requests with the
// leading resource segment of the path instead of the full path.
func endpointLabel(path string) string {
	trimmed := strings.TrimPrefix(path, "/")
	if trimmed == "" {
		return "/"
	}
	if i := strings.IndexByte(trimmed, '/'); i > 0 {
		return trimmed[:i]
	}
	return trimmed
}

// searchParams builds the standard paginated query parameter set.
func searchParams(query string, page, perPage int) url.Values {
	return url.Values{
		"query":    {query},
		"page":     {fmt.Sprintf("%d", page)},
		"per_page": {fmt.Sprintf("%d", perPage)},
	}
}
