package pulse

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/RECTOR-LABS/pnode-pulse/internal/vars"
)

const (
	// DefaultBaseURL is the production API endpoint.
	DefaultBaseURL = "https://pulse.rectorspace.com"

	// DefaultTimeout applies to the whole request/response cycle.
	DefaultTimeout = 30 * time.Second
)

// Option configures a Client.
type Option func(*Client)

// WithAPIKey sets the API key sent in the X-API-Key header. Without a key
// requests run on the anonymous tier with a lower server-side quota.
func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = key }
}

// WithBaseURL overrides the API endpoint. A trailing slash is trimmed.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(baseURL, "/") }
}

// WithTimeout sets the per-request timeout, connect and read combined.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithHTTPClient supplies a custom transport, for proxies or connection
// pool tuning. The configured timeout is still applied to it.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger attaches a zerolog logger. The client emits one debug event per
// request and never logs an error without also returning it.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) { c.log = logger }
}

// WithRateLimit paces outgoing requests client-side so a busy caller does not
// burn through the server quota. Each request waits for the limiter before it
// is sent. This is pacing only: a 429 is still returned to the caller, never
// retried.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithMetrics attaches prometheus instrumentation to the request path.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// Client is the synchronous pNode Pulse API client. The three resource
// facades are exposed as fields; every method issues exactly one HTTP
// request and is safe for concurrent use.
type Client struct {
	Network     *NetworkService
	Nodes       *NodesService
	Leaderboard *LeaderboardService

	apiKey  string
	baseURL string
	timeout time.Duration
	http    *http.Client
	limiter *rate.Limiter
	metrics *Metrics
	log     zerolog.Logger

	mu       sync.Mutex
	lastRate RateLimitInfo

	closed atomic.Bool
}

// New creates a Client with the given options. The zero configuration talks
// anonymously to DefaultBaseURL with DefaultTimeout.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
		log:     zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.http == nil {
		c.http = &http.Client{}
	}
	c.http.Timeout = c.timeout

	c.Network = &NetworkService{client: c}
	c.Nodes = &NodesService{client: c}
	c.Leaderboard = &LeaderboardService{client: c}

	return c
}

// Close releases the transport. Requests issued afterwards fail fast with
// ErrClientClosed. Close must not race with in-flight requests.
func (c *Client) Close() error {
	if c.closed.Swap(true) {
		return nil
	}

	c.http.CloseIdleConnections()
	return nil
}

// LastRateLimit returns the quota snapshot from the most recent response,
// success or error. All zeros before the first response arrives.
func (c *Client) LastRateLimit() RateLimitInfo {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.lastRate
}

// do is the single request primitive underlying every facade method.
func (c *Client) do(ctx context.Context, path string, query url.Values) ([]byte, error) {
	if c.closed.Load() {
		return nil, ErrClientClosed
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, newValidationError("building request for %s: %v", path, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", vars.UserAgent())
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		terr := classifyTransportError(err)
		c.observe(path, transportLabel(terr), time.Since(start))
		return nil, terr
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		terr := classifyTransportError(err)
		c.observe(path, transportLabel(terr), time.Since(start))
		return nil, terr
	}

	rl := parseRateLimit(resp.Header)
	c.mu.Lock()
	c.lastRate = rl
	c.mu.Unlock()

	duration := time.Since(start)
	c.observe(path, strconv.Itoa(resp.StatusCode), duration)
	if c.metrics != nil {
		c.metrics.rateRemaining.Set(float64(rl.Remaining))
	}

	c.log.Debug().
		Str("method", http.MethodGet).
		Str("path", path).
		Int("status", resp.StatusCode).
		Int("remaining", rl.Remaining).
		Dur("duration", duration).
		Msg("Request completed")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errorFromResponse(resp.StatusCode, body, resp.Header, rl)
	}

	return body, nil
}

func (c *Client) observe(path, status string, duration time.Duration) {
	if c.metrics == nil {
		return
	}

	c.metrics.requests.WithLabelValues(path, status).Inc()
	c.metrics.duration.WithLabelValues(path).Observe(duration.Seconds())
}

// classifyTransportError maps a failure that happened before any HTTP status
// existed. Cancellation is the caller's own signal and passes through
// unchanged so it stays distinguishable from a timeout.
func classifyTransportError(err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return newTimeoutError(err)
	}

	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return newTimeoutError(err)
	}

	return newNetworkError(err)
}

func transportLabel(err error) string {
	switch err.(type) {
	case *TimeoutError:
		return "timeout"
	case *NetworkError:
		return "network_error"
	default:
		return "canceled"
	}
}

// errorFromResponse translates a non-2xx response into the error taxonomy.
// The body is expected to be {"error":{"message","code"}}; anything else
// degrades to the raw text with code UNKNOWN_ERROR.
func errorFromResponse(status int, body []byte, header http.Header, rl RateLimitInfo) error {
	message := "Unknown error"
	code := CodeUnknown

	var envelope struct {
		Error *struct {
			Message string `json:"message"`
			Code    string `json:"code"`
		} `json:"error"`
	}

	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Error != nil {
			if envelope.Error.Message != "" {
				message = envelope.Error.Message
			}
			if envelope.Error.Code != "" {
				code = envelope.Error.Code
			}
		}
	} else if text := strings.TrimSpace(string(body)); text != "" {
		message = text
	}

	switch status {
	case http.StatusTooManyRequests:
		retryAfter := 60
		if v, err := strconv.Atoi(header.Get(headerRetryAfter)); err == nil {
			retryAfter = v
		}
		return newRateLimitError(message, retryAfter, rl)
	case http.StatusNotFound:
		return newNotFoundError(message)
	case http.StatusUnauthorized:
		return newAuthenticationError(message)
	default:
		return &APIError{Message: message, Code: code, Status: status, RateLimit: rl}
	}
}

// getJSON runs one request and decodes the 2xx body into T. A body that does
// not match the schema is a contract violation and surfaces as
// ValidationError, distinct from the server rejecting the request.
func getJSON[T any](ctx context.Context, c *Client, path string, query url.Values) (*T, error) {
	body, err := c.do(ctx, path, query)
	if err != nil {
		return nil, err
	}

	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, newValidationError("decoding response from %s: %v", path, err)
	}

	return &v, nil
}
