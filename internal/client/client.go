package client

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

	"github.com/rs/zerolog/log"
	config "github.com/thirdweb-dev/blobflow/configs"
	"github.com/thirdweb-dev/blobflow/internal/metrics"
)

const (
	DefaultTimeout     = 10 * time.Second
	DefaultMaxRetries  = 2
	DefaultBackoffUnit = time.Second
)

type Config struct {
	BaseURL      string
	Timeout      time.Duration
	MaxRetries   int
	BackoffUnit  time.Duration
	MockFallback bool
	HTTPClient   *http.Client
}

// RequestOptions carries per-request overrides.
type RequestOptions struct {
	Method  string
	Headers http.Header
	// Timeout overrides the client timeout for this request when set
	Timeout time.Duration
	// MaxRetries overrides the retry budget when not nil
	MaxRetries *int
}

// IClient is what the endpoint adapters depend on.
type IClient interface {
	Get(ctx context.Context, endpoint string, out interface{}) error
	Do(ctx context.Context, endpoint string, opts *RequestOptions, out interface{}) error
}

type Client struct {
	baseURL      string
	timeout      time.Duration
	maxRetries   int
	backoffUnit  time.Duration
	mockFallback bool
	httpClient   *http.Client
	now          func() time.Time
	sleep        func(ctx context.Context, d time.Duration) error
}

func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}
	backoffUnit := cfg.BackoffUnit
	if backoffUnit <= 0 {
		backoffUnit = DefaultBackoffUnit
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		timeout:      timeout,
		maxRetries:   maxRetries,
		backoffUnit:  backoffUnit,
		mockFallback: cfg.MockFallback,
		httpClient:   httpClient,
		now:          time.Now,
		sleep:        sleepContext,
	}
}

// NewFromConfig builds a client from the api section of the global config.
func NewFromConfig() *Client {
	return New(Config{
		BaseURL:      config.Cfg.API.URL,
		Timeout:      config.Cfg.API.Timeout,
		MaxRetries:   config.Cfg.API.MaxRetries,
		BackoffUnit:  config.Cfg.API.BackoffUnit,
		MockFallback: config.Cfg.API.MockFallback,
	})
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) Get(ctx context.Context, endpoint string, out interface{}) error {
	return c.Do(ctx, endpoint, nil, out)
}

// Do fetches endpoint and decodes the JSON payload into out. Server errors and
// network errors are retried with a 2^attempt backoff until the retry budget
// is spent; timeouts and client errors are returned as is.
func (c *Client) Do(ctx context.Context, endpoint string, opts *RequestOptions, out interface{}) error {
	if opts == nil {
		opts = &RequestOptions{}
	}
	maxRetries := c.maxRetries
	if opts.MaxRetries != nil {
		maxRetries = *opts.MaxRetries
	}

	err := c.fetch(ctx, endpoint, opts, out, 0, maxRetries)
	if err == nil {
		return nil
	}

	if c.mockFallback && ctx.Err() == nil {
		log.Warn().Err(err).Str("endpoint", endpoint).Msg("Returning mock data")
		metrics.ClientMockFallbacks.Inc()
		return decodeMock(endpoint, c.now(), out)
	}
	return err
}

func (c *Client) fetch(ctx context.Context, endpoint string, opts *RequestOptions, out interface{}, attempt int, maxRetries int) error {
	label := endpointLabel(endpoint)
	body, err := c.attempt(ctx, endpoint, opts)
	metrics.ClientRequests.WithLabelValues(label, outcome(err)).Inc()

	if err != nil {
		if attempt < maxRetries && IsRetryable(err) {
			delay := c.backoff(attempt)
			log.Warn().Err(err).
				Str("endpoint", endpoint).
				Int("retry", attempt+1).
				Dur("delay", delay).
				Msg("API request failed, retrying...")
			metrics.ClientRetries.WithLabelValues(label).Inc()
			if sleepErr := c.sleep(ctx, delay); sleepErr != nil {
				return sleepErr
			}
			return c.fetch(ctx, endpoint, opts, out, attempt+1, maxRetries)
		}
		log.Error().Err(err).Str("endpoint", endpoint).Int("attempts", attempt+1).Msg("API fetch error")
		return err
	}

	// An empty 2xx body leaves out untouched.
	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		log.Error().Err(err).Str("endpoint", endpoint).Msg("Failed to decode API response")
		return fmt.Errorf("decode response from %s: %w", endpoint, err)
	}
	return nil
}

// attempt performs a single request bounded by the attempt timeout.
func (c *Client) attempt(ctx context.Context, endpoint string, opts *RequestOptions) ([]byte, error) {
	timeout := c.timeout
	if opts.Timeout > 0 {
		timeout = opts.Timeout
	}
	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	start := time.Now()
	defer func() {
		metrics.ClientRequestDuration.Observe(time.Since(start).Seconds())
	}()

	req, err := http.NewRequestWithContext(attemptCtx, method, c.baseURL+endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for key, values := range opts.Headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.classify(ctx, attemptCtx, endpoint, timeout, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.classify(ctx, attemptCtx, endpoint, timeout, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{Code: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}

// classify turns an expired attempt deadline into ErrTimeout. A cancelled
// parent context is reported unchanged.
func (c *Client) classify(parent, attemptCtx context.Context, endpoint string, timeout time.Duration, err error) error {
	if parent.Err() == nil && errors.Is(attemptCtx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w after %s: %s", ErrTimeout, timeout, endpoint)
	}
	return fmt.Errorf("http request: %w", err)
}

func (c *Client) backoff(attempt int) time.Duration {
	return time.Duration(1<<uint(attempt)) * c.backoffUnit
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// endpointLabel strips the query string and collapses id-like path segments
// so metric cardinality stays bounded.
func endpointLabel(endpoint string) string {
	path := endpoint
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	segments := strings.Split(path, "/")
	for i, segment := range segments {
		if strings.HasPrefix(segment, "0x") || isDigits(segment) {
			segments[i] = ":id"
		}
	}
	return strings.Join(segments, "/")
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
