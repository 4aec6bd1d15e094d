// Package remote implements the boundary with the legacy remote store: a
// rate-limited, retrying HTTP client, the flexible wire types its irregular
// schema needs, and per-entity DTO converters plus repositories that hand
// the rest of the application canonical domain models.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/crewbase/opsdash/internal/api/metrics"
)

// Defaults applied by New when the corresponding Config field is unset.
const (
	DefaultMinRequestInterval = 500 * time.Millisecond
	DefaultMaxRetries         = 3
	DefaultRetryDelay         = time.Second

	defaultTimeout = 30 * time.Second
)

// Config carries the connection settings for one remote store client.
type Config struct {
	// BaseURL is the store's versioned API root, e.g.
	// "https://app.example.com/api/1.1".
	BaseURL string
	// Token is sent as a bearer credential on every request.
	Token string
	// MinRequestInterval is the minimum spacing between consecutive
	// requests issued by this client instance. Zero means the default.
	MinRequestInterval time.Duration
	// MaxRetries bounds how many times a request is reissued on top of
	// the initial attempt. Only 5xx responses are ever retried. Zero
	// means the default; negative disables retries.
	MaxRetries int
	// RetryDelay is the base backoff: retry n waits RetryDelay * 2^n.
	RetryDelay time.Duration
	// BreakerEnabled puts a circuit breaker in front of the store. Off by
	// default; retry-then-fail-fast is the contract callers rely on.
	BreakerEnabled bool
	// HTTPClient overrides the default client and its 30s timeout.
	HTTPClient *http.Client
	// Logger receives per-attempt debug lines and retry warnings.
	Logger zerolog.Logger
}

// Client is the HTTP boundary to the remote store.
//
// Each instance owns its own rate-limiter state. Nothing here is process
// global, so independent clients (per tenant, per test) never block each
// other. The limiter is internally synchronised and all methods are safe
// for concurrent use.
type Client struct {
	baseURL    string
	token      string
	maxRetries int
	retryDelay time.Duration
	httpClient *http.Client
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker
	logger     zerolog.Logger
}

// New builds a Client, applying defaults for unset Config fields.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("remote: base URL is required")
	}
	if cfg.Token == "" {
		return nil, errors.New("remote: token is required")
	}

	interval := cfg.MinRequestInterval
	if interval <= 0 {
		interval = DefaultMinRequestInterval
	}
	maxRetries := cfg.MaxRetries
	if maxRetries == 0 {
		maxRetries = DefaultMaxRetries
	} else if maxRetries < 0 {
		maxRetries = 0
	}
	retryDelay := cfg.RetryDelay
	if retryDelay <= 0 {
		retryDelay = DefaultRetryDelay
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      cfg.Token,
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		httpClient: httpClient,
		limiter:    rate.NewLimiter(rate.Every(interval), 1),
		logger:     cfg.Logger.With().Str("component", "remote_client").Logger(),
	}

	if cfg.BreakerEnabled {
		c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "remote-store",
			MaxRequests: 1,
			Timeout:     30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures > 3
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				c.logger.Warn().
					Str("breaker", name).
					Str("from", from.String()).
					Str("to", to.String()).
					Msg("Circuit breaker state changed")
			},
		})
	}

	return c, nil
}

// Get issues a GET and decodes the envelope-unwrapped payload into out.
// Pass nil to discard the payload.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.call(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST carrying body as JSON. A nil body sends no payload,
// which is what the store's parameterless workflow actions expect.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.call(ctx, http.MethodPost, path, body, out)
}

// Patch issues a PATCH carrying body as JSON.
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.call(ctx, http.MethodPatch, path, body, out)
}

// Delete issues a DELETE. The store answers deletes with an empty body.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.call(ctx, http.MethodDelete, path, nil, nil)
}

// call runs the full request lifecycle: rate-limiter wait, attempt, retry
// with exponential backoff on 5xx, envelope unwrap on success. The same
// marshalled body is replayed on every attempt. 4xx responses, 429
// included, fail immediately.
func (c *Client) call(ctx context.Context, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("remote: encode %s %s: %w", method, path, err)
		}
		payload = encoded
	}

	requestID := uuid.NewString()
	log := c.logger.With().
		Str("request_id", requestID).
		Str("method", method).
		Str("path", path).
		Logger()

	url := c.baseURL + "/" + strings.TrimLeft(path, "/")

	var lastStatus int
	var lastBody []byte
	for attempt := 0; ; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return &NetworkError{Cause: err}
		}

		log.Debug().Int("attempt", attempt+1).Msg("Issuing remote request")
		start := time.Now()
		status, respBody, err := c.send(ctx, method, url, payload, requestID)
		metrics.RemoteRequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
		if err != nil {
			metrics.RemoteRequestsTotal.WithLabelValues(method, "network_error").Inc()
			log.Error().Err(err).Int("attempt", attempt+1).Msg("Remote request failed in transport")
			return &NetworkError{Cause: err}
		}
		metrics.RemoteRequestsTotal.WithLabelValues(method, strconv.Itoa(status)).Inc()

		if status >= 200 && status < 300 {
			if attempt > 0 {
				log.Info().Int("attempt", attempt+1).Msg("Remote request recovered after retry")
			}
			return decodePayload(respBody, out)
		}

		lastStatus, lastBody = status, respBody
		if status < http.StatusInternalServerError || attempt >= c.maxRetries {
			break
		}

		backoff := c.retryDelay * (1 << attempt)
		log.Warn().
			Int("status", status).
			Int("attempt", attempt+1).
			Dur("backoff", backoff).
			Msg("Remote request failed, retrying")
		metrics.RemoteRetriesTotal.Inc()
		select {
		case <-ctx.Done():
			return &NetworkError{Cause: ctx.Err()}
		case <-time.After(backoff):
		}
	}

	log.Error().Int("status", lastStatus).Msg("Remote request rejected")
	return &APIError{StatusCode: lastStatus, Body: lastBody}
}

type attemptResult struct {
	status int
	body   []byte
}

// send performs one HTTP attempt. A nil error means a response was
// received, whatever its status. Transport failures count against the
// breaker when one is configured; HTTP statuses do not.
func (c *Client) send(ctx context.Context, method, url string, payload []byte, requestID string) (int, []byte, error) {
	if c.breaker == nil {
		return c.doRequest(ctx, method, url, payload, requestID)
	}

	v, err := c.breaker.Execute(func() (interface{}, error) {
		status, body, err := c.doRequest(ctx, method, url, payload, requestID)
		if err != nil {
			return nil, err
		}
		return attemptResult{status: status, body: body}, nil
	})
	if err != nil {
		return 0, nil, err
	}
	res := v.(attemptResult)
	return res.status, res.body, nil
}

func (c *Client) doRequest(ctx context.Context, method, url string, payload []byte, requestID string) (int, []byte, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("X-Request-ID", requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, respBody, nil
}

// decodePayload unwraps the store's response envelope and decodes the
// result into out. A payload with a `response` key yields its sub-value;
// anything else decodes as-is, which covers workflow actions that answer
// bare objects and deletes that answer nothing at all.
func decodePayload(body []byte, out any) error {
	if out == nil {
		return nil
	}
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil
	}

	payload := body
	var envelope struct {
		Response json.RawMessage `json:"response"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Response) > 0 {
		payload = envelope.Response
	}

	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("remote: decode response: %w", err)
	}
	return nil
}
