// Package apiclient performs authenticated JSON calls against the backend
// services. Every remote host gets its own circuit breaker.
package apiclient

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/errors"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/services/logger"
	"github.com/anna02272/Accommodation-Booking-Platform-Gobnb/services/session"

	"github.com/goccy/go-json"
	"github.com/sony/gobreaker"
)

// Header is an extra request header
type Header struct {
	Key   string
	Value string
}

// API is the verb surface the resource services depend on
type API interface {
	Get(ctx context.Context, url string, out interface{}) error
	Post(ctx context.Context, url string, body, out interface{}, headers ...Header) error
	Patch(ctx context.Context, url string, body, out interface{}) error
	Delete(ctx context.Context, url string, out interface{}) error
}

type BreakerSettings struct {
	MaxFailures uint32
	OpenTimeout time.Duration
}

type Client struct {
	http     *http.Client
	logger   logger.Logger
	settings BreakerSettings

	mu       sync.Mutex
	breakers map[string]*gobreaker.CircuitBreaker
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithLogger(l logger.Logger) Option {
	return func(c *Client) { c.logger = l }
}

func WithBreakerSettings(s BreakerSettings) Option {
	return func(c *Client) { c.settings = s }
}

func New(opts ...Option) *Client {
	c := &Client{
		http:   &http.Client{Timeout: 10 * time.Second},
		logger: logger.Nop(),
		settings: BreakerSettings{
			MaxFailures: 3,
			OpenTimeout: 10 * time.Second,
		},
		breakers: make(map[string]*gobreaker.CircuitBreaker),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Get(ctx context.Context, url string, out interface{}) error {
	return c.Do(ctx, http.MethodGet, url, nil, out)
}

func (c *Client) Post(ctx context.Context, url string, body, out interface{}, headers ...Header) error {
	return c.Do(ctx, http.MethodPost, url, body, out, headers...)
}

func (c *Client) Patch(ctx context.Context, url string, body, out interface{}) error {
	return c.Do(ctx, http.MethodPatch, url, body, out)
}

func (c *Client) Delete(ctx context.Context, url string, out interface{}) error {
	return c.Do(ctx, http.MethodDelete, url, nil, out)
}

// Do sends one request and decodes a 2xx body into out. Non-2xx replies
// and transport failures come back as *errors.RemoteError; a request
// abandoned through ctx returns the ctx error instead. Nothing is retried.
func (c *Client) Do(ctx context.Context, method, rawURL string, body, out interface{}, headers ...Header) error {
	cb := c.breaker(rawURL)

	res, err := cb.Execute(func() (interface{}, error) {
		return c.send(ctx, method, rawURL, body, headers)
	})
	if err != nil {
		if stderrors.Is(err, gobreaker.ErrOpenState) || stderrors.Is(err, gobreaker.ErrTooManyRequests) {
			return &errors.RemoteError{Method: method, URL: rawURL, Unavailable: true, Err: err}
		}
		return err
	}

	data, _ := res.([]byte)
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, rawURL, err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, rawURL string, body interface{}, headers []Header) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s: %w", method, rawURL, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, rawURL, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if s := session.FromContext(ctx); s != nil && s.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}
	for _, h := range headers {
		req.Header.Set(h.Key, h.Value)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			c.logger.Debug("%s %s abandoned: %v", method, rawURL, ctxErr)
			return nil, fmt.Errorf("%s %s: %w", method, rawURL, ctxErr)
		}
		c.logger.Error("%s %s failed: %v", method, rawURL, err)
		return nil, &errors.RemoteError{Method: method, URL: rawURL, Unavailable: true, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &errors.RemoteError{Method: method, URL: rawURL, Unavailable: true, Err: err}
	}
	c.logger.Debug("%s %s -> %d (%s)", method, rawURL, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &errors.RemoteError{
			Method:  method,
			URL:     rawURL,
			Status:  resp.StatusCode,
			Message: ExtractMessage(data),
		}
	}
	return data, nil
}

// ExtractMessage pulls the server message out of an error body: the
// "error" field, then "message", then the raw text.
func ExtractMessage(body []byte) string {
	var fields map[string]interface{}
	if err := json.Unmarshal(body, &fields); err == nil {
		for _, key := range []string{"error", "message"} {
			if s, ok := fields[key].(string); ok && s != "" {
				return s
			}
		}
	}
	return strings.TrimSpace(string(body))
}

func (c *Client) breaker(rawURL string) *gobreaker.CircuitBreaker {
	host := rawURL
	if u, err := url.Parse(rawURL); err == nil && u.Host != "" {
		host = u.Host
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if cb, ok := c.breakers[host]; ok {
		return cb
	}
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        host,
		MaxRequests: 1,
		Timeout:     c.settings.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= c.settings.MaxFailures
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			c.logger.Info("circuit breaker %s changed from %s to %s", name, from, to)
		},
		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			if remoteErr := errors.GetRemoteError(err); remoteErr != nil {
				return remoteErr.IsClientError()
			}
			// the caller gave up, the host did not fail
			return stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded)
		},
	})
	c.breakers[host] = cb
	return cb
}
