// Package fetcher retrieves Swagger documents over HTTP.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/GabrielNunesIT/go-libs/logger"
	"github.com/GabrielNunesIT/swagger-ts-gen/internal/domain"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
)

const (
	jsonContentType = "application/json"
	defaultTimeout  = 30 * time.Second
)

// HTTPFetcher downloads a Swagger document with an optional retry policy.
type HTTPFetcher struct {
	client *retryablehttp.Client
}

// Option configures the underlying retryable client.
type Option func(*retryablehttp.Client)

// WithMaxRetries sets how many times a failed request is retried.
func WithMaxRetries(maxRetries int) Option {
	return func(client *retryablehttp.Client) {
		client.RetryMax = maxRetries
	}
}

// WithRetryWait sets the bounds of the backoff between retries.
func WithRetryWait(waitMin, waitMax time.Duration) Option {
	return func(client *retryablehttp.Client) {
		client.RetryWaitMin = waitMin
		client.RetryWaitMax = waitMax
	}
}

// WithTimeout bounds a single request attempt.
func WithTimeout(timeout time.Duration) Option {
	return func(client *retryablehttp.Client) {
		client.HTTPClient.Timeout = timeout
	}
}

// WithLogger reports retries through log.
func WithLogger(log logger.ILogger) Option {
	return func(client *retryablehttp.Client) {
		client.Logger = retryablehttp.LeveledLogger(leveledLogger{log: log})
	}
}

// NewHTTPFetcher creates a fetcher that does not retry unless configured to.
func NewHTTPFetcher(options ...Option) *HTTPFetcher {
	client := retryablehttp.NewClient()
	client.HTTPClient = cleanhttp.DefaultPooledClient()
	client.HTTPClient.Timeout = defaultTimeout
	client.RetryMax = 0
	client.RetryWaitMin = 500 * time.Millisecond
	client.RetryWaitMax = 5 * time.Second
	client.Logger = nil
	// Hand back the last response so a bad status surfaces as a TransportError.
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler

	for _, option := range options {
		option(client)
	}

	return &HTTPFetcher{client: client}
}

// Fetch downloads url and returns the body of a 200 JSON response.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &domain.TransportError{URL: url, Err: err}
	}
	req.Header.Set("Accept", jsonContentType)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &domain.TransportError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	contentType := resp.Header.Get("Content-Type")

	if resp.StatusCode != http.StatusOK || !strings.Contains(contentType, jsonContentType) {
		// Consume the body so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)

		return nil, &domain.TransportError{
			URL:         url,
			StatusCode:  resp.StatusCode,
			ContentType: contentType,
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.TransportError{URL: url, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	return body, nil
}

// leveledLogger adapts ILogger to retryablehttp.LeveledLogger.
type leveledLogger struct {
	log logger.ILogger
}

func (l leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.log.Errorf("%s %v", msg, keysAndValues)
}

func (l leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.log.Infof("%s %v", msg, keysAndValues)
}

func (l leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Infof("%s %v", msg, keysAndValues)
}

func (l leveledLogger) Debug(string, ...interface{}) {}
