package vortex

import (
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// DeprecationNotice describes one use of a deprecated input shape.
type DeprecationNotice struct {
	Operation string
	Shape     string
	Message   string
}

// DeprecationHook is called every time a deprecated input shape is used.
// It is observability only: the call proceeds regardless.
type DeprecationHook func(notice DeprecationNotice)

type clientOptions struct {
	baseURL       string
	httpClient    *http.Client
	logger        *slog.Logger
	onDeprecation DeprecationHook
	now           func() time.Time
	userAgent     string
}

// Option configures a Client.
type Option func(*clientOptions)

// WithBaseURL overrides the API endpoint. Empty values are ignored.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		if baseURL = strings.TrimSpace(baseURL); baseURL != "" {
			o.baseURL = baseURL
		}
	}
}

// WithHTTPClient sets the HTTP client used for every request.
// Timeouts, proxies and transport tuning belong there.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		if client != nil {
			o.httpClient = client
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *clientOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithDeprecationHook registers a callback for deprecated input shapes,
// in addition to the warning written to the logger.
func WithDeprecationHook(hook DeprecationHook) Option {
	return func(o *clientOptions) {
		o.onDeprecation = hook
	}
}

// WithClock overrides the time source used for token timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *clientOptions) {
		if now != nil {
			o.now = now
		}
	}
}

// WithUserAgent replaces the default User-Agent header.
func WithUserAgent(ua string) Option {
	return func(o *clientOptions) {
		if ua != "" {
			o.userAgent = ua
		}
	}
}
