package vortex

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrymomot/vortex/pkg/apikey"
	"github.com/dmitrymomot/vortex/pkg/config"
	"github.com/dmitrymomot/vortex/pkg/logger"
)

// DefaultBaseURL is the production Vortex API endpoint.
const DefaultBaseURL = "https://api.vortexsoftware.com"

// EnvPrefix is prepended to every Config variable name.
const EnvPrefix = "VORTEX_"

// Config holds the settings a Client can be built from:
// VORTEX_API_KEY and VORTEX_API_BASE_URL.
type Config struct {
	APIKey  string `env:"API_KEY"`
	BaseURL string `env:"API_BASE_URL" envDefault:"https://api.vortexsoftware.com"`
}

// LoadConfig reads Config from the process environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Parse(&cfg, config.WithPrefix(EnvPrefix)); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Client calls the Vortex invitation API. It is safe for concurrent use.
type Client struct {
	key           apikey.Key
	baseURL       string
	httpClient    *http.Client
	logger        *slog.Logger
	onDeprecation DeprecationHook
	now           func() time.Time
	userAgent     string
}

// New validates apiKey and returns a client. A malformed key fails here,
// before any request is made.
func New(apiKey string, opts ...Option) (*Client, error) {
	key, err := apikey.Parse(apiKey)
	if err != nil {
		return nil, err
	}

	o := &clientOptions{
		now:       time.Now,
		userAgent: SDKName + "/" + SDKVersion(),
	}
	for _, opt := range opts {
		opt(o)
	}

	if o.baseURL == "" {
		cfg, err := LoadConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve base url: %w", err)
		}
		o.baseURL = cfg.BaseURL
	}
	if o.baseURL == "" {
		o.baseURL = DefaultBaseURL
	}
	if o.httpClient == nil {
		o.httpClient = http.DefaultClient
	}
	if o.logger == nil {
		o.logger = logger.Discard()
	}

	return &Client{
		key:           key,
		baseURL:       strings.TrimRight(o.baseURL, "/"),
		httpClient:    o.httpClient,
		logger:        o.logger.With(logger.Component("vortex"), slog.String("kid", key.ID())),
		onDeprecation: o.onDeprecation,
		now:           o.now,
		userAgent:     o.userAgent,
	}, nil
}

// NewFromConfig builds a client from cfg. Options passed here take
// precedence over cfg.BaseURL.
func NewFromConfig(cfg Config, opts ...Option) (*Client, error) {
	return New(cfg.APIKey, append([]Option{WithBaseURL(cfg.BaseURL)}, opts...)...)
}

// BaseURL returns the resolved API endpoint.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// KeyID returns the identifier embedded in the API key.
func (c *Client) KeyID() string {
	return c.key.ID()
}

func (c *Client) deprecated(notice DeprecationNotice) {
	c.logger.Warn(notice.Message,
		logger.Operation(notice.Operation),
		slog.String("shape", notice.Shape),
	)
	if c.onDeprecation != nil {
		c.onDeprecation(notice)
	}
}
