package config

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// LoadEnv loads the given .env files into the process environment without
// overriding variables that are already set. With no arguments it loads
// ./.env and silently ignores a missing file.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		defaultEnvLoaded.Do(func() {
			// The default .env file is optional.
			_ = godotenv.Load()
		})
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// ParseOption tunes a single Parse call.
type ParseOption func(*env.Options)

// WithPrefix prepends prefix to every env tag, e.g. "VORTEX_".
func WithPrefix(prefix string) ParseOption {
	return func(o *env.Options) {
		o.Prefix = prefix
	}
}

// Parse reads the process environment into v on every call. Nothing is
// cached, so configuration is resolved when the caller asks for it.
//
// Example:
//
//	type ClientConfig struct {
//		APIKey  string `env:"API_KEY"`
//		BaseURL string `env:"API_BASE_URL" envDefault:"https://api.vortexsoftware.com"`
//	}
//
//	var cfg ClientConfig
//	if err := config.Parse(&cfg, config.WithPrefix("VORTEX_")); err != nil {
//		// Handle error
//	}
func Parse[T any](v *T, opts ...ParseOption) error {
	if v == nil {
		return ErrNilPointer
	}

	var o env.Options
	for _, opt := range opts {
		opt(&o)
	}

	if err := env.ParseWithOptions(v, o); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}
