// Package config loads configuration structs from environment variables.
//
// It wraps github.com/joho/godotenv (optional .env files) and
// github.com/caarlos0/env/v11 (struct tags) behind a small generic API:
//
//   - Parse fills a struct from the environment on every call. Nothing is
//     cached in process-wide state.
//   - LoadEnv pulls one or more .env files into the process environment.
//
// # Usage
//
//	type Settings struct {
//	    APIKey  string `env:"API_KEY"`
//	    BaseURL string `env:"API_BASE_URL" envDefault:"https://api.vortexsoftware.com"`
//	}
//
//	var s Settings
//	if err := config.Parse(&s, config.WithPrefix("VORTEX_")); err != nil {
//	    // errors.Is(err, config.ErrParsingConfig)
//	}
package config
