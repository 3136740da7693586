// Package config loads typed configuration from environment variables.
//
// It wraps `github.com/caarlos0/env/v11` for struct-tag parsing and
// `github.com/joho/godotenv` for reading `.env` files. Unlike a global
// loader it keeps no state: every call to Load parses a fresh value, and the
// variable source can be swapped with WithEnvironment so tests never touch
// the process environment.
//
// # Usage
//
//	type Config struct {
//	    Parallelism int    `env:"PARALLELISM" envDefault:"1"`
//	    LogFormat   string `env:"LOG_FORMAT"`
//	}
//
//	cfg, err := config.Load[Config](
//	    config.WithPrefix("KONFORM_"),
//	    config.WithEnvFiles(".env"),
//	)
//
// # Error Handling
//
// Failures are joined with ErrParsingConfig or ErrReadingEnvFile so callers
// can branch with errors.Is.
package config
