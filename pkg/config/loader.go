package config

import (
	"errors"
	"maps"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	prefix          string
	envFiles        []string
	environment     map[string]string
	requiredIfNoDef bool
}

// WithPrefix prepends prefix to every env tag of the target struct.
func WithPrefix(prefix string) Option {
	return func(o *loadOptions) { o.prefix = prefix }
}

// WithEnvFiles reads variables from the given .env files. Values already
// present in the environment win over file values.
func WithEnvFiles(files ...string) Option {
	return func(o *loadOptions) {
		o.envFiles = append(o.envFiles, files...)
	}
}

// WithEnvironment replaces the process environment as the variable source.
// Handy for hermetic tests.
func WithEnvironment(vars map[string]string) Option {
	return func(o *loadOptions) {
		if vars != nil {
			o.environment = maps.Clone(vars)
		}
	}
}

// WithRequiredIfNoDefault treats every field without envDefault as required.
func WithRequiredIfNoDefault() Option {
	return func(o *loadOptions) { o.requiredIfNoDef = true }
}

// Load parses environment variables into a new T based on its env tags.
//
// Example:
//
//	type ValidatorConfig struct {
//		Parallelism int    `env:"PARALLELISM" envDefault:"1"`
//		LogLevel    string `env:"LOG_LEVEL"`
//	}
//
//	cfg, err := config.Load[ValidatorConfig](config.WithPrefix("KONFORM_"))
func Load[T any](opts ...Option) (T, error) {
	var zero T

	o := &loadOptions{}
	for _, opt := range opts {
		opt(o)
	}

	vars := o.environment
	if vars == nil {
		vars = env.ToMap(os.Environ())
	}

	if len(o.envFiles) > 0 {
		fileVars, err := godotenv.Read(o.envFiles...)
		if err != nil {
			return zero, errors.Join(ErrReadingEnvFile, err)
		}
		maps.Copy(fileVars, vars)
		vars = fileVars
	}

	cfg, err := env.ParseAsWithOptions[T](env.Options{
		Environment:     vars,
		Prefix:          o.prefix,
		RequiredIfNoDef: o.requiredIfNoDef,
	})
	if err != nil {
		return zero, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}
