package validator

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/konform/pkg/config"
	"github.com/dmitrymomot/konform/pkg/logger"
)

// EnvPrefix is prepended to every Config environment variable.
const EnvPrefix = "KONFORM_"

// Config holds environment-driven defaults for validation passes.
// Empty LogLevel and LogFormat fall back to the Environment's defaults.
type Config struct {
	Parallelism int    `env:"PARALLELISM" envDefault:"1"`
	Environment string `env:"ENV" envDefault:"development"`
	Service     string `env:"SERVICE" envDefault:"konform"`
	LogLevel    string `env:"LOG_LEVEL"`
	LogFormat   string `env:"LOG_FORMAT"`
}

// LoadOptions reads Config from the environment and converts it into
// validation options.
func LoadOptions(opts ...config.Option) ([]Option, error) {
	loadOpts := append([]config.Option{config.WithPrefix(EnvPrefix)}, opts...)
	cfg, err := config.Load[Config](loadOpts...)
	if err != nil {
		return nil, err
	}
	return OptionsFromConfig(cfg)
}

// OptionsFromConfig builds validation options from cfg. logOpts are applied
// after the config-derived logger options.
func OptionsFromConfig(cfg Config, logOpts ...logger.Option) ([]Option, error) {
	if cfg.Parallelism < 1 {
		return nil, fmt.Errorf("%w: parallelism must be at least 1, got %d", ErrInvalidConfig, cfg.Parallelism)
	}

	lopts := []logger.Option{logger.WithEnvironment(cfg.Environment, cfg.Service)}
	if cfg.LogLevel != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
			return nil, errors.Join(ErrInvalidConfig, err)
		}
		lopts = append(lopts, logger.WithLevel(level))
	}
	if cfg.LogFormat != "" {
		format, err := logger.ParseFormat(cfg.LogFormat)
		if err != nil {
			return nil, errors.Join(ErrInvalidConfig, err)
		}
		lopts = append(lopts, logger.WithFormat(format))
	}
	lopts = append(lopts, logOpts...)

	return []Option{
		WithParallelism(cfg.Parallelism),
		WithLogger(logger.New(lopts...)),
	}, nil
}
