package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/konform/pkg/config"
)

type testConfig struct {
	Name    string `env:"NAME" envDefault:"default_value"`
	Workers int    `env:"WORKERS" envDefault:"42"`
	Debug   bool   `env:"DEBUG" envDefault:"true"`
}

type requiredConfig struct {
	Required string `env:"REQUIRED_VALUE,required"`
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("uses defaults when variables are missing", func(t *testing.T) {
		cfg, err := config.Load[testConfig](config.WithEnvironment(map[string]string{}))
		require.NoError(t, err)
		assert.Equal(t, "default_value", cfg.Name)
		assert.Equal(t, 42, cfg.Workers)
		assert.True(t, cfg.Debug)
	})

	t.Run("parses provided variables", func(t *testing.T) {
		cfg, err := config.Load[testConfig](config.WithEnvironment(map[string]string{
			"NAME":    "test_value",
			"WORKERS": "100",
			"DEBUG":   "false",
		}))
		require.NoError(t, err)
		assert.Equal(t, "test_value", cfg.Name)
		assert.Equal(t, 100, cfg.Workers)
		assert.False(t, cfg.Debug)
	})

	t.Run("applies prefix", func(t *testing.T) {
		cfg, err := config.Load[testConfig](
			config.WithPrefix("APP_"),
			config.WithEnvironment(map[string]string{"APP_WORKERS": "7", "WORKERS": "9"}),
		)
		require.NoError(t, err)
		assert.Equal(t, 7, cfg.Workers)
	})

	t.Run("fails on missing required variable", func(t *testing.T) {
		_, err := config.Load[requiredConfig](config.WithEnvironment(map[string]string{}))
		require.Error(t, err)
		assert.True(t, errors.Is(err, config.ErrParsingConfig))
	})

	t.Run("fails on unparsable value", func(t *testing.T) {
		_, err := config.Load[testConfig](config.WithEnvironment(map[string]string{"WORKERS": "many"}))
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("required if no default", func(t *testing.T) {
		type cfgNoDefault struct {
			Host string `env:"HOST"`
		}
		_, err := config.Load[cfgNoDefault](
			config.WithEnvironment(map[string]string{}),
			config.WithRequiredIfNoDefault(),
		)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})
}

func TestLoad_EnvFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("NAME=from_file\nWORKERS=3\n"), 0o600))

	t.Run("reads values from file", func(t *testing.T) {
		cfg, err := config.Load[testConfig](
			config.WithEnvironment(map[string]string{}),
			config.WithEnvFiles(path),
		)
		require.NoError(t, err)
		assert.Equal(t, "from_file", cfg.Name)
		assert.Equal(t, 3, cfg.Workers)
	})

	t.Run("environment wins over file", func(t *testing.T) {
		cfg, err := config.Load[testConfig](
			config.WithEnvironment(map[string]string{"WORKERS": "11"}),
			config.WithEnvFiles(path),
		)
		require.NoError(t, err)
		assert.Equal(t, "from_file", cfg.Name)
		assert.Equal(t, 11, cfg.Workers)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := config.Load[testConfig](
			config.WithEnvironment(map[string]string{}),
			config.WithEnvFiles(filepath.Join(dir, "missing.env")),
		)
		assert.ErrorIs(t, err, config.ErrReadingEnvFile)
	})
}

func TestLoad_ProcessEnvironment(t *testing.T) {
	t.Setenv("KONFORM_TEST_NAME", "from_process")

	cfg, err := config.Load[testConfig](config.WithPrefix("KONFORM_TEST_"))
	require.NoError(t, err)
	assert.Equal(t, "from_process", cfg.Name)
}
