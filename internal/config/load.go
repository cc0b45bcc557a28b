package config

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/meridianapp/meridian/internal/errors"
)

// viperDecoderOption lets comma-separated environment values decode into
// list fields such as categories.
func viperDecoderOption() viper.DecoderConfigOption {
	return viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToSliceHookFunc(","),
		),
	)
}

// newViperInstance creates a viper instance with the standard Meridian
// setup: defaults, MERIDIAN_ environment prefix, and key replacer.
func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("MERIDIAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// isConfigNotFoundError returns true if the error is a viper config file
// not found error.
func isConfigNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var configNotFoundErr viper.ConfigFileNotFoundError
	return stderrors.As(err, &configNotFoundErr)
}

// Load reads configuration from all available sources with proper
// precedence (environment variables, then the config file, then
// defaults). A missing config file is not an error.
func Load(ctx context.Context) (*Config, error) {
	v := newViperInstance()

	path, err := ConfigPath()
	if err == nil {
		v.SetConfigFile(path)
		if err = v.ReadInConfig(); err != nil && !isConfigNotFoundError(err) && !os.IsNotExist(err) {
			return nil, errors.Wrap(err, "failed to read config file")
		}
	}

	var cfg Config
	if err = v.Unmarshal(&cfg, viperDecoderOption()); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	logger := zerolog.Ctx(ctx).With().Str("component", "config").Logger()
	logger.Debug().
		Str("logging.level", cfg.Logging.Level).
		Int("categories", len(cfg.Categories)).
		Msg("configuration loaded")

	if err = Validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return &cfg, nil
}

// WriteDefault writes the built-in defaults to the config file path if no
// file exists yet. Returns the path written, or the existing path.
func WriteDefault() (string, error) {
	path, err := ConfigPath()
	if err != nil {
		return "", err
	}
	if _, err = os.Stat(path); err == nil {
		return path, nil
	}

	if err = os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return "", errors.Wrap(err, "failed to create config directory")
	}

	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal default config")
	}
	if err = os.WriteFile(path, data, 0o600); err != nil {
		return "", errors.Wrap(err, "failed to write default config")
	}
	return path, nil
}
