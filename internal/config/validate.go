package config

import (
	"strings"

	"github.com/meridianapp/meridian/internal/errors"
)

// validLogLevels are the zerolog level names accepted in configuration.
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks the configuration for invalid or inconsistent values.
// It returns an error describing the first validation failure found.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}

	if err := validateLoggingConfig(&cfg.Logging); err != nil {
		return err
	}

	for _, c := range cfg.Categories {
		if strings.TrimSpace(c) == "" {
			return errors.Wrap(errors.ErrConfigInvalidData, "categories must not contain blank entries")
		}
	}
	return nil
}

func validateLoggingConfig(lc *LoggingConfig) error {
	if !validLogLevels[strings.ToLower(lc.Level)] {
		return errors.Wrapf(errors.ErrConfigInvalidLog, "unknown log level %q", lc.Level)
	}
	if lc.MaxSizeMB <= 0 {
		return errors.Wrap(errors.ErrConfigInvalidLog, "max_size_mb must be positive")
	}
	if lc.MaxBackups < 0 {
		return errors.Wrap(errors.ErrConfigInvalidLog, "max_backups must not be negative")
	}
	if lc.MaxAgeDays < 0 {
		return errors.Wrap(errors.ErrConfigInvalidLog, "max_age_days must not be negative")
	}
	return nil
}
