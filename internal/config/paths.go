package config

import (
	"os"
	"path/filepath"

	"github.com/meridianapp/meridian/internal/constants"
	"github.com/meridianapp/meridian/internal/errors"
)

// HomeDir returns the Meridian home directory for the configuration,
// typically ~/.meridian unless overridden.
func (c *Config) HomeDir() (string, error) {
	if c.Home != "" {
		return c.Home, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get home directory")
	}
	return filepath.Join(home, constants.MeridianHome), nil
}

// DataDir returns the directory holding the entity documents.
func (c *Config) DataDir() (string, error) {
	home, err := c.HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, constants.DataDir), nil
}

// LogsDir returns the directory holding the application log.
func (c *Config) LogsDir() (string, error) {
	home, err := c.HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, constants.LogsDir), nil
}

// ConfigPath returns the full path to the configuration file, typically
// ~/.meridian/config.yaml.
func ConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get home directory")
	}
	return filepath.Join(home, constants.MeridianHome, constants.ConfigFileName), nil
}
