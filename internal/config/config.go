// Package config provides configuration management for Meridian with
// layered precedence.
//
// Configuration sources are loaded in the following order (highest
// precedence first):
//  1. Environment variables (MERIDIAN_* prefix)
//  2. Config file (~/.meridian/config.yaml)
//  3. Built-in defaults
//
// IMPORTANT: This package may import internal/constants and internal/errors,
// but MUST NOT import internal/domain or other internal packages.
package config

// Config is the root configuration structure for Meridian.
type Config struct {
	// Home overrides the Meridian home directory. Empty means ~/.meridian.
	Home string `yaml:"home" mapstructure:"home"`

	// Logging contains settings for the application log.
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`

	// Categories lists the task categories offered to users. The built-in
	// set is always available; entries here extend it.
	Categories []string `yaml:"categories" mapstructure:"categories"`
}

// LoggingConfig contains settings for the rotating application log.
type LoggingConfig struct {
	// Level sets the minimum log level (trace, debug, info, warn, error).
	// Default: "info"
	Level string `yaml:"level" mapstructure:"level"`

	// MaxSizeMB is the size at which the log file rotates.
	// Default: 10
	MaxSizeMB int `yaml:"max_size_mb" mapstructure:"max_size_mb"`

	// MaxBackups is the number of rotated files to keep.
	// Default: 3
	MaxBackups int `yaml:"max_backups" mapstructure:"max_backups"`

	// MaxAgeDays is the age at which rotated files are deleted.
	// Default: 30
	MaxAgeDays int `yaml:"max_age_days" mapstructure:"max_age_days"`

	// Compress controls gzip compression of rotated files.
	// Default: true
	Compress bool `yaml:"compress" mapstructure:"compress"`
}
