package config

import (
	"github.com/spf13/viper"

	"github.com/meridianapp/meridian/internal/constants"
)

// DefaultCategories is the built-in task category list offered when the
// user has not configured their own additions.
var DefaultCategories = []string{
	"Feature",
	"Bug",
	"Maintenance",
	"Documentation",
	"Research",
	"Meeting",
}

// DefaultConfig returns a new Config with the built-in default values.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:      "info",
			MaxSizeMB:  constants.LogMaxSizeMB,
			MaxBackups: constants.LogMaxBackups,
			MaxAgeDays: constants.LogMaxAgeDays,
			Compress:   constants.LogCompress,
		},
		Categories: append([]string{}, DefaultCategories...),
	}
}

// setDefaults registers the built-in defaults on a viper instance so config
// files and environment variables only need to name what they change.
func setDefaults(v *viper.Viper) {
	v.SetDefault("home", "")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.max_size_mb", constants.LogMaxSizeMB)
	v.SetDefault("logging.max_backups", constants.LogMaxBackups)
	v.SetDefault("logging.max_age_days", constants.LogMaxAgeDays)
	v.SetDefault("logging.compress", constants.LogCompress)
	v.SetDefault("categories", DefaultCategories)
}
