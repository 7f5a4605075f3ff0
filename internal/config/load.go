package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/jobtrack-api/internal/cron"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. JOBTRACK_SERVER_PORT.
const EnvPrefix = "JOBTRACK"

var defaults = map[string]any{
	"server.port":             8080,
	"server.log_level":        "info",
	"server.log_format":       "json",
	"server.environment":      "development",
	"server.shutdown_timeout": "10s",

	"pipeline.intake_min":   "1s",
	"pipeline.intake_max":   "2s",
	"pipeline.analysis_min": "2s",
	"pipeline.analysis_max": "4s",

	"eviction.schedule": cron.DefaultEvictionSchedule,
	"eviction.max_age":  cron.DefaultEvictionMaxAge.String(),

	"metrics.enabled": true,
	"metrics.path":    "/metrics",
}

// NewViper returns a viper instance with defaults and environment binding applied.
// Callers may bind command-line flags onto it before passing it to LoadFrom.
func NewViper() *viper.Viper {
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load configuration from defaults, an optional config file, and environment variables.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load(path string) (*Config, error) {
	return LoadFrom(NewViper(), path)
}

// LoadFrom reads the optional config file at path into v, then unmarshals and
// validates the result. An empty path skips file loading.
func LoadFrom(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) {
				return nil, fmt.Errorf("config file not found: %w", err)
			}
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	validate := validator.New()
	if err := validate.RegisterValidation("cronspec", func(fl validator.FieldLevel) bool {
		return cron.ValidateSchedule(fl.Field().String()) == nil
	}); err != nil {
		return fmt.Errorf("failed to register validators: %w", err)
	}

	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}
