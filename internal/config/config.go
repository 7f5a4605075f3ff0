package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Pipeline PipelineConfig `mapstructure:"pipeline" validate:"required"`
	Eviction EvictionConfig `mapstructure:"eviction" validate:"required"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel        string        `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	LogFormat       string        `mapstructure:"log_format" validate:"required,oneof=json text"`
	Environment     string        `mapstructure:"environment" validate:"required"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// PipelineConfig bounds the simulated delays of the job lifecycle.
// A zero range disables the corresponding wait.
type PipelineConfig struct {
	IntakeMin   time.Duration `mapstructure:"intake_min" validate:"gte=0"`
	IntakeMax   time.Duration `mapstructure:"intake_max" validate:"gte=0,gtefield=IntakeMin"`
	AnalysisMin time.Duration `mapstructure:"analysis_min" validate:"gte=0"`
	AnalysisMax time.Duration `mapstructure:"analysis_max" validate:"gte=0,gtefield=AnalysisMin"`
}

// EvictionConfig controls the periodic sweep of old jobs.
type EvictionConfig struct {
	Schedule string        `mapstructure:"schedule" validate:"required,cronspec"`
	MaxAge   time.Duration `mapstructure:"max_age" validate:"gt=0"`
}

// MetricsConfig controls the Prometheus exposition endpoint.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path" validate:"required,startswith=/"`
}
