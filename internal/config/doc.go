// Package config handles configuration loading, parsing, and validation
// from defaults, an optional config file, and JOBTRACK_ environment
// variables. It provides type-safe access to the settings needed by the
// server, the lifecycle pipeline, and the eviction sweeper.
package config
