// Package config resolves eppctl runtime settings from the environment.
//
// eppctl takes all of its per-invocation input from command-line flags; the
// environment only carries overrides that are awkward as flags, such as
// pointing discovery at a staged sysfs tree during development.
package config

import (
	"fmt"
	"os"

	"github.com/eppctl/eppctl/internal/sys/cpufreq"
)

// Environment variables recognized by eppctl.
const (
	// EnvCPURoot overrides the base directory scanned for per-CPU
	// control files. Used for testing against a staged tree.
	EnvCPURoot = "EPPCTL_CPU_ROOT"

	// EnvLogLevel overrides the diagnostic log level.
	EnvLogLevel = "EPPCTL_LOG_LEVEL"
)

// Config holds resolved runtime settings.
type Config struct {
	// CPURoot is the base directory scanned for CPU entries.
	CPURoot string

	// LogLevel is the zerolog level name (trace, debug, info, warn, error).
	LogLevel string
}

// Default returns a config with production defaults.
func Default() *Config {
	return &Config{
		CPURoot:  cpufreq.DefaultRoot,
		LogLevel: "info",
	}
}

// FromEnv returns the default config with any environment overrides applied.
func FromEnv() *Config {
	cfg := Default()
	if root := os.Getenv(EnvCPURoot); root != "" {
		cfg.CPURoot = root
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.LogLevel = level
	}
	return cfg
}

// Validate checks that the config values are usable.
func (c *Config) Validate() error {
	if c.CPURoot == "" {
		return fmt.Errorf("cpu root must not be empty")
	}
	switch c.LogLevel {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q (expected trace, debug, info, warn, or error)", c.LogLevel)
	}
	return nil
}
