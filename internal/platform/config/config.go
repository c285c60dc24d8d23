// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Bridge    BridgeConfig    `koanf:"bridge"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// BridgeConfig holds settings for the native helper process bridge.
type BridgeConfig struct {
	// BinaryName is the helper executable's file name, resolved against
	// the candidate search directories.
	BinaryName string `koanf:"binary_name"`
	// BinaryPath, when set, pins the helper to an exact path and disables
	// the candidate search.
	BinaryPath string `koanf:"binary_path"`
	// SearchDirs are extra directories to probe before the built-in
	// candidates (project bin/, /usr/local/bin, /opt/homebrew/bin).
	SearchDirs []string `koanf:"search_dirs"`
	// InvokeTimeout bounds a single helper invocation.
	InvokeTimeout time.Duration `koanf:"invoke_timeout"`
	// PromptTimeout bounds the system permission dialog trigger. Dialogs
	// wait on a human, so this is minutes rather than seconds.
	PromptTimeout time.Duration `koanf:"prompt_timeout"`
	// Debug exposes raw system error details in API responses.
	Debug bool `koanf:"debug"`

	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
}

// RateLimitConfig holds helper invocation rate limit settings.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
