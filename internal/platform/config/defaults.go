package config

const (
	defaultServerPort = 8080

	defaultRateLimitRPS   = 10.0
	defaultRateLimitBurst = 5

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "127.0.0.1",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"bridge.binary_name":    "eventkit-cli",
		"bridge.binary_path":    "",
		"bridge.invoke_timeout": "30s",
		// Permission dialogs block on a human decision.
		"bridge.prompt_timeout": "120s",
		"bridge.debug":          false,

		"bridge.rate_limit.requests_per_second": defaultRateLimitRPS,
		"bridge.rate_limit.burst_size":          defaultRateLimitBurst,

		"bridge.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"bridge.circuit_breaker.timeout":         "30s",
		"bridge.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,

		"telemetry.enabled":  false,
		"telemetry.exporter": "stdout",
		"telemetry.endpoint": "",
	}
}
