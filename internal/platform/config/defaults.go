package config

const (
	defaultServerPort = 8080

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultFriendsRetries   = 2
	defaultTransfersRetries = 1

	defaultDeliveryQueueSize = 64
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by every later layer.
func defaults() map[string]any {
	return map[string]any{
		"server.host":             "0.0.0.0",
		"server.port":             defaultServerPort,
		"server.read_timeout":     "5s",
		"server.write_timeout":    "30s",
		"server.idle_timeout":     "120s",
		"server.shutdown_timeout": "15s",

		"log.level":  "info",
		"log.format": "json",

		"client.base_url":                        "http://localhost:8081",
		"client.timeout":                         "10s",
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"client.rate_limit.requests_per_second":  0,
		"client.rate_limit.burst_size":           0,

		"cache.driver":           CacheDriverMemory,
		"cache.redis.addr":       "localhost:6379",
		"cache.redis.password":   "",
		"cache.redis.db":         0,
		"cache.redis.key":        "items:friends",
		"cache.redis.ttl":        "24h",
		"cache.redis.op_timeout": "2s",

		"user.premium": false,

		"policy.friends_retries":   defaultFriendsRetries,
		"policy.transfers_retries": defaultTransfersRetries,
		"policy.cards_retries":     0,

		"delivery.queue_size": defaultDeliveryQueueSize,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "item-loader",
	}
}
