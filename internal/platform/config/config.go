// Package config loads the service configuration from layered sources and
// validates it. Each setting is addressed by its dotted key (server.port),
// which is also how validation errors name it.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Client    ClientConfig    `koanf:"client"`
	Cache     CacheConfig     `koanf:"cache"`
	User      UserConfig      `koanf:"user"`
	Policy    PolicyConfig    `koanf:"policy"`
	Delivery  DeliveryConfig  `koanf:"delivery"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port" validate:"min=1,max=65535"`
	ReadTimeout  time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"gt=0"`
	IdleTimeout  time.Duration `koanf:"idle_timeout" validate:"min=0"`

	// ShutdownTimeout bounds the drain of in-flight requests on stop.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=debug info warn error"`
	Format string `koanf:"format" validate:"oneof=json text"`
}

// ClientConfig holds settings for the downstream items API client. The
// client makes a single attempt per call; retries are a load policy
// concern (see PolicyConfig).
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url" validate:"required,http_url"`
	Timeout        time.Duration        `koanf:"timeout" validate:"gt=0"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures" validate:"min=1"`
	Timeout       time.Duration `koanf:"timeout" validate:"min=0"`
	HalfOpenLimit int           `koanf:"half_open_limit" validate:"min=0"`
}

// RateLimitConfig holds outbound rate limiting settings. A zero
// RequestsPerSecond disables the limiter.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second" validate:"min=0"`
	BurstSize         int     `koanf:"burst_size" validate:"min=0"`
}

// Cache drivers.
const (
	CacheDriverMemory = "memory"
	CacheDriverRedis  = "redis"
	CacheDriverNone   = "none"
)

// CacheConfig selects and configures the friends cache.
type CacheConfig struct {
	Driver string      `koanf:"driver" validate:"oneof=memory redis none"`
	Redis  RedisConfig `koanf:"redis"`
}

// RedisConfig holds Redis connection and key settings.
type RedisConfig struct {
	Addr      string        `koanf:"addr"`
	Password  string        `koanf:"password"`
	DB        int           `koanf:"db"`
	Key       string        `koanf:"key"`
	TTL       time.Duration `koanf:"ttl"`
	OpTimeout time.Duration `koanf:"op_timeout"`
}

// UserConfig holds the user attributes the load policy depends on.
type UserConfig struct {
	Premium bool `koanf:"premium"`
}

// PolicyConfig holds the per-screen retry counts.
type PolicyConfig struct {
	FriendsRetries   int `koanf:"friends_retries" validate:"min=0"`
	TransfersRetries int `koanf:"transfers_retries" validate:"min=0"`
	CardsRetries     int `koanf:"cards_retries" validate:"min=0"`
}

// DeliveryConfig sizes the delivery loop.
type DeliveryConfig struct {
	QueueSize int `koanf:"queue_size" validate:"min=1"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
