package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Tags reported by the struct-level rules below.
const (
	tagRedisRequired = "required_for_redis"
	tagBurstRequired = "required_for_rate_limit"
	tagOTLPEndpoint  = "required_for_otlp"
	tagExporter      = "exporter"
)

var configValidator = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("koanf")
	})
	v.RegisterStructValidation(validateCache, CacheConfig{})
	v.RegisterStructValidation(validateRateLimit, RateLimitConfig{})
	v.RegisterStructValidation(validateTelemetry, TelemetryConfig{})
	return v
}

// Validate reports every invalid setting at once, one joined error per
// setting, each prefixed with its dotted key.
func (c *Config) Validate() error {
	err := configValidator.Struct(c)

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	errs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, fmt.Errorf("%s %s", configKey(fe.Namespace()), explain(fe)))
	}
	return errors.Join(errs...)
}

// validateCache checks the Redis settings only when Redis is selected.
func validateCache(sl validator.StructLevel) {
	c, _ := sl.Current().Interface().(CacheConfig)
	if c.Driver != CacheDriverRedis {
		return
	}
	if c.Redis.Addr == "" {
		sl.ReportError(c.Redis.Addr, "redis.addr", "Addr", tagRedisRequired, "")
	}
	if c.Redis.Key == "" {
		sl.ReportError(c.Redis.Key, "redis.key", "Key", tagRedisRequired, "")
	}
	if c.Redis.TTL < 0 {
		sl.ReportError(c.Redis.TTL, "redis.ttl", "TTL", "min", "0")
	}
	if c.Redis.OpTimeout <= 0 {
		sl.ReportError(c.Redis.OpTimeout, "redis.op_timeout", "OpTimeout", "gt", "0")
	}
}

func validateRateLimit(sl validator.StructLevel) {
	rl, _ := sl.Current().Interface().(RateLimitConfig)
	if rl.RequestsPerSecond > 0 && rl.BurstSize < 1 {
		sl.ReportError(rl.BurstSize, "burst_size", "BurstSize", tagBurstRequired, "")
	}
}

// validateTelemetry checks exporter settings only when telemetry is on.
func validateTelemetry(sl validator.StructLevel) {
	t, _ := sl.Current().Interface().(TelemetryConfig)
	if !t.Enabled {
		return
	}
	switch t.Exporter {
	case "stdout":
	case "otlp":
		if t.Endpoint == "" {
			sl.ReportError(t.Endpoint, "endpoint", "Endpoint", tagOTLPEndpoint, "")
		}
	default:
		sl.ReportError(t.Exporter, "exporter", "Exporter", tagExporter, "stdout otlp")
	}
}

// configKey drops the root struct name from a validator namespace:
// "Config.server.port" becomes "server.port".
func configKey(namespace string) string {
	_, key, found := strings.Cut(namespace, ".")
	if !found {
		return namespace
	}
	return key
}

func explain(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be empty"
	case tagRedisRequired:
		return "must not be empty when cache.driver is redis"
	case tagBurstRequired:
		return "must be at least 1 when rate limiting is on"
	case tagOTLPEndpoint:
		return "must not be empty when exporter is otlp"
	case "oneof", tagExporter:
		return fmt.Sprintf("must be one of [%s], got %q", fe.Param(), fmt.Sprint(fe.Value()))
	case "min":
		return fmt.Sprintf("must be at least %s, got %v", fe.Param(), fe.Value())
	case "max":
		return fmt.Sprintf("must be at most %s, got %v", fe.Param(), fe.Value())
	case "gt":
		return fmt.Sprintf("must be greater than %s, got %v", fe.Param(), fe.Value())
	case "http_url":
		return fmt.Sprintf("must be an http or https URL, got %q", fmt.Sprint(fe.Value()))
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
