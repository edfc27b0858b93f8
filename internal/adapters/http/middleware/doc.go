// Package middleware provides the inbound HTTP middleware. The router
// installs it in this order:
//
//	Recovery → RequestID → OpenTelemetry → Logging → Timeout → handler
//
// OpenTelemetry and Logging label requests with the chi route pattern
// (e.g. /api/v1/screens/{screen}/items) rather than the raw path, and with
// the screen parameter when the route has one.
package middleware
