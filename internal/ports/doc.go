// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by
// inbound adapters (HTTP handlers, CLI commands).
// Client ports are implemented by outbound adapters (remote API clients,
// caches) and called by the application layer.
package ports
