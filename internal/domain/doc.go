// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/item).
// This root package holds sentinel errors, validation types, and the generic
// Result type that every asynchronous load delivers.
package domain
