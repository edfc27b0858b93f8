package middleware

import (
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/jsamuelsen11/go-item-loader/internal/platform/logging"
)

const redacted = "[REDACTED]"

// HeaderGroup renders headers as a "headers" log group sorted by name.
// Credentials are replaced with [REDACTED] and repeated values are joined
// with commas.
func HeaderGroup(headers http.Header) slog.Attr {
	names := make([]string, 0, len(headers))
	for name := range headers {
		names = append(names, name)
	}
	sort.Strings(names)

	attrs := make([]slog.Attr, 0, len(names))
	for _, name := range names {
		value := redacted
		if !logging.IsSensitiveHeader(name) {
			value = strings.Join(headers[name], ",")
		}
		attrs = append(attrs, slog.String(name, value))
	}
	return slog.Attr{Key: "headers", Value: slog.GroupValue(attrs...)}
}
