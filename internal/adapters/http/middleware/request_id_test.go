package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/go-item-loader/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/go-item-loader/internal/platform/httpclient"
)

// captureRequestID runs one request through RequestID and returns the ID
// the handler saw along with the response.
func captureRequestID(t *testing.T, incoming string) (string, *httptest.ResponseRecorder) {
	t.Helper()

	var seen string
	handler := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = middleware.RequestIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/screens", http.NoBody)
	if incoming != "" {
		req.Header.Set(middleware.RequestIDHeader, incoming)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return seen, rec
}

func TestRequestID_KeepsUsableCallerID(t *testing.T) {
	t.Parallel()

	for _, id := range []string{"incoming-123", "trace:abc.DEF_9", strings.Repeat("a", 128)} {
		seen, rec := captureRequestID(t, id)

		if seen != id {
			t.Errorf("context ID = %q, want caller's %q", seen, id)
		}
		if got := rec.Header().Get(middleware.RequestIDHeader); got != id {
			t.Errorf("response ID = %q, want %q", got, id)
		}
	}
}

func TestRequestID_ReplacesUnusableCallerID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		id   string
	}{
		{name: "missing", id: ""},
		{name: "oversized", id: strings.Repeat("a", 129)},
		{name: "forged log line", id: "abc\nlevel=ERROR"},
		{name: "spaces", id: "two words"},
		{name: "header injection", id: "x\r\nSet-Cookie: a=b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			seen, rec := captureRequestID(t, tt.id)

			if _, err := uuid.Parse(seen); err != nil {
				t.Errorf("context ID = %q, want a generated UUID", seen)
			}
			if got := rec.Header().Get(middleware.RequestIDHeader); got != seen {
				t.Errorf("response ID = %q, want %q", got, seen)
			}
		})
	}
}

func TestRequestID_FreshPerRequest(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for range 50 {
		id, _ := captureRequestID(t, "")
		seen[id] = true
	}
	if len(seen) != 50 {
		t.Errorf("distinct IDs = %d, want 50", len(seen))
	}
}

func TestWithRequestID_ReachesOutboundClient(t *testing.T) {
	t.Parallel()

	ctx := middleware.WithRequestID(context.Background(), "req-7")

	if got := middleware.RequestIDFromContext(ctx); got != "req-7" {
		t.Errorf("RequestIDFromContext() = %q, want req-7", got)
	}
	if got := httpclient.RequestIDFromContext(ctx); got != "req-7" {
		t.Errorf("httpclient.RequestIDFromContext() = %q, want req-7", got)
	}
	if got := middleware.RequestIDFromContext(context.Background()); got != "" {
		t.Errorf("RequestIDFromContext(empty) = %q, want empty", got)
	}
}
