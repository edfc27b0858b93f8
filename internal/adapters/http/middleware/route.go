package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// unmatchedRoute labels requests no route matched.
const unmatchedRoute = "unmatched"

// route reports the matched chi pattern and screen parameter for r. It is
// only meaningful after the router has served r.
func route(r *http.Request) (pattern, screen string) {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return unmatchedRoute, ""
	}
	pattern = rctx.RoutePattern()
	if pattern == "" {
		pattern = unmatchedRoute
	}
	return pattern, rctx.URLParam("screen")
}
