// Package http is the inbound HTTP adapter: routes, middleware wiring and
// the server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-item-loader/internal/adapters/http/handlers"
)

// NewRouter mounts the probes and the screens API behind middlewares,
// which run outermost first.
func NewRouter(
	list *handlers.ListHandler,
	health *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares...)
	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	r.Get("/health/live", health.Liveness)
	r.Get("/health/ready", health.Readiness)

	r.Route("/api/v1", func(api chi.Router) {
		api.Get("/screens", list.ListScreens)
		api.Post("/screens:refresh", list.Refresh)
		api.Route("/screens/{screen}", func(screen chi.Router) {
			screen.Get("/items", list.LoadItems)
			screen.Post("/items/{index}/select", list.SelectItem)
			screen.Get("/selection", list.GetSelection)
		})
	})

	return r
}
