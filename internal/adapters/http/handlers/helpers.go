package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-item-loader/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-item-loader/internal/domain"
	"github.com/jsamuelsen11/go-item-loader/internal/ports"
)

// parseScreen extracts the screen path parameter. Unknown screen names are
// left for the service to reject with domain.ErrNotFound.
func parseScreen(r *http.Request) (ports.Screen, error) {
	raw := chi.URLParam(r, "screen")
	if raw == "" {
		return "", domain.InvalidField("screen", domain.MsgRequired)
	}
	return ports.Screen(raw), nil
}

// parseIndex extracts a non-negative int path parameter from the chi URL params.
func parseIndex(r *http.Request, param string) (int, error) {
	raw := chi.URLParam(r, param)
	idx, err := strconv.Atoi(raw)
	if err != nil || idx < 0 {
		return 0, domain.InvalidField(param, "must be a non-negative integer")
	}
	return idx, nil
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// NotFound answers requests no route matched.
func NotFound(w http.ResponseWriter, r *http.Request) {
	dto.WriteProblem(w, r, http.StatusNotFound, "no route for "+r.URL.Path)
}

// MethodNotAllowed answers requests whose path matched under another method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	dto.WriteProblem(w, r, http.StatusMethodNotAllowed, r.Method+" is not supported on "+r.URL.Path)
}
