package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/go-item-loader/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-item-loader/internal/ports"
)

// ListHandler exposes the headless item lists over HTTP: loading a screen,
// selecting one of its items, and reading back the routed detail.
type ListHandler struct {
	service ports.ListService
}

// NewListHandler creates a new ListHandler with the given service port.
func NewListHandler(service ports.ListService) *ListHandler {
	return &ListHandler{service: service}
}

// ListScreens handles GET /api/v1/screens.
func (h *ListHandler) ListScreens(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dto.ToScreenListResponse(h.service.Screens()))
}

// LoadItems handles GET /api/v1/screens/{screen}/items. Every call runs a
// fresh load; a failed load leaves the previously delivered items in place.
func (h *ListHandler) LoadItems(w http.ResponseWriter, r *http.Request) {
	screen, err := parseScreen(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	items, err := h.service.Load(r.Context(), screen)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToItemListResponse(screen, items))
}

// SelectItem handles POST /api/v1/screens/{screen}/items/{index}/select.
func (h *ListHandler) SelectItem(w http.ResponseWriter, r *http.Request) {
	screen, err := parseScreen(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	index, err := parseIndex(r, "index")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	sel, err := h.service.Select(r.Context(), screen, index)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToSelectionResponse(sel))
}

// GetSelection handles GET /api/v1/screens/{screen}/selection.
func (h *ListHandler) GetSelection(w http.ResponseWriter, r *http.Request) {
	screen, err := parseScreen(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	sel, err := h.service.Selection(screen)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToSelectionResponse(sel))
}

// Refresh handles POST /api/v1/screens:refresh. It always answers 200;
// per-screen failures are reported in the body.
func (h *ListHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.ToRefreshResponse(h.service.LoadAll(r.Context())))
}
