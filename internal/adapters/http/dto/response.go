// Package dto provides HTTP response data transfer objects and RFC 9457
// Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/go-item-loader/internal/domain/item"
	"github.com/jsamuelsen11/go-item-loader/internal/ports"
)

// ScreenListResponse lists the available screens in display order.
type ScreenListResponse struct {
	Screens []string `json:"screens"`
	Count   int      `json:"count"`
}

// ToScreenListResponse converts the configured screens to a response DTO.
func ToScreenListResponse(screens []ports.Screen) ScreenListResponse {
	names := make([]string, len(screens))
	for i, s := range screens {
		names[i] = s.String()
	}
	return ScreenListResponse{Screens: names, Count: len(names)}
}

// ItemResponse is one display item. Index is the position to pass to the
// select endpoint.
type ItemResponse struct {
	Index    int    `json:"index"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// ItemListResponse is the delivered list of one screen.
type ItemListResponse struct {
	Screen string         `json:"screen"`
	Items  []ItemResponse `json:"items"`
	Count  int            `json:"count"`
}

// ToItemListResponse converts delivered display items to a response DTO.
func ToItemListResponse(screen ports.Screen, items []item.DisplayItem) ItemListResponse {
	out := make([]ItemResponse, len(items))
	for i, it := range items {
		out[i] = ItemResponse{Index: i, Title: it.Title, Subtitle: it.Subtitle}
	}
	return ItemListResponse{Screen: screen.String(), Items: out, Count: len(out)}
}

// FriendResponse is the detail of a selected friend.
type FriendResponse struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// CardResponse is the detail of a selected card.
type CardResponse struct {
	Number string `json:"number"`
	Holder string `json:"holder"`
}

// TransferResponse is the detail of a selected transfer. Amount is a
// decimal string so no precision is lost in transit.
type TransferResponse struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currency_code"`
	Description  string `json:"description"`
	Date         string `json:"date"`
	Counterparty string `json:"counterparty"`
	Outgoing     bool   `json:"outgoing"`
}

// SelectionResponse is the detail routed to by the last selection on a
// screen. Exactly one of Friend, Card, and Transfer is present.
type SelectionResponse struct {
	Screen   string            `json:"screen"`
	Kind     string            `json:"kind"`
	Friend   *FriendResponse   `json:"friend,omitempty"`
	Card     *CardResponse     `json:"card,omitempty"`
	Transfer *TransferResponse `json:"transfer,omitempty"`
}

// ToSelectionResponse converts a routed selection to a response DTO.
func ToSelectionResponse(sel *ports.Selection) SelectionResponse {
	resp := SelectionResponse{
		Screen: sel.Screen.String(),
		Kind:   string(sel.Kind),
	}
	switch {
	case sel.Friend != nil:
		resp.Friend = &FriendResponse{Name: sel.Friend.Name, Phone: sel.Friend.Phone}
	case sel.Card != nil:
		resp.Card = &CardResponse{Number: sel.Card.Number, Holder: sel.Card.Holder}
	case sel.Transfer != nil:
		t := sel.Transfer
		resp.Transfer = &TransferResponse{
			Amount:       t.Amount.String(),
			CurrencyCode: t.CurrencyCode,
			Description:  t.Description,
			Date:         t.Date.Format(time.RFC3339),
			Counterparty: t.Counterparty,
			Outgoing:     t.Outgoing,
		}
	}
	return resp
}

// RefreshResponse reports the outcome of reloading every screen.
type RefreshResponse struct {
	Screens   []ScreenOutcomeResponse `json:"screens"`
	Total     int                     `json:"total"`
	Succeeded int                     `json:"succeeded"`
	Failed    int                     `json:"failed"`
}

// ScreenOutcomeResponse is the outcome of reloading one screen.
type ScreenOutcomeResponse struct {
	Screen string `json:"screen"`
	Count  int    `json:"count"`
	Error  string `json:"error,omitempty"`
}

// ToRefreshResponse converts per-screen load outcomes to a response DTO.
func ToRefreshResponse(outcomes []ports.ScreenOutcome) RefreshResponse {
	resp := RefreshResponse{
		Screens: make([]ScreenOutcomeResponse, len(outcomes)),
		Total:   len(outcomes),
	}
	for i, o := range outcomes {
		entry := ScreenOutcomeResponse{Screen: o.Screen.String(), Count: len(o.Items)}
		if o.Err != nil {
			entry.Error = o.Err.Error()
			resp.Failed++
		} else {
			resp.Succeeded++
		}
		resp.Screens[i] = entry
	}
	return resp
}
