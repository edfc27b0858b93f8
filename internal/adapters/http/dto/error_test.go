package dto_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsamuelsen11/go-item-loader/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-item-loader/internal/domain"
)

// upstreamErr mimics a backend refusal: it is both ErrUpstream and the
// specific kind.
func upstreamErr(kind error) error {
	return fmt.Errorf("items API answered: %w", errors.Join(domain.ErrUpstream, kind))
}

func TestStatusFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "unknown screen", err: fmt.Errorf("screen %q: %w", "pets", domain.ErrNotFound), want: http.StatusNotFound},
		{name: "bad index", err: &domain.ValidationError{Fields: map[string]string{"index": "must be a non-negative integer"}}, want: http.StatusBadRequest},
		{name: "forbidden", err: domain.ErrForbidden, want: http.StatusForbidden},
		{name: "backend down", err: fmt.Errorf("GET /api/v1/cards: %w", domain.ErrUnavailable), want: http.StatusBadGateway},
		{name: "empty cache", err: fmt.Errorf("friends cache: %w", domain.ErrNoData), want: http.StatusServiceUnavailable},
		{name: "deadline", err: fmt.Errorf("loading cards: %w", context.DeadlineExceeded), want: http.StatusGatewayTimeout},
		{name: "backend 404", err: upstreamErr(domain.ErrNotFound), want: http.StatusBadGateway},
		{name: "backend 400", err: upstreamErr(domain.ErrValidation), want: http.StatusBadGateway},
		{name: "backend 403", err: upstreamErr(domain.ErrForbidden), want: http.StatusBadGateway},
		{
			name: "malformed payload with field details",
			err: fmt.Errorf("%w: %w", domain.ErrMalformed,
				&domain.ValidationError{Fields: map[string]string{"friends[0].phone": domain.MsgRequired}}),
			want: http.StatusBadGateway,
		},
		{name: "anything else", err: errors.New("oops"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := dto.StatusFor(tt.err); got != tt.want {
				t.Errorf("StatusFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestNewErrorResponse(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/api/v1/screens/pets/items", http.NoBody)
	err := fmt.Errorf("screen %q: %w", "pets", domain.ErrNotFound)

	got := dto.NewErrorResponse(r, err)

	want := dto.ErrorResponse{
		Type:     "about:blank",
		Title:    "Not Found",
		Status:   http.StatusNotFound,
		Detail:   err.Error(),
		Instance: "/api/v1/screens/pets/items",
	}
	if got.Type != want.Type || got.Title != want.Title || got.Status != want.Status ||
		got.Detail != want.Detail || got.Instance != want.Instance || got.Errors != nil {
		t.Errorf("NewErrorResponse() = %+v, want %+v", got, want)
	}
}

func TestNewErrorResponse_PathDetailsSorted(t *testing.T) {
	t.Parallel()

	verr := &domain.ValidationError{Fields: map[string]string{
		"screen": domain.MsgRequired,
		"index":  "must be a non-negative integer",
	}}
	r := httptest.NewRequest(http.MethodPost, "/api/v1/screens//items/x/select", http.NoBody)

	got := dto.NewErrorResponse(r, verr)

	if len(got.Errors) != 2 {
		t.Fatalf("len(Errors) = %d, want 2", len(got.Errors))
	}
	if got.Errors[0].Location != "path.index" || got.Errors[1].Location != "path.screen" {
		t.Errorf("locations = [%s %s], want [path.index path.screen]", got.Errors[0].Location, got.Errors[1].Location)
	}
}

func TestNewErrorResponse_HidesBackendFieldDetails(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
	}{
		{
			name: "malformed payload",
			err: fmt.Errorf("%w: %w", domain.ErrMalformed,
				&domain.ValidationError{Fields: map[string]string{"cards[0].number": domain.MsgRequired}}),
		},
		{
			name: "backend validation refusal",
			err:  upstreamErr(&domain.ValidationError{Fields: map[string]string{"direction": "invalid"}}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodGet, "/api/v1/screens/cards/items", http.NoBody)
			got := dto.NewErrorResponse(r, tt.err)

			if got.Status != http.StatusBadGateway {
				t.Errorf("Status = %d, want 502", got.Status)
			}
			if got.Errors != nil {
				t.Errorf("Errors = %v, want nil for backend field details", got.Errors)
			}
		})
	}
}

func TestWriteErrorResponse(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/screens/friends/items/x/select", http.NoBody)

	dto.WriteErrorResponse(w, r, &domain.ValidationError{Fields: map[string]string{
		"index": "must be a non-negative integer",
	}})

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want application/problem+json", ct)
	}

	var resp dto.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if len(resp.Errors) != 1 || resp.Errors[0].Location != "path.index" ||
		resp.Errors[0].Message != "must be a non-negative integer" {
		t.Errorf("Errors = %+v, want one path.index detail", resp.Errors)
	}
}
