package acl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/go-item-loader/internal/domain"
	"github.com/jsamuelsen11/go-item-loader/internal/platform/httpclient"
)

// Requester turns items API exchanges into decoded payloads or domain
// errors.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester returns a Requester sending through client.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	return &Requester{client: client, logger: logger}
}

// Get fetches path from the items API and decodes a 200 answer into dst.
//
// Every error wraps a domain sentinel. Non-200 answers go through
// TranslateHTTPError. Transport failures and breaker rejections are
// domain.ErrUnavailable, and bodies that do not decode are
// domain.ErrMalformed. Context errors pass through unchanged.
func (r *Requester) Get(ctx context.Context, path string, dst any) error {
	resp, err := r.client.Get(ctx, path)
	if resp != nil {
		defer r.closeBody(ctx, resp)
	}
	if resp == nil {
		r.logger.ErrorContext(ctx, "items API unreachable",
			slog.String("operation", "Requester.Get"),
			slog.String("path", path),
			slog.Any("error", err),
		)
		return translateTransportError(path, err)
	}

	if resp.StatusCode != http.StatusOK {
		r.logger.WarnContext(ctx, "items API refused request",
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
		)
		return TranslateHTTPError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decoding GET %s: %w: %w", path, domain.ErrMalformed, err)
	}
	return nil
}

func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "closing response body", slog.Any("error", err))
	}
}

// translateTransportError maps failures that produced no response.
// Context errors pass through so callers can tell a give-up from an outage.
func translateTransportError(path string, err error) error {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("GET %s: %w", path, err)
	case httpclient.IsCircuitOpen(err):
		return fmt.Errorf("GET %s: circuit open: %w", path, domain.ErrUnavailable)
	default:
		return fmt.Errorf("GET %s: %w: %w", path, domain.ErrUnavailable, err)
	}
}
