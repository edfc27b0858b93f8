// Package acl implements the Anti-Corruption Layer that translates between
// the downstream items API representations and domain types. Per-resource
// DTOs and translators live in subpackages (acl/friend, acl/card,
// acl/transfer); the client, shared error mapping, and DTO validation live
// here.
package acl

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/go-item-loader/internal/domain"
)

// maxProblemSize caps how much of an error body is read.
const maxProblemSize = 64 << 10

// StatusError is a non-200 answer from the items API. It unwraps to
// domain.ErrUpstream and to the sentinel the status maps to, or to a
// *domain.ValidationError when the API named the offending fields.
type StatusError struct {
	Status int
	Detail string
	kind   error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("items API answered %d (%s): %v", e.Status, e.Detail, e.kind)
}

func (e *StatusError) Unwrap() []error {
	return []error{domain.ErrUpstream, e.kind}
}

// problem is the subset of an RFC 9457 body the loader reads.
type problem struct {
	Detail string         `json:"detail"`
	Errors []problemField `json:"errors"`
}

type problemField struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// TranslateHTTPError maps a non-200 items API response to a *StatusError.
// The loader only reads, so statuses map as follows:
//
//	204                 domain.ErrNoData (nothing to list)
//	400, 422            domain.ErrValidation, with fields when given
//	401, 403            domain.ErrForbidden
//	404                 domain.ErrNotFound
//	408, 429, 5xx       domain.ErrUnavailable (worth retrying)
//	anything else       domain.ErrMalformed (protocol violation)
func TranslateHTTPError(resp *http.Response) error {
	p := readProblem(resp)

	detail := p.Detail
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	return &StatusError{
		Status: resp.StatusCode,
		Detail: detail,
		kind:   statusKind(resp.StatusCode, p.Errors),
	}
}

func statusKind(status int, fields []problemField) error {
	switch {
	case status == http.StatusNoContent:
		return domain.ErrNoData
	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity:
		if len(fields) > 0 {
			return toValidationError(fields)
		}
		return domain.ErrValidation
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return domain.ErrForbidden
	case status == http.StatusNotFound:
		return domain.ErrNotFound
	case status == http.StatusRequestTimeout, status == http.StatusTooManyRequests,
		status >= http.StatusInternalServerError:
		return domain.ErrUnavailable
	default:
		return domain.ErrMalformed
	}
}

// IsRetryable reports whether err is a StatusError a later attempt might
// not repeat.
func IsRetryable(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && errors.Is(se.kind, domain.ErrUnavailable)
}

// readProblem decodes an application/problem+json body. Any other body,
// or one that does not parse, yields an empty problem.
func readProblem(resp *http.Response) problem {
	if resp.Body == nil {
		return problem{}
	}
	mediaType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/problem+json" {
		return problem{}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxProblemSize))
	if err != nil {
		return problem{}
	}
	var p problem
	if err := json.Unmarshal(body, &p); err != nil {
		return problem{}
	}
	return p
}

// toValidationError keys fields by their location with the "query." or
// "body." prefix removed.
func toValidationError(fields []problemField) *domain.ValidationError {
	out := make(map[string]string, len(fields))
	for _, f := range fields {
		name := strings.TrimPrefix(strings.TrimPrefix(f.Location, "query."), "body.")
		out[name] = f.Message
	}
	return &domain.ValidationError{Fields: out}
}
