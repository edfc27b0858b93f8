package acl

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jsamuelsen11/go-item-loader/internal/domain"
)

// dtoValidator checks downstream payloads against the validate tags on the
// DTOs. Field names are reported by their JSON names.
var dtoValidator = newDTOValidator()

func newDTOValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateDTO rejects a payload that breaks its schema. The error wraps
// domain.ErrMalformed and carries a *domain.ValidationError keyed by JSON
// path (e.g. "friends[2].phone").
func validateDTO(dto any) error {
	err := dtoValidator.Struct(dto)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", domain.ErrMalformed, err)
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fieldPath(fe.Namespace())] = describe(fe)
	}
	return fmt.Errorf("%w: %w", domain.ErrMalformed, &domain.ValidationError{Fields: fields})
}

// fieldPath drops the leading struct name from a validator namespace.
func fieldPath(namespace string) string {
	_, path, found := strings.Cut(namespace, ".")
	if !found {
		return namespace
	}
	return path
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return domain.MsgRequired
	case "iso4217":
		return "must be an ISO 4217 currency code"
	case "datetime":
		return "must be an RFC 3339 timestamp"
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
