package domain_test

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/go-item-loader/internal/domain"
)

func TestResult_Success(t *testing.T) {
	t.Parallel()

	r := domain.Success([]string{"a", "b"})

	if !r.IsSuccess() {
		t.Fatal("IsSuccess() = false, want true")
	}
	got, err := r.Get()
	if err != nil {
		t.Fatalf("Get() error = %v, want nil", err)
	}
	if len(got) != 2 || got[0] != "a" {
		t.Errorf("Get() value = %v, want [a b]", got)
	}
	if r.Err() != nil {
		t.Errorf("Err() = %v, want nil", r.Err())
	}
}

func TestResult_Failure(t *testing.T) {
	t.Parallel()

	cause := errors.New("timeout")
	r := domain.Failure[[]string](cause)

	if r.IsSuccess() {
		t.Fatal("IsSuccess() = true, want false")
	}
	if r.Err() != cause {
		t.Errorf("Err() = %v, want the original error", r.Err())
	}
	if r.Value() != nil {
		t.Errorf("Value() = %v, want nil", r.Value())
	}
}

func TestResult_FailureWithNilErrorIsStillFailure(t *testing.T) {
	t.Parallel()

	r := domain.Failure[int](nil)

	if r.IsSuccess() {
		t.Fatal("Failure(nil).IsSuccess() = true, want false")
	}
	if r.Err() == nil {
		t.Fatal("Failure(nil).Err() = nil, want non-nil")
	}
}

func TestMapResult(t *testing.T) {
	t.Parallel()

	t.Run("maps success", func(t *testing.T) {
		t.Parallel()

		r := domain.MapResult(domain.Success(21), func(n int) int { return n * 2 })
		if r.Value() != 42 {
			t.Errorf("Value() = %d, want 42", r.Value())
		}
	})

	t.Run("forwards failure unchanged", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("boom")
		called := false
		r := domain.MapResult(domain.Failure[int](cause), func(n int) string {
			called = true
			return "x"
		})
		if called {
			t.Error("mapping function called for a failure")
		}
		if r.Err() != cause {
			t.Errorf("Err() = %v, want %v", r.Err(), cause)
		}
	})
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	err := &domain.ValidationError{Fields: map[string]string{
		"name":  domain.MsgRequired,
		"phone": domain.MsgRequired,
	}}

	if !errors.Is(err, domain.ErrValidation) {
		t.Error("errors.Is(err, ErrValidation) = false, want true")
	}
	want := "validation error: name: is required; phone: is required"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestInvalidField(t *testing.T) {
	t.Parallel()

	err := domain.InvalidField("index", "must be a non-negative integer")

	var verr *domain.ValidationError
	if !errors.As(err, &verr) || len(verr.Fields) != 1 {
		t.Fatalf("InvalidField() = %#v, want one field", err)
	}
	if got, want := err.Error(), "validation error: index: must be a non-negative integer"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if got := (&domain.ValidationError{}).Error(); got != "validation error" {
		t.Errorf("empty Error() = %q, want %q", got, "validation error")
	}
}
