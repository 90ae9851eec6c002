package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"invalid", fmt.Errorf("save: %w", ErrInvalidInput), http.StatusBadRequest},
		{"not found", ErrNotFound, http.StatusNotFound},
		{"conflict", New(ErrConflict, "A Student with this Id already exists", errors.New("pg 23505")), http.StatusConflict},
		{"unavailable", Unavailable(errors.New("dial tcp: refused")), http.StatusServiceUnavailable},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := HTTPStatus(tc.err); got != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.want, got)
		}
	}
}

func TestError_UnwrapsKindAndCause(t *testing.T) {
	cause := errors.New("driver says no")
	err := New(ErrConflict, "duplicate", cause)

	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected errors.Is(err, ErrConflict)")
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to stay reachable")
	}
	if PublicMessage(err) != "duplicate" {
		t.Fatalf("unexpected public message %q", PublicMessage(err))
	}
}

func TestUnavailable_DoesNotDoubleWrap(t *testing.T) {
	first := Unavailable(errors.New("timeout"))
	second := Unavailable(first)
	if first != second {
		t.Fatalf("expected the same error back")
	}
	if Unavailable(nil) != nil {
		t.Fatalf("expected nil for nil")
	}
}

func TestPublicMessage_HidesCause(t *testing.T) {
	err := Unavailable(errors.New("password authentication failed for user root"))
	if got := PublicMessage(err); got != "service unavailable" {
		t.Fatalf("unexpected message %q", got)
	}
}
