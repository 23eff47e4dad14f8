package dterror

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "op, resource and cause",
			err:      Fetch("transport.Fetch", "/api/v1/person/person/20209/", errors.New("connection refused")),
			expected: "transport.Fetch: /api/v1/person/person/20209/: connection refused",
		},
		{
			name:     "validation with message",
			err:      Validation("dturi.Parse", "bogus", "does not match person pattern"),
			expected: "dturi.Parse: bogus: does not match person pattern",
		},
		{
			name:     "not found carries sentinel text",
			err:      NotFound("Client.Person", "/api/v1/person/person/1/"),
			expected: "Client.Person: /api/v1/person/person/1/: resource not found",
		},
		{
			name:     "invariant without resource",
			err:      Invariant("History.Current", "2 open-ended snapshots", nil),
			expected: "History.Current: 2 open-ended snapshots",
		},
		{
			name:     "pagination loop includes page count",
			err:      PaginationLoop("Pager.Next", "/api/v1/person/person/", 7),
			expected: "Pager.Next: /api/v1/person/person/: after 7 pages: pagination loop suspected",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestSentinelMatching(t *testing.T) {
	nf := NotFound("Client.Email", "/api/v1/person/email/none@example.org/")
	if !errors.Is(nf, ErrNotFound) {
		t.Error("errors.Is(NotFound(...), ErrNotFound) = false, want true")
	}
	if !IsNotFound(fmt.Errorf("lookup failed: %w", nf)) {
		t.Error("IsNotFound should match through wrapping")
	}

	loop := PaginationLoop("Pager.Next", "/api/v1/group/group/", 500)
	if !errors.Is(loop, ErrPaginationLoop) {
		t.Error("errors.Is(PaginationLoop(...), ErrPaginationLoop) = false, want true")
	}
	if IsNotFound(loop) {
		t.Error("a pagination loop must not read as not-found")
	}
}

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Category
	}{
		{"validation", Validation("op", "r", "m"), CategoryValidation},
		{"fetch", Fetch("op", "r", errors.New("x")), CategoryFetch},
		{"not found", NotFound("op", "r"), CategoryNotFound},
		{"decode", Decode("op", "r", errors.New("x")), CategoryDecode},
		{"invariant", Invariant("op", "m", nil), CategoryInvariant},
		{"loop", PaginationLoop("op", "r", 3), CategoryPaginationLoop},
		{"wrapped keeps category", fmt.Errorf("outer: %w", Decode("op", "r", errors.New("x"))), CategoryDecode},
		{"foreign error", errors.New("plain"), Category("")},
		{"nil", nil, Category("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CategoryOf(tt.err); got != tt.want {
				t.Errorf("CategoryOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsRetryable(t *testing.T) {
	if !IsRetryable(Fetch("transport.Fetch", "/", errors.New("timeout"))) {
		t.Error("fetch failures must be retryable")
	}
	for _, err := range []error{
		Validation("op", "r", "m"),
		NotFound("op", "r"),
		Decode("op", "r", errors.New("x")),
		Invariant("op", "m", nil),
		PaginationLoop("op", "r", 2),
	} {
		if IsRetryable(err) {
			t.Errorf("IsRetryable(%v) = true, want false", err)
		}
	}
}

func TestUnwrapChain(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := Decode("Client.Person", "/api/v1/person/person/20209/", cause)

	if !errors.Is(err, cause) {
		t.Error("decode error should unwrap to its cause")
	}

	var e *Error
	if !errors.As(fmt.Errorf("resolving: %w", err), &e) {
		t.Fatal("errors.As failed to recover *Error")
	}
	if e.Op != "Client.Person" {
		t.Errorf("recovered Op = %q, want %q", e.Op, "Client.Person")
	}
}
