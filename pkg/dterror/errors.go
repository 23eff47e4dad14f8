// Package dterror defines the failure taxonomy shared by every package in
// this module. The set of categories is closed: callers can always decide
// how to react to a failure (retry, treat as empty, report upward) by
// inspecting its category rather than matching on message text.
package dterror

import (
	"errors"
	"fmt"
	"strings"
)

// Category classifies a failure. Exactly one category applies to any error
// produced by this module.
type Category string

const (
	// CategoryValidation is a malformed identifier or filter supplied by the
	// caller. Not retryable; the input must change.
	CategoryValidation Category = "validation"

	// CategoryFetch is a transport-level failure (connection, timeout,
	// server error). Always retryable by the caller.
	CategoryFetch Category = "fetch"

	// CategoryNotFound means the remote service confirmed the resource does
	// not exist. Semantically an empty result, not retryable.
	CategoryNotFound Category = "not_found"

	// CategoryDecode is a response that does not match the expected schema,
	// indicating drift between this client and the service.
	CategoryDecode Category = "decode"

	// CategoryInvariant is locally detected corruption of an assumed
	// invariant, e.g. two open-ended history snapshots for one identity.
	CategoryInvariant Category = "invariant"

	// CategoryPaginationLoop means a paginated traversal revisited a page or
	// exceeded its page budget, suggesting a cyclic next-link chain.
	CategoryPaginationLoop Category = "pagination_loop"
)

// Sentinel errors for the conditions callers most often branch on. They are
// installed as the underlying error of the corresponding categories so that
// errors.Is works through wrapping.
var (
	ErrNotFound       = errors.New("resource not found")
	ErrPaginationLoop = errors.New("pagination loop suspected")
)

// Error is the concrete failure value returned across package boundaries.
type Error struct {
	Category Category
	Op       string // operation that failed, e.g. "transport.Fetch"
	Resource string // path or key the operation targeted, when known
	Msg      string // additional context
	Err      error  // underlying cause, may be nil
}

// Error implements the error interface. Parts are joined with ": " in
// Op, Resource, Msg, cause order, skipping whatever is unset.
func (e *Error) Error() string {
	parts := make([]string, 0, 4)
	if e.Op != "" {
		parts = append(parts, e.Op)
	}
	if e.Resource != "" {
		parts = append(parts, e.Resource)
	}
	if e.Msg != "" {
		parts = append(parts, e.Msg)
	}
	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}
	if len(parts) == 0 {
		return string(e.Category)
	}
	return strings.Join(parts, ": ")
}

// Unwrap supports errors.Is and errors.As traversal.
func (e *Error) Unwrap() error {
	return e.Err
}

// Validation reports a malformed identifier or filter.
func Validation(op, resource, msg string) *Error {
	return &Error{Category: CategoryValidation, Op: op, Resource: resource, Msg: msg}
}

// Fetch reports a transport failure.
func Fetch(op, resource string, err error) *Error {
	return &Error{Category: CategoryFetch, Op: op, Resource: resource, Err: err}
}

// NotFound reports that the remote service confirmed absence.
func NotFound(op, resource string) *Error {
	return &Error{Category: CategoryNotFound, Op: op, Resource: resource, Err: ErrNotFound}
}

// Decode reports a response that does not match the expected schema.
func Decode(op, resource string, err error) *Error {
	return &Error{Category: CategoryDecode, Op: op, Resource: resource, Err: err}
}

// Invariant reports locally detected corruption of an assumed invariant.
func Invariant(op, msg string, err error) *Error {
	return &Error{Category: CategoryInvariant, Op: op, Msg: msg, Err: err}
}

// PaginationLoop reports a suspected next-link cycle after visiting the
// given number of pages.
func PaginationLoop(op, resource string, pages int) *Error {
	return &Error{
		Category: CategoryPaginationLoop,
		Op:       op,
		Resource: resource,
		Msg:      fmt.Sprintf("after %d pages", pages),
		Err:      ErrPaginationLoop,
	}
}

// CategoryOf extracts the category from an error, or "" if the error did not
// originate in this module.
func CategoryOf(err error) Category {
	var e *Error
	if errors.As(err, &e) {
		return e.Category
	}
	return ""
}

// IsNotFound reports whether err means the remote service confirmed absence.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsRetryable reports whether retrying the operation could succeed. Only
// transport failures are retryable; every other category is deterministic.
func IsRetryable(err error) bool {
	return CategoryOf(err) == CategoryFetch
}
