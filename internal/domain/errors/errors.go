// Package errors holds the error taxonomy shared by storage, messaging and
// the mutation pipeline. Callers match kinds with errors.Is.
package errors

import (
	stdErrors "errors"
	"fmt"
)

var (
	// ErrConflict reports an identity collision on write (surfaced as "already exists").
	ErrConflict = stdErrors.New("already exists")
	// ErrNotFound reports a referenced identifier that is absent.
	ErrNotFound = stdErrors.New("not found")
	// ErrUnavailable reports a storage or broker transport failure.
	ErrUnavailable = stdErrors.New("unavailable")
	// ErrMalformedRecord reports a stored row that cannot be reconstructed.
	// Storage folds it into absence; it never reaches callers of Get.
	ErrMalformedRecord = stdErrors.New("malformed record")
	// ErrInvalid reports a descriptor that failed validation.
	ErrInvalid = stdErrors.New("invalid input")
	// ErrNoRowsAffected is the storage signal for an update that matched nothing.
	ErrNoRowsAffected = stdErrors.New("no rows affected")
)

var kinds = []error{ErrConflict, ErrNotFound, ErrUnavailable, ErrMalformedRecord, ErrInvalid}

// Error attaches an operation, an entity kind and an error kind to a cause.
type Error struct {
	Op     string
	Entity string
	Kind   error
	Err    error
}

// New constructs an Error. A nil kind is classified from err.
func New(op, entity string, kind, err error) error {
	if kind == nil {
		kind = Classify(err)
	}
	return &Error{Op: op, Entity: entity, Kind: kind, Err: err}
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}

	prefix := e.Op
	if e.Entity != "" {
		prefix = fmt.Sprintf("%s %s", e.Op, e.Entity)
	}
	if e.Err == nil || e.Err == e.Kind {
		return fmt.Sprintf("%s: %v", prefix, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", prefix, e.Kind, e.Err)
}

// Unwrap exposes the underlying cause.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches the error kind in addition to the wrapped chain.
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	return e.Kind == target
}

// Classify returns the kind carried by err, or nil when err has none.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	for _, kind := range kinds {
		if stdErrors.Is(err, kind) {
			return kind
		}
	}
	return nil
}

// HasKind reports whether err already carries one of the known kinds.
func HasKind(err error) bool {
	return Classify(err) != nil
}

// Unavailable wraps a transport failure.
func Unavailable(op, entity string, err error) error {
	return New(op, entity, ErrUnavailable, err)
}

// Conflict wraps an identity collision.
func Conflict(op, entity string, err error) error {
	return New(op, entity, ErrConflict, err)
}

// NotFound reports an absent identifier.
func NotFound(op, entity, id string) error {
	return New(op, entity, ErrNotFound, fmt.Errorf("%s %s", entity, id))
}

// Invalid wraps a validation failure.
func Invalid(op, entity string, err error) error {
	return New(op, entity, ErrInvalid, err)
}
