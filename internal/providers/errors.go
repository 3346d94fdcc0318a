package providers

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Store error kinds. Absence is never an error.
var (
	// ErrStoreUnavailable is returned when the store rejects or fails the call
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrStoreTimeout is returned when the call exceeds its deadline
	ErrStoreTimeout = errors.New("store timeout")

	// ErrStoreDecode is returned when a stored item cannot be decoded
	ErrStoreDecode = errors.New("store decode error")

	// ErrInvalidKey is returned when a key does not match the entity kind
	ErrInvalidKey = errors.New("invalid lookup key")
)

// StoreError represents a failed store lookup with additional context. The
// message contains backend details and must only be logged.
type StoreError struct {
	Op    string // Operation that failed (e.g. "GetItem")
	Table string // Table or collection the provider is bound to
	Key   Key    // Lookup key involved
	Kind  error  // One of the Err* sentinels above
	Err   error  // Underlying error
}

func (e *StoreError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s on %s key %s", e.Kind, e.Op, e.Table, e.Key)
	}
	return fmt.Sprintf("%s: %s on %s key %s: %v", e.Kind, e.Op, e.Table, e.Key, e.Err)
}

func (e *StoreError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// NewStoreError creates a StoreError of the given kind
func NewStoreError(op, table string, key Key, kind, err error) *StoreError {
	return &StoreError{Op: op, Table: table, Key: key, Kind: kind, Err: err}
}

// DecodeError creates a StoreError for malformed stored data
func DecodeError(op, table string, key Key, err error) *StoreError {
	return NewStoreError(op, table, key, ErrStoreDecode, err)
}

// Classify wraps a backend call error as a timeout or unavailability error.
// Errors that already are StoreErrors are returned unchanged.
func Classify(op, table string, key Key, err error) error {
	if err == nil {
		return nil
	}

	var storeErr *StoreError
	if errors.As(err, &storeErr) {
		return err
	}
	if errors.Is(err, ErrInvalidKey) {
		return NewStoreError(op, table, key, ErrInvalidKey, err)
	}
	if isTimeout(err) {
		return NewStoreError(op, table, key, ErrStoreTimeout, err)
	}
	return NewStoreError(op, table, key, ErrStoreUnavailable, err)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// IsTimeout returns true if the error is a store timeout
func IsTimeout(err error) bool {
	return errors.Is(err, ErrStoreTimeout)
}

// IsUnavailable returns true if the store could not be reached or refused the call
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrStoreUnavailable)
}

// IsDecode returns true if a stored item could not be decoded
func IsDecode(err error) bool {
	return errors.Is(err, ErrStoreDecode)
}
