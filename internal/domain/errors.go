package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
	ErrInvalidState  = errors.New("invalid state")

	ErrChainSubmission = errors.New("chain submission failed")
	ErrChainTimeout    = errors.New("chain confirmation timed out")
	ErrChainExecution  = errors.New("chain execution failed")
	ErrChainUnapplied  = errors.New("confirmed transaction not applied")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// StateError reports an operation that the current lifecycle state does not permit.
type StateError struct {
	Op     string
	Status InvoiceStatus
	Reason string
}

func (e *StateError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: invoice is %s: %s", e.Op, e.Status, e.Reason)
	}
	return fmt.Sprintf("%s: not allowed while invoice is %s", e.Op, e.Status)
}

func (e *StateError) Unwrap() error { return ErrInvalidState }

// NewStateError creates a StateError for op in the given status.
func NewStateError(op string, status InvoiceStatus, reason string) *StateError {
	return &StateError{Op: op, Status: status, Reason: reason}
}

// ChainError wraps a failure of the on-chain step of an operation.
// Kind is one of ErrChainSubmission, ErrChainTimeout, ErrChainExecution or
// ErrChainUnapplied, the last meaning the transaction is confirmed on chain
// but the off-chain mirror failed and was journalled for replay.
// TxHash is set whenever the network accepted the transaction for processing.
type ChainError struct {
	Kind   error
	TxHash string
	Err    error
}

func (e *ChainError) Error() string {
	msg := e.Kind.Error()
	if e.TxHash != "" {
		msg += " (tx " + e.TxHash + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the kind sentinel and the underlying cause.
func (e *ChainError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Error kinds exposed to API clients. They are stable and machine-readable.
const (
	KindValidation      = "validation"
	KindConflict        = "conflict"
	KindInvalidState    = "invalid_state"
	KindNotFound        = "not_found"
	KindUnauthorized    = "unauthorized"
	KindForbidden       = "forbidden"
	KindChainSubmission = "chain_submission"
	KindChainTimeout    = "chain_timeout"
	KindChainExecution  = "chain_execution"
	KindChainUnapplied  = "chain_unapplied"
	KindRateLimited     = "rate_limited"
	KindInternal        = "internal"
)

// ErrorKind maps err to its stable kind. Unknown errors are KindInternal.
// An unapplied confirmation wins over the cause that stopped it.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrChainUnapplied):
		return KindChainUnapplied
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrConflict), errors.Is(err, ErrAlreadyExists):
		return KindConflict
	case errors.Is(err, ErrInvalidState):
		return KindInvalidState
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrUnauthorized):
		return KindUnauthorized
	case errors.Is(err, ErrForbidden):
		return KindForbidden
	case errors.Is(err, ErrChainTimeout):
		return KindChainTimeout
	case errors.Is(err, ErrChainExecution):
		return KindChainExecution
	case errors.Is(err, ErrChainSubmission):
		return KindChainSubmission
	}
	return KindInternal
}
