// Package ledgererror defines the error taxonomy of ledger operations.
package ledgererror

import (
	"errors"
	"fmt"
)

// Error kinds. Every typed error in this package unwraps to one of them,
// so callers can branch with errors.Is.
var (
	ErrInvalidFormat    = errors.New("invalid format")
	ErrInvalidCategory  = errors.New("invalid category")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrNotFound         = errors.New("record not found")
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrMalformedStorage = errors.New("malformed storage")
)

// InputError represents user input that was rejected before any mutation.
type InputError struct {
	Input  string
	Reason string
	Err    error
}

func (e *InputError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%v: '%s'", e.Err, e.Input)
	}
	return fmt.Sprintf("%v: '%s': %s", e.Err, e.Input, e.Reason)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// IndexError represents a disambiguation index outside 1..Max.
type IndexError struct {
	Value string
	Max   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%v: '%s' (expected 1..%d)", ErrIndexOutOfRange, e.Value, e.Max)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// StorageError represents a line of the ledger file that could not be decoded.
// Line is 1-based; Line 1 is the initial balance.
type StorageError struct {
	FilePath string
	Line     int
	Content  string
	Err      error
}

func (e *StorageError) Error() string {
	msg := fmt.Sprintf("%v", ErrMalformedStorage)
	if e.FilePath != "" {
		msg += fmt.Sprintf(" in '%s'", e.FilePath)
	}
	msg += fmt.Sprintf(" at line %d: '%s'", e.Line, e.Content)
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

// Unwrap exposes both the malformed-storage kind and the underlying cause.
func (e *StorageError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrMalformedStorage}
	}
	return []error{ErrMalformedStorage, e.Err}
}

// NewInvalidFormat reports input that is not exactly "<category> <description> <amount>".
func NewInvalidFormat(input string) error {
	return &InputError{
		Input:  input,
		Reason: "must be '[category] [description] [amount]'",
		Err:    ErrInvalidFormat,
	}
}

// NewInvalidCategory reports a label that is not part of the taxonomy.
func NewInvalidCategory(label string) error {
	return &InputError{Input: label, Err: ErrInvalidCategory}
}

// NewInvalidAmount reports an amount token that is not an integer.
func NewInvalidAmount(token string) error {
	return &InputError{Input: token, Reason: "must be an integer", Err: ErrInvalidAmount}
}

// NewNotFound reports a description with no matching record.
func NewNotFound(description string) error {
	return &InputError{Input: description, Err: ErrNotFound}
}
