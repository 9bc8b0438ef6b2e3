package frame

import (
	"errors"
	"fmt"
)

// Error represents a contract violation detected by the model layer.
//
// These are programmer/input errors, not transient failures: every one is
// detected synchronously and surfaces immediately to the caller. Absent
// labels during lookup or realignment are not errors; they produce an
// explicit absent value instead.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Column names the offending column, when one is involved.
	Column string

	// Position and Length carry bounds context for range errors.
	Position int
	Length   int
}

// ErrorCode categorizes model errors.
type ErrorCode string

const (
	// ErrCodeNullArgument indicates a required argument was absent.
	ErrCodeNullArgument ErrorCode = "NULL_ARGUMENT"

	// ErrCodeInvalidStep indicates a numeric index with step zero.
	ErrCodeInvalidStep ErrorCode = "INVALID_STEP"

	// ErrCodeLengthMismatch indicates an index/value or count mismatch.
	ErrCodeLengthMismatch ErrorCode = "LENGTH_MISMATCH"

	// ErrCodeDuplicateColumn indicates two columns resolved to one name.
	ErrCodeDuplicateColumn ErrorCode = "DUPLICATE_COLUMN"

	// ErrCodeUnknownColumn indicates a lookup of a nonexistent column.
	ErrCodeUnknownColumn ErrorCode = "UNKNOWN_COLUMN"

	// ErrCodeIndexOutOfRange indicates a positional lookup out of bounds.
	ErrCodeIndexOutOfRange ErrorCode = "INDEX_OUT_OF_RANGE"

	// ErrCodeInconsistentIndex indicates a column transform produced
	// columns that disagree on their index.
	ErrCodeInconsistentIndex ErrorCode = "INCONSISTENT_INDEX"
)

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("%s: %s (column=%q)", e.Code, e.Message, e.Column)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// HasCode reports whether err is (or wraps) a frame Error with the given
// code.
func HasCode(err error, code ErrorCode) bool {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Code == code
	}
	return false
}

// IsUnknownColumn reports whether err is an unknown-column error.
func IsUnknownColumn(err error) bool { return HasCode(err, ErrCodeUnknownColumn) }

// IsOutOfRange reports whether err is an index-out-of-range error.
func IsOutOfRange(err error) bool { return HasCode(err, ErrCodeIndexOutOfRange) }

func newNullArgument(what string) *Error {
	return &Error{
		Code:    ErrCodeNullArgument,
		Message: what + " must not be nil",
	}
}

func newInvalidStep() *Error {
	return &Error{
		Code:    ErrCodeInvalidStep,
		Message: "numeric index step must not be zero",
	}
}

func newLengthMismatch(message string) *Error {
	return &Error{
		Code:    ErrCodeLengthMismatch,
		Message: message,
	}
}

func newDuplicateColumn(name string) *Error {
	return &Error{
		Code:    ErrCodeDuplicateColumn,
		Message: "duplicate column name",
		Column:  name,
	}
}

func newUnknownColumn(name string) *Error {
	return &Error{
		Code:    ErrCodeUnknownColumn,
		Message: "no such column",
		Column:  name,
	}
}

func newIndexOutOfRange(position, length int) *Error {
	return &Error{
		Code:     ErrCodeIndexOutOfRange,
		Message:  fmt.Sprintf("position %d out of range for index of length %d", position, length),
		Position: position,
		Length:   length,
	}
}

func newInconsistentIndex(column string) *Error {
	return &Error{
		Code:    ErrCodeInconsistentIndex,
		Message: "column transform must produce columns sharing one index",
		Column:  column,
	}
}
