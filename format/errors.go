package format

import (
	"errors"
	"fmt"

	"github.com/TsubasaBE/go-dtfmt/calfield"
)

// Sentinel errors returned when a formatter is asked for a direction it
// was not built to support.
var (
	ErrPrintNotSupported = errors.New("format: printing not supported by this formatter")
	ErrParseNotSupported = errors.New("format: parsing not supported by this formatter")
)

// FieldUnavailableError is returned by printing when the bound field rule
// can neither supply nor derive a value from the given snapshot.
type FieldUnavailableError struct {
	Rule *calfield.Rule
}

func (e *FieldUnavailableError) Error() string {
	return fmt.Sprintf("format: no value available for %s", e.Rule.Name())
}

// ValueReason classifies why a field value could not be printed.
type ValueReason int

const (
	// ReasonWidthExceeded: the value's digits do not fit the configured
	// maximum width, or a negative value hit SignNever, whose field range
	// should have made negatives impossible.
	ReasonWidthExceeded ValueReason = iota
	// ReasonNegativeNotAllowed: a negative value under SignNotNegative.
	ReasonNegativeNotAllowed
	// ReasonNoTextMapping: a text field value with no registered text.
	ReasonNoTextMapping
)

// FieldValueError is returned by printing when a field's value cannot be
// represented under the node's width, sign, or text configuration.
type FieldValueError struct {
	Rule   *calfield.Rule
	Value  int
	Reason ValueReason
}

func (e *FieldValueError) Error() string {
	switch e.Reason {
	case ReasonNegativeNotAllowed:
		return fmt.Sprintf("format: value %d of %s cannot be printed: negative value not allowed", e.Value, e.Rule.Name())
	case ReasonNoTextMapping:
		return fmt.Sprintf("format: value %d of %s cannot be printed: no text mapping", e.Value, e.Rule.Name())
	default:
		return fmt.Sprintf("format: value %d of %s cannot be printed: exceeds configured width", e.Value, e.Rule.Name())
	}
}

// ParseError is returned when text cannot be parsed.  Index is the
// absolute rune-start index (in bytes) of the failure within the original
// input: for a mismatch it is where matching stopped, for trailing text
// it is the first unconsumed character.
type ParseError struct {
	Text     string
	Index    int
	Trailing bool
}

func (e *ParseError) Error() string {
	str := e.Text
	if r := []rune(str); len(r) > 64 {
		str = string(r[:64]) + "..."
	}
	if e.Trailing {
		return fmt.Sprintf("format: unparsed text found at index %d: %s", e.Index, str)
	}
	return fmt.Sprintf("format: text could not be parsed at index %d: %s", e.Index, str)
}

// FieldConflictError is returned by parse resolution when the same field
// rule was assigned two different values within one parse pass.
type FieldConflictError struct {
	Rule   *calfield.Rule
	First  int
	Second int
}

func (e *FieldConflictError) Error() string {
	return fmt.Sprintf("format: conflicting values %d and %d for %s", e.First, e.Second, e.Rule.Name())
}

// WriteError wraps a failure of the output destination during PrintTo so
// callers need not special-case the sink type.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("format: write failed: %v", e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
