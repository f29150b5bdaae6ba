package ioplacer

import (
	"errors"
	"fmt"
)

// Kind discriminates the fatal error categories a Run can produce. See
// SPEC_FULL.md §7.
type Kind int

const (
	// InvalidConfiguration: slotsPerSection <= 1, usagePerSection <= 0,
	// or non-progressing retry preconditions. Fatal at startup.
	InvalidConfiguration Kind = iota
	// InvalidGeometry: degenerate core or a zero-slot edge. Fatal
	// during slot enumeration.
	InvalidGeometry
	// ParseFailure: surfaced from the external Parser. Fatal.
	ParseFailure
	// CannotFit: the outer retry loop cannot make progress. Fatal.
	CannotFit
	// NoSlotForFloatingPin: more zero-sink pins than spare slots. Fatal.
	NoSlotForFloatingPin
)

func (k Kind) String() string {
	switch k {
	case InvalidConfiguration:
		return "InvalidConfiguration"
	case InvalidGeometry:
		return "InvalidGeometry"
	case ParseFailure:
		return "ParseFailure"
	case CannotFit:
		return "CannotFit"
	case NoSlotForFloatingPin:
		return "NoSlotForFloatingPin"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is a fatal placement error tagged with its Kind, following the
// teacher's Exception idiom: a concrete struct wrapping the underlying
// cause and exposing it via Unwrap so callers can still use errors.Is
// and errors.As against it.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Err)
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error { return e.Err }

func newError(k Kind, err error) *Error { return &Error{Kind: k, Err: err} }

// IsKind reports whether err is, or wraps, an *Error of kind k.
func IsKind(err error, k Kind) bool {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind == k
	}
	return false
}
