package paging

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a set of PageArgs was rejected.
// Each kind is itself an error, so callers can match with errors.Is:
//
//	if errors.Is(err, paging.NegativeLimitArg) { ... }
type ErrorKind int

const (
	// ConflictingLimitArgs: first and last were both supplied.
	ConflictingLimitArgs ErrorKind = iota + 1
	// NegativeLimitArg: first or last was below zero.
	NegativeLimitArg
	// UnsupportedAfterWithLast: paging backward from a forward cursor.
	UnsupportedAfterWithLast
	// UnsupportedBeforeWithFirst: paging forward from a backward cursor.
	UnsupportedBeforeWithFirst
	// ConflictingCursorArgs: before and after were both supplied.
	ConflictingCursorArgs
)

func (k ErrorKind) String() string {
	switch k {
	case ConflictingLimitArgs:
		return "ConflictingLimitArgs"
	case NegativeLimitArg:
		return "NegativeLimitArg"
	case UnsupportedAfterWithLast:
		return "UnsupportedAfterWithLast"
	case UnsupportedBeforeWithFirst:
		return "UnsupportedBeforeWithFirst"
	case ConflictingCursorArgs:
		return "ConflictingCursorArgs"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

func (k ErrorKind) Error() string {
	switch k {
	case ConflictingLimitArgs:
		return "first and last can't be set simultaneously"
	case NegativeLimitArg:
		return "page size can't be negative"
	case UnsupportedAfterWithLast:
		return "after and last can't be set simultaneously"
	case UnsupportedBeforeWithFirst:
		return "before and first can't be set simultaneously"
	case ConflictingCursorArgs:
		return "before and after can't be set simultaneously"
	default:
		return "invalid pagination arguments"
	}
}

// ArgError is returned by ResolveArgs for invalid argument combinations.
// Arg names the offending argument and Value holds what the caller sent,
// which is enough to render a field-level validation message.
type ArgError struct {
	Kind  ErrorKind
	Arg   string
	Value any
}

func (e *ArgError) Error() string {
	if e.Kind == NegativeLimitArg {
		return fmt.Sprintf("%s can't be negative, got %v", e.Arg, e.Value)
	}
	return e.Kind.Error()
}

// Unwrap exposes the kind for errors.Is.
func (e *ArgError) Unwrap() error {
	return e.Kind
}

// KindOf returns the ErrorKind carried by err, if any.
func KindOf(err error) (ErrorKind, bool) {
	var argErr *ArgError
	if errors.As(err, &argErr) {
		return argErr.Kind, true
	}

	var kind ErrorKind
	if errors.As(err, &kind) {
		return kind, true
	}
	return 0, false
}

func newArgError(kind ErrorKind, arg string, value any) *ArgError {
	return &ArgError{Kind: kind, Arg: arg, Value: value}
}
