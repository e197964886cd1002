// Copyright (c) 2026 Passgen Team
// Passgen - password generator with entropy reporting
// This source code is licensed under the MIT license found in the LICENSE file.

package engine

import "fmt"

// ErrorKind classifies a length validation failure.
type ErrorKind int

const (
	InvalidInput ErrorKind = iota + 1 // length is not an integer
	TooShort                          // length below MinLength
	TooLong                           // length above MaxLength
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidInput:
		return "invalid input"
	case TooShort:
		return "too short"
	case TooLong:
		return "too long"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is returned by the generation entrypoints when the requested length
// is rejected. Input holds the offending value as the caller supplied it.
type Error struct {
	Kind  ErrorKind
	Input string
}

// Sentinels for use with errors.Is.
var (
	ErrInvalidInput = &Error{Kind: InvalidInput}
	ErrTooShort     = &Error{Kind: TooShort}
	ErrTooLong      = &Error{Kind: TooLong}
)

func (e *Error) Error() string {
	switch e.Kind {
	case TooShort:
		return fmt.Sprintf("password length %s is below the minimum of %d", e.Input, MinLength)
	case TooLong:
		return fmt.Sprintf("password length %s exceeds the maximum of %d", e.Input, MaxLength)
	default:
		return fmt.Sprintf("password length %q is not a valid number", e.Input)
	}
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}
