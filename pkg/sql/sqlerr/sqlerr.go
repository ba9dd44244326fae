// pkg/sql/sqlerr/sqlerr.go
package sqlerr

import (
	"errors"
	"fmt"
)

// Kind classifies an error produced by the SQL front end.
type Kind string

const (
	// Internal marks an invariant violation inside the front end itself.
	// It signals a bug, never a problem with user input.
	Internal Kind = "internal"
	// Parse marks a lexical or syntactic failure: an unexpected
	// character, an unexpected or missing token, or unexpected end of
	// input.
	Parse Kind = "parse"
	// Value marks input that is syntactically well-formed but
	// semantically invalid, such as a conflicting nullability constraint.
	Value Kind = "value"
)

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case Internal, Parse, Value:
		return []byte(k), nil
	}
	return nil, fmt.Errorf("unknown error kind %q", string(k))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	switch Kind(text) {
	case Internal, Parse, Value:
		*k = Kind(text)
		return nil
	}
	return fmt.Errorf("unknown error kind %q", string(text))
}

// Error is an error with a Kind, carrying a human-readable message that
// includes the offending token's display text where applicable. It
// marshals to {"kind":...,"message":...} so it can cross a process or
// API boundary.
type Error struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return string(e.Kind) + " error: " + e.Message
}

// Internalf returns an Internal-kind error.
func Internalf(format string, args ...any) *Error {
	return &Error{Kind: Internal, Message: fmt.Sprintf(format, args...)}
}

// Parsef returns a Parse-kind error.
func Parsef(format string, args ...any) *Error {
	return &Error{Kind: Parse, Message: fmt.Sprintf(format, args...)}
}

// Valuef returns a Value-kind error.
func Valuef(format string, args ...any) *Error {
	return &Error{Kind: Value, Message: fmt.Sprintf(format, args...)}
}

// Is reports whether err is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
