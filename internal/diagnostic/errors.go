package diagnostic

import (
	"errors"
	"fmt"
)

// Kind is a stable category for programmatic error handling.
// Callers should branch on Kind rather than matching error strings.
type Kind string

const (
	KindMalformedInput             Kind = "malformed_input"
	KindUnresolvedReference        Kind = "unresolved_reference"
	KindUnsupportedCommandArgument Kind = "unsupported_command_argument"
	KindNameCollision              Kind = "name_collision"
)

// Error implements error so that errors.Is(err, diagnostic.KindX) matches any
// *Error of that kind.
func (k Kind) Error() string {
	return string(k)
}

// Error is the structured error returned for fatal findings.
//
// Name is the qualified name (type, channel, command or packet) that
// triggered it. Message is intended for humans; do not match on it.
type Error struct {
	Kind    Kind
	Name    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	if e.Name == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}

	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Name, e.Message)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.Cause
}

// Is reports whether target is this error's Kind.
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && e != nil && e.Kind == k
}

// Malformed returns a MalformedInput error for the named declaration.
func Malformed(name, format string, args ...any) error {
	return &Error{Kind: KindMalformedInput, Name: name, Message: fmt.Sprintf(format, args...)}
}

// Collision returns a NameCollision error for the named declaration.
func Collision(name, format string, args ...any) error {
	return &Error{Kind: KindNameCollision, Name: name, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the Kind of err, or "" when err carries none.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}

	return ""
}
