// Package apperr defines the typed failures the domain layer raises.
// The HTTP layer maps each kind to a status code; nothing here knows
// about transports.
package apperr

import "errors"

type Kind int

const (
	// KindNotFound means a referenced entity does not exist. It always
	// takes precedence over authorization checks when both could apply.
	KindNotFound Kind = iota
	// KindForbidden means the actor lacks permission. The message never
	// reveals why beyond "not permitted".
	KindForbidden
	// KindInvariant means a write that should have produced a durable
	// effect did not. Not user-correctable.
	KindInvariant
)

type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

func NotFound(msg string) error {
	return &Error{Kind: KindNotFound, Msg: msg}
}

func Forbidden(msg string) error {
	return &Error{Kind: KindForbidden, Msg: msg}
}

func Invariant(msg string) error {
	return &Error{Kind: KindInvariant, Msg: msg}
}

func IsNotFound(err error) bool {
	return isKind(err, KindNotFound)
}

func IsForbidden(err error) bool {
	return isKind(err, KindForbidden)
}

func IsInvariant(err error) bool {
	return isKind(err, KindInvariant)
}

func isKind(err error, k Kind) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Kind == k
}
