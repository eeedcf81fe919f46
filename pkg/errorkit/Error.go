// Package errorkit holds the error primitives the rest of the module builds on.
package errorkit

import (
	"errors"
	"fmt"
)

// Error is a string based error type, so sentinel errors can be declared as constants.
//
//	const ErrSomething errorkit.Error = "something is an error"
type Error string

func (err Error) Error() string { return string(err) }

// Wrap attaches a cause to the Error.
// The result matches both the Error and the cause with errors.Is.
func (err Error) Wrap(cause error) error {
	if cause == nil {
		return err
	}
	return &kindError{kind: err, cause: cause}
}

// F is Wrap with a formatted cause. The %w verb is supported.
func (err Error) F(format string, a ...any) error { return err.Wrap(fmt.Errorf(format, a...)) }

type kindError struct {
	kind  Error
	cause error
}

func (e *kindError) Error() string {
	return e.kind.Error() + ": " + e.cause.Error()
}

func (e *kindError) Is(target error) bool {
	return errors.Is(e.kind, target)
}

func (e *kindError) Unwrap() error {
	return e.cause
}
