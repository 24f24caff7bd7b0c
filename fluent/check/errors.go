package check

import (
	"errors"
	"fmt"
)

// ErrCheckFailed is the sentinel error for failed checks.
var ErrCheckFailed = errors.New("check failed")

// ErrUnsupportedSubject reports a predicate applied to a subject it cannot
// evaluate (a string handed to a sign check, a NaN, ...). It is a programming
// error in the test, not a failed check.
var ErrUnsupportedSubject = errors.New("unsupported subject")

// ErrPanicked marks an Outcome whose code panicked.
var ErrPanicked = errors.New("code panicked")

// FailureError is the single error kind raised by failed checks. Its message is
// the complete diagnostic.
type FailureError struct {
	Predicate string
	Message   string
}

// Error returns the diagnostic verbatim.
func (e *FailureError) Error() string {
	if e == nil {
		return ErrCheckFailed.Error()
	}

	return e.Message
}

// Unwrap returns the sentinel check error for errors.Is.
func (e *FailureError) Unwrap() error {
	return ErrCheckFailed
}

// PanicError carries a panic recovered while running checked code.
type PanicError struct {
	Value any
}

// Error returns the panic error's own message when the panic value is an
// error, "panic: <value>" otherwise.
func (e *PanicError) Error() string {
	if err, ok := e.Value.(error); ok {
		return err.Error()
	}

	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap exposes ErrPanicked and, when the panic value is an error, that error.
func (e *PanicError) Unwrap() []error {
	if err, ok := e.Value.(error); ok {
		return []error{ErrPanicked, err}
	}

	return []error{ErrPanicked}
}

func unsupported(predicate string, subject any, reason string) error {
	return fmt.Errorf("%w: %s cannot evaluate %T: %s", ErrUnsupportedSubject, predicate, subject, reason)
}
