package clierr

import (
	"errors"
	"fmt"
)

const (
	CodeFailure = 1
	CodeUsage   = 2
)

type ExitCoder interface {
	error
	ExitCode() int
}

// ExitError is an error that carries an explicit process exit code.
// It supports wrapping via Unwrap so errors.Is/As work as expected.
type ExitError struct {
	code     int
	msg      string
	cause    error
	reported bool
}

func (e *ExitError) Error() string {
	switch {
	case e.cause == nil:
		return e.msg
	case e.msg == "":
		return e.cause.Error()
	default:
		return fmt.Sprintf("%s: %v", e.msg, e.cause)
	}
}

func (e *ExitError) ExitCode() int { return e.code }

func (e *ExitError) Unwrap() error { return e.cause }

// Usage marks err as a command line usage problem.
func Usage(err error) error {
	if err == nil {
		return nil
	}
	return &ExitError{code: CodeUsage, msg: "usage", cause: err}
}

// Reported marks err as already shown to the user, so the process boundary
// only has to exit.
func Reported(err error) error {
	if err == nil {
		return nil
	}
	return &ExitError{code: ExitCodeOf(err), cause: err, reported: true}
}

func IsReported(err error) bool {
	var ee *ExitError
	for errors.As(err, &ee) {
		if ee.reported {
			return true
		}
		err = ee.cause
	}
	return false
}

// ExitCodeOf extracts an exit code from any error, defaulting to 1.
func ExitCodeOf(err error) int {
	if err == nil {
		return 0
	}
	var ec ExitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}
	return CodeFailure
}

// Cause strips ExitError wrappers so the caller can render the real error.
func Cause(err error) error {
	var ee *ExitError
	for errors.As(err, &ee) && ee.cause != nil {
		err = ee.cause
	}
	return err
}
