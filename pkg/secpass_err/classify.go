// pkg/secpass_err/classify.go

package secpass_err

import "errors"

// Exit codes. securepass deliberately keeps this surface small: help is
// success, everything that prevents a password from being generated is
// a plain failure. Scripts only ever need to test for non-zero.
const (
	ExitSuccess = 0
	ExitError   = 1
)

// NewExpectedError wraps an error for softer UX handling.
func NewExpectedError(err error) error {
	if err == nil {
		return nil
	}
	return &UserError{cause: err}
}

// IsExpectedUserError checks if the error is marked as expected.
func IsExpectedUserError(err error) bool {
	var e *UserError
	return errors.As(err, &e)
}

// ExitCode maps an error to the process exit status. Both user mistakes
// and system failures exit 1; the distinction between them only changes
// how the failure is logged.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	return ExitError
}

// Classify buckets an error for telemetry span attributes without
// leaking its content.
func Classify(err error) string {
	switch {
	case err == nil:
		return "success"
	case IsExpectedUserError(err):
		return "user_error"
	default:
		return "system_error"
	}
}
