// pkg/secpass_err/types.go

package secpass_err

// UserError marks an error as expected and recoverable by the user:
// bad flag values, impossible character set selections, and the like.
// These are reported calmly, without stack traces, and never treated
// as bugs in securepass itself.
type UserError struct {
	cause error
}

func (e *UserError) Error() string {
	return e.cause.Error()
}

func (e *UserError) Unwrap() error {
	return e.cause
}
