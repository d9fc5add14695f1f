// pkg/opserr/user.go

package opserr

import (
	"context"
	"errors"
)

// UserError marks a failure caused by the operator's environment or input
// rather than a bug: missing tools, nothing to commit, unauthenticated APIs.
// These are surfaced softly and exit 0.
type UserError struct {
	cause error
}

func (e *UserError) Error() string {
	return e.cause.Error()
}

func (e *UserError) Unwrap() error {
	return e.cause
}

// NewExpectedError wraps an error for softer UX handling.
func NewExpectedError(ctx context.Context, err error) error {
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
