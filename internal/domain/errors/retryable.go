package errors

import "moa/internal/errors"

// retryableError marks a failure as transient. The worker returns a
// non-2xx status for these so Pub/Sub redelivers the message.
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return "retryable: " + e.err.Error()
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// Retryable wraps err as a transient failure. Returns nil for nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}

	return &retryableError{err: err}
}

// IsRetryable reports whether err carries the transient marker.
func IsRetryable(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}
