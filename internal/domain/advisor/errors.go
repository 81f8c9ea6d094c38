package advisor

import "errors"

var (
	// ErrUnavailable covers every collaborator failure mode: timeout,
	// quota, malformed response, missing configuration. Callers surface a
	// degraded try-again message, never a request failure.
	ErrUnavailable = errors.New("assistant unavailable")

	ErrQuestionRequired = errors.New("question is required")
	ErrQuestionTooLong  = errors.New("question too long")
)
