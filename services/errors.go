package services

import "fmt"

// Error taxonomy surfaced to controllers. Each error carries a short
// human-readable message; controllers map the types onto HTTP status codes.

// ValidationError reports missing or malformed input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// UnauthorizedError reports a missing or unusable credential.
type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string { return e.Message }

// NotFoundError reports an absent record, or one the viewer may not see.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// InvalidStateError reports an action not permitted in the current state,
// such as messaging a match that was never accepted.
type InvalidStateError struct {
	Message string
}

func (e *InvalidStateError) Error() string { return e.Message }

// UpstreamError reports a failure in an external dependency such as the
// photo host or the mail provider.
type UpstreamError struct {
	Message string
	Err     error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *UpstreamError) Unwrap() error { return e.Err }
