package appointment

import "fmt"

// NotFoundError reports an unresolvable referenced record.
type NotFoundError struct {
	Resource string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// ConflictError reports a booking collision.
type ConflictError struct {
	Message string
}

func (e ConflictError) Error() string { return e.Message }

// AccessDeniedError reports an ownership mismatch.
type AccessDeniedError struct {
	Message string
}

func (e AccessDeniedError) Error() string { return e.Message }

// ValidationError reports rejected input or a policy violation.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string { return e.Message }
