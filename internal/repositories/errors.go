package repositories

import (
	"errors"
	"fmt"
)

// Domain failures surfaced by the stores. Anything else coming out of a
// store call is a storage failure and is not recovered here.
var (
	// ErrNotFound means no row with the requested id exists.
	ErrNotFound = errors.New("record not found")

	// ErrForbidden means the row exists but is owned by another user. It
	// is only ever returned after the existence check has passed.
	ErrForbidden = errors.New("record owned by another user")

	// ErrDuplicateUser means the signup username or email is taken.
	ErrDuplicateUser = errors.New("username or email already exists")
)

// ValidationError carries the user-facing message for a 400 response:
// missing fields, malformed dates, out-of-range values, bad category
// references, duplicate budgets.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
