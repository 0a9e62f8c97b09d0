package devfolio

import "fmt"

// ValidationError reports an input that does not satisfy the portfolio
// invariants: a missing required field, a malformed URL, or an attempt to
// render an empty portfolio.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

// Validationf formats a new ValidationError.
func Validationf(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// ConflictError reports an attempt to add a project whose id is already
// taken in the portfolio.
type ConflictError struct {
	msg string
}

func (e *ConflictError) Error() string { return e.msg }

// Conflictf formats a new ConflictError.
func Conflictf(format string, args ...any) error {
	return &ConflictError{msg: fmt.Sprintf(format, args...)}
}
