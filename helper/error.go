package helper

import "fmt"

// Error wraps an underlying error with the step that failed.
type Error struct {
	Step string
	Err  error
}

// NewError creates a new error for the given step.
// The returned error unwraps to err, so errors.Is and errors.As keep working.
func NewError(step string, err error) error {
	return &Error{
		Step: step,
		Err:  err,
	}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("error in %s", e.Step)
	}
	return fmt.Sprintf("error in %s: %v", e.Step, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
