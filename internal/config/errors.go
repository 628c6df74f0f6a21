package config

import "fmt"

// ValidationError wraps multiple setting failures
type ValidationError struct {
	Errors []error
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	return fmt.Sprintf("%d validation errors", len(e.Errors))
}

// Add adds an error to the validation error
func (e *ValidationError) Add(err error) {
	e.Errors = append(e.Errors, err)
}

// HasErrors returns true if there are validation errors
func (e *ValidationError) HasErrors() bool {
	return len(e.Errors) > 0
}

// Unwrap exposes the individual failures to errors.Is and errors.As.
func (e *ValidationError) Unwrap() []error {
	return e.Errors
}
