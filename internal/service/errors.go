// Package service implements business logic, validation, and orchestration
// between HTTP handlers and the repository layer.
package service

import "fmt"

// ValidationError marks a request rejected for missing or malformed input.
// Handlers translate it to a 400.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func invalidf(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}
