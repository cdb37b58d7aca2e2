package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrEmployeeNotFound   = errors.New("Employee not found")
	ErrProjectNotFound    = errors.New("Project not found")
	ErrEvaluationNotFound = errors.New("Evaluation not found")
	ErrValidation         = errors.New("Invalid input")
	ErrInternal           = errors.New("Internal error")
)

// ConflictError reports an assignment clash with the project the employee is
// already committed to.
type ConflictError struct {
	EmployeeID         string
	ConflictingProject string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("employee %s is already assigned to %s", e.EmployeeID, e.ConflictingProject)
}

func validationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}
