package service

import (
	"errors"
	"fmt"
)

// Common service errors - sentinel errors used across service implementations.
// Callers check for them with errors.Is; the API layer maps them to status codes.
var (
	// ErrInvalidCredentials is returned when an email/password pair does not
	// match a user. It never says which half was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNoPendingTasks is returned when adaptive generation is requested
	// but the user has no incomplete tasks.
	ErrNoPendingTasks = errors.New("no tasks found, create tasks before generating a schedule")

	// ErrNoSessionsGenerated is returned when the planner ran but placed no
	// sessions, for example because every task is too short to schedule.
	ErrNoSessionsGenerated = errors.New("unable to generate schedule, check your preferences and task durations")
)

// ServiceError wraps an error with the service and operation that produced it.
type ServiceError struct {
	Service string // e.g. "schedule"
	Op      string // e.g. "generate"
	Err     error
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s service %s operation failed", e.Service, e.Op)
	}
	return fmt.Sprintf("%s service %s operation failed: %v", e.Service, e.Op, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError wraps err with service and operation context.
// A nil err yields nil so call sites can wrap unconditionally.
func NewServiceError(service, op string, err error) error {
	if err == nil {
		return nil
	}
	return &ServiceError{Service: service, Op: op, Err: err}
}
