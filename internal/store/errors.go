package store

import (
	"errors"
	"fmt"
)

// Sentinels shared by every store implementation. Entity-specific errors
// below wrap ErrNotFound or ErrDuplicate, so callers can match either the
// specific or the general form.
var (
	// ErrNotFound means the record does not exist or belongs to another user.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate means a unique constraint would be broken.
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity means the record failed validation or a database
	// constraint. The wrapped error carries the detail.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrForeignKeyViolation means a referenced user, task or subject is gone.
	ErrForeignKeyViolation = errors.New("referenced entity does not exist")

	// ErrTransactionFailed means a transaction could not begin or commit.
	ErrTransactionFailed = errors.New("transaction failed")

	// Entity-specific "not found" errors

	// ErrUserNotFound indicates that the requested user does not exist in the store.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrTaskNotFound indicates that the requested task does not exist for the user.
	ErrTaskNotFound = fmt.Errorf("%w: task", ErrNotFound)

	// ErrSubjectNotFound indicates that the requested subject does not exist for the user.
	ErrSubjectNotFound = fmt.Errorf("%w: subject", ErrNotFound)

	// ErrScheduleNotFound indicates that the requested schedule does not exist for the user.
	ErrScheduleNotFound = fmt.Errorf("%w: schedule", ErrNotFound)

	// ErrStudySessionNotFound indicates that the requested study session does not exist for the user.
	ErrStudySessionNotFound = fmt.Errorf("%w: study session", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrEmailExists indicates that a user with the given email already exists.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// StoreError records which entity and operation failed below the store
// interfaces, such as a transaction that would not commit.
type StoreError struct {
	Entity    string // e.g. "transaction", "schedule"
	Operation string // e.g. "begin", "commit"
	Message   string
	Err       error
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(
			"%s operation on %s failed: %s: %v",
			e.Operation,
			e.Entity,
			e.Message,
			e.Err,
		)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError builds a StoreError.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
