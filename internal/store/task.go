package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/studyplan-api/internal/domain"
)

// TaskFilter narrows a task listing.
type TaskFilter struct {
	// IncompleteOnly excludes completed tasks.
	IncompleteOnly bool
}

// TaskStore defines the interface for task persistence.
type TaskStore interface {
	// Create saves a new task.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves one of the user's tasks.
	// Returns ErrTaskNotFound if it does not exist or belongs to someone else.
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Task, error)

	// List returns the user's tasks ordered by creation time.
	List(ctx context.Context, userID uuid.UUID, filter TaskFilter) ([]*domain.Task, error)

	// Update replaces a task's mutable fields.
	// Returns ErrTaskNotFound if the task does not exist for its user.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes one of the user's tasks.
	// Returns ErrTaskNotFound if nothing was deleted.
	Delete(ctx context.Context, userID, id uuid.UUID) error

	// WithTx returns a TaskStore bound to the transaction.
	WithTx(tx *sql.Tx) TaskStore
}
