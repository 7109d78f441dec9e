package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/studyplan-api/internal/domain"
)

// SubjectStore defines the interface for subject persistence.
type SubjectStore interface {
	// Create saves a new subject.
	Create(ctx context.Context, subject *domain.Subject) error

	// GetByID retrieves one of the user's subjects.
	// Returns ErrSubjectNotFound if it does not exist or belongs to someone else.
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Subject, error)

	// List returns the user's subjects ordered by exam date.
	List(ctx context.Context, userID uuid.UUID) ([]*domain.Subject, error)

	// Update replaces a subject's mutable fields.
	// Returns ErrSubjectNotFound if the subject does not exist for its user.
	Update(ctx context.Context, subject *domain.Subject) error

	// Delete removes one of the user's subjects.
	// Returns ErrSubjectNotFound if nothing was deleted.
	Delete(ctx context.Context, userID, id uuid.UUID) error

	// WithTx returns a SubjectStore bound to the transaction.
	WithTx(tx *sql.Tx) SubjectStore
}
