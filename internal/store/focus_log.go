package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/studyplan-api/internal/domain"
)

// FocusLogStore defines the interface for focus log persistence.
type FocusLogStore interface {
	// Create saves a new focus log.
	Create(ctx context.Context, log *domain.FocusLog) error

	// ListByUser returns every focus log the user recorded, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.FocusLog, error)

	// WithTx returns a FocusLogStore bound to the transaction.
	WithTx(tx *sql.Tx) FocusLogStore
}
