package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/studyplan-api/internal/domain"
)

// ScheduleStore defines the interface for schedule and study session persistence.
type ScheduleStore interface {
	// Create saves a new schedule.
	Create(ctx context.Context, schedule *domain.Schedule) error

	// GetByID retrieves one of the user's schedules.
	// Returns ErrScheduleNotFound if it does not exist or belongs to someone else.
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Schedule, error)

	// List returns the user's schedules, most recently generated first.
	List(ctx context.Context, userID uuid.UUID) ([]*domain.Schedule, error)

	// Delete removes a schedule together with its sessions.
	// Returns ErrScheduleNotFound if nothing was deleted.
	Delete(ctx context.Context, userID, id uuid.UUID) error

	// CreateSessions saves the sessions of a schedule.
	CreateSessions(ctx context.Context, sessions []*domain.StudySession) error

	// ListSessions returns a schedule's sessions ordered by date.
	ListSessions(ctx context.Context, userID, scheduleID uuid.UUID) ([]*domain.StudySession, error)

	// UpdateSessionStatus sets the status of one of the user's sessions and
	// returns the updated session.
	// Returns ErrStudySessionNotFound if it does not exist for the user.
	UpdateSessionStatus(
		ctx context.Context,
		userID, sessionID uuid.UUID,
		status domain.SessionStatus,
	) (*domain.StudySession, error)

	// WithTx returns a ScheduleStore bound to the transaction.
	WithTx(tx *sql.Tx) ScheduleStore
}
