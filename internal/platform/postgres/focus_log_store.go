package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/studyplan-api/internal/domain"
	"github.com/phrazzld/studyplan-api/internal/platform/logger"
	"github.com/phrazzld/studyplan-api/internal/store"
)

// PostgresFocusLogStore implements the store.FocusLogStore interface.
type PostgresFocusLogStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresFocusLogStore creates a new PostgreSQL implementation of the FocusLogStore interface.
func NewPostgresFocusLogStore(db store.DBTX, logger *slog.Logger) *PostgresFocusLogStore {
	if db == nil {
		panic("db cannot be nil") // ALLOW-PANIC
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresFocusLogStore{
		db:     db,
		logger: logger.With(slog.String("component", "focus_log_store")),
	}
}

var _ store.FocusLogStore = (*PostgresFocusLogStore)(nil)

// Create implements store.FocusLogStore.Create
func (s *PostgresFocusLogStore) Create(ctx context.Context, focusLog *domain.FocusLog) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := focusLog.Validate(); err != nil {
		log.Warn("invalid focus log", slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO focus_logs (id, user_id, focus_score, time_of_day, notes, logged_on, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		focusLog.ID,
		focusLog.UserID,
		focusLog.FocusScore,
		focusLog.TimeOfDay,
		focusLog.Notes,
		focusLog.Date,
		focusLog.CreatedAt,
	)
	if err != nil {
		log.Error("failed to create focus log",
			slog.String("error", err.Error()),
			slog.String("user_id", focusLog.UserID.String()))
		return MapError(err)
	}

	log.Debug("focus log created",
		slog.String("focus_log_id", focusLog.ID.String()),
		slog.Int("hour", focusLog.TimeOfDay))
	return nil
}

// ListByUser implements store.FocusLogStore.ListByUser
func (s *PostgresFocusLogStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.FocusLog, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, focus_score, time_of_day, notes, logged_on, created_at
		FROM focus_logs
		WHERE user_id = $1
		ORDER BY logged_on DESC, created_at DESC
	`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to list focus logs", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	logs := make([]*domain.FocusLog, 0)
	for rows.Next() {
		var l domain.FocusLog
		if err := rows.Scan(
			&l.ID,
			&l.UserID,
			&l.FocusScore,
			&l.TimeOfDay,
			&l.Notes,
			&l.Date,
			&l.CreatedAt,
		); err != nil {
			log.Error("failed to scan focus log row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		logs = append(logs, &l)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating focus log rows", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	return logs, nil
}

// WithTx implements store.FocusLogStore.WithTx
func (s *PostgresFocusLogStore) WithTx(tx *sql.Tx) store.FocusLogStore {
	return &PostgresFocusLogStore{db: tx, logger: s.logger}
}
