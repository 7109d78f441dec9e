package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/studyplan-api/internal/domain"
	"github.com/phrazzld/studyplan-api/internal/platform/logger"
	"github.com/phrazzld/studyplan-api/internal/store"
)

const subjectColumns = `id, user_id, name, description, difficulty, total_hours, exam_date, color, created_at, updated_at`

// PostgresSubjectStore implements the store.SubjectStore interface.
type PostgresSubjectStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresSubjectStore creates a new PostgreSQL implementation of the SubjectStore interface.
func NewPostgresSubjectStore(db store.DBTX, logger *slog.Logger) *PostgresSubjectStore {
	if db == nil {
		panic("db cannot be nil") // ALLOW-PANIC
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresSubjectStore{
		db:     db,
		logger: logger.With(slog.String("component", "subject_store")),
	}
}

var _ store.SubjectStore = (*PostgresSubjectStore)(nil)

func scanSubject(row rowScanner) (*domain.Subject, error) {
	var subject domain.Subject
	if err := row.Scan(
		&subject.ID,
		&subject.UserID,
		&subject.Name,
		&subject.Description,
		&subject.Difficulty,
		&subject.TotalHours,
		&subject.ExamDate,
		&subject.Color,
		&subject.CreatedAt,
		&subject.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &subject, nil
}

// Create implements store.SubjectStore.Create
func (s *PostgresSubjectStore) Create(ctx context.Context, subject *domain.Subject) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := subject.Validate(); err != nil {
		log.Warn("invalid subject", slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO subjects (` + subjectColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		subject.ID,
		subject.UserID,
		subject.Name,
		subject.Description,
		subject.Difficulty,
		subject.TotalHours,
		subject.ExamDate,
		subject.Color,
		subject.CreatedAt,
		subject.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to create subject",
			slog.String("error", err.Error()),
			slog.String("subject_id", subject.ID.String()))
		return MapError(err)
	}

	log.Debug("subject created", slog.String("subject_id", subject.ID.String()))
	return nil
}

// GetByID implements store.SubjectStore.GetByID
func (s *PostgresSubjectStore) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Subject, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + subjectColumns + ` FROM subjects WHERE id = $1 AND user_id = $2`
	subject, err := scanSubject(s.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("subject not found", slog.String("subject_id", id.String()))
			return nil, store.ErrSubjectNotFound
		}
		log.Error("failed to get subject", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	return subject, nil
}

// List implements store.SubjectStore.List
// Subjects come back ordered by exam date, nearest first.
func (s *PostgresSubjectStore) List(ctx context.Context, userID uuid.UUID) ([]*domain.Subject, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + subjectColumns + ` FROM subjects WHERE user_id = $1 ORDER BY exam_date ASC, name ASC`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to list subjects", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	subjects := make([]*domain.Subject, 0)
	for rows.Next() {
		subject, err := scanSubject(rows)
		if err != nil {
			log.Error("failed to scan subject row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		subjects = append(subjects, subject)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return subjects, nil
}

// Update implements store.SubjectStore.Update
func (s *PostgresSubjectStore) Update(ctx context.Context, subject *domain.Subject) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := subject.Validate(); err != nil {
		log.Warn("invalid subject update", slog.String("error", err.Error()))
		return err
	}
	subject.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE subjects
		SET name = $1, description = $2, difficulty = $3, total_hours = $4,
			exam_date = $5, color = $6, updated_at = $7
		WHERE id = $8 AND user_id = $9
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		subject.Name,
		subject.Description,
		subject.Difficulty,
		subject.TotalHours,
		subject.ExamDate,
		subject.Color,
		subject.UpdatedAt,
		subject.ID,
		subject.UserID,
	)
	if err != nil {
		log.Error("failed to update subject", slog.String("error", err.Error()))
		return MapError(err)
	}
	if err := CheckRowsAffected(result, store.ErrSubjectNotFound); err != nil {
		return err
	}

	log.Debug("subject updated", slog.String("subject_id", subject.ID.String()))
	return nil
}

// Delete implements store.SubjectStore.Delete
// Schedules generated from the subject keep existing with their subject reference cleared.
func (s *PostgresSubjectStore) Delete(ctx context.Context, userID, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM subjects WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		log.Error("failed to delete subject", slog.String("error", err.Error()))
		return MapError(err)
	}
	if err := CheckRowsAffected(result, store.ErrSubjectNotFound); err != nil {
		return err
	}

	log.Debug("subject deleted", slog.String("subject_id", id.String()))
	return nil
}

// WithTx implements store.SubjectStore.WithTx
func (s *PostgresSubjectStore) WithTx(tx *sql.Tx) store.SubjectStore {
	return &PostgresSubjectStore{db: tx, logger: s.logger}
}
