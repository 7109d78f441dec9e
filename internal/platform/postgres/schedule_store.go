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

const (
	scheduleColumns = `id, user_id, title, generated_date, total_hours, exam_date, subject_id, status, created_at, updated_at`

	sessionColumns = `id, user_id, schedule_id, subject_id, task_id, title, subject_name, task_type, ` +
		`session_date, duration, focus_level, status, notes, created_at, updated_at`
)

// PostgresScheduleStore implements the store.ScheduleStore interface.
// It owns both the schedules table and the study_sessions that belong to it.
type PostgresScheduleStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresScheduleStore creates a new PostgreSQL implementation of the ScheduleStore interface.
func NewPostgresScheduleStore(db store.DBTX, logger *slog.Logger) *PostgresScheduleStore {
	if db == nil {
		panic("db cannot be nil") // ALLOW-PANIC
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresScheduleStore{
		db:     db,
		logger: logger.With(slog.String("component", "schedule_store")),
	}
}

var _ store.ScheduleStore = (*PostgresScheduleStore)(nil)

func scanSchedule(row rowScanner, extra ...any) (*domain.Schedule, error) {
	var schedule domain.Schedule
	var examDate sql.NullTime
	var status string
	dest := []any{
		&schedule.ID,
		&schedule.UserID,
		&schedule.Title,
		&schedule.GeneratedDate,
		&schedule.TotalHours,
		&examDate,
		&schedule.SubjectID,
		&status,
		&schedule.CreatedAt,
		&schedule.UpdatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	schedule.ExamDate = timePtr(examDate)
	schedule.Status = domain.ScheduleStatus(status)
	return &schedule, nil
}

func scanSession(row rowScanner) (*domain.StudySession, error) {
	var session domain.StudySession
	var taskType, status sql.NullString
	var focus sql.NullFloat64
	if err := row.Scan(
		&session.ID,
		&session.UserID,
		&session.ScheduleID,
		&session.SubjectID,
		&session.TaskID,
		&session.Title,
		&session.Subject,
		&taskType,
		&session.Date,
		&session.Duration,
		&focus,
		&status,
		&session.Notes,
		&session.CreatedAt,
		&session.UpdatedAt,
	); err != nil {
		return nil, err
	}
	session.TaskType = domain.TaskType(taskType.String)
	session.Status = domain.SessionStatus(status.String)
	if focus.Valid {
		v := focus.Float64
		session.FocusLevel = &v
	}
	return &session, nil
}

// Create implements store.ScheduleStore.Create
func (s *PostgresScheduleStore) Create(ctx context.Context, schedule *domain.Schedule) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := schedule.Validate(); err != nil {
		log.Warn("invalid schedule", slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO schedules (` + scheduleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		schedule.ID,
		schedule.UserID,
		schedule.Title,
		schedule.GeneratedDate,
		schedule.TotalHours,
		nullTime(schedule.ExamDate),
		schedule.SubjectID,
		string(schedule.Status),
		schedule.CreatedAt,
		schedule.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to create schedule",
			slog.String("error", err.Error()),
			slog.String("schedule_id", schedule.ID.String()))
		return MapError(err)
	}

	log.Debug("schedule created", slog.String("schedule_id", schedule.ID.String()))
	return nil
}

// GetByID implements store.ScheduleStore.GetByID
func (s *PostgresScheduleStore) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Schedule, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + scheduleColumns + ` FROM schedules WHERE id = $1 AND user_id = $2`
	schedule, err := scanSchedule(s.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("schedule not found", slog.String("schedule_id", id.String()))
			return nil, store.ErrScheduleNotFound
		}
		log.Error("failed to get schedule", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	return schedule, nil
}

// List implements store.ScheduleStore.List
// Most recently generated schedules come first, each with its session count.
func (s *PostgresScheduleStore) List(ctx context.Context, userID uuid.UUID) ([]*domain.Schedule, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + scheduleColumns + `,
			(SELECT COUNT(*) FROM study_sessions ss WHERE ss.schedule_id = schedules.id) AS session_count
		FROM schedules
		WHERE user_id = $1
		ORDER BY generated_date DESC, id ASC
	`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to list schedules", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	schedules := make([]*domain.Schedule, 0)
	for rows.Next() {
		var count int
		schedule, err := scanSchedule(rows, &count)
		if err != nil {
			log.Error("failed to scan schedule row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		schedule.SessionCount = count
		schedules = append(schedules, schedule)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return schedules, nil
}

// Delete implements store.ScheduleStore.Delete
// Sessions are removed with the schedule by ON DELETE CASCADE.
func (s *PostgresScheduleStore) Delete(ctx context.Context, userID, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM schedules WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		log.Error("failed to delete schedule", slog.String("error", err.Error()))
		return MapError(err)
	}
	if err := CheckRowsAffected(result, store.ErrScheduleNotFound); err != nil {
		return err
	}

	log.Info("schedule deleted", slog.String("schedule_id", id.String()))
	return nil
}

// CreateSessions implements store.ScheduleStore.CreateSessions
// Every session is validated before any row is written.
func (s *PostgresScheduleStore) CreateSessions(ctx context.Context, sessions []*domain.StudySession) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if len(sessions) == 0 {
		return nil
	}
	for i, session := range sessions {
		if err := session.Validate(); err != nil {
			log.Warn("invalid study session",
				slog.Int("index", i),
				slog.String("error", err.Error()))
			return err
		}
	}

	query := `
		INSERT INTO study_sessions (` + sessionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	for _, session := range sessions {
		taskType := sql.NullString{String: string(session.TaskType), Valid: session.TaskType != ""}
		focus := sql.NullFloat64{}
		if session.FocusLevel != nil {
			focus = sql.NullFloat64{Float64: *session.FocusLevel, Valid: true}
		}

		_, err := s.db.ExecContext(
			ctx,
			query,
			session.ID,
			session.UserID,
			session.ScheduleID,
			session.SubjectID,
			session.TaskID,
			session.Title,
			session.Subject,
			taskType,
			session.Date,
			session.Duration,
			focus,
			string(session.Status),
			session.Notes,
			session.CreatedAt,
			session.UpdatedAt,
		)
		if err != nil {
			log.Error("failed to create study session",
				slog.String("error", err.Error()),
				slog.String("schedule_id", session.ScheduleID.String()))
			return MapError(err)
		}
	}

	log.Debug("study sessions created", slog.Int("count", len(sessions)))
	return nil
}

// ListSessions implements store.ScheduleStore.ListSessions
func (s *PostgresScheduleStore) ListSessions(
	ctx context.Context,
	userID, scheduleID uuid.UUID,
) ([]*domain.StudySession, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + sessionColumns + `
		FROM study_sessions
		WHERE schedule_id = $1 AND user_id = $2
		ORDER BY session_date ASC, id ASC
	`
	rows, err := s.db.QueryContext(ctx, query, scheduleID, userID)
	if err != nil {
		log.Error("failed to list study sessions", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	sessions := make([]*domain.StudySession, 0)
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			log.Error("failed to scan study session row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return sessions, nil
}

// UpdateSessionStatus implements store.ScheduleStore.UpdateSessionStatus
func (s *PostgresScheduleStore) UpdateSessionStatus(
	ctx context.Context,
	userID, sessionID uuid.UUID,
	status domain.SessionStatus,
) (*domain.StudySession, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if !domain.IsValidSessionStatus(status) {
		return nil, domain.ErrInvalidSessionStatus
	}

	query := `
		UPDATE study_sessions
		SET status = $1, updated_at = $2
		WHERE id = $3 AND user_id = $4
		RETURNING ` + sessionColumns
	session, err := scanSession(s.db.QueryRowContext(ctx, query, string(status), time.Now().UTC(), sessionID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("study session not found", slog.String("session_id", sessionID.String()))
			return nil, store.ErrStudySessionNotFound
		}
		log.Error("failed to update study session status", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	log.Debug("study session status updated",
		slog.String("session_id", sessionID.String()),
		slog.String("status", string(status)))
	return session, nil
}

// WithTx implements store.ScheduleStore.WithTx
func (s *PostgresScheduleStore) WithTx(tx *sql.Tx) store.ScheduleStore {
	return &PostgresScheduleStore{db: tx, logger: s.logger}
}
