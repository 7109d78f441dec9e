package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/studyplan-api/internal/domain"
	"github.com/phrazzld/studyplan-api/internal/domain/planner"
	"github.com/phrazzld/studyplan-api/internal/platform/logger"
	"github.com/phrazzld/studyplan-api/internal/store"
)

// GenerateRequest selects the planning mode. With SubjectID set the spaced
// planner runs for that subject; otherwise the adaptive planner runs over the
// user's incomplete tasks. DailyAvailability only applies to spaced planning.
type GenerateRequest struct {
	SubjectID         *uuid.UUID
	DailyAvailability *float64
}

// ScheduleDetail is a schedule together with its sessions in date order.
type ScheduleDetail struct {
	Schedule *domain.Schedule       `json:"schedule"`
	Sessions []*domain.StudySession `json:"sessions"`
}

// ScheduleService generates, stores and tracks study schedules.
type ScheduleService interface {
	// GenerateSchedule runs the planner and persists the schedule and its
	// sessions in a single transaction.
	GenerateSchedule(ctx context.Context, userID uuid.UUID, req GenerateRequest) (*ScheduleDetail, error)

	// ListSchedules returns the user's schedules, newest first, with session counts.
	ListSchedules(ctx context.Context, userID uuid.UUID) ([]*domain.Schedule, error)

	// GetSchedule returns one schedule with its sessions.
	GetSchedule(ctx context.Context, userID, scheduleID uuid.UUID) (*ScheduleDetail, error)

	// DeleteSchedule removes a schedule and its sessions.
	DeleteSchedule(ctx context.Context, userID, scheduleID uuid.UUID) error

	// UpdateSessionStatus marks a session scheduled, completed or skipped.
	UpdateSessionStatus(
		ctx context.Context,
		userID, sessionID uuid.UUID,
		status domain.SessionStatus,
	) (*domain.StudySession, error)
}

// ScheduleStores groups the stores the schedule service reads and writes.
type ScheduleStores struct {
	Users     store.UserStore
	Tasks     store.TaskStore
	FocusLogs store.FocusLogStore
	Subjects  store.SubjectStore
	Schedules store.ScheduleStore
}

// ScheduleOption customises the schedule service.
type ScheduleOption func(*scheduleServiceImpl)

// WithClock replaces the source of "now" used for planning.
func WithClock(now func() time.Time) ScheduleOption {
	return func(s *scheduleServiceImpl) {
		if now != nil {
			s.now = now
		}
	}
}

type scheduleServiceImpl struct {
	stores ScheduleStores
	runTx  store.TxRunner
	engine planner.Service
	now    func() time.Time
	logger *slog.Logger
}

var _ ScheduleService = (*scheduleServiceImpl)(nil)

// NewScheduleService creates a new ScheduleService.
// It returns an error if any of the required dependencies are nil.
func NewScheduleService(
	stores ScheduleStores,
	runTx store.TxRunner,
	engine planner.Service,
	logger *slog.Logger,
	opts ...ScheduleOption,
) (ScheduleService, error) {
	switch {
	case stores.Users == nil, stores.Tasks == nil, stores.FocusLogs == nil,
		stores.Subjects == nil, stores.Schedules == nil:
		return nil, NewServiceError("schedule", "create_service", errors.New("all stores are required"))
	case runTx == nil:
		return nil, NewServiceError("schedule", "create_service", errors.New("transaction runner cannot be nil"))
	case engine == nil:
		return nil, NewServiceError("schedule", "create_service", errors.New("planner cannot be nil"))
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &scheduleServiceImpl{
		stores: stores,
		runTx:  runTx,
		engine: engine,
		now:    time.Now,
		logger: logger.With(slog.String("component", "schedule_service")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// GenerateSchedule implements ScheduleService
func (s *scheduleServiceImpl) GenerateSchedule(
	ctx context.Context,
	userID uuid.UUID,
	req GenerateRequest,
) (*ScheduleDetail, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	now := s.now()

	var (
		planned   []planner.Session
		examDate  *time.Time
		subjectID uuid.NullUUID
		err       error
	)
	if req.SubjectID == nil {
		planned, err = s.planAdaptive(ctx, userID, now)
	} else {
		var subject *domain.Subject
		subject, planned, err = s.planSpaced(ctx, userID, *req.SubjectID, req.DailyAvailability, now)
		if subject != nil {
			exam := subject.ExamDate
			examDate = &exam
			subjectID = uuid.NullUUID{UUID: subject.ID, Valid: true}
		}
	}
	if err != nil {
		return nil, NewServiceError("schedule", "generate", err)
	}
	if len(planned) == 0 {
		log.Info("planner produced no sessions", slog.String("user_id", userID.String()))
		return nil, ErrNoSessionsGenerated
	}

	schedule, err := domain.NewSchedule(userID, domain.ScheduleTitle(now), now, roundHours(planner.TotalHours(planned)))
	if err != nil {
		return nil, NewServiceError("schedule", "generate", err)
	}
	schedule.ExamDate = examDate
	schedule.SubjectID = subjectID

	sessions := toStudySessions(userID, schedule.ID, planned, schedule.CreatedAt)

	err = s.runTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		schedules := s.stores.Schedules.WithTx(tx)
		if err := schedules.Create(ctx, schedule); err != nil {
			return err
		}
		return schedules.CreateSessions(ctx, sessions)
	})
	if err != nil {
		log.Error("failed to persist schedule",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, NewServiceError("schedule", "generate", err)
	}
	schedule.SessionCount = len(sessions)

	log.Info("schedule generated",
		slog.String("schedule_id", schedule.ID.String()),
		slog.Int("sessions", len(sessions)),
		slog.Float64("total_hours", schedule.TotalHours),
		slog.Bool("spaced", subjectID.Valid))

	return &ScheduleDetail{Schedule: schedule, Sessions: sessions}, nil
}

func (s *scheduleServiceImpl) planAdaptive(
	ctx context.Context,
	userID uuid.UUID,
	now time.Time,
) ([]planner.Session, error) {
	tasks, err := s.stores.Tasks.List(ctx, userID, store.TaskFilter{IncompleteOnly: true})
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, ErrNoPendingTasks
	}

	logs, err := s.stores.FocusLogs.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	user, err := s.stores.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	planned, err := s.engine.GenerateAdaptiveSchedule(tasks, logs, user.Preferences, now)
	if err != nil {
		return nil, err
	}
	for i := range planned {
		if planned[i].Notes == "" && planned[i].FocusLevel != nil {
			planned[i].Notes = planner.FocusLevelNote(*planned[i].FocusLevel)
		}
	}
	return planned, nil
}

func (s *scheduleServiceImpl) planSpaced(
	ctx context.Context,
	userID, subjectID uuid.UUID,
	availability *float64,
	now time.Time,
) (*domain.Subject, []planner.Session, error) {
	subject, err := s.stores.Subjects.GetByID(ctx, userID, subjectID)
	if err != nil {
		return nil, nil, err
	}

	opts := s.engine.DefaultOptions()
	if availability != nil {
		opts.DailyAvailability = *availability
	}

	planned, err := s.engine.GenerateStudySessions(subject, opts, now)
	if err != nil {
		return subject, nil, err
	}
	return subject, planned, nil
}

// ListSchedules implements ScheduleService
func (s *scheduleServiceImpl) ListSchedules(ctx context.Context, userID uuid.UUID) ([]*domain.Schedule, error) {
	schedules, err := s.stores.Schedules.List(ctx, userID)
	if err != nil {
		return nil, NewServiceError("schedule", "list", err)
	}
	return schedules, nil
}

// GetSchedule implements ScheduleService
func (s *scheduleServiceImpl) GetSchedule(
	ctx context.Context,
	userID, scheduleID uuid.UUID,
) (*ScheduleDetail, error) {
	schedule, err := s.stores.Schedules.GetByID(ctx, userID, scheduleID)
	if err != nil {
		return nil, NewServiceError("schedule", "get", err)
	}
	sessions, err := s.stores.Schedules.ListSessions(ctx, userID, scheduleID)
	if err != nil {
		return nil, NewServiceError("schedule", "get", err)
	}
	schedule.SessionCount = len(sessions)
	return &ScheduleDetail{Schedule: schedule, Sessions: sessions}, nil
}

// DeleteSchedule implements ScheduleService
func (s *scheduleServiceImpl) DeleteSchedule(ctx context.Context, userID, scheduleID uuid.UUID) error {
	if err := s.stores.Schedules.Delete(ctx, userID, scheduleID); err != nil {
		return NewServiceError("schedule", "delete", err)
	}
	logger.FromContextOrDefault(ctx, s.logger).Info("schedule deleted",
		slog.String("schedule_id", scheduleID.String()))
	return nil
}

// UpdateSessionStatus implements ScheduleService
func (s *scheduleServiceImpl) UpdateSessionStatus(
	ctx context.Context,
	userID, sessionID uuid.UUID,
	status domain.SessionStatus,
) (*domain.StudySession, error) {
	if !domain.IsValidSessionStatus(status) {
		return nil, NewServiceError("schedule", "update_session_status", domain.ErrInvalidSessionStatus)
	}
	session, err := s.stores.Schedules.UpdateSessionStatus(ctx, userID, sessionID, status)
	if err != nil {
		return nil, NewServiceError("schedule", "update_session_status", err)
	}
	return session, nil
}

func toStudySessions(
	userID, scheduleID uuid.UUID,
	planned []planner.Session,
	createdAt time.Time,
) []*domain.StudySession {
	sessions := make([]*domain.StudySession, 0, len(planned))
	for _, p := range planned {
		sessions = append(sessions, &domain.StudySession{
			ID:         uuid.New(),
			UserID:     userID,
			ScheduleID: scheduleID,
			SubjectID:  nullUUID(p.SubjectID),
			TaskID:     nullUUID(p.TaskID),
			Title:      p.Title,
			Subject:    p.Subject,
			TaskType:   p.TaskType,
			Date:       p.Date,
			Duration:   p.Duration,
			FocusLevel: p.FocusLevel,
			Status:     p.Status,
			Notes:      p.Notes,
			CreatedAt:  createdAt,
			UpdatedAt:  createdAt,
		})
	}
	return sessions
}

func nullUUID(id uuid.UUID) uuid.NullUUID {
	return uuid.NullUUID{UUID: id, Valid: id != uuid.Nil}
}

func roundHours(h float64) float64 {
	return math.Round(h*100) / 100
}
