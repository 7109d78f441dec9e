package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/studyplan-api/internal/domain"
	"github.com/phrazzld/studyplan-api/internal/domain/planner"
	"github.com/phrazzld/studyplan-api/internal/platform/logger"
	"github.com/phrazzld/studyplan-api/internal/store"
)

// FocusInput is a self-reported focus sample. A zero Date means now.
type FocusInput struct {
	FocusScore int
	TimeOfDay  int
	Notes      string
	Date       time.Time
}

// FocusStats summarises a user's focus logs per hour of day.
type FocusStats struct {
	Hours     []planner.HourStat `json:"hours"`
	TotalLogs int                `json:"total_logs"`
	// BestHour is the hour with the highest average, nil when nothing is logged.
	BestHour *int `json:"best_hour,omitempty"`
}

// FocusService records focus samples and reports on them.
type FocusService interface {
	LogFocus(ctx context.Context, userID uuid.UUID, in FocusInput) (*domain.FocusLog, error)
	ListFocusLogs(ctx context.Context, userID uuid.UUID) ([]*domain.FocusLog, error)
	FocusStats(ctx context.Context, userID uuid.UUID) (*FocusStats, error)
}

type focusServiceImpl struct {
	focusStore store.FocusLogStore
	engine     planner.Service
	logger     *slog.Logger
}

// NewFocusService creates a new FocusService
func NewFocusService(focusStore store.FocusLogStore, engine planner.Service, logger *slog.Logger) FocusService {
	if logger == nil {
		logger = slog.Default()
	}
	return &focusServiceImpl{
		focusStore: focusStore,
		engine:     engine,
		logger:     logger.With(slog.String("component", "focus_service")),
	}
}

func (s *focusServiceImpl) LogFocus(ctx context.Context, userID uuid.UUID, in FocusInput) (*domain.FocusLog, error) {
	entry, err := domain.NewFocusLog(userID, in.FocusScore, in.TimeOfDay, in.Notes, in.Date)
	if err != nil {
		return nil, NewServiceError("focus", "log", err)
	}
	if err := s.focusStore.Create(ctx, entry); err != nil {
		return nil, NewServiceError("focus", "log", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("focus logged",
		slog.Int("hour", entry.TimeOfDay),
		slog.Int("score", entry.FocusScore))
	return entry, nil
}

func (s *focusServiceImpl) ListFocusLogs(ctx context.Context, userID uuid.UUID) ([]*domain.FocusLog, error) {
	logs, err := s.focusStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, NewServiceError("focus", "list", err)
	}
	return logs, nil
}

func (s *focusServiceImpl) FocusStats(ctx context.Context, userID uuid.UUID) (*FocusStats, error) {
	logs, err := s.focusStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, NewServiceError("focus", "stats", err)
	}

	hours := s.engine.FocusStats(logs)
	stats := &FocusStats{Hours: hours}
	best := -1
	for i, h := range hours {
		stats.TotalLogs += h.Count
		// hours are ascending, so ties keep the earliest hour
		if best < 0 || h.Average > hours[best].Average {
			best = i
		}
	}
	if best >= 0 {
		hour := hours[best].Hour
		stats.BestHour = &hour
	}
	return stats, nil
}
