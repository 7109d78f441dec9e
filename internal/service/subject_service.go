package service

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/studyplan-api/internal/domain"
	"github.com/phrazzld/studyplan-api/internal/platform/logger"
	"github.com/phrazzld/studyplan-api/internal/store"
)

// SubjectInput holds the fields of a new subject. An empty Color uses the default.
type SubjectInput struct {
	Name        string
	Description string
	Difficulty  int
	TotalHours  float64
	ExamDate    time.Time
	Color       string
}

// SubjectUpdate carries the subject fields a client wants to change.
type SubjectUpdate struct {
	Name        *string
	Description *string
	Difficulty  *int
	TotalHours  *float64
	ExamDate    *time.Time
	Color       *string
}

// SubjectService manages the subjects a user prepares exams for.
type SubjectService interface {
	CreateSubject(ctx context.Context, userID uuid.UUID, in SubjectInput) (*domain.Subject, error)
	GetSubject(ctx context.Context, userID, subjectID uuid.UUID) (*domain.Subject, error)
	ListSubjects(ctx context.Context, userID uuid.UUID) ([]*domain.Subject, error)
	UpdateSubject(ctx context.Context, userID, subjectID uuid.UUID, update SubjectUpdate) (*domain.Subject, error)
	DeleteSubject(ctx context.Context, userID, subjectID uuid.UUID) error
}

type subjectServiceImpl struct {
	subjectStore store.SubjectStore
	runTx        store.TxRunner
	logger       *slog.Logger
}

// NewSubjectService creates a new SubjectService
func NewSubjectService(subjectStore store.SubjectStore, runTx store.TxRunner, logger *slog.Logger) SubjectService {
	if logger == nil {
		logger = slog.Default()
	}
	return &subjectServiceImpl{
		subjectStore: subjectStore,
		runTx:        runTx,
		logger:       logger.With(slog.String("component", "subject_service")),
	}
}

func (s *subjectServiceImpl) CreateSubject(
	ctx context.Context,
	userID uuid.UUID,
	in SubjectInput,
) (*domain.Subject, error) {
	subject, err := domain.NewSubject(userID, in.Name, in.Description, in.Difficulty, in.TotalHours, in.ExamDate, in.Color)
	if err != nil {
		return nil, NewServiceError("subject", "create", err)
	}
	if err := s.subjectStore.Create(ctx, subject); err != nil {
		return nil, NewServiceError("subject", "create", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("subject created",
		slog.String("subject_id", subject.ID.String()))
	return subject, nil
}

func (s *subjectServiceImpl) GetSubject(ctx context.Context, userID, subjectID uuid.UUID) (*domain.Subject, error) {
	subject, err := s.subjectStore.GetByID(ctx, userID, subjectID)
	if err != nil {
		return nil, NewServiceError("subject", "get", err)
	}
	return subject, nil
}

func (s *subjectServiceImpl) ListSubjects(ctx context.Context, userID uuid.UUID) ([]*domain.Subject, error) {
	subjects, err := s.subjectStore.List(ctx, userID)
	if err != nil {
		return nil, NewServiceError("subject", "list", err)
	}
	return subjects, nil
}

func (s *subjectServiceImpl) UpdateSubject(
	ctx context.Context,
	userID, subjectID uuid.UUID,
	update SubjectUpdate,
) (*domain.Subject, error) {
	var updated *domain.Subject
	err := s.runTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		subjects := s.subjectStore.WithTx(tx)

		subject, err := subjects.GetByID(ctx, userID, subjectID)
		if err != nil {
			return err
		}
		update.apply(subject)
		if err := subject.Validate(); err != nil {
			return err
		}
		if err := subjects.Update(ctx, subject); err != nil {
			return err
		}
		updated = subject
		return nil
	})
	if err != nil {
		return nil, NewServiceError("subject", "update", err)
	}
	return updated, nil
}

func (s *subjectServiceImpl) DeleteSubject(ctx context.Context, userID, subjectID uuid.UUID) error {
	if err := s.subjectStore.Delete(ctx, userID, subjectID); err != nil {
		return NewServiceError("subject", "delete", err)
	}
	logger.FromContextOrDefault(ctx, s.logger).Debug("subject deleted",
		slog.String("subject_id", subjectID.String()))
	return nil
}

func (u SubjectUpdate) apply(subject *domain.Subject) {
	if u.Name != nil {
		subject.Name = strings.TrimSpace(*u.Name)
	}
	if u.Description != nil {
		subject.Description = strings.TrimSpace(*u.Description)
	}
	if u.Difficulty != nil {
		subject.Difficulty = *u.Difficulty
	}
	if u.TotalHours != nil {
		subject.TotalHours = *u.TotalHours
	}
	if u.ExamDate != nil {
		subject.ExamDate = *u.ExamDate
	}
	if u.Color != nil {
		subject.Color = *u.Color
	}
}
