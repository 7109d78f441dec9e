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

// TaskInput holds the fields of a new task.
type TaskInput struct {
	Subject  string
	Title    string
	TaskType domain.TaskType
	Duration float64
	Deadline *time.Time
}

// TaskUpdate carries the task fields a client wants to change.
// Nil fields are left alone; ClearDeadline removes an existing deadline.
type TaskUpdate struct {
	Subject       *string
	Title         *string
	TaskType      *domain.TaskType
	Duration      *float64
	Deadline      *time.Time
	ClearDeadline bool
	Completed     *bool
}

// TaskService manages a user's tasks.
type TaskService interface {
	CreateTask(ctx context.Context, userID uuid.UUID, in TaskInput) (*domain.Task, error)
	GetTask(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error)
	ListTasks(ctx context.Context, userID uuid.UUID, incompleteOnly bool) ([]*domain.Task, error)
	UpdateTask(ctx context.Context, userID, taskID uuid.UUID, update TaskUpdate) (*domain.Task, error)
	DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error
}

type taskServiceImpl struct {
	taskStore store.TaskStore
	runTx     store.TxRunner
	logger    *slog.Logger
}

// NewTaskService creates a new TaskService
func NewTaskService(taskStore store.TaskStore, runTx store.TxRunner, logger *slog.Logger) TaskService {
	if logger == nil {
		logger = slog.Default()
	}
	return &taskServiceImpl{
		taskStore: taskStore,
		runTx:     runTx,
		logger:    logger.With(slog.String("component", "task_service")),
	}
}

func (s *taskServiceImpl) CreateTask(ctx context.Context, userID uuid.UUID, in TaskInput) (*domain.Task, error) {
	task, err := domain.NewTask(userID, in.Subject, in.Title, in.TaskType, in.Duration, in.Deadline)
	if err != nil {
		return nil, NewServiceError("task", "create", err)
	}
	if err := s.taskStore.Create(ctx, task); err != nil {
		return nil, NewServiceError("task", "create", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("task created",
		slog.String("task_id", task.ID.String()),
		slog.String("task_type", string(task.TaskType)))
	return task, nil
}

func (s *taskServiceImpl) GetTask(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error) {
	task, err := s.taskStore.GetByID(ctx, userID, taskID)
	if err != nil {
		return nil, NewServiceError("task", "get", err)
	}
	return task, nil
}

func (s *taskServiceImpl) ListTasks(ctx context.Context, userID uuid.UUID, incompleteOnly bool) ([]*domain.Task, error) {
	tasks, err := s.taskStore.List(ctx, userID, store.TaskFilter{IncompleteOnly: incompleteOnly})
	if err != nil {
		return nil, NewServiceError("task", "list", err)
	}
	return tasks, nil
}

func (s *taskServiceImpl) UpdateTask(
	ctx context.Context,
	userID, taskID uuid.UUID,
	update TaskUpdate,
) (*domain.Task, error) {
	var updated *domain.Task
	err := s.runTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		tasks := s.taskStore.WithTx(tx)

		task, err := tasks.GetByID(ctx, userID, taskID)
		if err != nil {
			return err
		}
		update.apply(task)
		if err := task.Validate(); err != nil {
			return err
		}
		if err := tasks.Update(ctx, task); err != nil {
			return err
		}
		updated = task
		return nil
	})
	if err != nil {
		return nil, NewServiceError("task", "update", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("task updated",
		slog.String("task_id", taskID.String()),
		slog.Bool("completed", updated.Completed))
	return updated, nil
}

func (s *taskServiceImpl) DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error {
	if err := s.taskStore.Delete(ctx, userID, taskID); err != nil {
		return NewServiceError("task", "delete", err)
	}
	return nil
}

func (u TaskUpdate) apply(task *domain.Task) {
	if u.Subject != nil {
		task.Subject = strings.TrimSpace(*u.Subject)
	}
	if u.Title != nil {
		task.Title = strings.TrimSpace(*u.Title)
	}
	if u.TaskType != nil {
		task.TaskType = *u.TaskType
	}
	if u.Duration != nil {
		task.Duration = *u.Duration
	}
	if u.ClearDeadline {
		task.Deadline = nil
	} else if u.Deadline != nil {
		d := *u.Deadline
		task.Deadline = &d
	}
	if u.Completed != nil {
		task.Completed = *u.Completed
	}
}
