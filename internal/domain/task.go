package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// TaskType classifies how much cognitive load a task demands.
type TaskType string

// Possible task types, from most to least demanding
const (
	TaskTypeHeavy  TaskType = "Heavy"
	TaskTypeMedium TaskType = "Medium"
	TaskTypeLight  TaskType = "Light"
	TaskTypeReview TaskType = "Review"
)

// MinTaskDuration is the smallest estimated duration, in hours, a task may have.
const MinTaskDuration = 0.1

// Task validation errors
var (
	ErrTaskIDEmpty         = newValidationError("task ID cannot be empty")
	ErrTaskUserIDEmpty     = newValidationError("task user ID cannot be empty")
	ErrTaskSubjectEmpty    = newValidationError("task subject cannot be empty")
	ErrTaskTitleEmpty      = newValidationError("task title cannot be empty")
	ErrTaskTitleTooLong    = newValidationError("task title must be at most 150 characters long")
	ErrInvalidTaskType     = newValidationError("invalid task type")
	ErrInvalidTaskDuration = newValidationError("task duration must be at least 0.1 hours")
)

// MaxTitleLength bounds task, schedule and session titles.
const MaxTitleLength = 150

// Task is a unit of study work with an estimated duration.
// The planner reads tasks but never modifies them.
type Task struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	Subject   string     `json:"subject"`
	Title     string     `json:"title"`
	TaskType  TaskType   `json:"task_type"`
	Duration  float64    `json:"duration"`
	Deadline  *time.Time `json:"deadline,omitempty"`
	Completed bool       `json:"completed"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// NewTask creates a new, incomplete Task.
func NewTask(
	userID uuid.UUID,
	subject, title string,
	taskType TaskType,
	duration float64,
	deadline *time.Time,
) (*Task, error) {
	now := time.Now().UTC()
	task := &Task{
		ID:        uuid.New(),
		UserID:    userID,
		Subject:   strings.TrimSpace(subject),
		Title:     strings.TrimSpace(title),
		TaskType:  taskType,
		Duration:  duration,
		Deadline:  deadline,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}
	return task, nil
}

// Validate checks if the Task has valid data.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrTaskIDEmpty
	}
	if t.UserID == uuid.Nil {
		return ErrTaskUserIDEmpty
	}
	if t.Subject == "" {
		return ErrTaskSubjectEmpty
	}
	if t.Title == "" {
		return ErrTaskTitleEmpty
	}
	if len(t.Title) > MaxTitleLength {
		return ErrTaskTitleTooLong
	}
	if !IsValidTaskType(t.TaskType) {
		return ErrInvalidTaskType
	}
	if t.Duration < MinTaskDuration {
		return ErrInvalidTaskDuration
	}
	return nil
}

// IsValidTaskType reports whether tt is one of the known task types.
func IsValidTaskType(tt TaskType) bool {
	switch tt {
	case TaskTypeHeavy, TaskTypeMedium, TaskTypeLight, TaskTypeReview:
		return true
	default:
		return false
	}
}
