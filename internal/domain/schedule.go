package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ScheduleStatus is the lifecycle state of a generated schedule.
type ScheduleStatus string

// Schedule statuses
const (
	ScheduleStatusActive    ScheduleStatus = "active"
	ScheduleStatusCompleted ScheduleStatus = "completed"
	ScheduleStatusArchived  ScheduleStatus = "archived"
)

// Schedule validation errors
var (
	ErrScheduleIDEmpty       = newValidationError("schedule ID cannot be empty")
	ErrScheduleUserIDEmpty   = newValidationError("schedule user ID cannot be empty")
	ErrScheduleTitleEmpty    = newValidationError("schedule title cannot be empty")
	ErrScheduleTitleTooLong  = newValidationError("schedule title must be at most 150 characters long")
	ErrInvalidScheduleStatus = newValidationError("invalid schedule status")
	ErrNegativeScheduleHours = newValidationError("schedule total hours cannot be negative")
)

// Schedule groups the sessions produced by one planner run.
// SubjectID is set only for spaced schedules. SessionCount is filled in by
// listings and is not persisted.
type Schedule struct {
	ID            uuid.UUID      `json:"id"`
	UserID        uuid.UUID      `json:"user_id"`
	Title         string         `json:"title"`
	GeneratedDate time.Time      `json:"generated_date"`
	TotalHours    float64        `json:"total_hours"`
	ExamDate      *time.Time     `json:"exam_date,omitempty"`
	SubjectID     uuid.NullUUID  `json:"subject_id"`
	Status        ScheduleStatus `json:"status"`
	SessionCount  int            `json:"session_count"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// ScheduleTitle builds the default title for a schedule generated at the given time.
func ScheduleTitle(generated time.Time) string {
	return fmt.Sprintf("Generated Schedule - %s", generated.Format("2006-01-02"))
}

// NewSchedule creates an active Schedule generated at the given time.
func NewSchedule(userID uuid.UUID, title string, generated time.Time, totalHours float64) (*Schedule, error) {
	now := time.Now().UTC()
	schedule := &Schedule{
		ID:            uuid.New(),
		UserID:        userID,
		Title:         strings.TrimSpace(title),
		GeneratedDate: generated,
		TotalHours:    totalHours,
		Status:        ScheduleStatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := schedule.Validate(); err != nil {
		return nil, err
	}
	return schedule, nil
}

// Validate checks if the Schedule has valid data.
func (s *Schedule) Validate() error {
	if s.ID == uuid.Nil {
		return ErrScheduleIDEmpty
	}
	if s.UserID == uuid.Nil {
		return ErrScheduleUserIDEmpty
	}
	if s.Title == "" {
		return ErrScheduleTitleEmpty
	}
	if len(s.Title) > MaxTitleLength {
		return ErrScheduleTitleTooLong
	}
	if s.TotalHours < 0 {
		return ErrNegativeScheduleHours
	}
	switch s.Status {
	case ScheduleStatusActive, ScheduleStatusCompleted, ScheduleStatusArchived:
		return nil
	default:
		return ErrInvalidScheduleStatus
	}
}
