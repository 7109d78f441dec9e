package domain

import (
	"time"

	"github.com/google/uuid"
)

// SessionStatus is the progress state of a study session.
type SessionStatus string

// Session statuses
const (
	SessionStatusScheduled SessionStatus = "scheduled"
	SessionStatusCompleted SessionStatus = "completed"
	SessionStatusSkipped   SessionStatus = "skipped"
)

// MaxStudySessionHours bounds a persisted session's duration.
const MaxStudySessionHours = 12.0

// Study session validation errors
var (
	ErrStudySessionIDEmpty      = newValidationError("study session ID cannot be empty")
	ErrStudySessionUserIDEmpty  = newValidationError("study session user ID cannot be empty")
	ErrStudySessionScheduleID   = newValidationError("study session schedule ID cannot be empty")
	ErrStudySessionTitleEmpty   = newValidationError("study session title cannot be empty")
	ErrInvalidSessionDuration   = newValidationError("study session duration must be positive and at most 12 hours")
	ErrInvalidSessionStatus     = newValidationError("invalid study session status")
	ErrStudySessionNotesTooLong = newValidationError("study session notes must be at most 500 characters long")
)

// StudySession is a persisted, scheduled block of study time.
type StudySession struct {
	ID         uuid.UUID     `json:"id"`
	UserID     uuid.UUID     `json:"user_id"`
	ScheduleID uuid.UUID     `json:"schedule_id"`
	SubjectID  uuid.NullUUID `json:"subject_id"`
	TaskID     uuid.NullUUID `json:"task_id"`
	Title      string        `json:"title"`
	Subject    string        `json:"subject,omitempty"`
	TaskType   TaskType      `json:"task_type,omitempty"`
	Date       time.Time     `json:"date"`
	Duration   float64       `json:"duration"`
	FocusLevel *float64      `json:"focus_level,omitempty"`
	Status     SessionStatus `json:"status"`
	Notes      string        `json:"notes,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// Validate checks if the StudySession has valid data.
func (s *StudySession) Validate() error {
	if s.ID == uuid.Nil {
		return ErrStudySessionIDEmpty
	}
	if s.UserID == uuid.Nil {
		return ErrStudySessionUserIDEmpty
	}
	if s.ScheduleID == uuid.Nil {
		return ErrStudySessionScheduleID
	}
	if s.Title == "" {
		return ErrStudySessionTitleEmpty
	}
	if s.Duration <= 0 || s.Duration > MaxStudySessionHours {
		return ErrInvalidSessionDuration
	}
	if !IsValidSessionStatus(s.Status) {
		return ErrInvalidSessionStatus
	}
	if len(s.Notes) > MaxNotesLength {
		return ErrStudySessionNotesTooLong
	}
	return nil
}

// IsValidSessionStatus reports whether status is a known session status.
func IsValidSessionStatus(status SessionStatus) bool {
	switch status {
	case SessionStatusScheduled, SessionStatusCompleted, SessionStatusSkipped:
		return true
	default:
		return false
	}
}
