package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Focus score and hour bounds
const (
	MinFocusScore = 1
	MaxFocusScore = 5
	MinHourOfDay  = 0
	MaxHourOfDay  = 23
)

// Focus log validation errors
var (
	ErrFocusLogIDEmpty      = newValidationError("focus log ID cannot be empty")
	ErrFocusLogUserIDEmpty  = newValidationError("focus log user ID cannot be empty")
	ErrInvalidFocusScore    = newValidationError("focus score must be between 1 and 5")
	ErrInvalidTimeOfDay     = newValidationError("time of day must be an hour between 0 and 23")
	ErrFocusLogNotesTooLong = newValidationError("focus log notes must be at most 500 characters long")
)

// MaxNotesLength bounds free-text notes on logs and sessions.
const MaxNotesLength = 500

// FocusLog is a self-reported focus sample tied to an hour of the day.
type FocusLog struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	FocusScore int       `json:"focus_score"`
	TimeOfDay  int       `json:"time_of_day"`
	Notes      string    `json:"notes,omitempty"`
	Date       time.Time `json:"date"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewFocusLog records a focus sample. A zero date defaults to now.
func NewFocusLog(userID uuid.UUID, focusScore, timeOfDay int, notes string, date time.Time) (*FocusLog, error) {
	now := time.Now().UTC()
	if date.IsZero() {
		date = now
	}
	log := &FocusLog{
		ID:         uuid.New(),
		UserID:     userID,
		FocusScore: focusScore,
		TimeOfDay:  timeOfDay,
		Notes:      strings.TrimSpace(notes),
		Date:       date,
		CreatedAt:  now,
	}
	if err := log.Validate(); err != nil {
		return nil, err
	}
	return log, nil
}

// Validate checks if the FocusLog has valid data.
func (l *FocusLog) Validate() error {
	if l.ID == uuid.Nil {
		return ErrFocusLogIDEmpty
	}
	if l.UserID == uuid.Nil {
		return ErrFocusLogUserIDEmpty
	}
	if l.FocusScore < MinFocusScore || l.FocusScore > MaxFocusScore {
		return ErrInvalidFocusScore
	}
	if l.TimeOfDay < MinHourOfDay || l.TimeOfDay > MaxHourOfDay {
		return ErrInvalidTimeOfDay
	}
	if len(l.Notes) > MaxNotesLength {
		return ErrFocusLogNotesTooLong
	}
	return nil
}
