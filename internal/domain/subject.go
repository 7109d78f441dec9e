package domain

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Subject bounds and defaults
const (
	MaxSubjectNameLength        = 100
	MaxSubjectDescriptionLength = 500
	MinSubjectDifficulty        = 1
	MaxSubjectDifficulty        = 5
	MinSubjectTotalHours        = 0.5
	MaxSubjectTotalHours        = 1000.0
	DefaultSubjectColor         = "#3B82F6"
)

// Subject validation errors
var (
	// ErrSubjectIDEmpty is returned when a subject ID is empty or nil.
	ErrSubjectIDEmpty = newValidationError("subject ID cannot be empty")

	// ErrSubjectUserIDEmpty is returned when a subject's user ID is empty or nil.
	ErrSubjectUserIDEmpty = newValidationError("subject user ID cannot be empty")

	// ErrSubjectNameEmpty is returned when a subject has no name.
	ErrSubjectNameEmpty = newValidationError("subject name cannot be empty")

	// ErrSubjectNameTooLong is returned when a subject name exceeds 100 characters.
	ErrSubjectNameTooLong = newValidationError("subject name must be at most 100 characters long")

	// ErrSubjectDescriptionTooLong is returned when a description exceeds 500 characters.
	ErrSubjectDescriptionTooLong = newValidationError("subject description must be at most 500 characters long")

	// ErrInvalidDifficulty is returned when difficulty is outside 1-5.
	ErrInvalidDifficulty = newValidationError("subject difficulty must be between 1 and 5")

	// ErrInvalidTotalHours is returned when total hours is outside 0.5-1000.
	ErrInvalidTotalHours = newValidationError("subject total hours must be between 0.5 and 1000")

	// ErrExamDateRequired is returned when a subject has no exam date.
	ErrExamDateRequired = newValidationError("subject exam date is required")

	// ErrInvalidColor is returned when color is not a #RRGGBB hex string.
	ErrInvalidColor = newValidationError("subject color must be a hex color like #3B82F6")
)

var hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Subject is a body of material studied towards an exam.
type Subject struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Difficulty  int       `json:"difficulty"`
	TotalHours  float64   `json:"total_hours"`
	ExamDate    time.Time `json:"exam_date"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewSubject creates a new Subject. An empty color falls back to DefaultSubjectColor.
func NewSubject(
	userID uuid.UUID,
	name, description string,
	difficulty int,
	totalHours float64,
	examDate time.Time,
	color string,
) (*Subject, error) {
	if color == "" {
		color = DefaultSubjectColor
	}
	now := time.Now().UTC()
	subject := &Subject{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		Difficulty:  difficulty,
		TotalHours:  totalHours,
		ExamDate:    examDate,
		Color:       color,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := subject.Validate(); err != nil {
		return nil, err
	}
	return subject, nil
}

// Validate checks if the Subject has valid data.
func (s *Subject) Validate() error {
	if s.ID == uuid.Nil {
		return ErrSubjectIDEmpty
	}
	if s.UserID == uuid.Nil {
		return ErrSubjectUserIDEmpty
	}
	if s.Name == "" {
		return ErrSubjectNameEmpty
	}
	if len(s.Name) > MaxSubjectNameLength {
		return ErrSubjectNameTooLong
	}
	if len(s.Description) > MaxSubjectDescriptionLength {
		return ErrSubjectDescriptionTooLong
	}
	if s.Difficulty < MinSubjectDifficulty || s.Difficulty > MaxSubjectDifficulty {
		return ErrInvalidDifficulty
	}
	if s.TotalHours < MinSubjectTotalHours || s.TotalHours > MaxSubjectTotalHours {
		return ErrInvalidTotalHours
	}
	if s.ExamDate.IsZero() {
		return ErrExamDateRequired
	}
	if !hexColorPattern.MatchString(s.Color) {
		return ErrInvalidColor
	}
	return nil
}
