package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/studyplan-api/internal/domain"
)

// Auth

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Name     string `json:"name"     validate:"required,max=50"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenRequest defines the payload for the token refresh endpoint.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// UpdatePreferencesRequest is a partial update; omitted fields keep their value.
type UpdatePreferencesRequest struct {
	StudyHoursPerDay   *float64 `json:"study_hours_per_day,omitempty"  validate:"omitempty,gt=0,lte=24"`
	PreferredStudyTime *string  `json:"preferred_study_time,omitempty" validate:"omitempty,oneof=morning afternoon evening night"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	ID          uuid.UUID          `json:"id"`
	Name        string             `json:"name"`
	Email       string             `json:"email"`
	Preferences domain.Preferences `json:"preferences"`
	CreatedAt   time.Time          `json:"created_at"`
}

// AuthResponse is returned by register, login and refresh.
type AuthResponse struct {
	User         *UserResponse `json:"user,omitempty"`
	AccessToken  string        `json:"token"`
	RefreshToken string        `json:"refresh_token"`
	// ExpiresAt is the RFC 3339 time the access token expires.
	ExpiresAt string `json:"expires_at"`
}

// Tasks

// CreateTaskRequest defines the payload for creating a task.
type CreateTaskRequest struct {
	Subject  string     `json:"subject"            validate:"required,max=100"`
	Title    string     `json:"title"              validate:"required,max=150"`
	TaskType string     `json:"task_type"          validate:"required,oneof=Heavy Medium Light Review"`
	Duration float64    `json:"duration"           validate:"required,gte=0.1"`
	Deadline *time.Time `json:"deadline,omitempty"`
}

// UpdateTaskRequest is a partial update of a task.
type UpdateTaskRequest struct {
	Subject       *string    `json:"subject,omitempty"   validate:"omitempty,min=1,max=100"`
	Title         *string    `json:"title,omitempty"     validate:"omitempty,min=1,max=150"`
	TaskType      *string    `json:"task_type,omitempty" validate:"omitempty,oneof=Heavy Medium Light Review"`
	Duration      *float64   `json:"duration,omitempty"  validate:"omitempty,gte=0.1"`
	Deadline      *time.Time `json:"deadline,omitempty"`
	ClearDeadline bool       `json:"clear_deadline,omitempty"`
	Completed     *bool      `json:"completed,omitempty"`
}

// Focus logs

// CreateFocusLogRequest defines the payload for logging a focus sample.
// TimeOfDay is a pointer because midnight (0) is a valid hour.
type CreateFocusLogRequest struct {
	FocusScore int        `json:"focus_score"     validate:"required,min=1,max=5"`
	TimeOfDay  *int       `json:"time_of_day"     validate:"required,min=0,max=23"`
	Notes      string     `json:"notes,omitempty" validate:"max=500"`
	Date       *time.Time `json:"date,omitempty"`
}

// Subjects

// CreateSubjectRequest defines the payload for creating a subject.
type CreateSubjectRequest struct {
	Name        string    `json:"name"                  validate:"required,max=100"`
	Description string    `json:"description,omitempty" validate:"max=500"`
	Difficulty  int       `json:"difficulty"            validate:"required,min=1,max=5"`
	TotalHours  float64   `json:"total_hours"           validate:"required,gte=0.5,lte=1000"`
	ExamDate    time.Time `json:"exam_date"             validate:"required"`
	Color       string    `json:"color,omitempty"       validate:"omitempty,hexcolor"`
}

// UpdateSubjectRequest is a partial update of a subject.
type UpdateSubjectRequest struct {
	Name        *string    `json:"name,omitempty"        validate:"omitempty,min=1,max=100"`
	Description *string    `json:"description,omitempty" validate:"omitempty,max=500"`
	Difficulty  *int       `json:"difficulty,omitempty"  validate:"omitempty,min=1,max=5"`
	TotalHours  *float64   `json:"total_hours,omitempty" validate:"omitempty,gte=0.5,lte=1000"`
	ExamDate    *time.Time `json:"exam_date,omitempty"`
	Color       *string    `json:"color,omitempty"       validate:"omitempty,hexcolor"`
}

// Schedules

// GenerateScheduleRequest selects spaced planning when SubjectID is set and
// adaptive planning otherwise. DailyAvailability only affects spaced planning.
type GenerateScheduleRequest struct {
	SubjectID         *uuid.UUID `json:"subject_id,omitempty"`
	DailyAvailability *float64   `json:"daily_availability,omitempty" validate:"omitempty,gt=0,lte=24"`
}

// UpdateSessionStatusRequest defines the payload for changing a session's status.
type UpdateSessionStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=scheduled completed skipped"`
}

// ListResponse wraps a collection with its size.
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}

func newListResponse[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items, Count: len(items)}
}

func userToResponse(user *domain.User) *UserResponse {
	return &UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		Preferences: user.Preferences,
		CreatedAt:   user.CreatedAt,
	}
}
