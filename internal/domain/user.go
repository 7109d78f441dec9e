package domain

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Common validation errors
var (
	ErrEmptyUserID      = newValidationError("user ID cannot be empty")
	ErrEmptyUserName    = newValidationError("name cannot be empty")
	ErrUserNameTooLong  = newValidationError("name must be at most 50 characters long")
	ErrInvalidEmail     = newValidationError("invalid email format")
	ErrEmptyEmail       = newValidationError("email cannot be empty")
	ErrPasswordTooShort = newValidationError("password must be at least 6 characters long")
	ErrPasswordTooLong  = newValidationError("password must be at most 72 characters long")
	ErrEmptyPassword    = newValidationError("password cannot be empty")
)

const (
	// MaxUserNameLength is the longest display name accepted.
	MaxUserNameLength = 50
	// MinPasswordLength is the shortest plaintext password accepted.
	MinPasswordLength = 6
	// MaxPasswordLength is bcrypt's practical input limit.
	MaxPasswordLength = 72
)

var emailValidator = validator.New()

// User represents a registered user of the study planner.
// It contains essential user information, authentication details and
// the scheduling preferences consumed by the adaptive planner.
type User struct {
	ID             uuid.UUID   `json:"id"`
	Name           string      `json:"name"`
	Email          string      `json:"email"`
	Password       string      `json:"-"` // Plaintext password, used temporarily during registration/updates
	HashedPassword string      `json:"-"` // Never expose password hash in JSON
	Preferences    Preferences `json:"preferences"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// NewUser creates a new User with default preferences.
// Emails are normalised to lower case.
//
// NOTE: This function only sets up the user structure with the plaintext password.
// The caller is responsible for hashing the password before storing the user.
func NewUser(name, email, password string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(name),
		Email:       strings.ToLower(strings.TrimSpace(email)),
		Password:    password,
		Preferences: DefaultPreferences(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if u.Name == "" {
		return ErrEmptyUserName
	}
	if len(u.Name) > MaxUserNameLength {
		return ErrUserNameTooLong
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}
	if emailValidator.Var(u.Email, "email") != nil {
		return ErrInvalidEmail
	}

	if u.Password != "" {
		if len(u.Password) < MinPasswordLength {
			return ErrPasswordTooShort
		}
		if len(u.Password) > MaxPasswordLength {
			return ErrPasswordTooLong
		}
	} else if u.HashedPassword == "" {
		// Existing users loaded from the store only carry the hash
		return ErrEmptyPassword
	}

	return u.Preferences.Validate()
}

// UpdatePreferences replaces the user's preferences after validating them.
func (u *User) UpdatePreferences(prefs Preferences) error {
	if err := prefs.Validate(); err != nil {
		return err
	}
	u.Preferences = prefs
	u.UpdatedAt = time.Now().UTC()
	return nil
}
