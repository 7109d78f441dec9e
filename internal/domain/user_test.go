package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	user, err := NewUser("  Ada  ", "Ada@Example.com", "secret123")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if user.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}
	if user.Name != "Ada" {
		t.Errorf("Expected trimmed name, got %q", user.Name)
	}
	if user.Email != "ada@example.com" {
		t.Errorf("Expected lower-cased email, got %q", user.Email)
	}
	if user.Preferences != DefaultPreferences() {
		t.Errorf("Expected default preferences, got %+v", user.Preferences)
	}
	if user.CreatedAt.IsZero() || user.UpdatedAt.IsZero() {
		t.Error("Expected timestamps to be set")
	}

	_, err = NewUser("Ada", "", "secret123")
	if err != ErrEmptyEmail {
		t.Errorf("Expected error %v, got %v", ErrEmptyEmail, err)
	}

	_, err = NewUser("Ada", "invalidemail", "secret123")
	if err != ErrInvalidEmail {
		t.Errorf("Expected error %v, got %v", ErrInvalidEmail, err)
	}

	_, err = NewUser("Ada", "ada@example.com", "")
	if err != ErrEmptyPassword {
		t.Errorf("Expected error %v, got %v", ErrEmptyPassword, err)
	}
}

func TestUserValidate(t *testing.T) {
	t.Parallel()

	valid := func() User {
		return User{
			ID:             uuid.New(),
			Name:           "Ada",
			Email:          "test@example.com",
			HashedPassword: "$2a$10$hash",
			Preferences:    DefaultPreferences(),
		}
	}

	tests := []struct {
		name    string
		mutate  func(u *User)
		wantErr error
	}{
		{"valid stored user", func(u *User) {}, nil},
		{"nil id", func(u *User) { u.ID = uuid.Nil }, ErrEmptyUserID},
		{"empty name", func(u *User) { u.Name = "" }, ErrEmptyUserName},
		{"long name", func(u *User) { u.Name = strings.Repeat("a", 51) }, ErrUserNameTooLong},
		{"empty email", func(u *User) { u.Email = "" }, ErrEmptyEmail},
		{"missing at", func(u *User) { u.Email = "userexample.com" }, ErrInvalidEmail},
		{"missing domain", func(u *User) { u.Email = "user@" }, ErrInvalidEmail},
		{"missing local part", func(u *User) { u.Email = "@example.com" }, ErrInvalidEmail},
		{"no password at all", func(u *User) { u.HashedPassword = "" }, ErrEmptyPassword},
		{"short plaintext", func(u *User) { u.Password = "abc" }, ErrPasswordTooShort},
		{"long plaintext", func(u *User) { u.Password = strings.Repeat("p", 73) }, ErrPasswordTooLong},
		{"bad preferences", func(u *User) { u.Preferences.StudyHoursPerDay = 30 }, ErrInvalidStudyHours},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			u := valid()
			tc.mutate(&u)
			err := u.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestUserUpdatePreferences(t *testing.T) {
	t.Parallel()

	user, err := NewUser("Ada", "ada@example.com", "secret123")
	require.NoError(t, err)

	err = user.UpdatePreferences(Preferences{StudyHoursPerDay: 6, PreferredStudyTime: StudyTimeEvening})
	require.NoError(t, err)
	assert.Equal(t, 6.0, user.Preferences.StudyHoursPerDay)
	assert.Equal(t, StudyTimeEvening, user.Preferences.PreferredStudyTime)

	err = user.UpdatePreferences(Preferences{StudyHoursPerDay: 2, PreferredStudyTime: "dawn"})
	assert.ErrorIs(t, err, ErrInvalidStudyTime)
	assert.Equal(t, 6.0, user.Preferences.StudyHoursPerDay, "rejected update must not apply")
}
