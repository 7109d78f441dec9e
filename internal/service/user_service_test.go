package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/studyplan-api/internal/domain"
	"github.com/phrazzld/studyplan-api/internal/mocks"
	"github.com/phrazzld/studyplan-api/internal/service"
	"github.com/phrazzld/studyplan-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) (*service.UserServiceImpl, *mocks.UserStore, *mocks.MockPasswordVerifier) {
	t.Helper()
	users := &mocks.UserStore{}
	verifier := &mocks.MockPasswordVerifier{}
	t.Cleanup(func() { users.AssertExpectations(t) })
	return service.NewUserService(users, mocks.TxRunner(), verifier, nil), users, verifier
}

func TestRegister(t *testing.T) {
	svc, users, _ := newUserService(t)

	users.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Email == "ada@example.com" && u.Password == "password123"
	})).Return(nil)

	user, err := svc.Register(context.Background(), "Ada", " Ada@Example.com ", "password123")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, domain.DefaultPreferences(), user.Preferences)
}

func TestRegister_Errors(t *testing.T) {
	t.Run("invalid input never reaches the store", func(t *testing.T) {
		svc, _, _ := newUserService(t)
		_, err := svc.Register(context.Background(), "Ada", "not-an-email", "password123")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc, users, _ := newUserService(t)
		users.On("Create", mock.Anything, mock.Anything).Return(store.ErrEmailExists)

		_, err := svc.Register(context.Background(), "Ada", "ada@example.com", "password123")
		assert.ErrorIs(t, err, store.ErrDuplicate)

		var svcErr *service.ServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, "register", svcErr.Op)
	})
}

func TestAuthenticate(t *testing.T) {
	user := &domain.User{ID: uuid.New(), Email: "ada@example.com", HashedPassword: "password123"}

	t.Run("success", func(t *testing.T) {
		svc, users, verifier := newUserService(t)
		users.On("GetByEmail", mock.Anything, "ada@example.com").Return(user, nil)

		got, err := svc.Authenticate(context.Background(), "ADA@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
		assert.Equal(t, 1, verifier.CompareCallCount)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, users, _ := newUserService(t)
		users.On("GetByEmail", mock.Anything, "ada@example.com").Return(user, nil)

		_, err := svc.Authenticate(context.Background(), "ada@example.com", "nope")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		svc, users, verifier := newUserService(t)
		users.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, store.ErrUserNotFound)

		_, err := svc.Authenticate(context.Background(), "ghost@example.com", "password123")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
		assert.Zero(t, verifier.CompareCallCount)
	})

	t.Run("store failure is not reported as bad credentials", func(t *testing.T) {
		svc, users, _ := newUserService(t)
		users.On("GetByEmail", mock.Anything, "ada@example.com").Return(nil, errors.New("connection reset"))

		_, err := svc.Authenticate(context.Background(), "ada@example.com", "password123")
		require.Error(t, err)
		assert.NotErrorIs(t, err, service.ErrInvalidCredentials)
	})
}

func TestUpdatePreferences(t *testing.T) {
	userID := uuid.New()
	newUser := func() *domain.User {
		return &domain.User{
			ID:          userID,
			Name:        "Ada",
			Email:       "ada@example.com",
			Preferences: domain.DefaultPreferences(),
		}
	}

	t.Run("partial update keeps other fields", func(t *testing.T) {
		svc, users, _ := newUserService(t)
		users.On("GetByID", mock.Anything, userID).Return(newUser(), nil)
		users.On("Update", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

		evening := domain.StudyTimeEvening
		got, err := svc.UpdatePreferences(context.Background(), userID, service.PreferencesUpdate{
			PreferredStudyTime: &evening,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.StudyTimeEvening, got.Preferences.PreferredStudyTime)
		assert.Equal(t, domain.DefaultPreferences().StudyHoursPerDay, got.Preferences.StudyHoursPerDay)
	})

	t.Run("invalid hours are rejected before update", func(t *testing.T) {
		svc, users, _ := newUserService(t)
		users.On("GetByID", mock.Anything, userID).Return(newUser(), nil)

		hours := 30.0
		_, err := svc.UpdatePreferences(context.Background(), userID, service.PreferencesUpdate{
			StudyHoursPerDay: &hours,
		})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestDeleteUser(t *testing.T) {
	svc, users, _ := newUserService(t)
	userID := uuid.New()
	users.On("Delete", mock.Anything, userID).Return(store.ErrUserNotFound)

	err := svc.DeleteUser(context.Background(), userID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
