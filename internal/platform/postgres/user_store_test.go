package postgres_test

import (
	"context"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/studyplan-api/internal/domain"
	"github.com/phrazzld/studyplan-api/internal/platform/postgres"
	"github.com/phrazzld/studyplan-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var userRowColumns = []string{
	"id", "name", "email", "hashed_password", "study_hours_per_day",
	"preferred_study_time", "created_at", "updated_at",
}

func anyArgs(n int) []driver.Value {
	args := make([]driver.Value, n)
	for i := range args {
		args[i] = sqlmock.AnyArg()
	}
	return args
}

func TestPostgresUserStore_Create(t *testing.T) {
	t.Parallel()

	t.Run("hashes the password before insert", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		userStore := postgres.NewPostgresUserStore(db, bcrypt.MinCost, nil)

		user, err := domain.NewUser("Ada", "ada@example.com", "password123")
		require.NoError(t, err)

		mock.ExpectExec("INSERT INTO users").
			WithArgs(anyArgs(8)...).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, userStore.Create(context.Background(), user))
		assert.Empty(t, user.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte("password123")))
	})

	t.Run("duplicate email", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		userStore := postgres.NewPostgresUserStore(db, bcrypt.MinCost, nil)

		user, err := domain.NewUser("Ada", "ada@example.com", "password123")
		require.NoError(t, err)

		mock.ExpectExec("INSERT INTO users").
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

		err = userStore.Create(context.Background(), user)
		assert.ErrorIs(t, err, store.ErrEmailExists)
		assert.ErrorIs(t, err, store.ErrDuplicate)
	})

	t.Run("invalid user never reaches the database", func(t *testing.T) {
		t.Parallel()
		db, _ := newMockDB(t)
		userStore := postgres.NewPostgresUserStore(db, bcrypt.MinCost, nil)

		user := &domain.User{ID: uuid.New(), Name: "Ada", Email: "not-an-email", Password: "password123",
			Preferences: domain.DefaultPreferences()}
		assert.ErrorIs(t, userStore.Create(context.Background(), user), domain.ErrInvalidEmail)
	})
}

func TestPostgresUserStore_Get(t *testing.T) {
	t.Parallel()

	t.Run("by email", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		userStore := postgres.NewPostgresUserStore(db, bcrypt.MinCost, nil)

		id := uuid.New()
		now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
		mock.ExpectQuery("SELECT .* FROM users WHERE email = \\$1").
			WithArgs("ada@example.com").
			WillReturnRows(sqlmock.NewRows(userRowColumns).
				AddRow(id.String(), "Ada", "ada@example.com", "$2a$04$hash", 3.5, "evening", now, now))

		user, err := userStore.GetByEmail(context.Background(), "ada@example.com")
		require.NoError(t, err)
		assert.Equal(t, id, user.ID)
		assert.Equal(t, 3.5, user.Preferences.StudyHoursPerDay)
		assert.Equal(t, domain.StudyTimeEvening, user.Preferences.PreferredStudyTime)
		assert.Empty(t, user.Password)
	})

	t.Run("missing id", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		userStore := postgres.NewPostgresUserStore(db, bcrypt.MinCost, nil)

		mock.ExpectQuery("SELECT .* FROM users WHERE id = \\$1").
			WillReturnRows(sqlmock.NewRows(userRowColumns))

		_, err := userStore.GetByID(context.Background(), uuid.New())
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}

func TestPostgresUserStore_UpdateDelete(t *testing.T) {
	t.Parallel()

	existing := func() *domain.User {
		return &domain.User{
			ID:             uuid.New(),
			Name:           "Ada",
			Email:          "ada@example.com",
			HashedPassword: "$2a$04$existing",
			Preferences:    domain.DefaultPreferences(),
		}
	}

	t.Run("update keeps stored hash", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		userStore := postgres.NewPostgresUserStore(db, bcrypt.MinCost, nil)

		user := existing()
		mock.ExpectExec("UPDATE users").
			WithArgs(anyArgs(7)...).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, userStore.Update(context.Background(), user))
		assert.Equal(t, "$2a$04$existing", user.HashedPassword)
	})

	t.Run("update of a missing user", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		userStore := postgres.NewPostgresUserStore(db, bcrypt.MinCost, nil)

		mock.ExpectExec("UPDATE users").WillReturnResult(sqlmock.NewResult(0, 0))
		assert.ErrorIs(t, userStore.Update(context.Background(), existing()), store.ErrUserNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		userStore := postgres.NewPostgresUserStore(db, bcrypt.MinCost, nil)

		id := uuid.New()
		mock.ExpectExec("DELETE FROM users WHERE id = \\$1").
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, userStore.Delete(context.Background(), id))
	})
}

func TestNewPostgresUserStore_PanicsOnNilDB(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { postgres.NewPostgresUserStore(nil, bcrypt.MinCost, nil) })
}
