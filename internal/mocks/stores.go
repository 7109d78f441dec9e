package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/studyplan-api/internal/domain"
	"github.com/phrazzld/studyplan-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// TxRunner runs fn directly with a nil transaction. Store mocks ignore the
// transaction, so services can be exercised without a database.
func TxRunner() store.TxRunner {
	return func(ctx context.Context, fn store.TxFn) error {
		return fn(ctx, nil)
	}
}

// UserStore is a testify mock of store.UserStore
type UserStore struct {
	mock.Mock
}

var _ store.UserStore = (*UserStore)(nil)

func (m *UserStore) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *UserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *UserStore) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *UserStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *UserStore) WithTx(*sql.Tx) store.UserStore { return m }

// TaskStore is a testify mock of store.TaskStore
type TaskStore struct {
	mock.Mock
}

var _ store.TaskStore = (*TaskStore)(nil)

func (m *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	return m.Called(ctx, task).Error(0)
}

func (m *TaskStore) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Task, error) {
	args := m.Called(ctx, userID, id)
	task, _ := args.Get(0).(*domain.Task)
	return task, args.Error(1)
}

func (m *TaskStore) List(ctx context.Context, userID uuid.UUID, filter store.TaskFilter) ([]*domain.Task, error) {
	args := m.Called(ctx, userID, filter)
	tasks, _ := args.Get(0).([]*domain.Task)
	return tasks, args.Error(1)
}

func (m *TaskStore) Update(ctx context.Context, task *domain.Task) error {
	return m.Called(ctx, task).Error(0)
}

func (m *TaskStore) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return m.Called(ctx, userID, id).Error(0)
}

func (m *TaskStore) WithTx(*sql.Tx) store.TaskStore { return m }

// FocusLogStore is a testify mock of store.FocusLogStore
type FocusLogStore struct {
	mock.Mock
}

var _ store.FocusLogStore = (*FocusLogStore)(nil)

func (m *FocusLogStore) Create(ctx context.Context, log *domain.FocusLog) error {
	return m.Called(ctx, log).Error(0)
}

func (m *FocusLogStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.FocusLog, error) {
	args := m.Called(ctx, userID)
	logs, _ := args.Get(0).([]*domain.FocusLog)
	return logs, args.Error(1)
}

func (m *FocusLogStore) WithTx(*sql.Tx) store.FocusLogStore { return m }

// SubjectStore is a testify mock of store.SubjectStore
type SubjectStore struct {
	mock.Mock
}

var _ store.SubjectStore = (*SubjectStore)(nil)

func (m *SubjectStore) Create(ctx context.Context, subject *domain.Subject) error {
	return m.Called(ctx, subject).Error(0)
}

func (m *SubjectStore) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Subject, error) {
	args := m.Called(ctx, userID, id)
	subject, _ := args.Get(0).(*domain.Subject)
	return subject, args.Error(1)
}

func (m *SubjectStore) List(ctx context.Context, userID uuid.UUID) ([]*domain.Subject, error) {
	args := m.Called(ctx, userID)
	subjects, _ := args.Get(0).([]*domain.Subject)
	return subjects, args.Error(1)
}

func (m *SubjectStore) Update(ctx context.Context, subject *domain.Subject) error {
	return m.Called(ctx, subject).Error(0)
}

func (m *SubjectStore) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return m.Called(ctx, userID, id).Error(0)
}

func (m *SubjectStore) WithTx(*sql.Tx) store.SubjectStore { return m }

// ScheduleStore is a testify mock of store.ScheduleStore
type ScheduleStore struct {
	mock.Mock
}

var _ store.ScheduleStore = (*ScheduleStore)(nil)

func (m *ScheduleStore) Create(ctx context.Context, schedule *domain.Schedule) error {
	return m.Called(ctx, schedule).Error(0)
}

func (m *ScheduleStore) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Schedule, error) {
	args := m.Called(ctx, userID, id)
	schedule, _ := args.Get(0).(*domain.Schedule)
	return schedule, args.Error(1)
}

func (m *ScheduleStore) List(ctx context.Context, userID uuid.UUID) ([]*domain.Schedule, error) {
	args := m.Called(ctx, userID)
	schedules, _ := args.Get(0).([]*domain.Schedule)
	return schedules, args.Error(1)
}

func (m *ScheduleStore) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return m.Called(ctx, userID, id).Error(0)
}

func (m *ScheduleStore) CreateSessions(ctx context.Context, sessions []*domain.StudySession) error {
	return m.Called(ctx, sessions).Error(0)
}

func (m *ScheduleStore) ListSessions(ctx context.Context, userID, scheduleID uuid.UUID) ([]*domain.StudySession, error) {
	args := m.Called(ctx, userID, scheduleID)
	sessions, _ := args.Get(0).([]*domain.StudySession)
	return sessions, args.Error(1)
}

func (m *ScheduleStore) UpdateSessionStatus(
	ctx context.Context,
	userID, sessionID uuid.UUID,
	status domain.SessionStatus,
) (*domain.StudySession, error) {
	args := m.Called(ctx, userID, sessionID, status)
	session, _ := args.Get(0).(*domain.StudySession)
	return session, args.Error(1)
}

func (m *ScheduleStore) WithTx(*sql.Tx) store.ScheduleStore { return m }
