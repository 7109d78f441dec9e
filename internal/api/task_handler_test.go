package api

import (
	"errors"
	"net/http"
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

func newTaskHandler(t *testing.T) (*TaskHandler, *mocks.TaskStore) {
	t.Helper()
	tasks := &mocks.TaskStore{}
	t.Cleanup(func() { tasks.AssertExpectations(t) })
	return NewTaskHandler(service.NewTaskService(tasks, mocks.TxRunner(), testLogger()), testLogger()), tasks
}

func TestTaskHandler_CreateTask(t *testing.T) {
	t.Parallel()
	userID := uuid.New()

	t.Run("created", func(t *testing.T) {
		h, tasks := newTaskHandler(t)
		tasks.On("Create", mock.Anything, mock.MatchedBy(func(task *domain.Task) bool {
			return task.UserID == userID && task.TaskType == domain.TaskTypeHeavy && !task.Completed
		})).Return(nil)

		rec := do(t, route{http.MethodPost, "/api/tasks", h.CreateTask}, "/api/tasks",
			`{"subject":"Math","title":"Problem set 3","task_type":"Heavy","duration":1.5}`, userID)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		task := decodeBody[domain.Task](t, rec)
		assert.Equal(t, "Problem set 3", task.Title)
		assert.Equal(t, 1.5, task.Duration)
		assert.Nil(t, task.Deadline)
	})

	t.Run("duration below minimum", func(t *testing.T) {
		h, _ := newTaskHandler(t)

		rec := do(t, route{http.MethodPost, "/api/tasks", h.CreateTask}, "/api/tasks",
			`{"subject":"Math","title":"Quick","task_type":"Light","duration":0.05}`, userID)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid duration: must be at least 0.1", errorMessage(t, rec))
	})

	t.Run("unauthenticated", func(t *testing.T) {
		h, _ := newTaskHandler(t)
		rec := do(t, route{http.MethodPost, "/api/tasks", h.CreateTask}, "/api/tasks", `{}`, uuid.Nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestTaskHandler_ListTasks(t *testing.T) {
	t.Parallel()
	userID := uuid.New()
	rt := route{http.MethodGet, "/api/tasks", nil}

	t.Run("incomplete filter", func(t *testing.T) {
		h, tasks := newTaskHandler(t)
		rt.handler = h.ListTasks
		tasks.On("List", mock.Anything, userID, store.TaskFilter{IncompleteOnly: true}).
			Return([]*domain.Task{{ID: uuid.New(), UserID: userID, Title: "Essay"}}, nil)

		rec := do(t, rt, "/api/tasks?incomplete=true", "", userID)

		require.Equal(t, http.StatusOK, rec.Code)
		list := decodeBody[ListResponse[domain.Task]](t, rec)
		assert.Equal(t, 1, list.Count)
		assert.Equal(t, "Essay", list.Items[0].Title)
	})

	t.Run("empty list", func(t *testing.T) {
		h, tasks := newTaskHandler(t)
		rt.handler = h.ListTasks
		tasks.On("List", mock.Anything, userID, store.TaskFilter{}).Return(nil, nil)

		rec := do(t, rt, "/api/tasks", "", userID)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"items":[],"count":0}`, rec.Body.String())
	})

	t.Run("bad filter", func(t *testing.T) {
		h, _ := newTaskHandler(t)
		rt.handler = h.ListTasks
		rec := do(t, rt, "/api/tasks?incomplete=maybe", "", userID)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("store failure", func(t *testing.T) {
		h, tasks := newTaskHandler(t)
		rt.handler = h.ListTasks
		tasks.On("List", mock.Anything, userID, store.TaskFilter{}).Return(nil, errors.New("connection refused"))

		rec := do(t, rt, "/api/tasks", "", userID)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Failed to list tasks", errorMessage(t, rec))
	})
}

func TestTaskHandler_GetUpdateDelete(t *testing.T) {
	t.Parallel()
	userID := uuid.New()

	t.Run("get missing task", func(t *testing.T) {
		h, tasks := newTaskHandler(t)
		taskID := uuid.New()
		tasks.On("GetByID", mock.Anything, userID, taskID).Return(nil, store.ErrTaskNotFound)

		rec := do(t, route{http.MethodGet, "/api/tasks/{id}", h.GetTask}, "/api/tasks/"+taskID.String(), "", userID)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Task not found", errorMessage(t, rec))
	})

	t.Run("mark completed", func(t *testing.T) {
		h, tasks := newTaskHandler(t)
		task, err := domain.NewTask(userID, "Math", "Problem set", domain.TaskTypeMedium, 2, nil)
		require.NoError(t, err)
		tasks.On("GetByID", mock.Anything, userID, task.ID).Return(task, nil)
		tasks.On("Update", mock.Anything, mock.MatchedBy(func(u *domain.Task) bool {
			return u.Completed && u.Title == "Problem set"
		})).Return(nil)

		rec := do(t, route{http.MethodPut, "/api/tasks/{id}", h.UpdateTask}, "/api/tasks/"+task.ID.String(),
			`{"completed":true}`, userID)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.True(t, decodeBody[domain.Task](t, rec).Completed)
	})

	t.Run("update with unknown type", func(t *testing.T) {
		h, _ := newTaskHandler(t)
		rec := do(t, route{http.MethodPut, "/api/tasks/{id}", h.UpdateTask}, "/api/tasks/"+uuid.NewString(),
			`{"task_type":"Epic"}`, userID)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("delete", func(t *testing.T) {
		h, tasks := newTaskHandler(t)
		taskID := uuid.New()
		tasks.On("Delete", mock.Anything, userID, taskID).Return(nil)

		rec := do(t, route{http.MethodDelete, "/api/tasks/{id}", h.DeleteTask}, "/api/tasks/"+taskID.String(), "", userID)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("delete with malformed id", func(t *testing.T) {
		h, _ := newTaskHandler(t)
		rec := do(t, route{http.MethodDelete, "/api/tasks/{id}", h.DeleteTask}, "/api/tasks/42", "", userID)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
