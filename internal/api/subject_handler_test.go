package api

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/studyplan-api/internal/domain"
	"github.com/phrazzld/studyplan-api/internal/mocks"
	"github.com/phrazzld/studyplan-api/internal/service"
	"github.com/phrazzld/studyplan-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSubjectHandler(t *testing.T) (*SubjectHandler, *mocks.SubjectStore) {
	t.Helper()
	subjects := &mocks.SubjectStore{}
	t.Cleanup(func() { subjects.AssertExpectations(t) })
	return NewSubjectHandler(service.NewSubjectService(subjects, mocks.TxRunner(), testLogger()), testLogger()), subjects
}

func TestSubjectHandler(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	exam := time.Date(2026, 6, 15, 9, 0, 0, 0, time.UTC)

	t.Run("create uses default color", func(t *testing.T) {
		h, subjects := newSubjectHandler(t)
		subjects.On("Create", mock.Anything, mock.AnythingOfType("*domain.Subject")).Return(nil)

		body := fmt.Sprintf(`{"name":"Biology","difficulty":4,"total_hours":30,"exam_date":%q}`, exam.Format(time.RFC3339))
		rec := do(t, route{http.MethodPost, "/api/subjects", h.CreateSubject}, "/api/subjects", body, userID)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		subject := decodeBody[domain.Subject](t, rec)
		assert.Equal(t, domain.DefaultSubjectColor, subject.Color)
		assert.Equal(t, userID, subject.UserID)
		assert.True(t, exam.Equal(subject.ExamDate))
	})

	t.Run("create with difficulty out of range", func(t *testing.T) {
		h, _ := newSubjectHandler(t)

		body := fmt.Sprintf(`{"name":"Biology","difficulty":9,"total_hours":30,"exam_date":%q}`, exam.Format(time.RFC3339))
		rec := do(t, route{http.MethodPost, "/api/subjects", h.CreateSubject}, "/api/subjects", body, userID)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid difficulty: must be at most 5", errorMessage(t, rec))
	})

	t.Run("list", func(t *testing.T) {
		h, subjects := newSubjectHandler(t)
		subjects.On("List", mock.Anything, userID).Return([]*domain.Subject{{Name: "Biology"}, {Name: "Chemistry"}}, nil)

		rec := do(t, route{http.MethodGet, "/api/subjects", h.ListSubjects}, "/api/subjects", "", userID)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 2, decodeBody[ListResponse[domain.Subject]](t, rec).Count)
	})

	t.Run("get another user's subject", func(t *testing.T) {
		h, subjects := newSubjectHandler(t)
		subjectID := uuid.New()
		subjects.On("GetByID", mock.Anything, userID, subjectID).Return(nil, store.ErrSubjectNotFound)

		rec := do(t, route{http.MethodGet, "/api/subjects/{id}", h.GetSubject}, "/api/subjects/"+subjectID.String(), "", userID)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Subject not found", errorMessage(t, rec))
	})

	t.Run("update color", func(t *testing.T) {
		h, subjects := newSubjectHandler(t)
		subject, err := domain.NewSubject(userID, "Biology", "", 3, 20, exam, "")
		require.NoError(t, err)
		subjects.On("GetByID", mock.Anything, userID, subject.ID).Return(subject, nil)
		subjects.On("Update", mock.Anything, subject).Return(nil)

		rec := do(t, route{http.MethodPut, "/api/subjects/{id}", h.UpdateSubject}, "/api/subjects/"+subject.ID.String(),
			`{"color":"#10B981"}`, userID)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "#10B981", decodeBody[domain.Subject](t, rec).Color)
	})

	t.Run("delete", func(t *testing.T) {
		h, subjects := newSubjectHandler(t)
		subjectID := uuid.New()
		subjects.On("Delete", mock.Anything, userID, subjectID).Return(nil)

		rec := do(t, route{http.MethodDelete, "/api/subjects/{id}", h.DeleteSubject}, "/api/subjects/"+subjectID.String(), "", userID)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
