package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/studyplan-api/internal/api/shared"
	"github.com/phrazzld/studyplan-api/internal/platform/logger"
	"github.com/phrazzld/studyplan-api/internal/service"
)

// SubjectHandler handles subject-related HTTP requests.
type SubjectHandler struct {
	subjectService service.SubjectService
	logger         *slog.Logger
}

// NewSubjectHandler creates a new SubjectHandler
func NewSubjectHandler(subjectService service.SubjectService, logger *slog.Logger) *SubjectHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for SubjectHandler")
	}
	return &SubjectHandler{
		subjectService: subjectService,
		logger:         logger.With(slog.String("component", "subject_handler")),
	}
}

// CreateSubject handles POST /api/subjects.
func (h *SubjectHandler) CreateSubject(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	userID, ok := requireUserID(w, r, log)
	if !ok {
		return
	}

	var req CreateSubjectRequest
	if !decodeAndValidate(w, r, &req, false, log) {
		return
	}

	subject, err := h.subjectService.CreateSubject(r.Context(), userID, service.SubjectInput{
		Name:        req.Name,
		Description: req.Description,
		Difficulty:  req.Difficulty,
		TotalHours:  req.TotalHours,
		ExamDate:    req.ExamDate,
		Color:       req.Color,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create subject")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, subject)
}

// ListSubjects handles GET /api/subjects.
func (h *SubjectHandler) ListSubjects(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	userID, ok := requireUserID(w, r, log)
	if !ok {
		return
	}

	subjects, err := h.subjectService.ListSubjects(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list subjects")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, newListResponse(subjects))
}

// GetSubject handles GET /api/subjects/{id}.
func (h *SubjectHandler) GetSubject(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	userID, subjectID, ok := handleUserIDAndPathUUID(w, r, "id", log)
	if !ok {
		return
	}

	subject, err := h.subjectService.GetSubject(r.Context(), userID, subjectID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get subject")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, subject)
}

// UpdateSubject handles PUT /api/subjects/{id}.
func (h *SubjectHandler) UpdateSubject(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	userID, subjectID, ok := handleUserIDAndPathUUID(w, r, "id", log)
	if !ok {
		return
	}

	var req UpdateSubjectRequest
	if !decodeAndValidate(w, r, &req, false, log) {
		return
	}

	subject, err := h.subjectService.UpdateSubject(r.Context(), userID, subjectID, service.SubjectUpdate{
		Name:        req.Name,
		Description: req.Description,
		Difficulty:  req.Difficulty,
		TotalHours:  req.TotalHours,
		ExamDate:    req.ExamDate,
		Color:       req.Color,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update subject")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, subject)
}

// DeleteSubject handles DELETE /api/subjects/{id}. Schedules generated from
// the subject are kept and lose their subject reference.
func (h *SubjectHandler) DeleteSubject(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	userID, subjectID, ok := handleUserIDAndPathUUID(w, r, "id", log)
	if !ok {
		return
	}

	if err := h.subjectService.DeleteSubject(r.Context(), userID, subjectID); err != nil {
		HandleAPIError(w, r, err, "Failed to delete subject")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
