package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/studyplan-api/internal/api/shared"
	"github.com/phrazzld/studyplan-api/internal/domain"
	"github.com/phrazzld/studyplan-api/internal/platform/logger"
	"github.com/phrazzld/studyplan-api/internal/service"
)

// ScheduleHandler handles schedule generation and session tracking.
type ScheduleHandler struct {
	scheduleService service.ScheduleService
	logger          *slog.Logger
}

// NewScheduleHandler creates a new ScheduleHandler
func NewScheduleHandler(scheduleService service.ScheduleService, logger *slog.Logger) *ScheduleHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ScheduleHandler")
	}
	return &ScheduleHandler{
		scheduleService: scheduleService,
		logger:          logger.With(slog.String("component", "schedule_handler")),
	}
}

// GenerateSchedule handles POST /api/schedules/generate. An empty body runs
// adaptive planning.
func (h *ScheduleHandler) GenerateSchedule(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	userID, ok := requireUserID(w, r, log)
	if !ok {
		return
	}

	var req GenerateScheduleRequest
	if !decodeAndValidate(w, r, &req, true, log) {
		return
	}

	detail, err := h.scheduleService.GenerateSchedule(r.Context(), userID, service.GenerateRequest{
		SubjectID:         req.SubjectID,
		DailyAvailability: req.DailyAvailability,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to generate schedule")
		return
	}

	log.Debug("schedule generated",
		slog.String("schedule_id", detail.Schedule.ID.String()),
		slog.Int("sessions", len(detail.Sessions)))
	shared.RespondWithJSON(w, r, http.StatusCreated, detail)
}

// ListSchedules handles GET /api/schedules.
func (h *ScheduleHandler) ListSchedules(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	userID, ok := requireUserID(w, r, log)
	if !ok {
		return
	}

	schedules, err := h.scheduleService.ListSchedules(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list schedules")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, newListResponse(schedules))
}

// GetSchedule handles GET /api/schedules/{id}.
func (h *ScheduleHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	userID, scheduleID, ok := handleUserIDAndPathUUID(w, r, "id", log)
	if !ok {
		return
	}

	detail, err := h.scheduleService.GetSchedule(r.Context(), userID, scheduleID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get schedule")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, detail)
}

// DeleteSchedule handles DELETE /api/schedules/{id}.
func (h *ScheduleHandler) DeleteSchedule(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	userID, scheduleID, ok := handleUserIDAndPathUUID(w, r, "id", log)
	if !ok {
		return
	}

	if err := h.scheduleService.DeleteSchedule(r.Context(), userID, scheduleID); err != nil {
		HandleAPIError(w, r, err, "Failed to delete schedule")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UpdateSessionStatus handles PATCH /api/schedules/sessions/{id}/status.
func (h *ScheduleHandler) UpdateSessionStatus(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	userID, sessionID, ok := handleUserIDAndPathUUID(w, r, "id", log)
	if !ok {
		return
	}

	var req UpdateSessionStatusRequest
	if !decodeAndValidate(w, r, &req, false, log) {
		return
	}

	session, err := h.scheduleService.UpdateSessionStatus(
		r.Context(), userID, sessionID, domain.SessionStatus(req.Status),
	)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update session status")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, session)
}
