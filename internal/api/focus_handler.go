package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/studyplan-api/internal/api/shared"
	"github.com/phrazzld/studyplan-api/internal/platform/logger"
	"github.com/phrazzld/studyplan-api/internal/service"
)

// FocusHandler handles focus log requests.
type FocusHandler struct {
	focusService service.FocusService
	logger       *slog.Logger
}

// NewFocusHandler creates a new FocusHandler
func NewFocusHandler(focusService service.FocusService, logger *slog.Logger) *FocusHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for FocusHandler")
	}
	return &FocusHandler{
		focusService: focusService,
		logger:       logger.With(slog.String("component", "focus_handler")),
	}
}

// LogFocus handles POST /api/focus.
func (h *FocusHandler) LogFocus(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	userID, ok := requireUserID(w, r, log)
	if !ok {
		return
	}

	var req CreateFocusLogRequest
	if !decodeAndValidate(w, r, &req, false, log) {
		return
	}

	var date time.Time
	if req.Date != nil {
		date = *req.Date
	}
	entry, err := h.focusService.LogFocus(r.Context(), userID, service.FocusInput{
		FocusScore: req.FocusScore,
		TimeOfDay:  *req.TimeOfDay,
		Notes:      req.Notes,
		Date:       date,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to log focus")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, entry)
}

// ListFocusLogs handles GET /api/focus.
func (h *FocusHandler) ListFocusLogs(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	userID, ok := requireUserID(w, r, log)
	if !ok {
		return
	}

	logs, err := h.focusService.ListFocusLogs(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list focus logs")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, newListResponse(logs))
}

// FocusStats handles GET /api/focus/stats.
func (h *FocusHandler) FocusStats(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	userID, ok := requireUserID(w, r, log)
	if !ok {
		return
	}

	stats, err := h.focusService.FocusStats(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to compute focus statistics")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, stats)
}
