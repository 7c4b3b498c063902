package handler

import (
	"net/http"

	"ovenaura/internal/model"
	"ovenaura/internal/requestid"
	"ovenaura/internal/service"

	"github.com/rs/zerolog"
)

// StatusHandler reports backend reachability to the login screen.
type StatusHandler struct {
	service service.StatusService
	logger  zerolog.Logger
}

// NewStatusHandler creates a new status handler.
func NewStatusHandler(service service.StatusService, logger zerolog.Logger) *StatusHandler {
	return &StatusHandler{
		service: service,
		logger:  logger.With().Str("handler", "status").Logger(),
	}
}

// Status handles GET /api/status.
func (h *StatusHandler) Status(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Check(r.Context())
	if err != nil {
		h.logger.Warn().Err(err).Int("attempts", result.Attempts).Msg("backend unreachable")
		writeJSON(w, http.StatusServiceUnavailable, model.Response{
			Success:   false,
			Data:      result,
			Message:   result.Message,
			Code:      model.ErrCodeBackendUnavailable,
			RequestID: requestid.FromContext(r.Context()),
		})
		return
	}

	writeData(w, r, http.StatusOK, result)
}
