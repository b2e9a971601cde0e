package handlers

import (
	"net/http"

	"github.com/rcastellano/ava/internal/interfaces"
	"github.com/ternarybob/arbor"
)

// StatusHandler reports per-profile readiness
type StatusHandler struct {
	ragService interfaces.RagService
	logger     arbor.ILogger
}

// NewStatusHandler creates a new status handler
func NewStatusHandler(ragService interfaces.RagService, logger arbor.ILogger) *StatusHandler {
	return &StatusHandler{
		ragService: ragService,
		logger:     logger,
	}
}

// StatusHandler handles GET /api/status requests
func (h *StatusHandler) StatusHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"profiles": h.ragService.Status(r.Context()),
	})
}
