package handlers

import (
	"net/http"

	"github.com/rcastellano/ava/internal/interfaces"
	"github.com/ternarybob/arbor"
)

// SystemsHandler lists the registered RAG profiles
type SystemsHandler struct {
	ragService interfaces.RagService
	logger     arbor.ILogger
}

// NewSystemsHandler creates a new systems handler
func NewSystemsHandler(ragService interfaces.RagService, logger arbor.ILogger) *SystemsHandler {
	return &SystemsHandler{
		ragService: ragService,
		logger:     logger,
	}
}

// SystemsHandler handles GET /api/systems requests
func (h *SystemsHandler) SystemsHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	profiles := h.ragService.ListProfiles()

	systems := make([]string, 0, len(profiles))
	names := make(map[string]string, len(profiles))
	for _, profile := range profiles {
		systems = append(systems, profile.Key)
		names[profile.Key] = profile.DisplayName
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"systems": systems,
		"names":   names,
	})
}
