package handlers

import (
	"net/http"
	"strconv"

	"github.com/rcastellano/ava/internal/interfaces"
	"github.com/ternarybob/arbor"
)

// RetrieveHandler exposes retrieval without generation, mainly for
// inspecting what a question would be answered from
type RetrieveHandler struct {
	ragService interfaces.RagService
	logger     arbor.ILogger
}

// NewRetrieveHandler creates a new retrieve handler
func NewRetrieveHandler(ragService interfaces.RagService, logger arbor.ILogger) *RetrieveHandler {
	return &RetrieveHandler{
		ragService: ragService,
		logger:     logger,
	}
}

// RetrieveHandler handles GET /api/retrieve requests
func (h *RetrieveHandler) RetrieveHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	query := r.URL.Query()
	systemType := query.Get("system_type")
	if systemType == "" {
		systemType = "general"
	}
	question := query.Get("q")

	k := 0
	if kStr := query.Get("k"); kStr != "" {
		parsed, err := strconv.Atoi(kStr)
		if err != nil {
			WriteError(w, http.StatusBadRequest, "Parameter 'k' must be an integer")
			return
		}
		k = parsed
	}

	sources, err := h.ragService.RetrieveOnly(r.Context(), systemType, question, k)
	if err != nil {
		h.logger.Error().Err(err).Str("system_type", systemType).Msg("Retrieval failed")
		WriteError(w, statusForError(err), err.Error())
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"sources": sources,
	})
}
