package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rcastellano/ava/internal/interfaces"
	"github.com/rcastellano/ava/internal/models"
	"github.com/ternarybob/arbor"
)

// ChatHandler handles question answering HTTP requests
type ChatHandler struct {
	ragService interfaces.RagService
	logger     arbor.ILogger
}

// NewChatHandler creates a new chat handler
func NewChatHandler(ragService interfaces.RagService, logger arbor.ILogger) *ChatHandler {
	return &ChatHandler{
		ragService: ragService,
		logger:     logger,
	}
}

// ChatHandler handles POST /api/chat requests
func (h *ChatHandler) ChatHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req interfaces.AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error().Err(err).Msg("Failed to decode chat request")
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	h.logger.Info().
		Str("system_type", req.SystemType).
		Int("question_length", len(req.Question)).
		Int("history_turns", len(req.History)).
		Msg("Processing chat request")

	resp, err := h.ragService.Ask(r.Context(), &req)
	if err != nil {
		h.logger.Error().Err(err).Str("system_type", req.SystemType).Msg("Chat request failed")

		// A generation failure after successful retrieval still carries the
		// retrieved sources.
		if errors.Is(err, models.ErrGeneration) && resp != nil {
			WriteJSON(w, http.StatusInternalServerError, map[string]interface{}{
				"status":  "error",
				"error":   err.Error(),
				"sources": resp.Sources,
			})
			return
		}
		WriteError(w, statusForError(err), err.Error())
		return
	}

	WriteJSON(w, http.StatusOK, resp)
}
