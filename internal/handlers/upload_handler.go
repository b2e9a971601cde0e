package handlers

import (
	"io"
	"net/http"

	"github.com/rcastellano/ava/internal/interfaces"
	"github.com/ternarybob/arbor"
)

// maxUploadBytes caps document uploads at 32 MB
const maxUploadBytes = 32 << 20

// UploadHandler handles document upload HTTP requests
type UploadHandler struct {
	ragService interfaces.RagService
	logger     arbor.ILogger
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(ragService interfaces.RagService, logger arbor.ILogger) *UploadHandler {
	return &UploadHandler{
		ragService: ragService,
		logger:     logger,
	}
}

// UploadHandler handles POST /api/upload requests. The uploaded document is
// parsed and ingested into the profile named by the system_type form field.
func (h *UploadHandler) UploadHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse upload form")
		WriteError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Missing 'file' field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to read upload")
		WriteError(w, http.StatusBadRequest, "Failed to read uploaded file")
		return
	}

	systemType := r.FormValue("system_type")
	if systemType == "" {
		systemType = "journal"
	}

	h.logger.Info().
		Str("system_type", systemType).
		Str("filename", header.Filename).
		Int("bytes", len(data)).
		Msg("Processing document upload")

	result, err := h.ragService.Ingest(r.Context(), systemType, header.Filename, data)
	if err != nil {
		h.logger.Error().Err(err).Str("filename", header.Filename).Msg("Document ingest failed")
		WriteError(w, statusForError(err), err.Error())
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"chunk_count": result.ChunkCount,
		"pages":       result.Segments,
	})
}
