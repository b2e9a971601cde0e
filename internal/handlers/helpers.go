package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rcastellano/ava/internal/models"
)

// RequireMethod validates that the HTTP request uses the specified method.
// Returns true if the method matches, false otherwise (and writes error response).
func RequireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}

// WriteJSON writes a JSON response with the specified status code and data.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}

// WriteError writes a standard error JSON response.
func WriteError(w http.ResponseWriter, statusCode int, message string) error {
	return WriteJSON(w, statusCode, map[string]string{
		"status": "error",
		"error":  message,
	})
}

// statusForError maps service errors to HTTP status codes. Caller mistakes
// are 400s; retrieval and generation failures are 500s.
func statusForError(err error) int {
	switch {
	case errors.Is(err, models.ErrInvalidRequest),
		errors.Is(err, models.ErrInvalidInput),
		errors.Is(err, models.ErrInvalidArgument),
		errors.Is(err, models.ErrNotReady),
		errors.Is(err, models.ErrUnsupportedOperation),
		errors.Is(err, models.ErrParse):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
