package models

import (
	"errors"
	"fmt"
)

// Typed failure categories for the RAG pipeline. Handlers map these to
// HTTP status codes with errors.Is; services wrap them with context via
// fmt.Errorf("...: %w", ...).
var (
	// ErrInvalidRequest marks client errors: unknown system type, malformed
	// history, missing attachment for an ingest-only profile.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrNotReady marks a query against an ephemeral profile before any
	// document has been ingested.
	ErrNotReady = errors.New("no document ingested yet")

	// ErrUnsupportedOperation marks an ingest attempt against a persistent
	// profile.
	ErrUnsupportedOperation = errors.New("operation not supported for this profile")

	// ErrParse marks a document parsing failure (corrupt or unsupported file).
	// The document is rejected whole; no partial index is created.
	ErrParse = errors.New("document parse failed")

	// ErrRetrieval marks an embedding or vector store failure. Treated as
	// transient; retry policy belongs to the caller, not the core.
	ErrRetrieval = errors.New("retrieval failed")

	// ErrGeneration marks an LLM call that failed, timed out, or returned
	// empty text. Retrieved passages may still accompany the error.
	ErrGeneration = errors.New("generation failed")

	// ErrInvalidInput marks bad chunking parameters (overlap >= chunk size).
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidArgument marks programmer errors such as k < 1 on retrieval.
	ErrInvalidArgument = errors.New("invalid argument")
)

// UnknownSystemError builds the error returned when a system type key is not
// registered. It wraps ErrInvalidRequest so boundary code can treat it as a
// client error without a dedicated branch.
func UnknownSystemError(key string) error {
	return fmt.Errorf("unknown system type %q: %w", key, ErrInvalidRequest)
}
