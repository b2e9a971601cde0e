package interfaces

import (
	"context"

	"github.com/rcastellano/ava/internal/models"
)

// VectorIndex wraps an embedded corpus, persistent or in-memory. Retrieval is
// read-only and idempotent for a fixed index state; concurrent retrievals
// never block each other or mutate state.
type VectorIndex interface {
	// Insert embeds the chunks and stores vector, text, and metadata.
	// Persistent implementations perform network I/O and may fail
	// transiently; in-memory implementations build local structures.
	Insert(ctx context.Context, chunks []models.Chunk) error

	// Retrieve returns the k nearest passages for the query, ordered by
	// descending similarity with ties broken by insertion order. Fails with
	// models.ErrInvalidArgument when k < 1.
	Retrieve(ctx context.Context, query string, k int) ([]models.RetrievedPassage, error)

	// Len reports the number of stored chunks, or -1 when the backing store
	// does not expose a cheap count.
	Len() int
}
