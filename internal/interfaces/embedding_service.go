package interfaces

import "context"

// EmbeddingService converts text into fixed-length vectors. The same model
// and dimension must be used for both indexing and querying within a profile.
type EmbeddingService interface {
	// Embed generates a vector for a single text
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch generates vectors for multiple texts in one call,
	// preserving input order
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// Dimension returns the vector length the model produces
	Dimension() int

	// ModelName returns the embedding model identifier
	ModelName() string
}
