package index

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"
	"sync"

	"github.com/rcastellano/ava/internal/interfaces"
	"github.com/rcastellano/ava/internal/models"
	"github.com/ternarybob/arbor"
)

// memoryEntry pairs a chunk with its embedding vector.
type memoryEntry struct {
	chunk  models.Chunk
	vector []float32
}

// MemoryIndex is an in-process vector index for ephemeral corpora. Retrieval
// is a brute-force cosine scan, which is fast enough for single-document
// working sets. Ties score-wise resolve in insertion order.
type MemoryIndex struct {
	embedder interfaces.EmbeddingService
	logger   arbor.ILogger

	mu      sync.RWMutex
	entries []memoryEntry
}

func NewMemoryIndex(embedder interfaces.EmbeddingService, logger arbor.ILogger) *MemoryIndex {
	return &MemoryIndex{
		embedder: embedder,
		logger:   logger,
	}
}

// Insert embeds the chunks and adds them to the index.
func (m *MemoryIndex) Insert(ctx context.Context, chunks []models.Chunk) error {
	if len(chunks) == 0 {
		return nil
	}

	texts := make([]string, len(chunks))
	for i, chunk := range chunks {
		texts[i] = chunk.Text
	}

	vectors, err := m.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return fmt.Errorf("failed to embed chunks (%v): %w", err, models.ErrRetrieval)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for i, chunk := range chunks {
		m.entries = append(m.entries, memoryEntry{chunk: chunk, vector: vectors[i]})
	}

	if m.logger != nil {
		m.logger.Debug().Int("chunks", len(chunks)).Int("total", len(m.entries)).Msg("Chunks added to memory index")
	}

	return nil
}

// Retrieve returns the k entries most similar to the query, highest
// similarity first.
func (m *MemoryIndex) Retrieve(ctx context.Context, query string, k int) ([]models.RetrievedPassage, error) {
	if k < 1 {
		return nil, fmt.Errorf("retrieval count must be at least 1, got %d: %w", k, models.ErrInvalidArgument)
	}

	queryVector, err := m.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query (%v): %w", err, models.ErrRetrieval)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	type scored struct {
		position int
		score    float32
	}
	scores := make([]scored, len(m.entries))
	for i, entry := range m.entries {
		scores[i] = scored{position: i, score: cosineSimilarity(queryVector, entry.vector)}
	}

	// SliceStable keeps insertion order for equal scores.
	sort.SliceStable(scores, func(a, b int) bool {
		return scores[a].score > scores[b].score
	})

	if k > len(scores) {
		k = len(scores)
	}

	passages := make([]models.RetrievedPassage, k)
	for i := 0; i < k; i++ {
		entry := m.entries[scores[i].position]
		passages[i] = models.RetrievedPassage{
			Text:  entry.chunk.Text,
			Score: scores[i].score,
			Metadata: map[string]string{
				"source_id": entry.chunk.SourceID,
				"title":     entry.chunk.Title,
				"position":  strconv.Itoa(entry.chunk.Position),
			},
		}
	}

	return passages, nil
}

// Len returns the number of indexed chunks.
func (m *MemoryIndex) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// cosineSimilarity computes the cosine of the angle between two vectors.
// Mismatched or zero-magnitude vectors score zero.
func cosineSimilarity(a, b []float32) float32 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}

	return float32(dot / (math.Sqrt(normA) * math.Sqrt(normB)))
}
