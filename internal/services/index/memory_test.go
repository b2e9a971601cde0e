package index

import (
	"context"
	"errors"
	"testing"

	"github.com/rcastellano/ava/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockEmbedder maps known texts to fixed 2-dimensional vectors so similarity
// ordering is fully deterministic.
type mockEmbedder struct {
	vectors map[string][]float32
}

func (m *mockEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if vec, ok := m.vectors[text]; ok {
		return vec, nil
	}
	return []float32{0, 0}, nil
}

func (m *mockEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, text := range texts {
		vec, err := m.Embed(ctx, text)
		if err != nil {
			return nil, err
		}
		out[i] = vec
	}
	return out, nil
}

func (m *mockEmbedder) Dimension() int    { return 2 }
func (m *mockEmbedder) ModelName() string { return "mock-embedding" }

// failingEmbedder rejects every request, standing in for an unreachable
// embedding endpoint.
type failingEmbedder struct{}

func (f *failingEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	return nil, errors.New("embedding endpoint unreachable")
}

func (f *failingEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	return nil, errors.New("embedding endpoint unreachable")
}

func (f *failingEmbedder) Dimension() int    { return 2 }
func (f *failingEmbedder) ModelName() string { return "failing-embedding" }

func newTestIndex(t *testing.T) *MemoryIndex {
	t.Helper()

	embedder := &mockEmbedder{vectors: map[string][]float32{
		"alpha": {1, 0},
		"beta":  {0.8, 0.6},
		"gamma": {0, 1},
		"delta": {0.6, 0.8},
		"query": {1, 0},
	}}

	idx := NewMemoryIndex(embedder, nil)
	err := idx.Insert(context.Background(), []models.Chunk{
		{Text: "gamma", SourceID: "doc", Position: 0},
		{Text: "alpha", SourceID: "doc", Position: 1},
		{Text: "delta", SourceID: "doc", Position: 2},
		{Text: "beta", SourceID: "doc", Position: 3},
	})
	require.NoError(t, err)
	return idx
}

func TestMemoryIndex_RetrieveOrdersBySimilarity(t *testing.T) {
	idx := newTestIndex(t)

	passages, err := idx.Retrieve(context.Background(), "query", 4)
	require.NoError(t, err)
	require.Len(t, passages, 4)

	assert.Equal(t, "alpha", passages[0].Text)
	assert.Equal(t, "beta", passages[1].Text)
	assert.Equal(t, "delta", passages[2].Text)
	assert.Equal(t, "gamma", passages[3].Text)

	for i := 1; i < len(passages); i++ {
		assert.GreaterOrEqual(t, passages[i-1].Score, passages[i].Score)
	}
}

func TestMemoryIndex_SmallerKIsPrefixOfLargerK(t *testing.T) {
	idx := newTestIndex(t)
	ctx := context.Background()

	top2, err := idx.Retrieve(ctx, "query", 2)
	require.NoError(t, err)
	top4, err := idx.Retrieve(ctx, "query", 4)
	require.NoError(t, err)

	require.Len(t, top2, 2)
	for i, passage := range top2 {
		assert.Equal(t, top4[i].Text, passage.Text)
	}
}

func TestMemoryIndex_KLargerThanIndexReturnsAll(t *testing.T) {
	idx := newTestIndex(t)

	passages, err := idx.Retrieve(context.Background(), "query", 50)
	require.NoError(t, err)
	assert.Len(t, passages, 4)
}

func TestMemoryIndex_InvalidK(t *testing.T) {
	idx := newTestIndex(t)

	_, err := idx.Retrieve(context.Background(), "query", 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrInvalidArgument)

	_, err = idx.Retrieve(context.Background(), "query", -3)
	assert.ErrorIs(t, err, models.ErrInvalidArgument)
}

func TestMemoryIndex_TiesResolveInInsertionOrder(t *testing.T) {
	embedder := &mockEmbedder{vectors: map[string][]float32{
		"first":  {1, 0},
		"second": {1, 0},
		"third":  {1, 0},
		"query":  {1, 0},
	}}

	idx := NewMemoryIndex(embedder, nil)
	err := idx.Insert(context.Background(), []models.Chunk{
		{Text: "first", Position: 0},
		{Text: "second", Position: 1},
		{Text: "third", Position: 2},
	})
	require.NoError(t, err)

	passages, err := idx.Retrieve(context.Background(), "query", 3)
	require.NoError(t, err)
	require.Len(t, passages, 3)

	assert.Equal(t, "first", passages[0].Text)
	assert.Equal(t, "second", passages[1].Text)
	assert.Equal(t, "third", passages[2].Text)
}

func TestMemoryIndex_MetadataCarriesChunkProvenance(t *testing.T) {
	embedder := &mockEmbedder{vectors: map[string][]float32{
		"alpha": {1, 0},
		"query": {1, 0},
	}}

	idx := NewMemoryIndex(embedder, nil)
	err := idx.Insert(context.Background(), []models.Chunk{
		{Text: "alpha", SourceID: "upload_1", Position: 7, Title: "statement.pdf"},
	})
	require.NoError(t, err)

	passages, err := idx.Retrieve(context.Background(), "query", 1)
	require.NoError(t, err)
	require.Len(t, passages, 1)

	assert.Equal(t, "upload_1", passages[0].Metadata["source_id"])
	assert.Equal(t, "statement.pdf", passages[0].Metadata["title"])
	assert.Equal(t, "7", passages[0].Metadata["position"])
	assert.Equal(t, "statement.pdf", passages[0].Title())
}

func TestMemoryIndex_EmbeddingFailureIsRetrievalError(t *testing.T) {
	ctx := context.Background()

	idx := newTestIndex(t)
	broken := NewMemoryIndex(&failingEmbedder{}, nil)

	err := broken.Insert(ctx, []models.Chunk{{Text: "alpha", SourceID: "doc", Position: 0}})
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrRetrieval)

	// Retrieval against an already-built index fails the same way when the
	// query embedding does.
	idx.embedder = &failingEmbedder{}
	_, err = idx.Retrieve(ctx, "query", 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrRetrieval)
}

func TestCosineSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, cosineSimilarity([]float32{1, 0}, []float32{2, 0}), 1e-6)
	assert.InDelta(t, 0.0, cosineSimilarity([]float32{1, 0}, []float32{0, 1}), 1e-6)
	assert.InDelta(t, -1.0, cosineSimilarity([]float32{1, 0}, []float32{-1, 0}), 1e-6)

	// Degenerate inputs score zero instead of dividing by zero.
	assert.Zero(t, cosineSimilarity([]float32{0, 0}, []float32{1, 0}))
	assert.Zero(t, cosineSimilarity([]float32{1, 0}, []float32{1, 0, 0}))
	assert.Zero(t, cosineSimilarity(nil, nil))
}

func TestMemoryIndex_Len(t *testing.T) {
	idx := newTestIndex(t)
	assert.Equal(t, 4, idx.Len())

	empty := NewMemoryIndex(&mockEmbedder{}, nil)
	assert.Equal(t, 0, empty.Len())
}
