package index

import (
	"context"
	"fmt"
	"strconv"

	"github.com/qdrant/go-client/qdrant"
	"github.com/rcastellano/ava/internal/common"
	"github.com/rcastellano/ava/internal/interfaces"
	"github.com/rcastellano/ava/internal/models"
	"github.com/ternarybob/arbor"
)

// QdrantIndex is a persistent vector index backed by a Qdrant collection.
// Each persistent profile owns its own collection.
type QdrantIndex struct {
	client     *qdrant.Client
	collection string
	embedder   interfaces.EmbeddingService
	logger     arbor.ILogger
}

// NewQdrantClient connects to the configured Qdrant instance.
func NewQdrantClient(cfg *common.QdrantConfig) (*qdrant.Client, error) {
	client, err := qdrant.NewClient(&qdrant.Config{
		Host: cfg.Host,
		Port: cfg.Port,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Qdrant at %s:%d: %w", cfg.Host, cfg.Port, err)
	}
	return client, nil
}

// NewQdrantIndex wraps a collection, creating it if it does not exist yet.
func NewQdrantIndex(ctx context.Context, client *qdrant.Client, collection string, embedder interfaces.EmbeddingService, logger arbor.ILogger) (*QdrantIndex, error) {
	idx := &QdrantIndex{
		client:     client,
		collection: collection,
		embedder:   embedder,
		logger:     logger,
	}

	if err := idx.ensureCollection(ctx); err != nil {
		return nil, err
	}

	return idx, nil
}

// ensureCollection creates the collection with cosine distance when missing.
func (q *QdrantIndex) ensureCollection(ctx context.Context) error {
	collections, err := q.client.ListCollections(ctx)
	if err != nil {
		return fmt.Errorf("failed to list Qdrant collections: %w", err)
	}
	for _, name := range collections {
		if name == q.collection {
			return nil
		}
	}

	err = q.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: q.collection,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     uint64(q.embedder.Dimension()),
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("failed to create Qdrant collection '%s': %w", q.collection, err)
	}

	q.logger.Info().
		Str("collection", q.collection).
		Int("dimension", q.embedder.Dimension()).
		Msg("Created Qdrant collection")

	return nil
}

// Insert embeds the chunks and upserts them into the collection.
func (q *QdrantIndex) Insert(ctx context.Context, chunks []models.Chunk) error {
	if len(chunks) == 0 {
		return nil
	}

	texts := make([]string, len(chunks))
	for i, chunk := range chunks {
		texts[i] = chunk.Text
	}

	vectors, err := q.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return fmt.Errorf("failed to embed chunks (%v): %w", err, models.ErrRetrieval)
	}

	points := make([]*qdrant.PointStruct, len(chunks))
	for i, chunk := range chunks {
		points[i] = &qdrant.PointStruct{
			Id:      qdrant.NewID(common.NewPointID()),
			Vectors: qdrant.NewVectors(vectors[i]...),
			Payload: qdrant.NewValueMap(map[string]interface{}{
				"text":      chunk.Text,
				"source_id": chunk.SourceID,
				"title":     chunk.Title,
				"position":  strconv.Itoa(chunk.Position),
			}),
		}
	}

	_, err = q.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: q.collection,
		Points:         points,
	})
	if err != nil {
		return fmt.Errorf("failed to upsert points into '%s' (%v): %w", q.collection, err, models.ErrRetrieval)
	}

	q.logger.Debug().
		Str("collection", q.collection).
		Int("chunks", len(chunks)).
		Msg("Chunks upserted to Qdrant")

	return nil
}

// Retrieve runs a similarity search against the collection.
func (q *QdrantIndex) Retrieve(ctx context.Context, query string, k int) ([]models.RetrievedPassage, error) {
	if k < 1 {
		return nil, fmt.Errorf("retrieval count must be at least 1, got %d: %w", k, models.ErrInvalidArgument)
	}

	queryVector, err := q.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query (%v): %w", err, models.ErrRetrieval)
	}

	limit := uint64(k)
	hits, err := q.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: q.collection,
		Query:          qdrant.NewQuery(queryVector...),
		Limit:          &limit,
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("similarity search against '%s' failed (%v): %w", q.collection, err, models.ErrRetrieval)
	}

	passages := make([]models.RetrievedPassage, 0, len(hits))
	for _, hit := range hits {
		payload := hit.GetPayload()
		passage := models.RetrievedPassage{
			Score:    hit.GetScore(),
			Metadata: map[string]string{},
		}
		if val, ok := payload["text"]; ok {
			passage.Text = val.GetStringValue()
		}
		for _, key := range []string{"source_id", "title", "position"} {
			if val, ok := payload[key]; ok {
				passage.Metadata[key] = val.GetStringValue()
			}
		}
		passages = append(passages, passage)
	}

	return passages, nil
}

// Len reports -1: Qdrant has no cheap local count and the callers only need
// to distinguish empty ephemeral indexes.
func (q *QdrantIndex) Len() int {
	return -1
}
