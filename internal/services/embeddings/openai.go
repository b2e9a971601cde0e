package embeddings

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/rcastellano/ava/internal/common"
	"github.com/rcastellano/ava/internal/interfaces"
	"github.com/rcastellano/ava/internal/models"
	"github.com/ternarybob/arbor"
)

// openAIEmbeddingService produces dense vectors through the OpenAI
// embeddings endpoint.
type openAIEmbeddingService struct {
	client    openai.Client
	model     string
	dimension int
	logger    arbor.ILogger
}

func NewOpenAIEmbeddingService(cfg *common.Config) (interfaces.EmbeddingService, error) {
	if cfg.OpenAI.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key not configured (set OPENAI_API_KEY)")
	}

	return &openAIEmbeddingService{
		client:    openai.NewClient(option.WithAPIKey(cfg.OpenAI.APIKey)),
		model:     cfg.Embedding.Model,
		dimension: cfg.Embedding.Dimension,
		logger:    common.GetLogger(),
	}, nil
}

func (s *openAIEmbeddingService) Embed(ctx context.Context, text string) ([]float32, error) {
	vectors, err := s.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

func (s *openAIEmbeddingService) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("no texts to embed: %w", models.ErrInvalidInput)
	}

	resp, err := s.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Input: openai.EmbeddingNewParamsInputUnion{OfArrayOfStrings: texts},
		Model: openai.EmbeddingModel(s.model),
	})
	if err != nil {
		return nil, fmt.Errorf("embedding request failed: %w", err)
	}
	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("embedding response returned %d vectors for %d inputs", len(resp.Data), len(texts))
	}

	vectors := make([][]float32, len(resp.Data))
	for i, item := range resp.Data {
		vec := make([]float32, len(item.Embedding))
		for j, v := range item.Embedding {
			vec[j] = float32(v)
		}
		vectors[i] = vec
	}

	s.logger.Debug().
		Str("model", s.model).
		Int("texts", len(texts)).
		Msg("Embedded text batch")

	return vectors, nil
}

func (s *openAIEmbeddingService) Dimension() int {
	return s.dimension
}

func (s *openAIEmbeddingService) ModelName() string {
	return s.model
}
