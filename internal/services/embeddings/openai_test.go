package embeddings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcastellano/ava/internal/common"
	"github.com/rcastellano/ava/internal/models"
)

func TestNewOpenAIEmbeddingService_MissingAPIKey(t *testing.T) {
	cfg := common.NewDefaultConfig()
	cfg.OpenAI.APIKey = ""

	_, err := NewOpenAIEmbeddingService(cfg)
	assert.Error(t, err)
}

func TestNewOpenAIEmbeddingService_ReportsConfiguredModel(t *testing.T) {
	cfg := common.NewDefaultConfig()
	cfg.OpenAI.APIKey = "sk-test"

	service, err := NewOpenAIEmbeddingService(cfg)
	require.NoError(t, err)

	assert.Equal(t, "text-embedding-3-small", service.ModelName())
	assert.Equal(t, 1536, service.Dimension())
}

func TestEmbedBatch_RejectsEmptyInput(t *testing.T) {
	cfg := common.NewDefaultConfig()
	cfg.OpenAI.APIKey = "sk-test"

	service, err := NewOpenAIEmbeddingService(cfg)
	require.NoError(t, err)

	_, err = service.EmbedBatch(context.Background(), nil)
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}
