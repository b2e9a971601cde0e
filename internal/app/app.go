package app

import (
	"context"
	"fmt"

	"github.com/qdrant/go-client/qdrant"
	"github.com/rcastellano/ava/internal/common"
	"github.com/rcastellano/ava/internal/handlers"
	"github.com/rcastellano/ava/internal/interfaces"
	"github.com/rcastellano/ava/internal/models"
	"github.com/rcastellano/ava/internal/services/chunker"
	"github.com/rcastellano/ava/internal/services/embeddings"
	"github.com/rcastellano/ava/internal/services/index"
	"github.com/rcastellano/ava/internal/services/llm"
	"github.com/rcastellano/ava/internal/services/parser"
	"github.com/rcastellano/ava/internal/services/rag"
	badgerstore "github.com/rcastellano/ava/internal/storage/badger"
	"github.com/ternarybob/arbor"
)

// App holds all application components and dependencies
type App struct {
	Config    *common.Config
	Logger    arbor.ILogger
	ctx       context.Context
	cancelCtx context.CancelFunc

	// Storage
	DB            *badgerstore.BadgerDB
	UploadStorage interfaces.KeyValueStorage
	StatusStorage interfaces.IngestStatusStorage

	// Model services
	EmbeddingService interfaces.EmbeddingService
	LLMService       interfaces.LLMService

	// Vector store client for persistent profiles
	QdrantClient *qdrant.Client

	// RAG orchestration
	Registry   *rag.Registry
	RagService interfaces.RagService

	// HTTP handlers
	APIHandler      *handlers.APIHandler
	ChatHandler     *handlers.ChatHandler
	UploadHandler   *handlers.UploadHandler
	SystemsHandler  *handlers.SystemsHandler
	RetrieveHandler *handlers.RetrieveHandler
	StatusHandler   *handlers.StatusHandler
}

// New creates and wires the application
func New(cfg *common.Config, logger arbor.ILogger) (*App, error) {
	ctx, cancel := context.WithCancel(context.Background())

	a := &App{
		Config:    cfg,
		Logger:    logger,
		ctx:       ctx,
		cancelCtx: cancel,
	}

	if err := a.initStorage(); err != nil {
		cancel()
		return nil, err
	}

	if err := a.initServices(); err != nil {
		a.Close()
		return nil, err
	}

	a.initHandlers()

	logger.Info().
		Int("profiles", len(cfg.Profiles)).
		Str("llm_provider", string(cfg.LLM.DefaultProvider)).
		Msg("Application initialized")

	return a, nil
}

func (a *App) initStorage() error {
	db, err := badgerstore.NewBadgerDB(a.Logger, &a.Config.Storage.Badger)
	if err != nil {
		return fmt.Errorf("failed to initialize badger storage: %w", err)
	}
	a.DB = db
	a.UploadStorage = badgerstore.NewKVStorage(db, a.Logger)
	a.StatusStorage = badgerstore.NewIngestStatusStorage(db, a.Logger)
	return nil
}

func (a *App) initServices() error {
	embedder, err := embeddings.NewOpenAIEmbeddingService(a.Config)
	if err != nil {
		return fmt.Errorf("failed to initialize embedding service: %w", err)
	}
	a.EmbeddingService = embedder

	llmService, err := llm.NewLLMService(a.Config, a.Logger)
	if err != nil {
		return fmt.Errorf("failed to initialize LLM service: %w", err)
	}
	a.LLMService = llmService

	a.Registry = rag.NewRegistry(a.Config.Profiles)
	splitter := chunker.NewSplitter(a.Logger)

	engines := make(map[string]*rag.Engine, len(a.Config.Profiles))
	for _, key := range a.Registry.Keys() {
		profile, err := a.Registry.Resolve(key)
		if err != nil {
			return err
		}

		switch profile.CorpusMode {
		case models.CorpusPersistent:
			idx, err := a.persistentIndex(profile, embedder)
			if err != nil {
				return err
			}
			engines[key] = rag.NewPersistentEngine(profile, idx, llmService, a.Logger)

		case models.CorpusEphemeral:
			engines[key] = rag.NewEphemeralEngine(profile, embedder, splitter, llmService, a.Logger)

		default:
			return fmt.Errorf("profile '%s' has invalid corpus mode '%s'", key, profile.CorpusMode)
		}
	}

	parsers := []interfaces.DocumentParser{
		parser.NewPDFParser(a.Logger),
		parser.NewTextParser(),
	}

	a.RagService = rag.NewService(a.Registry, engines, parsers, a.UploadStorage, a.StatusStorage, a.Logger)
	return nil
}

// persistentIndex connects to Qdrant on first use and wraps the profile's
// collection.
func (a *App) persistentIndex(profile models.SystemProfile, embedder interfaces.EmbeddingService) (interfaces.VectorIndex, error) {
	if a.QdrantClient == nil {
		client, err := index.NewQdrantClient(&a.Config.Qdrant)
		if err != nil {
			return nil, err
		}
		a.QdrantClient = client
	}

	name := profile.Collection
	if name == "" {
		name = profile.Key
	}
	collection := fmt.Sprintf("%s_%s", a.Config.Qdrant.CollectionBase, name)

	idx, err := index.NewQdrantIndex(a.ctx, a.QdrantClient, collection, embedder, a.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize collection for profile '%s': %w", profile.Key, err)
	}
	return idx, nil
}

func (a *App) initHandlers() {
	a.APIHandler = handlers.NewAPIHandler()
	a.ChatHandler = handlers.NewChatHandler(a.RagService, a.Logger)
	a.UploadHandler = handlers.NewUploadHandler(a.RagService, a.Logger)
	a.SystemsHandler = handlers.NewSystemsHandler(a.RagService, a.Logger)
	a.RetrieveHandler = handlers.NewRetrieveHandler(a.RagService, a.Logger)
	a.StatusHandler = handlers.NewStatusHandler(a.RagService, a.Logger)
}

// Close closes all application resources
func (a *App) Close() error {
	a.cancelCtx()

	if a.LLMService != nil {
		if err := a.LLMService.Close(); err != nil {
			a.Logger.Warn().Err(err).Msg("Failed to close LLM service")
		}
	}

	if a.QdrantClient != nil {
		if err := a.QdrantClient.Close(); err != nil {
			a.Logger.Warn().Err(err).Msg("Failed to close Qdrant client")
		}
	}

	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			a.Logger.Warn().Err(err).Msg("Failed to close badger storage")
			return err
		}
	}

	a.Logger.Info().Msg("Application closed")
	return nil
}
