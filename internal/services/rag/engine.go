package rag

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/rcastellano/ava/internal/interfaces"
	"github.com/rcastellano/ava/internal/models"
	"github.com/rcastellano/ava/internal/services/chunker"
	"github.com/rcastellano/ava/internal/services/index"
	"github.com/ternarybob/arbor"
)

// Engine answers questions for a single profile. Persistent profiles query
// a long-lived vector collection; ephemeral profiles query whichever
// document was ingested last.
type Engine struct {
	profile  models.SystemProfile
	llm      interfaces.LLMService
	embedder interfaces.EmbeddingService
	splitter *chunker.Splitter
	logger   arbor.ILogger

	persistent interfaces.VectorIndex

	// Each ingest builds a complete replacement index, so readers hold a
	// consistent snapshot without locking.
	ephemeral atomic.Pointer[ephemeralIndex]
}

type ephemeralIndex struct {
	index      interfaces.VectorIndex
	sourceID   string
	chunkCount int
}

// NewPersistentEngine wraps a profile around an existing vector collection.
func NewPersistentEngine(profile models.SystemProfile, idx interfaces.VectorIndex, llm interfaces.LLMService, logger arbor.ILogger) *Engine {
	return &Engine{
		profile:    profile,
		llm:        llm,
		logger:     logger,
		persistent: idx,
	}
}

// NewEphemeralEngine creates an engine whose corpus is rebuilt from scratch
// on every ingest.
func NewEphemeralEngine(profile models.SystemProfile, embedder interfaces.EmbeddingService, splitter *chunker.Splitter, llm interfaces.LLMService, logger arbor.ILogger) *Engine {
	return &Engine{
		profile:  profile,
		llm:      llm,
		embedder: embedder,
		splitter: splitter,
		logger:   logger,
	}
}

func (e *Engine) Profile() models.SystemProfile {
	return e.profile
}

// Ready reports whether the engine can serve retrievals.
func (e *Engine) Ready() bool {
	if e.profile.CorpusMode == models.CorpusPersistent {
		return true
	}
	return e.ephemeral.Load() != nil
}

// Ingest chunks and indexes the document, replacing any previously indexed
// document. Only ephemeral profiles accept ingestion; persistent corpora are
// maintained outside the service.
func (e *Engine) Ingest(ctx context.Context, doc models.Document) (int, error) {
	if e.profile.CorpusMode != models.CorpusEphemeral {
		return 0, fmt.Errorf("profile '%s' uses a persistent corpus: %w", e.profile.Key, models.ErrUnsupportedOperation)
	}

	chunks, err := e.splitter.Split(doc, e.profile.ChunkSize, e.profile.ChunkOverlap)
	if err != nil {
		return 0, err
	}
	if len(chunks) == 0 {
		return 0, fmt.Errorf("document '%s' contains no indexable text: %w", doc.SourceID, models.ErrInvalidInput)
	}

	idx := index.NewMemoryIndex(e.embedder, e.logger)
	if err := idx.Insert(ctx, chunks); err != nil {
		return 0, err
	}

	e.ephemeral.Store(&ephemeralIndex{
		index:      idx,
		sourceID:   doc.SourceID,
		chunkCount: len(chunks),
	})

	e.logger.Info().
		Str("profile", e.profile.Key).
		Str("source_id", doc.SourceID).
		Int("chunks", len(chunks)).
		Msg("Document indexed")

	return len(chunks), nil
}

// Retrieve returns the passages most relevant to the question. A k of zero
// means unset and falls back to the profile's configured top-k; a negative k
// is rejected rather than clamped.
func (e *Engine) Retrieve(ctx context.Context, question string, k int) ([]models.RetrievedPassage, error) {
	if k < 0 {
		return nil, fmt.Errorf("retrieval count must be at least 1, got %d: %w", k, models.ErrInvalidArgument)
	}
	idx, err := e.currentIndex()
	if err != nil {
		return nil, err
	}
	if k == 0 {
		k = e.profile.TopK
	}
	return idx.Retrieve(ctx, question, k)
}

// Answer retrieves context for the question and generates a grounded
// response at temperature zero. When generation fails the retrieved sources
// still come back alongside the error so callers can surface them.
func (e *Engine) Answer(ctx context.Context, question string, history []models.ConversationTurn) (*models.Answer, error) {
	passages, err := e.Retrieve(ctx, question, 0)
	if err != nil {
		return nil, err
	}

	messages := make([]interfaces.Message, 0, len(history)+1)
	for _, turn := range history {
		messages = append(messages, interfaces.Message{
			Role:    turn.Role,
			Content: turn.Content,
		})
	}
	messages = append(messages, interfaces.Message{
		Role:    models.RoleUser,
		Content: buildContextBlock(passages) + "\n\nAnswer the following question using the documents above: " + question,
	})

	text, err := e.llm.Generate(ctx, &interfaces.GenerationRequest{
		SystemPrompt: e.profile.SystemPrompt,
		Messages:     messages,
		Temperature:  0,
	})
	if err != nil {
		return &models.Answer{Sources: passages},
			fmt.Errorf("answer generation for profile '%s' failed (%v): %w", e.profile.Key, err, models.ErrGeneration)
	}

	return &models.Answer{Text: text, Sources: passages}, nil
}

func (e *Engine) currentIndex() (interfaces.VectorIndex, error) {
	if e.profile.CorpusMode == models.CorpusPersistent {
		return e.persistent, nil
	}
	state := e.ephemeral.Load()
	if state == nil {
		return nil, fmt.Errorf("profile '%s' has no indexed document: %w", e.profile.Key, models.ErrNotReady)
	}
	return state.index, nil
}

// LastIngested returns the source id and chunk count of the current
// ephemeral document, or empty values when nothing is indexed.
func (e *Engine) LastIngested() (string, int) {
	state := e.ephemeral.Load()
	if state == nil {
		return "", 0
	}
	return state.sourceID, state.chunkCount
}

// buildContextBlock numbers each passage so the model can cite sources by
// position, matching the [^n] citation format the prompts require.
func buildContextBlock(passages []models.RetrievedPassage) string {
	var builder strings.Builder
	for i, passage := range passages {
		if i > 0 {
			builder.WriteString("\n\n")
		}
		builder.WriteString(fmt.Sprintf("Document %d:\n", i+1))
		if title := passage.Title(); title != "" {
			builder.WriteString(fmt.Sprintf("Title: %s\n", title))
		}
		builder.WriteString("Content: ")
		builder.WriteString(passage.Text)
	}
	return builder.String()
}
