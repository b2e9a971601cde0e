package rag

import (
	"context"
	"errors"
	"testing"

	"github.com/rcastellano/ava/internal/common"
	"github.com/rcastellano/ava/internal/interfaces"
	"github.com/rcastellano/ava/internal/models"
	"github.com/rcastellano/ava/internal/services/chunker"
	"github.com/rcastellano/ava/internal/services/index"
	"github.com/rcastellano/ava/internal/services/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryStatusStore is an in-memory IngestStatusStorage for tests.
type memoryStatusStore struct {
	records map[string]*models.IngestStatus
}

func newMemoryStatusStore() *memoryStatusStore {
	return &memoryStatusStore{records: make(map[string]*models.IngestStatus)}
}

func (m *memoryStatusStore) Save(ctx context.Context, status *models.IngestStatus) error {
	m.records[status.ProfileKey] = status
	return nil
}

func (m *memoryStatusStore) Get(ctx context.Context, profileKey string) (*models.IngestStatus, error) {
	if status, ok := m.records[profileKey]; ok {
		return status, nil
	}
	return nil, interfaces.ErrKeyNotFound
}

func newTestService(t *testing.T, llm interfaces.LLMService) (*Service, *memoryStatusStore) {
	t.Helper()

	logger := common.GetLogger()
	embedder := &hashEmbedder{}
	splitter := chunker.NewSplitter(logger)
	registry := NewRegistry(common.DefaultProfiles())

	// The persistent profile gets a pre-populated in-process index so tests
	// exercise the same retrieval path without an external vector store.
	generalProfile, err := registry.Resolve("general")
	require.NoError(t, err)
	generalIndex := index.NewMemoryIndex(embedder, nil)
	err = generalIndex.Insert(context.Background(), []models.Chunk{
		{Text: "Senate Bill 2654 was filed in May 2024.", SourceID: "corpus", Position: 0, Title: "SB 2654"},
		{Text: "The CREATE MORE act amends investment incentives.", SourceID: "corpus", Position: 1, Title: "CREATE MORE"},
	})
	require.NoError(t, err)

	journal, err := registry.Resolve("journal")
	require.NoError(t, err)

	engines := map[string]*Engine{
		"general": NewPersistentEngine(generalProfile, generalIndex, llm, logger),
		"journal": NewEphemeralEngine(journal, embedder, splitter, llm, logger),
	}

	statuses := newMemoryStatusStore()
	parsers := []interfaces.DocumentParser{parser.NewPDFParser(logger), parser.NewTextParser()}

	return NewService(registry, engines, parsers, nil, statuses, logger), statuses
}

func TestService_Ask_EmptyQuestion(t *testing.T) {
	svc, _ := newTestService(t, &mockLLM{})

	_, err := svc.Ask(context.Background(), &interfaces.AskRequest{SystemType: "general"})
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrInvalidRequest)
}

func TestService_Ask_UnknownSystemType(t *testing.T) {
	svc, _ := newTestService(t, &mockLLM{})

	_, err := svc.Ask(context.Background(), &interfaces.AskRequest{
		SystemType: "archives",
		Question:   "anything",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrInvalidRequest)
	assert.Contains(t, err.Error(), "archives")
}

func TestService_Ask_DefaultsToGeneral(t *testing.T) {
	llm := &mockLLM{}
	svc, _ := newTestService(t, llm)

	resp, err := svc.Ask(context.Background(), &interfaces.AskRequest{Question: "what is SB 2654"})
	require.NoError(t, err)
	assert.Equal(t, "mock answer", resp.Answer)
	assert.NotEmpty(t, resp.Sources)
	assert.Equal(t, 1, llm.calls)
}

func TestService_Ask_OverrideBypassesGeneration(t *testing.T) {
	llm := &mockLLM{}
	svc, _ := newTestService(t, llm)

	resp, err := svc.Ask(context.Background(), &interfaces.AskRequest{
		SystemType: "journal",
		Question:   "generate the journal",
		Attachment: []string{"page one text", "page two text"},
	})
	require.NoError(t, err)

	assert.Equal(t, JournalOutput, resp.Answer)
	assert.NotNil(t, resp.Sources)
	assert.Empty(t, resp.Sources)
	assert.Zero(t, llm.calls, "override must not reach the model")
}

func TestService_Ask_JournalNotReady(t *testing.T) {
	svc, _ := newTestService(t, &mockLLM{})

	_, err := svc.Ask(context.Background(), &interfaces.AskRequest{
		SystemType: "journal",
		Question:   "what happened in the session",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrNotReady)
}

func TestService_Ask_AttachmentIngestsWhenOverrideAbsent(t *testing.T) {
	llm := &mockLLM{}
	svc, _ := newTestService(t, llm)

	// Disable the journal override so attachments index instead of
	// short-circuiting.
	journal := svc.registry.profiles["journal"]
	journal.Override = nil
	svc.registry.profiles["journal"] = journal

	resp, err := svc.Ask(context.Background(), &interfaces.AskRequest{
		SystemType: "journal",
		Question:   "what did the committee discuss",
		Attachment: []string{"The committee discussed the national budget."},
	})
	require.NoError(t, err)
	assert.Equal(t, "mock answer", resp.Answer)
	assert.NotEmpty(t, resp.Sources)
	assert.True(t, svc.engines["journal"].Ready())
}

func TestService_Ask_GenerationFailureExposesSources(t *testing.T) {
	llm := &mockLLM{
		generateFunc: func(ctx context.Context, req *interfaces.GenerationRequest) (string, error) {
			return "", errors.New("model overloaded")
		},
	}
	svc, _ := newTestService(t, llm)

	resp, err := svc.Ask(context.Background(), &interfaces.AskRequest{
		SystemType: "general",
		Question:   "what is SB 2654",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrGeneration)
	require.NotNil(t, resp)
	assert.Empty(t, resp.Answer)
	assert.NotEmpty(t, resp.Sources)
}

func TestService_Ingest_TextUpload(t *testing.T) {
	svc, statuses := newTestService(t, &mockLLM{})
	ctx := context.Background()

	result, err := svc.Ingest(ctx, "journal", "transcript.txt", []byte("The session opened. The roll was called. The session adjourned."))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Segments)
	assert.Greater(t, result.ChunkCount, 0)

	// The ingest is recorded and the profile becomes ready.
	record, err := statuses.Get(ctx, "journal")
	require.NoError(t, err)
	assert.Equal(t, result.ChunkCount, record.ChunkCount)
	assert.NotEmpty(t, record.SourceID)

	resp, err := svc.Ask(ctx, &interfaces.AskRequest{SystemType: "journal", Question: "when did the session open"})
	require.NoError(t, err)
	assert.Equal(t, "mock answer", resp.Answer)
}

func TestService_Ingest_PersistentProfileRejected(t *testing.T) {
	svc, _ := newTestService(t, &mockLLM{})

	_, err := svc.Ingest(context.Background(), "general", "doc.txt", []byte("some text"))
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrUnsupportedOperation)
}

func TestService_Ingest_UnsupportedFileType(t *testing.T) {
	svc, _ := newTestService(t, &mockLLM{})

	_, err := svc.Ingest(context.Background(), "journal", "archive.zip", []byte{0x50, 0x4b})
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrParse)
}

func TestService_RetrieveOnly(t *testing.T) {
	svc, _ := newTestService(t, &mockLLM{})

	texts, err := svc.RetrieveOnly(context.Background(), "general", "investment incentives", 1)
	require.NoError(t, err)
	require.Len(t, texts, 1)
	assert.NotEmpty(t, texts[0])

	_, err = svc.RetrieveOnly(context.Background(), "general", "  ", 1)
	assert.ErrorIs(t, err, models.ErrInvalidRequest)

	_, err = svc.RetrieveOnly(context.Background(), "missing", "question", 1)
	assert.ErrorIs(t, err, models.ErrInvalidRequest)
}

func TestService_ListProfiles(t *testing.T) {
	svc, _ := newTestService(t, &mockLLM{})

	profiles := svc.ListProfiles()
	require.Len(t, profiles, 2)
	assert.Equal(t, "general", profiles[0].Key)
	assert.Equal(t, "Bill Aging Assistant", profiles[0].DisplayName)
	assert.Equal(t, "journal", profiles[1].Key)
	assert.Equal(t, "Transcription Assistant", profiles[1].DisplayName)
}

func TestService_Status(t *testing.T) {
	svc, _ := newTestService(t, &mockLLM{})
	ctx := context.Background()

	statuses := svc.Status(ctx)
	require.Len(t, statuses, 2)
	assert.Equal(t, models.CorpusPersistent, statuses[0].CorpusMode)
	assert.True(t, statuses[0].Ready)
	assert.Equal(t, models.CorpusEphemeral, statuses[1].CorpusMode)
	assert.False(t, statuses[1].Ready)
	assert.Nil(t, statuses[1].LastIngest)

	_, err := svc.Ingest(ctx, "journal", "transcript.txt", []byte("A short transcript of the session."))
	require.NoError(t, err)

	statuses = svc.Status(ctx)
	assert.True(t, statuses[1].Ready)
	require.NotNil(t, statuses[1].LastIngest)
	assert.Equal(t, "journal", statuses[1].LastIngest.ProfileKey)
}

func TestRegistry_FillsDefaultPromptsAndOverride(t *testing.T) {
	registry := NewRegistry(common.DefaultProfiles())

	general, err := registry.Resolve("general")
	require.NoError(t, err)
	assert.Equal(t, DefaultSystemPrompt, general.SystemPrompt)
	assert.Nil(t, general.Override)

	journal, err := registry.Resolve("journal")
	require.NoError(t, err)
	assert.Equal(t, JournalSystemPrompt, journal.SystemPrompt)
	require.NotNil(t, journal.Override)
	assert.Equal(t, models.TriggerAttachment, journal.Override.Trigger)
	assert.Equal(t, JournalOutput, journal.Override.Response)
}

func TestRegistry_CustomPromptPreserved(t *testing.T) {
	registry := NewRegistry([]models.SystemProfile{{
		Key:          "custom",
		DisplayName:  "Custom Assistant",
		SystemPrompt: "You answer briefly.",
		CorpusMode:   models.CorpusEphemeral,
		ChunkSize:    256,
		ChunkOverlap: 25,
		TopK:         3,
	}})

	profile, err := registry.Resolve("custom")
	require.NoError(t, err)
	assert.Equal(t, "You answer briefly.", profile.SystemPrompt)

	_, err = registry.Resolve("general")
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrInvalidRequest)
}
