package interfaces

import (
	"context"

	"github.com/rcastellano/ava/internal/models"
)

// AskRequest is one question routed to a RAG system
type AskRequest struct {
	SystemType string                    `json:"system_type" validate:"required"`
	Question   string                    `json:"question" validate:"required"`
	History    []models.ConversationTurn `json:"history,omitempty"`

	// Attachment holds pre-parsed document segments accompanying the
	// request, if any. Presence can trigger a profile's response override.
	Attachment []string `json:"pdf_content,omitempty"`
}

// AskResponse carries the answer plus the passage texts it drew from
type AskResponse struct {
	Answer  string   `json:"response"`
	Sources []string `json:"sources"`
}

// IngestResult reports a completed ingest
type IngestResult struct {
	ChunkCount int `json:"chunk_count"`
	Segments   int `json:"segments"`
}

// ProfileInfo is the public listing entry for one registered profile
type ProfileInfo struct {
	Key         string `json:"key"`
	DisplayName string `json:"display_name"`
}

// RagService routes questions and documents to per-profile engines
type RagService interface {
	// Ask validates the system type, applies any configured response
	// override, and otherwise delegates to the profile's engine
	Ask(ctx context.Context, req *AskRequest) (*AskResponse, error)

	// Ingest parses raw document bytes and builds the profile's ephemeral
	// index. Only valid for ephemeral profiles.
	Ingest(ctx context.Context, systemType, name string, data []byte) (*IngestResult, error)

	// RetrieveOnly returns passage texts for a question without generation
	RetrieveOnly(ctx context.Context, systemType, question string, k int) ([]string, error)

	// ListProfiles returns registered profiles in registration order
	ListProfiles() []ProfileInfo

	// Status reports per-profile readiness
	Status(ctx context.Context) []ProfileStatus
}

// ProfileStatus is the readiness report for one profile
type ProfileStatus struct {
	Key        string               `json:"key"`
	CorpusMode models.CorpusMode    `json:"corpus_mode"`
	Ready      bool                 `json:"ready"`
	LastIngest *models.IngestStatus `json:"last_ingest,omitempty"`
}
