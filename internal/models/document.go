package models

import "time"

// Document is the transient input to ingestion. It is chunked immediately and
// not retained by the core.
type Document struct {
	RawText  string `json:"raw_text"`
	SourceID string `json:"source_id"`
	Title    string `json:"title,omitempty"`
}

// Chunk is a bounded slice of a document prepared for embedding. Position is
// the 0-based order within the source document.
type Chunk struct {
	Text     string `json:"text"`
	SourceID string `json:"source_id"`
	Position int    `json:"position"`
	Title    string `json:"title,omitempty"`
}

// RetrievedPassage is one nearest-neighbor hit, produced fresh per query.
// Higher score means more relevant.
type RetrievedPassage struct {
	Text     string            `json:"text"`
	Score    float32           `json:"score"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Title returns the passage's source title from metadata, or empty.
func (p RetrievedPassage) Title() string {
	return p.Metadata["title"]
}

// ConversationTurn is one prior exchange supplied by the caller. History is
// never persisted by the core.
type ConversationTurn struct {
	Role    string `json:"role" validate:"oneof=user assistant"`
	Content string `json:"content"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Answer is the output of one query: the LLM's raw text plus the passages it
// was conditioned on. Citation markers inside Text follow the prompt contract
// and are not re-validated programmatically.
type Answer struct {
	Text    string             `json:"text"`
	Sources []RetrievedPassage `json:"sources"`
}

// SourceTexts returns just the passage texts, in retrieval rank order.
func (a *Answer) SourceTexts() []string {
	texts := make([]string, 0, len(a.Sources))
	for _, s := range a.Sources {
		texts = append(texts, s.Text)
	}
	return texts
}

// IngestStatus records the outcome of the most recent ingest for a profile.
// Persisted so /api/status can report readiness across requests.
type IngestStatus struct {
	ProfileKey string    `json:"profile_key"`
	SourceID   string    `json:"source_id"`
	ChunkCount int       `json:"chunk_count"`
	IngestedAt time.Time `json:"ingested_at"`
}
