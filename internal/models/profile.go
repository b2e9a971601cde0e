package models

// CorpusMode determines where a profile's corpus lives
type CorpusMode string

const (
	// CorpusPersistent queries a pre-populated vector store collection that
	// lives for the process lifetime
	CorpusPersistent CorpusMode = "persistent"
	// CorpusEphemeral builds an in-memory index per uploaded document; each
	// upload replaces the previous index for the profile
	CorpusEphemeral CorpusMode = "ephemeral"
)

// Valid reports whether the mode is one of the two known values
func (m CorpusMode) Valid() bool {
	return m == CorpusPersistent || m == CorpusEphemeral
}

// OverrideTrigger names the condition under which a canned response replaces
// live generation for a profile
type OverrideTrigger string

const (
	// TriggerAttachment fires when the request carries parsed attachment
	// content
	TriggerAttachment OverrideTrigger = "attachment"
)

// ResponseOverride configures a fixed canned answer for a profile. When the
// trigger condition holds, the router returns Response verbatim with an empty
// source list and skips generation entirely.
type ResponseOverride struct {
	Trigger  OverrideTrigger `toml:"trigger" json:"trigger"`
	Response string          `toml:"response" json:"response"`
}

// SystemProfile describes one independently configured RAG system. Profiles
// are immutable after registration; the registry is populated once at startup.
type SystemProfile struct {
	Key          string            `toml:"key" json:"key" validate:"required"`
	DisplayName  string            `toml:"display_name" json:"display_name"`
	SystemPrompt string            `toml:"system_prompt" json:"-"`
	CorpusMode   CorpusMode        `toml:"corpus_mode" json:"corpus_mode" validate:"required"`
	ChunkSize    int               `toml:"chunk_size" json:"chunk_size" validate:"gt=0"`
	ChunkOverlap int               `toml:"chunk_overlap" json:"chunk_overlap" validate:"gte=0"`
	TopK         int               `toml:"top_k" json:"top_k" validate:"gt=0"`
	Collection   string            `toml:"collection" json:"collection,omitempty"`
	Override     *ResponseOverride `toml:"response_override" json:"response_override,omitempty"`
}
