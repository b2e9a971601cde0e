package interfaces

import "context"

// Message represents a single message in an LLM conversation
type Message struct {
	Role    string `json:"role"` // "system", "user", or "assistant"
	Content string `json:"content"`
}

// GenerationRequest is a provider-agnostic text generation request
type GenerationRequest struct {
	SystemPrompt string
	Messages     []Message
	Model        string
	Temperature  float32
	MaxTokens    int
}

// LLMService generates text completions. Implementations do not retry;
// transient provider failures surface to the caller unmodified.
type LLMService interface {
	// Generate runs one completion and returns the raw response text
	Generate(ctx context.Context, req *GenerationRequest) (string, error)

	// ModelName returns the default model identifier
	ModelName() string

	// Close releases provider clients
	Close() error
}
