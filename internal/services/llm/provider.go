package llm

import (
	"fmt"
	"strings"
	"time"

	"github.com/rcastellano/ava/internal/common"
	"github.com/rcastellano/ava/internal/interfaces"
	"github.com/ternarybob/arbor"
	"golang.org/x/time/rate"
)

// NewLLMService creates the configured provider implementation. Answers are
// generated in a single attempt; a failed call surfaces immediately so the
// caller can return retrieved sources alongside the error.
func NewLLMService(cfg *common.Config, logger arbor.ILogger) (interfaces.LLMService, error) {
	provider := cfg.LLM.DefaultProvider
	if provider == "" {
		provider = common.LLMProviderOpenAI
	}

	logger.Info().Str("provider", string(provider)).Msg("Initializing LLM service")

	switch provider {
	case common.LLMProviderOpenAI:
		return NewOpenAIService(&cfg.OpenAI, logger)
	case common.LLMProviderClaude:
		return NewClaudeService(&cfg.Claude, logger)
	case common.LLMProviderGemini:
		return NewGeminiService(&cfg.Gemini, logger)
	default:
		return nil, fmt.Errorf("unsupported LLM provider '%s': must be 'openai', 'claude', or 'gemini'", provider)
	}
}

// DetectProvider infers the provider from a model name prefix. Unknown
// prefixes fall through to OpenAI.
func DetectProvider(model string) common.LLMProvider {
	switch {
	case strings.HasPrefix(model, "claude-"):
		return common.LLMProviderClaude
	case strings.HasPrefix(model, "gemini-"):
		return common.LLMProviderGemini
	default:
		return common.LLMProviderOpenAI
	}
}

// newRateLimiter builds a limiter enforcing the configured minimum interval
// between provider calls. An empty interval disables throttling.
func newRateLimiter(interval string) (*rate.Limiter, error) {
	if interval == "" {
		return rate.NewLimiter(rate.Inf, 1), nil
	}
	d, err := time.ParseDuration(interval)
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit interval '%s': %w", interval, err)
	}
	if d <= 0 {
		return rate.NewLimiter(rate.Inf, 1), nil
	}
	return rate.NewLimiter(rate.Every(d), 1), nil
}
