package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/rcastellano/ava/internal/common"
	"github.com/rcastellano/ava/internal/interfaces"
	"github.com/ternarybob/arbor"
	"golang.org/x/time/rate"
)

// ClaudeService implements the LLMService interface using the Anthropic
// messages API.
type ClaudeService struct {
	config  *common.ClaudeConfig
	logger  arbor.ILogger
	client  anthropic.Client
	limiter *rate.Limiter
}

// NewClaudeService creates a new Claude LLM service instance.
func NewClaudeService(claudeConfig *common.ClaudeConfig, logger arbor.ILogger) (*ClaudeService, error) {
	if claudeConfig.APIKey == "" {
		return nil, fmt.Errorf("Anthropic API key is required (set via ANTHROPIC_API_KEY, AVA_CLAUDE_API_KEY, or claude.api_key in config)")
	}

	if claudeConfig.Model == "" {
		claudeConfig.Model = "claude-haiku-3-5-20241022"
	}

	limiter, err := newRateLimiter(claudeConfig.RateLimit)
	if err != nil {
		return nil, err
	}

	service := &ClaudeService{
		config:  claudeConfig,
		logger:  logger,
		client:  anthropic.NewClient(option.WithAPIKey(claudeConfig.APIKey)),
		limiter: limiter,
	}

	logger.Debug().
		Str("model", claudeConfig.Model).
		Int("max_tokens", claudeConfig.MaxTokens).
		Msg("Claude LLM service initialized")

	return service, nil
}

// Generate produces a completion for the request in a single attempt.
func (s *ClaudeService) Generate(ctx context.Context, req *interfaces.GenerationRequest) (string, error) {
	if len(req.Messages) == 0 {
		return "", fmt.Errorf("messages cannot be empty for chat completion")
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter wait cancelled: %w", err)
	}

	model := req.Model
	if model == "" {
		model = s.config.Model
	}
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = s.config.MaxTokens
	}

	claudeMessages := make([]anthropic.MessageParam, 0, len(req.Messages))
	for _, msg := range req.Messages {
		switch msg.Role {
		case "assistant":
			claudeMessages = append(claudeMessages, anthropic.NewAssistantMessage(
				anthropic.NewTextBlock(msg.Content),
			))
		default:
			claudeMessages = append(claudeMessages, anthropic.NewUserMessage(
				anthropic.NewTextBlock(msg.Content),
			))
		}
	}

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(model),
		MaxTokens:   int64(maxTokens),
		Messages:    claudeMessages,
		Temperature: anthropic.Float(float64(req.Temperature)),
	}
	if req.SystemPrompt != "" {
		params.System = []anthropic.TextBlockParam{
			{Text: req.SystemPrompt},
		}
	}

	startTime := time.Now()

	resp, err := s.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("Claude API call failed: %w", err)
	}

	var response strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			response.WriteString(block.Text)
		}
	}
	if response.Len() == 0 {
		return "", fmt.Errorf("no response generated from Claude API")
	}

	s.logger.Debug().
		Str("model", model).
		Int("message_count", len(req.Messages)).
		Int("response_length", response.Len()).
		Dur("duration", time.Since(startTime)).
		Msg("Claude chat completion completed")

	return response.String(), nil
}

// ModelName returns the default chat model.
func (s *ClaudeService) ModelName() string {
	return s.config.Model
}

// Close releases resources held by the service.
func (s *ClaudeService) Close() error {
	// The Claude client does not require explicit cleanup
	return nil
}
