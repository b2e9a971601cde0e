package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/rcastellano/ava/internal/common"
	"github.com/rcastellano/ava/internal/interfaces"
	"github.com/ternarybob/arbor"
	"golang.org/x/time/rate"
)

// OpenAIService implements the LLMService interface using the OpenAI
// chat completions API.
type OpenAIService struct {
	config  *common.OpenAIConfig
	logger  arbor.ILogger
	client  openai.Client
	limiter *rate.Limiter
}

// NewOpenAIService creates a new OpenAI LLM service instance.
func NewOpenAIService(openAIConfig *common.OpenAIConfig, logger arbor.ILogger) (*OpenAIService, error) {
	if openAIConfig.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required (set via OPENAI_API_KEY, AVA_OPENAI_API_KEY, or openai.api_key in config)")
	}

	if openAIConfig.Model == "" {
		openAIConfig.Model = "gpt-4o"
	}

	limiter, err := newRateLimiter(openAIConfig.RateLimit)
	if err != nil {
		return nil, err
	}

	service := &OpenAIService{
		config:  openAIConfig,
		logger:  logger,
		client:  openai.NewClient(option.WithAPIKey(openAIConfig.APIKey)),
		limiter: limiter,
	}

	logger.Debug().
		Str("model", openAIConfig.Model).
		Int("max_tokens", openAIConfig.MaxTokens).
		Float32("temperature", openAIConfig.Temperature).
		Msg("OpenAI LLM service initialized")

	return service, nil
}

// Generate produces a completion for the request in a single attempt.
func (s *OpenAIService) Generate(ctx context.Context, req *interfaces.GenerationRequest) (string, error) {
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

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages)+1)
	if req.SystemPrompt != "" {
		messages = append(messages, openai.SystemMessage(req.SystemPrompt))
	}
	for _, msg := range req.Messages {
		switch msg.Role {
		case "assistant":
			messages = append(messages, openai.AssistantMessage(msg.Content))
		default:
			messages = append(messages, openai.UserMessage(msg.Content))
		}
	}

	startTime := time.Now()

	resp, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:               openai.ChatModel(model),
		Messages:            messages,
		MaxCompletionTokens: openai.Int(int64(maxTokens)),
		Temperature:         openai.Float(float64(req.Temperature)),
	})
	if err != nil {
		return "", fmt.Errorf("OpenAI API call failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response generated from OpenAI API")
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("OpenAI API returned empty completion")
	}

	s.logger.Debug().
		Str("model", model).
		Int("message_count", len(req.Messages)).
		Int("response_length", len(text)).
		Dur("duration", time.Since(startTime)).
		Msg("OpenAI chat completion completed")

	return text, nil
}

// ModelName returns the default chat model.
func (s *OpenAIService) ModelName() string {
	return s.config.Model
}

// Close releases resources held by the service.
func (s *OpenAIService) Close() error {
	// The OpenAI client does not require explicit cleanup
	return nil
}
