package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rcastellano/ava/internal/common"
	"github.com/rcastellano/ava/internal/interfaces"
	"github.com/ternarybob/arbor"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// GeminiService implements the LLMService interface using the Google
// Gemini API.
type GeminiService struct {
	config  *common.GeminiConfig
	logger  arbor.ILogger
	client  *genai.Client
	limiter *rate.Limiter
}

// NewGeminiService creates a new Gemini LLM service instance.
func NewGeminiService(geminiConfig *common.GeminiConfig, logger arbor.ILogger) (*GeminiService, error) {
	if geminiConfig.APIKey == "" {
		return nil, fmt.Errorf("Google API key is required (set via AVA_GEMINI_API_KEY or gemini.api_key in config)")
	}

	if geminiConfig.Model == "" {
		geminiConfig.Model = "gemini-2.0-flash"
	}

	limiter, err := newRateLimiter(geminiConfig.RateLimit)
	if err != nil {
		return nil, err
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  geminiConfig.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize genai client: %w", err)
	}

	service := &GeminiService{
		config:  geminiConfig,
		logger:  logger,
		client:  client,
		limiter: limiter,
	}

	logger.Debug().
		Str("model", geminiConfig.Model).
		Msg("Gemini LLM service initialized")

	return service, nil
}

// Generate produces a completion for the request in a single attempt.
func (s *GeminiService) Generate(ctx context.Context, req *interfaces.GenerationRequest) (string, error) {
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

	contents := make([]*genai.Content, 0, len(req.Messages))
	for _, msg := range req.Messages {
		role := genai.RoleUser
		if msg.Role == "assistant" {
			role = genai.RoleModel
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{genai.NewPartFromText(msg.Content)},
		})
	}

	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = s.config.MaxTokens
	}

	genConfig := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(req.Temperature),
	}
	if maxTokens > 0 {
		genConfig.MaxOutputTokens = int32(maxTokens)
	}
	if req.SystemPrompt != "" {
		genConfig.SystemInstruction = genai.NewContentFromText(req.SystemPrompt, genai.RoleUser)
	}

	startTime := time.Now()

	resp, err := s.client.Models.GenerateContent(ctx, model, contents, genConfig)
	if err != nil {
		return "", fmt.Errorf("Gemini API call failed: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("no response generated from Gemini API")
	}

	s.logger.Debug().
		Str("model", model).
		Int("message_count", len(req.Messages)).
		Int("response_length", len(text)).
		Dur("duration", time.Since(startTime)).
		Msg("Gemini chat completion completed")

	return text, nil
}

// ModelName returns the default chat model.
func (s *GeminiService) ModelName() string {
	return s.config.Model
}

// Close releases resources held by the service.
func (s *GeminiService) Close() error {
	// The genai client does not require explicit cleanup
	return nil
}
