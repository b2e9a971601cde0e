package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"

	"github.com/rcastellano/ava/internal/models"
)

// Config represents the application configuration
type Config struct {
	Environment string                `toml:"environment"` // "development" or "production"
	Server      ServerConfig          `toml:"server"`
	Logging     LoggingConfig         `toml:"logging"`
	Storage     StorageConfig         `toml:"storage"`
	Qdrant      QdrantConfig          `toml:"qdrant"`
	OpenAI      OpenAIConfig          `toml:"openai"`
	Claude      ClaudeConfig          `toml:"claude"`
	Gemini      GeminiConfig          `toml:"gemini"`
	LLM         LLMConfig             `toml:"llm"`
	Embedding   EmbeddingConfig       `toml:"embedding"`
	Profiles    []models.SystemProfile `toml:"profiles"`
}

type ServerConfig struct {
	Port           int      `toml:"port"`
	Host           string   `toml:"host"`
	AllowedOrigins []string `toml:"allowed_origins"` // CORS allowlist
}

type LoggingConfig struct {
	Level  string   `toml:"level"`  // "debug", "info", "warn", "error"
	Output []string `toml:"output"` // "stdout", "file"
}

type StorageConfig struct {
	Badger BadgerConfig `toml:"badger"`
}

// BadgerConfig represents BadgerDB-specific configuration
type BadgerConfig struct {
	Path           string `toml:"path"`
	ResetOnStartup bool   `toml:"reset_on_startup"`
}

// QdrantConfig identifies the persistent vector store
type QdrantConfig struct {
	Host           string `toml:"host"`
	Port           int    `toml:"port"` // gRPC port
	CollectionBase string `toml:"collection_base"` // per-profile collections derive from this
}

// OpenAIConfig contains OpenAI API configuration for generation and embeddings
type OpenAIConfig struct {
	APIKey      string  `toml:"api_key"`
	Model       string  `toml:"model"`       // default "gpt-4o"
	MaxTokens   int     `toml:"max_tokens"`  // response ceiling (default 1024)
	Temperature float32 `toml:"temperature"` // default 0 for reproducible answers
	RateLimit   string  `toml:"rate_limit"`  // minimum interval between calls, e.g. "1s"
}

// ClaudeConfig contains Anthropic Claude API configuration
type ClaudeConfig struct {
	APIKey    string `toml:"api_key"`
	Model     string `toml:"model"`
	MaxTokens int    `toml:"max_tokens"`
	RateLimit string `toml:"rate_limit"`
}

// GeminiConfig contains Google Gemini API configuration
type GeminiConfig struct {
	APIKey    string `toml:"api_key"`
	Model     string `toml:"model"`
	MaxTokens int    `toml:"max_tokens"`
	RateLimit string `toml:"rate_limit"`
}

// LLMProvider represents the AI provider type
type LLMProvider string

const (
	LLMProviderOpenAI LLMProvider = "openai"
	LLMProviderClaude LLMProvider = "claude"
	LLMProviderGemini LLMProvider = "gemini"
)

// LLMConfig selects the default generation provider
type LLMConfig struct {
	DefaultProvider LLMProvider `toml:"default_provider"`
}

// EmbeddingConfig selects the embedding model. Indexing and querying within a
// profile must use the same model and dimension.
type EmbeddingConfig struct {
	Model     string `toml:"model"`     // default "text-embedding-3-small"
	Dimension int    `toml:"dimension"` // default 1536
}

// NewDefaultConfig creates a configuration with default values, including the
// two built-in profiles. Config files may override or extend the profile list.
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Port:           8000,
			Host:           "localhost",
			AllowedOrigins: []string{"http://localhost:5173"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Output: []string{"stdout", "file"},
		},
		Storage: StorageConfig{
			Badger: BadgerConfig{
				Path: "./data",
			},
		},
		Qdrant: QdrantConfig{
			Host:           "localhost",
			Port:           6334,
			CollectionBase: "ava_documents",
		},
		OpenAI: OpenAIConfig{
			Model:       "gpt-4o",
			MaxTokens:   1024,
			Temperature: 0,
			RateLimit:   "1s",
		},
		Claude: ClaudeConfig{
			Model:     "claude-haiku-3-5-20241022",
			MaxTokens: 1024,
			RateLimit: "1s",
		},
		Gemini: GeminiConfig{
			Model:     "gemini-3-flash-preview",
			MaxTokens: 1024,
			RateLimit: "4s",
		},
		LLM: LLMConfig{
			DefaultProvider: LLMProviderOpenAI,
		},
		Embedding: EmbeddingConfig{
			Model:     "text-embedding-3-small",
			Dimension: 1536,
		},
		Profiles: DefaultProfiles(),
	}
}

// DefaultProfiles returns the built-in system profiles. Prompts are filled in
// by the registry at construction when left empty here.
func DefaultProfiles() []models.SystemProfile {
	return []models.SystemProfile{
		{
			Key:          "general",
			DisplayName:  "Bill Aging Assistant",
			CorpusMode:   models.CorpusPersistent,
			ChunkSize:    512,
			ChunkOverlap: 50,
			TopK:         5,
			Collection:   "general",
		},
		{
			Key:          "journal",
			DisplayName:  "Transcription Assistant",
			CorpusMode:   models.CorpusEphemeral,
			ChunkSize:    512,
			ChunkOverlap: 50,
			TopK:         5,
			Override: &models.ResponseOverride{
				Trigger: models.TriggerAttachment,
			},
		},
	}
}

// LoadFromFiles loads configuration from multiple files with priority:
// defaults -> file1 -> file2 -> ... -> env. Later files override earlier
// ones; environment variables override all files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		// Profiles in a file replace the defaults rather than appending to
		// them; TOML array tables would otherwise double up
		staged := *config
		staged.Profiles = nil
		if err := toml.Unmarshal(data, &staged); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
		if staged.Profiles == nil {
			staged.Profiles = config.Profiles
		}
		*config = staged
	}

	applyEnvOverrides(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks profile configuration for construction-time errors
func (c *Config) Validate() error {
	if len(c.Profiles) == 0 {
		return fmt.Errorf("at least one profile must be configured")
	}

	v := validator.New()
	seen := make(map[string]bool, len(c.Profiles))
	for i := range c.Profiles {
		p := &c.Profiles[i]
		if !p.CorpusMode.Valid() {
			return fmt.Errorf("profile %q: invalid corpus_mode %q", p.Key, p.CorpusMode)
		}
		if err := v.Struct(p); err != nil {
			return fmt.Errorf("profile %q: %w", p.Key, err)
		}
		if p.ChunkOverlap >= p.ChunkSize {
			return fmt.Errorf("profile %q: chunk_overlap %d must be less than chunk_size %d: %w",
				p.Key, p.ChunkOverlap, p.ChunkSize, models.ErrInvalidInput)
		}
		if seen[p.Key] {
			return fmt.Errorf("duplicate profile key %q", p.Key)
		}
		seen[p.Key] = true
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("AVA_ENV"); env != "" {
		config.Environment = env
	} else if env := os.Getenv("GO_ENV"); env != "" {
		config.Environment = env
	}

	// Server configuration
	if port := os.Getenv("AVA_SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if host := os.Getenv("AVA_SERVER_HOST"); host != "" {
		config.Server.Host = host
	}
	if origins := os.Getenv("AVA_ALLOWED_ORIGINS"); origins != "" {
		parsed := []string{}
		for _, o := range strings.Split(origins, ",") {
			if trimmed := strings.TrimSpace(o); trimmed != "" {
				parsed = append(parsed, trimmed)
			}
		}
		if len(parsed) > 0 {
			config.Server.AllowedOrigins = parsed
		}
	}

	// Logging configuration
	if level := os.Getenv("AVA_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if output := os.Getenv("AVA_LOG_OUTPUT"); output != "" {
		outputs := []string{}
		for _, o := range strings.Split(output, ",") {
			if trimmed := strings.TrimSpace(o); trimmed != "" {
				outputs = append(outputs, trimmed)
			}
		}
		if len(outputs) > 0 {
			config.Logging.Output = outputs
		}
	}

	// Storage configuration
	if badgerPath := os.Getenv("AVA_BADGER_PATH"); badgerPath != "" {
		config.Storage.Badger.Path = badgerPath
	}

	// Qdrant configuration
	if host := os.Getenv("AVA_QDRANT_HOST"); host != "" {
		config.Qdrant.Host = host
	}
	if port := os.Getenv("AVA_QDRANT_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Qdrant.Port = p
		}
	}
	if base := os.Getenv("AVA_QDRANT_COLLECTION_BASE"); base != "" {
		config.Qdrant.CollectionBase = base
	}

	// OpenAI configuration (standard env var name accepted as fallback)
	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		config.OpenAI.APIKey = apiKey
	}
	if apiKey := os.Getenv("AVA_OPENAI_API_KEY"); apiKey != "" {
		config.OpenAI.APIKey = apiKey
	}
	if model := os.Getenv("AVA_OPENAI_MODEL"); model != "" {
		config.OpenAI.Model = model
	}
	if maxTokens := os.Getenv("AVA_OPENAI_MAX_TOKENS"); maxTokens != "" {
		if mt, err := strconv.Atoi(maxTokens); err == nil {
			config.OpenAI.MaxTokens = mt
		}
	}

	// Claude configuration
	if apiKey := os.Getenv("ANTHROPIC_API_KEY"); apiKey != "" {
		config.Claude.APIKey = apiKey
	}
	if apiKey := os.Getenv("AVA_CLAUDE_API_KEY"); apiKey != "" {
		config.Claude.APIKey = apiKey
	}
	if model := os.Getenv("AVA_CLAUDE_MODEL"); model != "" {
		config.Claude.Model = model
	}

	// Gemini configuration
	if apiKey := os.Getenv("AVA_GEMINI_API_KEY"); apiKey != "" {
		config.Gemini.APIKey = apiKey
	}
	if model := os.Getenv("AVA_GEMINI_MODEL"); model != "" {
		config.Gemini.Model = model
	}
	if maxTokens := os.Getenv("AVA_GEMINI_MAX_TOKENS"); maxTokens != "" {
		if mt, err := strconv.Atoi(maxTokens); err == nil {
			config.Gemini.MaxTokens = mt
		}
	}

	// LLM provider configuration
	if provider := os.Getenv("AVA_LLM_DEFAULT_PROVIDER"); provider != "" {
		config.LLM.DefaultProvider = LLMProvider(provider)
	}

	// Embedding configuration
	if model := os.Getenv("AVA_EMBEDDING_MODEL"); model != "" {
		config.Embedding.Model = model
	}
	if dim := os.Getenv("AVA_EMBEDDING_DIMENSION"); dim != "" {
		if d, err := strconv.Atoi(dim); err == nil {
			config.Embedding.Dimension = d
		}
	}
}

// ApplyFlagOverrides applies command-line flag overrides to config
func ApplyFlagOverrides(config *Config, port int, host string) {
	if port > 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}
