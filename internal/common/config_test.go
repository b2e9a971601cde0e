package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcastellano/ava/internal/models"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ava.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewDefaultConfig(t *testing.T) {
	config := NewDefaultConfig()

	assert.Equal(t, 8000, config.Server.Port)
	assert.Equal(t, "localhost", config.Server.Host)
	assert.Equal(t, []string{"http://localhost:5173"}, config.Server.AllowedOrigins)
	assert.Equal(t, "gpt-4o", config.OpenAI.Model)
	assert.Equal(t, 1024, config.OpenAI.MaxTokens)
	assert.Equal(t, 1024, config.Claude.MaxTokens)
	assert.Equal(t, 1024, config.Gemini.MaxTokens)
	assert.Equal(t, float32(0), config.OpenAI.Temperature)
	assert.Equal(t, "text-embedding-3-small", config.Embedding.Model)
	assert.Equal(t, 1536, config.Embedding.Dimension)
	assert.Equal(t, LLMProviderOpenAI, config.LLM.DefaultProvider)
	require.Len(t, config.Profiles, 2)
	assert.Equal(t, "general", config.Profiles[0].Key)
	assert.Equal(t, models.CorpusPersistent, config.Profiles[0].CorpusMode)
	assert.Equal(t, "journal", config.Profiles[1].Key)
	assert.Equal(t, models.CorpusEphemeral, config.Profiles[1].CorpusMode)
	require.NotNil(t, config.Profiles[1].Override)
	assert.Equal(t, models.TriggerAttachment, config.Profiles[1].Override.Trigger)
}

func TestLoadFromFiles_NoFiles(t *testing.T) {
	config, err := LoadFromFiles()
	require.NoError(t, err)
	assert.Equal(t, 8000, config.Server.Port)
	assert.Len(t, config.Profiles, 2)
}

func TestLoadFromFiles_FileOverridesDefaults(t *testing.T) {
	path := writeConfigFile(t, `
[server]
port = 9100

[llm]
default_provider = "claude"
`)

	config, err := LoadFromFiles(path)
	require.NoError(t, err)

	assert.Equal(t, 9100, config.Server.Port)
	assert.Equal(t, LLMProviderClaude, config.LLM.DefaultProvider)
	// Untouched sections keep their defaults
	assert.Equal(t, "localhost", config.Server.Host)
	assert.Len(t, config.Profiles, 2)
}

func TestLoadFromFiles_ProfilesReplaceDefaults(t *testing.T) {
	path := writeConfigFile(t, `
[[profiles]]
key = "manuals"
display_name = "Manual Assistant"
corpus_mode = "persistent"
chunk_size = 256
chunk_overlap = 25
top_k = 3
collection = "manuals"
`)

	config, err := LoadFromFiles(path)
	require.NoError(t, err)

	require.Len(t, config.Profiles, 1)
	assert.Equal(t, "manuals", config.Profiles[0].Key)
	assert.Equal(t, 256, config.Profiles[0].ChunkSize)
}

func TestLoadFromFiles_LaterFileWins(t *testing.T) {
	first := writeConfigFile(t, "[server]\nport = 9100\n")
	second := writeConfigFile(t, "[server]\nport = 9200\n")

	config, err := LoadFromFiles(first, second)
	require.NoError(t, err)
	assert.Equal(t, 9200, config.Server.Port)
}

func TestLoadFromFiles_MissingFile(t *testing.T) {
	_, err := LoadFromFiles("/nonexistent/ava.toml")
	assert.Error(t, err)
}

func TestLoadFromFiles_InvalidTOML(t *testing.T) {
	path := writeConfigFile(t, "[server\nport = oops")
	_, err := LoadFromFiles(path)
	assert.Error(t, err)
}

func TestValidate_RejectsBadProfiles(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no profiles", func(c *Config) { c.Profiles = nil }},
		{"invalid corpus mode", func(c *Config) { c.Profiles[0].CorpusMode = "federated" }},
		{"missing key", func(c *Config) { c.Profiles[0].Key = "" }},
		{"zero chunk size", func(c *Config) { c.Profiles[0].ChunkSize = 0 }},
		{"overlap >= chunk size", func(c *Config) { c.Profiles[0].ChunkOverlap = c.Profiles[0].ChunkSize }},
		{"negative overlap", func(c *Config) { c.Profiles[0].ChunkOverlap = -1 }},
		{"zero top_k", func(c *Config) { c.Profiles[0].TopK = 0 }},
		{"duplicate keys", func(c *Config) { c.Profiles[1].Key = c.Profiles[0].Key }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := NewDefaultConfig()
			tt.mutate(config)
			assert.Error(t, config.Validate())
		})
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("AVA_SERVER_PORT", "9300")
	t.Setenv("AVA_LLM_DEFAULT_PROVIDER", "gemini")
	t.Setenv("AVA_ALLOWED_ORIGINS", "http://localhost:3000, http://localhost:5173")

	config := NewDefaultConfig()
	applyEnvOverrides(config)

	assert.Equal(t, 9300, config.Server.Port)
	assert.Equal(t, LLMProviderGemini, config.LLM.DefaultProvider)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, config.Server.AllowedOrigins)
}

func TestApplyFlagOverrides(t *testing.T) {
	config := NewDefaultConfig()

	ApplyFlagOverrides(config, 9400, "0.0.0.0")
	assert.Equal(t, 9400, config.Server.Port)
	assert.Equal(t, "0.0.0.0", config.Server.Host)

	// Zero values leave config untouched
	ApplyFlagOverrides(config, 0, "")
	assert.Equal(t, 9400, config.Server.Port)
	assert.Equal(t, "0.0.0.0", config.Server.Host)
}

func TestIsProduction(t *testing.T) {
	config := NewDefaultConfig()
	assert.False(t, config.IsProduction())

	config.Environment = "production"
	assert.True(t, config.IsProduction())

	config.Environment = " Prod "
	assert.True(t, config.IsProduction())
}
