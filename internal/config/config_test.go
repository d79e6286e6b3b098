package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"min_words": 80,
		"cache_size": 250,
		"low_confidence_threshold": 0.5,
		"llm_fallback": true,
		"api_key": "test-key",
		"model_tier": "standard",
		"debug": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 80, cfg.MinWords)
	assert.Equal(t, 250, cfg.CacheSize)
	assert.InDelta(t, 0.5, cfg.LowConfidenceThreshold, 1e-9)
	assert.True(t, cfg.LLMFallback)
	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, "standard", cfg.ModelTier)
	assert.True(t, cfg.Debug)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestValidate(t *testing.T) {
	t.Setenv(APIKeyEnv, "")

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "defaults", cfg: Defaults()},
		{name: "empty", cfg: Config{}},
		{name: "negative min words", cfg: Config{MinWords: -1}, wantErr: true},
		{name: "threshold above one", cfg: Config{LowConfidenceThreshold: 1.5}, wantErr: true},
		{name: "unknown tier", cfg: Config{ModelTier: "huge"}, wantErr: true},
		{name: "fallback without key", cfg: Config{LLMFallback: true}, wantErr: true},
		{name: "fallback with key", cfg: Config{LLMFallback: true, APIKey: "k"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_FallbackKeyFromEnv(t *testing.T) {
	t.Setenv(APIKeyEnv, "env-key")
	cfg := Config{LLMFallback: true}
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "env-key", cfg.ResolveAPIKey())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{MinWords: 20, APIKey: "mine"}
	merged := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, 20, merged.MinWords)
	assert.Equal(t, "mine", merged.APIKey)
	assert.Equal(t, 100, merged.CacheSize)
	assert.Equal(t, 5, merged.MaxTripleNewlines)
	assert.InDelta(t, 0.6, merged.LowConfidenceThreshold, 1e-9)
	assert.Equal(t, "lite", merged.ModelTier)
	assert.Equal(t, int64(5<<20), merged.MaxFileBytes())
}
