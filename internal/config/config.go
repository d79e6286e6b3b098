// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// APIKeyEnv is the environment variable consulted when no API key is configured
const APIKeyEnv = "GEMINI_API_KEY"

// Config represents the extraction configuration that can be loaded from a JSON file.
// All fields are optional; missing values use Defaults.
type Config struct {
	// Validation thresholds
	MinWords               int     `json:"min_words,omitempty" validate:"gte=0"`                      // Fatal below this word count
	MaxTripleNewlines      int     `json:"max_triple_newlines,omitempty" validate:"gte=0"`            // Artifact warning above this count
	LowConfidenceThreshold float64 `json:"low_confidence_threshold,omitempty" validate:"gte=0,lte=1"` // Section confidence warning threshold

	// Engine
	CacheSize     int `json:"cache_size,omitempty" validate:"gte=0"`       // Entries per extraction cache
	MaxFileSizeMB int `json:"max_file_size_mb,omitempty" validate:"gte=0"` // Input document size limit

	// Role fallback
	LLMFallback bool   `json:"llm_fallback,omitempty"`                                                 // Ask the model when no role pattern matches
	APIKey      string `json:"api_key,omitempty"`                                                      // Gemini API key
	ModelTier   string `json:"model_tier,omitempty" validate:"omitempty,oneof=lite standard advanced"` // Model tier for the fallback

	// Logging
	LogJSON bool `json:"log_json,omitempty"` // JSON log encoding
	Debug   bool `json:"debug,omitempty"`    // Debug log level
}

// Defaults returns the configuration used when nothing is specified
func Defaults() Config {
	return Config{
		MinWords:               50,
		MaxTripleNewlines:      5,
		LowConfidenceThreshold: 0.6,
		CacheSize:              100,
		MaxFileSizeMB:          5,
		ModelTier:              "lite",
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if c.LLMFallback && c.ResolveAPIKey() == "" {
		return fmt.Errorf("config error: 'llm_fallback' requires 'api_key' or %s", APIKeyEnv)
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from defaults
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.MinWords == 0 {
		result.MinWords = defaults.MinWords
	}
	if result.MaxTripleNewlines == 0 {
		result.MaxTripleNewlines = defaults.MaxTripleNewlines
	}
	if result.LowConfidenceThreshold == 0 {
		result.LowConfidenceThreshold = defaults.LowConfidenceThreshold
	}
	if result.CacheSize == 0 {
		result.CacheSize = defaults.CacheSize
	}
	if result.MaxFileSizeMB == 0 {
		result.MaxFileSizeMB = defaults.MaxFileSizeMB
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.ModelTier == "" {
		result.ModelTier = defaults.ModelTier
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// ResolveAPIKey returns the configured API key, falling back to the environment
func (c *Config) ResolveAPIKey() string {
	if c.APIKey != "" {
		return c.APIKey
	}
	return os.Getenv(APIKeyEnv)
}

// MaxFileBytes converts MaxFileSizeMB to bytes
func (c *Config) MaxFileBytes() int64 {
	return int64(c.MaxFileSizeMB) << 20
}
