package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/jonathan/resume-extractor/internal/config"
	"github.com/jonathan/resume-extractor/internal/ingestion"
	"github.com/jonathan/resume-extractor/internal/llm"
	"github.com/jonathan/resume-extractor/internal/logging"
)

// stdinPath reads the document from standard input
const stdinPath = "-"

// loadSettings merges the optional config file over the defaults and
// applies the global flags
func loadSettings() (config.Config, error) {
	cfg := config.Defaults()
	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = fileCfg.MergeWithDefaults(cfg)
	}
	if verbose {
		cfg.Debug = true
	}
	if logJSON {
		cfg.LogJSON = true
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	logger, err := logging.New(cfg.LogJSON, cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return logger, nil
}

// newGenerator connects the role fallback model. The returned close func is never nil.
func newGenerator(ctx context.Context, cfg config.Config) (llm.TextGenerator, func(), error) {
	tier, err := llm.ParseTier(cfg.ModelTier)
	if err != nil {
		return nil, func() {}, err
	}
	gen, client, err := llm.NewTextGenerator(ctx, cfg.ResolveAPIKey(), tier)
	if err != nil {
		return nil, func() {}, fmt.Errorf("failed to create text generator: %w", err)
	}
	return gen, func() { _ = client.Close() }, nil
}

// readInput reads a document from path, or standard input for "-"
func readInput(in io.Reader, path string, maxBytes int64) (*ingestion.Document, error) {
	if path != stdinPath {
		return ingestion.ReadDocument(path, maxBytes)
	}
	data, err := io.ReadAll(io.LimitReader(in, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	if int64(len(data)) > maxBytes {
		return nil, &ingestion.SizeLimitError{Path: stdinPath, Size: int64(len(data)), MaxBytes: maxBytes}
	}
	return ingestion.FromText(string(data)), nil
}

// writeOutput writes data to path, or to w when path is empty
func writeOutput(w io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := w.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
