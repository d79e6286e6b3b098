package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-extractor/internal/observability"
	"github.com/jonathan/resume-extractor/internal/pipeline"
)

var extractCmd = &cobra.Command{
	Use:   "extract FILE [FILE...]",
	Short: "Extract structured data from resume documents",
	Long: "Extract sections, skills, education, work history and the current role from one or more resumes. " +
		"One file produces a single JSON result; several produce an array of batch items. " +
		"Use - to read text from stdin. Invalid documents still produce JSON with is_valid=false.",
	Args: cobra.MinimumNArgs(1),
	RunE: runExtract,
}

var (
	extractOut         string
	extractConcurrency int
	extractFallback    bool
)

func init() {
	extractCmd.Flags().StringVarP(&extractOut, "out", "o", "", "Output file (default stdout)")
	extractCmd.Flags().IntVar(&extractConcurrency, "concurrency", pipeline.DefaultConcurrency, "Documents processed in parallel")
	extractCmd.Flags().BoolVar(&extractFallback, "fallback", false, "Ask the language model for the role when no pattern matches")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	docs := make([]pipeline.BatchDocument, 0, len(args))
	for _, path := range args {
		doc, err := readInput(cmd.InOrStdin(), path, cfg.MaxFileBytes())
		if err != nil {
			return err
		}
		logger.Debug("document read",
			zap.String("path", path),
			zap.String("format", string(doc.Format)),
			zap.Int("pages", doc.Metadata.Pages),
			zap.String("hash", doc.Metadata.Hash))
		docs = append(docs, pipeline.BatchDocument{Source: path, Text: doc.Text})
	}

	opts := pipeline.OptionsFromConfig(cfg)
	opts.Logger = logger
	if extractFallback || cfg.LLMFallback {
		gen, closeGen, err := newGenerator(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer closeGen()
		opts.Generator = gen
	}
	engine := pipeline.NewEngine(opts)

	items := engine.ProcessBatch(cmd.Context(), docs, extractConcurrency)
	for _, item := range items {
		if item.Result == nil {
			return fmt.Errorf("%s: %s", item.Source, item.Error)
		}
	}

	if verbose {
		printer := observability.NewPrinter(cmd.ErrOrStderr())
		for _, item := range items {
			printer.PrintExtractionResult(item.Source, item.Result)
		}
	}

	var payload any = items
	if len(items) == 1 {
		payload = items[0].Result
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	return writeOutput(cmd.OutOrStdout(), extractOut, append(data, '\n'))
}
