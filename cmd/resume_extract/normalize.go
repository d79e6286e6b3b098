package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-extractor/internal/ingestion"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize FILE",
	Short: "Print the normalized text of a resume document",
	Long:  "Read a resume document (or - for stdin) and print the canonical text the extractors work on.",
	Args:  cobra.ExactArgs(1),
	RunE:  runNormalize,
}

var (
	normalizeOut  string
	normalizeMeta string
)

func init() {
	normalizeCmd.Flags().StringVarP(&normalizeOut, "out", "o", "", "Output file (default stdout)")
	normalizeCmd.Flags().StringVar(&normalizeMeta, "meta", "", "Also write document metadata (hash, format, size) as JSON to this file")
	rootCmd.AddCommand(normalizeCmd)
}

func runNormalize(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	doc, err := readInput(cmd.InOrStdin(), args[0], cfg.MaxFileBytes())
	if err != nil {
		return err
	}
	if err := writeOutput(cmd.OutOrStdout(), normalizeOut, []byte(ingestion.Normalize(doc.Text)+"\n")); err != nil {
		return err
	}
	if normalizeMeta == "" {
		return nil
	}
	meta, err := doc.Metadata.ToJSON()
	if err != nil {
		return err
	}
	return writeOutput(cmd.OutOrStdout(), normalizeMeta, meta)
}
