// Package main provides the entry point for the resume extraction CLI and HTTP server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
	logJSON    bool
)

var rootCmd = &cobra.Command{
	Use:   "resume_extract",
	Short: "Resume text-to-structured-data extractor",
	Long: "resume_extract turns resume documents (text, markdown, HTML or PDF) into structured JSON: " +
		"sections, skills, education, work history, current role and a validation report.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging and human-readable summaries on stderr")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Emit logs as JSON")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
