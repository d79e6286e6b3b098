package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-extractor/internal/pipeline"
	"github.com/jonathan/resume-extractor/internal/server"
	"github.com/jonathan/resume-extractor/internal/server/ratelimit"
)

var (
	servePort     int
	serveFallback bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP extraction server",
	Long:  `Start an HTTP server exposing POST /extract and GET /health.`,
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().BoolVar(&serveFallback, "fallback", false, "Allow requests to use the language-model role fallback")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	opts := pipeline.OptionsFromConfig(cfg)
	if serveFallback || cfg.LLMFallback {
		gen, closeGen, err := newGenerator(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer closeGen()
		opts.Generator = gen
	}

	srv := server.New(server.Config{
		Port:         servePort,
		Options:      opts,
		RateLimit:    ratelimit.LoadConfig(),
		MaxBodyBytes: cfg.MaxFileBytes(),
		Logger:       logger,
	})
	return srv.Run(cmd.Context())
}
