package main

import (
	"fmt"

	"github.com/jonathan/resume-extractor/internal/config"
	"github.com/jonathan/resume-extractor/internal/extraction"
	"github.com/jonathan/resume-extractor/internal/llm"
	"github.com/jonathan/resume-extractor/internal/pipeline"
	"github.com/jonathan/resume-extractor/internal/server"
	"github.com/jonathan/resume-extractor/internal/store"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the resume extraction HTTP server",
	Long:  "Start an HTTP server exposing resume upload, listing, and skill filtering endpoints.",
	RunE:  runServe,
}

var (
	servePort    int
	serveDataDir string
)

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (default 8080, or PORT env)")
	serveCmd.Flags().StringVarP(&serveDataDir, "data-dir", "d", "", "Directory holding extracted records")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := config.Config{DataDir: serveDataDir, Port: servePort}
	cfg = cfg.MergeWithDefaults(config.FromEnv())
	if cfg.Port == 0 {
		cfg.Port = 8080
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	ctx := cmd.Context()
	client, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	recordStore := store.New(cfg.DataDir)
	runner := pipeline.New(extraction.NewExtractor(client), recordStore, nil)

	srv := server.New(server.Config{Port: cfg.Port}, runner, recordStore)
	return srv.Start()
}
