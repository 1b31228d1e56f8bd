package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-extractor/internal/config"
	"github.com/jonathan/resume-extractor/internal/extraction"
	"github.com/jonathan/resume-extractor/internal/llm"
	"github.com/jonathan/resume-extractor/internal/observability"
	"github.com/jonathan/resume-extractor/internal/pipeline"
	"github.com/jonathan/resume-extractor/internal/store"
	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract structured data from a PDF resume",
	Long:  "Run the full extraction pipeline on a PDF resume: text extraction, the contact and section validation gates, structured extraction, and persistence to the data directory.",
	RunE:  runExtract,
}

var (
	extractPDFPath string
	extractDataDir string
	extractConfig  string
	extractVerbose bool
)

func init() {
	extractCmd.Flags().StringVarP(&extractPDFPath, "pdf", "p", "", "Path to the PDF resume (required)")
	extractCmd.Flags().StringVarP(&extractDataDir, "data-dir", "d", "", "Directory for extracted records")
	extractCmd.Flags().StringVarP(&extractConfig, "config", "c", "", "Path to a JSON config file")
	extractCmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Print detailed progress and the extracted record")

	_ = extractCmd.MarkFlagRequired("pdf")

	rootCmd.AddCommand(extractCmd)
}

// loadConfig merges flag values, an optional config file, and the
// environment into one effective configuration
func loadConfig(configPath, dataDir string) (config.Config, error) {
	cfg := config.Config{DataDir: dataDir}

	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}

	cfg = cfg.MergeWithDefaults(config.FromEnv())
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runExtract(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(extractConfig, extractDataDir)
	if err != nil {
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

	printer := observability.NewPrinter(os.Stdout)

	var onProgress pipeline.ProgressCallback
	if extractVerbose || cfg.Verbose {
		onProgress = func(event pipeline.ProgressEvent) {
			fmt.Fprintf(os.Stdout, "[%s] %s\n", event.Step, event.Message)
		}
	}

	runner := pipeline.New(
		extraction.NewExtractor(client),
		store.New(cfg.DataDir),
		onProgress,
	)

	outcome, err := runner.RunFile(ctx, extractPDFPath, filepath.Base(extractPDFPath))
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	if extractVerbose || cfg.Verbose {
		printer.PrintRawTextPreview(outcome.RawText)
	}

	if !outcome.Saved() {
		fmt.Fprintf(os.Stdout, "Warning: %s\n", outcome.Message)
		return fmt.Errorf("resume was not saved (%s)", outcome.Status)
	}

	fmt.Fprintf(os.Stdout, "%s\n", outcome.Message)
	fmt.Fprintf(os.Stdout, "Saved: %s\n", filepath.Join(cfg.DataDir, outcome.Filename))

	if extractVerbose || cfg.Verbose {
		printer.PrintRecord(outcome.Record)
	}

	return nil
}
