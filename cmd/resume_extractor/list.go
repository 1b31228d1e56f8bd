package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/resume-extractor/internal/config"
	"github.com/jonathan/resume-extractor/internal/observability"
	"github.com/jonathan/resume-extractor/internal/store"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List extracted resumes, optionally filtered by skill",
	Long:  "Load every stored resume record from the data directory and print a summary. With --skills, only resumes containing every named skill are shown.",
	RunE:  runList,
}

var (
	listSkills  string
	listDataDir string
)

func init() {
	listCmd.Flags().StringVarP(&listSkills, "skills", "s", "", "Comma-separated skills a resume must contain (e.g. go,sql)")
	listCmd.Flags().StringVarP(&listDataDir, "data-dir", "d", "", "Directory holding extracted records")

	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	cfg := config.Config{DataDir: listDataDir}
	cfg = cfg.MergeWithDefaults(config.FromEnv())

	recordStore := store.New(cfg.DataDir)
	records := recordStore.LoadAll()

	var selected []string
	for _, skill := range strings.Split(listSkills, ",") {
		if skill = strings.TrimSpace(skill); skill != "" {
			selected = append(selected, skill)
		}
	}
	records = store.FilterBySkills(records, selected)

	if len(records) == 0 {
		if len(selected) > 0 {
			fmt.Fprintf(os.Stdout, "No resumes match skills: %s\n", strings.Join(selected, ", "))
		} else {
			fmt.Fprintln(os.Stdout, "No resumes found. Run 'extract' to add one.")
		}
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintRecordList(records)
	return nil
}
