// Package main provides the entry point for the resume extractor CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_extractor",
	Short: "Resume Skill Extractor",
	Long:  "Resume Skill Extractor pulls structured data (contact details, skills, work history, education, certifications) out of PDF resumes using the Gemini API and stores the results for skill-based browsing.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
