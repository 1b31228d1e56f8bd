// Package store persists extracted resume records as one JSON file per
// resume in a flat directory. Records are immutable once written; the only
// operations are create and bulk-read. Concurrent writers need no
// coordination because the unique suffix in every generated filename makes
// each write target a distinct path.
package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/jonathan/resume-extractor/internal/types"
)

// disallowedChars matches every character outside the filename allow-list.
// Spaces are deleted along with everything else, not converted to
// underscores; the allow-list is the whole policy.
var disallowedChars = regexp.MustCompile(`[^a-zA-Z0-9._]`)

// Store reads and writes resume records under a single data directory
type Store struct {
	dataDir string
}

// New creates a Store rooted at dataDir. The directory is created on the
// first save, not here.
func New(dataDir string) *Store {
	return &Store{dataDir: dataDir}
}

// SanitizeFilename strips every character outside [A-Za-z0-9._] from the
// original upload name
func SanitizeFilename(filename string) string {
	return disallowedChars.ReplaceAllString(filename, "")
}

// Save writes the record, with rawText merged in, as a new JSON file named
// {sanitized-original-name}_{uuid}.json. It returns the generated filename.
func (s *Store) Save(record types.ResumeRecord, originalFilename, rawText string) (string, error) {
	record.RawText = rawText
	// The filename tag is runtime-only; it must never reach disk
	record.SourceFilename = ""

	if err := os.MkdirAll(s.dataDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}

	filename := fmt.Sprintf("%s_%s.json", SanitizeFilename(originalFilename), uuid.NewString())
	fullPath := filepath.Join(s.dataDir, filename)

	f, err := os.OpenFile(fullPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create record file: %w", err)
	}
	defer func() { _ = f.Close() }()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	// Keep non-ASCII characters literal in the stored file
	enc.SetEscapeHTML(false)
	if err := enc.Encode(record); err != nil {
		return "", fmt.Errorf("failed to write record: %w", err)
	}

	return filename, nil
}

// LoadAll reads every *.json file in the data directory and returns the
// records that parse, each tagged with its source filename. Files that fail
// to parse are skipped with a warning. A directory read failure yields an
// empty set and a logged cause: the browsing surface treats "no resumes"
// and "load error" identically.
func (s *Store) LoadAll() []types.ResumeRecord {
	entries, err := os.ReadDir(s.dataDir)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Error reading data directory %s: %v", s.dataDir, err)
		}
		return []types.ResumeRecord{}
	}

	records := make([]types.ResumeRecord, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.dataDir, entry.Name()))
		if err != nil {
			log.Printf("Warning: failed to read %s: %v", entry.Name(), err)
			continue
		}

		var record types.ResumeRecord
		if err := json.Unmarshal(data, &record); err != nil {
			log.Printf("Warning: failed to parse %s: %v", entry.Name(), err)
			continue
		}

		record.SourceFilename = entry.Name()
		records = append(records, record)
	}

	return records
}

// FilterBySkills returns the records that list every one of the selected
// skills, preserving their relative order. An empty selection keeps all.
func FilterBySkills(records []types.ResumeRecord, selected []string) []types.ResumeRecord {
	if len(selected) == 0 {
		return records
	}

	filtered := make([]types.ResumeRecord, 0, len(records))
	for _, record := range records {
		if record.HasAllSkills(selected) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}
