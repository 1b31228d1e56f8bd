package server

import (
	"net/http"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jonathan/resume-extractor/internal/pipeline"
	"github.com/jonathan/resume-extractor/internal/store"
	"github.com/jonathan/resume-extractor/internal/types"
)

// maxUploadBytes caps the accepted PDF size
const maxUploadBytes = 16 << 20 // 16 MiB

// UploadResponse is returned when an upload is processed, whether or not a
// record was saved
type UploadResponse struct {
	Status   string              `json:"status"`
	Message  string              `json:"message"`
	Filename string              `json:"filename,omitempty"`
	Record   *types.ResumeRecord `json:"record,omitempty"`
}

// ListResponse is the payload for GET /resumes
type ListResponse struct {
	Count   int                  `json:"count"`
	Resumes []types.ResumeRecord `json:"resumes"`
}

// SkillsResponse is the payload for GET /skills
type SkillsResponse struct {
	Skills []string `json:"skills"`
}

// handleUploadResume accepts a multipart PDF upload and runs the full
// extraction pipeline on it
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "A PDF upload is required in the 'file' form field")
		return
	}
	defer func() { _ = file.Close() }()

	if !strings.EqualFold(filepath.Ext(header.Filename), ".pdf") {
		s.errorResponse(w, http.StatusBadRequest, "Only PDF uploads are supported")
		return
	}

	outcome, err := s.runner.RunReader(r.Context(), file, header.Filename)
	if err != nil && outcome.Status == pipeline.StatusNoText {
		// Typed text-extraction failures are request problems, not ours
		s.errorResponse(w, http.StatusBadRequest, outcome.Message)
		return
	}

	resp := UploadResponse{
		Status:  string(outcome.Status),
		Message: outcome.Message,
	}
	if outcome.Saved() {
		resp.Filename = outcome.Filename
		resp.Record = scrubRawText(outcome.Record)
	}

	s.writeJSON(w, statusCodeFor(outcome), resp)
}

// handleListResumes returns every saved record, optionally filtered by one
// or more ?skill= query parameters. A record must list every requested
// skill to survive the filter.
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	records := s.store.LoadAll()

	selected := r.URL.Query()["skill"]
	records = store.FilterBySkills(records, selected)

	// The structured view never exposes raw text
	cleaned := make([]types.ResumeRecord, 0, len(records))
	for i := range records {
		cleaned = append(cleaned, *scrubRawText(&records[i]))
	}

	s.writeJSON(w, http.StatusOK, ListResponse{Count: len(cleaned), Resumes: cleaned})
}

// handleListSkills returns the sorted set of unique skills across all
// saved records, for building filter selections
func (s *Server) handleListSkills(w http.ResponseWriter, _ *http.Request) {
	seen := make(map[string]bool)
	for _, record := range s.store.LoadAll() {
		for _, skill := range record.Skills {
			seen[skill] = true
		}
	}

	skills := make([]string, 0, len(seen))
	for skill := range seen {
		skills = append(skills, skill)
	}
	sort.Strings(skills)

	s.writeJSON(w, http.StatusOK, SkillsResponse{Skills: skills})
}

// handleHealth is a liveness check
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// scrubRawText returns a copy of the record without its raw text
func scrubRawText(record *types.ResumeRecord) *types.ResumeRecord {
	if record == nil {
		return nil
	}
	cleaned := *record
	cleaned.RawText = ""
	return &cleaned
}
