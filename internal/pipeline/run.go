// Package pipeline provides the high-level orchestration for one resume
// extraction run: text extraction, the two validation gates, structured
// extraction, and persistence.
//
// The stage order is deliberate and must not change: the two cheap, narrow
// gate calls (contact presence, section presence) run before the expensive
// full-schema call so that non-resumes are rejected with minimal API cost
// and latency. Every stage is a hard sequential dependency; any gate
// failure short-circuits the run.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/jonathan/resume-extractor/internal/extraction"
	"github.com/jonathan/resume-extractor/internal/ingestion"
	"github.com/jonathan/resume-extractor/internal/store"
	"github.com/jonathan/resume-extractor/internal/types"
)

// Status classifies the outcome of a pipeline run
type Status string

// Run outcome statuses. The distinction between rejection statuses and
// StatusServiceUnavailable matters downstream: "not a resume" and "the
// extraction service failed" produce different user-facing messages.
const (
	// StatusSaved means the record passed both gates and was persisted
	StatusSaved Status = "saved"
	// StatusNoText means no text could be extracted from the PDF
	StatusNoText Status = "no_text"
	// StatusMissingContact means the contact gate found no usable name/email
	StatusMissingContact Status = "missing_contact"
	// StatusMissingSections means the section-presence gate rejected the text
	StatusMissingSections Status = "missing_sections"
	// StatusExtractionFailed means the structured reply was unusable
	StatusExtractionFailed Status = "extraction_failed"
	// StatusServiceUnavailable means an LLM call failed for reasons
	// unrelated to the document (network, credential)
	StatusServiceUnavailable Status = "service_unavailable"
	// StatusSaveFailed means extraction succeeded but persisting did not
	StatusSaveFailed Status = "save_failed"
)

// Outcome is the result of one pipeline run. Message is a short
// human-readable summary suitable for direct display; raw error detail is
// never put in front of the user.
type Outcome struct {
	Status   Status
	Message  string
	Filename string
	Record   *types.ResumeRecord
	RawText  string
}

// Saved reports whether the run ended with a persisted record
func (o Outcome) Saved() bool {
	return o.Status == StatusSaved
}

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
}

// ProgressCallback is called as pipeline stages complete
type ProgressCallback func(event ProgressEvent)

// Runner executes extraction runs against a shared extractor and store
type Runner struct {
	extractor  *extraction.Extractor
	store      *store.Store
	onProgress ProgressCallback
}

// New creates a Runner. onProgress may be nil.
func New(extractor *extraction.Extractor, recordStore *store.Store, onProgress ProgressCallback) *Runner {
	return &Runner{
		extractor:  extractor,
		store:      recordStore,
		onProgress: onProgress,
	}
}

// RunFile executes the pipeline for a PDF on disk. Text-extraction errors
// propagate as typed errors; they are local and actionable, unlike the
// swallowed LLM failures.
func (r *Runner) RunFile(ctx context.Context, path, originalFilename string) (Outcome, error) {
	r.emit("extract_text", "Extracting text from PDF")
	text, err := ingestion.ExtractFromFile(path)
	if err != nil {
		return Outcome{Status: StatusNoText, Message: "Failed to extract text from PDF."}, err
	}
	return r.run(ctx, text, originalFilename)
}

// RunReader executes the pipeline for an in-memory PDF byte stream, such as
// an HTTP upload.
func (r *Runner) RunReader(ctx context.Context, reader io.Reader, originalFilename string) (Outcome, error) {
	r.emit("extract_text", "Extracting text from PDF")
	text, err := ingestion.ExtractFromReader(reader)
	if err != nil {
		return Outcome{Status: StatusNoText, Message: "Failed to extract text from PDF."}, err
	}
	return r.run(ctx, text, originalFilename)
}

func (r *Runner) run(ctx context.Context, text, originalFilename string) (Outcome, error) {
	if text == "" {
		return Outcome{
			Status:  StatusNoText,
			Message: "Failed to extract text from PDF.",
		}, nil
	}

	// Gate 1: contact presence. Cheapest call first.
	r.emit("contact_gate", "Extracting contact information")
	contact := r.extractor.ExtractContactInfo(ctx, text)
	if contact.Failure == extraction.FailureService || contact.Failure == extraction.FailureConfig {
		return serviceUnavailable(), nil
	}
	if !contact.OK() || !contact.Contact.Complete() {
		return Outcome{
			Status:  StatusMissingContact,
			Message: "The uploaded document does not appear to be a valid resume. Could not find a recognizable name or email address.",
			RawText: text,
		}, nil
	}

	// Gate 2: section presence. Still cheap; still before the big call.
	r.emit("validate_resume", "Checking for typical resume sections")
	validation := r.extractor.ValidateResume(ctx, text)
	if validation.Failure == extraction.FailureService || validation.Failure == extraction.FailureConfig {
		return serviceUnavailable(), nil
	}
	if !validation.Valid {
		return Outcome{
			Status:  StatusMissingSections,
			Message: "Found contact info, but the document seems to be missing typical resume sections (e.g., Experience, Skills).",
			RawText: text,
		}, nil
	}

	// Both gates passed: run the expensive full-schema extraction.
	r.emit("extract_structured", "Extracting structured data")
	structured := r.extractor.ExtractStructuredData(ctx, text)
	if structured.Failure == extraction.FailureService || structured.Failure == extraction.FailureConfig {
		return serviceUnavailable(), nil
	}
	if !structured.OK() {
		return Outcome{
			Status:  StatusExtractionFailed,
			Message: "Failed to extract data from the resume. Please try again with a different file.",
			RawText: text,
		}, nil
	}

	r.emit("save", "Saving extracted record")
	filename, err := r.store.Save(*structured.Record, originalFilename, text)
	if err != nil {
		log.Printf("Error saving record: %v", err)
		return Outcome{
			Status:  StatusSaveFailed,
			Message: "Failed to save data.",
			Record:  structured.Record,
			RawText: text,
		}, fmt.Errorf("failed to save record: %w", err)
	}

	return Outcome{
		Status:   StatusSaved,
		Message:  "Resume validated successfully. Extracted data has been saved.",
		Filename: filename,
		Record:   structured.Record,
		RawText:  text,
	}, nil
}

func serviceUnavailable() Outcome {
	return Outcome{
		Status:  StatusServiceUnavailable,
		Message: "The extraction service is currently unavailable. Please try again later.",
	}
}

// emit calls the progress callback if one is configured
func (r *Runner) emit(step, message string) {
	if r.onProgress != nil {
		r.onProgress(ProgressEvent{Step: step, Message: message})
	}
}
