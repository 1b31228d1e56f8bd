// Package extraction implements the three LLM-backed pipeline operations:
// contact extraction, resume validation, and full structured extraction.
//
// Every call returns a tagged result instead of an error. A fallible remote
// operation degrades to an absent-result signal, but the failure kind is kept
// so callers can tell "the model said no" apart from "the service failed" or
// "no credential was configured".
package extraction

import (
	"github.com/jonathan/resume-extractor/internal/llm"
	"github.com/jonathan/resume-extractor/internal/prompts"
)

// FailureKind classifies why an LLM-backed call produced no usable result
type FailureKind string

const (
	// FailureNone means the call succeeded
	FailureNone FailureKind = ""
	// FailureConfig means no LLM client was configured (missing credential)
	FailureConfig FailureKind = "config"
	// FailureService means the network call to the model failed
	FailureService FailureKind = "service"
	// FailureSchema means the model replied but not in the expected shape
	FailureSchema FailureKind = "schema"
)

// callStatus carries the outcome tag shared by all three call results
type callStatus struct {
	Failure FailureKind
	Err     error
}

// OK reports whether the call produced a usable result
func (s callStatus) OK() bool {
	return s.Failure == FailureNone
}

// promptFile is the embedded asset holding all three extraction prompts
const promptFile = "extraction.json"

// Extractor runs LLM-backed extraction calls against a shared client.
// The client is injected once at construction; a nil client marks every
// call as a configuration failure without crashing the process.
type Extractor struct {
	client llm.Client
}

// NewExtractor creates an Extractor backed by the given LLM client
func NewExtractor(client llm.Client) *Extractor {
	return &Extractor{client: client}
}

// buildPrompt loads a prompt template and embeds the resume text
func buildPrompt(key, resumeText string) string {
	template := prompts.MustGet(promptFile, key)
	return prompts.Format(template, map[string]string{
		"ResumeText": resumeText,
	})
}
