package extraction

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/jonathan/resume-extractor/internal/llm"
	"github.com/jonathan/resume-extractor/internal/schemas"
	"github.com/jonathan/resume-extractor/internal/types"
)

// StructuredResult is the outcome of a full structured extraction call
type StructuredResult struct {
	callStatus
	Record *types.ResumeRecord
}

// ExtractStructuredData sends the full-schema prompt and parses the reply
// into a candidate ResumeRecord. The de-fenced reply is validated against
// the ResumeRecord JSON Schema before it is accepted; the model's adherence
// to the prompt is not trusted blindly.
//
// This is the only extractor whose failure path logs the raw server reply:
// schema mismatches here are the most consequential failure mode and the
// reply is the evidence needed to diagnose them.
func (e *Extractor) ExtractStructuredData(ctx context.Context, resumeText string) StructuredResult {
	if e.client == nil {
		err := &ConfigError{Message: "no LLM client configured"}
		log.Printf("Error extracting structured data: %v", err)
		return StructuredResult{callStatus: callStatus{Failure: FailureConfig, Err: err}}
	}

	prompt := buildPrompt("extract-structured-data", resumeText)

	reply, err := e.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		wrapped := &APICallError{Message: "structured extraction call failed", Cause: err}
		log.Printf("Error extracting structured data: %v", wrapped)
		return StructuredResult{callStatus: callStatus{Failure: FailureService, Err: wrapped}}
	}

	reply = llm.CleanJSONBlock(reply)

	if err := schemas.ValidateResumeRecord(reply); err != nil {
		wrapped := &ParseError{Message: "structured reply does not match the record schema", Cause: err}
		log.Printf("Error extracting structured data: %v", wrapped)
		log.Printf("Raw response: %s", reply)
		return StructuredResult{callStatus: callStatus{Failure: FailureSchema, Err: wrapped}}
	}

	var record types.ResumeRecord
	if err := json.Unmarshal([]byte(reply), &record); err != nil {
		wrapped := &ParseError{Message: "failed to parse structured reply", Cause: err}
		log.Printf("Error extracting structured data: %v", wrapped)
		log.Printf("Raw response: %s", reply)
		return StructuredResult{callStatus: callStatus{Failure: FailureSchema, Err: wrapped}}
	}

	normalizeRecord(&record)

	return StructuredResult{Record: &record}
}

// normalizeRecord tidies the parsed record: skills are trimmed and
// deduplicated while preserving their original order.
func normalizeRecord(record *types.ResumeRecord) {
	seen := make(map[string]bool, len(record.Skills))
	skills := make([]string, 0, len(record.Skills))
	for _, skill := range record.Skills {
		trimmed := strings.TrimSpace(skill)
		if trimmed == "" || seen[trimmed] {
			continue
		}
		seen[trimmed] = true
		skills = append(skills, trimmed)
	}
	record.Skills = skills
}
