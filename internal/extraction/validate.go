package extraction

import (
	"context"
	"log"
	"strings"

	"github.com/jonathan/resume-extractor/internal/llm"
)

// affirmativeTokens are the only replies accepted as "this is a resume".
// Anything else, including a hedging or empty reply, is negative.
var affirmativeTokens = map[string]bool{
	"true":  true,
	"yes":   true,
	"valid": true,
}

// ValidationResult is the outcome of a resume-section validation call
type ValidationResult struct {
	callStatus
	Valid bool
}

// ValidateResume asks the model whether the text contains at least one
// typical resume section (work experience, education, skills, projects,
// certifications). Transport and configuration failures degrade to a
// negative answer; this gate never blocks the pipeline by raising.
func (e *Extractor) ValidateResume(ctx context.Context, resumeText string) ValidationResult {
	if e.client == nil {
		err := &ConfigError{Message: "no LLM client configured"}
		log.Printf("Error validating resume: %v", err)
		return ValidationResult{callStatus: callStatus{Failure: FailureConfig, Err: err}}
	}

	prompt := buildPrompt("validate-resume", resumeText)

	reply, err := e.client.GenerateContent(ctx, prompt, llm.TierLite)
	if err != nil {
		wrapped := &APICallError{Message: "validation call failed", Cause: err}
		log.Printf("Error validating resume: %v", wrapped)
		return ValidationResult{callStatus: callStatus{Failure: FailureService, Err: wrapped}}
	}

	token := strings.ToLower(strings.TrimSpace(reply))
	return ValidationResult{Valid: affirmativeTokens[token]}
}
