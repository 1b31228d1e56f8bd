package extraction

import (
	"context"
	"encoding/json"
	"log"

	"github.com/jonathan/resume-extractor/internal/llm"
	"github.com/jonathan/resume-extractor/internal/types"
)

// ContactResult is the outcome of a contact extraction call
type ContactResult struct {
	callStatus
	Contact types.ContactInfo
}

// ExtractContactInfo asks the model for only {name, email, phone}.
// This is the first, cheapest gate in the pipeline: it runs on the lite tier
// and its reply decides whether anything more expensive happens at all.
func (e *Extractor) ExtractContactInfo(ctx context.Context, resumeText string) ContactResult {
	if e.client == nil {
		err := &ConfigError{Message: "no LLM client configured"}
		log.Printf("Error extracting contact info: %v", err)
		return ContactResult{callStatus: callStatus{Failure: FailureConfig, Err: err}}
	}

	prompt := buildPrompt("extract-contact-info", resumeText)

	reply, err := e.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		wrapped := &APICallError{Message: "contact extraction call failed", Cause: err}
		log.Printf("Error extracting contact info: %v", wrapped)
		return ContactResult{callStatus: callStatus{Failure: FailureService, Err: wrapped}}
	}

	reply = llm.CleanJSONBlock(reply)

	var contact types.ContactInfo
	if err := json.Unmarshal([]byte(reply), &contact); err != nil {
		wrapped := &ParseError{Message: "contact reply is not valid JSON", Cause: err}
		log.Printf("Error extracting contact info: %v", wrapped)
		return ContactResult{callStatus: callStatus{Failure: FailureSchema, Err: wrapped}}
	}

	return ContactResult{Contact: contact}
}
