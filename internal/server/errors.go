package server

import (
	"net/http"

	"github.com/jonathan/resume-extractor/internal/pipeline"
)

// statusCodeFor maps a pipeline outcome to an HTTP status code. Document
// rejections are client errors; service and persistence failures are not.
func statusCodeFor(outcome pipeline.Outcome) int {
	switch outcome.Status {
	case pipeline.StatusSaved:
		return http.StatusCreated
	case pipeline.StatusNoText,
		pipeline.StatusMissingContact,
		pipeline.StatusMissingSections,
		pipeline.StatusExtractionFailed:
		return http.StatusUnprocessableEntity
	case pipeline.StatusServiceUnavailable:
		return http.StatusBadGateway
	case pipeline.StatusSaveFailed:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
