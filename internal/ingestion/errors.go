package ingestion

import "fmt"

// InvalidInputError indicates the input was neither a file path nor a
// readable byte stream. It is raised before any I/O is attempted.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Message)
}

// NotFoundError indicates a referenced PDF path does not exist
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("PDF file not found: %s", e.Path)
}

// ProcessingError wraps any failure while opening or reading a PDF
// (corrupt document, permission error, truncated stream)
type ProcessingError struct {
	Message string
	Cause   error
}

func (e *ProcessingError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("error processing PDF: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("error processing PDF: %s", e.Message)
}

func (e *ProcessingError) Unwrap() error {
	return e.Cause
}
