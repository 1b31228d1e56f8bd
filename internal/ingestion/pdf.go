// Package ingestion extracts plain text from uploaded PDF resumes.
package ingestion

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractFromFile extracts the plain text of every page of the PDF at path.
// Pages are visited in document order and joined with a single newline;
// pages yielding no extractable text contribute nothing.
func ExtractFromFile(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", &InvalidInputError{Message: "path is empty"}
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return "", &NotFoundError{Path: path}
	}

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", &ProcessingError{Message: "failed to open PDF", Cause: err}
	}
	defer func() { _ = f.Close() }()

	return extractPages(reader), nil
}

// ExtractFromReader extracts text from an in-memory PDF byte stream, such as
// an HTTP upload. The stream is read fully before parsing.
func ExtractFromReader(r io.Reader) (string, error) {
	if r == nil {
		return "", &InvalidInputError{Message: "input must be a file path or a byte stream"}
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", &ProcessingError{Message: "failed to read input stream", Cause: err}
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ProcessingError{Message: "failed to open PDF", Cause: err}
	}

	return extractPages(reader), nil
}

// extractPages walks every page and concatenates the per-page text.
// A page that fails to extract is skipped, not fatal: scanned or image-only
// pages are expected and simply contribute nothing.
func extractPages(reader *pdf.Reader) string {
	var sb strings.Builder

	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		sb.WriteString(text)
		sb.WriteString("\n")
	}

	return CleanText(sb.String())
}
