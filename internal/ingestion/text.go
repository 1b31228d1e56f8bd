package ingestion

import (
	"regexp"
	"strings"
)

var blankLineRuns = regexp.MustCompile(`\n\n\n+`)

// CleanText normalizes extracted page text: line endings become LF, runs of
// blank lines collapse, invalid byte sequences are dropped, and the result
// is trimmed. Dropping unrepresentable characters is a deliberate lossy
// policy inherited from the extraction contract, not a defect.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// Normalize line endings (CRLF -> LF)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	// Reduce 3+ consecutive newlines to 2 so no page contributes a
	// trailing run of blank lines
	content = blankLineRuns.ReplaceAllString(content, "\n\n")

	// Drop byte sequences that are not valid UTF-8
	content = strings.ToValidUTF8(content, "")

	return strings.TrimSpace(content)
}
