// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-extractor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
	// previewLength is how much raw text the preview shows
	previewLength = 500
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRawTextPreview outputs the first few hundred characters of the
// extracted PDF text.
func (p *Printer) PrintRawTextPreview(text string) {
	if text == "" {
		return
	}
	preview := text
	if len(preview) > previewLength {
		preview = preview[:previewLength] + "..."
	}
	p.printBox("RAW EXTRACTED TEXT (preview)", preview)
}

// PrintRecord outputs a human-readable summary of an extracted resume record.
func (p *Printer) PrintRecord(record *types.ResumeRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:   %s\n", record.Name))
	sb.WriteString(fmt.Sprintf("Email:  %s\n", record.Email))
	sb.WriteString(fmt.Sprintf("Phone:  %s\n", record.Phone))
	sb.WriteString("\n")

	if len(record.Skills) > 0 {
		skills := strings.Join(record.Skills, ", ")
		if len(skills) > 50 {
			skills = skills[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("Skills: %s\n", skills))
		sb.WriteString("\n")
	}

	if len(record.WorkExperience) > 0 {
		sb.WriteString("Work Experience:\n")
		count := min(len(record.WorkExperience), maxItemsToShow)
		for i := 0; i < count; i++ {
			exp := record.WorkExperience[i]
			sb.WriteString(fmt.Sprintf("  • %s - %s (%s)\n", orNA(exp.Company), orNA(exp.Role), orNA(exp.Dates)))
		}
		if len(record.WorkExperience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(record.WorkExperience)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(record.Education) > 0 {
		sb.WriteString("Education:\n")
		for _, edu := range record.Education {
			sb.WriteString(fmt.Sprintf("  • %s, %s (%s)\n", orNA(edu.Degree), orNA(edu.Institution), orNA(edu.GraduationDate)))
		}
		sb.WriteString("\n")
	}

	if len(record.Certifications) > 0 {
		sb.WriteString("Certifications:\n")
		count := min(len(record.Certifications), maxItemsToShow)
		for i := 0; i < count; i++ {
			cert := record.Certifications[i]
			sb.WriteString(fmt.Sprintf("  • %s (%s)\n", orNA(cert.Name), orNA(cert.IssuingOrganization)))
		}
		if len(record.Certifications) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(record.Certifications)-maxItemsToShow))
		}
	}

	p.printBox("EXTRACTED RESUME RECORD", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecordList outputs a one-line-per-record listing of loaded records.
func (p *Printer) PrintRecordList(records []types.ResumeRecord) {
	var sb strings.Builder

	if len(records) == 0 {
		sb.WriteString("No resumes saved yet.")
	} else {
		for _, record := range records {
			sb.WriteString(fmt.Sprintf("%s <%s>\n", orNA(record.Name), orNA(record.Email)))
			if len(record.Skills) > 0 {
				skills := strings.Join(record.Skills, ", ")
				if len(skills) > 45 {
					skills = skills[:42] + "..."
				}
				sb.WriteString(fmt.Sprintf("    Skills: %s\n", skills))
			}
			sb.WriteString(fmt.Sprintf("    File:   %s\n", record.SourceFilename))
		}
	}

	p.printBox(fmt.Sprintf("SAVED RESUMES (%d)", len(records)), strings.TrimSuffix(sb.String(), "\n"))
}

// orNA substitutes the display placeholder for absent fields
func orNA(value string) string {
	if strings.TrimSpace(value) == "" {
		return "N/A"
	}
	return value
}
