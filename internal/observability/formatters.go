// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-extractor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
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
//nolint:errcheck // writing to a terminal; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, shorten(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// shorten cuts s to at most limit runes, marking the cut with "..."
func shorten(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit-3]) + "..."
}

// PrintExtractionResult outputs a human-readable summary of one extraction.
func (p *Printer) PrintExtractionResult(source string, result *types.ExtractionResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	if source != "" {
		sb.WriteString(fmt.Sprintf("Source:   %s\n", source))
	}

	role := result.CurrentRole.Role
	if role == "" {
		role = "(unknown)"
	}
	if result.CurrentRole.Organization != "" {
		role += " @ " + result.CurrentRole.Organization
	}
	sb.WriteString(fmt.Sprintf("Role:     %s (%.2f)\n", role, result.CurrentRole.Confidence))
	sb.WriteString(fmt.Sprintf("Profile:  %s, %s years (%.2f)\n",
		result.Experience.Type, result.Experience.Years, result.Experience.Confidence))
	if result.TotalYearsExperience > 0 {
		sb.WriteString(fmt.Sprintf("Tenure:   %d years across %d positions\n",
			result.TotalYearsExperience, len(result.WorkExperience)))
	}
	sb.WriteString("\n")

	if len(result.Sections) > 0 {
		sb.WriteString("Sections:\n")
		for _, s := range result.Sections {
			sb.WriteString(fmt.Sprintf("  • %-15s lines %d-%d (%.2f)\n", s.Name, s.StartLine, s.EndLine, s.Confidence))
		}
		sb.WriteString("\n")
	}

	if len(result.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills (%d):\n", len(result.Skills)))
		count := min(len(result.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			s := result.Skills[i]
			sb.WriteString(fmt.Sprintf("  • %s [%s] %.2f\n", s.Name, s.Category, s.Confidence))
		}
		if len(result.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Skills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(result.Education) > 0 {
		sb.WriteString("Education:\n")
		for _, e := range result.Education {
			sb.WriteString(fmt.Sprintf("  • %s\n", e))
		}
	}

	p.printBox("EXTRACTION RESULT", strings.TrimSuffix(sb.String(), "\n"))
	p.PrintValidationReport(&result.Validation)
}

// PrintValidationReport outputs the report status, errors and warnings.
func (p *Printer) PrintValidationReport(report *types.ValidationReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	status := "VALID"
	if !report.IsValid {
		status = "INVALID"
	}
	sb.WriteString(fmt.Sprintf("Status:   %s\n", status))
	sb.WriteString(fmt.Sprintf("Words:    %d   Lines: %d   Chars: %d\n",
		report.Stats.WordCount, report.Stats.LineCount, report.Stats.CharCount))

	for _, e := range report.Errors {
		sb.WriteString(fmt.Sprintf("  ✗ %s\n", e))
	}
	for _, w := range report.Warnings {
		sb.WriteString(fmt.Sprintf("  ⚠ %s\n", w))
	}

	p.printBox("VALIDATION", strings.TrimSuffix(sb.String(), "\n"))
}
