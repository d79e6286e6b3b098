package validation

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-extractor/internal/types"
)

// Rule defaults
const (
	DefaultMinWords               = 50
	DefaultMaxTripleNewlines      = 5
	DefaultLowConfidenceThreshold = 0.6

	// maxListedCharacters caps the characters quoted in the non-ASCII warning
	maxListedCharacters = 20
)

// Rules holds the thresholds the report is built against
type Rules struct {
	MinWords               int
	MaxTripleNewlines      int
	LowConfidenceThreshold float64
}

// DefaultRules returns the standard thresholds
func DefaultRules() Rules {
	return Rules{
		MinWords:               DefaultMinWords,
		MaxTripleNewlines:      DefaultMaxTripleNewlines,
		LowConfidenceThreshold: DefaultLowConfidenceThreshold,
	}
}

// CheckInput runs the input checks on the raw and normalized text. Empty
// text and text under the minimum word count are fatal: the report is
// invalid and an *InputError is returned. Formatting artifacts and non-ASCII
// characters only add warnings.
func CheckInput(raw, normalized string, r Rules) (types.ValidationReport, error) {
	report := types.ValidationReport{
		IsValid:  true,
		Warnings: []string{},
		Errors:   []string{},
		Stats: types.ValidationStats{
			CharCount: utf8.RuneCountInString(normalized),
			WordCount: len(strings.Fields(normalized)),
		},
	}
	if normalized != "" {
		report.Stats.LineCount = strings.Count(normalized, "\n") + 1
	}

	if normalized == "" {
		return fail(report, &InputError{Reason: ReasonEmpty, Message: "no text could be extracted from the document"})
	}
	if report.Stats.WordCount < r.MinWords {
		return fail(report, &InputError{
			Reason:  ReasonTooShort,
			Message: fmt.Sprintf("document has %d words, at least %d required", report.Stats.WordCount, r.MinWords),
		})
	}

	if n := strings.Count(raw, "\n\n\n"); n > r.MaxTripleNewlines {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("excessive blank lines (%d triple newlines), the text may contain extraction artifacts", n))
	}
	if chars := NonASCII(raw); len(chars) > 0 {
		listed := chars
		if len(listed) > maxListedCharacters {
			listed = listed[:maxListedCharacters]
		}
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("non-ASCII characters found: %s", strings.Join(listed, " ")))
	}
	return report, nil
}

func fail(report types.ValidationReport, err *InputError) (types.ValidationReport, error) {
	report.IsValid = false
	report.Errors = append(report.Errors, err.Message)
	return report, err
}

// CheckResult adds result-quality warnings and counts to a valid report
func CheckResult(report *types.ValidationReport, result *types.ExtractionResult, r Rules) {
	found := make(map[types.SectionName]bool, len(result.Sections))
	for _, s := range result.Sections {
		found[s.Name] = true
	}
	for _, name := range types.RequiredSections {
		if !found[name] {
			report.Warnings = append(report.Warnings, fmt.Sprintf("missing required section: %s", name))
		}
	}
	for _, s := range result.Sections {
		if s.Confidence < r.LowConfidenceThreshold {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("low confidence for section %s (%.2f)", s.Name, s.Confidence))
		}
	}

	if len(result.Skills) == 0 {
		report.Warnings = append(report.Warnings, "no skills found")
	}
	if len(result.Education) == 0 {
		report.Warnings = append(report.Warnings, "no education entries found")
	}
	if result.CurrentRole.Role == "" {
		report.Warnings = append(report.Warnings, "current role could not be determined")
	}
	if result.Experience.Confidence == 0 {
		report.Warnings = append(report.Warnings, "years of experience could not be determined")
	}

	report.Stats.SectionCount = len(result.Sections)
	report.Stats.SkillCount = len(result.Skills)
	report.Stats.EducationCount = len(result.Education)
	report.Stats.ExperienceCount = len(result.WorkExperience)
}

// NonASCII returns the distinct non-ASCII characters in text, sorted
func NonASCII(text string) []string {
	seen := make(map[rune]struct{})
	for _, r := range text {
		if r > 127 {
			seen[r] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for r := range seen {
		out = append(out, string(r))
	}
	sort.Strings(out)
	return out
}
