package facts

import (
	"strings"

	"github.com/jonathan/resume-extractor/internal/ingestion"
	"github.com/jonathan/resume-extractor/internal/patterns"
)

// ExtractEducation lists education entries. Lines of the education section
// that mention a degree or institution are preferred; when none do, every
// section line is an entry. Without a section the full text is scanned for
// keyword lines.
func ExtractEducation(sectionContent, fullText string) []string {
	if strings.TrimSpace(sectionContent) != "" {
		if entries := keywordLines(sectionContent); len(entries) > 0 {
			return entries
		}
		return nonEmptyLines(sectionContent)
	}
	return keywordLines(fullText)
}

func keywordLines(text string) []string {
	var entries []string
	for _, line := range nonEmptyLines(text) {
		if patterns.EducationKeyword.MatchString(line) {
			entries = append(entries, line)
		}
	}
	return entries
}

func nonEmptyLines(text string) []string {
	var out []string
	seen := map[string]struct{}{}
	for _, line := range strings.Split(text, "\n") {
		line = ingestion.StripBullet(line)
		if line == "" {
			continue
		}
		if _, dup := seen[line]; dup {
			continue
		}
		seen[line] = struct{}{}
		out = append(out, line)
	}
	return out
}
