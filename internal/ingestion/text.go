package ingestion

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	horizontalSpaceRe = regexp.MustCompile(`[ \t\f\v]+`)
	excessBlankRe     = regexp.MustCompile(`\n{3,}`)
)

// Normalize cleans raw extracted resume text into its canonical form.
// It never fails: empty input yields empty output, and
// Normalize(Normalize(x)) == Normalize(x).
//
// Steps, in order:
//  1. character substitution (NFKC, typographic punctuation, bullets, PDF glyph artifacts)
//  2. lexical canonicalization (months, degree and title abbreviations)
//  3. whitespace collapsing (spaces, per-line trim, max one blank line)
//
// Expansions can end next to a combining mark left over from step 1, so the
// rune folding runs again after canonicalization.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	text := substituteCharacters(raw)
	text = foldRunes(canonicalize(text))
	return collapseWhitespace(text)
}

// substituteCharacters maps Unicode punctuation, bullets and invisible
// characters to ASCII equivalents
func substituteCharacters(text string) string {
	// Line endings first so the remaining steps see only \n
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return foldRunes(text)
}

// foldRunes applies NFKC, which folds ligatures, full-width forms and
// compatibility spaces. The substitution table runs on both sides: removed
// characters must not block composition, and NFKC can itself produce
// typographic dashes.
func foldRunes(text string) string {
	text = mapRunes(text)
	text = norm.NFKC.String(text)
	return mapRunes(text)
}

func mapRunes(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		if repl, ok := charSubstitutions[r]; ok {
			sb.WriteString(repl)
			continue
		}
		if r < 0x20 && r != '\n' && r != '\t' {
			continue // control characters from broken PDF streams
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// canonicalize applies whole-token substitutions
func canonicalize(text string) string {
	text = canonicalizeMonths(text)
	for _, rule := range canonicalRules {
		text = rule.re.ReplaceAllString(text, rule.replacement)
	}
	return text
}

// collapseWhitespace normalizes horizontal whitespace, trims each line and
// reduces runs of blank lines to a single paragraph break
func collapseWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = cleanLine(line)
	}
	result := strings.Join(lines, "\n")
	result = removeExcessiveBlankLines(result)
	return strings.TrimSpace(result)
}

// cleanLine collapses runs of spaces and trims the line
func cleanLine(line string) string {
	if strings.TrimSpace(line) == "" {
		return ""
	}
	return strings.TrimSpace(horizontalSpaceRe.ReplaceAllString(line, " "))
}

// removeExcessiveBlankLines replaces 3+ consecutive newlines with exactly two
func removeExcessiveBlankLines(content string) string {
	return excessBlankRe.ReplaceAllString(content, "\n\n")
}

// IsBulletLine checks if a normalized line is a bullet list item
func IsBulletLine(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	return strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ")
}

// StripBullet removes a leading "- " or "* " marker from a normalized line
func StripBullet(line string) string {
	trimmed := strings.TrimSpace(line)
	if IsBulletLine(trimmed) {
		return strings.TrimSpace(trimmed[2:])
	}
	return trimmed
}

// WordCount counts whitespace-separated tokens
func WordCount(text string) int {
	return len(strings.Fields(text))
}
