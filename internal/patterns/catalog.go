// Package patterns holds the static regular-expression registries used by the
// resume extraction components: section headers and indicators, skill
// vocabularies, education keywords, role and experience fallback chains, and
// the skill deny/allow lists.
//
// Everything here is compiled once at package init and never mutated.
package patterns

import (
	"regexp"
	"sort"
	"strings"
)

// NamedPattern is a regex with a stable name, used in ordered fallback chains
type NamedPattern struct {
	Name string
	Re   *regexp.Regexp
}

// TermMatcher finds whole-token occurrences of a fixed vocabulary.
// Terms that start and end with a word character are bounded with \b on
// both sides; terms like "c++" or ".net" use an explicit leading boundary.
type TermMatcher struct {
	word   *regexp.Regexp
	symbol *regexp.Regexp
	terms  map[string]struct{}
}

// NewTermMatcher compiles a case-insensitive matcher for terms.
// Longer terms are tried first so "spring boot" wins over "spring".
func NewTermMatcher(terms []string) *TermMatcher {
	m := &TermMatcher{terms: make(map[string]struct{}, len(terms))}

	sorted := make([]string, 0, len(terms))
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, dup := m.terms[t]; dup {
			continue
		}
		m.terms[t] = struct{}{}
		sorted = append(sorted, t)
	}
	sort.SliceStable(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })

	var words, symbols []string
	for _, t := range sorted {
		quoted := strings.ReplaceAll(regexp.QuoteMeta(t), " ", `\s+`)
		if isWordByte(t[0]) && isWordByte(t[len(t)-1]) {
			words = append(words, quoted)
		} else {
			symbols = append(symbols, quoted)
		}
	}

	if len(words) > 0 {
		m.word = regexp.MustCompile(`(?i)\b(?:` + strings.Join(words, "|") + `)\b`)
	}
	if len(symbols) > 0 {
		m.symbol = regexp.MustCompile(`(?i)(?:^|[^\w.+#])(` + strings.Join(symbols, "|") + `)`)
	}
	return m
}

// Match is a single vocabulary hit
type Match struct {
	Term  string // lowercased, whitespace collapsed
	Start int
	End   int
}

// FindAll returns every hit in text in order of occurrence
func (m *TermMatcher) FindAll(text string) []Match {
	var out []Match
	if m.word != nil {
		for _, loc := range m.word.FindAllStringIndex(text, -1) {
			out = append(out, Match{Term: canonicalTerm(text[loc[0]:loc[1]]), Start: loc[0], End: loc[1]})
		}
	}
	if m.symbol != nil {
		for _, loc := range m.symbol.FindAllStringSubmatchIndex(text, -1) {
			out = append(out, Match{Term: canonicalTerm(text[loc[2]:loc[3]]), Start: loc[2], End: loc[3]})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out
}

// Contains reports whether term is part of the vocabulary
func (m *TermMatcher) Contains(term string) bool {
	_, ok := m.terms[canonicalTerm(term)]
	return ok
}

func canonicalTerm(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

func isWordByte(b byte) bool {
	return b == '_' || (b >= '0' && b <= '9') || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// AnyMatch reports whether any pattern matches text
func AnyMatch(res []*regexp.Regexp, text string) bool {
	for _, re := range res {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// CountMatching returns how many patterns match somewhere in text
func CountMatching(res []*regexp.Regexp, text string) int {
	n := 0
	for _, re := range res {
		if re.MatchString(text) {
			n++
		}
	}
	return n
}
