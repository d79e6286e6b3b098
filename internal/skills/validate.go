package skills

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-extractor/internal/patterns"
)

var digitsOnlyRe = regexp.MustCompile(`^[\d\s.,]+$`)

// IsValid reports whether name is kept as a skill. Allow-listed short
// tokens bypass the length check; everything else must be longer than two
// characters, not denylisted and not purely numeric.
func IsValid(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return false
	}
	if _, ok := patterns.SkillAllowlist[name]; ok {
		return true
	}
	if len(name) <= 2 {
		return false
	}
	if _, denied := patterns.SkillDenylist[name]; denied {
		return false
	}
	return !digitsOnlyRe.MatchString(name)
}

// Validate filters candidate names, returning the valid ones lowercased,
// deduplicated and sorted.
func Validate(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if _, dup := seen[n]; dup || !IsValid(n) {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
