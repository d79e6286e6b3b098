// Package skills extracts technical and soft skills from normalized resume
// text using two strategies: direct vocabulary matching and contextual
// trigger phrases such as "proficient in".
package skills

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-extractor/internal/cache"
	"github.com/jonathan/resume-extractor/internal/patterns"
	"github.com/jonathan/resume-extractor/internal/types"
)

// maxTokenWords bounds contextual tokens so sentence fragments are not taken as skills
const maxTokenWords = 3

// Extractor runs both extraction strategies. Confidence scores are memoized
// per (skill, context line, category).
type Extractor struct {
	confidence *cache.FIFO[ConfidenceKey, float64]
}

// NewExtractor creates an Extractor backed by c. A nil cache gets a private
// cache of cache.DefaultMaxSize entries.
func NewExtractor(c *cache.FIFO[ConfidenceKey, float64]) *Extractor {
	if c == nil {
		c = cache.NewFIFO[ConfidenceKey, float64](cache.DefaultMaxSize)
	}
	return &Extractor{confidence: c}
}

// CacheStats exposes the confidence cache counters
func (e *Extractor) CacheStats() cache.Stats {
	return e.confidence.Stats()
}

// Extract runs both strategies, drops invalid names and merges duplicates
// keeping the highest confidence. The result is sorted by name.
func (e *Extractor) Extract(text string) []types.SkillRecord {
	all := e.ExtractDirect(text)
	contextual := e.ExtractContextual(text)
	for _, cat := range categoryKeys(contextual) {
		all = append(all, contextual[cat]...)
	}

	valid := all[:0]
	for _, rec := range all {
		if IsValid(rec.Name) {
			valid = append(valid, rec)
		}
	}
	return Merge(valid)
}

// ExtractDirect matches every category vocabulary against the full text.
// Each distinct name appears once, tagged with the category of its
// highest-confidence hit.
func (e *Extractor) ExtractDirect(text string) []types.SkillRecord {
	lines := newLineIndex(text)

	var found []types.SkillRecord
	for _, cat := range patterns.CategoryOrder {
		for _, m := range patterns.SkillCategories[cat].FindAll(text) {
			ctx := lines.contextAt(m.Start)
			found = append(found, types.SkillRecord{
				Name:       m.Term,
				Category:   cat,
				Confidence: e.Confidence(m.Term, ctx.Line, cat),
				Context:    ctx,
			})
		}
	}
	return Merge(found)
}

// ExtractContextual captures the span after each trigger phrase, splits it
// on commas, semicolons and "and", and classifies each token. Tokens not in
// any vocabulary are reported under types.CategoryUnknown.
func (e *Extractor) ExtractContextual(text string) map[types.SkillCategory][]types.SkillRecord {
	lines := newLineIndex(text)
	out := make(map[types.SkillCategory][]types.SkillRecord)
	seen := make(map[string]struct{})

	for _, trigger := range patterns.SkillTriggers {
		for _, loc := range trigger.FindAllStringSubmatchIndex(text, -1) {
			span := text[loc[2]:loc[3]]
			ctx := lines.contextAt(loc[0])

			for _, raw := range patterns.ContextualSplit.Split(span, -1) {
				token := cleanToken(raw)
				if token == "" {
					continue
				}
				if _, dup := seen[token]; dup {
					continue
				}
				seen[token] = struct{}{}

				cat := Categorize(token)
				out[cat] = append(out[cat], types.SkillRecord{
					Name:       token,
					Category:   cat,
					Confidence: e.Confidence(token, ctx.Line, cat),
					Context:    ctx,
				})
			}
		}
	}
	return out
}

// Categorize returns the first category whose vocabulary contains name
func Categorize(name string) types.SkillCategory {
	for _, cat := range patterns.CategoryOrder {
		if patterns.SkillCategories[cat].Contains(name) {
			return cat
		}
	}
	return types.CategoryUnknown
}

// cleanToken trims punctuation, strips leading function words, resolves
// aliases and discards short or overlong tokens. Returns "" when discarded.
func cleanToken(raw string) string {
	token := strings.ToLower(strings.Trim(raw, " \t:;()[]{}\"'!?"))
	token = strings.TrimRight(token, ".")

	words := strings.Fields(token)
	for len(words) > 0 {
		if _, fn := patterns.FunctionWords[words[0]]; !fn {
			break
		}
		words = words[1:]
	}
	if len(words) == 0 || len(words) > maxTokenWords {
		return ""
	}
	token = strings.Join(words, " ")

	if alias, ok := patterns.SkillAliases[token]; ok {
		token = alias
	}
	if _, ok := patterns.SkillAllowlist[token]; ok {
		return token
	}
	if len(token) <= 2 {
		return ""
	}
	return token
}

// Merge deduplicates records by name, keeping the highest confidence. On a
// tie the record seen first wins. Confidences are never summed.
func Merge(records ...[]types.SkillRecord) []types.SkillRecord {
	byName := make(map[string]types.SkillRecord)
	for _, group := range records {
		for _, rec := range group {
			existing, ok := byName[rec.Name]
			if !ok || rec.Confidence > existing.Confidence {
				byName[rec.Name] = rec
			}
		}
	}

	out := make([]types.SkillRecord, 0, len(byName))
	for _, rec := range byName {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Names returns the names of records, in order
func Names(records []types.SkillRecord) []string {
	out := make([]string, len(records))
	for i, rec := range records {
		out[i] = rec.Name
	}
	return out
}

func categoryKeys(m map[types.SkillCategory][]types.SkillRecord) []types.SkillCategory {
	keys := make([]types.SkillCategory, 0, len(m))
	for _, cat := range patterns.CategoryOrder {
		if _, ok := m[cat]; ok {
			keys = append(keys, cat)
		}
	}
	if _, ok := m[types.CategoryUnknown]; ok {
		keys = append(keys, types.CategoryUnknown)
	}
	return keys
}

// lineIndex maps byte offsets to lines
type lineIndex struct {
	lines  []string
	starts []int
}

func newLineIndex(text string) *lineIndex {
	lines := strings.Split(text, "\n")
	starts := make([]int, len(lines))
	offset := 0
	for i, l := range lines {
		starts[i] = offset
		offset += len(l) + 1
	}
	return &lineIndex{lines: lines, starts: starts}
}

// contextAt returns the line containing offset and its neighbours
func (li *lineIndex) contextAt(offset int) types.SkillContext {
	i := sort.SearchInts(li.starts, offset+1) - 1
	if i < 0 {
		i = 0
	}
	ctx := types.SkillContext{Line: strings.TrimSpace(li.lines[i])}
	if i > 0 {
		ctx.Before = strings.TrimSpace(li.lines[i-1])
	}
	if i+1 < len(li.lines) {
		ctx.After = strings.TrimSpace(li.lines[i+1])
	}
	return ctx
}
