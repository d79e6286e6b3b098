// Package sections splits normalized resume text into labeled sections.
package sections

import (
	"math"
	"strings"

	"github.com/jonathan/resume-extractor/internal/cache"
	"github.com/jonathan/resume-extractor/internal/patterns"
	"github.com/jonathan/resume-extractor/internal/types"
)

// Confidence model constants
const (
	BaseConfidence      = 0.5
	IndicatorBonus      = 0.1
	LongContentBonus    = 0.2
	LongContentMinWords = 50
)

// Segmenter assigns every line after the first header to exactly one section.
// Results are memoized by a hash of the input text.
type Segmenter struct {
	cache *cache.FIFO[string, types.Sections]
}

// NewSegmenter creates a Segmenter backed by c. A nil cache gets a private
// cache of cache.DefaultMaxSize entries.
func NewSegmenter(c *cache.FIFO[string, types.Sections]) *Segmenter {
	if c == nil {
		c = cache.NewFIFO[string, types.Sections](cache.DefaultMaxSize)
	}
	return &Segmenter{cache: c}
}

// Segment labels the sections of text. A document without any header yields
// an empty map. The returned map is owned by the caller.
func (s *Segmenter) Segment(text string) types.Sections {
	key := cache.HashText(text)
	if cached, ok := s.cache.Get(key); ok {
		return cached.Clone()
	}

	result := segment(text)
	s.cache.Put(key, result.Clone())
	return result
}

// CacheStats exposes the segmentation cache counters
func (s *Segmenter) CacheStats() cache.Stats {
	return s.cache.Stats()
}

// openSection accumulates the lines of the section being read
type openSection struct {
	name  types.SectionName
	start int
	lines []string
}

func segment(text string) types.Sections {
	out := types.Sections{}
	if strings.TrimSpace(text) == "" {
		return out
	}

	lines := strings.Split(text, "\n")
	var current *openSection
	skipping := false // inside a repeated header's block

	closeCurrent := func(end int) {
		if current == nil {
			return
		}
		content := strings.Join(current.lines, "\n")
		out[current.name] = types.Section{
			Name:       current.name,
			Content:    content,
			StartLine:  current.start,
			EndLine:    end,
			Confidence: Confidence(current.name, content),
		}
		current = nil
	}

	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if name, ok := MatchHeader(line); ok {
			if current != nil && current.name == name {
				continue
			}
			closeCurrent(i)
			if _, seen := out[name]; seen {
				// first occurrence of a section wins
				skipping = true
				continue
			}
			skipping = false
			current = &openSection{name: name, start: i}
			continue
		}

		if current != nil && !skipping {
			current.lines = append(current.lines, line)
		}
	}
	closeCurrent(len(lines))

	return out
}

// MatchHeader tests line against every section's header patterns in
// types.SectionOrder and returns the first section that matches.
func MatchHeader(line string) (types.SectionName, bool) {
	for _, name := range types.SectionOrder {
		if patterns.AnyMatch(patterns.SectionHeaders[name], line) {
			return name, true
		}
	}
	return "", false
}

// Confidence scores how well content fits section name: a base of 0.5, 0.1
// per indicator pattern found anywhere in content and 0.2 when content runs
// past 50 words, clamped to [0, 1].
func Confidence(name types.SectionName, content string) float64 {
	score := BaseConfidence
	score += IndicatorBonus * float64(patterns.CountMatching(patterns.SectionIndicators[name], content))
	if len(strings.Fields(content)) > LongContentMinWords {
		score += LongContentBonus
	}
	score = math.Max(0, math.Min(1, score))
	return math.Round(score*100) / 100
}
