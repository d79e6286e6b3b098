package skills

import (
	"math"

	"github.com/jonathan/resume-extractor/internal/cache"
	"github.com/jonathan/resume-extractor/internal/patterns"
	"github.com/jonathan/resume-extractor/internal/types"
)

// Base confidences by category
const (
	baseTechnical = 0.7
	baseSoft      = 0.4
	baseOther     = 0.5

	strongBonus = 0.2
	mediumBonus = 0.1
	weakPenalty = -0.1
)

// ConfidenceKey identifies a memoized confidence score
type ConfidenceKey struct {
	Skill    string
	LineHash string
	Category types.SkillCategory
}

// Confidence scores skill as found on line. The indicator checks are
// exclusive and evaluated strong, medium, weak; the first hit wins.
func (e *Extractor) Confidence(skill, line string, category types.SkillCategory) float64 {
	key := ConfidenceKey{Skill: skill, LineHash: cache.HashText(line), Category: category}
	if score, ok := e.confidence.Get(key); ok {
		return score
	}
	score := scoreConfidence(line, category)
	e.confidence.Put(key, score)
	return score
}

func scoreConfidence(line string, category types.SkillCategory) float64 {
	score := baseOther
	switch {
	case category.IsTechnical():
		score = baseTechnical
	case category == types.CategorySoft:
		score = baseSoft
	}

	switch {
	case patterns.StrongIndicator.MatchString(line):
		score += strongBonus
	case patterns.MediumIndicator.MatchString(line):
		score += mediumBonus
	case patterns.WeakIndicator.MatchString(line):
		score += weakPenalty
	}

	score = math.Max(0, math.Min(1, score))
	return math.Round(score*100) / 100
}
