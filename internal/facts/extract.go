// Package facts extracts the current role and years of experience from
// normalized resume text using ordered, first-match-wins pattern chains.
package facts

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/resume-extractor/internal/patterns"
	"github.com/jonathan/resume-extractor/internal/types"
)

// Fixed confidences
const (
	PatternConfidence           = 0.9
	StudentRoleConfidence       = 0.8
	StudentExperienceConfidence = 0.8
)

// Role sources that are not pattern names
const (
	SourceStudentDefault = "student_default"
	StudentRole          = "Student"
)

// Extractor holds the clock used to resolve "since YYYY" phrasing
type Extractor struct {
	now func() time.Time
}

// NewExtractor creates an Extractor. A nil clock uses time.Now.
func NewExtractor(now func() time.Time) *Extractor {
	if now == nil {
		now = time.Now
	}
	return &Extractor{now: now}
}

// IsStudent reports whether text reads as a student profile: at least one
// student indicator and no open-ended professional date range.
func IsStudent(text string) bool {
	if !patterns.AnyMatch(patterns.StudentIndicators, text) {
		return false
	}
	return !patterns.ExperienceRangePresent.MatchString(text)
}

// ExtractRole runs the role chain. Students without a pattern hit get the
// "Student" role and, when found, their institution. Nothing found is not
// an error: the returned fact has an empty role and zero confidence.
func (e *Extractor) ExtractRole(text string, isStudent bool) types.RoleFact {
	for _, p := range patterns.RoleChain {
		m := p.Re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		role := cleanField(m[1])
		if role == "" {
			continue
		}
		org := ""
		if len(m) > 2 {
			org = cleanField(m[2])
		}
		return types.RoleFact{Role: role, Organization: org, Confidence: PatternConfidence, Source: p.Name}
	}

	if isStudent {
		return types.RoleFact{
			Role:         StudentRole,
			Organization: e.institution(text),
			Confidence:   StudentRoleConfidence,
			Source:       SourceStudentDefault,
		}
	}
	return types.RoleFact{}
}

func (e *Extractor) institution(text string) string {
	for _, p := range patterns.InstitutionChain {
		if m := p.Re.FindStringSubmatch(text); m != nil {
			if inst := cleanField(m[1]); inst != "" {
				return inst
			}
		}
	}
	return ""
}

// ExtractExperience runs the student or professional experience chain.
// Years is always numeric; "0" with zero confidence means nothing matched.
func (e *Extractor) ExtractExperience(text string, isStudent bool) types.ExperienceFact {
	if isStudent {
		return e.studentExperience(text)
	}
	return e.professionalExperience(text)
}

func (e *Extractor) professionalExperience(text string) types.ExperienceFact {
	fact := types.ExperienceFact{Years: "0", Type: types.ProfileProfessional}
	for _, p := range patterns.ProfessionalExperienceChain {
		m := p.Re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if p.Kind == patterns.KindSinceYear {
			n = e.now().Year() - n
			if n < 0 {
				continue
			}
		}
		fact.Years = strconv.Itoa(n)
		fact.Confidence = PatternConfidence
		return fact
	}
	return fact
}

func (e *Extractor) studentExperience(text string) types.ExperienceFact {
	fact := types.ExperienceFact{Years: "0", Type: types.ProfileStudent}
	for _, p := range patterns.StudentExperienceChain {
		m := p.Re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		switch p.Kind {
		case patterns.KindMonths:
			months, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			years := math.Round(float64(months)/12*10) / 10
			fact.Years = strconv.FormatFloat(years, 'f', -1, 64)
		case patterns.KindYears:
			if _, err := strconv.Atoi(m[1]); err != nil {
				continue
			}
			fact.Years = m[1]
		case patterns.KindCount:
			n, ok := patterns.NumberWords[strings.ToLower(m[1])]
			if !ok {
				var err error
				if n, err = strconv.Atoi(m[1]); err != nil {
					continue
				}
			}
			fact.Internships = n
		}
		fact.Confidence = StudentExperienceConfidence
		return fact
	}
	return fact
}

// cleanField trims whitespace and trailing separators from a captured group
func cleanField(s string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(s), ",;:|-"))
}
