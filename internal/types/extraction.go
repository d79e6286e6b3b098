// Package types provides type definitions for structured data used throughout the resume-extractor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "sort"

// SectionName identifies a labeled span of resume text
type SectionName string

// Section names, in the order header patterns are tested
const (
	SectionSummary        SectionName = "summary"
	SectionExperience     SectionName = "experience"
	SectionEducation      SectionName = "education"
	SectionSkills         SectionName = "skills"
	SectionProjects       SectionName = "projects"
	SectionCertifications SectionName = "certifications"
)

// SectionOrder is the fixed tie-break order for header matching.
var SectionOrder = []SectionName{
	SectionSummary,
	SectionExperience,
	SectionEducation,
	SectionSkills,
	SectionProjects,
	SectionCertifications,
}

// RequiredSections are the sections whose absence is reported as a warning.
var RequiredSections = []SectionName{
	SectionEducation,
	SectionExperience,
	SectionSkills,
}

// Section is a contiguous, labeled span of normalized resume text.
// Lines are zero-based; the range is [StartLine, EndLine).
type Section struct {
	Name       SectionName `json:"name"`
	Content    string      `json:"content"`
	StartLine  int         `json:"start_line"`
	EndLine    int         `json:"end_line"`
	Confidence float64     `json:"confidence"`
}

// Sections maps section names to the segment found for each
type Sections map[SectionName]Section

// Clone returns a shallow copy so cached maps are never shared with callers.
func (s Sections) Clone() Sections {
	out := make(Sections, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Ordered returns the sections in document order.
func (s Sections) Ordered() []Section {
	out := make([]Section, 0, len(s))
	for _, sec := range s {
		out = append(out, sec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartLine < out[j].StartLine })
	return out
}

// SkillCategory classifies an extracted skill
type SkillCategory string

// Skill categories
const (
	CategoryProgramming SkillCategory = "programming"
	CategoryDatabases   SkillCategory = "databases"
	CategoryCloud       SkillCategory = "cloud"
	CategoryTools       SkillCategory = "tools"
	CategorySoft        SkillCategory = "soft"
	CategoryUnknown     SkillCategory = "unknown"
)

// IsTechnical reports whether the category counts as a technical skill
func (c SkillCategory) IsTechnical() bool {
	switch c {
	case CategoryProgramming, CategoryDatabases, CategoryCloud, CategoryTools:
		return true
	}
	return false
}

// SkillContext holds the line a skill was found on and its neighbours
type SkillContext struct {
	Line   string `json:"line"`
	Before string `json:"before,omitempty"`
	After  string `json:"after,omitempty"`
}

// SkillRecord is a single validated skill
type SkillRecord struct {
	Name       string        `json:"name"`
	Category   SkillCategory `json:"category"`
	Confidence float64       `json:"confidence"`
	Context    SkillContext  `json:"context"`
}

// ProfileType distinguishes students from working professionals
type ProfileType string

// Profile types
const (
	ProfileStudent      ProfileType = "student"
	ProfileProfessional ProfileType = "professional"
)

// RoleFact is the detected current role
type RoleFact struct {
	Role         string  `json:"role"`
	Organization string  `json:"organization"`
	Confidence   float64 `json:"confidence"`
	Source       string  `json:"source,omitempty"` // pattern name, "student_default" or "text_generator"
}

// ExperienceFact is the detected years of experience
type ExperienceFact struct {
	Years       string      `json:"years"`
	Confidence  float64     `json:"confidence"`
	Type        ProfileType `json:"type"`
	Internships int         `json:"internships,omitempty"`
}

// WorkExperienceEntry is one formatted position from the experience section
type WorkExperienceEntry struct {
	Dates       string   `json:"dates"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Description []string `json:"description"`
	StartYear   int      `json:"start_year,omitempty"`
	EndYear     int      `json:"end_year,omitempty"`
}

// ValidationStats summarizes the processed document
type ValidationStats struct {
	CharCount       int `json:"char_count"`
	WordCount       int `json:"word_count"`
	LineCount       int `json:"line_count"`
	SectionCount    int `json:"section_count"`
	SkillCount      int `json:"skill_count"`
	EducationCount  int `json:"education_count"`
	ExperienceCount int `json:"experience_count"`
}

// ValidationReport is the only channel for surfacing quality issues
type ValidationReport struct {
	IsValid  bool            `json:"is_valid"`
	Warnings []string        `json:"warnings"`
	Errors   []string        `json:"errors"`
	Stats    ValidationStats `json:"stats"`
}

// ExtractionResult is the engine's single output
type ExtractionResult struct {
	Sections             []Section             `json:"sections"`
	Skills               []SkillRecord         `json:"skills"`
	Education            []string              `json:"education"`
	WorkExperience       []WorkExperienceEntry `json:"work_experience"`
	TotalYearsExperience int                   `json:"total_years_experience"`
	IsStudent            bool                  `json:"is_student"`
	CurrentRole          RoleFact              `json:"current_role"`
	Experience           ExperienceFact        `json:"experience"`
	Validation           ValidationReport      `json:"validation"`
}
