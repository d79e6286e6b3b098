package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-extractor/internal/types"
)

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func TestCheckInput_Empty(t *testing.T) {
	report, err := CheckInput("", "", DefaultRules())

	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, ReasonEmpty, inputErr.Reason)
	assert.False(t, report.IsValid)
	assert.NotEmpty(t, report.Errors)
}

func TestCheckInput_TooShort(t *testing.T) {
	report, err := CheckInput(words(49), words(49), DefaultRules())

	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, ReasonTooShort, inputErr.Reason)
	assert.False(t, report.IsValid)
	assert.Equal(t, 49, report.Stats.WordCount)
	assert.Contains(t, report.Errors[0], "49 words")
}

func TestCheckInput_Valid(t *testing.T) {
	text := words(50)
	report, err := CheckInput(text, text, DefaultRules())

	require.NoError(t, err)
	assert.True(t, report.IsValid)
	assert.Empty(t, report.Warnings)
	assert.Empty(t, report.Errors)
	assert.Equal(t, 50, report.Stats.WordCount)
	assert.Equal(t, 1, report.Stats.LineCount)
	assert.Equal(t, len(text), report.Stats.CharCount)
}

func TestCheckInput_TripleNewlines(t *testing.T) {
	raw := strings.Repeat(words(10)+"\n\n\n", 6)

	report, err := CheckInput(raw, words(60), DefaultRules())
	require.NoError(t, err)
	require.Len(t, report.Warnings, 1)
	assert.Contains(t, report.Warnings[0], "6 triple newlines")

	atLimit := strings.Repeat(words(10)+"\n\n\n", 5)
	report, err = CheckInput(atLimit, words(60), DefaultRules())
	require.NoError(t, err)
	assert.Empty(t, report.Warnings)
}

func TestCheckInput_NonASCII(t *testing.T) {
	text := words(50) + " Résumé naïve"
	report, err := CheckInput(text, text, DefaultRules())

	require.NoError(t, err)
	require.Len(t, report.Warnings, 1)
	assert.Equal(t, "non-ASCII characters found: é ï", report.Warnings[0])
}

func TestCheckInput_NonASCIIScansRawText(t *testing.T) {
	raw := words(50) + " “quoted” – • item"
	normalized := words(50) + ` "quoted" - - item`

	report, err := CheckInput(raw, normalized, DefaultRules())

	require.NoError(t, err)
	require.Len(t, report.Warnings, 1)
	assert.Equal(t, "non-ASCII characters found: – “ ” •", report.Warnings[0])
}

func TestCheckInput_CustomRules(t *testing.T) {
	_, err := CheckInput("a b c", "a b c", Rules{MinWords: 3, MaxTripleNewlines: 5})
	assert.NoError(t, err)
}

func TestCheckResult(t *testing.T) {
	report := types.ValidationReport{IsValid: true, Warnings: []string{}, Errors: []string{}}
	result := &types.ExtractionResult{
		Sections: []types.Section{
			{Name: types.SectionExperience, Confidence: 0.8},
			{Name: types.SectionSummary, Confidence: 0.5},
		},
	}

	CheckResult(&report, result, DefaultRules())

	assert.True(t, report.IsValid)
	assert.Contains(t, report.Warnings, "missing required section: education")
	assert.Contains(t, report.Warnings, "missing required section: skills")
	assert.NotContains(t, report.Warnings, "missing required section: experience")
	assert.Contains(t, report.Warnings, "low confidence for section summary (0.50)")
	assert.Contains(t, report.Warnings, "no skills found")
	assert.Contains(t, report.Warnings, "no education entries found")
	assert.Contains(t, report.Warnings, "current role could not be determined")
	assert.Contains(t, report.Warnings, "years of experience could not be determined")
	assert.Equal(t, 2, report.Stats.SectionCount)
}

func TestCheckResult_Complete(t *testing.T) {
	report := types.ValidationReport{IsValid: true, Warnings: []string{}, Errors: []string{}}
	result := &types.ExtractionResult{
		Sections: []types.Section{
			{Name: types.SectionExperience, Confidence: 0.8},
			{Name: types.SectionEducation, Confidence: 0.7},
			{Name: types.SectionSkills, Confidence: 0.6},
		},
		Skills:         []types.SkillRecord{{Name: "python"}},
		Education:      []string{"Bachelor of Science"},
		WorkExperience: []types.WorkExperienceEntry{{Title: "Engineer"}},
		CurrentRole:    types.RoleFact{Role: "Engineer", Confidence: 0.9},
		Experience:     types.ExperienceFact{Years: "5", Confidence: 0.9},
	}

	CheckResult(&report, result, DefaultRules())

	assert.Empty(t, report.Warnings)
	assert.Equal(t, types.ValidationStats{SectionCount: 3, SkillCount: 1, EducationCount: 1, ExperienceCount: 1}, report.Stats)
}

func TestNonASCII(t *testing.T) {
	assert.Empty(t, NonASCII("plain ascii"))
	assert.Equal(t, []string{"é", "🚀"}, NonASCII("é é 🚀"))
}
