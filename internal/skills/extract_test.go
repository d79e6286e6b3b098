package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-extractor/internal/cache"
	"github.com/jonathan/resume-extractor/internal/types"
)

const cleanResume = "EXPERIENCE\nSenior Engineer at Acme Corp\n2020 - Present\nBuilt scalable systems.\n\n" +
	"SKILLS\n- Python\n- AWS\n- Leadership\n\n" +
	"EDUCATION\nBachelor of Science in Computer Science, State University, 2016"

const contextualText = "Proficient in Python, Kafka and C++.\nFamiliar with Rust\nExperience with the Docker; k8s"

func byName(records []types.SkillRecord) map[string]types.SkillRecord {
	out := make(map[string]types.SkillRecord, len(records))
	for _, r := range records {
		out[r.Name] = r
	}
	return out
}

func TestExtract_CleanResume(t *testing.T) {
	got := NewExtractor(nil).Extract(cleanResume)

	require.Equal(t, []string{"aws", "leadership", "python"}, Names(got))

	skills := byName(got)
	assert.Equal(t, types.CategorySoft, skills["leadership"].Category)
	assert.GreaterOrEqual(t, skills["leadership"].Confidence, 0.4)

	assert.True(t, skills["python"].Category.IsTechnical())
	assert.GreaterOrEqual(t, skills["python"].Confidence, 0.7)
	assert.True(t, skills["aws"].Category.IsTechnical())
	assert.GreaterOrEqual(t, skills["aws"].Confidence, 0.7)
}

func TestExtractDirect_Context(t *testing.T) {
	got := NewExtractor(nil).ExtractDirect("Intro\nUses Python daily\nOutro")

	require.Len(t, got, 1)
	assert.Equal(t, "python", got[0].Name)
	assert.Equal(t, types.CategoryProgramming, got[0].Category)
	assert.Equal(t, types.SkillContext{Line: "Uses Python daily", Before: "Intro", After: "Outro"}, got[0].Context)
}

func TestExtractDirect_SymbolTerms(t *testing.T) {
	got := NewExtractor(nil).ExtractDirect("Languages: C++, C#, .NET and Node.js; Spring Boot")

	assert.Equal(t, []string{".net", "c#", "c++", "node.js", "spring boot"}, Names(got))
}

func TestExtractDirect_WholeTokensOnly(t *testing.T) {
	got := NewExtractor(nil).ExtractDirect("The reactor handled javascripted payloads")
	assert.Empty(t, got)
}

func TestExtractContextual(t *testing.T) {
	got := NewExtractor(nil).ExtractContextual(contextualText)

	assert.Equal(t, []string{"python", "c++", "rust"}, Names(got[types.CategoryProgramming]))
	assert.Equal(t, []string{"kafka"}, Names(got[types.CategoryUnknown]))
	assert.Equal(t, []string{"docker", "kubernetes"}, Names(got[types.CategoryCloud]))

	prog := byName(got[types.CategoryProgramming])
	assert.InDelta(t, 0.9, prog["python"].Confidence, 1e-9)
	assert.InDelta(t, 0.6, prog["rust"].Confidence, 1e-9)
	assert.InDelta(t, 0.7, byName(got[types.CategoryUnknown])["kafka"].Confidence, 1e-9)
	assert.InDelta(t, 0.8, byName(got[types.CategoryCloud])["kubernetes"].Confidence, 1e-9)
}

func TestExtractContextual_DiscardsShortAndFunctionWords(t *testing.T) {
	got := NewExtractor(nil).ExtractContextual("Knowledge of go, R, and etc")
	assert.Empty(t, got)
}

func TestExtractContextual_DiscardsSentenceFragments(t *testing.T) {
	got := NewExtractor(nil).ExtractContextual("Experience with building highly available payment systems at scale")
	assert.Empty(t, got)
}

func TestExtract_MergesStrategies(t *testing.T) {
	got := byName(NewExtractor(nil).Extract(contextualText))

	assert.Len(t, got, 6)
	assert.InDelta(t, 0.9, got["c++"].Confidence, 1e-9)
	assert.InDelta(t, 0.8, got["docker"].Confidence, 1e-9)
	assert.Equal(t, types.CategoryUnknown, got["kafka"].Category)
}

func TestExtract_AllConfidencesBounded(t *testing.T) {
	text := cleanResume + "\n" + contextualText + "\nBasic understanding of Teamwork and Communication"
	for _, rec := range NewExtractor(nil).Extract(text) {
		assert.GreaterOrEqual(t, rec.Confidence, 0.0, rec.Name)
		assert.LessOrEqual(t, rec.Confidence, 1.0, rec.Name)
		assert.True(t, IsValid(rec.Name), rec.Name)
	}
}

func TestExtract_Deterministic(t *testing.T) {
	e := NewExtractor(nil)
	assert.Equal(t, e.Extract(contextualText), e.Extract(contextualText))
}

func TestConfidence_Cached(t *testing.T) {
	c := cache.NewFIFO[ConfidenceKey, float64](50)
	e := NewExtractor(c)

	first := e.Confidence("python", "Proficient in Python", types.CategoryProgramming)
	second := e.Confidence("python", "Proficient in Python", types.CategoryProgramming)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, e.CacheStats().Hits)
	assert.Equal(t, 1, c.Len())
}

func TestScoreConfidence(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		category types.SkillCategory
		expected float64
	}{
		{"technical base", "- Python", types.CategoryProgramming, 0.7},
		{"soft base", "- Leadership", types.CategorySoft, 0.4},
		{"unknown base", "- Kafka", types.CategoryUnknown, 0.5},
		{"strong", "Expert in Go and Python", types.CategoryProgramming, 0.9},
		{"medium", "Experience with Docker", types.CategoryCloud, 0.8},
		{"weak", "Familiar with Rust", types.CategoryProgramming, 0.6},
		{"strong wins over weak", "Proficient in Java, familiar with Scala", types.CategoryProgramming, 0.9},
		{"medium wins over weak", "Knowledge of SQL, basic understanding of R", types.CategoryDatabases, 0.8},
		{"soft weak", "Basic understanding of negotiation", types.CategorySoft, 0.3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, scoreConfidence(tt.line, tt.category), 1e-9)
		})
	}
}

func TestMerge_KeepsMaxConfidence(t *testing.T) {
	low := []types.SkillRecord{{Name: "sql", Category: types.CategoryUnknown, Confidence: 0.5}}
	high := []types.SkillRecord{{Name: "sql", Category: types.CategoryDatabases, Confidence: 0.8}}

	got := Merge(low, high)

	require.Len(t, got, 1)
	assert.InDelta(t, 0.8, got[0].Confidence, 1e-9)
	assert.Equal(t, types.CategoryDatabases, got[0].Category)
}

func TestMerge_TieKeepsFirst(t *testing.T) {
	got := Merge(
		[]types.SkillRecord{{Name: "git", Category: types.CategoryTools, Confidence: 0.7}},
		[]types.SkillRecord{{Name: "git", Category: types.CategoryUnknown, Confidence: 0.7}},
	)

	require.Len(t, got, 1)
	assert.Equal(t, types.CategoryTools, got[0].Category)
}

func TestCategorize(t *testing.T) {
	assert.Equal(t, types.CategoryDatabases, Categorize("postgresql"))
	assert.Equal(t, types.CategorySoft, Categorize("time management"))
	assert.Equal(t, types.CategoryUnknown, Categorize("kafka"))
}
