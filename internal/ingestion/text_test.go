package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_EmptyInput(t *testing.T) {
	assert.Empty(t, Normalize(""))
}

func TestNormalize_OnlyWhitespace(t *testing.T) {
	assert.Empty(t, Normalize("   \n  \n\t  "))
}

func TestNormalize_NormalizeLineEndings(t *testing.T) {
	result := Normalize("Line 1\r\nLine 2\rLine 3\nLine 4")

	assert.NotContains(t, result, "\r")
	assert.Equal(t, "Line 1\nLine 2\nLine 3\nLine 4", result)
}

func TestNormalize_CollapsesWhitespace(t *testing.T) {
	result := Normalize("  Line    with \t  multiple    spaces  ")
	assert.Equal(t, "Line with multiple spaces", result)
}

func TestNormalize_RemoveExcessiveBlankLines(t *testing.T) {
	result := Normalize("Line 1\n\n\n\n\nLine 2")
	assert.Equal(t, "Line 1\n\nLine 2", result)
}

func TestNormalize_BlankLinesWithSpaces(t *testing.T) {
	result := Normalize("Line 1\n   \n \t \n  \nLine 2")
	assert.Equal(t, "Line 1\n\nLine 2", result)
}

func TestNormalize_CharacterSubstitution(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"en dash", "2019 – 2021", "2019 - 2021"},
		{"em dash", "Engineer—Acme", "Engineer-Acme"},
		{"smart single quotes", "it’s ‘fine’", "it's 'fine'"},
		{"smart double quotes", "“quoted”", `"quoted"`},
		{"bullet", "• Built APIs", "- Built APIs"},
		{"bullet without space", "•Built APIs", "- Built APIs"},
		{"pdf symbol bullet", "\uf0b7 Built APIs", "- Built APIs"},
		{"ligature", "eﬃcient ﬁles", "efficient files"},
		{"non-breaking space", "Python\u00a0Developer", "Python Developer"},
		{"zero width", "Py\u200bthon", "Python"},
		{"ellipsis", "and more…", "and more..."},
		{"full width", "ＡＢＣ", "ABC"},
		{"control characters", "Py\x00th\x07on", "Python"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalize_Canonicalization(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"short month", "Jan 2020", "01/2020"},
		{"long month", "September 2018 - March 2021", "09/2018 - 03/2021"},
		{"month with period", "Sept. 2019", "09/2019"},
		{"month with comma", "Dec, 2022", "12/2022"},
		{"month without year untouched", "I may join in March", "I may join in March"},
		{"b.tech", "B.Tech in Computer Science", "Bachelor of Technology in Computer Science"},
		{"btech", "BTech, 2020", "Bachelor of Technology, 2020"},
		{"m.sc", "M.Sc. Physics", "Master of Science Physics"},
		{"b.s.", "B.S. in Math", "Bachelor of Science in Math"},
		{"phd", "PhD in Biology", "Doctor of Philosophy in Biology"},
		{"ph.d.", "Ph.D. candidate", "Doctor of Philosophy candidate"},
		{"mba", "MBA, Finance", "Master of Business Administration, Finance"},
		{"b.e.", "B.E. Mechanical", "Bachelor of Engineering Mechanical"},
		{"senior", "Sr. Software Engineer", "Senior Software Engineer"},
		{"junior", "Jr Developer", "Junior Developer"},
		{"manager", "Eng. Mgr. at Acme", "Eng. Manager at Acme"},
		{"vice president", "VP of Sales", "Vice President of Sales"},
		{"senior vice president", "SVP Operations", "Senior Vice President Operations"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalize_PreservesStructure(t *testing.T) {
	input := "# Title\n## Subtitle\n- Item 1\n* Item 2\nContent here"
	assert.Equal(t, input, Normalize(input))
}

func TestNormalize_SpecialCharacters(t *testing.T) {
	result := Normalize("Résumé of José 🚀")
	assert.Equal(t, "Résumé of José 🚀", result)
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"Sr. Engineer at Acme\r\n\r\n\r\n• Jan 2020 – Present",
		"B.Tech. M.Sc. PhD MBA B.E. B.A. Jr. Mgr. Asst. VP SVP Engr.",
		"“Quotes” and ‘apostrophes’ … ﬁ\u00a0\u200b",
		"   EXPERIENCE   \n\n\n\n  Senior   Engineer\t\t Acme  \n",
		"Sept. 2019 to Mar 2021\nmay 2020",
		"•   •  bullets   ◦ nested",
		"ＦＵＬＬ width and ① circled",
		"Sr.\u0301 Engineer",
		"B.Tech\u0301",
		"Mgr.\u0301\u0301 at Jan\u0301 2020",
		"PhD\u0308 and MBA\u0327",
	}

	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestNormalize_Deterministic(t *testing.T) {
	input := "Test content   with   spaces\n\n\nMultiple   blank   lines"
	assert.Equal(t, Normalize(input), Normalize(input))
}

func TestStripBullet(t *testing.T) {
	assert.Equal(t, "Built APIs", StripBullet("- Built APIs"))
	assert.Equal(t, "Built APIs", StripBullet("  * Built APIs "))
	assert.Equal(t, "No bullet", StripBullet("No bullet"))
	assert.Equal(t, "-dash", StripBullet("-dash"))
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, 0, WordCount(""))
	assert.Equal(t, 0, WordCount("  \n "))
	assert.Equal(t, 4, WordCount("one two\nthree\tfour"))
}

func TestNormalize_CombiningMarkAfterExpansion(t *testing.T) {
	got := Normalize("Sr.\u0301 Engineer")

	assert.Equal(t, "Senio\u0155 Engineer", got)
	assert.Equal(t, got, Normalize(got))
}
