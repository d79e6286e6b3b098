package facts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractEducation(t *testing.T) {
	tests := []struct {
		name     string
		section  string
		fullText string
		want     []string
	}{
		{
			name:    "keyword lines from section",
			section: "Bachelor of Science in Computer Science, State University, 2016\nDean's list twice",
			want:    []string{"Bachelor of Science in Computer Science, State University, 2016"},
		},
		{
			name:    "bullets stripped",
			section: "- Master of Arts, City College\n- Bachelor of Arts, City College",
			want:    []string{"Master of Arts, City College", "Bachelor of Arts, City College"},
		},
		{
			name:    "no keyword falls back to all section lines",
			section: "MIT, 2012\n\nStanford, 2014",
			want:    []string{"MIT, 2012", "Stanford, 2014"},
		},
		{
			name:     "no section scans full text",
			fullText: "Engineer at Acme\nGraduated from Ohio State University in 2010\nLikes hiking",
			want:     []string{"Graduated from Ohio State University in 2010"},
		},
		{
			name:     "nothing found",
			fullText: "Engineer at Acme",
			want:     nil,
		},
		{
			name:    "duplicates collapsed",
			section: "Diploma, Tech School\nDiploma, Tech School",
			want:    []string{"Diploma, Tech School"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractEducation(tt.section, tt.fullText))
		})
	}
}
