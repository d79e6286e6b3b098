package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"json code block", "```json\n{\"role\": \"Engineer\"}\n```", `{"role": "Engineer"}`},
		{"generic code block", "```\n{\"role\": \"Engineer\"}\n```", `{"role": "Engineer"}`},
		{"plain JSON", `{"role": "Engineer"}`, `{"role": "Engineer"}`},
		{"preamble", "Here is the answer:\n{\"role\": \"Analyst\"}", `{"role": "Analyst"}`},
		{"trailing text", "{\"role\": \"Analyst\"}\n\nHope this helps!", `{"role": "Analyst"}`},
		{"braces in string", `{"role": "Lead {platform}"}`, `{"role": "Lead {platform}"}`},
		{"escaped quotes", `Result: {"role": "The \"Boss\""}`, `{"role": "The \"Boss\""}`},
		{"no JSON", "  Senior Engineer  ", "Senior Engineer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}

func TestExtractJSONObject(t *testing.T) {
	assert.Equal(t, `{"a": {"b": 1}}`, extractJSONObject(`{"a": {"b": 1}} tail`))
	assert.Empty(t, extractJSONObject("not json"))
	assert.Empty(t, extractJSONObject(`{"unbalanced": 1`))
	assert.Empty(t, extractJSONObject(""))
}
