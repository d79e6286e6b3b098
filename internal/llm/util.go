package llm

import "strings"

// CleanJSONBlock strips markdown fences and any conversational preamble or
// trailer around the first JSON object in a model reply. Replies without a
// JSON object are returned trimmed.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		// Skip a language identifier on the fence line
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := text[:idx]
			if len(firstLine) < 20 && !strings.Contains(firstLine, " ") && !strings.Contains(firstLine, "{") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	}

	if start := strings.Index(text, "{"); start >= 0 {
		if obj := extractJSONObject(text[start:]); obj != "" {
			return obj
		}
	}
	return text
}

// extractJSONObject returns the balanced {...} prefix of text, honoring
// string literals and escapes. Returns "" when text does not start with '{'
// or the braces never balance.
func extractJSONObject(text string) string {
	if !strings.HasPrefix(text, "{") {
		return ""
	}
	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return text[:i+1]
			}
		}
	}
	return ""
}
