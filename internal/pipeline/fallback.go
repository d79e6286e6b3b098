package pipeline

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-extractor/internal/llm"
	"github.com/jonathan/resume-extractor/internal/logging"
	"github.com/jonathan/resume-extractor/internal/prompts"
	"github.com/jonathan/resume-extractor/internal/types"
)

// Role fallback constants
const (
	FallbackConfidence  = 0.5
	SourceTextGenerator = "text_generator"

	// maxPlainRoleWords bounds a role taken from a non-JSON reply
	maxPlainRoleWords = 8
	logPreviewLimit   = 200
)

// fallbackRole asks the generator for the current role. Every failure is
// logged and yields an empty role.
func (e *Engine) fallbackRole(ctx context.Context, text string) types.RoleFact {
	prompt, err := prompts.Render("extraction.json", "current_role", map[string]string{"Resume": text})
	if err != nil {
		e.logger.Warn("role fallback prompt unavailable", zap.Error(err))
		return types.RoleFact{}
	}

	reply, err := e.generator.Generate(ctx, prompt)
	if err != nil {
		e.logger.Warn("role fallback failed", zap.Error(err))
		return types.RoleFact{}
	}

	role, org := parseRoleReply(reply)
	if role == "" {
		e.logger.Warn("role fallback returned no role", zap.String("reply", logging.Truncate(reply, logPreviewLimit)))
		return types.RoleFact{}
	}
	e.logger.Debug("role from fallback", zap.String("role", role))
	return types.RoleFact{Role: role, Organization: org, Confidence: FallbackConfidence, Source: SourceTextGenerator}
}

// parseRoleReply reads {"role", "organization"} JSON, or failing that a
// short first line of plain text
func parseRoleReply(reply string) (role, organization string) {
	var parsed struct {
		Role         string `json:"role"`
		Organization string `json:"organization"`
	}
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(reply)), &parsed); err == nil {
		return strings.TrimSpace(parsed.Role), strings.TrimSpace(parsed.Organization)
	}

	for _, line := range strings.Split(reply, "\n") {
		line = strings.Trim(strings.TrimSpace(line), `"'.`+"`")
		if line == "" {
			continue
		}
		if len(strings.Fields(line)) > maxPlainRoleWords {
			return "", ""
		}
		return line, ""
	}
	return "", ""
}
