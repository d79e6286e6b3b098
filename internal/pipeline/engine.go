// Package pipeline orchestrates resume extraction: normalization, section
// segmentation, skill and fact extraction, work-entry formatting and the
// validation report.
package pipeline

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/resume-extractor/internal/cache"
	"github.com/jonathan/resume-extractor/internal/config"
	"github.com/jonathan/resume-extractor/internal/experience"
	"github.com/jonathan/resume-extractor/internal/facts"
	"github.com/jonathan/resume-extractor/internal/ingestion"
	"github.com/jonathan/resume-extractor/internal/llm"
	"github.com/jonathan/resume-extractor/internal/logging"
	"github.com/jonathan/resume-extractor/internal/sections"
	"github.com/jonathan/resume-extractor/internal/skills"
	"github.com/jonathan/resume-extractor/internal/types"
	"github.com/jonathan/resume-extractor/internal/validation"
)

// Options configures an Engine. Zero values fall back to the defaults.
type Options struct {
	MinWords               int
	MaxTripleNewlines      int
	LowConfidenceThreshold float64
	CacheSize              int

	// Generator is consulted only when no role pattern matches. Nil disables the fallback.
	Generator llm.TextGenerator
	Logger    *zap.Logger
	// Now resolves open date ranges and "since YYYY" phrasing
	Now func() time.Time
}

// OptionsFromConfig maps configuration onto engine options. The generator,
// logger and clock are left for the caller.
func OptionsFromConfig(cfg config.Config) Options {
	return Options{
		MinWords:               cfg.MinWords,
		MaxTripleNewlines:      cfg.MaxTripleNewlines,
		LowConfidenceThreshold: cfg.LowConfidenceThreshold,
		CacheSize:              cfg.CacheSize,
	}
}

// Engine turns raw resume text into an ExtractionResult. Its caches are
// mutex-guarded, so one Engine may serve concurrent Process calls.
type Engine struct {
	segmenter *sections.Segmenter
	skills    *skills.Extractor
	facts     *facts.Extractor
	rules     validation.Rules
	generator llm.TextGenerator
	logger    *zap.Logger
	now       func() time.Time
}

// NewEngine builds an Engine from opts
func NewEngine(opts Options) *Engine {
	rules := validation.DefaultRules()
	if opts.MinWords > 0 {
		rules.MinWords = opts.MinWords
	}
	if opts.MaxTripleNewlines > 0 {
		rules.MaxTripleNewlines = opts.MaxTripleNewlines
	}
	if opts.LowConfidenceThreshold > 0 {
		rules.LowConfidenceThreshold = opts.LowConfidenceThreshold
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &Engine{
		segmenter: sections.NewSegmenter(cache.NewFIFO[string, types.Sections](opts.CacheSize)),
		skills:    skills.NewExtractor(cache.NewFIFO[skills.ConfidenceKey, float64](opts.CacheSize)),
		facts:     facts.NewExtractor(now),
		rules:     rules,
		generator: opts.Generator,
		logger:    logging.OrNop(opts.Logger),
		now:       now,
	}
}

// CacheStats reports the segmentation and skill-confidence cache counters
func (e *Engine) CacheStats() map[string]cache.Stats {
	return map[string]cache.Stats{
		"sections":         e.segmenter.CacheStats(),
		"skill_confidence": e.skills.CacheStats(),
	}
}

// Process extracts structured data from raw text. A result is always
// returned. Empty input and input below the minimum word count also return
// an *InputError, and the result's report is invalid.
func (e *Engine) Process(ctx context.Context, raw string) (*types.ExtractionResult, error) {
	normalized := ingestion.Normalize(raw)
	result := emptyResult()

	report, err := validation.CheckInput(raw, normalized, e.rules)
	if err != nil {
		e.logger.Info("input rejected", zap.Error(err))
		result.Validation = report
		return result, err
	}

	segments := e.segmenter.Segment(normalized)
	result.Sections = segments.Ordered()
	e.logger.Debug("sections segmented", zap.Int("count", len(result.Sections)))

	if found := e.skills.Extract(normalized); len(found) > 0 {
		result.Skills = found
	}
	e.logger.Debug("skills extracted", zap.Int("count", len(result.Skills)))

	result.IsStudent = facts.IsStudent(normalized)
	result.CurrentRole = e.facts.ExtractRole(normalized, result.IsStudent)
	if result.CurrentRole.Role == "" && e.generator != nil {
		result.CurrentRole = e.fallbackRole(ctx, normalized)
	}
	result.Experience = e.facts.ExtractExperience(normalized, result.IsStudent)
	e.logger.Debug("facts extracted",
		zap.String("role", result.CurrentRole.Role),
		zap.String("role_source", result.CurrentRole.Source),
		zap.String("years", result.Experience.Years),
		zap.Bool("student", result.IsStudent))

	if edu := facts.ExtractEducation(segments[types.SectionEducation].Content, normalized); len(edu) > 0 {
		result.Education = edu
	}
	if entries := experience.FormatEntries(segments[types.SectionExperience].Content, e.now().Year()); len(entries) > 0 {
		result.WorkExperience = entries
	}
	result.TotalYearsExperience = experience.TotalYears(result.WorkExperience)

	validation.CheckResult(&report, result, e.rules)
	result.Validation = report
	e.logger.Debug("extraction complete", zap.Int("warnings", len(report.Warnings)))
	return result, nil
}

// emptyResult has non-nil slices so the JSON form never carries nulls
func emptyResult() *types.ExtractionResult {
	return &types.ExtractionResult{
		Sections:       []types.Section{},
		Skills:         []types.SkillRecord{},
		Education:      []string{},
		WorkExperience: []types.WorkExperienceEntry{},
		Experience:     types.ExperienceFact{Years: "0", Type: types.ProfileProfessional},
	}
}
