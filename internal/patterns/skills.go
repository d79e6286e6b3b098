package patterns

import (
	"regexp"

	"github.com/jonathan/resume-extractor/internal/types"
)

// CategoryOrder is the order direct extraction runs the category vocabularies
var CategoryOrder = []types.SkillCategory{
	types.CategoryProgramming,
	types.CategoryDatabases,
	types.CategoryCloud,
	types.CategoryTools,
	types.CategorySoft,
}

// SkillCategories maps each category to its vocabulary matcher.
// "go" and "r" are absent: both are denylisted.
var SkillCategories = map[types.SkillCategory]*TermMatcher{
	types.CategoryProgramming: NewTermMatcher([]string{
		"python", "java", "javascript", "typescript", "golang", "rust", "ruby", "php",
		"kotlin", "swift", "scala", "perl", "matlab", "c++", "c#", ".net", "objective-c",
		"dart", "haskell", "elixir", "lua", "html", "css", "bash", "shell scripting",
		"react", "angular", "vue", "node.js", "next.js", "express.js", "django", "flask",
		"fastapi", "spring boot", "spring framework", "ruby on rails", "flutter",
		"tensorflow", "pytorch", "pandas", "numpy", "scikit-learn", "graphql",
		"rest api", "restful", "microservices", "machine learning", "deep learning",
	}),
	types.CategoryDatabases: NewTermMatcher([]string{
		"sql", "mysql", "postgresql", "postgres", "mongodb", "redis", "sqlite", "oracle",
		"cassandra", "dynamodb", "elasticsearch", "mariadb", "neo4j", "snowflake",
		"bigquery", "firebase", "couchdb", "sql server", "nosql",
	}),
	types.CategoryCloud: NewTermMatcher([]string{
		"aws", "azure", "gcp", "google cloud", "docker", "kubernetes", "terraform",
		"ansible", "jenkins", "ci/cd", "heroku", "cloudformation", "openshift", "helm",
		"prometheus", "grafana", "github actions", "gitlab ci", "serverless", "devops",
	}),
	types.CategoryTools: NewTermMatcher([]string{
		"git", "github", "gitlab", "bitbucket", "jira", "confluence", "linux", "unix",
		"vim", "postman", "figma", "tableau", "power bi", "microsoft excel", "jupyter",
		"webpack", "maven", "gradle", "npm", "agile", "scrum", "kanban",
	}),
	types.CategorySoft: NewTermMatcher([]string{
		"leadership", "communication", "teamwork", "team work", "problem solving",
		"problem-solving", "critical thinking", "time management", "collaboration",
		"adaptability", "creativity", "mentoring", "public speaking", "negotiation",
		"decision making", "attention to detail", "project management",
		"interpersonal skills", "presentation skills", "conflict resolution",
		"emotional intelligence",
	}),
}

// SkillTriggers capture the span following phrases like "proficient in".
// Group 1 is the span, ending at a sentence break or end of line.
var SkillTriggers = []*regexp.Regexp{
	regexp.MustCompile(`(?im)\b(?:proficient\s+(?:in|with)|expert\s+in|expertise\s+in|skilled\s+in|(?:hands-on\s+)?experience\s+(?:with|in)|(?:working\s+|advanced\s+)?knowledge\s+of|familiar\s+with|basic\s+understanding\s+of|worked\s+with)\s+([^\n]+?)(?:\.(?:\s|$)|$)`),
}

// Confidence indicator tiers, evaluated strong -> medium -> weak
var (
	StrongIndicator = regexp.MustCompile(`(?i)\b(?:proficient\s+in|expert\s+in|expertise\s+in|advanced\s+knowledge\s+of|highly\s+skilled\s+in)\b`)
	MediumIndicator = regexp.MustCompile(`(?i)\b(?:experience\s+(?:with|in)|knowledge\s+of|skilled\s+in|worked\s+with)\b`)
	WeakIndicator   = regexp.MustCompile(`(?i)\b(?:familiar\s+with|basic\s+understanding|exposure\s+to|beginner)\b`)
)

// ContextualSplit separates candidate tokens in a captured trigger span
var ContextualSplit = regexp.MustCompile(`(?i)\s*(?:,|;|\band\b)\s*`)

// FunctionWords are discarded as contextual tokens
var FunctionWords = map[string]struct{}{
	"and": {}, "the": {}, "with": {}, "of": {}, "in": {}, "on": {}, "for": {}, "to": {},
	"a": {}, "an": {}, "or": {}, "etc": {}, "as": {}, "at": {}, "by": {}, "from": {},
	"including": {}, "such": {}, "like": {}, "various": {}, "other": {},
}

// SkillDenylist rejects stopwords, single letters and generic filler.
// "go" and "r" are rejected even though they name languages.
var SkillDenylist = func() map[string]struct{} {
	m := map[string]struct{}{}
	for c := 'a'; c <= 'z'; c++ {
		m[string(c)] = struct{}{}
	}
	for _, w := range []string{
		"go", "r", "etc", "etc.", "and", "the", "with", "for", "of", "in", "on", "to", "an",
		"or", "as", "at", "by", "using", "use", "various", "other", "others", "including",
		"skills", "skill", "experience", "knowledge", "tools", "technologies", "technology",
		"strong", "good", "excellent", "basic", "advanced", "working", "work", "familiar",
		"proficient", "understanding", "ability", "team", "years", "year", "some", "many",
		"more", "well", "also", "such", "things", "stuff", "misc", "n/a", "none",
	} {
		m[w] = struct{}{}
	}
	return m
}()

// SkillAllowlist holds short technical tokens that bypass the length check
var SkillAllowlist = map[string]struct{}{
	"c++": {}, "c#": {}, "f#": {}, "aws": {}, "gcp": {}, "ui": {}, "ux": {}, "qa": {},
	"ai": {}, "ml": {}, "sql": {}, "css": {}, "php": {}, "api": {}, "ios": {}, "git": {},
	".net": {},
}

// SkillAliases canonicalizes common variants before category lookup
var SkillAliases = map[string]string{
	"js":       "javascript",
	"ts":       "typescript",
	"k8s":      "kubernetes",
	"reactjs":  "react",
	"react.js": "react",
	"vuejs":    "vue",
	"vue.js":   "vue",
	"nodejs":   "node.js",
	"node":     "node.js",
	"postgres": "postgresql",
	"py":       "python",
	"sklearn":  "scikit-learn",

	"amazon web services":   "aws",
	"google cloud platform": "gcp",
}
