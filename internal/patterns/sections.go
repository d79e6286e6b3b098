package patterns

import (
	"regexp"

	"github.com/jonathan/resume-extractor/internal/types"
)

// headerLine wraps a title alternation so it only matches a whole line,
// tolerating markdown/decoration characters and a trailing colon.
func headerLine(titles string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)^[\s#*=_-]*(?:` + titles + `)[\s*=_-]*:?[\s*=_-]*$`)
}

// SectionHeaders lists header patterns per section. Segmentation tests
// sections in types.SectionOrder; the first section with a matching header wins.
var SectionHeaders = map[types.SectionName][]*regexp.Regexp{
	types.SectionSummary: {
		headerLine(`(?:professional\s+|career\s+|executive\s+)?summary`),
		headerLine(`(?:professional\s+|personal\s+)?profile`),
		headerLine(`(?:career\s+)?objective`),
		headerLine(`about\s+me`),
	},
	types.SectionExperience: {
		headerLine(`(?:(?:work|professional|relevant|industry|internship)\s+)?experience`),
		headerLine(`employment(?:\s+history)?`),
		headerLine(`(?:work|career|employment)\s+history`),
		headerLine(`internships?`),
	},
	types.SectionEducation: {
		headerLine(`education(?:al\s+background)?(?:\s*(?:&|and)\s*training)?`),
		headerLine(`academic\s+(?:background|qualifications|history)`),
		headerLine(`qualifications`),
	},
	types.SectionSkills: {
		headerLine(`(?:(?:technical|core|key|professional|relevant)\s+)?skills(?:\s*(?:&|and)\s*(?:tools|technologies|abilities|interests))?`),
		headerLine(`(?:core\s+)?competencies`),
		headerLine(`technologies|tech\s+stack|expertise`),
	},
	types.SectionProjects: {
		headerLine(`(?:(?:personal|academic|key|selected|side|notable)\s+)?projects`),
	},
	types.SectionCertifications: {
		headerLine(`certifications?|certificates`),
		headerLine(`licen[cs]es?\s*(?:&|and)\s*certifications?`),
		headerLine(`courses?(?:\s*(?:&|and)\s*certifications?)?`),
	},
}

// SectionIndicators raise confidence that a section's content belongs to it.
// They never switch sections.
var SectionIndicators = map[types.SectionName][]*regexp.Regexp{
	types.SectionSummary: {
		regexp.MustCompile(`(?i)\b(?:experienced|passionate|motivated|dedicated|results-driven|detail-oriented)\b`),
		regexp.MustCompile(`(?i)\b\d+\+?\s*years?\b`),
		regexp.MustCompile(`(?i)\b(?:seeking|looking\s+for|goal)\b`),
	},
	types.SectionExperience: {
		ExperienceRangePresent,
		regexp.MustCompile(`(?i)\b(?:19|20)\d{2}\s*(?:-|to)\s*(?:\d{2}/)?(?:19|20)\d{2}\b`),
		regexp.MustCompile(`(?i)\b(?:managed|developed|led|built|designed|implemented|delivered|improved)\b`),
		regexp.MustCompile(`(?i)\b(?:engineer|developer|manager|analyst|intern|consultant)s?\b`),
	},
	types.SectionEducation: {
		regexp.MustCompile(`(?i)\b(?:bachelor|master|doctor|associate)(?:'?s)?\b|\bdiploma\b`),
		regexp.MustCompile(`(?i)\b(?:university|college|institute|school|academy)\b`),
		regexp.MustCompile(`(?i)\b(?:gpa|cgpa|honou?rs|cum\s+laude|dean'?s\s+list)\b`),
		regexp.MustCompile(`(?i)\b(?:graduated|graduation|expected)\b`),
	},
	types.SectionSkills: {
		regexp.MustCompile(`(?m)^\s*-\s+\S`),
		regexp.MustCompile(`\w+\s*,\s*\w+`),
		regexp.MustCompile(`(?i)\b(?:proficient|familiar|experienced)\b`),
		regexp.MustCompile(`(?i)\b(?:languages|frameworks|tools|databases)\s*:`),
	},
	types.SectionProjects: {
		regexp.MustCompile(`(?i)\b(?:built|developed|created|implemented)\b`),
		regexp.MustCompile(`(?i)\b(?:github|gitlab|demo|repository)\b`),
		regexp.MustCompile(`(?i)\b(?:using|technologies|tech\s+stack)\b`),
	},
	types.SectionCertifications: {
		regexp.MustCompile(`(?i)\bcertifi(?:ed|cation|cate)s?\b`),
		regexp.MustCompile(`(?i)\b(?:issued|credential|license)\b`),
		regexp.MustCompile(`(?i)\b(?:aws|azure|google|microsoft|oracle|cisco|comptia|pmp)\b`),
	},
}

// ExperienceRangePresent matches an open-ended date range such as "2020 - Present"
var ExperienceRangePresent = regexp.MustCompile(`(?i)\b(?:19|20)\d{2}\s*(?:-|to)\s*(?:present|current|now)\b`)

// DateRange matches a start/end range on a single line. Months have already
// been canonicalized to "MM/YYYY" by the normalizer.
// Groups: 1 start, 2 start year, 3 end, 4 end year (empty for present/current/now).
var DateRange = regexp.MustCompile(`(?i)\b((?:\d{2}/)?((?:19|20)\d{2}))\s*(?:-|to)\s*((?:\d{2}/)?((?:19|20)\d{2})|present|current|now)\b`)
