package patterns

import "regexp"

// titleKeywords are the job-title nouns role detection anchors on
const titleKeywords = `engineer|developer|manager|analyst|designer|scientist|consultant|architect|lead|intern|director|specialist|administrator|coordinator|officer|associate|programmer|technician|president|founder|head|executive|assistant|researcher`

// Role detection chain, most specific first. In every pattern group 1 is
// the role and group 2 (optional) the organization.
var RoleChain = []NamedPattern{
	{
		Name: "currently_working_as",
		Re:   regexp.MustCompile(`(?i)\b(?:currently|presently)\s+(?:working|employed|serving)\s+as\s+(?:an?\s+)?([a-z][^\n,.;]*?)(?:\s+(?:at|with|for|in)\s+([a-z][^\n,.;]*?))?\s*(?:[,.;\n]|$)`),
	},
	{
		Name: "title_with_date",
		Re: regexp.MustCompile(`(?im)^[ \t]*(?:[-*][ \t]+)?((?:[a-z][\w.+#/&-]*[ \t]+){0,3}(?:` + titleKeywords + `)s?)\b` +
			`(?:[ \t]*(?:at|@|,|\|)[ \t]*([a-z][^\n,|(]*?))?` +
			`[ \t]*(?:[,|(-][^\n]*?|\n[ \t]*[^\n]*?)\b(?:(?:19|20)\d{2}|present|current)\b`),
	},
	{
		Name: "line_ending_present",
		Re: regexp.MustCompile(`(?im)^[ \t]*(?:[-*][ \t]+)?([a-z][^\n]*?)[ \t]+(?:at|in|@|-)[ \t]+([a-z][^\n\d,|(]*?)` +
			`[ \t]*(?:[,|(]|-|[ \t])[ \t]*(?:(?:\d{2}/)?(?:19|20)\d{2}[ \t]*(?:-|to)[ \t]*)?(?:present|current|now)\)?[ \t]*$`),
	},
}

// StudentIndicators mark a student profile
var StudentIndicators = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bcurrently\s+(?:enrolled|studying|pursuing)\b`),
	regexp.MustCompile(`(?i)\bpursuing\b`),
	regexp.MustCompile(`(?i)\bundergraduate\b`),
	regexp.MustCompile(`(?i)\bexpected\s+(?:graduation|to\s+graduate)\b`),
	regexp.MustCompile(`(?i)\bclass\s+of\s+20\d{2}\b`),
	regexp.MustCompile(`(?i)\b(?:freshman|sophomore|junior|senior)\s+year\b`),
	regexp.MustCompile(`(?i)\bstudent\s+at\b`),
}

// Institution patterns for students. Group 1 is the institution.
var InstitutionChain = []NamedPattern{
	{
		Name: "student_at",
		Re:   regexp.MustCompile(`(?m)\b(?i:enrolled|studying|student)\s+(?i:at)\s+(?:(?i:the)\s+)?([A-Z][A-Za-z&.'\- ]*?[A-Za-z])[ \t]*(?:[,;(\n]|$|\.(?:\s|$))`),
	},
	{
		Name: "enrolled_in_institution",
		Re:   regexp.MustCompile(`(?m)\b(?i:enrolled|studying)\s+(?i:in)\s+(?:(?i:the)\s+)?([A-Z][A-Za-z&.'\- ]*?(?:University|College|Institute|School)(?:\s+of\s+[A-Z][A-Za-z]*(?:\s+[A-Z][A-Za-z]*)*)?)`),
	},
}

// ExperienceKind tells the fact extractor how to read group 1
type ExperienceKind int

// Experience pattern kinds
const (
	KindYears ExperienceKind = iota
	KindSinceYear
	KindMonths
	KindCount
)

// ExperiencePattern is one step of an experience fallback chain
type ExperiencePattern struct {
	NamedPattern
	Kind ExperienceKind
}

// ProfessionalExperienceChain is tried in order for professionals
var ProfessionalExperienceChain = []ExperiencePattern{
	{NamedPattern{"years_experience", regexp.MustCompile(`(?i)\b(\d{1,2})\+?\s*(?:years?|yrs?)\b[^\n.]{0,40}?\bexperience\b`)}, KindYears},
	{NamedPattern{"since_year", regexp.MustCompile(`(?i)\b(?:experience|working|employed)\s+since\s+((?:19|20)\d{2})\b`)}, KindSinceYear},
	{NamedPattern{"years_in", regexp.MustCompile(`(?i)\b(\d{1,2})\+?\s*(?:years?|yrs?)\s+(?:in|at|with)\b`)}, KindYears},
}

// StudentExperienceChain is tried in order for students
var StudentExperienceChain = []ExperiencePattern{
	{NamedPattern{"internship_months", regexp.MustCompile(`(?i)\b(\d{1,2})[\s-]*months?\s+(?:of\s+)?(?:[a-z]+\s+)?internships?\b`)}, KindMonths},
	{NamedPattern{"internship_years", regexp.MustCompile(`(?i)\b(\d{1,2})\+?[\s-]*years?\s+(?:of\s+)?(?:[a-z]+\s+)?internships?\b`)}, KindYears},
	{NamedPattern{"internship_count", regexp.MustCompile(`(?i)\b(\d|one|two|three|four|five)\s+(?:[a-z]+\s+)?internships?\b`)}, KindCount},
}

// NumberWords maps spelled-out small numbers used in internship counts
var NumberWords = map[string]int{"one": 1, "two": 2, "three": 3, "four": 4, "five": 5}

// EducationKeyword identifies a line describing a degree or institution
var EducationKeyword = regexp.MustCompile(`(?i)\b(?:bachelor(?:'?s)?|master(?:'?s)?|doctor(?:ate)?|associate(?:'?s)?\s+degree|diploma|degree|university|college|institute|school|academy|gpa|high\s+school)\b`)
