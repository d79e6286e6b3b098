package ingestion

import (
	"regexp"
	"strings"
)

// charSubstitutions maps typographic characters and PDF glyph artifacts to ASCII
var charSubstitutions = map[rune]string{
	// dashes and hyphens
	'‐': "-", '‑': "-", '‒': "-", '–': "-", '—': "-",
	'―': "-", '−': "-", '⁃': "-",

	// single quotes, primes, accents used as apostrophes
	'‘': "'", '’': "'", '‚': "'", '‛': "'", '′': "'", '´': "'",

	// double quotes and guillemets
	'“': `"`, '”': `"`, '„': `"`, '‟': `"`, '«': `"`, '»': `"`,

	// bullets, including Symbol/Wingdings private-use glyphs emitted by PDF extractors
	'•': "- ", '●': "- ", '▪': "- ", '■': "- ", '◦': "- ",
	'‣': "- ", '∙': "- ", '·': "- ", '➢': "- ", '►': "- ",
	'❖': "- ", '\uf0b7': "- ", '\uf0a7': "- ", '\uf076': "- ", '\uf0d8': "- ",

	// space variants
	'\u00a0': " ", '\u202f': " ", '\u205f': " ", '\u3000': " ",

	// invisible characters
	'\u200b': "", '\u200c': "", '\u200d': "", '\u2060': "", '\ufeff': "", '\u00ad': "",
	'\ufffd': "",

	'…': "...",
}

type canonicalRule struct {
	re          *regexp.Regexp
	replacement string
}

var monthNumbers = map[string]string{
	"jan": "01", "feb": "02", "mar": "03", "apr": "04", "may": "05", "jun": "06",
	"jul": "07", "aug": "08", "sep": "09", "oct": "10", "nov": "11", "dec": "12",
}

// monthYearRe only fires when a year follows, so "may" as a verb is left alone
var monthYearRe = regexp.MustCompile(`(?i)\b(jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|june?|july?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\.?,?[ \t]+((?:19|20)\d{2})\b`)

// canonicalRules expand degree and title abbreviations. Replacements never
// contain a token that a rule matches, which keeps canonicalization idempotent.
var canonicalRules = []canonicalRule{
	// degrees
	{regexp.MustCompile(`(?i)\bb\.?[ \t]*tech\b\.?`), "Bachelor of Technology"},
	{regexp.MustCompile(`(?i)\bm\.?[ \t]*tech\b\.?`), "Master of Technology"},
	{regexp.MustCompile(`(?i)\bb\.[ \t]*sc\b\.?|\bbsc\b\.?`), "Bachelor of Science"},
	{regexp.MustCompile(`(?i)\bm\.[ \t]*sc\b\.?|\bmsc\b\.?`), "Master of Science"},
	{regexp.MustCompile(`(?i)\bb\.s\b\.?`), "Bachelor of Science"},
	{regexp.MustCompile(`(?i)\bm\.s\b\.?`), "Master of Science"},
	{regexp.MustCompile(`(?i)\bb\.a\b\.?`), "Bachelor of Arts"},
	{regexp.MustCompile(`(?i)\bm\.a\b\.?`), "Master of Arts"},
	{regexp.MustCompile(`(?i)\bb\.e\b\.?`), "Bachelor of Engineering"},
	{regexp.MustCompile(`(?i)\bm\.e\b\.?`), "Master of Engineering"},
	{regexp.MustCompile(`(?i)\bb\.com\b\.?|\bbcom\b`), "Bachelor of Commerce"},
	{regexp.MustCompile(`(?i)\bph\.?[ \t]*d\b\.?`), "Doctor of Philosophy"},
	{regexp.MustCompile(`(?i)\bmba\b\.?`), "Master of Business Administration"},
	{regexp.MustCompile(`(?i)\bbba\b\.?`), "Bachelor of Business Administration"},
	{regexp.MustCompile(`(?i)\bmca\b\.?`), "Master of Computer Applications"},
	{regexp.MustCompile(`(?i)\bbca\b\.?`), "Bachelor of Computer Applications"},

	// titles
	{regexp.MustCompile(`(?i)\bsvp\b\.?`), "Senior Vice President"},
	{regexp.MustCompile(`(?i)\bvp\b\.?`), "Vice President"},
	{regexp.MustCompile(`(?i)\bsr\b\.?`), "Senior"},
	{regexp.MustCompile(`(?i)\bjr\b\.?`), "Junior"},
	{regexp.MustCompile(`(?i)\bmgr\b\.?`), "Manager"},
	{regexp.MustCompile(`(?i)\basst\b\.?`), "Assistant"},
	{regexp.MustCompile(`(?i)\bassoc\b\.?`), "Associate"},
	{regexp.MustCompile(`(?i)\bengr\b\.?`), "Engineer"},
	{regexp.MustCompile(`(?i)\bmgmt\b\.?`), "Management"},
	{regexp.MustCompile(`(?i)\bdir\.`), "Director"},
}

func canonicalizeMonths(text string) string {
	return monthYearRe.ReplaceAllStringFunc(text, func(m string) string {
		sub := monthYearRe.FindStringSubmatch(m)
		month := monthNumbers[strings.ToLower(sub[1])[:3]]
		return month + "/" + sub[2]
	})
}
