// Package experience turns the experience section into formatted work
// entries and sums their durations.
package experience

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-extractor/internal/ingestion"
	"github.com/jonathan/resume-extractor/internal/patterns"
	"github.com/jonathan/resume-extractor/internal/types"
)

// titleSeparators split a header line into title and company, in priority order
var titleSeparators = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\s+at\s+`),
	regexp.MustCompile(`\s*@\s*`),
	regexp.MustCompile(`\s*\|\s*`),
	regexp.MustCompile(`\s*,\s*`),
	regexp.MustCompile(`\s+-\s+`),
}

// separatorTrim is stripped from header text left over after removing a date range
const separatorTrim = " \t|,-()[]:"

type dateLine struct {
	index     int
	match     []string
	remainder string
}

// FormatEntries builds one entry per date-range line in the experience
// section content. The title/company line is, in order of preference: text
// on the date line itself, the non-bullet line just above it, or the first
// non-bullet line below it. Once an entry has taken its title from below,
// the section is read as date-first and later entries only look below, so a
// plain description line never becomes the next entry's title. Remaining
// lines up to the next entry become the description with bullet markers
// stripped. currentYear resolves open ranges.
func FormatEntries(content string, currentYear int) []types.WorkExperienceEntry {
	var lines []string
	for _, l := range strings.Split(content, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}

	var dates []dateLine
	for i, l := range lines {
		loc := patterns.DateRange.FindStringSubmatchIndex(l)
		if loc == nil {
			continue
		}
		m := make([]string, 5)
		for g := 0; g < 5; g++ {
			if loc[2*g] >= 0 {
				m[g] = l[loc[2*g]:loc[2*g+1]]
			}
		}
		rest := strings.Trim(l[:loc[0]]+" "+l[loc[1]:], separatorTrim)
		dates = append(dates, dateLine{index: i, match: m, remainder: strings.TrimSpace(rest)})
	}
	if len(dates) == 0 {
		return nil
	}

	isDate := make(map[int]bool, len(dates))
	for _, d := range dates {
		isDate[d.index] = true
	}

	// header[k] is the line index used as entry k's title line, -1 if none
	header := make([]int, len(dates))
	consumed := -1
	dateFirst := false
	for k, d := range dates {
		header[k] = -1
		if d.remainder != "" {
			consumed = d.index
			continue
		}
		if prev := d.index - 1; !dateFirst && prev > consumed && prev >= 0 && !isDate[prev] && !ingestion.IsBulletLine(lines[prev]) {
			header[k] = prev
			consumed = d.index
			continue
		}
		if next := d.index + 1; next < len(lines) && !isDate[next] && !ingestion.IsBulletLine(lines[next]) {
			header[k] = next
			consumed = next
			dateFirst = true
			continue
		}
		consumed = d.index
	}

	entries := make([]types.WorkExperienceEntry, 0, len(dates))
	for k, d := range dates {
		entry := types.WorkExperienceEntry{
			Dates:       normalizeRange(d.match[0]),
			Description: []string{},
		}
		entry.StartYear, _ = strconv.Atoi(d.match[2])
		if d.match[4] != "" {
			entry.EndYear, _ = strconv.Atoi(d.match[4])
		} else {
			entry.EndYear = currentYear
		}

		titleLine := d.remainder
		if header[k] >= 0 {
			titleLine = lines[header[k]]
		}
		entry.Title, entry.Company = SplitTitle(titleLine)

		end := len(lines)
		if k+1 < len(dates) {
			end = dates[k+1].index
			if header[k+1] >= 0 && header[k+1] < end {
				end = header[k+1]
			}
		}
		for i := d.index + 1; i < end; i++ {
			if i == header[k] {
				continue
			}
			entry.Description = append(entry.Description, ingestion.StripBullet(lines[i]))
		}

		entries = append(entries, entry)
	}
	return entries
}

// TotalYears sums the year deltas of all entries with a valid range
func TotalYears(entries []types.WorkExperienceEntry) int {
	total := 0
	for _, e := range entries {
		if e.StartYear > 0 && e.EndYear >= e.StartYear {
			total += e.EndYear - e.StartYear
		}
	}
	return total
}

// SplitTitle splits "Title at Company" style lines on the first separator
// found in priority order. A line without separator is all title.
func SplitTitle(line string) (title, company string) {
	line = strings.TrimSpace(line)
	for _, sep := range titleSeparators {
		if loc := sep.FindStringIndex(line); loc != nil {
			title = strings.Trim(line[:loc[0]], separatorTrim)
			company = strings.Trim(line[loc[1]:], separatorTrim)
			if title != "" && company != "" {
				return title, company
			}
		}
	}
	return strings.Trim(line, separatorTrim), ""
}

var rangeSpaceRe = regexp.MustCompile(`\s*(-|\bto\b)\s*`)

// normalizeRange renders a matched date range as "START - END"
func normalizeRange(s string) string {
	return rangeSpaceRe.ReplaceAllString(strings.TrimSpace(s), " - ")
}
