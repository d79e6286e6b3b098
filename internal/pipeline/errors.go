package pipeline

import "github.com/jonathan/resume-extractor/internal/validation"

// InputError is returned by Process for empty or too-short input. The
// result returned alongside it is still populated with an invalid report.
type InputError = validation.InputError

// Fatal input reasons
const (
	ReasonEmpty    = validation.ReasonEmpty
	ReasonTooShort = validation.ReasonTooShort
)
