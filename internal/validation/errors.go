// Package validation builds the ValidationReport for an extraction: fatal
// input checks, formatting warnings and result-quality warnings.
package validation

import "fmt"

// Reason classifies a fatal input condition
type Reason string

// Fatal input reasons
const (
	ReasonEmpty    Reason = "empty"
	ReasonTooShort Reason = "too_short"
)

// InputError is returned for input that cannot be extracted. The report that
// accompanies it carries the same message in Errors.
type InputError struct {
	Reason  Reason
	Message string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input (%s): %s", e.Reason, e.Message)
}
