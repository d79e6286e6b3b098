package ingestion

import "fmt"

// UnsupportedFormatError is returned when a document extension has no reader
type UnsupportedFormatError struct {
	Path      string
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported document format %q: %s", e.Extension, e.Path)
}

// ExtractError represents a failure to read or extract text from a document
type ExtractError struct {
	Message string
	Cause   error
}

func (e *ExtractError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extract error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("extract error: %s", e.Message)
}

func (e *ExtractError) Unwrap() error {
	return e.Cause
}

// SizeLimitError is returned when a document exceeds the configured size limit
type SizeLimitError struct {
	Path     string
	Size     int64
	MaxBytes int64
}

func (e *SizeLimitError) Error() string {
	return fmt.Sprintf("document %s is %d bytes, limit is %d", e.Path, e.Size, e.MaxBytes)
}
