package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Format identifies the container a resume was read from
type Format string

// Supported document formats
const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatPDF      Format = "pdf"
	FormatHTML     Format = "html"
)

// DefaultMaxBytes is the default document size limit (5 MB)
const DefaultMaxBytes int64 = 5 * 1024 * 1024

// Document is a resume file reduced to raw text. Text is not normalized;
// normalization is part of extraction.
type Document struct {
	Path     string
	Format   Format
	Text     string
	Metadata *Metadata
}

// DetectFormat maps a file extension to a Format
func DetectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".txt", "":
		return FormatText, nil
	case ".md", ".markdown":
		return FormatMarkdown, nil
	case ".pdf":
		return FormatPDF, nil
	case ".html", ".htm":
		return FormatHTML, nil
	default:
		return "", &UnsupportedFormatError{Path: path, Extension: ext}
	}
}

// ReadDocument reads a resume file and extracts its raw text.
// maxBytes <= 0 uses DefaultMaxBytes.
func ReadDocument(path string, maxBytes int64) (*Document, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, &ExtractError{Message: fmt.Sprintf("failed to stat %s", path), Cause: err}
	}
	if info.Size() > maxBytes {
		return nil, &SizeLimitError{Path: path, Size: info.Size(), MaxBytes: maxBytes}
	}

	var text string
	pages := 0
	switch format {
	case FormatPDF:
		text, pages, err = extractPDF(path)
	default:
		var data []byte
		data, err = os.ReadFile(path)
		if err == nil {
			text = string(data)
			if format == FormatHTML {
				text, err = extractHTML(text)
			}
		}
	}
	if err != nil {
		return nil, &ExtractError{Message: fmt.Sprintf("failed to read %s", path), Cause: err}
	}

	meta := NewMetadata(text, path, format)
	meta.Bytes = info.Size()
	meta.Pages = pages

	return &Document{
		Path:     path,
		Format:   format,
		Text:     text,
		Metadata: meta,
	}, nil
}

// FromText wraps text received over a transport (stdin, HTTP) as a Document
func FromText(text string) *Document {
	meta := NewMetadata(text, "", FormatText)
	meta.Bytes = int64(len(text))
	return &Document{Format: FormatText, Text: text, Metadata: meta}
}
