// Package docpipe converts arbitrary input documents into normalized
// Markdown. Inputs may be file paths, raw byte buffers, or base64/data-URI
// strings; the format is detected from hints and content, container formats
// are expanded recursively, and unrecognized content degrades to plain-text
// conversion rather than failing.
//
// Basic usage:
//
//	md, err := docpipe.ConvertToMarkdown(docpipe.FromPath("report.xlsx"), docpipe.Options{})
//	if err != nil {
//	    // handle error
//	}
//	path, err := docpipe.SaveToMarkdownFile(md, "report", "")
package docpipe

import (
	"errors"
	"fmt"

	"github.com/docpipe/docpipe/internal/converter"
	"github.com/docpipe/docpipe/internal/utils"
)

// Re-exported conversion types; callers never import internal packages.
type (
	// Input is the document to convert. See FromPath, FromBytes,
	// FromEncoded, FromString.
	Input = converter.Input
	// Options configures a conversion call.
	Options = converter.Options
	// Format is a resolved document category.
	Format = converter.Format
	// ExtractionError wraps an extractor failure with the format that failed.
	ExtractionError = converter.ExtractionError
)

// Format tags resolvable by detection.
const (
	FormatPDF         = converter.FormatPDF
	FormatDocx        = converter.FormatDocx
	FormatHTML        = converter.FormatHTML
	FormatText        = converter.FormatText
	FormatNotebook    = converter.FormatNotebook
	FormatFeed        = converter.FormatFeed
	FormatSpreadsheet = converter.FormatSpreadsheet
	FormatCSV         = converter.FormatCSV
	FormatAudio       = converter.FormatAudio
	FormatSlides      = converter.FormatSlides
	FormatArchive     = converter.FormatArchive
	FormatImage       = converter.FormatImage
	FormatYouTube     = converter.FormatYouTube
	FormatBingSERP    = converter.FormatBingSERP
)

// Error taxonomy. Detection errors return unwrapped from ConvertToMarkdown;
// extractor failures return as *ExtractionError.
var (
	ErrNotFound        = converter.ErrNotFound
	ErrInvalidInput    = converter.ErrInvalidInput
	ErrDecode          = converter.ErrDecode
	ErrArchiveTooDeep  = converter.ErrArchiveTooDeep
	ErrArchiveTooLarge = converter.ErrArchiveTooLarge

	// ErrPersistence reports a failed SaveToMarkdownFile operation.
	ErrPersistence = errors.New("failed to save markdown file")
)

// FromPath builds an Input referring to a file on disk.
func FromPath(path string) Input { return converter.FromPath(path) }

// FromBytes builds an Input from an in-memory buffer.
func FromBytes(data []byte) Input { return converter.FromBytes(data) }

// FromEncoded builds an Input from a base64 payload or data URI.
func FromEncoded(encoded string) Input { return converter.FromEncoded(encoded) }

// FromString classifies an ambiguous string as either an encoded payload or
// a file path.
func FromString(s string) Input { return converter.FromString(s) }

// ConvertToMarkdown converts the input document to a normalized Markdown
// string. The result is trimmed, free of trailing per-line whitespace, and
// never contains a run of three or more newlines.
func ConvertToMarkdown(input Input, opts Options) (string, error) {
	return converter.Convert(input, opts)
}

// SaveToMarkdownFile writes content to fileName (".md" appended when
// missing) under outputDir, creating the directory if absent. An empty
// outputDir means "output". Returns the absolute path written.
func SaveToMarkdownFile(content, fileName, outputDir string) (string, error) {
	if outputDir == "" {
		outputDir = "output"
	}

	path, err := utils.SaveToMarkdownFile(content, fileName, outputDir)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return path, nil
}
