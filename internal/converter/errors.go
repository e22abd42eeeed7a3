package converter

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound reports a path input that does not exist on disk.
	ErrNotFound = errors.New("file not found")
	// ErrInvalidInput reports an input that is neither a path, base64
	// text, nor a byte buffer.
	ErrInvalidInput = errors.New("input must be a file path, base64 text, or byte buffer")
	// ErrDecode reports malformed base64 or data-URI input.
	ErrDecode = errors.New("malformed base64 input")
	// ErrArchiveTooDeep reports archive nesting beyond Options.MaxArchiveDepth.
	ErrArchiveTooDeep = errors.New("archive nesting exceeds depth limit")
	// ErrArchiveTooLarge reports cumulative archive expansion beyond
	// Options.MaxArchiveBytes.
	ErrArchiveTooLarge = errors.New("archive expansion exceeds byte budget")
)

// ExtractionError wraps a failure raised by a format extractor, carrying the
// format that failed. Detection errors are never wrapped; extractor errors
// always are.
type ExtractionError struct {
	Format Format
	Err    error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extracting %s content: %v", e.Format, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

func wrapExtraction(format Format, err error) error {
	return &ExtractionError{Format: format, Err: err}
}
