package converter

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/docpipe/docpipe/internal/utils"
)

// Format is the resolved category of an input document, used to select an
// extraction strategy.
type Format string

const (
	FormatPDF         Format = "pdf"
	FormatDocx        Format = "docx"
	FormatHTML        Format = "html"
	FormatText        Format = "text"
	FormatNotebook    Format = "notebook"
	FormatFeed        Format = "rss-atom"
	FormatSpreadsheet Format = "spreadsheet"
	FormatCSV         Format = "csv"
	FormatAudio       Format = "audio"
	FormatSlides      Format = "presentation"
	FormatArchive     Format = "archive"
	FormatImage       Format = "image"
	FormatYouTube     Format = "youtube-page"
	FormatBingSERP    Format = "bing-serp-page"

	// FormatUnknown marks content whose extension resolution fell through
	// to the plain-text fallback. The orchestrator may reroute it to a
	// URL-conditioned extractor; otherwise it converts as text.
	FormatUnknown Format = "unknown"
)

// formatForExtension maps a lower-case file extension to its format. The
// second return reports whether the extension is recognized.
func formatForExtension(ext string) (Format, bool) {
	switch ext {
	case ".pdf":
		return FormatPDF, true
	case ".docx":
		return FormatDocx, true
	case ".html", ".htm":
		return FormatHTML, true
	case ".txt":
		return FormatText, true
	case ".ipynb":
		return FormatNotebook, true
	case ".xml", ".rss", ".atom":
		return FormatFeed, true
	case ".xlsx", ".xls":
		return FormatSpreadsheet, true
	case ".csv":
		return FormatCSV, true
	case ".mp3", ".wav":
		return FormatAudio, true
	case ".pptx":
		return FormatSlides, true
	case ".zip":
		return FormatArchive, true
	case ".jpg", ".jpeg", ".png", ".gif":
		return FormatImage, true
	default:
		return FormatUnknown, false
	}
}

// detect resolves the input to a format tag and its raw bytes. Resolution
// order: explicit extension override, base64/data-URI decoding, on-disk
// path, raw bytes; unresolved extensions fall back to content sniffing and
// finally to plain text. Unrecognized content is never an error.
func detect(input Input, opts Options) (Format, []byte, error) {
	var (
		data []byte
		ext  string
		err  error
	)

	force := strings.ToLower(opts.ForceExtension)

	switch input.kind {
	case kindEncoded:
		data, ext, err = decodeEncoded(input.encoded, opts)
		if err != nil {
			return FormatUnknown, nil, err
		}

	case kindPath:
		if !utils.FileExists(input.path) {
			return FormatUnknown, nil, fmt.Errorf("%w: %s", ErrNotFound, input.path)
		}
		data, err = os.ReadFile(input.path)
		if err != nil {
			return FormatUnknown, nil, fmt.Errorf("reading %s: %w", input.path, err)
		}
		ext = strings.ToLower(filepath.Ext(input.path))

	case kindBytes:
		data = input.data
		// The file-name hint keeps archive entries resolving by their
		// entry path extension.
		if opts.FileName != "" {
			ext = strings.ToLower(filepath.Ext(opts.FileName))
		}

	default:
		return FormatUnknown, nil, ErrInvalidInput
	}

	if force != "" {
		ext = force
	}
	if ext == "" {
		ext = sniffExtension(data)
	}

	format, ok := formatForExtension(ext)
	if !ok {
		return FormatUnknown, data, nil
	}
	return format, data, nil
}

// decodeEncoded decodes a base64 payload or data URI. The extension is
// derived from the declared MIME type when present, else from the file-name
// hint; content sniffing handles the rest.
func decodeEncoded(encoded string, opts Options) ([]byte, string, error) {
	payload := encoded
	declaredMIME := ""

	if isDataURI(encoded) {
		meta, rest, found := strings.Cut(encoded, ",")
		if !found {
			return nil, "", fmt.Errorf("%w: data URI has no payload", ErrDecode)
		}
		payload = rest
		declaredMIME = strings.TrimPrefix(meta, "data:")
		if i := strings.Index(declaredMIME, ";"); i >= 0 {
			declaredMIME = declaredMIME[:i]
		}
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		data, err = base64.RawStdEncoding.DecodeString(payload)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %v", ErrDecode, err)
		}
	}

	ext := ""
	if declaredMIME != "" {
		if m := mimetype.Lookup(declaredMIME); m != nil {
			ext = m.Extension()
		}
	}
	if ext == "" && opts.FileName != "" {
		ext = strings.ToLower(filepath.Ext(opts.FileName))
	}

	return data, ext, nil
}

// sniffExtension maps the buffer's byte signature to an extension. Plain or
// unrecognizable content reports no extension so the caller falls through
// to the text fallback rather than trusting a catch-all text/plain match.
func sniffExtension(data []byte) string {
	m := mimetype.Detect(data)
	if m.Is("text/plain") || m.Is("application/octet-stream") {
		return ""
	}
	return m.Extension()
}

func isDataURI(s string) bool {
	return strings.HasPrefix(s, "data:")
}
