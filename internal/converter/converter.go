// Package converter classifies input documents and routes them through the
// matching format extractor, recursing into container formats. It is the
// orchestrator behind the public ConvertToMarkdown operation.
package converter

import (
	"strings"

	"github.com/docpipe/docpipe/internal/audio"
	"github.com/docpipe/docpipe/internal/docx"
	"github.com/docpipe/docpipe/internal/feed"
	"github.com/docpipe/docpipe/internal/imagemeta"
	"github.com/docpipe/docpipe/internal/markdown"
	"github.com/docpipe/docpipe/internal/notebook"
	"github.com/docpipe/docpipe/internal/pdf"
	"github.com/docpipe/docpipe/internal/sheet"
	"github.com/docpipe/docpipe/internal/slides"
	"github.com/docpipe/docpipe/internal/web"
)

// Convert turns the input document into a normalized Markdown string. It
// never mutates its arguments; every nested call (archive entries) receives
// its own derived Options value.
//
// Detection errors (ErrNotFound, ErrInvalidInput, ErrDecode) return
// unwrapped. Extractor failures return as *ExtractionError carrying the
// format that failed.
func Convert(input Input, opts Options) (string, error) {
	opts = opts.withDefaults()

	format, data, err := detect(input, opts)
	if err != nil {
		return "", err
	}

	log := opts.logger()
	log.Debug().
		Str("format", string(format)).
		Str("file_name", opts.FileName).
		Int("size", len(data)).
		Msg("resolved input format")

	return convertBytes(format, data, opts)
}

// convertBytes dispatches detected-format bytes to the matching extractor.
// Every non-container path runs its output through markdown.Normalize; the
// archive path normalizes only the assembled aggregate.
func convertBytes(format Format, data []byte, opts Options) (string, error) {
	if format == FormatUnknown {
		format = rerouteUnknown(opts)
	}

	switch format {
	case FormatPDF:
		text, err := pdf.Extract(data)
		if err != nil {
			return "", wrapExtraction(format, err)
		}
		return markdown.Normalize(text), nil

	case FormatDocx:
		html, err := docx.ExtractHTML(data)
		if err != nil {
			return "", wrapExtraction(format, err)
		}
		rendered, err := markdown.FromHTML(html)
		if err != nil {
			return "", wrapExtraction(format, err)
		}
		return markdown.Normalize(rendered), nil

	case FormatHTML:
		rendered, err := markdown.FromHTML(string(data))
		if err != nil {
			return "", wrapExtraction(format, err)
		}
		return markdown.Normalize(rendered), nil

	case FormatText:
		return markdown.Normalize(string(data)), nil

	case FormatNotebook:
		text, err := notebook.Extract(data)
		if err != nil {
			return "", wrapExtraction(format, err)
		}
		return markdown.Normalize(text), nil

	case FormatFeed:
		text, err := feed.Extract(data)
		if err != nil {
			return "", wrapExtraction(format, err)
		}
		return markdown.Normalize(text), nil

	case FormatSpreadsheet:
		sheets, err := sheet.Workbook(data)
		if err != nil {
			return "", wrapExtraction(format, err)
		}
		var b strings.Builder
		for _, sh := range sheets {
			b.WriteString("## " + sh.Name + "\n\n")
			b.WriteString(markdown.Table(sh.Grid) + "\n\n")
		}
		return markdown.Normalize(b.String()), nil

	case FormatCSV:
		grid, err := sheet.CSV(data)
		if err != nil {
			return "", wrapExtraction(format, err)
		}
		return markdown.Normalize(markdown.Table(grid)), nil

	case FormatAudio:
		text, err := audio.Extract(data)
		if err != nil {
			return "", wrapExtraction(format, err)
		}
		return markdown.Normalize(text), nil

	case FormatSlides:
		text, err := slides.Extract(data)
		if err != nil {
			return "", wrapExtraction(format, err)
		}
		return markdown.Normalize(text), nil

	case FormatImage:
		text, err := imagemeta.Extract(data)
		if err != nil {
			return "", wrapExtraction(format, err)
		}
		return markdown.Normalize(text), nil

	case FormatArchive:
		return expandArchive(data, opts)

	case FormatYouTube:
		text, err := web.YouTube(data)
		if err != nil {
			return "", wrapExtraction(format, err)
		}
		return markdown.Normalize(text), nil

	case FormatBingSERP:
		text, err := web.BingSERP(data, opts.SourceURL)
		if err != nil {
			return "", wrapExtraction(format, err)
		}
		return markdown.Normalize(text), nil

	default:
		// The detector only emits tags handled above; degrade to text so
		// unrecognized content still yields a best-effort document.
		return markdown.Normalize(string(data)), nil
	}
}

// rerouteUnknown resolves the plain-text fallback: page bytes accompanied
// by a YouTube or Bing search URL hint go to the matching scraper,
// everything else converts as text.
func rerouteUnknown(opts Options) Format {
	switch {
	case strings.Contains(opts.SourceURL, "youtube.com"):
		return FormatYouTube
	case strings.Contains(opts.SourceURL, "bing.com/search"):
		return FormatBingSERP
	default:
		return FormatText
	}
}
