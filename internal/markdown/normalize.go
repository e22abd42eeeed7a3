// Package markdown holds the shared Markdown shaping helpers: the structural
// normalizer applied to every extracted document, the pipe-table renderer
// used by the grid-shaped formats, and the HTML renderer.
package markdown

import (
	"regexp"
	"strings"
)

var (
	// titleLine matches short standalone lines that read like titles:
	// an uppercase letter or digit followed by a body free of sentence
	// punctuation, optionally terminated. Known to over-trigger on short
	// declarative sentences.
	titleLine = regexp.MustCompile(`^[A-Z0-9][^.!?]{2,}[.!?]?$`)

	bulletGlyph    = regexp.MustCompile(`^[•\-\*]\s+`)
	multiNewline   = regexp.MustCompile(`\n{3,}`)
	trailingLineWS = regexp.MustCompile(`(?m)[ \t]+$`)
)

// Normalize reshapes loosely formatted extracted text into a consistent
// Markdown document. It promotes bold-wrapped and title-like lines to
// level-2 headings, rewrites bullet glyphs to "* ", and reflows hard-wrapped
// prose by merging consecutive plain lines into single paragraphs. Headings
// and bullets are never merged into.
//
// The result carries no trailing per-line whitespace, no run of three or
// more newlines, and is trimmed. Normalize is idempotent.
func Normalize(text string) string {
	var formatted []string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "**") && strings.HasSuffix(line, "**") {
			line = "## " + strings.TrimSuffix(strings.TrimPrefix(line, "**"), "**")
		} else if len(line) < 100 && titleLine.MatchString(line) {
			line = "## " + line
		}

		if bulletGlyph.MatchString(line) {
			line = "* " + bulletGlyph.ReplaceAllString(line, "")
		}

		if !structured(line) {
			if n := len(formatted); n > 0 && !structured(formatted[n-1]) {
				formatted[n-1] += " " + line
				continue
			}
		}

		formatted = append(formatted, line)
	}

	var b strings.Builder
	for i, line := range formatted {
		if i > 0 {
			// Pipe-table rows must stay adjacent or the table breaks.
			if strings.HasPrefix(line, "|") && strings.HasPrefix(formatted[i-1], "|") {
				b.WriteString("\n")
			} else {
				b.WriteString("\n\n")
			}
		}
		b.WriteString(line)
	}

	out := multiNewline.ReplaceAllString(b.String(), "\n\n")
	out = trailingLineWS.ReplaceAllString(out, "")

	return strings.TrimSpace(out)
}

// structured reports whether a line is a heading, bullet, or table row.
// Structured lines neither merge into neighbors nor accept merged prose.
func structured(line string) bool {
	return strings.HasPrefix(line, "#") ||
		strings.HasPrefix(line, "*") ||
		strings.HasPrefix(line, "|")
}
