// Package audio reads tag metadata (ID3 and friends) out of audio buffers
// and reports it as key:value lines. Speech-to-text transcription is a
// deliberate extension point, not implemented.
package audio

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dhowden/tag"
)

// Extract returns the buffer's tag metadata, one "Key: value" line per
// populated field.
func Extract(data []byte) (string, error) {
	m, err := tag.ReadFrom(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("reading audio metadata: %w", err)
	}

	var b strings.Builder
	if title := m.Title(); title != "" {
		b.WriteString("Title: " + title + "\n")
	}
	if artist := m.Artist(); artist != "" {
		b.WriteString("Artist: " + artist + "\n")
	}
	if album := m.Album(); album != "" {
		b.WriteString("Album: " + album + "\n")
	}
	if genre := m.Genre(); genre != "" {
		b.WriteString("Genre: " + genre + "\n")
	}
	if year := m.Year(); year != 0 {
		fmt.Fprintf(&b, "Year: %d\n", year)
	}

	return b.String(), nil
}
