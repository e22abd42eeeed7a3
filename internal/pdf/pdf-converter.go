// Package pdf extracts raw text from PDF bytes. Structural shaping
// (headings, bullets, paragraph reflow) is left to the shared normalizer;
// the only hint produced here is bold-marker wrapping of bold-font lines so
// the normalizer can promote them.
package pdf

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/rsc/pdf"
)

// TextElement is a positioned piece of page text.
type TextElement struct {
	Text string
	Font string
	Size float64
	X    float64
	Y    float64
}

// TextLine groups the elements sharing a Y coordinate.
type TextLine struct {
	Elements []TextElement
	Y        float64
	IsBold   bool
}

// Extract pulls the text content out of a PDF document, page by page.
// Elements are grouped into lines by Y coordinate, ordered top to bottom,
// left to right. Pages are separated by blank lines.
func Extract(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to create PDF reader: %w", err)
	}

	numPages := reader.NumPage()
	if numPages == 0 {
		return "", fmt.Errorf("PDF contains no pages")
	}

	var pagesText []string
	for pageNum := 1; pageNum <= numPages; pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue // skip empty pages
		}

		text := extractPageText(page)
		if strings.TrimSpace(text) != "" {
			pagesText = append(pagesText, text)
		}
	}

	return strings.Join(pagesText, "\n\n"), nil
}

func extractPageText(page pdf.Page) string {
	content := page.Content()

	var elements []TextElement
	for _, text := range content.Text {
		if text.S == "" {
			continue
		}
		elements = append(elements, TextElement{
			Text: text.S,
			Font: text.Font,
			Size: text.FontSize,
			X:    text.X,
			Y:    text.Y,
		})
	}

	if len(elements) == 0 {
		return ""
	}

	var out strings.Builder
	for _, line := range groupElementsIntoLines(elements) {
		var text strings.Builder
		for _, element := range line.Elements {
			text.WriteString(element.Text)
		}

		lineText := strings.TrimSpace(text.String())
		if lineText == "" {
			continue
		}

		if line.IsBold {
			lineText = "**" + lineText + "**"
		}
		out.WriteString(lineText + "\n")
	}

	return out.String()
}

func groupElementsIntoLines(elements []TextElement) []TextLine {
	lineMap := make(map[float64][]TextElement)
	for _, element := range elements {
		lineMap[element.Y] = append(lineMap[element.Y], element)
	}

	var lines []TextLine
	for y, lineElements := range lineMap {
		sort.Slice(lineElements, func(i, j int) bool {
			return lineElements[i].X < lineElements[j].X
		})

		lines = append(lines, TextLine{
			Elements: lineElements,
			Y:        y,
			IsBold:   isBoldFont(lineElements[0].Font),
		})
	}

	// Higher Y means closer to the top of the page.
	sort.Slice(lines, func(i, j int) bool {
		return lines[i].Y > lines[j].Y
	})

	return lines
}

func isBoldFont(fontName string) bool {
	fontName = strings.ToLower(fontName)
	return strings.Contains(fontName, "bold") ||
		strings.Contains(fontName, "black") ||
		strings.Contains(fontName, "heavy")
}
