// Package docx renders the main document part of a DOCX file as minimal
// HTML. The shared HTML renderer turns that into Markdown, so this package
// only needs to surface structure: headings, paragraphs, bold runs, list
// items, and tables.
package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/beevik/etree"
)

const documentPart = "word/document.xml"

// ExtractHTML reads word/document.xml out of the DOCX container and renders
// its body as an HTML fragment.
func ExtractHTML(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("opening DOCX container: %w", err)
	}

	raw, err := readEntry(zr, documentPart)
	if err != nil {
		return "", err
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(raw); err != nil {
		return "", fmt.Errorf("parsing %s: %w", documentPart, err)
	}

	root := doc.Root()
	if root == nil {
		return "", fmt.Errorf("%s has no root element", documentPart)
	}
	body := childByTag(root, "body")
	if body == nil {
		return "", fmt.Errorf("%s has no body element", documentPart)
	}

	var b strings.Builder
	b.WriteString("<html><body>")
	for _, el := range body.ChildElements() {
		switch el.Tag {
		case "p":
			writeParagraph(&b, el)
		case "tbl":
			writeTable(&b, el)
		}
	}
	b.WriteString("</body></html>")

	return b.String(), nil
}

func readEntry(zr *zip.Reader, name string) ([]byte, error) {
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", name, err)
		}
		defer rc.Close()

		raw, err := io.ReadAll(rc)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		return raw, nil
	}
	return nil, fmt.Errorf("missing %s: not a DOCX document", name)
}

func writeParagraph(b *strings.Builder, p *etree.Element) {
	text := runsHTML(p)
	if strings.TrimSpace(text) == "" {
		return
	}

	if level := headingLevel(p); level > 0 {
		fmt.Fprintf(b, "<h%d>%s</h%d>", level, text, level)
		return
	}
	if isListItem(p) {
		// The normalizer rewrites the glyph to a Markdown bullet.
		fmt.Fprintf(b, "<p>• %s</p>", text)
		return
	}
	fmt.Fprintf(b, "<p>%s</p>", text)
}

// runsHTML concatenates the paragraph's runs, wrapping bold runs in strong
// tags and escaping text content.
func runsHTML(p *etree.Element) string {
	var b strings.Builder
	for _, run := range p.ChildElements() {
		if run.Tag != "r" {
			continue
		}
		var text strings.Builder
		for _, child := range run.ChildElements() {
			switch child.Tag {
			case "t":
				text.WriteString(html.EscapeString(child.Text()))
			case "tab":
				text.WriteString(" ")
			case "br":
				text.WriteString("<br/>")
			}
		}
		if text.Len() == 0 {
			continue
		}
		if isBoldRun(run) {
			b.WriteString("<strong>" + text.String() + "</strong>")
		} else {
			b.WriteString(text.String())
		}
	}
	return b.String()
}

func writeTable(b *strings.Builder, tbl *etree.Element) {
	b.WriteString("<table>")
	for _, tr := range tbl.ChildElements() {
		if tr.Tag != "tr" {
			continue
		}
		b.WriteString("<tr>")
		for _, tc := range tr.ChildElements() {
			if tc.Tag != "tc" {
				continue
			}
			var cell []string
			for _, p := range tc.ChildElements() {
				if p.Tag != "p" {
					continue
				}
				if text := runsHTML(p); strings.TrimSpace(text) != "" {
					cell = append(cell, text)
				}
			}
			b.WriteString("<td>" + strings.Join(cell, " ") + "</td>")
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</table>")
}

// headingLevel maps Heading1..Heading6 paragraph styles to h1..h6 and the
// Title style to h1. Deeper outline levels flatten to h6.
func headingLevel(p *etree.Element) int {
	pPr := childByTag(p, "pPr")
	if pPr == nil {
		return 0
	}
	pStyle := childByTag(pPr, "pStyle")
	if pStyle == nil {
		return 0
	}

	style := attrValue(pStyle, "val")
	switch {
	case style == "Title":
		return 1
	case strings.HasPrefix(style, "Heading"):
		level := 0
		fmt.Sscanf(strings.TrimPrefix(style, "Heading"), "%d", &level)
		if level < 1 {
			return 0
		}
		if level > 6 {
			return 6
		}
		return level
	}
	return 0
}

func isListItem(p *etree.Element) bool {
	pPr := childByTag(p, "pPr")
	return pPr != nil && childByTag(pPr, "numPr") != nil
}

func isBoldRun(r *etree.Element) bool {
	rPr := childByTag(r, "rPr")
	return rPr != nil && childByTag(rPr, "b") != nil
}

// childByTag matches on the local tag name, ignoring the namespace prefix,
// since w: is not guaranteed to be the declared prefix.
func childByTag(el *etree.Element, tag string) *etree.Element {
	for _, child := range el.ChildElements() {
		if child.Tag == tag {
			return child
		}
	}
	return nil
}

func attrValue(el *etree.Element, key string) string {
	for _, attr := range el.Attr {
		if attr.Key == key {
			return attr.Value
		}
	}
	return ""
}
