// Package slides extracts the text runs from PPTX presentations. Slide
// parts are processed in container order and each slide's text runs are
// joined into a single block under a comment naming the slide part.
package slides

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
)

const slidePrefix = "ppt/slides/slide"

// Extract walks the presentation's slide parts and returns their text
// content, one block per slide. The container is read in memory; no scratch
// files are created.
func Extract(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("opening PPTX container: %w", err)
	}

	var b strings.Builder
	for _, f := range zr.File {
		if !strings.HasPrefix(f.Name, slidePrefix) || !strings.HasSuffix(f.Name, ".xml") {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("opening slide %s: %w", f.Name, err)
		}
		raw, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", fmt.Errorf("reading slide %s: %w", f.Name, err)
		}

		slideText, err := slideTextFromXML(raw)
		if err != nil {
			return "", fmt.Errorf("parsing slide %s: %w", f.Name, err)
		}

		b.WriteString("\n\n<!-- " + f.Name + " -->\n" + slideText + "\n")
	}

	return b.String(), nil
}

// slideTextFromXML collects every a:t text run in document order.
func slideTextFromXML(raw []byte) (string, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(raw); err != nil {
		return "", err
	}

	var texts []string
	var walk func(el *etree.Element)
	walk = func(el *etree.Element) {
		if el.Tag == "t" {
			texts = append(texts, el.Text())
			return
		}
		for _, child := range el.ChildElements() {
			walk(child)
		}
	}
	if root := doc.Root(); root != nil {
		walk(root)
	}

	return strings.Join(texts, " "), nil
}
