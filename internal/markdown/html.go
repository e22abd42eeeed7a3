package markdown

import (
	"fmt"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
)

// FromHTML renders an HTML document as Markdown. Script and style elements,
// and any element whose text content is empty, are stripped first so the
// renderer never emits empty headings or bullets. Tables are rendered with
// the same pipe-table shape as Table, with literal pipes escaped.
//
// The output gets a light cleanup (collapsed newlines, trimmed lines joined
// by blank lines); callers still run Normalize on it.
func FromHTML(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	doc.Find("script, style").Remove()
	doc.Find("*").Each(func(_ int, sel *goquery.Selection) {
		if strings.TrimSpace(sel.Text()) == "" {
			sel.Remove()
		}
	})

	conv := md.NewConverter("", true, &md.Options{
		HeadingStyle:     "atx",
		HorizontalRule:   "---",
		BulletListMarker: "*",
		CodeBlockStyle:   "fenced",
		EmDelimiter:      "_",
	})
	conv.AddRules(tableRule)

	return cleanupRendered(conv.Convert(doc.Selection)), nil
}

// tableRule replaces the library's default table handling so tables inside
// HTML degrade to the same pipe-table shape as Table. The first row is the
// header regardless of th/td usage.
var tableRule = md.Rule{
	Filter: []string{"table"},
	Replacement: func(content string, selec *goquery.Selection, opt *md.Options) *string {
		rows := selec.Find("tr")
		if rows.Length() == 0 {
			return md.String("")
		}

		var grid Grid
		rows.Each(func(_ int, tr *goquery.Selection) {
			var cells []string
			tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
				text := strings.TrimSpace(cell.Text())
				cells = append(cells, strings.ReplaceAll(text, "|", `\|`))
			})
			grid = append(grid, cells)
		})

		return md.String("\n\n" + Table(grid) + "\n\n")
	},
}

// cleanupRendered collapses runs of newlines and reassembles the non-empty
// trimmed lines with blank-line separators. Lighter than Normalize: no
// heading promotion or paragraph merging happens here.
func cleanupRendered(s string) string {
	s = multiNewline.ReplaceAllString(s, "\n\n")
	s = strings.TrimSpace(s)

	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}

	return strings.Join(lines, "\n\n")
}
