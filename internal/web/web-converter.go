// Package web scrapes already-fetched pages that plain-text detection
// cannot make sense of: YouTube watch pages and Bing search result pages.
// The page bytes must be supplied by the caller; nothing is fetched here.
package web

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// YouTube scrapes the page title and meta description of a YouTube page.
// The output always opens with a top-level "# YouTube" heading. Transcript
// fetching via the YouTube API is a deliberate extension point, not
// implemented.
func YouTube(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("parsing YouTube page: %w", err)
	}

	var b strings.Builder
	b.WriteString("# YouTube\n")

	if title := strings.TrimSpace(doc.Find("title").Text()); title != "" {
		b.WriteString("\n## " + title + "\n")
	}
	if desc, ok := doc.Find(`meta[name="description"]`).Attr("content"); ok && desc != "" {
		b.WriteString("\n### Description\n" + desc + "\n")
	}

	return b.String(), nil
}

// BingSERP scrapes the organic result blocks of a Bing search results page.
// The query is recovered from the q parameter of the source URL.
func BingSERP(data []byte, sourceURL string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("parsing Bing page: %w", err)
	}

	query := ""
	if u, err := url.Parse(sourceURL); err == nil {
		query = u.Query().Get("q")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## A Bing search for '%s' found the following results:\n\n", query)

	doc.Find(".b_algo").Each(func(_ int, sel *goquery.Selection) {
		if text := strings.TrimSpace(sel.Text()); text != "" {
			b.WriteString(text + "\n\n")
		}
	})

	return b.String(), nil
}
