// Package feed assembles RSS channels and Atom feeds into Markdown text.
// XML documents that are neither are passed through as raw text rather than
// rejected, so unrecognized XML still yields a best-effort document.
package feed

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// Extract renders the feed's title, description and entries. Non-feed XML
// is returned verbatim.
func Extract(data []byte) (string, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return "", fmt.Errorf("parsing XML: %w", err)
	}

	root := doc.Root()
	if root == nil {
		return "", fmt.Errorf("XML document has no root element")
	}

	switch root.Tag {
	case "rss":
		if channel := childByTag(root, "channel"); channel != nil {
			return rssMarkdown(channel), nil
		}
	case "feed":
		return atomMarkdown(root), nil
	}

	// Neither RSS nor Atom: re-emit the raw XML for the normalizer.
	return string(data), nil
}

func rssMarkdown(channel *etree.Element) string {
	var b strings.Builder

	if title := childText(channel, "title"); title != "" {
		b.WriteString("# " + title + "\n")
	}
	if desc := childText(channel, "description"); desc != "" {
		b.WriteString(desc + "\n\n")
	}

	for _, item := range channel.ChildElements() {
		if item.Tag != "item" {
			continue
		}
		if title := childText(item, "title"); title != "" {
			b.WriteString("## " + title + "\n")
		}
		if pubDate := childText(item, "pubDate"); pubDate != "" {
			b.WriteString("Published on: " + pubDate + "\n")
		}
		if desc := childText(item, "description"); desc != "" {
			b.WriteString("\n" + desc + "\n\n")
		}
	}

	return b.String()
}

func atomMarkdown(root *etree.Element) string {
	var b strings.Builder

	if title := childText(root, "title"); title != "" {
		b.WriteString("# " + title + "\n")
	}
	if subtitle := childText(root, "subtitle"); subtitle != "" {
		b.WriteString(subtitle + "\n\n")
	}

	for _, entry := range root.ChildElements() {
		if entry.Tag != "entry" {
			continue
		}
		if title := childText(entry, "title"); title != "" {
			b.WriteString("## " + title + "\n")
		}
		if updated := childText(entry, "updated"); updated != "" {
			b.WriteString("Updated on: " + updated + "\n")
		}
		if summary := childText(entry, "summary"); summary != "" {
			b.WriteString("\n" + summary + "\n\n")
		} else if content := childText(entry, "content"); content != "" {
			b.WriteString("\n" + content + "\n\n")
		}
	}

	return b.String()
}

func childByTag(el *etree.Element, tag string) *etree.Element {
	for _, child := range el.ChildElements() {
		if child.Tag == tag {
			return child
		}
	}
	return nil
}

func childText(el *etree.Element, tag string) string {
	child := childByTag(el, tag)
	if child == nil {
		return ""
	}
	return strings.TrimSpace(child.Text())
}
