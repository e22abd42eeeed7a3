// Package notebook converts Jupyter notebooks (nbformat JSON) into Markdown
// fragments: markdown cells pass through verbatim, code cells become fenced
// python blocks, raw cells become bare fenced blocks.
package notebook

import (
	"encoding/json"
	"fmt"
	"strings"
)

type document struct {
	Cells []cell `json:"cells"`
}

type cell struct {
	CellType string      `json:"cell_type"`
	Source   sourceLines `json:"source"`
}

// sourceLines tolerates both nbformat encodings of cell source: a list of
// lines or a single string.
type sourceLines []string

func (s *sourceLines) UnmarshalJSON(data []byte) error {
	var lines []string
	if err := json.Unmarshal(data, &lines); err == nil {
		*s = lines
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return fmt.Errorf("cell source is neither string nor list: %w", err)
	}
	*s = []string{single}
	return nil
}

// Extract assembles the notebook cells into one Markdown-ready text.
func Extract(data []byte) (string, error) {
	var nb document
	if err := json.Unmarshal(data, &nb); err != nil {
		return "", fmt.Errorf("parsing notebook JSON: %w", err)
	}

	var blocks []string
	for _, c := range nb.Cells {
		source := strings.Join(c.Source, "")
		switch c.CellType {
		case "markdown":
			blocks = append(blocks, source)
		case "code":
			blocks = append(blocks, "```python\n"+source+"\n```")
		case "raw":
			blocks = append(blocks, "```\n"+source+"\n```")
		}
	}

	return strings.Join(blocks, "\n\n"), nil
}
