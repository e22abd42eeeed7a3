package markdown

import "strings"

// Grid is the row/column intermediate representation shared by the tabular
// source formats. Row 0 is the header row. Rows may be ragged; Table
// tolerates unequal lengths rather than assuming a rectangle.
type Grid [][]string

// Table renders a grid as a GitHub-flavored Markdown pipe table. The header
// row determines the column count for the separator row; body rows are
// joined as-is. An empty grid renders as the empty string.
//
// Table performs no escaping. Callers building grids from content that may
// contain literal pipes escape them to `\|` before handing the grid over.
func Table(grid Grid) string {
	if len(grid) == 0 {
		return ""
	}

	header := grid[0]
	separator := make([]string, len(header))
	for i := range separator {
		separator[i] = "---"
	}

	var b strings.Builder
	b.WriteString("| " + strings.Join(header, " | ") + " |\n")
	b.WriteString("| " + strings.Join(separator, " | ") + " |\n")

	for _, row := range grid[1:] {
		b.WriteString("| " + strings.Join(row, " | ") + " |\n")
	}

	return b.String()
}
