// Package sheet turns tabular sources (XLSX workbooks, CSV buffers) into
// cell grids for the Markdown table renderer.
package sheet

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/tealeg/xlsx/v3"

	"github.com/docpipe/docpipe/internal/markdown"
)

// NamedGrid is one workbook sheet with its cell contents.
type NamedGrid struct {
	Name string
	Grid markdown.Grid
}

// Workbook reads an XLSX workbook into one grid per sheet, in workbook
// order. Rows keep their native lengths; ragged sheets are not squared off.
func Workbook(data []byte) ([]NamedGrid, error) {
	wb, err := xlsx.OpenBinary(data)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}

	var sheets []NamedGrid
	for _, sh := range wb.Sheets {
		var grid markdown.Grid
		err := sh.ForEachRow(func(row *xlsx.Row) error {
			var cells []string
			if err := row.ForEachCell(func(cell *xlsx.Cell) error {
				cells = append(cells, cell.String())
				return nil
			}); err != nil {
				return err
			}
			grid = append(grid, cells)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("reading sheet %s: %w", sh.Name, err)
		}
		sheets = append(sheets, NamedGrid{Name: sh.Name, Grid: grid})
	}

	return sheets, nil
}

// CSV parses a comma-separated buffer into a grid. Records may have unequal
// field counts; blank lines are skipped.
func CSV(data []byte) (markdown.Grid, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing CSV: %w", err)
	}

	return markdown.Grid(records), nil
}
