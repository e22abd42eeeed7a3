package sheet

import (
	"bytes"
	"testing"

	"github.com/tealeg/xlsx/v3"
)

func TestCSVBasic(t *testing.T) {
	grid, err := CSV([]byte("a,b\n1,2\n"))
	if err != nil {
		t.Fatalf("CSV returned error: %v", err)
	}

	if len(grid) != 2 {
		t.Fatalf("got %d rows, want 2", len(grid))
	}
	if grid[0][0] != "a" || grid[0][1] != "b" || grid[1][0] != "1" || grid[1][1] != "2" {
		t.Errorf("unexpected grid: %v", grid)
	}
}

func TestCSVRaggedRows(t *testing.T) {
	grid, err := CSV([]byte("a,b,c\n1\n2,3\n"))
	if err != nil {
		t.Fatalf("ragged CSV must parse: %v", err)
	}

	wantLens := []int{3, 1, 2}
	if len(grid) != len(wantLens) {
		t.Fatalf("got %d rows, want %d", len(grid), len(wantLens))
	}
	for i, want := range wantLens {
		if len(grid[i]) != want {
			t.Errorf("row %d has %d fields, want %d", i, len(grid[i]), want)
		}
	}
}

func TestCSVSkipsBlankLines(t *testing.T) {
	grid, err := CSV([]byte("a,b\n\n1,2\n\n"))
	if err != nil {
		t.Fatalf("CSV returned error: %v", err)
	}
	if len(grid) != 2 {
		t.Errorf("got %d rows, want 2 (blank lines skipped): %v", len(grid), grid)
	}
}

func TestCSVQuotedFields(t *testing.T) {
	grid, err := CSV([]byte("name,notes\nalice,\"likes, commas\"\n"))
	if err != nil {
		t.Fatalf("CSV returned error: %v", err)
	}
	if grid[1][1] != "likes, commas" {
		t.Errorf("quoted field = %q", grid[1][1])
	}
}

func TestWorkbookRoundTrip(t *testing.T) {
	f := xlsx.NewFile()
	sh, err := f.AddSheet("Data")
	if err != nil {
		t.Fatal(err)
	}

	header := sh.AddRow()
	header.AddCell().Value = "a"
	header.AddCell().Value = "b"
	body := sh.AddRow()
	body.AddCell().Value = "1"
	body.AddCell().Value = "2"

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatal(err)
	}

	sheets, err := Workbook(buf.Bytes())
	if err != nil {
		t.Fatalf("Workbook returned error: %v", err)
	}

	if len(sheets) != 1 {
		t.Fatalf("got %d sheets, want 1", len(sheets))
	}
	if sheets[0].Name != "Data" {
		t.Errorf("sheet name = %q, want Data", sheets[0].Name)
	}
	grid := sheets[0].Grid
	if len(grid) != 2 {
		t.Fatalf("got %d rows, want 2: %v", len(grid), grid)
	}
	if grid[0][0] != "a" || grid[1][1] != "2" {
		t.Errorf("unexpected grid: %v", grid)
	}
}

func TestWorkbookRejectsGarbage(t *testing.T) {
	if _, err := Workbook([]byte("not a workbook")); err == nil {
		t.Error("expected error for non-XLSX bytes")
	}
}
