package converter

import (
	"archive/zip"
	"bytes"
	"errors"
	"strings"
	"testing"
)

func zipBuffer(t *testing.T, entries map[string]string, order []string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range order {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(entries[name])); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestConvertCSVRoundTrip(t *testing.T) {
	got, err := Convert(FromBytes([]byte("a,b\n1,2\n")), Options{ForceExtension: ".csv"})
	if err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}

	want := "| a | b |\n| --- | --- |\n| 1 | 2 |"
	if got != want {
		t.Errorf("Convert = %q, want %q", got, want)
	}
}

func TestConvertUnknownContentFallsBackToText(t *testing.T) {
	got, err := Convert(FromBytes([]byte("completely unrecognized content here.")), Options{})
	if err != nil {
		t.Fatalf("unknown content must not fail: %v", err)
	}
	if !strings.Contains(got, "unrecognized content") {
		t.Errorf("text fallback lost content: %q", got)
	}
}

func TestConvertYouTubeRouting(t *testing.T) {
	page := []byte("watch page\n<title>My Video</title>\n" +
		`<meta name="description" content="A description">`)

	withURL, err := Convert(FromBytes(page), Options{SourceURL: "https://www.youtube.com/watch?v=x"})
	if err != nil {
		t.Fatalf("Convert with youtube URL failed: %v", err)
	}
	if !strings.HasPrefix(withURL, "# YouTube") {
		t.Errorf("youtube routing missing heading, got %q", withURL)
	}
	if !strings.Contains(withURL, "My Video") {
		t.Errorf("youtube routing lost title, got %q", withURL)
	}

	withoutURL, err := Convert(FromBytes(page), Options{})
	if err != nil {
		t.Fatalf("Convert without URL failed: %v", err)
	}
	if strings.HasPrefix(withoutURL, "# YouTube") {
		t.Errorf("plain conversion must not use the YouTube extractor, got %q", withoutURL)
	}
}

func TestConvertBingRouting(t *testing.T) {
	page := []byte("results page\n" +
		`<div class="b_algo">First result snippet</div>` +
		`<div class="b_algo">Second result snippet</div>`)

	got, err := Convert(FromBytes(page), Options{SourceURL: "https://www.bing.com/search?q=golang"})
	if err != nil {
		t.Fatalf("Convert with bing URL failed: %v", err)
	}

	if !strings.Contains(got, "A Bing search for 'golang'") {
		t.Errorf("missing query heading in %q", got)
	}
	if !strings.Contains(got, "First result snippet") || !strings.Contains(got, "Second result snippet") {
		t.Errorf("missing result snippets in %q", got)
	}
}

func TestConvertArchiveAggregation(t *testing.T) {
	data := zipBuffer(t,
		map[string]string{"a.txt": "hello", "b.csv": "x\n1\n"},
		[]string{"a.txt", "b.csv"})

	got, err := Convert(FromBytes(data), Options{})
	if err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}

	first := strings.Index(got, "## File: a.txt")
	second := strings.Index(got, "## File: b.csv")
	if first < 0 || second < 0 {
		t.Fatalf("missing entry sections in:\n%s", got)
	}
	if first > second {
		t.Errorf("entries out of archive order:\n%s", got)
	}
	if !strings.Contains(got, "hello") {
		t.Errorf("a.txt content missing in:\n%s", got)
	}
	if !strings.Contains(got, "| x |") || !strings.Contains(got, "| 1 |") {
		t.Errorf("b.csv table missing in:\n%s", got)
	}
}

func TestConvertArchiveSkipsDirectories(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	if _, err := zw.Create("sub/"); err != nil {
		t.Fatal(err)
	}
	w, err := zw.Create("sub/inner.txt")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte("nested entry")); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	got, err := Convert(FromBytes(buf.Bytes()), Options{})
	if err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}

	if strings.Contains(got, "## File: sub/\n") {
		t.Errorf("directory entry produced a section:\n%s", got)
	}
	if !strings.Contains(got, "## File: sub/inner.txt") {
		t.Errorf("file entry section missing:\n%s", got)
	}
}

func TestConvertNestedArchive(t *testing.T) {
	inner := zipBuffer(t, map[string]string{"deep.txt": "bottom text here."}, []string{"deep.txt"})
	outer := zipBuffer(t, map[string]string{"inner.zip": string(inner)}, []string{"inner.zip"})

	got, err := Convert(FromBytes(outer), Options{})
	if err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}

	if !strings.Contains(got, "## File: inner.zip") {
		t.Errorf("outer section missing:\n%s", got)
	}
	if !strings.Contains(got, "bottom text here.") {
		t.Errorf("nested entry content missing:\n%s", got)
	}
}

func TestConvertArchiveDepthLimit(t *testing.T) {
	inner := zipBuffer(t, map[string]string{"deep.txt": "x"}, []string{"deep.txt"})
	outer := zipBuffer(t, map[string]string{"inner.zip": string(inner)}, []string{"inner.zip"})

	_, err := Convert(FromBytes(outer), Options{MaxArchiveDepth: 1})
	if !errors.Is(err, ErrArchiveTooDeep) {
		t.Errorf("err = %v, want ErrArchiveTooDeep", err)
	}

	var extractionErr *ExtractionError
	if !errors.As(err, &extractionErr) {
		t.Fatalf("err %v is not an ExtractionError", err)
	}
	if extractionErr.Format != FormatArchive {
		t.Errorf("failing format = %q, want %q", extractionErr.Format, FormatArchive)
	}
}

func TestConvertArchiveByteBudget(t *testing.T) {
	data := zipBuffer(t, map[string]string{"big.txt": "0123456789"}, []string{"big.txt"})

	_, err := Convert(FromBytes(data), Options{MaxArchiveBytes: 4})
	if !errors.Is(err, ErrArchiveTooLarge) {
		t.Errorf("err = %v, want ErrArchiveTooLarge", err)
	}
}

func TestConvertArchiveEntryFailureFailsAggregate(t *testing.T) {
	// An entry with a PDF name but garbage content must fail the whole
	// archive, not degrade to a placeholder.
	data := zipBuffer(t, map[string]string{"broken.pdf": "not a pdf"}, []string{"broken.pdf"})

	_, err := Convert(FromBytes(data), Options{})
	if err == nil {
		t.Fatal("expected aggregate failure for broken entry")
	}

	var extractionErr *ExtractionError
	if !errors.As(err, &extractionErr) {
		t.Fatalf("err %v is not an ExtractionError", err)
	}
}

func TestConvertTextFile(t *testing.T) {
	got, err := Convert(FromBytes([]byte("plain body text.")), Options{ForceExtension: ".txt"})
	if err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}
	if got != "plain body text." {
		t.Errorf("Convert = %q", got)
	}
}

func TestConvertHTML(t *testing.T) {
	html := []byte("<html><body><h1>Doc</h1><p>body text, wrapped.</p></body></html>")
	got, err := Convert(FromBytes(html), Options{ForceExtension: ".html"})
	if err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}
	if !strings.Contains(got, "# Doc") {
		t.Errorf("missing heading in %q", got)
	}
	if !strings.Contains(got, "body text, wrapped.") {
		t.Errorf("missing body in %q", got)
	}
}

func TestConvertExtractionErrorWrapsFormat(t *testing.T) {
	_, err := Convert(FromBytes([]byte("not a pdf")), Options{ForceExtension: ".pdf"})
	if err == nil {
		t.Fatal("expected extraction failure")
	}

	var extractionErr *ExtractionError
	if !errors.As(err, &extractionErr) {
		t.Fatalf("err %v is not an ExtractionError", err)
	}
	if extractionErr.Format != FormatPDF {
		t.Errorf("failing format = %q, want %q", extractionErr.Format, FormatPDF)
	}
}
