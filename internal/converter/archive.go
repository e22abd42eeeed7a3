package converter

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"

	"github.com/docpipe/docpipe/internal/markdown"
)

// archivePreamble identifies aggregated output as archive content.
const archivePreamble = "Content from the zip file:"

// expandArchive converts every file entry of a zip container by re-entering
// Convert, and aggregates the results under per-entry section headers in
// archive-native order. Entries are processed strictly sequentially. A
// failing entry fails the whole aggregate.
//
// Nesting depth and cumulative expanded bytes are bounded so a maliciously
// nested archive cannot run away; both limits surface as ExtractionError.
func expandArchive(data []byte, opts Options) (string, error) {
	if opts.depth >= opts.MaxArchiveDepth {
		return "", wrapExtraction(FormatArchive,
			fmt.Errorf("%w (%d levels)", ErrArchiveTooDeep, opts.MaxArchiveDepth))
	}
	if opts.budget == nil {
		opts.budget = &archiveBudget{remaining: opts.MaxArchiveBytes}
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", wrapExtraction(FormatArchive, fmt.Errorf("opening archive: %w", err))
	}

	var b bytes.Buffer
	b.WriteString(archivePreamble + "\n\n")

	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}

		entryData, err := readArchiveEntry(f, opts.budget)
		if err != nil {
			return "", wrapExtraction(FormatArchive, err)
		}

		entryOpts := opts
		entryOpts.FileName = f.Name
		entryOpts.depth = opts.depth + 1

		entryMarkdown, err := Convert(FromBytes(entryData), entryOpts)
		if err != nil {
			return "", wrapExtraction(FormatArchive,
				fmt.Errorf("entry %s: %w", f.Name, err))
		}

		b.WriteString("## File: " + f.Name + "\n\n" + entryMarkdown + "\n\n")
	}

	return markdown.Normalize(b.String()), nil
}

func readArchiveEntry(f *zip.File, budget *archiveBudget) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("opening entry %s: %w", f.Name, err)
	}
	defer rc.Close()

	// Read through a limit one byte past the remaining budget so oversized
	// entries are caught even when their header lies about the size.
	limited := io.LimitReader(rc, budget.remaining+1)
	entryData, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("reading entry %s: %w", f.Name, err)
	}

	budget.remaining -= int64(len(entryData))
	if budget.remaining < 0 {
		return nil, fmt.Errorf("%w at entry %s", ErrArchiveTooLarge, f.Name)
	}

	return entryData, nil
}
