package converter

import (
	"regexp"

	"github.com/docpipe/docpipe/internal/utils"
)

// pureBase64 matches strings that are plausibly bare base64 payloads.
var pureBase64 = regexp.MustCompile(`^[A-Za-z0-9+/]+={0,2}$`)

type inputKind int

const (
	kindInvalid inputKind = iota
	kindPath
	kindBytes
	kindEncoded
)

// Input is the document to convert: exactly one of a file path, a raw byte
// buffer, or a base64/data-URI string. Construct it with FromPath,
// FromBytes, FromEncoded, or FromString; the zero value is invalid.
type Input struct {
	kind    inputKind
	path    string
	data    []byte
	encoded string
}

// FromPath builds an Input referring to a file on disk.
func FromPath(path string) Input {
	return Input{kind: kindPath, path: path}
}

// FromBytes builds an Input from an in-memory buffer.
func FromBytes(data []byte) Input {
	return Input{kind: kindBytes, data: data}
}

// FromEncoded builds an Input from a base64 payload or data URI.
func FromEncoded(encoded string) Input {
	return Input{kind: kindEncoded, encoded: encoded}
}

// FromString classifies an ambiguous string: data URIs and strings that
// look like bare base64 (and do not name an existing file) are treated as
// encoded payloads, everything else as a path.
func FromString(s string) Input {
	if isDataURI(s) || (pureBase64.MatchString(s) && !utils.FileExists(s)) {
		return FromEncoded(s)
	}
	return FromPath(s)
}
