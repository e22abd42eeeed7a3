package converter

import "github.com/rs/zerolog"

const (
	// DefaultMaxArchiveDepth bounds how many containers may nest before
	// expansion aborts.
	DefaultMaxArchiveDepth = 8
	// DefaultMaxArchiveBytes bounds the cumulative uncompressed size of all
	// archive entries expanded by one top-level Convert call.
	DefaultMaxArchiveBytes = 256 << 20
)

// Options configures a single Convert call. The value is copied down the
// recursion; archive expansion derives a fresh copy per entry with FileName
// replaced by the entry path and everything else inherited.
type Options struct {
	// ForceExtension overrides format detection entirely (e.g. ".csv").
	ForceExtension string
	// FileName is a detection hint and the display name used for the
	// input when it is an archive entry.
	FileName string
	// SourceURL is an opaque hint enabling the URL-conditioned extractors.
	// It is never dereferenced; page bytes must be supplied as input.
	SourceURL string
	// MaxArchiveDepth caps container nesting. Zero means
	// DefaultMaxArchiveDepth.
	MaxArchiveDepth int
	// MaxArchiveBytes caps cumulative expanded entry bytes per top-level
	// call. Zero means DefaultMaxArchiveBytes.
	MaxArchiveBytes int64
	// Logger receives conversion progress at debug level. Nil disables
	// logging.
	Logger *zerolog.Logger

	// depth and budget track the archive recursion internally; they are
	// never set by callers.
	depth  int
	budget *archiveBudget
}

type archiveBudget struct {
	remaining int64
}

func (o Options) withDefaults() Options {
	if o.MaxArchiveDepth <= 0 {
		o.MaxArchiveDepth = DefaultMaxArchiveDepth
	}
	if o.MaxArchiveBytes <= 0 {
		o.MaxArchiveBytes = DefaultMaxArchiveBytes
	}
	return o
}

func (o Options) logger() zerolog.Logger {
	if o.Logger != nil {
		return *o.Logger
	}
	return zerolog.Nop()
}
