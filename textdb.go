package textdb

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by the table when a key cannot be found.
var ErrNotFound = errors.New("textdb: not found")

var (
	errReleased     = errors.New("textdb: iterator was released")
	errBadDelimiter = errors.New("textdb: delimiter must be a single byte")
)

const (
	defaultDelimiter = '\n'
	defaultSeparator = '\t'
	defaultScanSize  = 1 << 12
)

// ParseError is returned when the key column of a record cannot be
// parsed. It is only ever returned for records that were actually
// inspected by an operation.
type ParseError struct {
	Offset int64  // start offset of the record
	Column int    // key column index
	Input  string // raw key column
	Err    error  // underlying error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("textdb: malformed key %q in column %d of record at offset %d: %v", e.Input, e.Column, e.Offset, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error { return e.Err }

// --------------------------------------------------------------------

// Options define table specific options.
type Options struct {
	// Delimiter is the byte that terminates records.
	// Default: '\n'.
	Delimiter byte

	// ScanSize is the window size in bytes used when scanning for record
	// boundaries. Sources that copy on Slice (such as ReaderAt) read at
	// most this many bytes per call.
	// Default: 4KiB.
	ScanSize int
}

func (o *Options) norm() *Options {
	var oo Options
	if o != nil {
		oo = *o
	}

	if oo.Delimiter == 0 {
		oo.Delimiter = defaultDelimiter
	}
	if oo.ScanSize < 1 {
		oo.ScanSize = defaultScanSize
	}

	return &oo
}
