package textdb

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/exp/mmap"
)

// Source is an immutable, randomly addressable span of bytes.
type Source interface {
	// Size returns the total number of bytes. It must not change over the
	// lifetime of the source.
	Size() int64

	// Slice returns the bytes in [start, end). Bounds must satisfy
	// 0 <= start <= end <= Size(). Callers must not modify the result.
	Slice(start, end int64) ([]byte, error)
}

// Buffer is an in-memory Source. Slices share memory with the buffer.
type Buffer []byte

// Size implements Source.
func (b Buffer) Size() int64 { return int64(len(b)) }

// Slice implements Source.
func (b Buffer) Slice(start, end int64) ([]byte, error) {
	return b[start:end:end], nil
}

// --------------------------------------------------------------------

// ReaderAt adapts an io.ReaderAt of known size to a Source. Each call to
// Slice reads into a fresh buffer, so slices remain valid independently
// of the reader.
type ReaderAt struct {
	r    io.ReaderAt
	size int64
}

// NewReaderAt wraps r.
func NewReaderAt(r io.ReaderAt, size int64) *ReaderAt {
	return &ReaderAt{r: r, size: size}
}

// OpenReaderAt opens a file as a read-only memory map accessed through
// io.ReaderAt. It is portable across platforms, but copies on every
// Slice. Close must be called to release the mapping.
func OpenReaderAt(name string) (*ReaderAt, error) {
	m, err := mmap.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "textdb: open %s", name)
	}
	return NewReaderAt(m, int64(m.Len())), nil
}

// Size implements Source.
func (r *ReaderAt) Size() int64 { return r.size }

// Slice implements Source.
func (r *ReaderAt) Slice(start, end int64) ([]byte, error) {
	if start < 0 || start > end || end > r.size {
		panic(fmt.Sprintf("textdb: slice [%d,%d) out of range [0,%d]", start, end, r.size))
	}

	buf := make([]byte, int(end-start))
	if len(buf) == 0 {
		return buf, nil
	}

	n, err := r.r.ReadAt(buf, start)
	if err == io.EOF && n == len(buf) {
		err = nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "textdb: read [%d,%d)", start, end)
	}
	return buf, nil
}

// Close closes the underlying reader, if it implements io.Closer.
func (r *ReaderAt) Close() error {
	if c, ok := r.r.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
