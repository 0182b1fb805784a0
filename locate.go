package textdb

import (
	"bytes"
	"fmt"
	"io"
)

// RecordAt returns the [start, end) span of the record containing the
// byte at off. If off points at a delimiter, the record terminated by
// that delimiter is returned. At off == Size() it returns io.EOF. It
// panics if off is outside [0, Size()].
func (t *Table) RecordAt(off int64) (start, end int64, err error) {
	if off < 0 || off > t.size {
		panic(fmt.Sprintf("textdb: offset %d out of range [0,%d]", off, t.size))
	}
	if off == t.size {
		return off, off, io.EOF
	}
	return t.locate(0, t.size, off)
}

// locate resolves off to its enclosing record. The scan is confined to
// the window [lo, hi), which must start and end on record boundaries,
// and lo <= off < hi.
func (t *Table) locate(lo, hi, off int64) (start, end int64, err error) {
	start = lo
	for pos := off; pos > lo; {
		n := pos - lo
		if n > t.scan {
			n = t.scan
		}

		p, err := t.src.Slice(pos-n, pos)
		if err != nil {
			return 0, 0, err
		}
		if i := bytes.LastIndexByte(p, t.delim); i >= 0 {
			start = pos - n + int64(i) + 1
			break
		}
		pos -= n
	}

	end = hi
	for pos := off; pos < hi; {
		n := hi - pos
		if n > t.scan {
			n = t.scan
		}

		p, err := t.src.Slice(pos, pos+n)
		if err != nil {
			return 0, 0, err
		}
		if i := bytes.IndexByte(p, t.delim); i >= 0 {
			end = pos + int64(i)
			break
		}
		pos += n
	}

	return start, end, nil
}

// next returns the start of the record following the one ending at end.
func (t *Table) next(end int64) int64 {
	if end < t.size {
		return end + 1
	}
	return t.size
}
