package textdb

import (
	"bytes"
	"io"
)

// Table instances can search and iterate across records of a sorted,
// delimited text source. Tables are immutable and safe for concurrent use.
type Table struct {
	src Source
	acc Accessor

	size  int64
	delim byte
	scan  int64
}

// New wraps a source and returns a Table. It performs no I/O.
func New(src Source, acc Accessor, o *Options) *Table {
	o = o.norm()
	return &Table{
		src: src,
		acc: acc,

		size:  src.Size(),
		delim: o.Delimiter,
		scan:  int64(o.ScanSize),
	}
}

// Open memory-maps the named file and returns a Table. The table must be
// closed after use.
func Open(name string, acc Accessor, o *Options) (*Table, error) {
	m, err := OpenMapped(name)
	if err != nil {
		return nil, err
	}
	return New(m, acc, o), nil
}

// FromBytes returns a table over tab-separated, newline-terminated
// records keyed by their first column as Text. Trailing newlines are
// trimmed.
func FromBytes(b []byte) *Table {
	return New(Buffer(bytes.TrimRight(b, "\n")), NewAccessor(TextKey, 0), nil)
}

// FromString is like FromBytes, but for strings.
func FromString(s string) *Table {
	return FromBytes([]byte(s))
}

// Size returns the size of the underlying source in bytes.
func (t *Table) Size() int64 { return t.size }

// Accessor returns the table's accessor.
func (t *Table) Accessor() Accessor { return t.acc }

// Close closes the underlying source, if it implements io.Closer. All
// slices obtained from the table become invalid.
func (t *Table) Close() error {
	if c, ok := t.src.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Find returns an iterator over all records whose key equals key, in
// file order. The iterator is empty if nothing matches.
func (t *Table) Find(key Key) (*Iterator, error) {
	rng, err := t.Search(key)
	if err != nil {
		return nil, err
	}
	return t.Iterate(rng), nil
}

// FindBetween returns an iterator over all records with keys in
// [min, max].
func (t *Table) FindBetween(min, max Key) (*Iterator, error) {
	rng, err := t.SearchBetween(min, max)
	if err != nil {
		return nil, err
	}
	return t.Iterate(rng), nil
}

// Seek returns an iterator starting at the first record with a key >=
// key and running to the end of the table.
func (t *Table) Seek(key Key) (*Iterator, error) {
	lower, err := t.partition(0, t.size, func(_ int64, k Key) bool {
		return k.Compare(key) < 0
	})
	if err != nil {
		return nil, err
	}
	return t.Iterate(Range{Lower: lower, Upper: t.size}), nil
}

// All returns an iterator over every record of the table.
func (t *Table) All() *Iterator {
	return t.Iterate(Range{Lower: 0, Upper: t.size})
}

// Append retrieves the value of the first record matching key and
// appends it to dst instead of allocating a new byte slice.
// It may return an ErrNotFound error.
func (t *Table) Append(dst []byte, key Key) ([]byte, error) {
	iter, err := t.Find(key)
	if err != nil {
		return dst, err
	}
	defer iter.Release()

	if !iter.Next() {
		if err := iter.Err(); err != nil {
			return dst, err
		}
		return dst, ErrNotFound
	}
	return append(dst, iter.Value()...), nil
}

// Get is a shortcut for Append(nil, key).
// It may return an ErrNotFound error.
func (t *Table) Get(key Key) ([]byte, error) {
	return t.Append(nil, key)
}

// IsSorted walks the whole table once and reports whether the keys of
// all adjacent records are in non-decreasing order. It stops at the first
// inversion. A record with a malformed key yields a *ParseError.
func (t *Table) IsSorted() (bool, error) {
	iter := t.All()
	defer iter.Release()

	var prev Key
	for iter.Next() {
		key, err := iter.Key()
		if err != nil {
			return false, err
		}
		if prev != nil && prev.Compare(key) > 0 {
			return false, nil
		}
		prev = key
	}
	if err := iter.Err(); err != nil {
		return false, err
	}
	return true, nil
}
