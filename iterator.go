package textdb

// Iterate returns an iterator over the records in rng. Iterators are
// forward-only; to restart, create a new one from the same range.
func (t *Table) Iterate(rng Range) *Iterator {
	if rng.Lower < 0 {
		rng.Lower = 0
	}
	if rng.Upper > t.size {
		rng.Upper = t.size
	}
	return &Iterator{t: t, pos: rng.Lower, stop: rng.Upper}
}

// Iterator is a forward cursor over a range of records.
type Iterator struct {
	t    *Table
	pos  int64 // start of the next record
	stop int64 // end of the range

	start int64  // start of the current record
	rec   []byte // current record

	err error
}

// Offset returns the start offset of the current record.
func (i *Iterator) Offset() int64 { return i.start }

// Record returns the current record without its delimiter. Please note
// that records may be temporary buffers and must be copied if used
// beyond the lifetime of the table.
func (i *Iterator) Record() []byte { return i.rec }

// Key parses the key of the current record.
func (i *Iterator) Key() (Key, error) {
	return i.t.parseKey(i.start, i.rec)
}

// Value returns the payload of the current record.
func (i *Iterator) Value() []byte { return i.t.acc.Value(i.rec) }

// Column returns the n-th column of the current record.
func (i *Iterator) Column(n int) []byte { return i.t.acc.Column(i.rec, n) }

// More returns true if more records can be read.
func (i *Iterator) More() bool {
	return i.err == nil && i.pos < i.stop
}

// Next advances the cursor to the next record and returns true if
// successful.
func (i *Iterator) Next() bool {
	if !i.More() {
		return false
	}

	_, end, err := i.t.locate(i.pos, i.stop, i.pos)
	if err != nil {
		i.err = err
		return false
	}

	rec, err := i.t.src.Slice(i.pos, end)
	if err != nil {
		i.err = err
		return false
	}

	i.start, i.rec = i.pos, rec
	i.pos = i.t.next(end)
	return true
}

// Err exposes iterator errors, if any.
func (i *Iterator) Err() error {
	return i.err
}

// Release releases the iterator. The iterator must not be used after
// this method is called.
func (i *Iterator) Release() {
	i.rec = nil
	i.err = errReleased
}
