package textdb

// Range is a span of record start offsets [Lower, Upper). For an equality
// search, Lower is the first record with a key >= the target and Upper
// the first record with a key > the target. When nothing matches, Lower
// == Upper is the position the key would be inserted at.
type Range struct {
	Lower, Upper int64
}

// Empty returns true if the range contains no records.
func (r Range) Empty() bool { return r.Lower >= r.Upper }

// Len returns the number of bytes spanned by the range.
func (r Range) Len() int64 {
	if r.Empty() {
		return 0
	}
	return r.Upper - r.Lower
}

// Search returns the range of records whose key equals key. Keys are
// only parsed for the records probed by the search, so malformed records
// elsewhere in the table do not cause errors.
func (t *Table) Search(key Key) (Range, error) {
	return t.SearchBetween(key, key)
}

// SearchBetween returns the range of records whose key is within
// [min, max], both inclusive.
func (t *Table) SearchBetween(min, max Key) (Range, error) {
	// While searching for the lower bound, remember the first probed
	// record beyond max to narrow the upper bound search.
	ceil := t.size
	lower, err := t.partition(0, t.size, func(start int64, k Key) bool {
		if k.Compare(max) > 0 && start < ceil {
			ceil = start
		}
		return k.Compare(min) < 0
	})
	if err != nil {
		return Range{}, err
	}
	if lower > ceil {
		// only possible when min > max
		return Range{Lower: lower, Upper: lower}, nil
	}

	upper, err := t.partition(lower, ceil, func(_ int64, k Key) bool {
		return k.Compare(max) <= 0
	})
	if err != nil {
		return Range{}, err
	}
	return Range{Lower: lower, Upper: upper}, nil
}

// partition returns the start of the first record in [lo, hi) for which
// before returns false, or hi if there is none. Like sort.Search, it
// assumes that before is true for a prefix of the records and false for
// the rest. Both lo and hi must be record boundaries.
func (t *Table) partition(lo, hi int64, before func(start int64, k Key) bool) (int64, error) {
	for lo < hi {
		mid := lo + (hi-lo)/2

		start, end, err := t.locate(lo, hi, mid)
		if err != nil {
			return 0, err
		}
		key, err := t.keyAt(start, end)
		if err != nil {
			return 0, err
		}

		if before(start, key) {
			lo = t.next(end) // end >= mid, strictly beyond lo
		} else {
			hi = start // start <= mid, strictly below hi
		}
	}
	return lo, nil
}

// keyAt reads and parses the key of the record [start, end).
func (t *Table) keyAt(start, end int64) (Key, error) {
	rec, err := t.src.Slice(start, end)
	if err != nil {
		return nil, err
	}
	return t.parseKey(start, rec)
}

func (t *Table) parseKey(start int64, rec []byte) (Key, error) {
	key, err := t.acc.ParseKey(rec)
	if err != nil {
		return nil, &ParseError{
			Offset: start,
			Column: keyColumn(t.acc),
			Input:  string(t.acc.Column(rec, keyColumn(t.acc))),
			Err:    err,
		}
	}
	return key, nil
}

func keyColumn(acc Accessor) int {
	if a, ok := acc.(*ColumnAccessor); ok {
		return a.KeyColumn
	}
	return 0
}
