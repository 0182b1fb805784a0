package textdb

import "bytes"

// Accessor extracts keys and payload from raw records. Implementations
// must be deterministic and free of side effects.
type Accessor interface {
	// ParseKey extracts and parses the key of a record.
	ParseKey(record []byte) (Key, error)

	// Value returns the payload of a record, that is everything after
	// the key column.
	Value(record []byte) []byte

	// Column returns the i-th column of a record, or an empty slice if
	// the record has fewer columns.
	Column(record []byte, i int) []byte
}

// ColumnAccessor reads the key from a fixed column of a separated
// record.
type ColumnAccessor struct {
	// KeyColumn is the index of the key column.
	KeyColumn int

	// Separator divides columns.
	// Default: '\t'.
	Separator byte

	// Type is the type the key column is parsed into.
	// Default: TextKey.
	Type KeyType
}

// NewAccessor returns an accessor for tab-separated records keyed on
// column col.
func NewAccessor(typ KeyType, col int) *ColumnAccessor {
	return &ColumnAccessor{KeyColumn: col, Separator: defaultSeparator, Type: typ}
}

// ParseKey implements Accessor.
func (a *ColumnAccessor) ParseKey(record []byte) (Key, error) {
	return a.Type.Parse(Field(record, a.sep(), a.KeyColumn))
}

// Value implements Accessor.
func (a *ColumnAccessor) Value(record []byte) []byte {
	sep := a.sep()
	for i := 0; i <= a.KeyColumn; i++ {
		n := bytes.IndexByte(record, sep)
		if n < 0 {
			return record[len(record):]
		}
		record = record[n+1:]
	}
	return record
}

// Column implements Accessor.
func (a *ColumnAccessor) Column(record []byte, i int) []byte {
	return Field(record, a.sep(), i)
}

func (a *ColumnAccessor) sep() byte {
	if a.Separator == 0 {
		return defaultSeparator
	}
	return a.Separator
}

// Field returns the i-th sep-separated field of record, or an empty
// slice if there are fewer fields.
func Field(record []byte, sep byte, i int) []byte {
	for ; i > 0; i-- {
		n := bytes.IndexByte(record, sep)
		if n < 0 {
			return record[len(record):]
		}
		record = record[n+1:]
	}

	if n := bytes.IndexByte(record, sep); n >= 0 {
		return record[:n]
	}
	return record
}
