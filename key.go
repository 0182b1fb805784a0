package textdb

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Key is a parsed, totally ordered record key.
type Key interface {
	// Compare returns -1, 0 or +1 if the key is less than, equal to or
	// greater than other. It panics if the two keys are not comparable.
	Compare(other Key) int
}

// Text is a raw byte key, ordered lexicographically (the order produced
// by `LC_ALL=C sort`).
type Text []byte

// Compare implements Key.
func (k Text) Compare(other Key) int {
	if o, ok := other.(Text); ok {
		return bytes.Compare(k, o)
	}
	panic(incomparable(k, other))
}

// Int is a signed integer key.
type Int int64

// Compare implements Key.
func (k Int) Compare(other Key) int {
	switch o := other.(type) {
	case Int:
		return compareInt64(int64(k), int64(o))
	case Uint:
		if k < 0 || uint64(o) > math.MaxInt64 {
			return -1
		}
		return compareInt64(int64(k), int64(o))
	case Float:
		return -o.Compare(k)
	}
	panic(incomparable(k, other))
}

// Uint is an unsigned integer key.
type Uint uint64

// Compare implements Key.
func (k Uint) Compare(other Key) int {
	switch o := other.(type) {
	case Uint:
		switch {
		case k < o:
			return -1
		case k > o:
			return 1
		}
		return 0
	case Int, Float:
		return -o.Compare(k)
	}
	panic(incomparable(k, other))
}

// Float is a floating point key. NaN is never produced by the parser.
type Float float64

// Compare implements Key.
func (k Float) Compare(other Key) int {
	var f float64
	switch o := other.(type) {
	case Float:
		f = float64(o)
	case Int:
		f = float64(o)
	case Uint:
		f = float64(o)
	default:
		panic(incomparable(k, other))
	}

	switch {
	case float64(k) < f:
		return -1
	case float64(k) > f:
		return 1
	}
	return 0
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func incomparable(a, b Key) string {
	return fmt.Sprintf("textdb: cannot compare %T with %T", a, b)
}

// --------------------------------------------------------------------

// KeyType is the type a key column is parsed into.
type KeyType byte

// Supported key types
const (
	TextKey KeyType = iota
	IntKey
	UintKey
	FloatKey
	unknownKey
)

var errNaN = errors.New("NaN is not ordered")

func (t KeyType) isValid() bool {
	return t < unknownKey
}

// String returns the type name.
func (t KeyType) String() string {
	switch t {
	case TextKey:
		return "text"
	case IntKey:
		return "int"
	case UintKey:
		return "uint"
	case FloatKey:
		return "float"
	}
	return "KeyType(" + strconv.Itoa(int(t)) + ")"
}

// ParseKeyType parses a type name as returned by KeyType.String.
func ParseKeyType(s string) (KeyType, error) {
	for t := TextKey; t < unknownKey; t++ {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("textdb: unknown key type %q", s)
}

// Parse converts raw column bytes into a key of type t. Text keys alias
// b and never fail.
func (t KeyType) Parse(b []byte) (Key, error) {
	switch t {
	case TextKey:
		return Text(b), nil
	case IntKey:
		n, err := strconv.ParseInt(string(b), 10, 64)
		if err != nil {
			return nil, err
		}
		return Int(n), nil
	case UintKey:
		n, err := strconv.ParseUint(string(b), 10, 64)
		if err != nil {
			return nil, err
		}
		return Uint(n), nil
	case FloatKey:
		f, err := strconv.ParseFloat(string(b), 64)
		if err != nil {
			return nil, err
		}
		if math.IsNaN(f) {
			return nil, errNaN
		}
		return Float(f), nil
	}
	return nil, fmt.Errorf("textdb: unknown key type %v", t)
}
