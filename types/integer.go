package types

import (
	"encoding/binary"
	"strconv"
)

// Integer - integer leaf values
type Integer int64

// ValueEquals compares integers
func (i Integer) ValueEquals(that Value) bool {
	thatInt, valid := that.(Integer)
	if !valid {
		return false
	}
	return i == thatInt
}

// HashBytes is the little-endian encoding
func (i Integer) HashBytes() []byte {
	b := make([]byte, 9)
	b[0] = 'i'
	binary.LittleEndian.PutUint64(b[1:], uint64(i))
	return b
}

// CompareTo orders integers
func (i Integer) CompareTo(that Value) (int8, error) {
	thatInt, valid := that.(Integer)
	if !valid {
		return 0, ErrIncomparable
	}
	switch {
	case i > thatInt:
		return 1, nil
	case i < thatInt:
		return -1, nil
	}
	return 0, nil
}

func (i Integer) String() string {
	return strconv.FormatInt(int64(i), 10)
}
