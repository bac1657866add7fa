package types

import "strings"

// String - string leaf values
type String string

// ValueEquals compares strings
func (s String) ValueEquals(that Value) bool {
	thatString, valid := that.(String)
	if !valid {
		return false
	}
	return s == thatString
}

// HashBytes is the string itself
func (s String) HashBytes() []byte {
	return append([]byte(s), byte('"'))
}

// CompareTo orders strings lexically
func (s String) CompareTo(that Value) (int8, error) {
	thatString, valid := that.(String)
	if !valid {
		return 0, ErrIncomparable
	}
	return sign(strings.Compare(string(s), string(thatString))), nil
}

func (s String) String() string {
	return string(s)
}
