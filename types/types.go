package types

import (
	"errors"
	"fmt"
	"hash"
	"reflect"

	"github.com/spaolacci/murmur3"
)

// Value - the root type of all slot payloads
type Value interface{}

// HasValueEquality - is a type which can compare itself to other values
type HasValueEquality interface {
	ValueEquals(Value) bool
	HashBytes() []byte
}

// Duplicable - leaf values that know how to copy themselves
type Duplicable interface {
	Duplicate() Value
}

// Ordered - values that have a natural order against values of the same type
type Ordered interface {
	CompareTo(Value) (int8, error)
}

// ErrIncomparable is returned when two values have no common order
var ErrIncomparable = errors.New("Incomparable values")

func hashAnyValue(hash hash.Hash32, value Value) {
	switch cast := value.(type) {
	case nil:
		hash.Write([]byte{0})
	case HasValueEquality:
		hash.Write(cast.HashBytes())
	case fmt.Stringer:
		hash.Write([]byte(cast.String()))
	default:
		// the printed form agrees with Equals for plain go values
		hash.Write([]byte(fmt.Sprintf("%T:%v", value, value)))
	}
}

// Hash computes a murmur3 hash of the given value
func Hash(value Value) uint32 {
	hash := murmur3.New32()
	hashAnyValue(hash, value)
	return hash.Sum32()
}

// Hasher adapts Hash and Equals for immutable collections
type Hasher struct{}

// Hash hashes a key
func (h Hasher) Hash(key interface{}) uint32 {
	return Hash(key)
}

// Equal compares keys
func (h Hasher) Equal(a, b interface{}) bool {
	return Equals(a, b)
}

// Equals compares values
func Equals(this Value, that Value) bool {
	switch cast := this.(type) {
	case nil:
		return that == nil
	case HasValueEquality:
		return cast.ValueEquals(that)
	default:
		return reflect.DeepEqual(this, that)
	}
}

// Compare compares values
func Compare(this Value, that Value) (int8, error) {
	switch cast := this.(type) {
	case Ordered:
		return cast.CompareTo(that)
	default:
		return 0, ErrIncomparable
	}
}

func sign(delta int) int8 {
	if delta > 0 {
		return 1
	} else if delta == 0 {
		return 0
	}
	return -1
}
