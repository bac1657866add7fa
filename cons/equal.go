package cons

import (
	"encoding/binary"

	"github.com/dball/conscell/types"
	"github.com/spaolacci/murmur3"
)

// ValueEquals compares slots pairwise; back links are ignored
func (c *Cell) ValueEquals(that types.Value) bool {
	other, valid := that.(*Cell)
	if !valid {
		return false
	}
	return c.Equal(other)
}

// Equal compares slots pairwise along both chains
func (c *Cell) Equal(other *Cell) bool {
	if c == nil || other == nil {
		return c == other
	}
	for a, b := c, other; ; {
		if a == b {
			return true
		}
		if !a.CarType().Equal(b.CarType()) || !a.CdrType().Equal(b.CdrType()) || !types.Equals(a.car, b.car) {
			return false
		}
		an, bn := a.Next(), b.Next()
		if an == nil || bn == nil {
			if an != nil || bn != nil {
				return false
			}
			return types.Equals(a.cdr, b.cdr)
		}
		a, b = an, bn
	}
}

// HashBytes combines the hashes of the four slot fields
func (c *Cell) HashBytes() []byte {
	hash := murmur3.New32()
	b := make([]byte, 4)
	for current := c; current != nil; {
		binary.LittleEndian.PutUint32(b, current.CarType().Hash())
		hash.Write(b)
		binary.LittleEndian.PutUint32(b, types.Hash(current.car))
		hash.Write(b)
		binary.LittleEndian.PutUint32(b, current.CdrType().Hash())
		hash.Write(b)
		next := current.Next()
		if next == nil {
			binary.LittleEndian.PutUint32(b, types.Hash(current.cdr))
			hash.Write(b)
		}
		current = next
	}
	out := make([]byte, 5)
	out[0] = '('
	binary.LittleEndian.PutUint32(out[1:], hash.Sum32())
	return out
}

// Hash of the cell's slots
func (c *Cell) Hash() uint32 {
	return types.Hash(c)
}

// CompareTo orders cells by car, then by what follows
func (c *Cell) CompareTo(that types.Value) (int8, error) {
	other, valid := that.(*Cell)
	if !valid || other == nil {
		return 0, types.ErrIncomparable
	}
	return c.Compare(other), nil
}

// Compare orders cells by car where the cars are ordered, then by cdr
func (c *Cell) Compare(other *Cell) int8 {
	if result, err := types.Compare(c.car, other.car); err == nil && result != 0 {
		return result
	}
	if result, err := types.Compare(c.cdr, other.cdr); err == nil {
		return result
	}
	return 0
}
