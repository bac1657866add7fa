package types

import (
	"encoding/binary"
	"fmt"
)

// Atom - a mutable box around a value
type Atom struct {
	Value Value
}

// NewAtom boxes a value
func NewAtom(value Value) *Atom {
	return &Atom{Value: value}
}

// Set the value of an atom
func (a *Atom) Set(value Value) {
	a.Value = value
}

// Duplicate boxes the same value in a fresh atom
func (a *Atom) Duplicate() Value {
	return &Atom{Value: a.Value}
}

// ValueEquals compares the boxed values
func (a *Atom) ValueEquals(that Value) bool {
	thatAtom, valid := that.(*Atom)
	if !valid {
		return false
	}
	if a == thatAtom {
		return true
	}
	return Equals(a.Value, thatAtom.Value)
}

// HashBytes hashes the boxed value
func (a *Atom) HashBytes() []byte {
	b := make([]byte, 5)
	b[0] = '@'
	binary.LittleEndian.PutUint32(b[1:], Hash(a.Value))
	return b
}

func (a *Atom) String() string {
	return fmt.Sprintf("(atom %v)", a.Value)
}
