package types

import "strings"

// Symbol - bare identifiers
type Symbol struct {
	Name string
}

// NewSymbol builds a new symbol
func NewSymbol(name string) Symbol {
	return Symbol{Name: name}
}

// ValueEquals compares symbols
func (symbol Symbol) ValueEquals(that Value) bool {
	thatSymbol, valid := that.(Symbol)
	if !valid {
		return false
	}
	return symbol.Name == thatSymbol.Name
}

// HashBytes is the name with a quote
func (symbol Symbol) HashBytes() []byte {
	return append([]byte(symbol.Name), byte('\''))
}

// CompareTo orders symbols by name
func (symbol Symbol) CompareTo(that Value) (int8, error) {
	thatSymbol, valid := that.(Symbol)
	if !valid {
		return 0, ErrIncomparable
	}
	return sign(strings.Compare(symbol.Name, thatSymbol.Name)), nil
}

func (symbol Symbol) String() string {
	return symbol.Name
}
