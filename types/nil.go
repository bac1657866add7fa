package types

// Nil - the explicit nil leaf
type Nil struct{}

// ValueEquals compares nils
func (Nil) ValueEquals(that Value) bool {
	_, valid := that.(Nil)
	return valid
}

// HashBytes is a single zero byte
func (Nil) HashBytes() []byte {
	b := [1]byte{byte(0)}
	return b[:]
}

func (Nil) String() string {
	return "nil"
}
