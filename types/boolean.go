package types

// Boolean - boolean leaf values
type Boolean bool

// ValueEquals compares booleans
func (boolean Boolean) ValueEquals(that Value) bool {
	thatBoolean, valid := that.(Boolean)
	if !valid {
		return false
	}
	return boolean == thatBoolean
}

// HashBytes distinguishes true from false
func (boolean Boolean) HashBytes() []byte {
	var byt byte
	if bool(boolean) {
		byt = byte(1)
	} else {
		byt = byte(2)
	}
	b := [1]byte{byt}
	return b[:]
}

func (boolean Boolean) String() string {
	if boolean {
		return "true"
	}
	return "false"
}
