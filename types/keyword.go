package types

// Keyword - self-evaluating names written with a leading colon
type Keyword struct {
	Name string
}

// NewKeyword builds a new keyword
func NewKeyword(name string) Keyword {
	return Keyword{Name: name}
}

// ValueEquals compares keywords
func (keyword Keyword) ValueEquals(that Value) bool {
	thatKeyword, valid := that.(Keyword)
	if !valid {
		return false
	}
	return keyword.Name == thatKeyword.Name
}

// HashBytes is the name with a colon
func (keyword Keyword) HashBytes() []byte {
	return append([]byte(keyword.Name), byte(':'))
}

func (keyword Keyword) String() string {
	return ":" + keyword.Name
}
