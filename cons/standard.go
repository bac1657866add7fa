package cons

import "github.com/dball/conscell/types"

// Slot types of the standard s-expression variant
var (
	IntegerType = MustSlotType("integer", "", "")
	StringType  = MustSlotType("string", "", "")
	SymbolType  = MustSlotType("symbol", "", "")
	KeywordType = MustSlotType("keyword", "", "")
	BooleanType = MustSlotType("boolean", "", "")
	NilType     = MustSlotType("nil", "", "")
	AtomType    = MustSlotType("atom", "", "")
	ListType    = MustSlotType("list", "(", ")")
	VectorType  = MustSlotType("vector", "[", "]")
)

// Standard is the s-expression variant read and printed by this module
var Standard = &Variant{
	Name: "standard",
	Types: NewRegistry(ValueType, IntegerType, StringType, SymbolType, KeywordType,
		BooleanType, NilType, AtomType, ListType, VectorType),
	Leaf: standardTypeOf,
}

func standardTypeOf(value types.Value) *SlotType {
	switch value.(type) {
	case types.Integer:
		return IntegerType
	case types.String:
		return StringType
	case types.Symbol:
		return SymbolType
	case types.Keyword:
		return KeywordType
	case types.Boolean:
		return BooleanType
	case types.Nil:
		return NilType
	case *types.Atom:
		return AtomType
	case *Cell:
		return ListType
	}
	return nil
}
