package cons

import "github.com/dball/conscell/types"

// Factory constructs cells of one variant. Every cell remembers its factory,
// so clones and placeholder cells come out as the same variant.
type Factory interface {
	Construct(car types.Value, carType *SlotType, cdr types.Value, cdrType *SlotType) *Cell
	ConstructEmpty() *Cell
}

// Make allocates a cell owned by f. Factory implementations call it; a nil
// slot type means Empty, and a CellLink cdr is linked back to the new cell.
func Make(f Factory, car types.Value, carType *SlotType, cdr types.Value, cdrType *SlotType) *Cell {
	if f == nil {
		f = Basic
	}
	c := &Cell{carType: Empty, cdrType: Empty, factory: f}
	c.SetCar(car, carType)
	c.SetCdr(cdr, cdrType)
	return c
}

// Variant is a Factory whose cells draw their slot types from a registry
type Variant struct {
	Name  string
	Types *Registry
	// Leaf picks the slot type for a car value; nil falls back to ValueType
	Leaf func(types.Value) *SlotType
}

// NewVariant builds a variant knowing the built-in types and the given ones
func NewVariant(name string, slotTypes ...*SlotType) *Variant {
	return &Variant{Name: name, Types: NewRegistry(slotTypes...)}
}

// Construct builds a cell of this variant
func (v *Variant) Construct(car types.Value, carType *SlotType, cdr types.Value, cdrType *SlotType) *Cell {
	return Make(v, car, carType, cdr, cdrType)
}

// ConstructEmpty builds an empty cell of this variant
func (v *Variant) ConstructEmpty() *Cell {
	return Make(v, nil, Empty, nil, Empty)
}

// TypeOf picks the slot type a value would be stored under
func (v *Variant) TypeOf(value types.Value) *SlotType {
	if v.Leaf != nil {
		if t := v.Leaf(value); t != nil {
			return t
		}
	}
	switch value.(type) {
	case nil:
		return Empty
	case *Cell:
		return CellLink
	default:
		return ValueType
	}
}

// Single builds a lone cell holding value in its car
func (v *Variant) Single(value types.Value) *Cell {
	return v.Construct(value, v.TypeOf(value), nil, Empty)
}

// List builds a chain holding values in order; no values gives an empty cell
func (v *Variant) List(values ...types.Value) *Cell {
	head := v.ConstructEmpty()
	tail := head
	for _, value := range values {
		tail = tail.Append(v.Single(value))
	}
	return head
}

// ValueType is the catch-all leaf type
var ValueType = MustSlotType("value", "", "")

// Basic is the variant knowing only the built-in types
var Basic = NewVariant("basic", ValueType)

// New builds a basic cell holding car
func New(car types.Value, carType *SlotType) *Cell {
	return Basic.Construct(car, carType, nil, Empty)
}

// NewPair builds a basic cell from both slots
func NewPair(car types.Value, carType *SlotType, cdr types.Value, cdrType *SlotType) *Cell {
	return Basic.Construct(car, carType, cdr, cdrType)
}
