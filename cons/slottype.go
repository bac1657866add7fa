package cons

import (
	"fmt"
	"strings"

	"github.com/dball/conscell/types"
	"github.com/spaolacci/murmur3"
)

// SlotType tags a car or cdr slot. Slot types are immutable and are equal
// when their names are equal.
type SlotType struct {
	name   string
	open   string
	close  string
	render func(value types.Value, sb *strings.Builder)
	copier func(value types.Value) (types.Value, bool)
}

var (
	// Empty marks an absent slot
	Empty = &SlotType{
		name:   "empty",
		render: func(types.Value, *strings.Builder) {},
	}
	// CellLink marks a cdr that continues the chain
	CellLink = &SlotType{name: "cell"}
)

// NewSlotType builds a slot type. A descender needs both open and close; a
// leaf type has neither.
func NewSlotType(name, open, close string) (*SlotType, error) {
	if (open == "") != (close == "") {
		return nil, ErrInvalidSlotType.
			With("name", name).
			With("open", open).
			With("close", close)
	}
	return &SlotType{name: name, open: open, close: close}, nil
}

// MustSlotType is NewSlotType for package-level declarations
func MustSlotType(name, open, close string) *SlotType {
	t, err := NewSlotType(name, open, close)
	if err != nil {
		panic(err)
	}
	return t
}

// WithCopier returns a copy of the type that duplicates leaf values with fn
// when they cannot duplicate themselves. fn reports false to decline.
func (t *SlotType) WithCopier(fn func(types.Value) (types.Value, bool)) *SlotType {
	return &SlotType{name: t.name, open: t.open, close: t.close, render: t.render, copier: fn}
}

// Name of the type
func (t *SlotType) Name() string {
	return t.name
}

// Open bracket, empty unless a descender
func (t *SlotType) Open() string {
	return t.open
}

// Close bracket, empty unless a descender
func (t *SlotType) Close() string {
	return t.close
}

// MarksDescender reports whether values of this type are nested structures
func (t *SlotType) MarksDescender() bool {
	return t.open != ""
}

// Equal compares names
func (t *SlotType) Equal(that *SlotType) bool {
	if t == nil || that == nil {
		return t == that
	}
	return t.name == that.name
}

// Hash of the name
func (t *SlotType) Hash() uint32 {
	return murmur3.Sum32([]byte(t.name))
}

func (t *SlotType) String() string {
	return t.name
}

// Render returns the string form of a value of this type
func (t *SlotType) Render(value types.Value) string {
	var sb strings.Builder
	t.RenderValue(value, &sb)
	return sb.String()
}

// RenderValue writes the string form of a value of this type to sb.
// Descenders bracket their value; cells render as their own string form.
func (t *SlotType) RenderValue(value types.Value, sb *strings.Builder) {
	if t.render != nil {
		t.render(value, sb)
		return
	}
	cell, isCell := value.(*Cell)
	isCell = isCell && cell != nil
	if t.MarksDescender() {
		sb.WriteString(t.open)
		if isCell {
			sb.WriteString(cell.String())
		} else {
			fmt.Fprint(sb, value)
		}
		sb.WriteString(t.close)
		return
	}
	if isCell {
		cell.appendTo(sb)
		return
	}
	fmt.Fprint(sb, value)
}

// TryDuplicate copies a value of this type if it knows how, and otherwise
// returns the value itself. Cells are cloned, Duplicable values duplicate
// themselves, and anything else goes through the type's copier.
func (t *SlotType) TryDuplicate(value types.Value) (out types.Value) {
	defer func() {
		if recover() != nil {
			out = value
		}
	}()
	switch v := value.(type) {
	case *Cell:
		if v != nil {
			return v.Clone()
		}
		return value
	case types.Duplicable:
		return v.Duplicate()
	}
	if t.copier != nil {
		if dup, ok := t.copier(value); ok {
			return dup
		}
	}
	return value
}

func orEmpty(t *SlotType) *SlotType {
	if t == nil {
		return Empty
	}
	return t
}
