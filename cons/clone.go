package cons

import "github.com/dball/conscell/types"

type leafCopy func(value types.Value, t *SlotType) types.Value

func duplicateLeaf(value types.Value, t *SlotType) types.Value {
	return t.TryDuplicate(value)
}

func aliasLeaf(value types.Value, _ *SlotType) types.Value {
	return value
}

// Clone copies the chain from here on. Nested cells are cloned and leaf
// values are duplicated where their slot type can.
func (c *Cell) Clone() *Cell {
	return c.CloneAfter(nil)
}

// CloneAfter clones the chain and chains the clone after previous
func (c *Cell) CloneAfter(previous *Cell) *Cell {
	return c.copyAfter(previous, duplicateLeaf)
}

// StructuralClone copies every cell from here on but shares leaf values with
// the original
func (c *Cell) StructuralClone() *Cell {
	return c.StructuralCloneAfter(nil)
}

// StructuralCloneAfter structurally clones the chain and chains the clone
// after previous
func (c *Cell) StructuralCloneAfter(previous *Cell) *Cell {
	return c.copyAfter(previous, aliasLeaf)
}

// Singular copies the cell's car into a detached cell
func (c *Cell) Singular() *Cell {
	return c.Factory().Construct(c.car, c.CarType(), nil, Empty)
}

func (c *Cell) copyAfter(previous *Cell, leaf leafCopy) *Cell {
	head := c.copyChain(leaf)
	if previous != nil {
		previous.SetCdr(head, CellLink)
	}
	return head
}

func copyValue(value types.Value, t *SlotType, leaf leafCopy) types.Value {
	if cell, valid := value.(*Cell); valid && cell != nil {
		return cell.copyChain(leaf)
	}
	return leaf(value, t)
}

func (c *Cell) copyChain(leaf leafCopy) *Cell {
	head := c.Factory().ConstructEmpty()
	out := head
	for src := c; ; {
		out.car = copyValue(src.car, src.CarType(), leaf)
		out.carType = src.CarType()
		out.cdrType = src.CdrType()
		next := src.Next()
		if next == nil {
			out.cdr = copyValue(src.cdr, src.CdrType(), leaf)
			return head
		}
		cell := next.Factory().ConstructEmpty()
		cell.previous = out
		out.cdr = cell
		out, src = cell, next
	}
}
