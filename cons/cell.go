package cons

import "github.com/dball/conscell/types"

// Cell is a cons cell with typed car and cdr slots and a link back to the
// cell whose cdr it is. The back link is kept only for cells reached through
// a CellLink cdr; previous.cdr == cell holds whenever previous is set.
//
// The zero Cell is an empty Basic cell.
type Cell struct {
	car      types.Value
	carType  *SlotType
	cdr      types.Value
	cdrType  *SlotType
	previous *Cell
	factory  Factory
}

// link is the cell a cdr slot chains to, or nil
func link(value types.Value, t *SlotType) *Cell {
	if !t.Equal(CellLink) {
		return nil
	}
	next, _ := value.(*Cell)
	return next
}

func sameCell(a, b types.Value) bool {
	ca, valid := a.(*Cell)
	if !valid {
		return false
	}
	cb, valid := b.(*Cell)
	return valid && ca == cb
}

// Car value
func (c *Cell) Car() types.Value {
	return c.car
}

// CarType of the car value
func (c *Cell) CarType() *SlotType {
	return orEmpty(c.carType)
}

// Cdr value
func (c *Cell) Cdr() types.Value {
	return c.cdr
}

// CdrType of the cdr value
func (c *Cell) CdrType() *SlotType {
	return orEmpty(c.cdrType)
}

// Factory that built the cell; Basic for a zero Cell
func (c *Cell) Factory() Factory {
	if c.factory == nil {
		return Basic
	}
	return c.factory
}

// SetCar overwrites the car slot
func (c *Cell) SetCar(value types.Value, t *SlotType) *Cell {
	c.car = value
	c.carType = orEmpty(t)
	return c
}

// SetCdr overwrites the cdr slot and keeps back links consistent. A cell
// leaving the cdr loses its back link; a cell arriving is first detached from
// its old predecessor.
func (c *Cell) SetCdr(value types.Value, t *SlotType) *Cell {
	t = orEmpty(t)
	old := c.Next()
	next := link(value, t)
	if sameCell(c.cdr, value) {
		c.cdrType = t
		if old != nil && next == nil {
			old.previous = nil
		} else if old == nil && next != nil {
			next.detach()
			next.previous = c
		}
		return c
	}
	if old != nil {
		old.previous = nil
	}
	if next != nil {
		next.detach()
	}
	c.cdr = value
	c.cdrType = t
	if next != nil {
		next.previous = c
	}
	return c
}

// SetNext chains next after the cell; nil ends the chain
func (c *Cell) SetNext(next *Cell) *Cell {
	if next == nil {
		return c.SetCdr(nil, Empty)
	}
	return c.SetCdr(next, CellLink)
}

// ReplaceCar copies other's car slot
func (c *Cell) ReplaceCar(other *Cell) *Cell {
	return c.SetCar(other.car, other.CarType())
}

// ReplaceCdr copies other's cdr slot. A chained cdr moves over to c.
func (c *Cell) ReplaceCdr(other *Cell) *Cell {
	return c.SetCdr(other.cdr, other.CdrType())
}

func (c *Cell) detach() {
	if c.previous == nil {
		return
	}
	c.previous.cdr = nil
	c.previous.cdrType = Empty
	c.previous = nil
}

// Insert splices next in after the cell and returns it. Whatever followed the
// cell is moved onto the end of next's chain. An empty cell instead takes
// over next's slots and is returned itself.
func (c *Cell) Insert(next *Cell) *Cell {
	if c.IsEmpty() {
		c.become(next)
		return c
	}
	c.splice(next)
	return next
}

// Append splices next in after the last cell of the chain and returns the new
// last cell, so calls can be chained to keep extending a list.
func (c *Cell) Append(next *Cell) *Cell {
	if c.IsEmpty() {
		c.become(next)
		return c.Last()
	}
	tail := c.Last()
	tail.splice(next)
	return tail.Last()
}

func (c *Cell) become(next *Cell) {
	c.ReplaceCar(next)
	c.ReplaceCdr(next)
}

func (c *Cell) splice(next *Cell) {
	if next == c || next == c.Next() {
		return
	}
	// next already leads up to c: cut it in front of c so no cycle forms
	for current := next.Next(); current != nil; current = current.Next() {
		if current == c {
			c.Split()
			break
		}
	}
	cdr, cdrType := c.cdr, c.CdrType()
	c.SetCdr(next, CellLink)
	if !cdrType.Equal(Empty) {
		next.Last().SetCdr(cdr, cdrType)
	}
}

// Remove unlinks the cell, closing the gap behind it, and returns the cell
// that followed it
func (c *Cell) Remove() *Cell {
	next := c.Next()
	if c.previous != nil {
		c.previous.SetCdr(c.cdr, c.CdrType())
	} else if next != nil {
		next.previous = nil
	}
	c.cdr = nil
	c.cdrType = Empty
	return next
}

// Split cuts the chain in front of the cell, making it the first of its own
// chain
func (c *Cell) Split() *Cell {
	if c.previous != nil {
		c.previous.SetCdr(nil, Empty)
	}
	return c
}
