package runtime

import (
	"github.com/benbjohnson/immutable"
	"github.com/dball/conscell/cons"
	"github.com/dball/conscell/ex"
	"github.com/dball/conscell/types"
)

var (
	invalidValue = ex.Ex{Code: "Invalid value"}
)

// Count returns the length of the chain, zero for nil
func Count(c *cons.Cell) int {
	if c == nil {
		return 0
	}
	return c.Length()
}

// Cars collects the car of every cell from c on
func Cars(c *cons.Cell) *immutable.List {
	list := immutable.NewList()
	if Count(c) == 0 {
		return list
	}
	b := immutable.NewListBuilder(list)
	c.Each(func(current *cons.Cell) bool {
		b.Append(current.Car())
		return true
	})
	return b.List()
}

// Leaves collects leaf cars depth first, descending into nested cells
func Leaves(c *cons.Cell) *immutable.List {
	b := immutable.NewListBuilder(immutable.NewList())
	var walk func(*cons.Cell)
	walk = func(c *cons.Cell) {
		if Count(c) == 0 {
			return
		}
		it := c.Iterator()
		for it.HasNext() {
			current, _ := it.Next()
			if nested, valid := current.Car().(*cons.Cell); valid {
				walk(nested)
			} else if !current.CarType().Equal(cons.Empty) {
				b.Append(current.Car())
			}
		}
	}
	walk(c)
	return b.List()
}

// FromList builds a chain of v's cells holding the list items in order
func FromList(v *cons.Variant, list *immutable.List) *cons.Cell {
	head := v.ConstructEmpty()
	tail := head
	itr := list.Iterator()
	for !itr.Done() {
		_, value := itr.Next()
		tail = tail.Append(v.Single(value))
	}
	return head
}

// TakeDrop returns as many as n cars from the front of the chain, and the cell
// after them
func TakeDrop(n int, c *cons.Cell) (*immutable.List, *cons.Cell, error) {
	if n < 0 {
		return nil, nil, invalidValue.With("n", n)
	}
	b := immutable.NewListBuilder(immutable.NewList())
	if Count(c) == 0 {
		return b.List(), nil, nil
	}
	current := c
	for i := 0; i < n && current != nil; i++ {
		b.Append(current.Car())
		current = current.Next()
	}
	return b.List(), current, nil
}

// Nth returns the car n cells along
func Nth(c *cons.Cell, n int) (types.Value, error) {
	if n < 0 || Count(c) == 0 || !c.HasLength(n+1) {
		return nil, invalidValue.With("n", n)
	}
	return c.NextN(n).Car(), nil
}

// Concat joins structural clones of the chains, leaving the arguments intact.
// With nothing to join it returns an empty cell of the first argument's
// variant, or of Basic when there are no arguments.
func Concat(cells ...*cons.Cell) *cons.Cell {
	var head *cons.Cell
	var tail *cons.Cell
	var factory cons.Factory = cons.Basic
	for i := len(cells) - 1; i >= 0; i-- {
		if cells[i] != nil {
			factory = cells[i].Factory()
		}
	}
	for _, c := range cells {
		if Count(c) == 0 {
			continue
		}
		clone := c.StructuralClone()
		if head == nil {
			head, tail = clone, clone.Last()
			continue
		}
		tail = tail.Append(clone)
	}
	if head == nil {
		return factory.ConstructEmpty()
	}
	return head
}

// Reverse builds a new chain of c's variant with the cars in reverse order.
// A dotted tail is dropped. Reversing nil gives nil.
func Reverse(c *cons.Cell) *cons.Cell {
	if c == nil {
		return nil
	}
	var cells []*cons.Cell
	if Count(c) > 0 {
		c.Each(func(current *cons.Cell) bool {
			cells = append(cells, current.Singular())
			return true
		})
	}
	head := c.Factory().ConstructEmpty()
	tail := head
	for i := len(cells) - 1; i >= 0; i-- {
		tail = tail.Append(cells[i])
	}
	return head
}
