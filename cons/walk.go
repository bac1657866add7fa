package cons

// Next cell in the chain, or nil if the cell is last
func (c *Cell) Next() *Cell {
	return link(c.cdr, c.cdrType)
}

// Previous cell in the chain, or nil if the cell is first
func (c *Cell) Previous() *Cell {
	return c.previous
}

// NextN steps n cells forward, or backward for negative n. It returns nil if
// the chain runs out first.
func (c *Cell) NextN(n int) *Cell {
	if n < 0 {
		return c.PreviousN(-n)
	}
	out := c
	for ; n > 0 && out != nil; n-- {
		out = out.Next()
	}
	return out
}

// PreviousN steps n cells backward, or forward for negative n
func (c *Cell) PreviousN(n int) *Cell {
	if n < 0 {
		return c.NextN(-n)
	}
	out := c
	for ; n > 0 && out != nil; n-- {
		out = out.previous
	}
	return out
}

// First cell of the chain
func (c *Cell) First() *Cell {
	current := c
	for current.previous != nil {
		current = current.previous
	}
	return current
}

// Last cell of the chain
func (c *Cell) Last() *Cell {
	current := c
	for next := current.Next(); next != nil; next = current.Next() {
		current = next
	}
	return current
}

// IsFirst reports whether nothing precedes the cell
func (c *Cell) IsFirst() bool {
	return c.previous == nil
}

// IsLast reports whether the cdr does not chain
func (c *Cell) IsLast() bool {
	return c.Next() == nil
}

// IsEmpty reports whether both slots are Empty
func (c *Cell) IsEmpty() bool {
	return c.CarType().Equal(Empty) && c.CdrType().Equal(Empty)
}

// HasLength reports whether the chain has at least n cells starting here,
// counting backward for negative n
func (c *Cell) HasLength(n int) bool {
	switch {
	case n == 0:
		return true
	case n > 0:
		return c.NextN(n-1) != nil
	default:
		return c.PreviousN(-n-1) != nil
	}
}

// Length counts cells from here to the last. A lone empty cell has length 0.
func (c *Cell) Length() int {
	if c.IsEmpty() {
		return 0
	}
	l := 0
	for current := c; current != nil; current = current.Next() {
		l++
	}
	return l
}
