package cons

// Iterator walks a chain forward, yielding the starting cell first
type Iterator struct {
	current *Cell
	next    *Cell
}

// Iterator starts a fresh walk at the cell
func (c *Cell) Iterator() *Iterator {
	return &Iterator{next: c}
}

// HasNext reports whether Next will yield a cell
func (it *Iterator) HasNext() bool {
	return it.next != nil
}

// Next yields the next cell
func (it *Iterator) Next() (*Cell, error) {
	if it.next == nil {
		return nil, ErrExhausted
	}
	it.current = it.next
	it.next = it.next.Next()
	return it.current, nil
}

// Remove unlinks the cell last yielded. It may be called once per Next.
func (it *Iterator) Remove() error {
	if it.current == nil {
		return ErrIllegalState
	}
	it.current.Remove()
	it.current = nil
	return nil
}

// Each calls fn on every cell from here on until fn returns false
func (c *Cell) Each(fn func(*Cell) bool) {
	for current := c; current != nil; {
		next := current.Next()
		if !fn(current) {
			return
		}
		current = next
	}
}
