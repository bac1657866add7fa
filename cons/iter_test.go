package cons

import (
	"errors"
	"testing"
)

func cars(c *Cell) []string {
	var out []string
	c.Each(func(current *Cell) bool {
		out = append(out, current.Car().(string))
		return true
	})
	return out
}

func TestIterator(t *testing.T) {
	head := Basic.List("a", "b", "c")
	it := head.Iterator()
	var got []string
	for it.HasNext() {
		c, err := it.Next()
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		got = append(got, c.Car().(string))
	}
	if len(got) != 3 || got[0] != "a" || got[2] != "c" {
		t.Errorf("iterated %v", got)
	}
	if _, err := it.Next(); !errors.Is(err, ErrExhausted) {
		t.Errorf("Next() past the end error = %v", err)
	}
}

func TestIteratorIsRestartable(t *testing.T) {
	head := Basic.List("a", "b")
	first := head.Iterator()
	first.Next()
	second := head.Iterator()
	c, _ := second.Next()
	if c != head {
		t.Errorf("a new iterator should start at the receiver")
	}
	c, _ = first.Next()
	if c.Car() != "b" {
		t.Errorf("iterators should not share position")
	}
}

func TestIteratorRemove(t *testing.T) {
	head := Basic.List("a", "b", "c")
	it := head.Iterator()
	if err := it.Remove(); !errors.Is(err, ErrIllegalState) {
		t.Errorf("Remove() before Next() error = %v", err)
	}
	it.Next()
	it.Next()
	if err := it.Remove(); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if err := it.Remove(); !errors.Is(err, ErrIllegalState) {
		t.Errorf("second Remove() error = %v", err)
	}
	if c, _ := it.Next(); c == nil || c.Car() != "c" {
		t.Errorf("iteration should continue after removal, got %v", c)
	}
	if got := cars(head); len(got) != 2 || got[1] != "c" {
		t.Errorf("chain after removal = %v", got)
	}
}

// The iterator keeps no modification count: a cell already fetched as next is
// still yielded after the chain is cut in front of it.
func TestIteratorIsNotFailFast(t *testing.T) {
	head := Basic.List("a", "b", "c")
	it := head.Iterator()
	it.Next()
	head.Next().Split()
	var got []string
	for it.HasNext() {
		c, _ := it.Next()
		got = append(got, c.Car().(string))
	}
	if len(got) != 2 || got[0] != "b" || got[1] != "c" {
		t.Errorf("iterated %v after split", got)
	}
	if head.Length() != 1 {
		t.Errorf("split did not cut the chain")
	}
}

func TestEachStops(t *testing.T) {
	head := Basic.List("a", "b", "c")
	n := 0
	head.Each(func(*Cell) bool {
		n++
		return n < 2
	})
	if n != 2 {
		t.Errorf("Each visited %d cells, want 2", n)
	}
}
