package cons

import (
	"fmt"
	"strings"

	"github.com/dball/conscell/types"
)

func (c *Cell) String() string {
	var sb strings.Builder
	c.appendTo(&sb)
	return strings.TrimSpace(sb.String())
}

func (c *Cell) appendTo(sb *strings.Builder) {
	for current := c; current != nil; {
		current.CarType().RenderValue(current.car, sb)
		if current.CdrType().Equal(Empty) {
			return
		}
		sb.WriteRune(' ')
		next := current.Next()
		if next == nil {
			current.CdrType().RenderValue(current.cdr, sb)
			return
		}
		current = next
	}
}

// StructureString lists each value in the chain with its slot type, for
// debugging
func (c *Cell) StructureString() string {
	var sb strings.Builder
	for current := c; current != nil; current = current.Next() {
		if !current.CarType().Equal(Empty) {
			structureAppend(&sb, current.car, current.CarType())
		}
		if !current.CdrType().Equal(Empty) && current.IsLast() {
			structureAppend(&sb, current.cdr, current.CdrType())
		}
	}
	return strings.TrimSpace(strings.TrimSuffix(sb.String(), ", "))
}

func structureAppend(sb *strings.Builder, value types.Value, t *SlotType) {
	cell, isCell := value.(*Cell)
	isCell = isCell && cell != nil
	if t.MarksDescender() {
		sb.WriteString(t.Open())
	}
	if isCell {
		sb.WriteString(cell.StructureString())
	} else {
		fmt.Fprint(sb, value)
	}
	if t.MarksDescender() {
		sb.WriteString(t.Close())
	}
	sb.WriteString(": ")
	sb.WriteString(t.Name())
	sb.WriteString(", ")
}
