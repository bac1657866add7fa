package cons

import "github.com/dball/conscell/ex"

var (
	// ErrExhausted is returned by Iterator.Next when no cells remain
	ErrExhausted = ex.Ex{Code: "Exhausted iterator"}
	// ErrIllegalState is returned by Iterator.Remove before any cell was yielded
	ErrIllegalState = ex.Ex{Code: "Illegal iterator state"}
	// ErrInvalidSlotType is returned when only one of open or close is given
	ErrInvalidSlotType = ex.Ex{Code: "Invalid slot type"}
)
