// Package cons implements typed cons cells: doubly linked nodes whose car and
// cdr slots each carry a payload and a SlotType.
//
// A cdr tagged with CellLink continues the chain; any other cdr ends it. A
// slot whose type marks a descender holds a nested structure and renders
// bracketed by the type's open and close strings:
//
//	(a (b c) d)
//
// Cells are not safe for concurrent use. Iterators are not fail-fast: mutating
// a chain while iterating it gives unspecified, but memory-safe, results.
package cons
