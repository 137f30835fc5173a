package rask

import "fmt"

// Cursor is a position within an Input.
//
// Cursors are values. A parser rewinds by returning a cursor it was given rather than the one a
// failed child returned; nothing is ever mutated in place.
type Cursor struct {
	offset int
}

// Offset of the cursor in runes from the start of its Input.
func (c Cursor) Offset() int { return c.offset }

// Before reports whether c is strictly before other.
func (c Cursor) Before(other Cursor) bool { return c.offset < other.offset }

func (c Cursor) advance(n int) Cursor { return Cursor{offset: c.offset + n} }

func (c Cursor) String() string { return fmt.Sprintf("@%d", c.offset) }
