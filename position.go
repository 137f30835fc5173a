package rask

import "fmt"

// Position of a Cursor within an Input.
//
// Offset counts runes from the start of the input. Line and Column are 1-based.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

func (p Position) GoString() string {
	return fmt.Sprintf("Position{Filename: %q, Offset: %d, Line: %d, Column: %d}",
		p.Filename, p.Offset, p.Line, p.Column)
}

func (p Position) String() string {
	filename := p.Filename
	if filename == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", filename, p.Line, p.Column)
}

// FormatError formats an error in the form "[<filename>:]<line>:<column>: <message>".
func FormatError(pos Position, message string) string {
	return fmt.Sprintf("%s: %s", pos, message)
}
