package rask

import (
	"fmt"
	"sort"
)

// EOF is reported as the actual rune when a parser runs out of input.
const EOF rune = -1

// Input is the text a parse runs over.
//
// The text is held as runes so that a Cursor is a plain element index. An Input is never modified
// after construction and may be shared by concurrent parses. ParseString runs each parse over its own
// copy, which carries that parse's trace and failure log.
type Input struct {
	filename string
	text     []rune
	lines    []int // Offset of the first rune of each line.
	trace    *tracer
	failures *failureLog
}

// NewInput creates an Input from text. The filename is only used for error positions.
func NewInput(filename, text string) *Input {
	runes := []rune(text)
	lines := []int{0}
	for i, r := range runes {
		if r == '\n' {
			lines = append(lines, i+1)
		}
	}
	return &Input{filename: filename, text: runes, lines: lines}
}

// Filename the Input was created with.
func (in *Input) Filename() string { return in.filename }

// Len returns the number of runes in the Input.
func (in *Input) Len() int { return len(in.text) }

// Start returns a Cursor at the beginning of the Input.
func (in *Input) Start() Cursor { return Cursor{} }

// End returns the Cursor of an exhausted Input.
func (in *Input) End() Cursor { return Cursor{offset: len(in.text)} }

// Cursor returns a Cursor at offset, clamped to [Start, End].
func (in *Input) Cursor(offset int) Cursor {
	return Cursor{offset: max(0, min(offset, len(in.text)))}
}

// At returns the rune under the cursor, or EOF and false if the Input is exhausted.
func (in *Input) At(c Cursor) (rune, bool) {
	if c.offset < 0 || c.offset >= len(in.text) {
		return EOF, false
	}
	return in.text[c.offset], true
}

// Slice returns the text between two cursors, clamped to the Input.
func (in *Input) Slice(from, to Cursor) string {
	from, to = in.Cursor(from.offset), in.Cursor(to.offset)
	if to.offset < from.offset {
		return ""
	}
	return string(in.text[from.offset:to.offset])
}

// Position converts a Cursor to a line and column.
func (in *Input) Position(c Cursor) Position {
	c = in.Cursor(c.offset)
	line := sort.Search(len(in.lines), func(i int) bool { return in.lines[i] > c.offset }) - 1
	return Position{
		Filename: in.filename,
		Offset:   c.offset,
		Line:     line + 1,
		Column:   c.offset - in.lines[line] + 1,
	}
}

func (in *Input) String() string { return string(in.text) }

func (in *Input) GoString() string {
	return fmt.Sprintf("Input{Filename: %q, Len: %d}", in.filename, len(in.text))
}

// withTrace returns a copy of the Input that traces Named parsers through t.
func (in *Input) withTrace(t *tracer) *Input {
	out := *in
	out.trace = t
	return &out
}

// withFailures returns a copy of the Input that remembers the furthest error recovered from during a
// parse.
func (in *Input) withFailures() *Input {
	out := *in
	out.failures = &failureLog{}
	return &out
}

// failureLog holds the furthest error a combinator recovered from during one parse.
type failureLog struct {
	err error
	pos Position
}

// recovered notes err, which the caller is about to discard after failing at "at".
//
// At equal offsets the later error wins, as it was recovered by an enclosing parser.
func (in *Input) recovered(at Cursor, err error) {
	if in.failures == nil {
		return
	}
	pos := errorPosition(in, at, err)
	if in.failures.err == nil || pos.Offset >= in.failures.pos.Offset {
		in.failures.err, in.failures.pos = err, pos
	}
}

// furthest returns err, or the furthest recovered error if that got further into the input.
func (f *failureLog) furthest(in *Input, err error) error {
	if f == nil || f.err == nil {
		return err
	}
	if f.pos.Offset > errorPosition(in, in.Start(), err).Offset {
		return f.err
	}
	return err
}
