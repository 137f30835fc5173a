package rask

import (
	"io"
)

// A Parser produces a T from an Input, starting at a Cursor.
//
// On success the returned Cursor is at or after "at". On failure the returned Cursor is wherever the
// parser stopped: primitives and the combinators documented as resetting return "at", while
// sequencing combinators such as Skip and Lexeme may return a cursor past partially consumed input.
// Wrap a parser in Backtrack when an all-or-nothing attempt is required.
//
// Parsers hold no state between calls and may be shared by any number of concurrent parses.
type Parser[T any] interface {
	Parse(in *Input, at Cursor) (T, Cursor, error)
}

// Func adapts a function to the Parser interface.
type Func[T any] func(in *Input, at Cursor) (T, Cursor, error)

// Parse calls f.
func (f Func[T]) Parse(in *Input, at Cursor) (T, Cursor, error) { return f(in, at) }

// Unit is the output of parsers whose value is discarded.
type Unit struct{}

// ParseString parses text from the start using p.
//
// Trailing input is ignored unless RequireEOF is passed. If the parse fails, the error reported is
// the one that got furthest into the input, including errors that Many, Optional, Or and the
// chain combinators recovered from before the parse eventually failed.
func ParseString[T any](p Parser[T], filename, text string, options ...ParseOption) (T, error) {
	ctx := newParseContext(options)
	in := NewInput(filename, text).withFailures()
	if ctx.trace != nil {
		in = in.withTrace(&tracer{w: ctx.trace})
	}
	return parseInto(p, in, ctx)
}

// ParseBytes parses text from the start using p.
func ParseBytes[T any](p Parser[T], filename string, text []byte, options ...ParseOption) (T, error) {
	return ParseString(p, filename, string(text), options...)
}

// ParseReader reads all of r into memory and parses it using p.
func ParseReader[T any](p Parser[T], filename string, r io.Reader, options ...ParseOption) (T, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		var zero T
		return zero, err
	}
	return ParseString(p, filename, string(data), options...)
}

func parseInto[T any](p Parser[T], in *Input, ctx *parseContext) (T, error) {
	var zero T
	value, end, err := p.Parse(in, in.Start())
	if err == nil && ctx.requireEOF && end != in.End() {
		actual, _ := in.At(end)
		err = &UnexpectedTokenError{Expected: "<EOF>", Actual: actual, Pos: in.Position(end)}
	}
	if err != nil {
		return zero, in.failures.furthest(in, err)
	}
	return value, nil
}
