package rask

import (
	"fmt"
	"strconv"
	"strings"
)

// Character matches exactly the rune c.
func Character(c rune) Parser[rune] { return &character{c: c} }

type character struct{ c rune }

func (c *character) Parse(in *Input, at Cursor) (rune, Cursor, error) {
	r, ok := in.At(at)
	if !ok || r != c.c {
		return 0, at, &UnexpectedTokenError{Expected: strconv.QuoteRune(c.c), Actual: r, Pos: in.Position(at)}
	}
	return r, at.advance(1), nil
}

func (c *character) String() string { return strconv.QuoteRune(c.c) }

// OneOf matches a single rune contained in set.
func OneOf(set string) Parser[rune] { return &oneOf{set: set} }

// Digit matches a single decimal digit.
func Digit() Parser[rune] { return OneOf("0123456789") }

type oneOf struct{ set string }

func (o *oneOf) Parse(in *Input, at Cursor) (rune, Cursor, error) {
	r, ok := in.At(at)
	if !ok {
		return 0, at, &UnexpectedEOFError{Expected: fmt.Sprintf("one of %q", o.set), Pos: in.Position(at)}
	}
	if !strings.ContainsRune(o.set, r) {
		return 0, at, &NotOneOfError{Set: o.set, Actual: r, Pos: in.Position(at)}
	}
	return r, at.advance(1), nil
}

func (o *oneOf) String() string { return fmt.Sprintf("[%s]", o.set) }

// NoneOf matches a single rune that is not contained in set.
func NoneOf(set string) Parser[rune] {
	return Satisfy(fmt.Sprintf("none of %q", set), func(r rune) bool { return !strings.ContainsRune(set, r) })
}

// Any matches any single rune.
func Any() Parser[rune] {
	return Satisfy("any character", func(rune) bool { return true })
}

// Satisfy matches a single rune for which pred returns true.
//
// The name is used only for error messages.
func Satisfy(name string, pred func(r rune) bool) Parser[rune] {
	return &satisfy{name: name, pred: pred}
}

type satisfy struct {
	name string
	pred func(rune) bool
}

func (s *satisfy) Parse(in *Input, at Cursor) (rune, Cursor, error) {
	r, ok := in.At(at)
	if !ok {
		return 0, at, &UnexpectedEOFError{Expected: s.name, Pos: in.Position(at)}
	}
	if !s.pred(r) {
		return 0, at, &UnexpectedTokenError{Expected: s.name, Actual: r, Pos: in.Position(at)}
	}
	return r, at.advance(1), nil
}

func (s *satisfy) String() string { return s.name }

// Literal matches the string s verbatim.
//
// The whole span is compared before the cursor moves, so a failed Literal never consumes input.
// The reported error points at the first rune that differed.
func Literal(s string) Parser[string] {
	return &literal{s: s, runes: []rune(s)}
}

type literal struct {
	s     string
	runes []rune
}

func (l *literal) Parse(in *Input, at Cursor) (string, Cursor, error) {
	for i, want := range l.runes {
		pos := at.advance(i)
		if r, ok := in.At(pos); !ok || r != want {
			return "", at, &UnexpectedTokenError{Expected: strconv.Quote(l.s), Actual: r, Pos: in.Position(pos)}
		}
	}
	return l.s, at.advance(len(l.runes)), nil
}

func (l *literal) String() string { return strconv.Quote(l.s) }

// Always succeeds with value without consuming input.
func Always[T any](value T) Parser[T] { return always[T]{value: value} }

type always[T any] struct{ value T }

func (a always[T]) Parse(in *Input, at Cursor) (T, Cursor, error) { return a.value, at, nil }

// Fail always fails with message, without consuming input.
func Fail[T any](message string) Parser[T] {
	return Func[T](func(in *Input, at Cursor) (T, Cursor, error) {
		var zero T
		return zero, at, Errorf(in.Position(at), "%s", message)
	})
}

// End matches the end of the input.
func End() Parser[Unit] {
	return Func[Unit](func(in *Input, at Cursor) (Unit, Cursor, error) {
		if r, ok := in.At(at); ok {
			return Unit{}, at, &UnexpectedTokenError{Expected: "<EOF>", Actual: r, Pos: in.Position(at)}
		}
		return Unit{}, at, nil
	})
}
