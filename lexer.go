package rask

import "unicode"

// Whitespace consumes zero or more whitespace runes, as defined by unicode.IsSpace.
func Whitespace() Parser[Unit] { return whitespace{} }

type whitespace struct{}

func (whitespace) Parse(in *Input, at Cursor) (Unit, Cursor, error) {
	return Unit{}, skipSpace(in, at), nil
}

func skipSpace(in *Input, at Cursor) Cursor {
	for {
		r, ok := in.At(at)
		if !ok || !unicode.IsSpace(r) {
			return at
		}
		at = at.advance(1)
	}
}

// Lexeme runs p and then skips any whitespace that follows it.
//
// Wrapping every token of a grammar in Lexeme makes whitespace insignificant between tokens; only
// leading whitespace at the very start of the input remains for the caller to skip.
func Lexeme[T any](p Parser[T]) Parser[T] {
	if l, ok := p.(*lexeme[T]); ok {
		return l
	}
	return &lexeme[T]{p: p}
}

type lexeme[T any] struct{ p Parser[T] }

func (l *lexeme[T]) Parse(in *Input, at Cursor) (T, Cursor, error) {
	value, next, err := l.p.Parse(in, at)
	if err != nil {
		return value, next, err
	}
	return value, skipSpace(in, next), nil
}

// Symbol matches the literal s followed by optional whitespace.
func Symbol(s string) Parser[string] { return Lexeme(Literal(s)) }
