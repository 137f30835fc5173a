package rask

import "sync"

// Lazy defers construction of a parser until it is first used.
//
// This is how recursive grammars are written: the rule that refers to itself is wrapped in a Lazy
// whose build function reads a variable assigned after the rest of the grammar is constructed.
//
//	var expr rask.Parser[Expr]
//	parens := rask.Between(rask.Symbol("("), rask.Lazy(func() rask.Parser[Expr] { return expr }), rask.Symbol(")"))
//	expr = rask.Or(number, parens)
//
// build is called at most once, and must not itself parse with the Lazy it is building.
func Lazy[T any](build func() Parser[T]) Parser[T] {
	return &lazy[T]{build: build}
}

type lazy[T any] struct {
	once  sync.Once
	build func() Parser[T]
	p     Parser[T]
}

func (l *lazy[T]) Parse(in *Input, at Cursor) (T, Cursor, error) {
	l.once.Do(func() { l.p = l.build() })
	if l.p == nil {
		panic("rask: Lazy build function returned a nil parser; assign the rule it refers to before parsing")
	}
	return l.p.Parse(in, at)
}
