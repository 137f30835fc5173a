package rask

import (
	"fmt"
	"io"
	"strings"
)

type tracer struct {
	w      io.Writer
	indent int
}

func (t *tracer) enter(name string, in *Input, at Cursor) {
	r, _ := in.At(at)
	fmt.Fprintf(t.w, "%s%s %s %s\n", strings.Repeat(" ", t.indent), name, in.Position(at), describeRune(r))
	t.indent += 2
}

func (t *tracer) exit(name string, in *Input, at Cursor, err error) {
	t.indent -= 2
	prefix := strings.Repeat(" ", t.indent)
	if err != nil {
		fmt.Fprintf(t.w, "%s%s failed: %s\n", prefix, name, err)
		return
	}
	fmt.Fprintf(t.w, "%s%s matched to %s\n", prefix, name, in.Position(at))
}

// Named labels p.
//
// If p fails without getting past the cursor it started at, the failure is reported as an
// UnexpectedTokenError expecting "name" rather than p's own, usually more detailed, error.
// Named parsers are also the points reported by the Trace option.
func Named[T any](name string, p Parser[T]) Parser[T] {
	return &named[T]{name: name, p: p}
}

type named[T any] struct {
	name string
	p    Parser[T]
}

func (n *named[T]) Parse(in *Input, at Cursor) (T, Cursor, error) {
	if in.trace != nil {
		in.trace.enter(n.name, in, at)
	}
	value, next, err := n.p.Parse(in, at)
	if in.trace != nil {
		in.trace.exit(n.name, in, next, err)
	}
	if err != nil && errorPosition(in, at, err).Offset == at.offset {
		actual, _ := in.At(at)
		return value, next, &UnexpectedTokenError{Expected: n.name, Actual: actual, Pos: in.Position(at)}
	}
	return value, next, err
}

func (n *named[T]) String() string { return n.name }
