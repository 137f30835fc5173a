package rask

// Or tries p, and if it fails tries q from the same cursor.
//
// Or is left-biased: q is never run if p succeeds. If both fail the cursor Or started from is
// returned along with the error of whichever branch got further into the input. When both failed at
// the same position their expectations are merged into an AlternativesError.
func Or[T any](p, q Parser[T]) Parser[T] {
	return &or[T]{p: p, q: q}
}

type or[T any] struct {
	p, q Parser[T]
}

func (o *or[T]) Parse(in *Input, at Cursor) (T, Cursor, error) {
	value, next, perr := o.p.Parse(in, at)
	if perr == nil {
		return value, next, nil
	}
	value, next, qerr := o.q.Parse(in, at)
	if qerr == nil {
		in.recovered(at, perr)
		return value, next, nil
	}
	var zero T
	return zero, at, furthest(in, at, perr, qerr)
}

// Choice tries each parser in order, returning the output of the first to succeed.
//
// It is equivalent to Or(Or(parsers[0], parsers[1]), ...).
func Choice[T any](parsers ...Parser[T]) Parser[T] {
	if len(parsers) == 0 {
		return Fail[T]("no alternatives")
	}
	out := parsers[0]
	for _, p := range parsers[1:] {
		out = Or(out, p)
	}
	return out
}

// Optional returns a pointer to the output of p, or nil if p fails.
//
// A failed attempt never consumes input.
func Optional[T any](p Parser[T]) Parser[*T] {
	return &optional[T]{p: p}
}

type optional[T any] struct{ p Parser[T] }

func (o *optional[T]) Parse(in *Input, at Cursor) (*T, Cursor, error) {
	value, next, err := o.p.Parse(in, at)
	if err != nil {
		in.recovered(at, err)
		return nil, at, nil
	}
	return &value, next, nil
}

// Backtrack makes p all-or-nothing.
//
// If p fails, its error is returned with the cursor Backtrack started from, however far p got
// before failing. On success p's cursor is committed.
func Backtrack[T any](p Parser[T]) Parser[T] {
	if b, ok := p.(*backtrack[T]); ok {
		return b
	}
	return &backtrack[T]{p: p}
}

type backtrack[T any] struct{ p Parser[T] }

func (b *backtrack[T]) Parse(in *Input, at Cursor) (T, Cursor, error) {
	value, next, err := b.p.Parse(in, at)
	if err != nil {
		return value, at, err
	}
	return value, next, nil
}
