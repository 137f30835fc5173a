package rask

// FlatMap runs p, passes its output to f and runs the returned parser from where p stopped.
//
// The two steps are threaded through a private cursor: if either fails, the failure is reported
// at the cursor FlatMap started from.
func FlatMap[T, U any](p Parser[T], f func(T) Parser[U]) Parser[U] {
	return &flatMap[T, U]{p: p, f: f}
}

type flatMap[T, U any] struct {
	p Parser[T]
	f func(T) Parser[U]
}

func (m *flatMap[T, U]) Parse(in *Input, at Cursor) (U, Cursor, error) {
	var zero U
	value, next, err := m.p.Parse(in, at)
	if err != nil {
		return zero, at, err
	}
	out, next, err := m.f(value).Parse(in, next)
	if err != nil {
		return zero, at, err
	}
	return out, next, nil
}

// Then runs p then q, returning the output of q.
//
// Like FlatMap, a failure of either reports the cursor Then started from.
func Then[T, U any](p Parser[T], q Parser[U]) Parser[U] {
	return FlatMap(p, func(T) Parser[U] { return q })
}

// Skip runs p then q, returning the output of p.
//
// Skip does not rewind: if q fails, the cursor q stopped at is reported.
func Skip[T, U any](p Parser[T], q Parser[U]) Parser[T] {
	return &skip[T, U]{p: p, q: q}
}

type skip[T, U any] struct {
	p Parser[T]
	q Parser[U]
}

func (s *skip[T, U]) Parse(in *Input, at Cursor) (T, Cursor, error) {
	value, next, err := s.p.Parse(in, at)
	if err != nil {
		return value, next, err
	}
	if _, next, err = s.q.Parse(in, next); err != nil {
		var zero T
		return zero, next, err
	}
	return value, next, nil
}

// Between parses left, p and right in turn, returning the output of p.
func Between[L, T, R any](left Parser[L], p Parser[T], right Parser[R]) Parser[T] {
	return Then(left, Skip(p, right))
}

// Sequence runs each parser in turn and collects their outputs.
//
// A failure of any of them is reported at the cursor Sequence started from.
func Sequence[T any](parsers ...Parser[T]) Parser[[]T] {
	return Func[[]T](func(in *Input, at Cursor) ([]T, Cursor, error) {
		out := make([]T, 0, len(parsers))
		next := at
		for _, p := range parsers {
			value, cursor, err := p.Parse(in, next)
			if err != nil {
				return nil, at, err
			}
			out = append(out, value)
			next = cursor
		}
		return out, next, nil
	})
}
