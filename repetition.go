package rask

// Many matches p zero or more times, collecting its outputs in order.
//
// Many never fails. It stops at the first failure of p and returns the cursor after the last
// successful match, so a failed final attempt consumes nothing. An iteration that succeeds without
// consuming input also ends the loop, after its output is collected.
func Many[T any](p Parser[T]) Parser[[]T] {
	return &many[T]{p: p}
}

type many[T any] struct{ p Parser[T] }

func (m *many[T]) Parse(in *Input, at Cursor) ([]T, Cursor, error) {
	out, next := repeat(m.p, in, at, []T{})
	return out, next, nil
}

// ManyNonEmpty matches p one or more times.
//
// If the first attempt fails, its error is returned with the cursor ManyNonEmpty started from.
func ManyNonEmpty[T any](p Parser[T]) Parser[[]T] {
	return &manyNonEmpty[T]{p: p}
}

type manyNonEmpty[T any] struct{ p Parser[T] }

func (m *manyNonEmpty[T]) Parse(in *Input, at Cursor) ([]T, Cursor, error) {
	first, next, err := m.p.Parse(in, at)
	if err != nil {
		return nil, at, err
	}
	if next == at {
		return []T{first}, next, nil
	}
	out, next := repeat(m.p, in, next, []T{first})
	return out, next, nil
}

func repeat[T any](p Parser[T], in *Input, at Cursor, out []T) ([]T, Cursor) {
	for {
		value, next, err := p.Parse(in, at)
		if err != nil {
			in.recovered(at, err)
			return out, at
		}
		out = append(out, value)
		if next == at {
			return out, at
		}
		at = next
	}
}

// SeparatedNonEmpty matches one or more p separated by sep, discarding the separators.
//
// A trailing separator that is not followed by p is not consumed.
func SeparatedNonEmpty[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return &separated[T]{p: p, rest: Many(Then(sep, p))}
}

type separated[T any] struct {
	p    Parser[T]
	rest Parser[[]T]
}

func (s *separated[T]) Parse(in *Input, at Cursor) ([]T, Cursor, error) {
	first, next, err := s.p.Parse(in, at)
	if err != nil {
		return nil, at, err
	}
	rest, next, _ := s.rest.Parse(in, next)
	return append([]T{first}, rest...), next, nil
}

// SeparatedBy matches zero or more p separated by sep, discarding the separators.
//
// If not even one p matches, SeparatedBy succeeds with an empty slice and consumes nothing.
func SeparatedBy[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return Or(SeparatedNonEmpty(p, sep), Always([]T{}))
}
