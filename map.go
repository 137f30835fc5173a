package rask

// Map applies f to the output of p.
//
// Failures of p are returned unchanged, as is the cursor p stopped at.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return &mapper[T, U]{p: p, f: f}
}

type mapper[T, U any] struct {
	p Parser[T]
	f func(T) U
}

func (m *mapper[T, U]) Parse(in *Input, at Cursor) (U, Cursor, error) {
	value, next, err := m.p.Parse(in, at)
	if err != nil {
		var zero U
		return zero, next, err
	}
	return m.f(value), next, nil
}

// TryMap applies a fallible conversion to the output of p.
//
// An error from f fails the parser at the cursor p started from. Errors that are not already an
// Error are annotated with that position.
func TryMap[T, U any](p Parser[T], f func(T) (U, error)) Parser[U] {
	return &tryMapper[T, U]{p: p, f: f}
}

type tryMapper[T, U any] struct {
	p Parser[T]
	f func(T) (U, error)
}

func (m *tryMapper[T, U]) Parse(in *Input, at Cursor) (U, Cursor, error) {
	var zero U
	value, next, err := m.p.Parse(in, at)
	if err != nil {
		return zero, next, err
	}
	out, err := m.f(value)
	if err != nil {
		return zero, at, AnnotateError(in.Position(at), err)
	}
	return out, next, nil
}

// ToVoid discards the output of p.
func ToVoid[T any](p Parser[T]) Parser[Unit] {
	return Map(p, func(T) Unit { return Unit{} })
}

// Recognize runs p and returns the input text it consumed instead of its output.
func Recognize[T any](p Parser[T]) Parser[string] {
	return Func[string](func(in *Input, at Cursor) (string, Cursor, error) {
		_, next, err := p.Parse(in, at)
		if err != nil {
			return "", next, err
		}
		return in.Slice(at, next), next, nil
	})
}
