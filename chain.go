package rask

// ChainLeft parses left-associative chains of binary operators, such as "1 + 2 + 3".
//
// One p is parsed as the initial left-hand side, then op followed by p is repeated, folding each
// right-hand side into the accumulator: acc = f(acc, rhs). The chain ends, without failing, at the
// first operator or right-hand side that does not match, leaving the cursor after the last complete
// right-hand side. Only a failure of the first p fails ChainLeft.
func ChainLeft[T any](p Parser[T], op Parser[func(T, T) T]) Parser[T] {
	return &chainLeft[T]{p: p, op: op}
}

type chainLeft[T any] struct {
	p  Parser[T]
	op Parser[func(T, T) T]
}

func (c *chainLeft[T]) Parse(in *Input, at Cursor) (T, Cursor, error) {
	acc, next, err := c.p.Parse(in, at)
	if err != nil {
		return acc, next, err
	}
	for {
		f, rhs, cursor, ok := chainStep(c.p, c.op, in, next)
		if !ok {
			return acc, next, nil
		}
		acc = f(acc, rhs)
		if cursor == next {
			return acc, next, nil
		}
		next = cursor
	}
}

// ChainRight parses right-associative chains of binary operators, such as "2 ^ 3 ^ 2".
//
// It matches the same input as ChainLeft but folds from the right: a op b op c is f(a, f(b, c)).
func ChainRight[T any](p Parser[T], op Parser[func(T, T) T]) Parser[T] {
	return &chainRight[T]{p: p, op: op}
}

type chainRight[T any] struct {
	p  Parser[T]
	op Parser[func(T, T) T]
}

func (c *chainRight[T]) Parse(in *Input, at Cursor) (T, Cursor, error) {
	first, next, err := c.p.Parse(in, at)
	if err != nil {
		return first, next, err
	}
	operands := []T{first}
	var operators []func(T, T) T
	for {
		f, rhs, cursor, ok := chainStep(c.p, c.op, in, next)
		if !ok {
			break
		}
		operands = append(operands, rhs)
		operators = append(operators, f)
		if cursor == next {
			break
		}
		next = cursor
	}
	acc := operands[len(operands)-1]
	for i := len(operators) - 1; i >= 0; i-- {
		acc = operators[i](operands[i], acc)
	}
	return acc, next, nil
}

// chainStep matches one operator and right-hand side starting at "at".
func chainStep[T any](p Parser[T], op Parser[func(T, T) T], in *Input, at Cursor) (func(T, T) T, T, Cursor, bool) {
	var zero T
	f, next, err := op.Parse(in, at)
	if err != nil {
		in.recovered(at, err)
		return nil, zero, at, false
	}
	rhs, rest, err := p.Parse(in, next)
	if err != nil {
		in.recovered(next, err)
		return nil, zero, at, false
	}
	return f, rhs, rest, true
}
