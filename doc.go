// Package rask is a parser combinator library.
//
// Grammars are built from small parsers that are combined into larger ones. Every parser implements
// Parser[T], which parses a T from an Input starting at a Cursor:
//
//	number := rask.Lexeme(rask.TryMap(rask.Recognize(rask.ManyNonEmpty(rask.Digit())), strconv.Atoi))
//	plus := rask.Map(rask.Symbol("+"), func(string) func(int, int) int {
//		return func(a, b int) int { return a + b }
//	})
//	sum := rask.ChainLeft(number, plus)
//
//	total, err := rask.ParseString(sum, "", "1 + 2 + 3", rask.RequireEOF())
//
// The available primitives are:
//
//   - Character, OneOf, NoneOf, Digit, Any and Satisfy match a single rune.
//   - Literal matches a string. Symbol is a Literal followed by whitespace.
//   - Always succeeds, Fail fails and End matches the end of the input.
//
// And the combinators:
//
//   - Map, TryMap, Recognize and ToVoid transform outputs.
//   - FlatMap, Then, Skip, Between and Sequence run parsers one after another.
//   - Or and Choice try alternatives in order.
//   - Optional, Many, ManyNonEmpty, SeparatedBy and SeparatedNonEmpty repeat.
//   - ChainLeft and ChainRight parse binary operator chains.
//   - Lexeme and Whitespace skip whitespace between tokens.
//   - Lazy defers construction, for recursive rules.
//   - Backtrack makes a parser all-or-nothing.
//   - Named labels a parser in errors and traces.
//
// # Cursors and backtracking
//
// Cursors are values, so rewinding is simply reusing an earlier one. Or, Optional and Many always
// rewind past a failed attempt, as do FlatMap, Then and Sequence. Other combinators report the point
// they failed at, which may be past the cursor they were given; wrap them in Backtrack where a
// failure must not consume input.
//
// # Errors
//
// Every error returned by a parser implements Error and carries the Position it occurred at.
//
// Grammars that can loop without consuming input, such as Many over a parser that always succeeds
// or a rule that refers to itself before consuming anything, are the grammar author's
// responsibility. Many, ManyNonEmpty and the chain combinators stop after an iteration that made
// no progress, but left recursion will exhaust the stack.
package rask
