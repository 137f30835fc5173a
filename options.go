package rask

import "io"

// A ParseOption modifies how an individual parse occurs.
type ParseOption func(ctx *parseContext)

// Context for a single call to ParseString and friends.
type parseContext struct {
	requireEOF bool
	trace      io.Writer
}

func newParseContext(options []ParseOption) *parseContext {
	ctx := &parseContext{}
	for _, option := range options {
		option(ctx)
	}
	return ctx
}

// RequireEOF makes the parse fail unless the parser consumed the whole input.
func RequireEOF() ParseOption {
	return func(ctx *parseContext) {
		ctx.requireEOF = true
	}
}

// Trace the parse to "w".
//
// Each Named parser writes a line when it is entered and when it returns.
func Trace(w io.Writer) ParseOption {
	return func(ctx *parseContext) {
		ctx.trace = w
	}
}
