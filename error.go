package rask

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Error represents an error while parsing.
//
// Every error produced by the parsers in this package implements Error.
type Error interface {
	error
	// Unadorned message.
	Message() string
	// Position error occurred.
	Position() Position
}

// UnexpectedTokenError is returned when a rune or literal did not match.
//
// Actual is EOF if the input ran out.
type UnexpectedTokenError struct {
	Expected string
	Actual   rune
	Pos      Position
}

func (u *UnexpectedTokenError) Error() string { return FormatError(u.Pos, u.Message()) }

func (u *UnexpectedTokenError) Message() string { // nolint: golint
	return fmt.Sprintf("unexpected %s (expected %s)", describeRune(u.Actual), u.Expected)
}
func (u *UnexpectedTokenError) Position() Position { return u.Pos } // nolint: golint

// NotOneOfError is returned by OneOf when the rune under the cursor is not in the set.
type NotOneOfError struct {
	Set    string
	Actual rune
	Pos    Position
}

func (n *NotOneOfError) Error() string { return FormatError(n.Pos, n.Message()) }

func (n *NotOneOfError) Message() string { // nolint: golint
	return fmt.Sprintf("unexpected %s (expected one of %q)", describeRune(n.Actual), n.Set)
}
func (n *NotOneOfError) Position() Position { return n.Pos } // nolint: golint

// UnexpectedEOFError is returned when a rune was required but the input was exhausted.
type UnexpectedEOFError struct {
	Expected string
	Pos      Position
}

func (u *UnexpectedEOFError) Error() string { return FormatError(u.Pos, u.Message()) }

func (u *UnexpectedEOFError) Message() string { // nolint: golint
	return fmt.Sprintf("unexpected end of input (expected %s)", u.Expected)
}
func (u *UnexpectedEOFError) Position() Position { return u.Pos } // nolint: golint

// AlternativesError is returned by Or when both branches failed at the same position.
type AlternativesError struct {
	Expected []string
	Actual   rune
	Pos      Position
}

func (a *AlternativesError) Error() string { return FormatError(a.Pos, a.Message()) }

func (a *AlternativesError) Message() string { // nolint: golint
	return fmt.Sprintf("unexpected %s (expected %s)", describeRune(a.Actual), joinAlternatives(a.Expected))
}
func (a *AlternativesError) Position() Position { return a.Pos } // nolint: golint

type parseError struct {
	Msg string
	Pos Position
	Err error
}

func (p *parseError) Error() string      { return FormatError(p.Pos, p.Message()) }
func (p *parseError) Position() Position { return p.Pos }
func (p *parseError) Unwrap() error      { return p.Err }

func (p *parseError) Message() string {
	switch {
	case p.Err == nil:
		return p.Msg
	case p.Msg == "":
		return p.Err.Error()
	}
	return p.Msg + ": " + p.Err.Error()
}

// Errorf creates a new Error at the given position.
func Errorf(pos Position, format string, args ...any) Error {
	return &parseError{Msg: fmt.Sprintf(format, args...), Pos: pos}
}

// Wrapf attempts to wrap an existing error in a new message.
//
// The original error is available through errors.Unwrap.
func Wrapf(pos Position, err error, format string, args ...any) Error {
	return &parseError{Msg: fmt.Sprintf(format, args...), Pos: pos, Err: err}
}

// AnnotateError wraps an existing error with a position.
//
// If the existing error is already an Error it will be returned unmodified. Otherwise the original
// error remains available through errors.Unwrap.
func AnnotateError(pos Position, err error) Error {
	var perr Error
	if errors.As(err, &perr) {
		return perr
	}
	return &parseError{Pos: pos, Err: err}
}

// errorPosition returns where err occurred, falling back to the cursor the failing parser started at.
func errorPosition(in *Input, at Cursor, err error) Position {
	var perr Error
	if errors.As(err, &perr) {
		return perr.Position()
	}
	return in.Position(at)
}

// expectations lists what a failed parser was looking for.
func expectations(err error) []string {
	switch err := err.(type) {
	case *AlternativesError:
		return err.Expected
	case *UnexpectedTokenError:
		return []string{err.Expected}
	case *NotOneOfError:
		return []string{fmt.Sprintf("one of %q", err.Set)}
	case *UnexpectedEOFError:
		return []string{err.Expected}
	case Error:
		return []string{err.Message()}
	}
	return []string{err.Error()}
}

// furthest picks the error of whichever branch got further, merging both when they tie.
func furthest(in *Input, at Cursor, left, right error) error {
	lpos := errorPosition(in, at, left)
	rpos := errorPosition(in, at, right)
	switch {
	case lpos.Offset > rpos.Offset:
		return left
	case rpos.Offset > lpos.Offset:
		return right
	}
	actual, _ := in.At(in.Cursor(lpos.Offset))
	return &AlternativesError{
		Expected: lo.Uniq(lo.Flatten([][]string{expectations(left), expectations(right)})),
		Actual:   actual,
		Pos:      lpos,
	}
}

func describeRune(r rune) string {
	if r == EOF {
		return "<EOF>"
	}
	return strconv.QuoteRune(r)
}

func joinAlternatives(expected []string) string {
	switch len(expected) {
	case 0:
		return "nothing"
	case 1:
		return expected[0]
	}
	return strings.Join(expected[:len(expected)-1], ", ") + " or " + expected[len(expected)-1]
}
