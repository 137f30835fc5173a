// Package ebnf compiles grammars written in the EBNF dialect of "golang.org/x/exp/ebnf" into rask
// parsers.
//
// Productions whose name starts with a lower-case letter are lexical: they match their input
// verbatim and produce a leaf Node. All other productions are syntactic: whitespace is skipped after
// every token and every reference to a lexical production, and the Node they produce has a child
// for each syntactic or lexical production they matched.
//
// Here's a grammar for comma separated lists of identifiers:
//
//	List = "[" [ ident { "," ident } ] "]" .
//	ident = alpha { alpha | digit } .
//	alpha = "a" … "z" | "A" … "Z" | "_" .
//	digit = "0" … "9" .
package ebnf

import (
	"fmt"
	"strings"
	"text/scanner"
	"unicode"
	"unicode/utf8"

	"github.com/samber/lo"
	"golang.org/x/exp/ebnf"

	"github.com/rask-go/rask"
)

// Node is the result of matching a production.
type Node struct {
	Name string `json:"name"`
	// Text matched by the production, excluding trailing whitespace.
	Text     string        `json:"text"`
	Pos      rask.Position `json:"pos"`
	Children []*Node       `json:"children,omitempty"`
}

func (n *Node) String() string {
	if len(n.Children) == 0 {
		return fmt.Sprintf("%s(%q)", n.Name, n.Text)
	}
	children := lo.Map(n.Children, func(child *Node, _ int) string { return child.String() })
	return fmt.Sprintf("%s(%s)", n.Name, strings.Join(children, ", "))
}

// Compile grammar into a parser for the production start.
//
// The grammar must pass ebnf.Verify: every production must be defined and reachable from start, and
// lexical productions may only refer to other lexical productions. If start is syntactic the
// returned parser also skips leading whitespace.
func Compile(filename, grammar, start string) (rask.Parser[*Node], error) {
	ast, err := ebnf.Parse(filename, strings.NewReader(grammar))
	if err != nil {
		return nil, err
	}
	if err = ebnf.Verify(ast, start); err != nil {
		return nil, err
	}
	c := &compiler{productions: make(map[string]rask.Parser[*Node], len(ast))}
	for name, production := range ast {
		c.productions[name] = c.production(production)
	}
	root := c.productions[start]
	if isLexical(start) {
		return root, nil
	}
	return rask.Then(rask.Whitespace(), root), nil
}

// MustCompile calls Compile and panics on error.
func MustCompile(filename, grammar, start string) rask.Parser[*Node] {
	p, err := Compile(filename, grammar, start)
	if err != nil {
		panic(err)
	}
	return p
}

type compiler struct {
	productions map[string]rask.Parser[*Node]
}

func (c *compiler) production(production *ebnf.Production) rask.Parser[*Node] {
	name := production.Name.String
	lexical := isLexical(name)
	body := c.compile(production.Expr, lexical)
	return rask.Named(name, rask.Func[*Node](func(in *rask.Input, at rask.Cursor) (*Node, rask.Cursor, error) {
		children, next, err := body.Parse(in, at)
		if err != nil {
			return nil, at, err
		}
		node := &Node{Name: name, Text: in.Slice(at, next), Pos: in.Position(at)}
		if !lexical {
			node.Text = strings.TrimRightFunc(node.Text, unicode.IsSpace)
			node.Children = children
		}
		return node, next, nil
	}))
}

// compile expr into a parser returning the nodes of the productions it matched.
func (c *compiler) compile(expr ebnf.Expression, lexical bool) rask.Parser[[]*Node] { // nolint: gocyclo
	switch n := expr.(type) {
	case nil:
		return rask.Always[[]*Node](nil)

	case ebnf.Alternative:
		return rask.Choice(c.compileAll(n, lexical)...)

	case ebnf.Sequence:
		return rask.Map(rask.Sequence(c.compileAll(n, lexical)...), flatten)

	case *ebnf.Group:
		return c.compile(n.Body, lexical)

	case *ebnf.Option:
		return rask.Map(rask.Optional(c.compile(n.Body, lexical)), func(nodes *[]*Node) []*Node { return lo.FromPtr(nodes) })

	case *ebnf.Repetition:
		return rask.Map(rask.Many(c.compile(n.Body, lexical)), flatten)

	case *ebnf.Name:
		name := n.String
		ref := rask.Lazy(func() rask.Parser[*Node] { return c.productions[name] })
		if lexical {
			return rask.Map(ref, func(*Node) []*Node { return nil })
		}
		if isLexical(name) {
			ref = rask.Lexeme(ref)
		}
		return rask.Map(ref, func(node *Node) []*Node { return []*Node{node} })

	case *ebnf.Token:
		token := rask.Literal(n.String)
		if !lexical {
			token = rask.Lexeme(token)
		}
		return rask.Map(token, func(string) []*Node { return nil })

	case *ebnf.Range:
		start, _ := utf8.DecodeRuneInString(n.Begin.String)
		end, _ := utf8.DecodeRuneInString(n.End.String)
		name := fmt.Sprintf("%q … %q", start, end)
		match := rask.Satisfy(name, func(r rune) bool { return r >= start && r <= end })
		if !lexical {
			match = rask.Lexeme(match)
		}
		return rask.Map(match, func(rune) []*Node { return nil })
	}
	return rask.Fail[[]*Node](fmt.Sprintf("%s: unsupported EBNF expression %T", position(expr.Pos()), expr))
}

func (c *compiler) compileAll(exprs []ebnf.Expression, lexical bool) []rask.Parser[[]*Node] {
	return lo.Map(exprs, func(expr ebnf.Expression, _ int) rask.Parser[[]*Node] {
		return c.compile(expr, lexical)
	})
}

func flatten(nodes [][]*Node) []*Node { return lo.Flatten(nodes) }

func isLexical(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsLower(r)
}

func position(pos scanner.Position) rask.Position {
	return rask.Position{Filename: pos.Filename, Offset: pos.Offset, Line: pos.Line, Column: pos.Column}
}
