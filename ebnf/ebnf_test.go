package ebnf_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rask-go/rask"
	"github.com/rask-go/rask/ebnf"
)

const listGrammar = `
List = "[" [ ident { "," ident } ] "]" .
ident = alpha { alpha | digit } .
alpha = "a" … "z" | "A" … "Z" | "_" .
digit = "0" … "9" .
`

const exprGrammar = `
Expr = Term { ( "+" | "-" ) Term } .
Term = number | "(" Expr ")" .
number = digit { digit } .
digit = "0" … "9" .
`

func TestCompile(t *testing.T) {
	tests := []struct {
		name    string
		grammar string
		start   string
		source  string
		node    string
		fail    string
	}{
		{name: "List", grammar: listGrammar, start: "List", source: " [ foo , bar1 ] ",
			node: `List(ident("foo"), ident("bar1"))`},
		{name: "EmptyList", grammar: listGrammar, start: "List", source: "[]", node: `List("[]")`},
		{name: "TrailingSeparator", grammar: listGrammar, start: "List", source: "[foo,]",
			fail: `1:6: unexpected ']' (expected ident)`},
		{name: "NoMatch", grammar: listGrammar, start: "List", source: "",
			fail: `1:1: unexpected <EOF> (expected List)`},
		{name: "Recursive", grammar: exprGrammar, start: "Expr", source: "1 + (23 - 4)",
			node: `Expr(Term(number("1")), Term(Expr(Term(number("23")), Term(number("4")))))`},
		{name: "Lexical", grammar: `ident = alpha { alpha } . alpha = "a" … "z" .`, start: "ident",
			source: "abc", node: `ident("abc")`},
		{name: "LexicalKeepsWhitespace", grammar: `ident = alpha { alpha } . alpha = "a" … "z" .`, start: "ident",
			source: " abc", fail: `1:1: unexpected ' ' (expected ident)`},
		{name: "EmptyProduction", grammar: `Extra = .`, start: "Extra", source: "", node: `Extra("")`},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			parser, err := ebnf.Compile("", test.grammar, test.start)
			require.NoError(t, err)
			node, err := rask.ParseString(parser, "", test.source, rask.RequireEOF())
			if test.fail != "" {
				require.EqualError(t, err, test.fail)
				return
			}
			require.NoError(t, err)
			require.Equal(t, test.node, node.String())
		})
	}
}

func TestNodePositions(t *testing.T) {
	parser := ebnf.MustCompile("list.ebnf", listGrammar, "List")
	node, err := rask.ParseString(parser, "input.txt", "[ a,\n  bc ]  ")
	require.NoError(t, err)
	require.Equal(t, "[ a,\n  bc ]", node.Text)
	require.Equal(t, rask.Position{Filename: "input.txt", Offset: 0, Line: 1, Column: 1}, node.Pos)
	require.Len(t, node.Children, 2)
	require.Equal(t, "a", node.Children[0].Text)
	require.Equal(t, rask.Position{Filename: "input.txt", Offset: 7, Line: 2, Column: 3}, node.Children[1].Pos)
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name    string
		grammar string
		start   string
	}{
		{name: "Syntax", grammar: `List = "[" `, start: "List"},
		{name: "MissingProduction", grammar: `List = item .`, start: "List"},
		{name: "MissingStart", grammar: `List = "[" "]" .`, start: "Dict"},
		{name: "Unreachable", grammar: `List = "[" "]" . Other = "x" .`, start: "List"},
		{name: "LexicalReferencesSyntactic", grammar: `word = Letter . Letter = "a" .`, start: "word"},
		{name: "DecreasingRange", grammar: `Digit = "9" … "0" .`, start: "Digit"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ebnf.Compile("grammar.ebnf", test.grammar, test.start)
			require.Error(t, err)
		})
	}
}

func TestMustCompilePanics(t *testing.T) {
	require.Panics(t, func() { ebnf.MustCompile("", `List = item .`, "List") })
}

// The EBNF dialect itself, as documented by golang.org/x/exp/ebnf.
const metaGrammar = `
Grammar = { Production } .
Production = name "=" [ Expression ] "." .
Expression = Alternative { "|" Alternative } .
Alternative = Term { Term } .
Term = name | token [ "…" token ] | Group | Option | Repetition .
Group = "(" Expression ")" .
Option = "[" Expression "]" .
Repetition = "{" Expression "}" .
name = letter { letter | digit | "_" } .
token = "\"" { char } "\"" .
char = " " … "!" | "#" … "~" | "…" .
letter = "a" … "z" | "A" … "Z" .
digit = "0" … "9" .
`

func TestCompileParsesEBNF(t *testing.T) {
	parser := ebnf.MustCompile("ebnf.ebnf", metaGrammar, "Grammar")
	for _, grammar := range []string{listGrammar, exprGrammar} {
		node, err := rask.ParseString(parser, "", grammar, rask.RequireEOF())
		require.NoError(t, err, grammar)
		require.Equal(t, strings.Count(grammar, " = "), len(node.Children))
		for _, production := range node.Children {
			require.Equal(t, "Production", production.Name)
			require.Equal(t, "name", production.Children[0].Name)
		}
	}
	node, err := rask.ParseString(parser, "", listGrammar)
	require.NoError(t, err)
	require.Equal(t, `Production(name("digit"), Expression(Alternative(Term(token("\"0\""), token("\"9\"")))))`,
		node.Children[3].String())
}

func TestRailroad(t *testing.T) {
	w := &strings.Builder{}
	err := ebnf.Railroad(w, "list.ebnf", listGrammar)
	require.NoError(t, err)
	html := w.String()
	require.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	require.Contains(t, html, `<h1 id="List">List</h1>`)
	require.Contains(t, html, `Diagram(Sequence(Terminal("["), Optional(Sequence(NonTerminal("ident", {href:"#ident"}), `+
		`ZeroOrMore(Sequence(Terminal(","), NonTerminal("ident", {href:"#ident"}))))), Terminal("]"))).addTo();`)
	require.Contains(t, html, `Diagram(Terminal("0…9")).addTo();`)
	require.Less(t, strings.Index(html, `id="List"`), strings.Index(html, `id="digit"`))
}

func TestRailroadSyntaxError(t *testing.T) {
	err := ebnf.Railroad(&strings.Builder{}, "", `List = "[" `)
	require.Error(t, err)
}
