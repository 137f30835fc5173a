package ebnf

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/exp/ebnf"
)

const railroadHeader = `<!DOCTYPE html>
<style>
body {
	background-color: hsl(30,20%, 95%);
}
h1 {
	font-family: sans-serif;
	font-size: 1em;
}
</style>
<!-- From https://github.com/tabatkins/railroad-diagrams -->
<link rel='stylesheet' href='railroad-diagrams.css'>
<script src='railroad-diagrams.js'></script>
<body>
`

// Railroad writes an HTML page of railroad diagrams for grammar to w, one per production in the order
// they are declared.
//
// The page expects railroad-diagrams.{css,js} from https://github.com/tabatkins/railroad-diagrams to be
// served alongside it.
func Railroad(w io.Writer, filename, grammar string) error {
	ast, err := ebnf.Parse(filename, strings.NewReader(grammar))
	if err != nil {
		return err
	}
	productions := lo.Values(ast)
	slices.SortFunc(productions, func(a, b *ebnf.Production) int { return a.Pos().Offset - b.Pos().Offset })

	s := &strings.Builder{}
	s.WriteString(railroadHeader)
	for _, production := range productions {
		name := production.Name.String
		fmt.Fprintf(s, "<h1 id=%q>%s</h1>\n", name, name)
		s.WriteString("<script>\n")
		s.WriteString("Diagram(" + diagram(production.Expr) + ").addTo();\n")
		s.WriteString("</script>\n")
	}
	s.WriteString("</body>\n")
	_, err = io.WriteString(w, s.String())
	return err
}

func diagram(expr ebnf.Expression) string {
	switch n := expr.(type) {
	case nil:
		return "Skip()"
	case ebnf.Alternative:
		return "Choice(0, " + diagrams(n) + ")"
	case ebnf.Sequence:
		return "Sequence(" + diagrams(n) + ")"
	case *ebnf.Group:
		return diagram(n.Body)
	case *ebnf.Option:
		return "Optional(" + diagram(n.Body) + ")"
	case *ebnf.Repetition:
		return "ZeroOrMore(" + diagram(n.Body) + ")"
	case *ebnf.Name:
		return fmt.Sprintf("NonTerminal(%q, {href:\"#%s\"})", n.String, n.String)
	case *ebnf.Token:
		return fmt.Sprintf("Terminal(%q)", n.String)
	case *ebnf.Range:
		return fmt.Sprintf("Terminal(%q)", n.Begin.String+"…"+n.End.String)
	}
	return fmt.Sprintf("Comment(%q)", fmt.Sprintf("%T", expr))
}

func diagrams(exprs []ebnf.Expression) string {
	return strings.Join(lo.Map(exprs, func(expr ebnf.Expression, _ int) string { return diagram(expr) }), ", ")
}
