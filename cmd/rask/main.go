// Command rask parses JSON, arithmetic and EBNF-defined input with rask grammars.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/goccy/go-yaml"
	"go.uber.org/zap"

	"github.com/rask-go/rask"
	"github.com/rask-go/rask/ebnf"
	"github.com/rask-go/rask/examples/arith"
	"github.com/rask-go/rask/examples/jsonvalue"
)

var version = "dev"

type Globals struct {
	Version kong.VersionFlag `help:"Print version and exit."`
	Debug   bool             `help:"Log debug output to stderr."`
	Trace   bool             `help:"Trace named parsers to stderr."`
	Output  string           `short:"o" enum:"repr,json,yaml" default:"repr" help:"Output format (repr, json or yaml)."`
}

type cli struct {
	Globals

	JSON     jsonCmd     `cmd:"" name:"json" help:"Parse a JSON document."`
	Calc     calcCmd     `cmd:"" help:"Parse and evaluate an arithmetic expression."`
	Match    matchCmd    `cmd:"" help:"Match input against a production of an EBNF grammar."`
	Railroad railroadCmd `cmd:"" help:"Generate railroad diagrams for an EBNF grammar."`
}

// app is shared by all commands.
type app struct {
	log    *zap.Logger
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	output string
	trace  bool
}

func newApp(g Globals, stdin io.Reader, stdout, stderr io.Writer) (*app, error) {
	log := zap.NewNop()
	if g.Debug {
		config := zap.NewDevelopmentConfig()
		config.DisableCaller = true
		var err error
		if log, err = config.Build(); err != nil {
			return nil, err
		}
	}
	return &app{log: log, stdin: stdin, stdout: stdout, stderr: stderr, output: g.Output, trace: g.Trace}, nil
}

func (a *app) options() []rask.ParseOption {
	if a.trace {
		return []rask.ParseOption{rask.Trace(a.stderr)}
	}
	return nil
}

// read the named file, or stdin if name is "-".
func (a *app) read(name string) (string, error) {
	if name == "-" {
		data, err := io.ReadAll(a.stdin)
		return string(data), err
	}
	data, err := os.ReadFile(name)
	return string(data), err
}

func (a *app) print(value any) error {
	switch a.output {
	case "json":
		data, err := json.Marshal(value, jsontext.WithIndent("  "))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(a.stdout, string(data))
		return err
	case "yaml":
		return yaml.NewEncoder(a.stdout, yaml.UseJSONMarshaler()).Encode(value)
	}
	_, err := fmt.Fprintln(a.stdout, repr.String(value, repr.Indent("  ")))
	return err
}

type jsonCmd struct {
	File string `arg:"" default:"-" type:"existingfile" help:"JSON document (read from stdin if omitted)."`
}

func (c *jsonCmd) Run(a *app) error {
	text, err := a.read(c.File)
	if err != nil {
		return err
	}
	start := time.Now()
	value, err := jsonvalue.Parse(c.File, text, a.options()...)
	if err != nil {
		return err
	}
	a.log.Debug("parsed JSON", zap.String("file", c.File), zap.Int("bytes", len(text)), zap.Duration("elapsed", time.Since(start)))
	return a.print(value)
}

type calcCmd struct {
	Expression []string `arg:"" required:"" help:"Expression to evaluate."`
}

type calcResult struct {
	Expression string     `json:"expression"`
	AST        arith.Expr `json:"ast"`
	Value      float64    `json:"value"`
}

func (c *calcCmd) Run(a *app) error {
	text := strings.Join(c.Expression, " ")
	expr, err := arith.Parse(text, a.options()...)
	if err != nil {
		return err
	}
	a.log.Debug("parsed expression", zap.String("expression", expr.String()))
	return a.print(calcResult{Expression: expr.String(), AST: expr, Value: expr.Eval()})
}

type matchCmd struct {
	Grammar string `short:"g" required:"" type:"existingfile" help:"EBNF grammar file."`
	Start   string `short:"s" required:"" help:"Production to match."`
	File    string `arg:"" default:"-" type:"existingfile" help:"Input to match (read from stdin if omitted)."`
}

func (c *matchCmd) Run(a *app) error {
	grammar, err := os.ReadFile(c.Grammar)
	if err != nil {
		return err
	}
	parser, err := ebnf.Compile(c.Grammar, string(grammar), c.Start)
	if err != nil {
		return err
	}
	a.log.Debug("compiled grammar", zap.String("grammar", c.Grammar), zap.String("start", c.Start))
	text, err := a.read(c.File)
	if err != nil {
		return err
	}
	node, err := rask.ParseString(parser, c.File, text, append(a.options(), rask.RequireEOF())...)
	if err != nil {
		return err
	}
	a.log.Debug("matched", zap.String("production", node.Name), zap.Int("children", len(node.Children)))
	return a.print(node)
}

type railroadCmd struct {
	Grammar string `arg:"" default:"-" type:"existingfile" help:"EBNF grammar (read from stdin if omitted)."`
}

func (c *railroadCmd) Help() string {
	return `
Writes an HTML page of railroad diagrams to stdout. Copy railroad-diagrams.{css,js}
from https://github.com/tabatkins/railroad-diagrams next to it.
`
}

func (c *railroadCmd) Run(a *app) error {
	grammar, err := a.read(c.Grammar)
	if err != nil {
		return err
	}
	return ebnf.Railroad(a.stdout, c.Grammar, grammar)
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var c cli
	parser, err := kong.New(&c,
		kong.Name("rask"),
		kong.Description(`Parse JSON, arithmetic and EBNF-defined input.`),
		kong.Vars{"version": version},
		kong.Writers(stdout, stderr),
	)
	if err != nil {
		return err
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	a, err := newApp(c.Globals, stdin, stdout, stderr)
	if err != nil {
		return err
	}
	defer a.log.Sync() // nolint: errcheck
	return kctx.Run(a)
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "rask: error: %s\n", err)
		os.Exit(1)
	}
}
