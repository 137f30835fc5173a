package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-json-experiment/json"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	err := run(args, strings.NewReader(stdin), stdout, stderr)
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestCalc(t *testing.T) {
	stdout, _, err := runCLI(t, "", "--output=json", "calc", "1", "+", "2 * 3")
	require.NoError(t, err)
	var result map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	require.Equal(t, "1 + 2 * 3", result["expression"])
	require.Equal(t, 7.0, result["value"])
}

func TestCalcError(t *testing.T) {
	_, _, err := runCLI(t, "", "calc", "1 +")
	require.EqualError(t, err, `1:4: unexpected <EOF> (expected "-", number or "(")`)
}

func TestCalcTrace(t *testing.T) {
	_, stderr, err := runCLI(t, "", "--trace", "calc", "1")
	require.NoError(t, err)
	require.Contains(t, stderr, "expression 1:1 '1'")
	require.Contains(t, stderr, "expression matched to 1:2")
}

func TestJSONFromFile(t *testing.T) {
	path := writeFile(t, "doc.json", `{"a": [1, true], "b": null}`)
	stdout, _, err := runCLI(t, "", "-o", "json", "json", path)
	require.NoError(t, err)
	var value any
	require.NoError(t, json.Unmarshal([]byte(stdout), &value))
	require.Equal(t, map[string]any{"a": []any{1.0, true}, "b": nil}, value)
}

func TestJSONFromStdin(t *testing.T) {
	stdout, _, err := runCLI(t, `["x"]`, "json")
	require.NoError(t, err)
	require.Contains(t, stdout, `"x"`)
}

func TestJSONYAMLOutput(t *testing.T) {
	stdout, _, err := runCLI(t, `{"name": "rask"}`, "--output=yaml", "json")
	require.NoError(t, err)
	require.Equal(t, "name: rask\n", stdout)
}

func TestJSONError(t *testing.T) {
	path := writeFile(t, "bad.json", `{"a": }`)
	_, _, err := runCLI(t, "", "json", path)
	require.Error(t, err)
	require.True(t, strings.HasPrefix(err.Error(), path+":1:"), err.Error())
}

func TestMatch(t *testing.T) {
	grammar := writeFile(t, "list.ebnf", `
List = "[" [ ident { "," ident } ] "]" .
ident = letter { letter } .
letter = "a" … "z" .
`)
	stdout, _, err := runCLI(t, "[ab, cd]", "-o", "json", "match", "--grammar", grammar, "--start", "List")
	require.NoError(t, err)
	var node struct {
		Name     string `json:"name"`
		Children []struct {
			Name string `json:"name"`
			Text string `json:"text"`
		} `json:"children"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &node))
	require.Equal(t, "List", node.Name)
	require.Len(t, node.Children, 2)
	require.Equal(t, "cd", node.Children[1].Text)
}

func TestMatchBadGrammar(t *testing.T) {
	grammar := writeFile(t, "bad.ebnf", `List = item .`)
	_, _, err := runCLI(t, "", "match", "-g", grammar, "-s", "List")
	require.Error(t, err)
}

func TestUnknownOutput(t *testing.T) {
	_, _, err := runCLI(t, "", "--output=xml", "calc", "1")
	require.Error(t, err)
}

func TestRailroad(t *testing.T) {
	stdout, _, err := runCLI(t, `Digits = "0" … "9" { "0" … "9" } .`, "railroad")
	require.NoError(t, err)
	require.Contains(t, stdout, `<h1 id="Digits">Digits</h1>`)
	require.Contains(t, stdout, `ZeroOrMore(Terminal("0…9"))`)
}
