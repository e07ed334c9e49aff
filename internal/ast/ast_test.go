package ast_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/pebble-lang/pebble/internal/ast"
	"github.com/pebble-lang/pebble/internal/parser"
)

func parse(t *testing.T, src string) *ast.File {
	t.Helper()
	file, bag := parser.ParseSource(src)
	require.Zero(t, bag.Len(), "unexpected diagnostics: %v", bag.Items())
	return file
}

func TestSprintTree(t *testing.T) {
	file := parse(t, "@let a = 1 + -b;")
	want := "VarDecl 1:1-1:16\n" +
		"  Ident 1:6-1:6 a\n" +
		"  BinaryExpr 1:10-1:15 +\n" +
		"    NumberLit 1:10-1:10 1\n" +
		"    UnaryExpr 1:14-1:15 -\n" +
		"      Ident 1:15-1:15 b\n"
	assert.Equal(t, want, ast.SprintTree(file.Statements[0]))
}

func TestSprintTreeLiterals(t *testing.T) {
	file := parse(t, `["s", 'c', true];`)
	want := "ExprStmt 1:1-1:17\n" +
		"  ArrayExpr 1:1-1:16\n" +
		"    StringLit 1:2-1:4 \"s\"\n" +
		"    CharLit 1:7-1:9 'c'\n" +
		"    BoolLit 1:12-1:15 true\n"
	assert.Equal(t, want, ast.SprintTree(file.Statements[0]))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestFprintReportsWriteErrors(t *testing.T) {
	file := parse(t, "a;")
	assert.EqualError(t, ast.Fprint(failingWriter{}, file), "closed")
}

func TestWalkStopsDescending(t *testing.T) {
	file := parse(t, "@function f(a) { return a + 1; }\nb;")

	var kinds []string
	ast.Walk(file, func(n ast.Node) bool {
		switch n.(type) {
		case *ast.File:
			kinds = append(kinds, "file")
		case *ast.FunctionDecl:
			kinds = append(kinds, "function")
			return false
		case *ast.ExprStmt:
			kinds = append(kinds, "expr")
		case *ast.Ident:
			kinds = append(kinds, "ident")
		}
		return true
	})
	assert.Equal(t, []string{"file", "function", "expr", "ident"}, kinds)
}

func TestChildrenSkipsAbsentParts(t *testing.T) {
	file := parse(t, "return;")
	assert.Empty(t, ast.Children(file.Statements[0]))

	file = parse(t, "@let x: Int;")
	children := ast.Children(file.Statements[0])
	require.Len(t, children, 2)
	assert.IsType(t, &ast.Ident{}, children[0])
	assert.IsType(t, &ast.ConcreteType{}, children[1])
}

func TestDump(t *testing.T) {
	file := parse(t, "// hi\n@const a = 1 + x;")
	data, err := json.Marshal(ast.Dump(file))
	require.NoError(t, err)

	doc := string(data)
	assert.Equal(t, "File", gjson.Get(doc, "kind").String())
	assert.Equal(t, "VarDecl", gjson.Get(doc, "statements.0.kind").String())
	assert.Equal(t, "const", gjson.Get(doc, "statements.0.var_decl_kind").String())
	assert.Equal(t, "a", gjson.Get(doc, "statements.0.name.name").String())
	assert.Equal(t, "+", gjson.Get(doc, "statements.0.value.op").String())
	assert.Equal(t, "1", gjson.Get(doc, "statements.0.value.left.text").String())
	assert.Equal(t, "x", gjson.Get(doc, "statements.0.value.right.name").String())
	assert.False(t, gjson.Get(doc, "statements.0.label").Exists())
	assert.Equal(t, "[[2,1],[2,17]]", gjson.Get(doc, "statements.0.span").Raw)

	assert.Equal(t, " hi", gjson.Get(doc, "comments.0.content").String())
	assert.Equal(t, int64(1), gjson.Get(doc, "comments.#").Int())
}

func TestDumpNil(t *testing.T) {
	assert.Nil(t, ast.Dump(nil))
}
