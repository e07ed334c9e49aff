package ast

import (
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
)

// Fprint writes node as an indented tree, one node per line with its kind,
// span and, for leaves and operators, the token text.
func Fprint(w io.Writer, node Node) error {
	tp := treePrinter{w: w}
	tp.print(node, 0)
	return tp.err
}

// SprintTree is Fprint into a string.
func SprintTree(node Node) string {
	var sb strings.Builder
	_ = Fprint(&sb, node)
	return sb.String()
}

type treePrinter struct {
	w   io.Writer
	err error
}

func (tp *treePrinter) print(node Node, depth int) {
	if tp.err != nil || isNil(node) {
		return
	}
	line := strings.Repeat("  ", depth) + reflect.TypeOf(node).Elem().Name() + " " + node.Span().String()
	if detail := nodeDetail(node); detail != "" {
		line += " " + detail
	}
	if _, tp.err = fmt.Fprintln(tp.w, line); tp.err != nil {
		return
	}
	for _, child := range Children(node) {
		tp.print(child, depth+1)
	}
}

func nodeDetail(node Node) string {
	switch n := node.(type) {
	case *Ident:
		return n.Name
	case *StringLit:
		return strconv.Quote(n.Value)
	case *CharLit:
		return "'" + n.Value + "'"
	case *NumberLit:
		return n.Text
	case *BoolLit:
		return strconv.FormatBool(n.Value)
	case *UnaryExpr:
		return n.Op.String()
	case *BinaryExpr:
		return n.Op.String()
	case *LogicalExpr:
		return n.Op.String()
	case *AssignExpr:
		return n.Op.String()
	}
	return ""
}
