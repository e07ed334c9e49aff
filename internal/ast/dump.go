package ast

import (
	"fmt"
	"reflect"

	"github.com/serenize/snaker"

	"github.com/pebble-lang/pebble/internal/lexer"
	"github.com/pebble-lang/pebble/internal/source"
)

var (
	nodeType     = reflect.TypeOf((*Node)(nil)).Elem()
	stringerType = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
)

// Dump converts node into a tree of maps and slices suitable for encoding as
// JSON. Each node becomes an object with "kind", "span" and one key per
// populated field, named in snake_case. A field that would clash with "kind"
// or "span" is prefixed with the node name, e.g. "var_decl_kind".
func Dump(node Node) map[string]any {
	if isNil(node) {
		return nil
	}
	out := map[string]any{
		"kind": reflect.TypeOf(node).Elem().Name(),
		"span": dumpSpan(node.Span()),
	}
	if f, ok := node.(*File); ok {
		stmts := make([]any, 0, len(f.Statements))
		for _, s := range f.Statements {
			stmts = append(stmts, Dump(s))
		}
		out["statements"] = stmts
		comments := make([]any, 0, len(f.Comments))
		for _, c := range f.Comments {
			comments = append(comments, dumpComment(c))
		}
		out["comments"] = comments
		return out
	}

	v := reflect.ValueOf(node).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		val, ok := dumpValue(v.Field(i))
		if !ok {
			continue
		}
		key := snaker.CamelToSnake(field.Name)
		if _, taken := out[key]; taken {
			key = snaker.CamelToSnake(t.Name()) + "_" + key
		}
		out[key] = val
	}
	return out
}

func dumpValue(v reflect.Value) (any, bool) {
	switch v.Kind() {
	case reflect.Interface, reflect.Pointer:
		if v.IsNil() {
			return nil, false
		}
		if n, ok := v.Interface().(Node); ok {
			return Dump(n), true
		}
	case reflect.Slice:
		if v.Len() == 0 {
			return nil, false
		}
		items := make([]any, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			item, ok := dumpValue(v.Index(i))
			if ok {
				items = append(items, item)
			}
		}
		return items, true
	}
	if v.Type().Implements(stringerType) && !v.Type().Implements(nodeType) {
		return v.Interface().(fmt.Stringer).String(), true
	}
	switch v.Kind() {
	case reflect.String:
		return v.String(), true
	case reflect.Bool:
		return v.Bool(), true
	}
	return nil, false
}

func dumpSpan(s source.Span) [2][2]int {
	return [2][2]int{{s.Start.Line, s.Start.Column}, {s.End.Line, s.End.Column}}
}

func dumpComment(c lexer.Token) map[string]any {
	return map[string]any{
		"kind":    c.Comment.String(),
		"span":    dumpSpan(c.Span),
		"content": c.Value,
	}
}
