package ast

import (
	"fmt"
	"strings"
)

// Sprint renders node as a compact s-expression, e.g. `(+ 2 (* 4 5))`.
// Statements render without their terminators.
func Sprint(node Node) string {
	var p printer
	p.node(node)
	return p.String()
}

// SprintAll renders statements one per line.
func SprintAll(stmts []Stmt) string {
	lines := make([]string, 0, len(stmts))
	for _, s := range stmts {
		lines = append(lines, Sprint(s))
	}
	return strings.Join(lines, "\n")
}

type printer struct {
	strings.Builder
}

func (p *printer) list(open string, parts ...func()) {
	p.WriteString("(")
	p.WriteString(open)
	for _, part := range parts {
		p.WriteString(" ")
		part()
	}
	p.WriteString(")")
}

func (p *printer) of(n Node) func() {
	return func() { p.node(n) }
}

func (p *printer) word(s string) func() {
	return func() { p.WriteString(s) }
}

func (p *printer) seq(open string, items []Node) func() {
	return func() {
		p.WriteString(open)
		for i, item := range items {
			if i > 0 {
				p.WriteString(" ")
			}
			p.node(item)
		}
		p.WriteString(closerOf(open))
	}
}

func closerOf(open string) string {
	switch open {
	case "[":
		return "]"
	case "{":
		return "}"
	case "<":
		return ">"
	}
	return ")"
}

func nodesOf[T Node](items []T) []Node {
	out := make([]Node, len(items))
	for i, it := range items {
		out[i] = it
	}
	return out
}

// signature renders generics, params and return type shared by functions,
// methods and function types.
func (p *printer) signature(generics []*GenericParam, params []*Param, ret TypeExpr) []func() {
	var parts []func()
	if len(generics) > 0 {
		parts = append(parts, p.seq("<", nodesOf(generics)))
	}
	parts = append(parts, p.seq("(", nodesOf(params)))
	if ret != nil {
		parts = append(parts, p.word("->"), p.of(ret))
	}
	return parts
}

func (p *printer) node(node Node) {
	if isNil(node) {
		p.WriteString("nil")
		return
	}
	switch n := node.(type) {
	case *Ident:
		p.WriteString(n.Name)
	case *StringLit:
		p.WriteString(`"` + n.Value + `"`)
	case *NumberLit:
		p.WriteString(n.Text)
	case *BoolLit:
		fmt.Fprintf(p, "%t", n.Value)
	case *CharLit:
		p.WriteString("'" + n.Value + "'")
	case *SelfExpr:
		p.WriteString("self")
	case *UnaryExpr:
		p.list(n.Op.String(), p.of(n.Operand))
	case *BinaryExpr:
		p.list(n.Op.String(), p.of(n.Left), p.of(n.Right))
	case *LogicalExpr:
		p.list(n.Op.String(), p.of(n.Left), p.of(n.Right))
	case *CallExpr:
		parts := []func(){p.of(n.Callee)}
		for _, arg := range n.Args {
			parts = append(parts, p.of(arg))
		}
		p.list("call", parts...)
	case *ArrayExpr:
		p.seq("[", nodesOf(n.Elements))()
	case *IndexExpr:
		p.list("index", p.of(n.Target), p.of(n.Index))
	case *DotExpr:
		p.list(".", p.of(n.Object), p.of(n.Property))
	case *NamespaceExpr:
		p.list("::", p.of(n.Object), p.of(n.Property))
	case *RangeExpr:
		p.list("..", p.of(n.Low), p.of(n.High))
	case *TernaryExpr:
		p.list("?", p.of(n.Test), p.of(n.Consequent), p.of(n.Alternate))
	case *AssignExpr:
		p.list(n.Op.String(), p.of(n.Target), p.of(n.Value))
	case *FnExpr:
		parts := p.signature(n.Generics, n.Params, n.ReturnType)
		if n.Body != nil {
			parts = append(parts, p.of(n.Body))
		} else {
			parts = append(parts, p.of(n.Implicit))
		}
		p.list("fn", parts...)

	case *Block:
		p.seq("{", nodesOf(n.Statements))()
	case *ExprStmt:
		p.node(n.Expr)
	case *EmptyStmt:
		p.WriteString("(empty)")
	case *PrintlnStmt:
		p.list("println", p.of(n.Value))
	case *IfStmt:
		parts := []func(){p.of(n.Test), p.of(n.Body)}
		if n.Else != nil {
			parts = append(parts, p.of(n.Else))
		}
		p.list("if", parts...)
	case *WhileStmt:
		p.list("while", p.of(n.Test), p.of(n.Body))
	case *ForStmt:
		p.list("for", p.of(n.Item), p.of(n.Iterator), p.of(n.Body))
	case *LoopStmt:
		if n.Count != nil {
			p.list("loop", p.of(n.Count), p.of(n.Body))
		} else {
			p.list("loop", p.of(n.Body))
		}
	case *BreakStmt:
		p.WriteString("(break)")
	case *ContinueStmt:
		p.WriteString("(continue)")
	case *ReturnStmt:
		if n.Value != nil {
			p.list("return", p.of(n.Value))
		} else {
			p.WriteString("(return)")
		}
	case *CrashStmt:
		p.list("crash", p.of(n.Value))
	case *TryStmt:
		parts := []func(){p.of(n.Body)}
		if n.Recover != nil {
			parts = append(parts, p.of(n.Recover))
		}
		p.list("try", parts...)
	case *RecoverBlock:
		p.list("recover", p.seq("(", nodesOf(n.Params)), p.of(n.Body))

	case *Param:
		if n.Label != nil {
			p.list(":", p.of(n.Name), p.of(n.Label))
		} else {
			p.node(n.Name)
		}
	case *GenericParam:
		if len(n.Implements) > 0 {
			p.list("implements", p.of(n.Name), p.seq("(", nodesOf(n.Implements)))
		} else {
			p.node(n.Name)
		}
	case *FunctionDecl:
		parts := append([]func(){p.of(n.Name)}, p.signature(n.Generics, n.Params, n.ReturnType)...)
		p.list("function", append(parts, p.of(n.Body))...)
	case *Method:
		parts := append([]func(){p.of(n.Name)}, p.signature(n.Generics, n.Params, n.ReturnType)...)
		p.list("method", append(parts, p.of(n.Body))...)
	case *Attribute:
		parts := []func(){p.of(n.Key)}
		if n.Label != nil {
			parts = append(parts, p.word(":"), p.of(n.Label))
		}
		if n.Value != nil {
			parts = append(parts, p.word("="), p.of(n.Value))
		}
		p.list("attribute", parts...)
	case *Implement:
		p.list("implement", p.of(n.Interface))
	case *ClassDecl:
		p.declaration("class", n.Name, n.Generics, nodesOf(n.Properties))
	case *InterfaceDecl:
		p.declaration("interface", n.Name, n.Generics, nodesOf(n.Properties))
	case *EnumDecl:
		p.declaration("enum", n.Name, n.Generics, nodesOf(n.Variants))
	case *Variant:
		if n.Tuple {
			p.list(n.Name.Name, func() {
				for i, f := range n.Fields {
					if i > 0 {
						p.WriteString(" ")
					}
					p.node(f)
				}
			})
		} else {
			p.node(n.Name)
		}
	case *Mapping:
		p.list("->", p.of(n.Key), p.of(n.Value))
	case *RecordDecl:
		p.list("record", p.of(n.Name), p.seq("{", nodesOf(n.Mappings)))
	case *TypeAliasDecl:
		parts := []func(){p.of(n.Name)}
		if len(n.Generics) > 0 {
			parts = append(parts, p.seq("<", nodesOf(n.Generics)))
		}
		p.list("type", append(parts, p.of(n.Value))...)
	case *ModuleDecl:
		p.list("module", p.of(n.Name), p.of(n.Body))
	case *VarDecl:
		parts := []func(){p.of(n.Name)}
		if n.Label != nil {
			parts = append(parts, p.word(":"), p.of(n.Label))
		}
		if n.Value != nil {
			parts = append(parts, p.word("="), p.of(n.Value))
		}
		p.list(n.Kind.String(), parts...)
	case *Import:
		if n.Local != nil {
			p.list("as", p.of(n.Name), p.of(n.Local))
		} else {
			p.node(n.Name)
		}
	case *UseDecl:
		p.list("use", p.seq("{", nodesOf(n.Imports)), p.of(n.Source))
	case *PrependDecl:
		p.list("prepend", p.of(n.Source))
	case *TestBlock:
		p.list("tests", p.of(n.Body))
	case *PublicStmt:
		p.list("public", p.of(n.Decl))

	case *ConcreteType:
		p.node(n.Name)
		if len(n.Args) > 0 {
			p.seq("<", nodesOf(n.Args))()
		}
	case *FunctionType:
		p.list("fn-type", p.signature(n.Generics, n.Params, n.Return)...)
	case *DotType:
		p.node(n.Object)
		p.WriteString(".")
		p.node(n.Property)
	case *File:
		p.WriteString(SprintAll(n.Statements))
	default:
		fmt.Fprintf(p, "<%T>", node)
	}
}

func (p *printer) declaration(kind string, name *Ident, generics []*GenericParam, members []Node) {
	parts := []func(){p.of(name)}
	if len(generics) > 0 {
		parts = append(parts, p.seq("<", nodesOf(generics)))
	}
	p.list(kind, append(parts, p.seq("{", members))...)
}
