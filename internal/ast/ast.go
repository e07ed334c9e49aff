package ast

import (
	"github.com/pebble-lang/pebble/internal/lexer"
	"github.com/pebble-lang/pebble/internal/source"
)

// Node represents any AST node with an associated source span.
type Node interface {
	Span() source.Span
}

// Expr represents an expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt represents a statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Decl represents a declaration. Every declaration is also a statement.
type Decl interface {
	Stmt
	declNode()
}

// TypeExpr represents a type label.
type TypeExpr interface {
	Node
	typeNode()
}

// Property is a member of a class or interface body.
type Property interface {
	Node
	propertyNode()
}

// File represents a parsed compilation unit.
type File struct {
	Statements []Stmt
	Comments   []lexer.Token
	span       source.Span
}

// Span returns the span covering the statements of the file.
func (f *File) Span() source.Span { return f.span }

// NewFile constructs a file node. The span runs from the first statement to
// the last; an empty file has the zero span.
func NewFile(stmts []Stmt, comments []lexer.Token) *File {
	f := &File{Statements: stmts, Comments: comments}
	if len(stmts) > 0 {
		f.span = source.Merge(stmts[0].Span(), stmts[len(stmts)-1].Span())
	}
	return f
}

// IsDeclaration reports whether stmt is a declaration.
func IsDeclaration(stmt Stmt) bool {
	_, ok := stmt.(Decl)
	return ok
}

// IsLiteral reports whether expr is a string, number, boolean or character
// literal.
func IsLiteral(expr Expr) bool {
	switch expr.(type) {
	case *StringLit, *NumberLit, *BoolLit, *CharLit:
		return true
	}
	return false
}
