package ast

import "github.com/pebble-lang/pebble/internal/source"

// ConcreteType is `Name` or `Name<Args>`.
type ConcreteType struct {
	Name *Ident
	Args []TypeExpr
	span source.Span
}

// NewConcreteType constructs a concrete type. closing is the span of the
// final `>` when arguments are present and is ignored otherwise.
func NewConcreteType(name *Ident, args []TypeExpr, closing source.Span) *ConcreteType {
	t := &ConcreteType{Name: name, Args: args, span: name.Span()}
	if args != nil {
		t.span = source.Merge(name.Span(), closing)
	}
	return t
}

// Span returns the type span.
func (t *ConcreteType) Span() source.Span { return t.span }
func (*ConcreteType) typeNode()           {}

// FunctionType is `<G>(params) -> Return`.
type FunctionType struct {
	Generics []*GenericParam
	Params   []*Param
	Return   TypeExpr
	span     source.Span
}

// NewFunctionType constructs a function type starting at start, which is the
// span of its first token.
func NewFunctionType(start source.Span, generics []*GenericParam, params []*Param, ret TypeExpr) *FunctionType {
	return &FunctionType{Generics: generics, Params: params, Return: ret, span: source.Merge(start, ret.Span())}
}

func (t *FunctionType) Span() source.Span { return t.span }
func (*FunctionType) typeNode()           {}

// DotType is a qualified type, `pkg.Name<T>`.
type DotType struct {
	Object   TypeExpr
	Property *ConcreteType
	span     source.Span
}

// NewDotType constructs a qualified type.
func NewDotType(object TypeExpr, property *ConcreteType) *DotType {
	return &DotType{Object: object, Property: property, span: source.Merge(object.Span(), property.Span())}
}

func (t *DotType) Span() source.Span { return t.span }
func (*DotType) typeNode()           {}
