package ast

import "github.com/pebble-lang/pebble/internal/source"

// Param is a function or method parameter with an optional type label.
type Param struct {
	Name  *Ident
	Label TypeExpr
	span  source.Span
}

// NewParam constructs a parameter.
func NewParam(name *Ident, label TypeExpr) *Param {
	p := &Param{Name: name, Label: label, span: name.Span()}
	if label != nil {
		p.span = source.Merge(name.Span(), label.Span())
	}
	return p
}

// Span returns the parameter span.
func (p *Param) Span() source.Span { return p.span }

// GenericParam is a generic type parameter, `T implements A + B`.
type GenericParam struct {
	Name       *Ident
	Implements []*Ident
	span       source.Span
}

// NewGenericParam constructs a generic parameter.
func NewGenericParam(name *Ident, implements []*Ident) *GenericParam {
	g := &GenericParam{Name: name, Implements: implements, span: name.Span()}
	if len(implements) > 0 {
		g.span = source.Merge(name.Span(), implements[len(implements)-1].Span())
	}
	return g
}

// Span returns the declaration span.
func (g *GenericParam) Span() source.Span { return g.span }

// FunctionDecl is `@function name<G>(params) -> T { ... }`.
type FunctionDecl struct {
	Name       *Ident
	Generics   []*GenericParam
	Params     []*Param
	ReturnType TypeExpr
	Body       *Block
	span       source.Span
}

// NewFunctionDecl constructs a function declaration.
func NewFunctionDecl(kw source.Span, name *Ident, generics []*GenericParam, params []*Param, ret TypeExpr, body *Block) *FunctionDecl {
	return &FunctionDecl{
		Name:       name,
		Generics:   generics,
		Params:     params,
		ReturnType: ret,
		Body:       body,
		span:       source.Merge(kw, body.Span()),
	}
}

// Span returns the declaration span.
func (d *FunctionDecl) Span() source.Span { return d.span }
func (*FunctionDecl) stmtNode()           {}
func (*FunctionDecl) declNode()           {}

// Method is a function property of a class.
type Method struct {
	Name       *Ident
	Generics   []*GenericParam
	Params     []*Param
	ReturnType TypeExpr
	Body       *Block
	span       source.Span
}

// NewMethod constructs a method.
func NewMethod(name *Ident, generics []*GenericParam, params []*Param, ret TypeExpr, body *Block) *Method {
	return &Method{
		Name:       name,
		Generics:   generics,
		Params:     params,
		ReturnType: ret,
		Body:       body,
		span:       source.Merge(name.Span(), body.Span()),
	}
}

func (m *Method) Span() source.Span { return m.span }
func (*Method) propertyNode()       {}

// Attribute is `key[: Type][= value]`.
type Attribute struct {
	Key   *Ident
	Label TypeExpr
	Value Expr
	span  source.Span
}

// NewAttribute constructs an attribute ending at whichever of key, label and
// value comes last.
func NewAttribute(key *Ident, label TypeExpr, value Expr) *Attribute {
	end := key.Span()
	switch {
	case value != nil:
		end = value.Span()
	case label != nil:
		end = label.Span()
	}
	return &Attribute{Key: key, Label: label, Value: value, span: source.Merge(key.Span(), end)}
}

func (a *Attribute) Span() source.Span { return a.span }
func (*Attribute) propertyNode()       {}

// Implement marks a class or interface as implementing an interface.
type Implement struct {
	Interface *Ident
	span      source.Span
}

// NewImplement constructs an implementation marker starting at `@implement`.
func NewImplement(kw source.Span, iface *Ident) *Implement {
	return &Implement{Interface: iface, span: source.Merge(kw, iface.Span())}
}

func (i *Implement) Span() source.Span { return i.span }
func (*Implement) propertyNode()       {}

// ClassDecl is `@class Name<G> { properties }`.
type ClassDecl struct {
	Name       *Ident
	Generics   []*GenericParam
	Properties []Property
	span       source.Span
}

// NewClassDecl constructs a class declaration ending at its closing brace.
func NewClassDecl(kw source.Span, name *Ident, generics []*GenericParam, props []Property, closing source.Span) *ClassDecl {
	return &ClassDecl{Name: name, Generics: generics, Properties: props, span: source.Merge(kw, closing)}
}

func (d *ClassDecl) Span() source.Span { return d.span }
func (*ClassDecl) stmtNode()           {}
func (*ClassDecl) declNode()           {}

// InterfaceDecl is `@interface Name<G> { properties }`.
type InterfaceDecl struct {
	Name       *Ident
	Generics   []*GenericParam
	Properties []Property
	span       source.Span
}

// NewInterfaceDecl constructs an interface declaration.
func NewInterfaceDecl(kw source.Span, name *Ident, generics []*GenericParam, props []Property, closing source.Span) *InterfaceDecl {
	return &InterfaceDecl{Name: name, Generics: generics, Properties: props, span: source.Merge(kw, closing)}
}

func (d *InterfaceDecl) Span() source.Span { return d.span }
func (*InterfaceDecl) stmtNode()           {}
func (*InterfaceDecl) declNode()           {}

// Variant is an enum member. Tuple variants carry their element types.
type Variant struct {
	Name   *Ident
	Fields []TypeExpr
	Tuple  bool
	span   source.Span
}

// NewVariant constructs a bare variant.
func NewVariant(name *Ident) *Variant {
	return &Variant{Name: name, span: name.Span()}
}

// NewTupleVariant constructs `Name(T, U)`, ending at the closing parenthesis.
func NewTupleVariant(name *Ident, fields []TypeExpr, closing source.Span) *Variant {
	return &Variant{Name: name, Fields: fields, Tuple: true, span: source.Merge(name.Span(), closing)}
}

func (v *Variant) Span() source.Span { return v.span }

// EnumDecl is `@enum Name<G> { variants }`.
type EnumDecl struct {
	Name     *Ident
	Generics []*GenericParam
	Variants []*Variant
	span     source.Span
}

// NewEnumDecl constructs an enum declaration.
func NewEnumDecl(kw source.Span, name *Ident, generics []*GenericParam, variants []*Variant, closing source.Span) *EnumDecl {
	return &EnumDecl{Name: name, Generics: generics, Variants: variants, span: source.Merge(kw, closing)}
}

func (d *EnumDecl) Span() source.Span { return d.span }
func (*EnumDecl) stmtNode()           {}
func (*EnumDecl) declNode()           {}

// Mapping is a `key -> value` entry of a record. Both sides are literals.
type Mapping struct {
	Key   Expr
	Value Expr
	span  source.Span
}

// NewMapping constructs a record entry.
func NewMapping(key, value Expr) *Mapping {
	return &Mapping{Key: key, Value: value, span: source.Merge(key.Span(), value.Span())}
}

func (m *Mapping) Span() source.Span { return m.span }

// RecordDecl is `@record NAME { k -> v, ... }`.
type RecordDecl struct {
	Name     *Ident
	Mappings []*Mapping
	span     source.Span
}

// NewRecordDecl constructs a record declaration.
func NewRecordDecl(kw source.Span, name *Ident, mappings []*Mapping, closing source.Span) *RecordDecl {
	return &RecordDecl{Name: name, Mappings: mappings, span: source.Merge(kw, closing)}
}

func (d *RecordDecl) Span() source.Span { return d.span }
func (*RecordDecl) stmtNode()           {}
func (*RecordDecl) declNode()           {}

// TypeAliasDecl is `@type Name<G> = Type;`.
type TypeAliasDecl struct {
	Name     *Ident
	Generics []*GenericParam
	Value    TypeExpr
	span     source.Span
}

// NewTypeAliasDecl constructs a type alias ending at its `;`.
func NewTypeAliasDecl(kw source.Span, name *Ident, generics []*GenericParam, value TypeExpr, semi source.Span) *TypeAliasDecl {
	return &TypeAliasDecl{Name: name, Generics: generics, Value: value, span: source.Merge(kw, semi)}
}

func (d *TypeAliasDecl) Span() source.Span { return d.span }
func (*TypeAliasDecl) stmtNode()           {}
func (*TypeAliasDecl) declNode()           {}

// ModuleDecl is `@module name { ... }`.
type ModuleDecl struct {
	Name *Ident
	Body *Block
	span source.Span
}

// NewModuleDecl constructs a module declaration.
func NewModuleDecl(kw source.Span, name *Ident, body *Block) *ModuleDecl {
	return &ModuleDecl{Name: name, Body: body, span: source.Merge(kw, body.Span())}
}

func (d *ModuleDecl) Span() source.Span { return d.span }
func (*ModuleDecl) stmtNode()           {}
func (*ModuleDecl) declNode()           {}

// VarKind tells `@let` from `@const`.
type VarKind int

const (
	VarLet VarKind = iota
	VarConst
)

func (k VarKind) String() string {
	if k == VarConst {
		return "const"
	}
	return "let"
}

// VarDecl is `@let name[: Type][= value];` or its `@const` form.
type VarDecl struct {
	Kind  VarKind
	Name  *Ident
	Label TypeExpr
	Value Expr
	span  source.Span
}

// NewVarDecl constructs a variable declaration ending at its `;`.
func NewVarDecl(kw source.Span, kind VarKind, name *Ident, label TypeExpr, value Expr, semi source.Span) *VarDecl {
	return &VarDecl{Kind: kind, Name: name, Label: label, Value: value, span: source.Merge(kw, semi)}
}

func (d *VarDecl) Span() source.Span { return d.span }
func (*VarDecl) stmtNode()           {}
func (*VarDecl) declNode()           {}

// Import is one entry of a use list. A collapsed import is `* as local`, in
// which case Name is `*`.
type Import struct {
	Name      *Ident
	Collapsed bool
	Local     *Ident
	span      source.Span
}

// NewImport constructs an import entry.
func NewImport(name *Ident, collapsed bool, local *Ident) *Import {
	im := &Import{Name: name, Collapsed: collapsed, Local: local, span: name.Span()}
	if local != nil {
		im.span = source.Merge(name.Span(), local.Span())
	}
	return im
}

func (i *Import) Span() source.Span { return i.span }

// UseDecl is `@use { imports } from "source";`.
type UseDecl struct {
	Imports []*Import
	Source  *StringLit
	span    source.Span
}

// NewUseDecl constructs an import declaration.
func NewUseDecl(kw source.Span, imports []*Import, src *StringLit, semi source.Span) *UseDecl {
	return &UseDecl{Imports: imports, Source: src, span: source.Merge(kw, semi)}
}

func (d *UseDecl) Span() source.Span { return d.span }
func (*UseDecl) stmtNode()           {}
func (*UseDecl) declNode()           {}

// PrependDecl is `@prepend "file";`.
type PrependDecl struct {
	Source Expr
	span   source.Span
}

// NewPrependDecl constructs a prepend declaration.
func NewPrependDecl(kw source.Span, src Expr, semi source.Span) *PrependDecl {
	return &PrependDecl{Source: src, span: source.Merge(kw, semi)}
}

func (d *PrependDecl) Span() source.Span { return d.span }
func (*PrependDecl) stmtNode()           {}
func (*PrependDecl) declNode()           {}

// TestBlock is `@tests { ... }`.
type TestBlock struct {
	Body *Block
	span source.Span
}

// NewTestBlock constructs a test block.
func NewTestBlock(kw source.Span, body *Block) *TestBlock {
	return &TestBlock{Body: body, span: source.Merge(kw, body.Span())}
}

func (d *TestBlock) Span() source.Span { return d.span }
func (*TestBlock) stmtNode()           {}
func (*TestBlock) declNode()           {}

// PublicStmt marks the wrapped declaration as visible outside its file.
type PublicStmt struct {
	Decl Decl
	span source.Span
}

// NewPublicStmt constructs a public wrapper starting at `@public`.
func NewPublicStmt(kw source.Span, decl Decl) *PublicStmt {
	return &PublicStmt{Decl: decl, span: source.Merge(kw, decl.Span())}
}

func (d *PublicStmt) Span() source.Span { return d.span }
func (*PublicStmt) stmtNode()           {}
func (*PublicStmt) declNode()           {}
