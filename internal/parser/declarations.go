package parser

import (
	"github.com/pebble-lang/pebble/internal/ast"
	"github.com/pebble-lang/pebble/internal/lexer"
	"github.com/pebble-lang/pebble/internal/source"
)

func (p *Parser) declaration() (ast.Stmt, error) {
	switch p.tokens.token().Injunction {
	case lexer.InjFunction:
		return asStmt(p.functionDeclaration())
	case lexer.InjClass:
		return asStmt(p.classDeclaration())
	case lexer.InjInterface:
		return asStmt(p.interfaceDeclaration())
	case lexer.InjEnum:
		return asStmt(p.enumDeclaration())
	case lexer.InjRecord:
		return asStmt(p.recordDeclaration())
	case lexer.InjType:
		return asStmt(p.typeAlias())
	case lexer.InjLet:
		return asStmt(p.variableDeclaration(ast.VarLet))
	case lexer.InjConst:
		return asStmt(p.variableDeclaration(ast.VarConst))
	case lexer.InjUse:
		return asStmt(p.useDeclaration())
	case lexer.InjPrepend:
		return asStmt(p.prependDeclaration())
	case lexer.InjTests:
		return asStmt(p.testBlock())
	case lexer.InjModule:
		return asStmt(p.moduleDeclaration())
	case lexer.InjPublic:
		return asStmt(p.publicDeclaration())
	case lexer.InjImplement:
		return nil, p.fail(ErrStrayImplement)
	}
	return nil, p.fail(ErrUnrecognizedInjunction)
}

// keyword consumes the current injunction and returns its span.
func (p *Parser) keyword() source.Span {
	span := p.tokens.token().Span
	p.tokens.advance()
	return span
}

// memberList parses `{ item, item }` and returns the closing brace span.
func memberList[T any](p *Parser, item func() (T, error)) ([]T, source.Span, error) {
	if !p.tokens.token().IsPunct(lexer.PunctLCurly) {
		return nil, source.Span{}, p.fail(ErrExpectedLCurly)
	}
	p.tokens.advance()
	return parseDelimited(p, delimitedConfig{
		Closing:          closedBy(lexer.PunctRCurly),
		MissingSeparator: ErrExpectedCommaOrRCurly,
		Unclosed:         ErrExpectedRCurly,
	}, item)
}

// signature is the shared tail of functions and methods.
type signature struct {
	generics []*ast.GenericParam
	params   []*ast.Param
	ret      ast.TypeExpr
	body     *ast.Block
}

func (p *Parser) signature() (signature, error) {
	var (
		sig signature
		err error
	)
	if sig.generics, err = p.maybeGenerics(); err != nil {
		return sig, err
	}
	if sig.params, err = p.parameters(); err != nil {
		return sig, err
	}
	if sig.ret, err = p.maybeReturnType(); err != nil {
		return sig, err
	}
	sig.body, err = p.block()
	return sig, err
}

func (p *Parser) functionDeclaration() (*ast.FunctionDecl, error) {
	kw := p.keyword()
	name, err := p.name(ErrExpectedFunctionName)
	if err != nil {
		return nil, err
	}
	sig, err := p.signature()
	if err != nil {
		return nil, err
	}
	return ast.NewFunctionDecl(kw, name, sig.generics, sig.params, sig.ret, sig.body), nil
}

func (p *Parser) classDeclaration() (*ast.ClassDecl, error) {
	kw := p.keyword()
	name, generics, err := p.typedIdentifier()
	if err != nil {
		return nil, err
	}
	props, closing, err := memberList(p, p.property)
	if err != nil {
		return nil, err
	}
	return ast.NewClassDecl(kw, name, generics, props, closing), nil
}

func (p *Parser) interfaceDeclaration() (*ast.InterfaceDecl, error) {
	kw := p.keyword()
	name, generics, err := p.typedIdentifier()
	if err != nil {
		return nil, err
	}
	props, closing, err := memberList(p, p.property)
	if err != nil {
		return nil, err
	}
	return ast.NewInterfaceDecl(kw, name, generics, props, closing), nil
}

// typedIdentifier parses a type name with optional generic parameters.
func (p *Parser) typedIdentifier() (*ast.Ident, []*ast.GenericParam, error) {
	name, err := p.name(ErrExpectedTypeName)
	if err != nil {
		return nil, nil, err
	}
	generics, err := p.maybeGenerics()
	if err != nil {
		return nil, nil, err
	}
	return name, generics, nil
}

// property parses a class or interface member. An identifier followed by
// `(` or `<` starts a method; any other identifier is an attribute.
func (p *Parser) property() (ast.Property, error) {
	tok := p.tokens.token()
	if tok.IsInjunction(lexer.InjImplement) {
		kw := p.keyword()
		iface, err := p.name(ErrExpectedInterfaceName)
		if err != nil {
			return nil, err
		}
		return ast.NewImplement(kw, iface), nil
	}
	if !tok.IsIdent() {
		return nil, p.fail(ErrExpectedPropertyName)
	}

	if next := p.tokens.peek(); next.IsPunct(lexer.PunctLParen) || next.Is(lexer.OpLess) {
		name, _ := p.name(ErrExpectedPropertyName)
		sig, err := p.signature()
		if err != nil {
			return nil, err
		}
		return ast.NewMethod(name, sig.generics, sig.params, sig.ret, sig.body), nil
	}

	key, _ := p.name(ErrExpectedPropertyName)
	label, err := p.maybeTypeLabel()
	if err != nil {
		return nil, err
	}
	var value ast.Expr
	if p.tokens.token().Is(lexer.OpAssign) {
		p.tokens.advance()
		if value, err = p.expression(); err != nil {
			return nil, err
		}
	}
	return ast.NewAttribute(key, label, value), nil
}

func (p *Parser) enumDeclaration() (*ast.EnumDecl, error) {
	kw := p.keyword()
	name, generics, err := p.typedIdentifier()
	if err != nil {
		return nil, err
	}
	variants, closing, err := memberList(p, p.variant)
	if err != nil {
		return nil, err
	}
	return ast.NewEnumDecl(kw, name, generics, variants, closing), nil
}

func (p *Parser) variant() (*ast.Variant, error) {
	name, err := p.name(ErrExpectedIdentifier)
	if err != nil {
		return nil, err
	}
	if !p.tokens.token().IsPunct(lexer.PunctLParen) {
		return ast.NewVariant(name), nil
	}
	p.tokens.advance()
	fields, closing, err := parseDelimited(p, delimitedConfig{
		Closing:          closedBy(lexer.PunctRParen),
		MissingSeparator: ErrExpectedRParen,
		Unclosed:         ErrExpectedRParen,
	}, p.typeName)
	if err != nil {
		return nil, err
	}
	return ast.NewTupleVariant(name, fields, closing), nil
}

func (p *Parser) recordDeclaration() (*ast.RecordDecl, error) {
	kw := p.keyword()
	name, err := p.name(ErrExpectedIdentifier)
	if err != nil {
		return nil, err
	}
	mappings, closing, err := memberList(p, p.mapping)
	if err != nil {
		return nil, err
	}
	return ast.NewRecordDecl(kw, name, mappings, closing), nil
}

// mapping parses `key -> value`. Both sides must be literals.
func (p *Parser) mapping() (*ast.Mapping, error) {
	key, err := p.expression()
	if err != nil {
		return nil, err
	}
	if !p.tokens.token().Is(lexer.OpReturns) {
		return nil, p.fail(ErrExpectedArrow)
	}
	p.tokens.advance()
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if !ast.IsLiteral(key) || !ast.IsLiteral(value) {
		return nil, errorAt(ErrDynamicRecordMap, source.Merge(key.Span(), value.Span()))
	}
	return ast.NewMapping(key, value), nil
}

func (p *Parser) typeAlias() (*ast.TypeAliasDecl, error) {
	kw := p.keyword()
	name, generics, err := p.typedIdentifier()
	if err != nil {
		return nil, err
	}
	if !p.tokens.token().Is(lexer.OpAssign) {
		return nil, p.fail(ErrUninitializedTypeAlias)
	}
	p.tokens.advance()
	value, err := p.typeName()
	if err != nil {
		return nil, err
	}
	semi, err := p.semicolon()
	if err != nil {
		return nil, err
	}
	return ast.NewTypeAliasDecl(kw, name, generics, value, semi), nil
}

func (p *Parser) moduleDeclaration() (*ast.ModuleDecl, error) {
	kw := p.keyword()
	name, err := p.name(ErrExpectedModuleName)
	if err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return ast.NewModuleDecl(kw, name, body), nil
}

func (p *Parser) variableDeclaration(kind ast.VarKind) (*ast.VarDecl, error) {
	kw := p.keyword()
	name, err := p.name(ErrExpectedVariableName)
	if err != nil {
		return nil, err
	}
	label, err := p.maybeTypeLabel()
	if err != nil {
		return nil, err
	}

	var value ast.Expr
	if p.tokens.token().Is(lexer.OpAssign) {
		p.tokens.advance()
		if value, err = p.expression(); err != nil {
			return nil, err
		}
	}
	switch {
	case value == nil && kind == ast.VarConst:
		return nil, p.fail(ErrUninitializedConstant)
	case value == nil && label == nil:
		return nil, p.fail(ErrUninitializedUntypedVariable)
	}

	semi, err := p.semicolon()
	if err != nil {
		return nil, err
	}
	return ast.NewVarDecl(kw, kind, name, label, value, semi), nil
}

// useDeclaration parses `@use { a, b as c, * as d } from "source";`.
func (p *Parser) useDeclaration() (*ast.UseDecl, error) {
	kw := p.keyword()
	if !p.tokens.token().IsPunct(lexer.PunctLCurly) {
		return nil, p.fail(ErrExpectedLCurly)
	}
	p.tokens.advance()
	imports, _, err := parseDelimited(p, delimitedConfig{
		Closing:          closedBy(lexer.PunctRCurly),
		MissingSeparator: ErrExpectedCommaOrRCurly,
		Unclosed:         ErrUnclosedImportSpace,
	}, p.importItem)
	if err != nil {
		return nil, err
	}

	if !p.tokens.token().IsKeyword(lexer.KwFrom) {
		return nil, p.fail(ErrExpectedFrom)
	}
	p.tokens.advance()
	tok := p.tokens.token()
	if !tok.IsLiteral() || tok.Literal != lexer.LitString {
		return nil, p.fail(ErrExpectedImportSource)
	}
	p.tokens.advance()
	src := ast.NewStringLit(tok.Value, tok.Span)

	semi, err := p.semicolon()
	if err != nil {
		return nil, err
	}
	return ast.NewUseDecl(kw, imports, src, semi), nil
}

func (p *Parser) importItem() (*ast.Import, error) {
	tok := p.tokens.token()
	if tok.Is(lexer.OpMul) {
		p.tokens.advance()
		if !p.tokens.token().IsKeyword(lexer.KwAs) {
			return nil, p.fail(ErrExpectedAs)
		}
		p.tokens.advance()
		local, err := p.name(ErrExpectedIdentifier)
		if err != nil {
			return nil, err
		}
		return ast.NewImport(ast.NewIdent("*", tok.Span), true, local), nil
	}

	name, err := p.name(ErrExpectedImport)
	if err != nil {
		return nil, err
	}
	var local *ast.Ident
	if p.tokens.token().IsKeyword(lexer.KwAs) {
		p.tokens.advance()
		if local, err = p.name(ErrExpectedIdentifier); err != nil {
			return nil, err
		}
	}
	return ast.NewImport(name, false, local), nil
}

func (p *Parser) prependDeclaration() (*ast.PrependDecl, error) {
	kw := p.keyword()
	src, err := p.expression()
	if err != nil {
		return nil, err
	}
	semi, err := p.semicolon()
	if err != nil {
		return nil, err
	}
	return ast.NewPrependDecl(kw, src, semi), nil
}

func (p *Parser) testBlock() (*ast.TestBlock, error) {
	kw := p.keyword()
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return ast.NewTestBlock(kw, body), nil
}

// publicDeclaration parses `@public` followed by the declaration it exports.
func (p *Parser) publicDeclaration() (*ast.PublicStmt, error) {
	kw := p.keyword()
	if p.tokens.token().Kind != lexer.KindInjunction {
		return nil, p.fail(ErrIllegalPublicModifier)
	}
	stmt, err := p.declaration()
	if err != nil {
		return nil, err
	}
	decl, ok := stmt.(ast.Decl)
	if !ok {
		return nil, errorAt(ErrIllegalPublicModifier, stmt.Span())
	}
	return ast.NewPublicStmt(kw, decl), nil
}
