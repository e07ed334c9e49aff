package parser

import (
	"github.com/pebble-lang/pebble/internal/ast"
	"github.com/pebble-lang/pebble/internal/lexer"
	"github.com/pebble-lang/pebble/internal/source"
)

// typeName parses a type expression. A leading `<` or `(` starts a function
// type; anything else is a concrete type, optionally qualified with dots.
func (p *Parser) typeName() (ast.TypeExpr, error) {
	tok := p.tokens.token()
	if tok.Is(lexer.OpLess) || tok.IsPunct(lexer.PunctLParen) {
		fn, err := p.functionType()
		if err != nil {
			return nil, err
		}
		return fn, nil
	}

	concrete, err := p.concreteType()
	if err != nil {
		return nil, err
	}
	var typ ast.TypeExpr = concrete
	for p.tokens.token().Is(lexer.OpDot) {
		p.tokens.advance()
		property, err := p.concreteType()
		if err != nil {
			return nil, err
		}
		typ = ast.NewDotType(typ, property)
	}
	return typ, nil
}

func (p *Parser) concreteType() (*ast.ConcreteType, error) {
	name, err := p.name(ErrExpectedTypeName)
	if err != nil {
		return nil, err
	}
	if !p.tokens.token().Is(lexer.OpLess) {
		return ast.NewConcreteType(name, nil, source.Span{}), nil
	}
	p.tokens.advance()
	args, closing, err := parseDelimited(p, delimitedConfig{
		Closing:          closedByAngle,
		MissingSeparator: ErrExpectedCommaOrRAngleBrac,
		Unclosed:         ErrExpectedRAngleBrac,
	}, p.typeName)
	if err != nil {
		return nil, err
	}
	return ast.NewConcreteType(name, args, closing), nil
}

func (p *Parser) functionType() (*ast.FunctionType, error) {
	start := p.tokens.token().Span
	generics, err := p.maybeGenerics()
	if err != nil {
		return nil, err
	}
	params, err := p.parameters()
	if err != nil {
		return nil, err
	}
	if !p.tokens.token().Is(lexer.OpReturns) {
		return nil, p.fail(ErrExpectedReturnType)
	}
	p.tokens.advance()
	ret, err := p.typeName()
	if err != nil {
		return nil, err
	}
	return ast.NewFunctionType(start, generics, params, ret), nil
}

// maybeTypeLabel parses `: Type` if present.
func (p *Parser) maybeTypeLabel() (ast.TypeExpr, error) {
	if !p.tokens.token().Is(lexer.OpColon) {
		return nil, nil
	}
	p.tokens.advance()
	return p.typeName()
}

// maybeReturnType parses `-> Type` if present.
func (p *Parser) maybeReturnType() (ast.TypeExpr, error) {
	if !p.tokens.token().Is(lexer.OpReturns) {
		return nil, nil
	}
	p.tokens.advance()
	return p.typeName()
}

func (p *Parser) maybeGenerics() ([]*ast.GenericParam, error) {
	if !p.tokens.token().Is(lexer.OpLess) {
		return nil, nil
	}
	return p.generics()
}

// generics parses `<T, U implements A + B>`.
func (p *Parser) generics() ([]*ast.GenericParam, error) {
	if !p.tokens.token().Is(lexer.OpLess) {
		return nil, p.fail(ErrExpectedLAngleBrac)
	}
	p.tokens.advance()
	params, _, err := parseDelimited(p, delimitedConfig{
		Closing:          closedByAngle,
		MissingSeparator: ErrExpectedCommaOrRAngleBrac,
		Unclosed:         ErrExpectedRAngleBrac,
	}, p.genericParam)
	return params, err
}

func (p *Parser) genericParam() (*ast.GenericParam, error) {
	name, err := p.name(ErrExpectedGenericTypeParameter)
	if err != nil {
		return nil, err
	}
	if !p.tokens.token().IsKeyword(lexer.KwImplements) {
		return ast.NewGenericParam(name, nil), nil
	}
	p.tokens.advance()

	var implements []*ast.Ident
	for {
		iface, err := p.name(ErrExpectedInterfaceName)
		if err != nil {
			return nil, err
		}
		implements = append(implements, iface)
		if !p.tokens.token().Is(lexer.OpAdd) {
			break
		}
		p.tokens.advance()
	}
	if tok := p.tokens.token(); !tok.IsPunct(lexer.PunctComma) && !closedByAngle(tok) {
		return nil, p.fail(ErrExpectedRAngleBrac)
	}
	return ast.NewGenericParam(name, implements), nil
}

// parameters parses `(a, b: T)`.
func (p *Parser) parameters() ([]*ast.Param, error) {
	if !p.tokens.token().IsPunct(lexer.PunctLParen) {
		return nil, p.fail(ErrExpectedLParen)
	}
	p.tokens.advance()
	params, _, err := parseDelimited(p, delimitedConfig{
		Closing:          closedBy(lexer.PunctRParen),
		MissingSeparator: ErrExpectedRParen,
		Unclosed:         ErrExpectedRParen,
	}, p.parameter)
	return params, err
}

func (p *Parser) parameter() (*ast.Param, error) {
	name, err := p.name(ErrExpectedParameterName)
	if err != nil {
		return nil, err
	}
	label, err := p.maybeTypeLabel()
	if err != nil {
		return nil, err
	}
	return ast.NewParam(name, label), nil
}

// name consumes an identifier or fails with kind.
func (p *Parser) name(kind ErrorKind) (*ast.Ident, error) {
	tok := p.tokens.token()
	if !tok.IsIdent() {
		return nil, p.fail(kind)
	}
	p.tokens.advance()
	return ast.NewIdent(tok.Value, tok.Span), nil
}
