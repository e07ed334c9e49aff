package parser

import (
	"github.com/pebble-lang/pebble/internal/ast"
	"github.com/pebble-lang/pebble/internal/lexer"
)

func asExpr[T ast.Expr](node T, err error) (ast.Expr, error) {
	if err != nil {
		return nil, err
	}
	return node, nil
}

func (p *Parser) expression() (ast.Expr, error) {
	left, err := p.primary()
	if err != nil {
		return nil, err
	}
	return p.reparse(left)
}

// operand consumes width operator tokens and parses the right-hand side with
// prec on the stack.
func (p *Parser) operand(prec precedence, width int) (ast.Expr, error) {
	for i := 0; i < width; i++ {
		p.tokens.advance()
	}
	defer p.ops.push(prec)()
	return p.expression()
}

func (p *Parser) primary() (ast.Expr, error) {
	tok := p.tokens.token()
	switch tok.Kind {
	case lexer.KindIdentifier:
		p.tokens.advance()
		return ast.NewIdent(tok.Value, tok.Span), nil
	case lexer.KindLiteral:
		p.tokens.advance()
		return literal(tok), nil
	case lexer.KindKeyword:
		switch tok.Keyword {
		case lexer.KwSelf:
			p.tokens.advance()
			return ast.NewSelfExpr(tok.Span), nil
		case lexer.KwFn:
			return asExpr(p.fnExpression())
		}
	case lexer.KindOperator:
		if op, ok := unaryOps[tok.Operator]; ok {
			return asExpr(p.unary(op))
		}
		return nil, p.fail(ErrUnexpectedOperator)
	case lexer.KindPunctuation:
		switch tok.Punct {
		case lexer.PunctLParen:
			return p.group()
		case lexer.PunctLSquare:
			return asExpr(p.array())
		}
	}
	return nil, p.fail(ErrExpectedExpression)
}

func literal(tok lexer.Token) ast.Expr {
	switch tok.Literal {
	case lexer.LitString:
		return ast.NewStringLit(tok.Value, tok.Span)
	case lexer.LitBoolean:
		return ast.NewBoolLit(tok.Value == "true", tok.Span)
	case lexer.LitCharacter:
		return ast.NewCharLit(tok.Value, tok.Span)
	}
	return ast.NewNumberLit(tok.Value, tok.Span)
}

func (p *Parser) unary(op ast.UnaryOp) (*ast.UnaryExpr, error) {
	opSpan := p.tokens.token().Span
	operand, err := p.operand(precUnary, 1)
	if err != nil {
		return nil, err
	}
	return ast.NewUnaryExpr(op, opSpan, operand), nil
}

func (p *Parser) group() (ast.Expr, error) {
	p.tokens.advance()
	defer p.ops.barrier()()
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if !p.tokens.token().IsPunct(lexer.PunctRParen) {
		return nil, p.fail(ErrExpectedRParen)
	}
	p.tokens.advance()
	return expr, nil
}

func (p *Parser) array() (*ast.ArrayExpr, error) {
	open := p.tokens.token().Span
	p.tokens.advance()
	defer p.ops.barrier()()
	elements, closing, err := parseDelimited(p, delimitedConfig{
		Closing:          closedBy(lexer.PunctRSquare),
		MissingSeparator: ErrExpectedCommaOrRSquareBrac,
		Unclosed:         ErrExpectedRSquareBrac,
	}, p.expression)
	if err != nil {
		return nil, err
	}
	return ast.NewArrayExpr(elements, open, closing), nil
}

func (p *Parser) fnExpression() (*ast.FnExpr, error) {
	kw := p.tokens.token().Span
	p.tokens.advance()
	if p.tokens.token().IsIdent() {
		return nil, p.fail(ErrNamedFunctionExpr)
	}
	generics, err := p.maybeGenerics()
	if err != nil {
		return nil, err
	}
	params, err := p.parameters()
	if err != nil {
		return nil, err
	}
	ret, err := p.maybeReturnType()
	if err != nil {
		return nil, err
	}
	if p.tokens.token().IsPunct(lexer.PunctLCurly) {
		body, err := p.block()
		if err != nil {
			return nil, err
		}
		return ast.NewFnExpr(kw, generics, params, ret, body, nil), nil
	}
	release := p.ops.barrier()
	implicit, err := p.expression()
	release()
	if err != nil {
		return nil, err
	}
	return ast.NewFnExpr(kw, generics, params, ret, nil, implicit), nil
}

// reparse extends left with postfix and infix operators until the stack
// yields or no operator follows.
func (p *Parser) reparse(left ast.Expr) (ast.Expr, error) {
	for {
		var (
			next ast.Expr
			err  error
		)
		tok := p.tokens.token()
		switch {
		case tok.Kind == lexer.KindOperator:
			next, err = p.infix(left, tok.Operator)
		case tok.IsPunct(lexer.PunctLParen):
			next, err = p.call(left)
		case tok.IsPunct(lexer.PunctLSquare):
			next, err = p.index(left)
		}
		if err != nil {
			return nil, err
		}
		if next == nil {
			return left, nil
		}
		left = next
	}
}

// infix returns a nil expression when op does not continue left.
func (p *Parser) infix(left ast.Expr, op lexer.Operator) (ast.Expr, error) {
	switch op {
	case lexer.OpDot:
		return p.access(left, precDot, func(object, property ast.Expr) ast.Expr {
			return ast.NewDotExpr(object, property)
		})
	case lexer.OpNamespace:
		return p.access(left, precNamespace, func(object, property ast.Expr) ast.Expr {
			return ast.NewNamespaceExpr(object, property)
		})
	case lexer.OpRange:
		if p.ops.yields(precRange) {
			return nil, nil
		}
		high, err := p.operand(precRange, 1)
		if err != nil {
			return nil, err
		}
		return ast.NewRangeExpr(left, high), nil
	case lexer.OpConfirm:
		return p.ternary(left)
	case lexer.OpGreater:
		return p.greater(left)
	}
	if info, ok := logicalOps[op]; ok {
		if p.ops.yields(info.prec) {
			return nil, nil
		}
		right, err := p.operand(info.prec, 1)
		if err != nil {
			return nil, err
		}
		return ast.NewLogicalExpr(left, info.op, right), nil
	}
	if info, ok := binaryOps[op]; ok {
		return p.binary(left, info, 1)
	}
	if assign, ok := assignOps[op]; ok {
		return p.assignment(left, assign)
	}
	return nil, nil
}

func (p *Parser) access(left ast.Expr, prec precedence, build func(object, property ast.Expr) ast.Expr) (ast.Expr, error) {
	if p.ops.yields(prec) {
		return nil, nil
	}
	property, err := p.operand(prec, 1)
	if err != nil {
		return nil, err
	}
	return build(left, property), nil
}

func (p *Parser) binary(left ast.Expr, info binaryInfo, width int) (ast.Expr, error) {
	if p.ops.yields(info.prec) {
		return nil, nil
	}
	right, err := p.operand(info.prec, width)
	if err != nil {
		return nil, err
	}
	return ast.NewBinaryExpr(left, info.op, right), nil
}

// greater decides between `>` and a right shift. The scanner never emits
// `>>`, so two adjacent `>` tokens form the shift.
func (p *Parser) greater(left ast.Expr) (ast.Expr, error) {
	first := p.tokens.token()
	p.tokens.advance()
	second := p.tokens.token()
	p.tokens.backtrack()

	if second.Is(lexer.OpGreater) && adjacent(first, second) {
		return p.binary(left, binaryInfo{ast.OpShiftRight, precShift}, 2)
	}
	return p.binary(left, binaryInfo{ast.OpGreater, precComparison}, 1)
}

func adjacent(a, b lexer.Token) bool {
	return a.Span.End.Line == b.Span.Start.Line && a.Span.End.Column+1 == b.Span.Start.Column
}

func (p *Parser) ternary(test ast.Expr) (ast.Expr, error) {
	if p.ops.yields(precTernary) {
		return nil, nil
	}
	p.tokens.advance()
	release := p.ops.barrier()
	consequent, err := p.expression()
	release()
	if err != nil {
		return nil, err
	}
	if !p.tokens.token().Is(lexer.OpColon) {
		return nil, p.fail(ErrExpectedColon)
	}
	alternate, err := p.operand(precColon, 1)
	if err != nil {
		return nil, err
	}
	return ast.NewTernaryExpr(test, consequent, alternate), nil
}

// assignment parses its value without pushing, which makes chains of
// assignments associate to the right.
func (p *Parser) assignment(target ast.Expr, op ast.AssignOp) (ast.Expr, error) {
	if p.ops.yields(precAssign) {
		return nil, nil
	}
	switch target.(type) {
	case *ast.Ident, *ast.DotExpr, *ast.NamespaceExpr, *ast.IndexExpr:
	default:
		return nil, errorAt(ErrInvalidAssignmentTarget, target.Span())
	}
	p.tokens.advance()
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	return ast.NewAssignExpr(target, op, value), nil
}

func (p *Parser) call(callee ast.Expr) (ast.Expr, error) {
	if p.ops.yields(precCall) {
		return nil, nil
	}
	p.tokens.advance()
	defer p.ops.barrier()()
	args, closing, err := parseDelimited(p, delimitedConfig{
		Closing:          closedBy(lexer.PunctRParen),
		MissingSeparator: ErrExpectedFunctionArgument,
		Unclosed:         ErrExpectedRParen,
	}, p.expression)
	if err != nil {
		return nil, err
	}
	return ast.NewCallExpr(callee, args, closing), nil
}

func (p *Parser) index(target ast.Expr) (ast.Expr, error) {
	if p.ops.yields(precIndex) {
		return nil, nil
	}
	p.tokens.advance()
	release := p.ops.barrier()
	idx, err := p.expression()
	release()
	if err != nil {
		return nil, err
	}
	if !p.tokens.token().IsPunct(lexer.PunctRSquare) {
		return nil, p.fail(ErrExpectedRSquareBrac)
	}
	closing := p.tokens.token().Span
	p.tokens.advance()
	return ast.NewIndexExpr(target, idx, closing), nil
}
