package parser

import (
	"github.com/pebble-lang/pebble/internal/ast"
	"github.com/pebble-lang/pebble/internal/lexer"
	"github.com/pebble-lang/pebble/internal/source"
)

func asStmt[T ast.Stmt](node T, err error) (ast.Stmt, error) {
	if err != nil {
		return nil, err
	}
	return node, nil
}

func (p *Parser) statement() (ast.Stmt, error) {
	tok := p.tokens.token()
	switch tok.Kind {
	case lexer.KindInjunction:
		return p.declaration()
	case lexer.KindKeyword:
		return p.keywordStatement(tok.Keyword)
	case lexer.KindPunctuation:
		switch tok.Punct {
		case lexer.PunctSemiColon:
			p.tokens.advance()
			return ast.NewEmptyStmt(tok.Span), nil
		case lexer.PunctLCurly:
			return asStmt(p.block())
		}
	}
	return asStmt(p.expressionStatement())
}

func (p *Parser) keywordStatement(kw lexer.Keyword) (ast.Stmt, error) {
	switch kw {
	case lexer.KwFn, lexer.KwSelf:
		return asStmt(p.expressionStatement())
	case lexer.KwIf:
		return asStmt(p.ifStatement())
	case lexer.KwPrintln:
		return asStmt(p.printlnStatement())
	case lexer.KwWhile:
		return asStmt(p.whileStatement())
	case lexer.KwReturn:
		return asStmt(p.returnStatement())
	case lexer.KwFor:
		return asStmt(p.forStatement())
	case lexer.KwCrash:
		return asStmt(p.crashStatement())
	case lexer.KwLoop:
		return asStmt(p.loopStatement())
	case lexer.KwBreak:
		return asStmt(p.breakStatement())
	case lexer.KwContinue:
		return asStmt(p.continueStatement())
	case lexer.KwTry:
		return asStmt(p.tryStatement())
	case lexer.KwElse:
		return nil, p.fail(ErrIllegalElse)
	case lexer.KwRecover:
		return nil, p.fail(ErrIllegalRecover)
	}
	return nil, p.fail(ErrUnexpectedKeyword)
}

// semicolon consumes a mandatory `;` and returns its span.
func (p *Parser) semicolon() (source.Span, error) {
	tok := p.tokens.token()
	if !tok.IsPunct(lexer.PunctSemiColon) {
		return source.Span{}, p.fail(ErrExpectedSemiColon)
	}
	p.tokens.advance()
	return tok.Span, nil
}

func (p *Parser) optionalSemicolon() {
	if p.tokens.token().IsPunct(lexer.PunctSemiColon) {
		p.tokens.advance()
	}
}

func (p *Parser) expressionStatement() (*ast.ExprStmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	semi, err := p.semicolon()
	if err != nil {
		return nil, err
	}
	return ast.NewExprStmt(expr, semi), nil
}

func (p *Parser) block() (*ast.Block, error) {
	open := p.tokens.token()
	if !open.IsPunct(lexer.PunctLCurly) {
		return nil, p.fail(ErrExpectedLCurly)
	}
	p.tokens.advance()

	var stmts []ast.Stmt
	for !(p.tokens.end() || p.tokens.token().IsPunct(lexer.PunctRCurly)) {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if p.tokens.end() {
		return nil, p.fail(ErrExpectedRCurly)
	}
	closing := p.tokens.token().Span
	p.tokens.advance()
	return ast.NewBlock(stmts, open.Span, closing), nil
}

// condition parses the parenthesized test of an if or while statement.
func (p *Parser) condition() (ast.Expr, error) {
	if !p.tokens.token().IsPunct(lexer.PunctLParen) {
		return nil, p.fail(ErrExpectedLParen)
	}
	p.tokens.advance()
	release := p.ops.barrier()
	expr, err := p.expression()
	release()
	if err != nil {
		return nil, err
	}
	if !p.tokens.token().IsPunct(lexer.PunctRParen) {
		return nil, p.fail(ErrExpectedRParen)
	}
	p.tokens.advance()
	return expr, nil
}

// consequent parses the body of an if, while or for statement. Without
// braces the body must not be a declaration.
func (p *Parser) consequent() (ast.Stmt, error) {
	if p.tokens.token().IsPunct(lexer.PunctLCurly) {
		return asStmt(p.block())
	}
	stmt, err := p.statement()
	if err != nil {
		return nil, err
	}
	if ast.IsDeclaration(stmt) {
		return nil, errorAt(ErrIllegalDeclaration, stmt.Span())
	}
	return stmt, nil
}

func (p *Parser) ifStatement() (*ast.IfStmt, error) {
	kw := p.tokens.token().Span
	p.tokens.advance()
	test, err := p.condition()
	if err != nil {
		return nil, err
	}
	body, err := p.consequent()
	if err != nil {
		return nil, err
	}

	var alternate ast.Stmt
	if p.tokens.token().IsKeyword(lexer.KwElse) {
		p.tokens.advance()
		if p.tokens.token().IsKeyword(lexer.KwIf) {
			alternate, err = asStmt(p.ifStatement())
		} else {
			alternate, err = p.consequent()
		}
		if err != nil {
			return nil, err
		}
	}
	p.optionalSemicolon()
	return ast.NewIfStmt(kw, test, body, alternate), nil
}

func (p *Parser) whileStatement() (*ast.WhileStmt, error) {
	kw := p.tokens.token().Span
	p.tokens.advance()
	test, err := p.condition()
	if err != nil {
		return nil, err
	}
	body, err := p.consequent()
	if err != nil {
		return nil, err
	}
	return ast.NewWhileStmt(kw, test, body), nil
}

func (p *Parser) forStatement() (*ast.ForStmt, error) {
	kw := p.tokens.token().Span
	p.tokens.advance()
	if !p.tokens.token().IsPunct(lexer.PunctLParen) {
		return nil, p.fail(ErrExpectedLParen)
	}
	p.tokens.advance()
	item, err := p.name(ErrExpectedIdentifier)
	if err != nil {
		return nil, err
	}
	if !p.tokens.token().IsKeyword(lexer.KwIn) {
		return nil, p.fail(ErrExpectedIn)
	}
	p.tokens.advance()
	release := p.ops.barrier()
	iterator, err := p.expression()
	release()
	if err != nil {
		return nil, err
	}
	if !p.tokens.token().IsPunct(lexer.PunctRParen) {
		return nil, p.fail(ErrExpectedRParen)
	}
	p.tokens.advance()
	body, err := p.consequent()
	if err != nil {
		return nil, err
	}
	return ast.NewForStmt(kw, item, iterator, body), nil
}

// loopStatement parses `loop { ... }` and the counted `loop (n) { ... }`.
func (p *Parser) loopStatement() (*ast.LoopStmt, error) {
	kw := p.tokens.token().Span
	p.tokens.advance()
	var count ast.Expr
	if p.tokens.token().IsPunct(lexer.PunctLParen) {
		var err error
		if count, err = p.condition(); err != nil {
			return nil, err
		}
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	p.optionalSemicolon()
	return ast.NewLoopStmt(kw, count, body), nil
}

func (p *Parser) breakStatement() (*ast.BreakStmt, error) {
	kw := p.tokens.token().Span
	p.tokens.advance()
	semi, err := p.semicolon()
	if err != nil {
		return nil, err
	}
	return ast.NewBreakStmt(kw, semi), nil
}

func (p *Parser) continueStatement() (*ast.ContinueStmt, error) {
	kw := p.tokens.token().Span
	p.tokens.advance()
	semi, err := p.semicolon()
	if err != nil {
		return nil, err
	}
	return ast.NewContinueStmt(kw, semi), nil
}

func (p *Parser) returnStatement() (*ast.ReturnStmt, error) {
	kw := p.tokens.token().Span
	p.tokens.advance()
	var value ast.Expr
	if !p.tokens.token().IsPunct(lexer.PunctSemiColon) {
		var err error
		if value, err = p.expression(); err != nil {
			return nil, err
		}
	}
	semi, err := p.semicolon()
	if err != nil {
		return nil, err
	}
	return ast.NewReturnStmt(kw, value, semi), nil
}

// keywordValue parses `kw value;` for println and crash.
func (p *Parser) keywordValue() (source.Span, ast.Expr, source.Span, error) {
	kw := p.tokens.token().Span
	p.tokens.advance()
	value, err := p.expression()
	if err != nil {
		return source.Span{}, nil, source.Span{}, err
	}
	semi, err := p.semicolon()
	if err != nil {
		return source.Span{}, nil, source.Span{}, err
	}
	return kw, value, semi, nil
}

func (p *Parser) printlnStatement() (*ast.PrintlnStmt, error) {
	kw, value, semi, err := p.keywordValue()
	if err != nil {
		return nil, err
	}
	return ast.NewPrintlnStmt(kw, value, semi), nil
}

func (p *Parser) crashStatement() (*ast.CrashStmt, error) {
	kw, value, semi, err := p.keywordValue()
	if err != nil {
		return nil, err
	}
	return ast.NewCrashStmt(kw, value, semi), nil
}

// tryStatement parses `try { ... } recover (e) { ... }`. The recover clause
// and its parameter list are optional.
func (p *Parser) tryStatement() (*ast.TryStmt, error) {
	kw := p.tokens.token().Span
	p.tokens.advance()
	body, err := p.block()
	if err != nil {
		return nil, err
	}

	var handler *ast.RecoverBlock
	if tok := p.tokens.token(); tok.IsKeyword(lexer.KwRecover) {
		p.tokens.advance()
		var params []*ast.Param
		if p.tokens.token().IsPunct(lexer.PunctLParen) {
			if params, err = p.parameters(); err != nil {
				return nil, err
			}
		}
		recoverBody, err := p.block()
		if err != nil {
			return nil, err
		}
		handler = ast.NewRecoverBlock(tok.Span, params, recoverBody)
	}
	p.optionalSemicolon()
	return ast.NewTryStmt(kw, body, handler), nil
}
