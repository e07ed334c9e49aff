package parser

import (
	"errors"

	"github.com/pebble-lang/pebble/internal/ast"
	"github.com/pebble-lang/pebble/internal/diag"
	"github.com/pebble-lang/pebble/internal/lexer"
)

type Option func(*options)

type options struct {
	filename  string
	maxErrors int
}

// WithFilename configures the parser to attribute all emitted diagnostics to the provided filename.
func WithFilename(name string) Option {
	return func(o *options) {
		o.filename = name
	}
}

// WithMaxErrors stops parsing once n diagnostics have been reported. Zero or
// a negative n means no limit.
func WithMaxErrors(n int) Option {
	return func(o *options) {
		o.maxErrors = n
	}
}

// Parser is a recursive descent parser over a finished token stream.
// Expressions use precedence climbing driven by an explicit operator stack:
// every operator whose right operand is being parsed has its precedence on
// ops, and an operator that does not bind tighter than the top yields to the
// enclosing operand loop.
//
// Errors inside a statement propagate up to the statement loop in Parse,
// which records them and synchronizes before parsing the next statement.
type Parser struct {
	tokens *provider
	ops    opStack
	bag    *diag.Bag

	filename  string
	maxErrors int
}

// New returns a parser over tokens. A missing trailing EOF token is added.
func New(tokens []lexer.Token, opts ...Option) *Parser {
	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Parser{
		tokens:    newProvider(tokens),
		bag:       diag.NewBag(),
		filename:  cfg.filename,
		maxErrors: cfg.maxErrors,
	}
}

// ParseSource scans and parses src. Lexical diagnostics precede syntax
// diagnostics in the returned bag.
func ParseSource(src string, opts ...Option) (*ast.File, *diag.Bag) {
	return ParseScanned(lexer.Scan(src), opts...)
}

// ParseScanned parses an already scanned source. Lexical errors are reported
// first and count towards the error limit.
func ParseScanned(scanned lexer.Result, opts ...Option) (*ast.File, *diag.Bag) {
	p := New(scanned.Tokens, opts...)
	for _, err := range scanned.Errors {
		p.report(err.ToDiagnostic())
	}
	stmts, bag := p.Parse()
	return ast.NewFile(stmts, scanned.Comments), bag
}

// Parse parses statements until EOF. It never stops at the first error; the
// returned statements are those that parsed cleanly.
func (p *Parser) Parse() ([]ast.Stmt, *diag.Bag) {
	var stmts []ast.Stmt
	for !p.tokens.end() && !p.limitReached() {
		start := p.tokens.index
		p.ops = p.ops[:0]

		stmt, err := p.statement()
		if err != nil {
			p.reportErr(err)
			if p.limitReached() {
				break
			}
			p.synchronize(start, missingSemiColon(err))
			continue
		}
		stmts = append(stmts, stmt)
	}
	return stmts, p.bag
}

// Diagnostics returns the diagnostics reported so far.
func (p *Parser) Diagnostics() *diag.Bag { return p.bag }

func (p *Parser) limitReached() bool {
	return p.maxErrors > 0 && p.bag.Len() >= p.maxErrors
}

func (p *Parser) report(d diag.Diagnostic) {
	if p.filename != "" {
		d = d.WithFilename(p.filename)
	}
	p.bag.Add(d)
}

func (p *Parser) reportErr(err error) {
	var syntaxErr *Error
	if errors.As(err, &syntaxErr) {
		p.report(syntaxErr.ToDiagnostic())
		return
	}
	p.report(diag.Diagnostic{
		Stage:    diag.StageParser,
		Severity: diag.SeverityError,
		Message:  err.Error(),
		Span:     p.tokens.token().Span,
	})
}

// synchronize skips to the start of the next statement after an error in the
// statement that began at token index start. A statement cut short by a
// missing `;` resumes at the first token of the following line.
func (p *Parser) synchronize(start int, unterminated bool) {
	consumed := p.tokens.index > start
	if consumed && unterminated && startsLine(p.tokens.previous(), p.tokens.token()) {
		return
	}
	if !consumed {
		p.tokens.advance()
	}
	for !p.tokens.end() {
		tok := p.tokens.token()
		if tok.IsPunct(lexer.PunctSemiColon) || tok.IsPunct(lexer.PunctComma) {
			p.tokens.advance()
			return
		}
		if startsStatement(tok) {
			return
		}
		p.tokens.advance()
	}
}

func missingSemiColon(err error) bool {
	var syntaxErr *Error
	return errors.As(err, &syntaxErr) && syntaxErr.Kind == ErrExpectedSemiColon
}

func startsLine(prev, tok lexer.Token) bool {
	return tok.Span.Start.Line > prev.Span.End.Line
}

// startsStatement reports whether tok can only begin a statement.
func startsStatement(tok lexer.Token) bool {
	switch tok.Kind {
	case lexer.KindInjunction:
		return true
	case lexer.KindKeyword:
		switch tok.Keyword {
		case lexer.KwIf, lexer.KwWhile, lexer.KwFor, lexer.KwLoop, lexer.KwBreak,
			lexer.KwContinue, lexer.KwReturn, lexer.KwCrash, lexer.KwTry, lexer.KwPrintln:
			return true
		}
	}
	return false
}
