package parser

import (
	"github.com/pebble-lang/pebble/internal/lexer"
	"github.com/pebble-lang/pebble/internal/source"
)

// provider is a cursor over a finished token slice. The slice always ends
// with an EOF token and the cursor never moves past it.
type provider struct {
	tokens []lexer.Token
	index  int
}

func newProvider(tokens []lexer.Token) *provider {
	n := len(tokens)
	if n == 0 || !tokens[n-1].IsEOF() {
		at := source.Position{Line: 1, Column: 1}
		if n > 0 {
			at = tokens[n-1].Span.End
		}
		tokens = append(tokens[:n:n], lexer.Token{Kind: lexer.KindEOF, Span: source.Span{Start: at, End: at}})
	}
	return &provider{tokens: tokens}
}

func (p *provider) token() lexer.Token { return p.tokens[p.index] }

func (p *provider) peek() lexer.Token {
	if p.index+1 < len(p.tokens) {
		return p.tokens[p.index+1]
	}
	return p.tokens[len(p.tokens)-1]
}

func (p *provider) previous() lexer.Token {
	if p.index == 0 {
		return p.tokens[0]
	}
	return p.tokens[p.index-1]
}

func (p *provider) advance() {
	if p.index < len(p.tokens)-1 {
		p.index++
	}
}

func (p *provider) backtrack() {
	if p.index > 0 {
		p.index--
	}
}

func (p *provider) end() bool { return p.token().IsEOF() }
