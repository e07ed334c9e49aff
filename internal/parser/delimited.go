package parser

import (
	"github.com/pebble-lang/pebble/internal/lexer"
	"github.com/pebble-lang/pebble/internal/source"
)

type delimitedConfig struct {
	// Closing reports whether a token ends the list.
	Closing func(lexer.Token) bool

	// MissingSeparator is raised when an element is followed by neither a
	// comma nor the closing token.
	MissingSeparator ErrorKind
	// Unclosed is raised when the input ends before the closing token.
	Unclosed ErrorKind
}

func closedBy(p lexer.Punctuation) func(lexer.Token) bool {
	return func(t lexer.Token) bool { return t.IsPunct(p) }
}

func closedByAngle(t lexer.Token) bool { return t.Is(lexer.OpGreater) }

// parseDelimited parses comma separated elements after an already consumed
// opening token, up to and including the closing token. A trailing comma is
// accepted. It returns the span of the closing token.
func parseDelimited[T any](p *Parser, cfg delimitedConfig, parseItem func() (T, error)) ([]T, source.Span, error) {
	items := make([]T, 0)
	for !(p.tokens.end() || cfg.Closing(p.tokens.token())) {
		item, err := parseItem()
		if err != nil {
			return nil, source.Span{}, err
		}
		items = append(items, item)

		tok := p.tokens.token()
		switch {
		case tok.IsPunct(lexer.PunctComma):
			p.tokens.advance()
		case tok.IsEOF():
			return nil, source.Span{}, p.fail(cfg.Unclosed)
		case !cfg.Closing(tok):
			return nil, source.Span{}, p.fail(cfg.MissingSeparator)
		}
	}
	if p.tokens.end() {
		return nil, source.Span{}, p.fail(cfg.Unclosed)
	}
	closing := p.tokens.token().Span
	p.tokens.advance()
	return items, closing, nil
}
