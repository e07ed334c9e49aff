package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pebble-lang/pebble/internal/lexer"
)

func TestOpStackYields(t *testing.T) {
	var s opStack
	assert.False(t, s.yields(precAssign), "empty stack never yields")

	release := s.push(precAdditive)
	assert.True(t, s.yields(precAdditive))
	assert.True(t, s.yields(precComparison))
	assert.False(t, s.yields(precMultiplicative))

	releaseBarrier := s.barrier()
	assert.False(t, s.yields(precAssign))
	releaseBarrier()
	assert.Equal(t, opStack{precAdditive}, s)

	release()
	assert.Empty(t, s)
}

func TestOpStackUnwindsOnError(t *testing.T) {
	p := New(lexer.Scan("(1 + (2 * ;").Tokens)
	_, err := p.expression()
	require.Error(t, err)
	assert.Empty(t, p.ops)
}

func TestProviderStaysOnEOF(t *testing.T) {
	tokens := lexer.Scan("a b").Tokens
	pr := newProvider(tokens)

	assert.Equal(t, "a", pr.token().Value)
	assert.Equal(t, "b", pr.peek().Value)
	assert.Equal(t, "a", pr.previous().Value)

	pr.advance()
	pr.advance()
	require.True(t, pr.end())
	pr.advance()
	assert.True(t, pr.end())
	assert.True(t, pr.peek().IsEOF())
	assert.Equal(t, "b", pr.previous().Value)

	pr.backtrack()
	assert.Equal(t, "b", pr.token().Value)
}

func TestProviderAppendsEOF(t *testing.T) {
	tokens := lexer.Scan("a").Tokens
	withoutEOF := tokens[:len(tokens)-1]

	pr := newProvider(withoutEOF)
	require.Len(t, pr.tokens, 2)
	assert.True(t, pr.tokens[1].IsEOF())
	assert.Equal(t, withoutEOF[0].Span.End, pr.tokens[1].Span.Start)
	assert.Len(t, withoutEOF, 1, "input slice is not modified")

	empty := newProvider(nil)
	assert.True(t, empty.end())
}

func TestDelimitedTrailingComma(t *testing.T) {
	p := New(lexer.Scan("a, b, )").Tokens)
	items, closing, err := parseDelimited(p, delimitedConfig{
		Closing:          closedBy(lexer.PunctRParen),
		MissingSeparator: ErrExpectedRParen,
		Unclosed:         ErrExpectedRParen,
	}, p.expression)
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, 7, closing.Start.Column)
	assert.True(t, p.tokens.end())
}
