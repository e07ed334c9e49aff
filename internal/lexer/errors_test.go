package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pebble-lang/pebble/internal/diag"
	"github.com/pebble-lang/pebble/internal/lexer"
	"github.com/pebble-lang/pebble/internal/source"
)

func TestUnknownTokenKeepsScanning(t *testing.T) {
	t.Parallel()

	res := lexer.Scan("a #oops; b")
	require.Len(t, res.Errors, 1)
	assert.Equal(t, lexer.ErrUnknownToken, res.Errors[0].Kind)
	assert.Equal(t, "#oops;", res.Errors[0].Text)
	assert.Equal(t, source.NewSpan(1, 3, 1, 8), res.Errors[0].Span)
	assert.Equal(t, "unknown token `#oops;`", res.Errors[0].Error())

	require.Len(t, res.Tokens, 4)
	assert.Equal(t, lexer.KindIdentifier, res.Tokens[0].Kind)
	assert.Equal(t, lexer.KindInvalid, res.Tokens[1].Kind)
	assert.Equal(t, "b", res.Tokens[2].Value)
	assert.True(t, res.Tokens[3].IsEOF())
}

func TestUnterminatedString(t *testing.T) {
	t.Parallel()

	res := lexer.Scan(`@let s = "never closed`)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, lexer.ErrUnterminatedStringLiteral, res.Errors[0].Kind)
	assert.Equal(t, source.NewSpan(1, 10, 1, 22), res.Errors[0].Span)

	str := res.Tokens[3]
	assert.Equal(t, lexer.LitString, str.Literal)
	assert.Equal(t, "never closed", str.Value)
	assert.True(t, res.Tokens[4].IsEOF())
}

func TestUnterminatedBlockComment(t *testing.T) {
	t.Parallel()

	res := lexer.Scan("x /* trailing")
	require.Len(t, res.Errors, 1)
	assert.Equal(t, lexer.ErrUnterminatedBlockComment, res.Errors[0].Kind)
	require.Len(t, res.Comments, 1)
	assert.Equal(t, " trailing", res.Comments[0].Value)
	assert.Equal(t, source.NewSpan(1, 3, 1, 13), res.Comments[0].Span)
}

func TestErrorToDiagnostic(t *testing.T) {
	t.Parallel()

	err := &lexer.Error{
		Kind: lexer.ErrUnterminatedStringLiteral,
		Span: source.NewSpan(1, 3, 1, 6),
	}
	d := err.ToDiagnostic()
	assert.Equal(t, diag.StageLexer, d.Stage)
	assert.Equal(t, diag.SeverityError, d.Severity)
	assert.Equal(t, diag.Code("LEXER_UNTERMINATED_STRING_LITERAL"), d.Code)
	assert.Equal(t, "unterminated string literal", d.Message)
	assert.Equal(t, err.Span, d.Span)

	unknown := (&lexer.Error{Kind: lexer.ErrUnknownToken, Text: "#"}).ToDiagnostic()
	assert.Equal(t, diag.Code("LEXER_UNKNOWN_TOKEN"), unknown.Code)
}

func TestScanIsIdempotent(t *testing.T) {
	t.Parallel()

	src := `@function main() {
	@let greeting: String = "hello" + ' ' + name; // trailing
	if (a >> 2 <= 0x1F) { println greeting; } /* note */
}`
	first := lexer.Scan(src)
	second := lexer.Scan(src)
	assert.Equal(t, first.Tokens, second.Tokens)
	assert.Equal(t, first.Comments, second.Comments)
	assert.Equal(t, first.Errors, second.Errors)
}

func TestGarbageNeverPanics(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"#",
		"\x00\x01\x02",
		"^^^ ` # \\",
		"\xff\xfe",
		"'",
		"\"",
		"/*",
		"@",
		"0x",
		"日本語 ☃ #☃",
	}
	for _, input := range inputs {
		input := input
		assert.NotPanics(t, func() {
			res := lexer.Scan(input)
			require.NotEmpty(t, res.Tokens)
			assert.True(t, res.Tokens[len(res.Tokens)-1].IsEOF(), "input %q", input)
		})
	}

	res := lexer.Scan("^^^ ` #")
	var invalid int
	for _, tok := range res.Tokens {
		if tok.Kind == lexer.KindInvalid {
			invalid++
		}
	}
	assert.Equal(t, 3, invalid)
	assert.Len(t, res.Errors, 3)
}

func TestTokenText(t *testing.T) {
	t.Parallel()

	res := lexer.Scan(`@use "s" 'c' >= ; if x`)
	texts := make([]string, 0, len(res.Tokens))
	for _, tok := range res.Tokens {
		texts = append(texts, tok.Text())
	}
	assert.Equal(t, []string{"@use", `"s"`, "'c'", ">=", ";", "if", "x", "end of file"}, texts)
	assert.Equal(t, "1:1-1:4 INJUNCTION @use", res.Tokens[0].String())
	assert.Equal(t, "1:6-1:8 LITERAL string \"s\"", res.Tokens[1].String())
}
