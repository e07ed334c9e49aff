package lexer

import (
	"testing"

	"github.com/pebble-lang/pebble/internal/source"
)

type expectedToken struct {
	kind  Kind
	value string
}

func checkTokens(t *testing.T, input string, tests []expectedToken) []Token {
	t.Helper()

	res := Scan(input)
	if len(res.Tokens) != len(tests) {
		t.Fatalf("token count wrong for %q. expected=%d, got=%d (%v)", input, len(tests), len(res.Tokens), res.Tokens)
	}
	for i, tt := range tests {
		tok := res.Tokens[i]
		if tok.Kind != tt.kind {
			t.Fatalf("tests[%d] - kind wrong. expected=%s, got=%s", i, tt.kind, tok.Kind)
		}
		if tok.Value != tt.value {
			t.Fatalf("tests[%d] - value wrong. expected=%q, got=%q", i, tt.value, tok.Value)
		}
	}
	return res.Tokens
}

func TestScan_Basic(t *testing.T) {
	toks := checkTokens(t, `@let x = 10;`, []expectedToken{
		{KindInjunction, "let"},
		{KindIdentifier, "x"},
		{KindOperator, "="},
		{KindLiteral, "10"},
		{KindPunctuation, ";"},
		{KindEOF, ""},
	})

	if toks[0].Injunction != InjLet {
		t.Fatalf("expected let injunction, got %s", toks[0].Injunction)
	}
	if !toks[2].Is(OpAssign) {
		t.Fatalf("expected `=`, got %s", toks[2])
	}
	if toks[3].Literal != LitNumber {
		t.Fatalf("expected number literal, got %s", toks[3].Literal)
	}
	if !toks[4].IsPunct(PunctSemiColon) {
		t.Fatalf("expected `;`, got %s", toks[4])
	}
}

func TestScan_OperatorsLongestMatch(t *testing.T) {
	input := `... &&= ||= *= /= += -= == != >= <= => -> ++ -- .. :: || && << ** * / + - % & | ! ~ . ? : > < =`

	want := []Operator{
		OpRestOf, OpLogicalAndAssign, OpLogicalOrAssign, OpMulAssign, OpDivAssign,
		OpAddAssign, OpSubAssign, OpEquals, OpNotEquals, OpGreaterEqual, OpLessEqual,
		OpArrow, OpReturns, OpIncrement, OpDecrement, OpRange, OpNamespace,
		OpLogicalOr, OpLogicalAnd, OpShiftLeft, OpPower, OpMul, OpDiv, OpAdd,
		OpSub, OpRem, OpBitAnd, OpBitOr, OpNot, OpBitNot, OpDot, OpConfirm,
		OpColon, OpGreater, OpLess, OpAssign,
	}

	res := Scan(input)
	if len(res.Tokens) != len(want)+1 {
		t.Fatalf("expected %d tokens, got %d", len(want)+1, len(res.Tokens))
	}
	for i, op := range want {
		if !res.Tokens[i].Is(op) {
			t.Fatalf("tests[%d] - expected operator %s, got %s", i, op, res.Tokens[i])
		}
	}
}

func TestScan_AdjacentOperators(t *testing.T) {
	tests := []struct {
		input string
		want  []Operator
	}{
		{"a++", []Operator{OpIncrement}},
		{"a+++b", []Operator{OpIncrement, OpAdd}},
		{"a>>b", []Operator{OpGreater, OpGreater}},
		{"a&&=b", []Operator{OpLogicalAndAssign}},
		{"x-->y", []Operator{OpDecrement, OpGreater}},
		{"a::b.c", []Operator{OpNamespace, OpDot}},
	}

	for _, tt := range tests {
		var got []Operator
		for _, tok := range Scan(tt.input).Tokens {
			if tok.Kind == KindOperator {
				got = append(got, tok.Operator)
			}
		}
		if len(got) != len(tt.want) {
			t.Fatalf("%q: expected operators %v, got %v", tt.input, tt.want, got)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Fatalf("%q: operator %d expected %s, got %s", tt.input, i, tt.want[i], got[i])
			}
		}
	}
}

func TestScan_KeywordsAndInjunctions(t *testing.T) {
	toks := checkTokens(t, `if else for fn in loop from as implements while break continue return crash try recover println self iffy`, []expectedToken{
		{KindKeyword, "if"}, {KindKeyword, "else"}, {KindKeyword, "for"}, {KindKeyword, "fn"},
		{KindKeyword, "in"}, {KindKeyword, "loop"}, {KindKeyword, "from"}, {KindKeyword, "as"},
		{KindKeyword, "implements"}, {KindKeyword, "while"}, {KindKeyword, "break"},
		{KindKeyword, "continue"}, {KindKeyword, "return"}, {KindKeyword, "crash"},
		{KindKeyword, "try"}, {KindKeyword, "recover"}, {KindKeyword, "println"},
		{KindKeyword, "self"}, {KindIdentifier, "iffy"}, {KindEOF, ""},
	})
	if !toks[0].IsKeyword(KwIf) || !toks[17].IsKeyword(KwSelf) {
		t.Fatalf("keyword classification wrong: %v", toks)
	}

	injs := []struct {
		input string
		want  Injunction
	}{
		{"@function", InjFunction}, {"@type", InjType}, {"@class", InjClass},
		{"@record", InjRecord}, {"@const", InjConst}, {"@let", InjLet},
		{"@use", InjUse}, {"@prepend", InjPrepend}, {"@tests", InjTests},
		{"@enum", InjEnum}, {"@interface", InjInterface}, {"@implement", InjImplement},
		{"@module", InjModule}, {"@public", InjPublic}, {"@specify", InjUnknown},
	}
	for _, tt := range injs {
		res := Scan(tt.input)
		if len(res.Errors) != 0 {
			t.Fatalf("%q: unexpected errors %v", tt.input, res.Errors)
		}
		tok := res.Tokens[0]
		if tok.Kind != KindInjunction || tok.Injunction != tt.want {
			t.Fatalf("%q: expected injunction %s, got %s", tt.input, tt.want, tok)
		}
		if tok.Value != tt.input[1:] {
			t.Fatalf("%q: expected name %q, got %q", tt.input, tt.input[1:], tok.Value)
		}
	}
}

func TestScan_Booleans(t *testing.T) {
	toks := checkTokens(t, `true false trueish falsey`, []expectedToken{
		{KindLiteral, "true"},
		{KindLiteral, "false"},
		{KindIdentifier, "trueish"},
		{KindIdentifier, "falsey"},
		{KindEOF, ""},
	})
	if toks[0].Literal != LitBoolean || toks[1].Literal != LitBoolean {
		t.Fatalf("expected boolean literals, got %v", toks[:2])
	}
}

func TestScan_Numbers(t *testing.T) {
	tests := []struct {
		input string
		want  []expectedToken
	}{
		{"89", []expectedToken{{KindLiteral, "89"}, {KindEOF, ""}}},
		{"0x90384", []expectedToken{{KindLiteral, "0x90384"}, {KindEOF, ""}}},
		{"0b1011", []expectedToken{{KindLiteral, "0b1011"}, {KindEOF, ""}}},
		{"0o777", []expectedToken{{KindLiteral, "0o777"}, {KindEOF, ""}}},
		{"3.14", []expectedToken{{KindLiteral, "3.14"}, {KindEOF, ""}}},
		{"6e23", []expectedToken{{KindLiteral, "6e23"}, {KindEOF, ""}}},
		{"1.5e-3", []expectedToken{{KindLiteral, "1.5e-3"}, {KindEOF, ""}}},
		{"1..10", []expectedToken{{KindLiteral, "1"}, {KindOperator, ".."}, {KindLiteral, "10"}, {KindEOF, ""}}},
		{"5.len", []expectedToken{{KindLiteral, "5."}, {KindIdentifier, "len"}, {KindEOF, ""}}},
		{"2.", []expectedToken{{KindLiteral, "2."}, {KindEOF, ""}}},
		{"2.;", []expectedToken{{KindLiteral, "2."}, {KindPunctuation, ";"}, {KindEOF, ""}}},
		{"2else", []expectedToken{{KindLiteral, "2"}, {KindKeyword, "else"}, {KindEOF, ""}}},
	}

	for _, tt := range tests {
		checkTokens(t, tt.input, tt.want)
	}
}

func TestScan_Spans(t *testing.T) {
	tests := []struct {
		input string
		want  source.Span
	}{
		{`"This is a string."`, source.NewSpan(1, 1, 1, 19)},
		{`89`, source.NewSpan(1, 1, 1, 2)},
		{`0x90384`, source.NewSpan(1, 1, 1, 7)},
		{`@public`, source.NewSpan(1, 1, 1, 7)},
		{`'h'`, source.NewSpan(1, 1, 1, 3)},
		{`&&=`, source.NewSpan(1, 1, 1, 3)},
		{"\n\n   ident", source.NewSpan(3, 4, 3, 8)},
	}

	for i, tt := range tests {
		got := Scan(tt.input).Tokens[0].Span
		if got != tt.want {
			t.Fatalf("tests[%d] %q - span wrong. expected=%s, got=%s", i, tt.input, tt.want, got)
		}
	}
}

func TestScan_SpansAcrossLines(t *testing.T) {
	res := Scan("a\n  bc;\r\nd")
	want := []source.Span{
		source.NewSpan(1, 1, 1, 1),
		source.NewSpan(2, 3, 2, 4),
		source.NewSpan(2, 5, 2, 5),
		source.NewSpan(3, 1, 3, 1),
		source.NewSpan(3, 2, 3, 2),
	}
	if len(res.Tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(res.Tokens))
	}
	for i, span := range want {
		if res.Tokens[i].Span != span {
			t.Fatalf("tests[%d] - span wrong. expected=%s, got=%s", i, span, res.Tokens[i].Span)
		}
	}
}

func TestScan_Comments(t *testing.T) {
	res := Scan("// This is a comment.\n## doc\nx /* block\n body */ y")

	if len(res.Comments) != 3 {
		t.Fatalf("expected 3 comments, got %d", len(res.Comments))
	}

	line := res.Comments[0]
	if line.Comment != CommentLine || line.Value != " This is a comment." {
		t.Fatalf("line comment wrong: %s", line)
	}
	if line.Span != source.NewSpan(1, 1, 1, 21) {
		t.Fatalf("line comment span wrong: %s", line.Span)
	}

	doc := res.Comments[1]
	if doc.Comment != CommentDoc || doc.Value != " doc" {
		t.Fatalf("doc comment wrong: %s", doc)
	}

	block := res.Comments[2]
	if block.Comment != CommentBlock || block.Value != " block\n body " {
		t.Fatalf("block comment wrong: %s", block)
	}
	if block.Span != source.NewSpan(3, 3, 4, 8) {
		t.Fatalf("block comment span wrong: %s", block.Span)
	}

	checkTokens(t, "// only\nx", []expectedToken{{KindIdentifier, "x"}, {KindEOF, ""}})
	if len(res.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
}

func TestScan_DivisionVsComment(t *testing.T) {
	checkTokens(t, "a / b /= c // d", []expectedToken{
		{KindIdentifier, "a"},
		{KindOperator, "/"},
		{KindIdentifier, "b"},
		{KindOperator, "/="},
		{KindIdentifier, "c"},
		{KindEOF, ""},
	})
}

func TestScan_StringEscapesKeptRaw(t *testing.T) {
	toks := checkTokens(t, `"This is a\" string." "back\\slash" ""`, []expectedToken{
		{KindLiteral, `This is a\" string.`},
		{KindLiteral, `back\\slash`},
		{KindLiteral, ``},
		{KindEOF, ""},
	})
	for i := 0; i < 3; i++ {
		if toks[i].Literal != LitString {
			t.Fatalf("tests[%d] - expected string literal, got %s", i, toks[i].Literal)
		}
	}
}

func TestScan_Characters(t *testing.T) {
	tests := []struct {
		input string
		value string
		err   []ErrorKind
	}{
		{`'h'`, "h", nil},
		{`'\''`, `\'`, nil},
		{`'\\'`, `\\`, nil},
		{`'ß'`, "ß", nil},
		{`'ab'`, "ab", []ErrorKind{ErrInvalidCharacterCount}},
		{`''`, "", []ErrorKind{ErrInvalidCharacterCount}},
		{"'x\ny", "x", []ErrorKind{ErrUnterminatedCharacterLiteral}},
	}

	for _, tt := range tests {
		res := Scan(tt.input)
		tok := res.Tokens[0]
		if tok.Kind != KindLiteral || tok.Literal != LitCharacter || tok.Value != tt.value {
			t.Fatalf("%q: expected character %q, got %s", tt.input, tt.value, tok)
		}
		if len(res.Errors) != len(tt.err) {
			t.Fatalf("%q: expected errors %v, got %v", tt.input, tt.err, res.Errors)
		}
		for i, kind := range tt.err {
			if res.Errors[i].Kind != kind {
				t.Fatalf("%q: expected error %s, got %s", tt.input, kind, res.Errors[i].Kind)
			}
		}
	}
}

func TestScan_EOFSpan(t *testing.T) {
	tests := []struct {
		input string
		want  source.Position
	}{
		{"", source.Position{Line: 1, Column: 1}},
		{"abc", source.Position{Line: 1, Column: 4}},
		{"abc\n", source.Position{Line: 2, Column: 1}},
	}
	for _, tt := range tests {
		toks := Scan(tt.input).Tokens
		eof := toks[len(toks)-1]
		if !eof.IsEOF() {
			t.Fatalf("%q: last token is not EOF: %s", tt.input, eof)
		}
		if eof.Span.Start != tt.want || eof.Span.End != tt.want {
			t.Fatalf("%q: EOF span wrong. expected=%s, got=%s", tt.input, tt.want, eof.Span)
		}
	}
}

func TestScan_RunTwiceIsNoop(t *testing.T) {
	s := New("a b")
	s.Run()
	s.Run()
	if len(s.Tokens()) != 3 {
		t.Fatalf("expected 3 tokens, got %d", len(s.Tokens()))
	}
}
