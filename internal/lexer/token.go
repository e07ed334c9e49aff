package lexer

import (
	"fmt"

	"github.com/pebble-lang/pebble/internal/source"
)

// Kind is the coarse classification of a token.
type Kind int

const (
	KindInvalid Kind = iota
	KindOperator
	KindPunctuation
	KindKeyword
	KindInjunction
	KindIdentifier
	KindLiteral
	KindComment
	KindEOF
)

var kindNames = [...]string{
	KindInvalid:     "INVALID",
	KindOperator:    "OPERATOR",
	KindPunctuation: "PUNCT",
	KindKeyword:     "KEYWORD",
	KindInjunction:  "INJUNCTION",
	KindIdentifier:  "IDENT",
	KindLiteral:     "LITERAL",
	KindComment:     "COMMENT",
	KindEOF:         "EOF",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Operator enumerates operator lexemes.
type Operator int

const (
	OpNone Operator = iota
	OpRestOf
	OpLogicalAndAssign
	OpLogicalOrAssign
	OpMulAssign
	OpDivAssign
	OpAddAssign
	OpSubAssign
	OpEquals
	OpNotEquals
	OpGreaterEqual
	OpLessEqual
	OpArrow
	OpReturns
	OpIncrement
	OpDecrement
	OpRange
	OpNamespace
	OpLogicalOr
	OpLogicalAnd
	OpShiftLeft
	OpPower
	OpMul
	OpDiv
	OpAdd
	OpSub
	OpRem
	OpBitAnd
	OpBitOr
	OpNot
	OpBitNot
	OpDot
	OpConfirm
	OpColon
	OpGreater
	OpLess
	OpAssign
)

// operatorTable is ordered longest lexeme first so scanning can take the first
// match and still be greedy.
var operatorTable = []struct {
	lexeme string
	op     Operator
}{
	{"...", OpRestOf},
	{"&&=", OpLogicalAndAssign},
	{"||=", OpLogicalOrAssign},
	{"*=", OpMulAssign},
	{"/=", OpDivAssign},
	{"+=", OpAddAssign},
	{"-=", OpSubAssign},
	{"==", OpEquals},
	{"!=", OpNotEquals},
	{">=", OpGreaterEqual},
	{"<=", OpLessEqual},
	{"=>", OpArrow},
	{"->", OpReturns},
	{"++", OpIncrement},
	{"--", OpDecrement},
	{"..", OpRange},
	{"::", OpNamespace},
	{"||", OpLogicalOr},
	{"&&", OpLogicalAnd},
	{"<<", OpShiftLeft},
	{"**", OpPower},
	{"*", OpMul},
	{"/", OpDiv},
	{"+", OpAdd},
	{"-", OpSub},
	{"%", OpRem},
	{"&", OpBitAnd},
	{"|", OpBitOr},
	{"!", OpNot},
	{"~", OpBitNot},
	{".", OpDot},
	{"?", OpConfirm},
	{":", OpColon},
	{">", OpGreater},
	{"<", OpLess},
	{"=", OpAssign},
}

var operatorLexemes = func() map[Operator]string {
	m := make(map[Operator]string, len(operatorTable))
	for _, entry := range operatorTable {
		m[entry.op] = entry.lexeme
	}
	return m
}()

func (o Operator) String() string {
	if s, ok := operatorLexemes[o]; ok {
		return s
	}
	return fmt.Sprintf("Operator(%d)", int(o))
}

// IsAssignment reports whether o is `=` or a compound assignment.
func (o Operator) IsAssignment() bool {
	switch o {
	case OpAssign, OpAddAssign, OpSubAssign, OpMulAssign, OpDivAssign,
		OpLogicalAndAssign, OpLogicalOrAssign:
		return true
	}
	return false
}

// Punctuation enumerates the single-character delimiters.
type Punctuation int

const (
	PunctNone Punctuation = iota
	PunctComma
	PunctSemiColon
	PunctLParen
	PunctRParen
	PunctLSquare
	PunctRSquare
	PunctLCurly
	PunctRCurly
)

var punctuations = map[rune]Punctuation{
	',': PunctComma,
	';': PunctSemiColon,
	'(': PunctLParen,
	')': PunctRParen,
	'[': PunctLSquare,
	']': PunctRSquare,
	'{': PunctLCurly,
	'}': PunctRCurly,
}

func (p Punctuation) String() string {
	for r, q := range punctuations {
		if q == p {
			return string(r)
		}
	}
	return fmt.Sprintf("Punctuation(%d)", int(p))
}

// Keyword enumerates reserved words.
type Keyword int

const (
	KwNone Keyword = iota
	KwIf
	KwElse
	KwFor
	KwFn
	KwIn
	KwLoop
	KwFrom
	KwAs
	KwImplements
	KwWhile
	KwBreak
	KwContinue
	KwReturn
	KwCrash
	KwTry
	KwRecover
	KwPrintln
	KwSelf
)

var keywords = map[string]Keyword{
	"if":         KwIf,
	"else":       KwElse,
	"for":        KwFor,
	"fn":         KwFn,
	"in":         KwIn,
	"loop":       KwLoop,
	"from":       KwFrom,
	"as":         KwAs,
	"implements": KwImplements,
	"while":      KwWhile,
	"break":      KwBreak,
	"continue":   KwContinue,
	"return":     KwReturn,
	"crash":      KwCrash,
	"try":        KwTry,
	"recover":    KwRecover,
	"println":    KwPrintln,
	"self":       KwSelf,
}

// LookupKeyword classifies ident as a keyword. ok is false for plain identifiers.
func LookupKeyword(ident string) (Keyword, bool) {
	kw, ok := keywords[ident]
	return kw, ok
}

func (k Keyword) String() string {
	for s, kw := range keywords {
		if kw == k {
			return s
		}
	}
	return fmt.Sprintf("Keyword(%d)", int(k))
}

// Injunction enumerates the `@`-prefixed declaration keywords.
type Injunction int

const (
	InjUnknown Injunction = iota
	InjFunction
	InjType
	InjClass
	InjRecord
	InjConst
	InjLet
	InjUse
	InjPrepend
	InjTests
	InjEnum
	InjInterface
	InjImplement
	InjModule
	InjPublic
)

var injunctions = map[string]Injunction{
	"function":  InjFunction,
	"type":      InjType,
	"class":     InjClass,
	"record":    InjRecord,
	"const":     InjConst,
	"let":       InjLet,
	"use":       InjUse,
	"prepend":   InjPrepend,
	"tests":     InjTests,
	"enum":      InjEnum,
	"interface": InjInterface,
	"implement": InjImplement,
	"module":    InjModule,
	"public":    InjPublic,
}

// LookupInjunction classifies the name following `@`. Unrecognised names map
// to InjUnknown.
func LookupInjunction(name string) Injunction {
	return injunctions[name]
}

func (i Injunction) String() string {
	for s, inj := range injunctions {
		if inj == i {
			return s
		}
	}
	return "unknown"
}

// LiteralKind distinguishes literal tokens.
type LiteralKind int

const (
	LitNone LiteralKind = iota
	LitString
	LitNumber
	LitBoolean
	LitCharacter
)

func (l LiteralKind) String() string {
	switch l {
	case LitString:
		return "string"
	case LitNumber:
		return "number"
	case LitBoolean:
		return "boolean"
	case LitCharacter:
		return "character"
	}
	return "none"
}

// CommentKind distinguishes the three comment forms.
type CommentKind int

const (
	CommentNone CommentKind = iota
	CommentLine
	CommentBlock
	CommentDoc
)

func (c CommentKind) String() string {
	switch c {
	case CommentLine:
		return "line"
	case CommentBlock:
		return "block"
	case CommentDoc:
		return "doc"
	}
	return "none"
}

// Token is a single lexeme. Only the sub-tag matching Kind is meaningful.
// Value is a slice of the scanned source: identifier text, literal text
// (string and character bodies without their quotes, numbers with their radix
// prefix), comment content, injunction name or the invalid run.
type Token struct {
	Kind       Kind
	Operator   Operator
	Punct      Punctuation
	Keyword    Keyword
	Injunction Injunction
	Literal    LiteralKind
	Comment    CommentKind
	Value      string
	Span       source.Span
}

// Is reports whether the token is the operator op.
func (t Token) Is(op Operator) bool {
	return t.Kind == KindOperator && t.Operator == op
}

// IsPunct reports whether the token is the punctuation p.
func (t Token) IsPunct(p Punctuation) bool {
	return t.Kind == KindPunctuation && t.Punct == p
}

// IsKeyword reports whether the token is the keyword kw.
func (t Token) IsKeyword(kw Keyword) bool {
	return t.Kind == KindKeyword && t.Keyword == kw
}

// IsInjunction reports whether the token is the injunction inj.
func (t Token) IsInjunction(inj Injunction) bool {
	return t.Kind == KindInjunction && t.Injunction == inj
}

// IsLiteral reports whether the token is a literal of any kind.
func (t Token) IsLiteral() bool { return t.Kind == KindLiteral }

// IsIdent reports whether the token is a plain identifier.
func (t Token) IsIdent() bool { return t.Kind == KindIdentifier }

// IsEOF reports whether the token is the end-of-file marker.
func (t Token) IsEOF() bool { return t.Kind == KindEOF }

// Text is the lexeme as a user would recognise it in a message.
func (t Token) Text() string {
	switch t.Kind {
	case KindOperator:
		return t.Operator.String()
	case KindPunctuation:
		return t.Punct.String()
	case KindKeyword:
		return t.Keyword.String()
	case KindInjunction:
		return "@" + t.Value
	case KindLiteral:
		switch t.Literal {
		case LitString:
			return `"` + t.Value + `"`
		case LitCharacter:
			return "'" + t.Value + "'"
		}
		return t.Value
	case KindEOF:
		return "end of file"
	}
	return t.Value
}

func (t Token) String() string {
	detail := t.Text()
	switch t.Kind {
	case KindLiteral:
		detail = t.Literal.String() + " " + detail
	case KindComment:
		detail = t.Comment.String() + " " + fmt.Sprintf("%q", t.Value)
	}
	return fmt.Sprintf("%s %s %s", t.Span, t.Kind, detail)
}
