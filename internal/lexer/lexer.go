package lexer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pebble-lang/pebble/internal/diag"
	"github.com/pebble-lang/pebble/internal/source"
)

// ErrorKind classifies lexical errors.
type ErrorKind int

const (
	ErrUnknownToken ErrorKind = iota
	ErrUnterminatedStringLiteral
	ErrUnterminatedCharacterLiteral
	ErrInvalidCharacterCount
	ErrUnterminatedBlockComment
)

var errorKindNames = [...]string{
	ErrUnknownToken:                 "UnknownToken",
	ErrUnterminatedStringLiteral:    "UnterminatedStringLiteral",
	ErrUnterminatedCharacterLiteral: "UnterminatedCharacterLiteral",
	ErrInvalidCharacterCount:        "InvalidCharacterCount",
	ErrUnterminatedBlockComment:     "UnterminatedBlockComment",
}

func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is a non-fatal lexical error. Text holds the offending run for
// ErrUnknownToken.
type Error struct {
	Kind ErrorKind
	Text string
	Span source.Span
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrUnknownToken:
		return fmt.Sprintf("unknown token `%s`", e.Text)
	case ErrUnterminatedStringLiteral:
		return "unterminated string literal"
	case ErrUnterminatedCharacterLiteral:
		return "unterminated character literal"
	case ErrInvalidCharacterCount:
		return "character literal must contain exactly one character"
	case ErrUnterminatedBlockComment:
		return "unterminated block comment"
	}
	return e.Kind.String()
}

// ToDiagnostic converts a lexer error into a shared diagnostic structure.
func (e *Error) ToDiagnostic() diag.Diagnostic {
	return diag.Diagnostic{
		Stage:    diag.StageLexer,
		Severity: diag.SeverityError,
		Code:     diag.CodeFromName("LEXER", e.Kind.String()),
		Message:  e.Error(),
		Span:     e.Span,
	}
}

// Result bundles everything a scan produces.
type Result struct {
	Tokens   []Token
	Comments []Token
	Errors   []*Error
}

// Scan tokenizes src in one call.
func Scan(src string) Result {
	s := New(src)
	s.Run()
	return Result{Tokens: s.Tokens(), Comments: s.Comments(), Errors: s.Errors()}
}

// Scanner turns source text into a token stream and a separate comment
// stream. It never stops on bad input.
type Scanner struct {
	src     string
	pos     int  // byte offset of ch
	ch      rune // current rune (0 at end of input)
	width   int  // byte width of ch
	tracker *source.Tracker

	tokens   []Token
	comments []Token
	errors   []*Error
	done     bool
}

// New returns a scanner over src.
func New(src string) *Scanner {
	s := &Scanner{src: src, tracker: source.NewTracker()}
	s.decode()
	return s
}

// Tokens returns the scanned tokens. The last one is always EOF once Run has
// returned.
func (s *Scanner) Tokens() []Token { return s.tokens }

// Comments returns the comment stream.
func (s *Scanner) Comments() []Token { return s.comments }

// Errors returns the lexical errors in source order.
func (s *Scanner) Errors() []*Error { return s.errors }

// Run scans the whole input. Calling it again is a no-op.
func (s *Scanner) Run() {
	if s.done {
		return
	}
	for {
		s.skipWhitespace()
		if s.atEnd() {
			break
		}
		s.scanToken()
	}
	end := s.tracker.Current()
	s.tokens = append(s.tokens, Token{Kind: KindEOF, Span: source.Span{Start: end, End: end}})
	s.done = true
}

func (s *Scanner) decode() {
	if s.pos >= len(s.src) {
		s.ch, s.width = 0, 0
		return
	}
	s.ch, s.width = utf8.DecodeRuneInString(s.src[s.pos:])
}

func (s *Scanner) atEnd() bool { return s.pos >= len(s.src) }

// next consumes the current rune.
func (s *Scanner) next() {
	if s.atEnd() {
		return
	}
	s.tracker.Advance(s.ch)
	s.pos += s.width
	s.decode()
}

func (s *Scanner) skip(n int) {
	for i := 0; i < n; i++ {
		s.next()
	}
}

// peek returns the rune after the current one.
func (s *Scanner) peek() rune {
	if s.pos+s.width >= len(s.src) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s.src[s.pos+s.width:])
	return r
}

// sees reports whether the remaining input starts with lit.
func (s *Scanner) sees(lit string) bool {
	return strings.HasPrefix(s.src[s.pos:], lit)
}

// matches is sees for whole words: lit must not run on into an identifier.
func (s *Scanner) matches(lit string) bool {
	if !s.sees(lit) {
		return false
	}
	after, _ := utf8.DecodeRuneInString(s.src[s.pos+len(lit):])
	return s.pos+len(lit) >= len(s.src) || !isIdentChar(after)
}

func (s *Scanner) skipWhitespace() {
	for !s.atEnd() && isWhitespace(s.ch) {
		s.next()
	}
}

func (s *Scanner) addError(kind ErrorKind, text string, span source.Span) {
	s.errors = append(s.errors, &Error{Kind: kind, Text: text, Span: span})
}

func (s *Scanner) emit(tok Token) {
	s.tracker.MarkEnd()
	tok.Span = s.tracker.Span()
	if tok.Kind == KindComment {
		s.comments = append(s.comments, tok)
		return
	}
	s.tokens = append(s.tokens, tok)
}

func (s *Scanner) scanToken() {
	s.tracker.MarkStart()

	switch {
	case s.sees("//"):
		s.lineComment(CommentLine)
	case s.sees("/*"):
		s.blockComment()
	case s.sees("##"):
		s.lineComment(CommentDoc)
	case s.ch == '"':
		s.stringLiteral()
	case s.ch == '\'':
		s.characterLiteral()
	case isDigit(s.ch):
		s.number()
	case s.matches("true"), s.matches("false"):
		start := s.pos
		s.readIdentifier()
		s.emit(Token{Kind: KindLiteral, Literal: LitBoolean, Value: s.src[start:s.pos]})
	default:
		if op, lexeme, ok := s.operator(); ok {
			start := s.pos
			s.skip(len(lexeme))
			s.emit(Token{Kind: KindOperator, Operator: op, Value: s.src[start:s.pos]})
			return
		}
		if p, ok := punctuations[s.ch]; ok {
			start := s.pos
			s.next()
			s.emit(Token{Kind: KindPunctuation, Punct: p, Value: s.src[start:s.pos]})
			return
		}
		switch {
		case s.ch == '@':
			s.injunction()
		case isIdentStart(s.ch):
			s.identifier()
		default:
			s.unknown()
		}
	}
}

func (s *Scanner) operator() (Operator, string, bool) {
	for _, entry := range operatorTable {
		if s.sees(entry.lexeme) {
			return entry.op, entry.lexeme, true
		}
	}
	return OpNone, "", false
}

// lineComment scans `//` and `##` comments up to, not including, the newline.
func (s *Scanner) lineComment(kind CommentKind) {
	s.skip(2)
	start := s.pos
	for !s.atEnd() && s.ch != '\n' {
		s.next()
	}
	value := strings.TrimSuffix(s.src[start:s.pos], "\r")
	s.emit(Token{Kind: KindComment, Comment: kind, Value: value})
}

func (s *Scanner) blockComment() {
	s.skip(2)
	start := s.pos
	for {
		if s.atEnd() {
			s.tracker.MarkEnd()
			s.addError(ErrUnterminatedBlockComment, "", s.tracker.Span())
			s.emit(Token{Kind: KindComment, Comment: CommentBlock, Value: s.src[start:s.pos]})
			return
		}
		if s.sees("*/") {
			end := s.pos
			s.skip(2)
			s.emit(Token{Kind: KindComment, Comment: CommentBlock, Value: s.src[start:end]})
			return
		}
		s.next()
	}
}

// quoted scans a quoted body, keeping `\<quote>` and `\\` escapes as written.
// It returns the raw body and whether the closing quote was found. A newline
// ends the body early when stopAtNewline is set.
func (s *Scanner) quoted(quote rune, stopAtNewline bool) (string, bool) {
	s.next()
	start := s.pos
	for {
		switch {
		case s.atEnd(), stopAtNewline && s.ch == '\n':
			return s.src[start:s.pos], false
		case s.ch == '\\' && (s.peek() == quote || s.peek() == '\\'):
			s.skip(2)
		case s.ch == quote:
			body := s.src[start:s.pos]
			s.next()
			return body, true
		default:
			s.next()
		}
	}
}

func (s *Scanner) stringLiteral() {
	body, terminated := s.quoted('"', false)
	if !terminated {
		s.tracker.MarkEnd()
		s.addError(ErrUnterminatedStringLiteral, "", s.tracker.Span())
	}
	s.emit(Token{Kind: KindLiteral, Literal: LitString, Value: body})
}

func (s *Scanner) characterLiteral() {
	body, terminated := s.quoted('\'', true)
	s.tracker.MarkEnd()
	switch {
	case !terminated:
		s.addError(ErrUnterminatedCharacterLiteral, "", s.tracker.Span())
	case characterCount(body) != 1:
		s.addError(ErrInvalidCharacterCount, body, s.tracker.Span())
	}
	s.emit(Token{Kind: KindLiteral, Literal: LitCharacter, Value: body})
}

// characterCount counts the characters of a literal body, treating a
// backslash escape as one character.
func characterCount(body string) int {
	n := 0
	for i := 0; i < len(body); {
		if body[i] == '\\' && i+1 < len(body) {
			_, w := utf8.DecodeRuneInString(body[i+1:])
			i += 1 + w
		} else {
			_, w := utf8.DecodeRuneInString(body[i:])
			i += w
		}
		n++
	}
	return n
}

// number scans decimal, hex (0x), binary (0b) and octal (0o) literals. The
// radix prefix stays in the token value.
func (s *Scanner) number() {
	start := s.pos
	if s.ch == '0' {
		var radix func(rune) bool
		switch s.peek() {
		case 'x', 'X':
			radix = isHexDigit
		case 'b', 'B':
			radix = isBinaryDigit
		case 'o', 'O':
			radix = isOctalDigit
		}
		if radix != nil {
			s.skip(2)
			for !s.atEnd() && radix(s.ch) {
				s.next()
			}
			s.emit(Token{Kind: KindLiteral, Literal: LitNumber, Value: s.src[start:s.pos]})
			return
		}
	}

	s.digits()
	// `1..2` is a range, not a fraction. A bare trailing dot is.
	if s.ch == '.' && !s.sees("..") {
		s.next()
		s.digits()
	}
	if s.ch == 'e' || s.ch == 'E' {
		rest := s.src[s.pos+1:]
		if rest != "" && (rest[0] == '+' || rest[0] == '-') {
			rest = rest[1:]
		}
		if rest != "" && isDigit(rune(rest[0])) {
			s.next()
			if s.ch == '+' || s.ch == '-' {
				s.next()
			}
			s.digits()
		}
	}
	s.emit(Token{Kind: KindLiteral, Literal: LitNumber, Value: s.src[start:s.pos]})
}

func (s *Scanner) digits() {
	for !s.atEnd() && isDigit(s.ch) {
		s.next()
	}
}

func (s *Scanner) readIdentifier() {
	for !s.atEnd() && isIdentChar(s.ch) {
		s.next()
	}
}

func (s *Scanner) identifier() {
	start := s.pos
	s.readIdentifier()
	text := s.src[start:s.pos]
	if kw, ok := LookupKeyword(text); ok {
		s.emit(Token{Kind: KindKeyword, Keyword: kw, Value: text})
		return
	}
	s.emit(Token{Kind: KindIdentifier, Value: text})
}

func (s *Scanner) injunction() {
	s.next()
	start := s.pos
	s.readIdentifier()
	name := s.src[start:s.pos]
	s.emit(Token{Kind: KindInjunction, Injunction: LookupInjunction(name), Value: name})
}

// unknown collects the maximal non-whitespace run into an invalid token.
func (s *Scanner) unknown() {
	start := s.pos
	for !s.atEnd() && !isWhitespace(s.ch) {
		s.next()
	}
	text := s.src[start:s.pos]
	s.tracker.MarkEnd()
	s.addError(ErrUnknownToken, text, s.tracker.Span())
	s.emit(Token{Kind: KindInvalid, Value: text})
}

func isWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\f' || ch == '\v'
}

func isIdentStart(ch rune) bool {
	return ch == '_' || ch == '$' || unicode.IsLetter(ch)
}

func isIdentChar(ch rune) bool {
	return isIdentStart(ch) || unicode.IsDigit(ch)
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func isHexDigit(ch rune) bool {
	return isDigit(ch) || ('a' <= ch && ch <= 'f') || ('A' <= ch && ch <= 'F')
}

func isBinaryDigit(ch rune) bool {
	return ch == '0' || ch == '1'
}

func isOctalDigit(ch rune) bool {
	return '0' <= ch && ch <= '7'
}
