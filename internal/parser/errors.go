package parser

import (
	"fmt"

	"github.com/pebble-lang/pebble/internal/diag"
	"github.com/pebble-lang/pebble/internal/source"
)

// ErrorKind classifies syntax errors.
type ErrorKind int

const (
	ErrDynamicRecordMap ErrorKind = iota
	ErrExpectedArrow
	ErrExpectedAs
	ErrExpectedColon
	ErrExpectedCommaOrRAngleBrac
	ErrExpectedCommaOrRCurly
	ErrExpectedCommaOrRSquareBrac
	ErrExpectedExpression
	ErrExpectedFrom
	ErrExpectedFunctionArgument
	ErrExpectedFunctionName
	ErrExpectedGenericTypeParameter
	ErrExpectedIdentifier
	ErrExpectedImport
	ErrExpectedImportSource
	ErrExpectedIn
	ErrExpectedInterfaceName
	ErrExpectedLAngleBrac
	ErrExpectedLCurly
	ErrExpectedLParen
	ErrExpectedModuleName
	ErrExpectedParameterName
	ErrExpectedPropertyName
	ErrExpectedRAngleBrac
	ErrExpectedRCurly
	ErrExpectedRParen
	ErrExpectedRSquareBrac
	ErrExpectedReturnType
	ErrExpectedSemiColon
	ErrExpectedTypeName
	ErrExpectedVariableName
	ErrIllegalDeclaration
	ErrIllegalElse
	ErrIllegalPublicModifier
	ErrIllegalRecover
	ErrInvalidAssignmentTarget
	ErrNamedFunctionExpr
	ErrStrayImplement
	ErrUnclosedImportSpace
	ErrUnexpectedKeyword
	ErrUnexpectedOperator
	ErrUninitializedConstant
	ErrUninitializedTypeAlias
	ErrUninitializedUntypedVariable
	ErrUnrecognizedInjunction
)

var errorKinds = [...]struct {
	name    string
	message string
}{
	ErrDynamicRecordMap:             {"DynamicRecordMap", "record keys and values must be literals"},
	ErrExpectedArrow:                {"ExpectedArrow", "expected `->`"},
	ErrExpectedAs:                   {"ExpectedAs", "expected `as` after `*`"},
	ErrExpectedColon:                {"ExpectedColon", "expected `:` in conditional expression"},
	ErrExpectedCommaOrRAngleBrac:    {"ExpectedCommaOrRAngleBrac", "expected `,` or `>`"},
	ErrExpectedCommaOrRCurly:        {"ExpectedCommaOrRCurly", "expected `,` or `}`"},
	ErrExpectedCommaOrRSquareBrac:   {"ExpectedCommaOrRSquareBrac", "expected `,` or `]`"},
	ErrExpectedExpression:           {"ExpectedExpression", "expected an expression"},
	ErrExpectedFrom:                 {"ExpectedFrom", "expected `from`"},
	ErrExpectedFunctionArgument:     {"ExpectedFunctionArgument", "expected `,` or `)` after argument"},
	ErrExpectedFunctionName:         {"ExpectedFunctionName", "expected a function name"},
	ErrExpectedGenericTypeParameter: {"ExpectedGenericTypeParameter", "expected a generic type parameter"},
	ErrExpectedIdentifier:           {"ExpectedIdentifier", "expected an identifier"},
	ErrExpectedImport:               {"ExpectedImport", "expected an import name"},
	ErrExpectedImportSource:         {"ExpectedImportSource", "expected an import source string"},
	ErrExpectedIn:                   {"ExpectedIn", "expected `in`"},
	ErrExpectedInterfaceName:        {"ExpectedInterfaceName", "expected an interface name"},
	ErrExpectedLAngleBrac:           {"ExpectedLAngleBrac", "expected `<`"},
	ErrExpectedLCurly:               {"ExpectedLCurly", "expected `{`"},
	ErrExpectedLParen:               {"ExpectedLParen", "expected `(`"},
	ErrExpectedModuleName:           {"ExpectedModuleName", "expected a module name"},
	ErrExpectedParameterName:        {"ExpectedParameterName", "expected a parameter name"},
	ErrExpectedPropertyName:         {"ExpectedPropertyName", "expected a property name"},
	ErrExpectedRAngleBrac:           {"ExpectedRAngleBrac", "expected `>`"},
	ErrExpectedRCurly:               {"ExpectedRCurly", "expected `}`"},
	ErrExpectedRParen:               {"ExpectedRParen", "expected `)`"},
	ErrExpectedRSquareBrac:          {"ExpectedRSquareBrac", "expected `]`"},
	ErrExpectedReturnType:           {"ExpectedReturnType", "expected `->` and a return type"},
	ErrExpectedSemiColon:            {"ExpectedSemiColon", "expected `;`"},
	ErrExpectedTypeName:             {"ExpectedTypeName", "expected a type name"},
	ErrExpectedVariableName:         {"ExpectedVariableName", "expected a variable name"},
	ErrIllegalDeclaration:           {"IllegalDeclaration", "a declaration cannot be the body of a control statement without braces"},
	ErrIllegalElse:                  {"IllegalElse", "`else` without a matching `if`"},
	ErrIllegalPublicModifier:        {"IllegalPublicModifier", "`@public` can only modify a declaration"},
	ErrIllegalRecover:               {"IllegalRecover", "`recover` without a matching `try`"},
	ErrInvalidAssignmentTarget:      {"InvalidAssignmentTarget", "invalid assignment target"},
	ErrNamedFunctionExpr:            {"NamedFunctionExpr", "function expressions cannot be named"},
	ErrStrayImplement:               {"StrayImplement", "`@implement` is only allowed inside a class or interface"},
	ErrUnclosedImportSpace:          {"UnclosedImportSpace", "unclosed import list"},
	ErrUnexpectedKeyword:            {"UnexpectedKeyword", "unexpected keyword"},
	ErrUnexpectedOperator:           {"UnexpectedOperator", "unexpected operator"},
	ErrUninitializedConstant:        {"UninitializedConstant", "constants must be initialized"},
	ErrUninitializedTypeAlias:       {"UninitializedTypeAlias", "expected `=` and a type after type alias name"},
	ErrUninitializedUntypedVariable: {"UninitializedUntypedVariable", "a variable needs a type label or an initializer"},
	ErrUnrecognizedInjunction:       {"UnrecognizedInjunction", "unrecognized injunction"},
}

func (k ErrorKind) String() string {
	if int(k) < len(errorKinds) {
		return errorKinds[k].name
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is a syntax error anchored at the offending token.
type Error struct {
	Kind ErrorKind
	Span source.Span
}

func (e *Error) Error() string {
	if int(e.Kind) < len(errorKinds) {
		return errorKinds[e.Kind].message
	}
	return e.Kind.String()
}

// ToDiagnostic converts a syntax error into a shared diagnostic structure.
func (e *Error) ToDiagnostic() diag.Diagnostic {
	return diag.Diagnostic{
		Stage:    diag.StageParser,
		Severity: diag.SeverityError,
		Code:     diag.CodeFromName("SYNTAX", e.Kind.String()),
		Message:  e.Error(),
		Span:     e.Span,
	}
}

// fail builds an error at the current token.
func (p *Parser) fail(kind ErrorKind) error {
	return &Error{Kind: kind, Span: p.tokens.token().Span}
}

func errorAt(kind ErrorKind, span source.Span) error {
	return &Error{Kind: kind, Span: span}
}
