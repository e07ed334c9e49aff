package ast

import (
	"fmt"

	"github.com/pebble-lang/pebble/internal/source"
)

// BinaryOp is the operator of a BinaryExpr.
type BinaryOp int

const (
	OpAdd BinaryOp = iota + 1
	OpSub
	OpMul
	OpDiv
	OpRem
	OpPower
	OpEquals
	OpNotEquals
	OpLess
	OpGreater
	OpLessEqual
	OpGreaterEqual
	OpShiftLeft
	OpShiftRight
	OpBitAnd
	OpBitOr
)

var binaryOpNames = map[BinaryOp]string{
	OpAdd:          "+",
	OpSub:          "-",
	OpMul:          "*",
	OpDiv:          "/",
	OpRem:          "%",
	OpPower:        "**",
	OpEquals:       "==",
	OpNotEquals:    "!=",
	OpLess:         "<",
	OpGreater:      ">",
	OpLessEqual:    "<=",
	OpGreaterEqual: ">=",
	OpShiftLeft:    "<<",
	OpShiftRight:   ">>",
	OpBitAnd:       "&",
	OpBitOr:        "|",
}

func (op BinaryOp) String() string {
	if s, ok := binaryOpNames[op]; ok {
		return s
	}
	return fmt.Sprintf("BinaryOp(%d)", int(op))
}

// LogicalOp is the operator of a LogicalExpr.
type LogicalOp int

const (
	OpAnd LogicalOp = iota + 1
	OpOr
)

func (op LogicalOp) String() string {
	switch op {
	case OpAnd:
		return "&&"
	case OpOr:
		return "||"
	}
	return fmt.Sprintf("LogicalOp(%d)", int(op))
}

// UnaryOp is the operator of a UnaryExpr.
type UnaryOp int

const (
	OpPlus UnaryOp = iota + 1
	OpMinus
	OpIncrement
	OpDecrement
	OpNot
	OpBitNot
)

func (op UnaryOp) String() string {
	switch op {
	case OpPlus:
		return "+"
	case OpMinus:
		return "-"
	case OpIncrement:
		return "++"
	case OpDecrement:
		return "--"
	case OpNot:
		return "!"
	case OpBitNot:
		return "~"
	}
	return fmt.Sprintf("UnaryOp(%d)", int(op))
}

// AssignOp is the operator of an AssignExpr.
type AssignOp int

const (
	OpAssign AssignOp = iota + 1
	OpAddAssign
	OpSubAssign
	OpMulAssign
	OpDivAssign
	OpAndAssign
	OpOrAssign
)

func (op AssignOp) String() string {
	switch op {
	case OpAssign:
		return "="
	case OpAddAssign:
		return "+="
	case OpSubAssign:
		return "-="
	case OpMulAssign:
		return "*="
	case OpDivAssign:
		return "/="
	case OpAndAssign:
		return "&&="
	case OpOrAssign:
		return "||="
	}
	return fmt.Sprintf("AssignOp(%d)", int(op))
}

// Ident represents an identifier.
type Ident struct {
	Name string
	span source.Span
}

// NewIdent constructs an identifier.
func NewIdent(name string, span source.Span) *Ident {
	return &Ident{Name: name, span: span}
}

// Span returns the identifier span.
func (i *Ident) Span() source.Span { return i.span }
func (*Ident) exprNode()           {}

// StringLit is a string literal. Value is the body between the quotes with
// escapes kept as written.
type StringLit struct {
	Value string
	span  source.Span
}

// NewStringLit constructs a string literal.
func NewStringLit(value string, span source.Span) *StringLit {
	return &StringLit{Value: value, span: span}
}

func (l *StringLit) Span() source.Span { return l.span }
func (*StringLit) exprNode()           {}

// NumberLit keeps the literal text, radix prefix included.
type NumberLit struct {
	Text string
	span source.Span
}

// NewNumberLit constructs a number literal.
func NewNumberLit(text string, span source.Span) *NumberLit {
	return &NumberLit{Text: text, span: span}
}

func (l *NumberLit) Span() source.Span { return l.span }
func (*NumberLit) exprNode()           {}

// BoolLit is `true` or `false`.
type BoolLit struct {
	Value bool
	span  source.Span
}

// NewBoolLit constructs a boolean literal.
func NewBoolLit(value bool, span source.Span) *BoolLit {
	return &BoolLit{Value: value, span: span}
}

func (l *BoolLit) Span() source.Span { return l.span }
func (*BoolLit) exprNode()           {}

// CharLit is a character literal with its escape kept as written.
type CharLit struct {
	Value string
	span  source.Span
}

// NewCharLit constructs a character literal.
func NewCharLit(value string, span source.Span) *CharLit {
	return &CharLit{Value: value, span: span}
}

func (l *CharLit) Span() source.Span { return l.span }
func (*CharLit) exprNode()           {}

// SelfExpr is the `self` keyword used as a value.
type SelfExpr struct {
	span source.Span
}

// NewSelfExpr constructs a self reference.
func NewSelfExpr(span source.Span) *SelfExpr {
	return &SelfExpr{span: span}
}

func (e *SelfExpr) Span() source.Span { return e.span }
func (*SelfExpr) exprNode()           {}

// UnaryExpr is a prefix operator applied to an operand.
type UnaryExpr struct {
	Op      UnaryOp
	Operand Expr
	span    source.Span
}

// NewUnaryExpr constructs a unary expression starting at the operator.
func NewUnaryExpr(op UnaryOp, opSpan source.Span, operand Expr) *UnaryExpr {
	return &UnaryExpr{Op: op, Operand: operand, span: source.Merge(opSpan, operand.Span())}
}

func (e *UnaryExpr) Span() source.Span { return e.span }
func (*UnaryExpr) exprNode()           {}

// BinaryExpr covers arithmetic, comparison, bitwise and shift operators.
type BinaryExpr struct {
	Left  Expr
	Op    BinaryOp
	Right Expr
	span  source.Span
}

// NewBinaryExpr constructs a binary expression.
func NewBinaryExpr(left Expr, op BinaryOp, right Expr) *BinaryExpr {
	return &BinaryExpr{Left: left, Op: op, Right: right, span: source.Merge(left.Span(), right.Span())}
}

func (e *BinaryExpr) Span() source.Span { return e.span }
func (*BinaryExpr) exprNode()           {}

// LogicalExpr is `&&` or `||`.
type LogicalExpr struct {
	Left  Expr
	Op    LogicalOp
	Right Expr
	span  source.Span
}

// NewLogicalExpr constructs a logical expression.
func NewLogicalExpr(left Expr, op LogicalOp, right Expr) *LogicalExpr {
	return &LogicalExpr{Left: left, Op: op, Right: right, span: source.Merge(left.Span(), right.Span())}
}

func (e *LogicalExpr) Span() source.Span { return e.span }
func (*LogicalExpr) exprNode()           {}

// CallExpr is a function call. The span ends at the closing parenthesis.
type CallExpr struct {
	Callee Expr
	Args   []Expr
	span   source.Span
}

// NewCallExpr constructs a call expression.
func NewCallExpr(callee Expr, args []Expr, closing source.Span) *CallExpr {
	return &CallExpr{Callee: callee, Args: args, span: source.Merge(callee.Span(), closing)}
}

func (e *CallExpr) Span() source.Span { return e.span }
func (*CallExpr) exprNode()           {}

// ArrayExpr is an array literal.
type ArrayExpr struct {
	Elements []Expr
	span     source.Span
}

// NewArrayExpr constructs an array literal spanning its brackets.
func NewArrayExpr(elements []Expr, open, closing source.Span) *ArrayExpr {
	return &ArrayExpr{Elements: elements, span: source.Merge(open, closing)}
}

func (e *ArrayExpr) Span() source.Span { return e.span }
func (*ArrayExpr) exprNode()           {}

// IndexExpr is `target[index]`.
type IndexExpr struct {
	Target Expr
	Index  Expr
	span   source.Span
}

// NewIndexExpr constructs an index expression ending at the closing bracket.
func NewIndexExpr(target, index Expr, closing source.Span) *IndexExpr {
	return &IndexExpr{Target: target, Index: index, span: source.Merge(target.Span(), closing)}
}

func (e *IndexExpr) Span() source.Span { return e.span }
func (*IndexExpr) exprNode()           {}

// DotExpr is member access, `object.property`.
type DotExpr struct {
	Object   Expr
	Property Expr
	span     source.Span
}

// NewDotExpr constructs a member access.
func NewDotExpr(object, property Expr) *DotExpr {
	return &DotExpr{Object: object, Property: property, span: source.Merge(object.Span(), property.Span())}
}

func (e *DotExpr) Span() source.Span { return e.span }
func (*DotExpr) exprNode()           {}

// NamespaceExpr is namespace access, `object::property`.
type NamespaceExpr struct {
	Object   Expr
	Property Expr
	span     source.Span
}

// NewNamespaceExpr constructs a namespace access.
func NewNamespaceExpr(object, property Expr) *NamespaceExpr {
	return &NamespaceExpr{Object: object, Property: property, span: source.Merge(object.Span(), property.Span())}
}

func (e *NamespaceExpr) Span() source.Span { return e.span }
func (*NamespaceExpr) exprNode()           {}

// RangeExpr is `low..high`.
type RangeExpr struct {
	Low  Expr
	High Expr
	span source.Span
}

// NewRangeExpr constructs a range.
func NewRangeExpr(low, high Expr) *RangeExpr {
	return &RangeExpr{Low: low, High: high, span: source.Merge(low.Span(), high.Span())}
}

func (e *RangeExpr) Span() source.Span { return e.span }
func (*RangeExpr) exprNode()           {}

// TernaryExpr is `test ? consequent : alternate`.
type TernaryExpr struct {
	Test       Expr
	Consequent Expr
	Alternate  Expr
	span       source.Span
}

// NewTernaryExpr constructs a conditional expression.
func NewTernaryExpr(test, consequent, alternate Expr) *TernaryExpr {
	return &TernaryExpr{
		Test:       test,
		Consequent: consequent,
		Alternate:  alternate,
		span:       source.Merge(test.Span(), alternate.Span()),
	}
}

func (e *TernaryExpr) Span() source.Span { return e.span }
func (*TernaryExpr) exprNode()           {}

// AssignExpr is an assignment or compound assignment.
type AssignExpr struct {
	Target Expr
	Op     AssignOp
	Value  Expr
	span   source.Span
}

// NewAssignExpr constructs an assignment.
func NewAssignExpr(target Expr, op AssignOp, value Expr) *AssignExpr {
	return &AssignExpr{Target: target, Op: op, Value: value, span: source.Merge(target.Span(), value.Span())}
}

func (e *AssignExpr) Span() source.Span { return e.span }
func (*AssignExpr) exprNode()           {}

// FnExpr is an anonymous function. Exactly one of Body and Implicit is set.
type FnExpr struct {
	Generics   []*GenericParam
	Params     []*Param
	ReturnType TypeExpr
	Body       *Block
	Implicit   Expr
	span       source.Span
}

// NewFnExpr constructs an anonymous function starting at the `fn` keyword.
func NewFnExpr(fnSpan source.Span, generics []*GenericParam, params []*Param, ret TypeExpr, body *Block, implicit Expr) *FnExpr {
	e := &FnExpr{Generics: generics, Params: params, ReturnType: ret, Body: body, Implicit: implicit}
	if body != nil {
		e.span = source.Merge(fnSpan, body.Span())
	} else {
		e.span = source.Merge(fnSpan, implicit.Span())
	}
	return e
}

func (e *FnExpr) Span() source.Span { return e.span }
func (*FnExpr) exprNode()           {}
