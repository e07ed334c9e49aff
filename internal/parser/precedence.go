package parser

import (
	"github.com/pebble-lang/pebble/internal/ast"
	"github.com/pebble-lang/pebble/internal/lexer"
)

type precedence int

const (
	precBarrier precedence = iota
	precAssign
	precColon
	precTernary
	precLogicalOr
	precLogicalAnd
	precBitOr
	precBitAnd
	precEquality
	precComparison
	precRange
	precShift
	precAdditive
	precMultiplicative
	precPower
	precUnary
	precCall
	precIndex
	precDot
	precNamespace
)

type binaryInfo struct {
	op   ast.BinaryOp
	prec precedence
}

// binaryOps omits `>`, which the parser resolves against a following `>`.
var binaryOps = map[lexer.Operator]binaryInfo{
	lexer.OpAdd:          {ast.OpAdd, precAdditive},
	lexer.OpSub:          {ast.OpSub, precAdditive},
	lexer.OpMul:          {ast.OpMul, precMultiplicative},
	lexer.OpDiv:          {ast.OpDiv, precMultiplicative},
	lexer.OpRem:          {ast.OpRem, precMultiplicative},
	lexer.OpPower:        {ast.OpPower, precPower},
	lexer.OpEquals:       {ast.OpEquals, precEquality},
	lexer.OpNotEquals:    {ast.OpNotEquals, precEquality},
	lexer.OpLess:         {ast.OpLess, precComparison},
	lexer.OpLessEqual:    {ast.OpLessEqual, precComparison},
	lexer.OpGreaterEqual: {ast.OpGreaterEqual, precComparison},
	lexer.OpShiftLeft:    {ast.OpShiftLeft, precShift},
	lexer.OpBitAnd:       {ast.OpBitAnd, precBitAnd},
	lexer.OpBitOr:        {ast.OpBitOr, precBitOr},
}

var logicalOps = map[lexer.Operator]struct {
	op   ast.LogicalOp
	prec precedence
}{
	lexer.OpLogicalAnd: {ast.OpAnd, precLogicalAnd},
	lexer.OpLogicalOr:  {ast.OpOr, precLogicalOr},
}

var unaryOps = map[lexer.Operator]ast.UnaryOp{
	lexer.OpAdd:       ast.OpPlus,
	lexer.OpSub:       ast.OpMinus,
	lexer.OpIncrement: ast.OpIncrement,
	lexer.OpDecrement: ast.OpDecrement,
	lexer.OpNot:       ast.OpNot,
	lexer.OpBitNot:    ast.OpBitNot,
}

var assignOps = map[lexer.Operator]ast.AssignOp{
	lexer.OpAssign:           ast.OpAssign,
	lexer.OpAddAssign:        ast.OpAddAssign,
	lexer.OpSubAssign:        ast.OpSubAssign,
	lexer.OpMulAssign:        ast.OpMulAssign,
	lexer.OpDivAssign:        ast.OpDivAssign,
	lexer.OpLogicalAndAssign: ast.OpAndAssign,
	lexer.OpLogicalOrAssign:  ast.OpOrAssign,
}
