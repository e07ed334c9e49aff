package ast

import "github.com/pebble-lang/pebble/internal/source"

// Block is a brace-delimited statement list.
type Block struct {
	Statements []Stmt
	span       source.Span
}

// NewBlock constructs a block spanning its braces.
func NewBlock(stmts []Stmt, open, closing source.Span) *Block {
	return &Block{Statements: stmts, span: source.Merge(open, closing)}
}

// Span returns the block span.
func (b *Block) Span() source.Span { return b.span }
func (*Block) stmtNode()           {}

// ExprStmt is an expression terminated by `;`.
type ExprStmt struct {
	Expr Expr
	span source.Span
}

// NewExprStmt constructs an expression statement ending at its `;`.
func NewExprStmt(expr Expr, semi source.Span) *ExprStmt {
	return &ExprStmt{Expr: expr, span: source.Merge(expr.Span(), semi)}
}

func (s *ExprStmt) Span() source.Span { return s.span }
func (*ExprStmt) stmtNode()           {}

// EmptyStmt is a lone `;`.
type EmptyStmt struct {
	span source.Span
}

// NewEmptyStmt constructs an empty statement.
func NewEmptyStmt(span source.Span) *EmptyStmt {
	return &EmptyStmt{span: span}
}

func (s *EmptyStmt) Span() source.Span { return s.span }
func (*EmptyStmt) stmtNode()           {}

// PrintlnStmt is `println value;`.
type PrintlnStmt struct {
	Value Expr
	span  source.Span
}

// NewPrintlnStmt constructs a println statement.
func NewPrintlnStmt(kw source.Span, value Expr, semi source.Span) *PrintlnStmt {
	return &PrintlnStmt{Value: value, span: source.Merge(kw, semi)}
}

func (s *PrintlnStmt) Span() source.Span { return s.span }
func (*PrintlnStmt) stmtNode()           {}

// IfStmt is `if (test) body [else alternate]`. Else is nil, another IfStmt,
// a Block or a single statement.
type IfStmt struct {
	Test Expr
	Body Stmt
	Else Stmt
	span source.Span
}

// NewIfStmt constructs an if statement.
func NewIfStmt(kw source.Span, test Expr, body, alternate Stmt) *IfStmt {
	end := body.Span()
	if alternate != nil {
		end = alternate.Span()
	}
	return &IfStmt{Test: test, Body: body, Else: alternate, span: source.Merge(kw, end)}
}

func (s *IfStmt) Span() source.Span { return s.span }
func (*IfStmt) stmtNode()           {}

// WhileStmt is `while (test) body`.
type WhileStmt struct {
	Test Expr
	Body Stmt
	span source.Span
}

// NewWhileStmt constructs a while loop.
func NewWhileStmt(kw source.Span, test Expr, body Stmt) *WhileStmt {
	return &WhileStmt{Test: test, Body: body, span: source.Merge(kw, body.Span())}
}

func (s *WhileStmt) Span() source.Span { return s.span }
func (*WhileStmt) stmtNode()           {}

// ForStmt is `for (item in iterator) body`.
type ForStmt struct {
	Item     *Ident
	Iterator Expr
	Body     Stmt
	span     source.Span
}

// NewForStmt constructs a for-in loop.
func NewForStmt(kw source.Span, item *Ident, iterator Expr, body Stmt) *ForStmt {
	return &ForStmt{Item: item, Iterator: iterator, Body: body, span: source.Merge(kw, body.Span())}
}

func (s *ForStmt) Span() source.Span { return s.span }
func (*ForStmt) stmtNode()           {}

// LoopStmt is `loop [(count)] { ... }`. Count is nil for an unbounded loop.
type LoopStmt struct {
	Count Expr
	Body  *Block
	span  source.Span
}

// NewLoopStmt constructs a loop.
func NewLoopStmt(kw source.Span, count Expr, body *Block) *LoopStmt {
	return &LoopStmt{Count: count, Body: body, span: source.Merge(kw, body.Span())}
}

func (s *LoopStmt) Span() source.Span { return s.span }
func (*LoopStmt) stmtNode()           {}

// BreakStmt is `break;`.
type BreakStmt struct {
	span source.Span
}

// NewBreakStmt constructs a break statement.
func NewBreakStmt(kw, semi source.Span) *BreakStmt {
	return &BreakStmt{span: source.Merge(kw, semi)}
}

func (s *BreakStmt) Span() source.Span { return s.span }
func (*BreakStmt) stmtNode()           {}

// ContinueStmt is `continue;`.
type ContinueStmt struct {
	span source.Span
}

// NewContinueStmt constructs a continue statement.
func NewContinueStmt(kw, semi source.Span) *ContinueStmt {
	return &ContinueStmt{span: source.Merge(kw, semi)}
}

func (s *ContinueStmt) Span() source.Span { return s.span }
func (*ContinueStmt) stmtNode()           {}

// ReturnStmt is `return [value];`.
type ReturnStmt struct {
	Value Expr
	span  source.Span
}

// NewReturnStmt constructs a return statement. value may be nil.
func NewReturnStmt(kw source.Span, value Expr, semi source.Span) *ReturnStmt {
	return &ReturnStmt{Value: value, span: source.Merge(kw, semi)}
}

func (s *ReturnStmt) Span() source.Span { return s.span }
func (*ReturnStmt) stmtNode()           {}

// CrashStmt is `crash value;`, raising an error.
type CrashStmt struct {
	Value Expr
	span  source.Span
}

// NewCrashStmt constructs a crash statement.
func NewCrashStmt(kw source.Span, value Expr, semi source.Span) *CrashStmt {
	return &CrashStmt{Value: value, span: source.Merge(kw, semi)}
}

func (s *CrashStmt) Span() source.Span { return s.span }
func (*CrashStmt) stmtNode()           {}

// TryStmt is `try { ... } [recover (params) { ... }]`.
type TryStmt struct {
	Body    *Block
	Recover *RecoverBlock
	span    source.Span
}

// NewTryStmt constructs a try statement.
func NewTryStmt(kw source.Span, body *Block, recover *RecoverBlock) *TryStmt {
	end := body.Span()
	if recover != nil {
		end = recover.Span()
	}
	return &TryStmt{Body: body, Recover: recover, span: source.Merge(kw, end)}
}

func (s *TryStmt) Span() source.Span { return s.span }
func (*TryStmt) stmtNode()           {}

// RecoverBlock is the handler of a TryStmt.
type RecoverBlock struct {
	Params []*Param
	Body   *Block
	span   source.Span
}

// NewRecoverBlock constructs a recover handler starting at the keyword.
func NewRecoverBlock(kw source.Span, params []*Param, body *Block) *RecoverBlock {
	return &RecoverBlock{Params: params, Body: body, span: source.Merge(kw, body.Span())}
}

func (r *RecoverBlock) Span() source.Span { return r.span }
