package parser

// opStack records the precedence of every operator whose right operand is
// being parsed. A barrier (precedence 0) isolates bracketed sub-expressions.
type opStack []precedence

// push records prec and returns the matching pop. Callers defer it so the
// stack unwinds on error paths too.
func (s *opStack) push(prec precedence) func() {
	*s = append(*s, prec)
	n := len(*s)
	return func() { *s = (*s)[:n-1] }
}

func (s *opStack) barrier() func() { return s.push(precBarrier) }

// yields reports whether an operator of precedence prec must be left to an
// enclosing operand loop instead of extending the current expression.
func (s opStack) yields(prec precedence) bool {
	if len(s) == 0 {
		return false
	}
	return prec <= s[len(s)-1]
}
