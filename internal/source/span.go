package source

import "fmt"

// Position is a 1-based line and column. Columns count runes, not bytes.
type Position struct {
	Line   int
	Column int
}

// String returns `line:column`.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsValid reports whether the position refers to real source text.
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column > 0
}

// Before reports whether p comes strictly before q.
func (p Position) Before(q Position) bool {
	if p.Line != q.Line {
		return p.Line < q.Line
	}
	return p.Column < q.Column
}

// Span locates a token or node. Both ends are inclusive: End is the position
// of the last character covered.
type Span struct {
	Start Position
	End   Position
}

// NewSpan builds a span from raw coordinates.
func NewSpan(startLine, startCol, endLine, endCol int) Span {
	return Span{
		Start: Position{Line: startLine, Column: startCol},
		End:   Position{Line: endLine, Column: endCol},
	}
}

// Merge returns the span running from the start of a to the end of b.
func Merge(a, b Span) Span {
	return Span{Start: a.Start, End: b.End}
}

// String returns a human-readable representation of the span.
func (s Span) String() string {
	return fmt.Sprintf("%s-%s", s.Start, s.End)
}

// IsValid returns true if the span has valid location information.
func (s Span) IsValid() bool {
	return s.Start.IsValid() && s.End.IsValid()
}

// Width is the number of columns covered on the first line of the span.
// Multi-line spans report the width up to maxCol.
func (s Span) Width(maxCol int) int {
	if s.End.Line != s.Start.Line {
		return max(1, maxCol-s.Start.Column+1)
	}
	return max(1, s.End.Column-s.Start.Column+1)
}
