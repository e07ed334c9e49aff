package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackerAdvance(t *testing.T) {
	tr := NewTracker()
	require.Equal(t, Position{1, 1}, tr.Current())

	tr.MarkStart()
	for _, r := range "ab" {
		tr.Advance(r)
	}
	tr.MarkEnd()
	assert.Equal(t, NewSpan(1, 1, 1, 2), tr.Span())

	tr.Advance('\n')
	assert.Equal(t, Position{2, 1}, tr.Current())
	assert.Equal(t, Position{1, 3}, tr.Last())

	tr.MarkStart()
	tr.Advance('c')
	tr.MarkEnd()
	assert.Equal(t, NewSpan(2, 1, 2, 1), tr.Span())
}

func TestMerge(t *testing.T) {
	a := NewSpan(1, 1, 1, 3)
	b := NewSpan(2, 4, 2, 9)
	assert.Equal(t, NewSpan(1, 1, 2, 9), Merge(a, b))
	assert.Equal(t, "1:1-2:9", Merge(a, b).String())
	assert.False(t, Span{}.IsValid())
}

func TestSpanWidth(t *testing.T) {
	assert.Equal(t, 3, NewSpan(1, 2, 1, 4).Width(80))
	assert.Equal(t, 1, NewSpan(1, 5, 1, 5).Width(80))
	assert.Equal(t, 6, NewSpan(1, 5, 3, 1).Width(10))
}

func TestLineIndex(t *testing.T) {
	idx := NewLineIndex("ab\nçd\r\n\nlast")

	tests := []struct {
		offset int
		want   Position
	}{
		{0, Position{1, 1}},
		{1, Position{1, 2}},
		{3, Position{2, 1}},
		{4, Position{2, 2}},
		{7, Position{3, 1}},
		{8, Position{4, 1}},
		{11, Position{4, 4}},
		{-3, Position{1, 1}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, idx.Position(tt.offset), "offset %d", tt.offset)
	}

	assert.Equal(t, "çd", idx.Line(2))
	assert.Equal(t, "", idx.Line(3))
	assert.Equal(t, "last", idx.Line(4))
	assert.Equal(t, "", idx.Line(9))
	assert.Equal(t, 4, idx.LineCount())
}
