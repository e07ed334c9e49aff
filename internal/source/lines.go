package source

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// LineIndex maps rune offsets to positions and serves line text to the
// diagnostic renderer.
type LineIndex struct {
	lines  []string
	starts []int // rune offset of the first character of each line
}

// NewLineIndex indexes src.
func NewLineIndex(src string) *LineIndex {
	idx := &LineIndex{lines: strings.Split(src, "\n")}
	offset := 0
	for _, line := range idx.lines {
		idx.starts = append(idx.starts, offset)
		offset += utf8.RuneCountInString(line) + 1
	}
	return idx
}

// Position converts a rune offset into a line and column. Offsets past the
// end clamp to the last line.
func (idx *LineIndex) Position(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	line := sort.Search(len(idx.starts), func(i int) bool {
		return idx.starts[i] > offset
	}) - 1
	if line < 0 {
		line = 0
	}
	return Position{Line: line + 1, Column: offset - idx.starts[line] + 1}
}

// Line returns the text of the 1-based line n, or "" when out of range.
// Carriage returns are stripped.
func (idx *LineIndex) Line(n int) string {
	if n < 1 || n > len(idx.lines) {
		return ""
	}
	return strings.TrimSuffix(idx.lines[n-1], "\r")
}

// LineCount returns the number of lines in the source.
func (idx *LineIndex) LineCount() int { return len(idx.lines) }
