package source

// Tracker maintains the running cursor of a scan. It is advanced once per
// consumed rune and snapshots token boundaries into a pending span.
type Tracker struct {
	pos     Position
	last    Position
	pending Span
}

// NewTracker returns a tracker positioned before the first character.
func NewTracker() *Tracker {
	return &Tracker{pos: Position{Line: 1, Column: 1}}
}

// Advance records that r was consumed.
func (t *Tracker) Advance(r rune) {
	t.last = t.pos
	if r == '\n' {
		t.pos.Line++
		t.pos.Column = 1
		return
	}
	t.pos.Column++
}

// Current is the position of the next character to be consumed.
func (t *Tracker) Current() Position { return t.pos }

// Last is the position of the most recently consumed character.
func (t *Tracker) Last() Position { return t.last }

// MarkStart opens the pending span at the next character.
func (t *Tracker) MarkStart() { t.pending.Start = t.pos }

// MarkEnd closes the pending span at the last consumed character.
func (t *Tracker) MarkEnd() { t.pending.End = t.last }

// Span returns the pending span.
func (t *Tracker) Span() Span { return t.pending }
