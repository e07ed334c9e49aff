package diag

import (
	"fmt"
	"strings"

	"github.com/pebble-lang/pebble/internal/errext/exitcodes"
)

// Bag is an ordered, append-only collection of diagnostics.
type Bag struct {
	items []Diagnostic
}

// NewBag returns an empty bag.
func NewBag() *Bag {
	return &Bag{}
}

// Add appends d.
func (b *Bag) Add(d Diagnostic) {
	b.items = append(b.items, d)
}

// Merge appends every diagnostic of other, in order.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	b.items = append(b.items, other.items...)
}

// Len returns the number of diagnostics collected.
func (b *Bag) Len() int {
	return len(b.items)
}

// Items returns a copy of the collected diagnostics.
func (b *Bag) Items() []Diagnostic {
	out := make([]Diagnostic, len(b.items))
	copy(out, b.items)
	return out
}

// At returns the i-th diagnostic.
func (b *Bag) At(i int) Diagnostic {
	return b.items[i]
}

// HasErrors reports whether any diagnostic has error severity.
func (b *Bag) HasErrors() bool {
	for _, d := range b.items {
		if d.Severity == SeverityError || d.Severity == "" {
			return true
		}
	}
	return false
}

// Codes lists the diagnostic codes in order.
func (b *Bag) Codes() []Code {
	codes := make([]Code, 0, len(b.items))
	for _, d := range b.items {
		codes = append(codes, d.Code)
	}
	return codes
}

// Err returns nil when the bag holds no errors, and otherwise an error that
// summarises them and carries the DiagnosticsReported exit code.
func (b *Bag) Err() error {
	if !b.HasErrors() {
		return nil
	}
	return &BagError{Diagnostics: b.Items()}
}

// BagError is the error form of a non-empty bag.
type BagError struct {
	Diagnostics []Diagnostic
}

func (e *BagError) Error() string {
	if len(e.Diagnostics) == 1 {
		return e.Diagnostics[0].Error()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d diagnostics reported", len(e.Diagnostics))
	for _, d := range e.Diagnostics {
		sb.WriteString("\n\t")
		sb.WriteString(d.Error())
	}
	return sb.String()
}

// ExitCode implements errext.HasExitCode.
func (e *BagError) ExitCode() exitcodes.ExitCode {
	return exitcodes.DiagnosticsReported
}
