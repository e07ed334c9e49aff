package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/afero"

	"github.com/pebble-lang/pebble/internal/source"
)

// Formatter formats diagnostics in a Rust-style format with source code snippets.
type Formatter struct {
	out         io.Writer
	fs          afero.Fs
	sourceCache map[string]*source.LineIndex

	errorColor   *color.Color
	warningColor *color.Color
	noteColor    *color.Color
	gutterColor  *color.Color
	boldColor    *color.Color
}

// NewFormatter creates a diagnostic formatter writing to out. Sources not
// registered with AddSource are read from fs on demand; fs may be nil.
func NewFormatter(out io.Writer, fs afero.Fs, colored bool) *Formatter {
	f := &Formatter{
		out:          out,
		fs:           fs,
		sourceCache:  make(map[string]*source.LineIndex),
		errorColor:   color.New(color.FgRed, color.Bold),
		warningColor: color.New(color.FgYellow, color.Bold),
		noteColor:    color.New(color.FgCyan, color.Bold),
		gutterColor:  color.New(color.FgBlue, color.Bold),
		boldColor:    color.New(color.Bold),
	}
	for _, c := range []*color.Color{f.errorColor, f.warningColor, f.noteColor, f.gutterColor, f.boldColor} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return f
}

// AddSource registers already-loaded source text for filename.
func (f *Formatter) AddSource(filename, src string) {
	f.sourceCache[filename] = source.NewLineIndex(src)
}

// LoadSource loads source code for a file (cached).
func (f *Formatter) LoadSource(filename string) (*source.LineIndex, error) {
	if idx, ok := f.sourceCache[filename]; ok {
		return idx, nil
	}
	if filename == "" || f.fs == nil {
		return nil, fmt.Errorf("no source available for %q", filename)
	}
	data, err := afero.ReadFile(f.fs, filename)
	if err != nil {
		return nil, err
	}
	idx := source.NewLineIndex(string(data))
	f.sourceCache[filename] = idx
	return idx, nil
}

// FormatAll formats every diagnostic of the bag, separated by blank lines.
func (f *Formatter) FormatAll(b *Bag) {
	for i, d := range b.Items() {
		if i > 0 {
			fmt.Fprintln(f.out)
		}
		f.Format(d)
	}
}

// Format formats and prints a diagnostic in Rust-style format.
func (f *Formatter) Format(d Diagnostic) {
	f.printHeader(d)
	if !d.Span.IsValid() {
		f.printHelp(d)
		return
	}

	idx, err := f.LoadSource(d.Filename)
	if err != nil {
		// If we can't load source, fall back to the location only
		fmt.Fprintf(f.out, "  --> %s\n", d.Location())
		f.printHelp(d)
		return
	}
	f.printSnippet(idx, d)
	f.printHelp(d)
}

func (f *Formatter) severityColor(s Severity) *color.Color {
	switch s {
	case SeverityWarning:
		return f.warningColor
	case SeverityNote:
		return f.noteColor
	default:
		return f.errorColor
	}
}

// printHeader prints the error header (error[CODE]: message).
func (f *Formatter) printHeader(d Diagnostic) {
	severity := string(d.Severity)
	if severity == "" {
		severity = string(SeverityError)
	}
	label := severity
	if d.Code != "" {
		label = fmt.Sprintf("%s[%s]", severity, d.Code)
	}
	fmt.Fprintf(f.out, "%s%s\n", f.severityColor(d.Severity).Sprint(label), f.boldColor.Sprintf(": %s", d.Message))
}

// printSnippet prints the primary line with one line of context either side
// and a caret underline below the span.
func (f *Formatter) printSnippet(idx *source.LineIndex, d Diagnostic) {
	line := d.Span.Start.Line
	contextStart := max(1, line-1)
	contextEnd := min(idx.LineCount(), line+1)
	if d.Span.End.Line > line {
		contextEnd = line
	}

	lineNumWidth := len(fmt.Sprintf("%d", contextEnd))
	pad := strings.Repeat(" ", lineNumWidth)
	gutter := f.gutterColor.Sprint("|")

	fmt.Fprintf(f.out, "%s %s\n", pad, f.gutterColor.Sprintf("--> %s", d.Location()))
	fmt.Fprintf(f.out, "%s %s\n", pad, gutter)

	for n := contextStart; n <= contextEnd; n++ {
		content := idx.Line(n)
		num := f.gutterColor.Sprintf("%*d", lineNumWidth, n)
		fmt.Fprintf(f.out, "%s %s %s\n", num, gutter, content)
		if n == line {
			width := d.Span.Width(len([]rune(content)))
			underline := strings.Repeat(" ", max(0, d.Span.Start.Column-1)) + strings.Repeat("^", width)
			fmt.Fprintf(f.out, "%s %s %s\n", pad, gutter, f.severityColor(d.Severity).Sprint(underline))
		}
	}
	fmt.Fprintf(f.out, "%s %s\n", pad, gutter)
}

// printHelp prints help text.
func (f *Formatter) printHelp(d Diagnostic) {
	if d.Help != "" {
		fmt.Fprintf(f.out, "%s %s\n", f.noteColor.Sprint("help:"), d.Help)
	}
}
