package cmd

import (
	"github.com/pebble-lang/pebble/internal/diag"
	"github.com/pebble-lang/pebble/internal/frontend"
)

func newLoader(gs *GlobalState) *frontend.Loader {
	return &frontend.Loader{
		Fs:        gs.FS,
		Logger:    gs.Logger,
		Extension: gs.Config.Extension.String,
		MaxErrors: int(gs.Config.MaxErrors.Int64),
	}
}

// renderDiagnostics writes bag to stderr with source snippets from the
// already loaded units.
func renderDiagnostics(gs *GlobalState, bag *diag.Bag, units ...*frontend.Unit) {
	if bag.Len() == 0 {
		return
	}
	f := diag.NewFormatter(gs.Stderr, gs.FS, gs.colored(gs.Stderr))
	for _, u := range units {
		f.AddSource(u.Path, u.Source)
	}
	f.FormatAll(bag)
}
