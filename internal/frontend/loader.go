// Package frontend loads pebble sources from a file system and runs them
// through the scanner and parser.
package frontend

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/pebble-lang/pebble/internal/ast"
	"github.com/pebble-lang/pebble/internal/diag"
	"github.com/pebble-lang/pebble/internal/errext"
	"github.com/pebble-lang/pebble/internal/errext/exitcodes"
	"github.com/pebble-lang/pebble/internal/lexer"
	"github.com/pebble-lang/pebble/internal/parser"
)

// DefaultExtension is the file extension of pebble sources.
const DefaultExtension = ".peb"

// ErrInvalidExtension is returned for paths without the configured extension.
var ErrInvalidExtension = errors.New("invalid source file extension")

// Unit is one loaded source file together with everything produced from it.
type Unit struct {
	Path        string
	Source      string
	Tokens      []lexer.Token
	Comments    []lexer.Token
	File        *ast.File
	Diagnostics *diag.Bag
}

// Loader reads source files from Fs. The zero value of Extension means
// DefaultExtension; a nil Logger discards log output.
type Loader struct {
	Fs        afero.Fs
	Logger    logrus.FieldLogger
	Extension string
	MaxErrors int
}

func (l *Loader) logger() logrus.FieldLogger {
	if l.Logger == nil {
		logger := logrus.New()
		logger.SetOutput(io.Discard)
		return logger
	}
	return l.Logger
}

func (l *Loader) extension() string {
	if l.Extension == "" {
		return DefaultExtension
	}
	return l.Extension
}

// Load reads and parses the file at path. Scanner and parser diagnostics are
// collected in the unit; the error is reserved for files that could not be
// loaded at all.
func (l *Loader) Load(path string) (*Unit, error) {
	if ext := l.extension(); filepath.Ext(path) != ext {
		return nil, errext.WithExitCodeIfNone(
			fmt.Errorf("%w: %q does not end in %s", ErrInvalidExtension, path, ext), exitcodes.InvalidSourceExt)
	}

	data, err := afero.ReadFile(l.Fs, path)
	if err != nil {
		return nil, errext.WithExitCodeIfNone(
			fmt.Errorf("couldn't read %q: %w", path, err), exitcodes.SourceUnreadable)
	}
	return l.Parse(path, string(data)), nil
}

// Parse scans and parses src as the contents of path without touching Fs.
func (l *Loader) Parse(path, src string) *Unit {
	start := time.Now()
	scanned := lexer.Scan(src)

	file, bag := parser.ParseScanned(scanned, parser.WithFilename(path), parser.WithMaxErrors(l.MaxErrors))

	unit := &Unit{
		Path:        path,
		Source:      src,
		Tokens:      scanned.Tokens,
		Comments:    scanned.Comments,
		File:        file,
		Diagnostics: bag,
	}

	l.logger().WithFields(logrus.Fields{
		"file":        path,
		"tokens":      len(unit.Tokens),
		"comments":    len(unit.Comments),
		"statements":  len(file.Statements),
		"diagnostics": bag.Len(),
		"elapsed":     time.Since(start),
	}).Debug("Parsed source file")

	return unit
}

// LoadAll loads paths in order and stops at the first file that cannot be
// loaded. Units with diagnostics do not stop the run.
func (l *Loader) LoadAll(paths []string) ([]*Unit, error) {
	units := make([]*Unit, 0, len(paths))
	for _, path := range paths {
		unit, err := l.Load(path)
		if err != nil {
			return units, err
		}
		units = append(units, unit)
	}
	return units, nil
}

// Diagnostics merges the diagnostics of units in order.
func Diagnostics(units []*Unit) *diag.Bag {
	bag := diag.NewBag()
	for _, u := range units {
		bag.Merge(u.Diagnostics)
	}
	return bag
}
