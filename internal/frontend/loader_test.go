package frontend

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pebble-lang/pebble/internal/ast"
	"github.com/pebble-lang/pebble/internal/diag"
	"github.com/pebble-lang/pebble/internal/errext"
	"github.com/pebble-lang/pebble/internal/errext/exitcodes"
)

func newTestFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}
	return fs
}

func TestLoad(t *testing.T) {
	fs := newTestFs(t, map[string]string{
		"/src/main.peb": "// entry\n@let a = 1 + 2;\nprintln a;\n",
	})
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	l := &Loader{Fs: fs, Logger: logger}
	unit, err := l.Load("/src/main.peb")
	require.NoError(t, err)

	assert.Equal(t, "/src/main.peb", unit.Path)
	assert.Equal(t, 0, unit.Diagnostics.Len())
	require.Len(t, unit.File.Statements, 2)
	assert.Equal(t, "(let a = (+ 1 2))", ast.Sprint(unit.File.Statements[0]))
	assert.Len(t, unit.Comments, 1)
	assert.True(t, unit.Tokens[len(unit.Tokens)-1].IsEOF())

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.DebugLevel, entry.Level)
	assert.Equal(t, "/src/main.peb", entry.Data["file"])
	assert.Equal(t, len(unit.Tokens), entry.Data["tokens"])
	assert.Equal(t, 1, entry.Data["comments"])
	assert.Equal(t, 2, entry.Data["statements"])
	assert.Equal(t, 0, entry.Data["diagnostics"])
	assert.Contains(t, entry.Data, "elapsed")
}

func TestLoadReportsDiagnostics(t *testing.T) {
	fs := newTestFs(t, map[string]string{
		"/bad.peb": "a = 1\n@let b = 2;\n#\n",
	})
	unit, err := (&Loader{Fs: fs}).Load("/bad.peb")
	require.NoError(t, err)

	codes := unit.Diagnostics.Codes()
	require.Len(t, codes, 3)
	assert.Equal(t, diag.Code("LEXER_UNKNOWN_TOKEN"), codes[0])
	assert.Equal(t, diag.Code("SYNTAX_EXPECTED_SEMI_COLON"), codes[1])
	for _, d := range unit.Diagnostics.Items() {
		assert.Equal(t, "/bad.peb", d.Filename)
	}
	require.Len(t, unit.File.Statements, 1, "the declaration after the error still parses")
}

func TestLoadMaxErrors(t *testing.T) {
	fs := newTestFs(t, map[string]string{
		"/many.peb": "a\nb\nc\nd\n",
	})
	unit, err := (&Loader{Fs: fs, MaxErrors: 2}).Load("/many.peb")
	require.NoError(t, err)
	assert.Equal(t, 2, unit.Diagnostics.Len())
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()
	fs := newTestFs(t, map[string]string{"/main.peb": ";", "/main.txt": ";"})

	testdata := map[string]struct {
		loader   *Loader
		path     string
		exitCode exitcodes.ExitCode
	}{
		"wrong extension":  {&Loader{Fs: fs}, "/main.txt", exitcodes.InvalidSourceExt},
		"custom extension": {&Loader{Fs: fs, Extension: ".txt"}, "/main.peb", exitcodes.InvalidSourceExt},
		"missing file":     {&Loader{Fs: fs}, "/nope.peb", exitcodes.SourceUnreadable},
	}
	for name, data := range testdata {
		data := data
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := data.loader.Load(data.path)
			require.Error(t, err)
			assert.Equal(t, data.exitCode, errext.ExitCodeOf(err, 0))
		})
	}

	_, err := (&Loader{Fs: fs}).Load("/main.txt")
	assert.ErrorIs(t, err, ErrInvalidExtension)

	unit, err := (&Loader{Fs: fs, Extension: ".txt"}).Load("/main.txt")
	require.NoError(t, err)
	assert.Len(t, unit.File.Statements, 1)
}

func TestLoadAll(t *testing.T) {
	fs := newTestFs(t, map[string]string{
		"/a.peb": "x;",
		"/b.peb": "y",
	})
	l := &Loader{Fs: fs}

	units, err := l.LoadAll([]string{"/a.peb", "/b.peb"})
	require.NoError(t, err)
	require.Len(t, units, 2)
	bag := Diagnostics(units)
	require.Equal(t, 1, bag.Len())
	assert.Equal(t, "/b.peb", bag.At(0).Filename)

	units, err = l.LoadAll([]string{"/a.peb", "/missing.peb", "/b.peb"})
	require.Error(t, err)
	assert.Len(t, units, 1)
}
