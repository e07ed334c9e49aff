package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"

	"github.com/pebble-lang/pebble/internal/errext"
	"github.com/pebble-lang/pebble/internal/errext/exitcodes"
)

func TestConfigApply(t *testing.T) {
	full := Config{
		Color:     null.BoolFrom(false),
		Format:    null.StringFrom(OutputJSON),
		LogFormat: null.StringFrom(LogJSON),
		MaxErrors: null.IntFrom(3),
		Extension: null.StringFrom(".pbl"),
	}
	assert.Equal(t, full, NewConfig().Apply(full))

	partial := NewConfig().Apply(Config{MaxErrors: null.IntFrom(7)})
	assert.Equal(t, int64(7), partial.MaxErrors.Int64)
	assert.Equal(t, OutputSexpr, partial.Format.String)
	assert.False(t, partial.Format.Valid, "defaults stay unset")
}

func TestParseFileFormats(t *testing.T) {
	t.Parallel()
	testdata := []struct {
		name string
		path string
		data string
	}{
		{"toml", "pebble.toml", "format = \"json\"\nmax_errors = 4\ncolor = false\n"},
		{"yaml", "pebble.yaml", "format: json\nmax_errors: 4\ncolor: false\n"},
		{"yml", "conf/pebble.yml", "format: json\nmax_errors: 4\ncolor: false\n"},
	}
	for _, data := range testdata {
		data := data
		t.Run(data.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := Parse([]byte(data.data), FormatAuto, data.path)
			require.NoError(t, err)
			assert.Equal(t, null.StringFrom(OutputJSON), cfg.Format)
			assert.Equal(t, null.IntFrom(4), cfg.MaxErrors)
			assert.Equal(t, null.BoolFrom(false), cfg.Color)
			assert.False(t, cfg.LogFormat.Valid)
			assert.False(t, cfg.Extension.Valid)
		})
	}
}

func TestParseInvalidFile(t *testing.T) {
	_, err := Parse([]byte("format = ["), FormatTOML, "pebble.toml")
	require.Error(t, err)
	assert.Equal(t, exitcodes.InvalidConfig, errext.ExitCodeOf(err, 0))
	assert.Contains(t, err.Error(), "pebble.toml")
}

func TestFromEnv(t *testing.T) {
	cfg, err := FromEnv(map[string]string{
		"PEBBLE_FORMAT":     "tree",
		"PEBBLE_MAX_ERRORS": "12",
		"PEBBLE_EXTENSION":  ".pbl",
		"UNRELATED":         "x",
	})
	require.NoError(t, err)
	assert.Equal(t, null.StringFrom(OutputTree), cfg.Format)
	assert.Equal(t, null.IntFrom(12), cfg.MaxErrors)
	assert.Equal(t, null.StringFrom(".pbl"), cfg.Extension)
	assert.False(t, cfg.Color.Valid)
	assert.False(t, cfg.LogFormat.Valid)
}

func TestFromEnvNoColor(t *testing.T) {
	cfg, err := FromEnv(map[string]string{"NO_COLOR": "", "PEBBLE_COLOR": "true"})
	require.NoError(t, err)
	assert.Equal(t, null.BoolFrom(false), cfg.Color)
}

func TestValidate(t *testing.T) {
	t.Parallel()
	testdata := map[string]struct {
		cfg Config
		msg string
	}{
		"format":     {Config{Format: null.StringFrom("xml")}, `unknown output format "xml"`},
		"log format": {Config{LogFormat: null.StringFrom("logfmt")}, `unknown log format "logfmt"`},
		"max errors": {Config{MaxErrors: null.IntFrom(-1)}, "max errors must not be negative"},
		"extension":  {Config{Extension: null.StringFrom("peb")}, "must start with a dot"},
	}
	for name, data := range testdata {
		data := data
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			err := NewConfig().Apply(data.cfg).Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), data.msg)
			assert.Equal(t, exitcodes.InvalidConfig, errext.ExitCodeOf(err, 0))
		})
	}

	assert.NoError(t, NewConfig().Validate())
}

func TestConsolidateOrder(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/work/pebble.toml",
		[]byte("format = \"json\"\nmax_errors = 2\nextension = \".pbl\"\n"), 0o644))

	env := map[string]string{"PEBBLE_MAX_ERRORS": "5", "PEBBLE_FORMAT": "tree"}
	flags := Config{Format: null.StringFrom(OutputSexpr)}

	cfg, err := Consolidate(fs, "/work", "", env, flags)
	require.NoError(t, err)
	assert.Equal(t, ".pbl", cfg.Extension.String, "file overrides defaults")
	assert.Equal(t, int64(5), cfg.MaxErrors.Int64, "env overrides file")
	assert.Equal(t, OutputSexpr, cfg.Format.String, "flags override env")
	assert.True(t, cfg.Color.Bool)
}

func TestConsolidateExplicitPath(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/etc/pebble.yaml", []byte("log_format: json\n"), 0o644))

	cfg, err := Consolidate(fs, "/work", "/etc/pebble.yaml", nil, Config{})
	require.NoError(t, err)
	assert.Equal(t, LogJSON, cfg.LogFormat.String)

	_, err = Consolidate(fs, "/work", "/missing.toml", nil, Config{})
	require.Error(t, err)
	assert.Equal(t, exitcodes.InvalidConfig, errext.ExitCodeOf(err, 0))
}

func TestConsolidateRejectsInvalid(t *testing.T) {
	_, err := Consolidate(afero.NewMemMapFs(), "/", "", map[string]string{"PEBBLE_FORMAT": "xml"}, Config{})
	require.Error(t, err)
	assert.Equal(t, exitcodes.InvalidConfig, errext.ExitCodeOf(err, 0))
}

func TestFindFilePrefersTOML(t *testing.T) {
	fs := afero.NewMemMapFs()
	assert.Empty(t, FindFile(fs, "/p"))
	require.NoError(t, afero.WriteFile(fs, "/p/pebble.yml", nil, 0o644))
	assert.Equal(t, "/p/pebble.yml", FindFile(fs, "/p"))
	require.NoError(t, afero.WriteFile(fs, "/p/pebble.toml", nil, 0o644))
	assert.Equal(t, "/p/pebble.toml", FindFile(fs, "/p"))
}
