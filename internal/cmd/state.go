package cmd

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/pebble-lang/pebble/internal/config"
)

// GlobalState holds everything the commands touch outside of their own
// arguments, so tests can run the CLI against buffers and an in-memory fs.
type GlobalState struct {
	Ctx context.Context

	FS      afero.Fs
	Getwd   func() (string, error)
	CmdArgs []string
	Env     map[string]string

	Stdout, Stderr *consoleWriter
	Logger         *logrus.Logger

	Flags  globalFlags
	Config config.Config

	OSExit func(int)
}

type globalFlags struct {
	ConfigFilePath string
	NoColor        bool
	Verbose        bool
	LogFormat      string
	MaxErrors      int
}

// NewGlobalState returns the state for a real process: the OS file system,
// arguments and environment, and the standard streams.
func NewGlobalState(ctx context.Context) *GlobalState {
	outMutex := &sync.Mutex{}
	stdoutTTY := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	stderrTTY := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	stdout := &consoleWriter{colorable.NewColorableStdout(), stdoutTTY, outMutex}
	stderr := &consoleWriter{colorable.NewColorableStderr(), stderrTTY, outMutex}

	env := BuildEnvMap(os.Environ())
	_, noColorSet := env["NO_COLOR"]

	return &GlobalState{
		Ctx:     ctx,
		FS:      afero.NewOsFs(),
		Getwd:   os.Getwd,
		CmdArgs: os.Args,
		Env:     env,
		Stdout:  stdout,
		Stderr:  stderr,
		Logger: &logrus.Logger{
			Out:       stderr,
			Formatter: &logrus.TextFormatter{ForceColors: stderrTTY, DisableColors: noColorSet},
			Hooks:     make(logrus.LevelHooks),
			Level:     logrus.InfoLevel,
		},
		Flags:  globalFlags{LogFormat: config.LogText},
		Config: config.NewConfig(),
		OSExit: os.Exit,
	}
}

// BuildEnvMap turns os.Environ style KEY=value pairs into a map.
func BuildEnvMap(environ []string) map[string]string {
	env := make(map[string]string, len(environ))
	for _, kv := range environ {
		k, v, _ := strings.Cut(kv, "=")
		env[k] = v
	}
	return env
}

// consoleWriter serializes writes to a terminal stream shared by stdout and
// stderr.
type consoleWriter struct {
	Writer io.Writer
	IsTTY  bool
	Mutex  *sync.Mutex
}

func (w *consoleWriter) Write(p []byte) (int, error) {
	w.Mutex.Lock()
	defer w.Mutex.Unlock()
	return w.Writer.Write(p)
}

// colored reports whether output to w may carry ANSI colours.
func (gs *GlobalState) colored(w *consoleWriter) bool {
	return gs.Config.Color.Bool && w.IsTTY
}
