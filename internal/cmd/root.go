// Package cmd implements the pebble command line.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"runtime/debug"
	"strconv"

	"github.com/mattn/go-colorable"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/guregu/null.v3"

	"github.com/pebble-lang/pebble/internal/config"
	"github.com/pebble-lang/pebble/internal/diag"
	"github.com/pebble-lang/pebble/internal/errext"
	"github.com/pebble-lang/pebble/internal/errext/exitcodes"
)

// ExecuteWithGlobalState runs the root command with gs and exits through
// gs.OSExit with the code attached to the returned error.
func ExecuteWithGlobalState(gs *GlobalState) {
	newRootCommand(gs).execute()
}

type rootCommand struct {
	globalState *GlobalState
	cmd         *cobra.Command
}

func newRootCommand(gs *GlobalState) *rootCommand {
	c := &rootCommand{globalState: gs}
	rootCmd := &cobra.Command{
		Use:               "pebble",
		Short:             "Scan and parse pebble sources",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.persistentPreRunE,
	}

	rootCmd.PersistentFlags().AddFlagSet(rootCmdPersistentFlagSet(gs))
	rootCmd.SetArgs(gs.CmdArgs[1:])
	rootCmd.SetOut(gs.Stdout)
	rootCmd.SetErr(gs.Stderr)

	subCommands := []func(*GlobalState) *cobra.Command{
		getCmdScan, getCmdParse, getCmdCheck, getCmdVersion,
	}
	for _, sc := range subCommands {
		rootCmd.AddCommand(sc(gs))
	}

	c.cmd = rootCmd
	return c
}

func rootCmdPersistentFlagSet(gs *GlobalState) *pflag.FlagSet {
	flags := pflag.NewFlagSet("", pflag.ContinueOnError)

	flags.StringVarP(&gs.Flags.ConfigFilePath, "config", "c", gs.Flags.ConfigFilePath,
		"config file, pebble.toml or pebble.yaml from the working directory by default")
	flags.BoolVar(&gs.Flags.NoColor, "no-color", gs.Flags.NoColor, "disable colored output")
	flags.BoolVarP(&gs.Flags.Verbose, "verbose", "v", gs.Flags.Verbose, "enable verbose logging")
	flags.StringVar(&gs.Flags.LogFormat, "log-format", gs.Flags.LogFormat, "log output format, text or json")
	flags.IntVar(&gs.Flags.MaxErrors, "max-errors", gs.Flags.MaxErrors,
		"stop after this many diagnostics per file, 0 means no limit")

	return flags
}

// flagConfig lifts the explicitly set global flags into a config layer.
func flagConfig(flags *pflag.FlagSet, gf globalFlags) config.Config {
	var cfg config.Config
	if flags.Changed("no-color") && gf.NoColor {
		cfg.Color = null.BoolFrom(false)
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = null.StringFrom(gf.LogFormat)
	}
	if flags.Changed("max-errors") {
		cfg.MaxErrors = null.IntFrom(int64(gf.MaxErrors))
	}
	return cfg
}

func (c *rootCommand) persistentPreRunE(cmd *cobra.Command, _ []string) error {
	gs := c.globalState

	wd, err := gs.Getwd()
	if err != nil {
		return fmt.Errorf("couldn't determine the working directory: %w", err)
	}
	cfg, err := config.Consolidate(gs.FS, wd, gs.Flags.ConfigFilePath, gs.Env, flagConfig(cmd.Flags(), gs.Flags))
	if err != nil {
		return err
	}
	gs.Config = cfg

	if !cfg.Color.Bool {
		gs.Stdout.Writer = colorable.NewNonColorable(gs.Stdout.Writer)
		gs.Stderr.Writer = colorable.NewNonColorable(gs.Stderr.Writer)
	}
	c.setupLoggers()

	gs.Logger.WithField("config", cfg).Debug("Consolidated configuration")
	return nil
}

func (c *rootCommand) setupLoggers() {
	gs := c.globalState
	if gs.Flags.Verbose {
		gs.Logger.SetLevel(logrus.DebugLevel)
	}
	gs.Logger.SetOutput(gs.Stderr)

	switch gs.Config.LogFormat.String {
	case config.LogJSON:
		gs.Logger.SetFormatter(&logrus.JSONFormatter{})
		gs.Logger.Debug("Logger format: JSON")
	default:
		gs.Logger.SetFormatter(&logrus.TextFormatter{
			ForceColors: gs.colored(gs.Stderr), DisableColors: !gs.Config.Color.Bool,
		})
		gs.Logger.Debug("Logger format: TEXT")
	}
}

func (c *rootCommand) execute() {
	gs := c.globalState
	exitCode := -1
	defer func() {
		gs.OSExit(exitCode)
	}()

	defer func() {
		if r := recover(); r != nil {
			exitCode = int(exitcodes.GoPanic)
			gs.Logger.Error(fmt.Errorf("unexpected pebble panic: %s\n%s", r, debug.Stack()))
		}
	}()

	err := c.cmd.Execute()
	if err == nil {
		exitCode = 0
		return
	}
	exitCode = int(errext.ExitCodeOf(err, exitcodes.InvalidUsage))

	// Diagnostics have already been rendered by the command that found them.
	var bagErr *diag.BagError
	if errors.As(err, &bagErr) {
		return
	}
	gs.Logger.WithField("exit_code", strconv.Itoa(exitCode)).Error(err)
}

// printf writes to w, ignoring errors the same way fmt.Printf callers do.
func printf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
