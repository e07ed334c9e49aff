package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pebble-lang/pebble/internal/ast"
	"github.com/pebble-lang/pebble/internal/config"
	"github.com/pebble-lang/pebble/internal/errext"
	"github.com/pebble-lang/pebble/internal/errext/exitcodes"
)

type parseCmd struct {
	gs     *GlobalState
	format string
}

func (c *parseCmd) run(cmd *cobra.Command, args []string) error {
	format := c.gs.Config.Format.String
	if cmd.Flags().Changed("format") {
		format = c.format
	}

	unit, err := newLoader(c.gs).Load(args[0])
	if err != nil {
		return err
	}

	switch format {
	case config.OutputSexpr:
		for _, stmt := range unit.File.Statements {
			printf(c.gs.Stdout, "%s\n", ast.Sprint(stmt))
		}
	case config.OutputTree:
		if err := ast.Fprint(c.gs.Stdout, unit.File); err != nil {
			return err
		}
	case config.OutputJSON:
		data, err := json.MarshalIndent(ast.Dump(unit.File), "", "  ")
		if err != nil {
			return fmt.Errorf("couldn't encode the syntax tree: %w", err)
		}
		printf(c.gs.Stdout, "%s\n", data)
	default:
		return errext.WithExitCodeIfNone(
			fmt.Errorf("unknown output format %q", format), exitcodes.InvalidConfig)
	}

	renderDiagnostics(c.gs, unit.Diagnostics, unit)
	return unit.Diagnostics.Err()
}

func getCmdParse(gs *GlobalState) *cobra.Command {
	c := &parseCmd{gs: gs}

	cmd := &cobra.Command{
		Use:   "parse FILE",
		Short: "Print the syntax tree of a source file",
		Long: `Print the statements of a source file that parsed cleanly, followed by
the diagnostics for the ones that did not.`,
		Example: `
  # Print one s-expression per statement
  pebble parse main.peb

  # Dump the whole file, comments included, as JSON
  pebble parse --format json main.peb`[1:],
		Args: cobra.ExactArgs(1),
		RunE: c.run,
	}
	cmd.Flags().StringVarP(&c.format, "format", "f", config.OutputSexpr,
		fmt.Sprintf("output format, one of %s, %s or %s", config.OutputTree, config.OutputSexpr, config.OutputJSON))

	return cmd
}
