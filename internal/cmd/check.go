package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pebble-lang/pebble/internal/frontend"
)

func getCmdCheck(gs *GlobalState) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Report diagnostics for source files",
		Long: `Scan and parse every file and report all diagnostics. The exit code is
non-zero when any file has errors.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			units, err := newLoader(gs).LoadAll(args)
			if err != nil {
				return err
			}

			bag := frontend.Diagnostics(units)
			renderDiagnostics(gs, bag, units...)
			printf(gs.Stdout, "%d file(s) checked, %d diagnostic(s)\n", len(units), bag.Len())
			return bag.Err()
		},
	}
}
