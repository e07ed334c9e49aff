package cmd

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/pebble-lang/pebble/internal/diag"
	"github.com/pebble-lang/pebble/internal/lexer"
)

type scanCmd struct {
	gs       *GlobalState
	comments bool
}

func (c *scanCmd) run(_ *cobra.Command, args []string) error {
	unit, err := newLoader(c.gs).Load(args[0])
	if err != nil {
		return err
	}

	tokens := unit.Tokens
	if c.comments {
		tokens = make([]lexer.Token, 0, len(unit.Tokens)+len(unit.Comments))
		tokens = append(tokens, unit.Tokens...)
		tokens = append(tokens, unit.Comments...)
		sort.SliceStable(tokens, func(i, j int) bool {
			if tokens[i].IsEOF() || tokens[j].IsEOF() {
				return tokens[j].IsEOF() && !tokens[i].IsEOF()
			}
			return tokens[i].Span.Start.Before(tokens[j].Span.Start)
		})
	}
	for _, tok := range tokens {
		printf(c.gs.Stdout, "%s\n", tok)
	}

	lexical := diag.NewBag()
	for _, d := range unit.Diagnostics.Items() {
		if d.Stage == diag.StageLexer {
			lexical.Add(d)
		}
	}
	renderDiagnostics(c.gs, lexical, unit)
	return lexical.Err()
}

func getCmdScan(gs *GlobalState) *cobra.Command {
	c := &scanCmd{gs: gs}

	cmd := &cobra.Command{
		Use:   "scan FILE",
		Short: "Print the tokens of a source file",
		Long: `Print the tokens of a source file, one per line, as span, kind and text.
Lexical errors are reported on stderr.`,
		Args: cobra.ExactArgs(1),
		RunE: c.run,
	}
	cmd.Flags().BoolVar(&c.comments, "comments", false, "interleave comments with the tokens")

	return cmd
}
