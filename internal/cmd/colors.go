package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/consoletools/consoletools/pkg/ansi"
)

// NewColorsCommand creates the command listing the fixed palette.
func NewColorsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "colors",
		Short: "List the palette with each token's escape bytes",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range ansi.Names() {
				token, ok := ansi.Lookup(name)
				if !ok {
					return fmt.Errorf("palette name %q not resolvable", name)
				}
				fmt.Fprintf(out, "  %s%-14s%s %q\n", tok(token), name, tok(ansi.Reset), token)
			}
			return nil
		},
	}
}
