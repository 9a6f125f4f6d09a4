// Package cmd defines the cobra command tree for the consoletools demo
// binary.
package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

var noColor bool

// NewRootCommand creates and returns the root cobra command for consoletools
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "consoletools",
		Short: "Tour of the consoletools console-formatting library",
		Long: `Consoletools builds colored console strings (headers, progress bars,
notifications, error and warning labels) and runs a handful of blocking
console interactions (pause, typewriter effect, spinner, numbered menu).

This binary exercises the library end to end; the importable packages live
under pkg/ansi and pkg/console.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor || !stdoutIsTTY() {
				color.NoColor = true
			}
		},
	}

	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable all colored output")

	// Add subcommands
	cmd.AddCommand(NewDemoCommand())
	cmd.AddCommand(NewColorsCommand())
	cmd.AddCommand(NewMenuCommand())

	return cmd
}

func stdoutIsTTY() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// tok passes a raw palette token through, or blanks it when color is
// disabled so piped output stays clean. fatih/color handles its own
// suppression; the raw pkg/ansi tokens need this shim.
func tok(token string) string {
	if color.NoColor {
		return ""
	}
	return token
}
