package cmd

import (
	"github.com/spf13/cobra"

	"github.com/consoletools/consoletools/internal/ui"
	"github.com/consoletools/consoletools/pkg/ansi"
	"github.com/consoletools/consoletools/pkg/console"
)

// NewMenuCommand creates the standalone numbered-menu demo command.
func NewMenuCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "menu [option]...",
		Short: "Prompt a numbered menu and print the selection",
		Long: `Displays a numbered menu built from the given options (or a default
set) and reads one selection. The prompt is single-attempt: an invalid
entry prints its diagnostic and exits non-zero.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			options := args
			if len(options) == 0 {
				options = []string{"Option A", "Option B", "Option C"}
			}
			return runMenuDemo(console.NewTerminal(), options)
		},
	}
}

func runMenuDemo(term *console.Terminal, options []string) error {
	choice, err := term.PromptMenu(console.Menu{
		Options:        options,
		Separator:      ": ",
		Prompt:         "Please choose an option:",
		Question:       "Your choice: ",
		PromptColor:    tok(ansi.White),
		NumberColor:    tok(ansi.LightBlue),
		SeparatorColor: tok(ansi.Green),
		OptionColor:    tok(ansi.Yellow),
		QuestionColor:  tok(ansi.LightPurple),
		ErrorColor:     tok(ansi.LightRed),
	})
	if err != nil {
		return err
	}

	ui.Success("You chose: %s", options[choice])
	return nil
}
