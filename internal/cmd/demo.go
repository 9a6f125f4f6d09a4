package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/consoletools/consoletools/internal/ui"
	"github.com/consoletools/consoletools/pkg/ansi"
	"github.com/consoletools/consoletools/pkg/console"
)

// NewDemoCommand creates the command running the full library tour.
func NewDemoCommand() *cobra.Command {
	var fast bool
	var skipInteractive bool

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the full formatting and interaction tour",
		Long: `Walks through every formatter and interactive routine the library
provides: headers, progress bars, labels, notifications, the typewriter
effect, the spinner, and the numbered menu prompt.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(fast, skipInteractive)
		},
	}

	cmd.Flags().BoolVar(&fast, "fast", false, "skip animation delays")
	cmd.Flags().BoolVar(&skipInteractive, "non-interactive", false, "skip stages that wait for input")

	return cmd
}

func runDemo(fast, skipInteractive bool) error {
	term := console.NewTerminal()

	stepDelay := 100 * time.Millisecond
	typeMin, typeMax := 20*time.Millisecond, 80*time.Millisecond
	spinFor, spinEvery := 2*time.Second, 150*time.Millisecond
	if fast {
		stepDelay = 0
		typeMin, typeMax = 0, 0
		spinFor, spinEvery = 0, 0
	}

	ui.Header()

	ui.Section("Colored text")
	fmt.Printf("%sWelcome to the consoletools demo!%s\n", tok(ansi.Green), tok(ansi.Reset))

	if !skipInteractive {
		term.Pause("Press ENTER to show some spacing...")
	}

	ui.Section("Spacing")
	fmt.Printf("Here is some spacing below:%s[End of spacing]\n", console.Spacing(3))

	ui.Section("Headers")
	fmt.Println(console.Header("=", 5, "HEADER", " ",
		tok(ansi.Cyan), tok(ansi.Yellow), tok(ansi.Green)))
	fmt.Println(console.AdvancedHeader(console.HeaderSpec{
		LeftChar: "=", LeftCount: 3,
		RightChar: "-", RightCount: 3,
		Text: "ADVANCED HEADER", SpacingChar: " ",
		LeftColor:  tok(ansi.LightBlue),
		RightColor: tok(ansi.LightPurple),
		TextColor:  tok(ansi.Green), SpacingColor: tok(ansi.Yellow),
		ResetOnEnd: true,
	}))

	ui.Section("Progress bars")
	for i := 0; i <= 10; i++ {
		fmt.Printf("\r%s", console.ProgressBar(i, 10, 20,
			tok(ansi.Green), true, tok(ansi.LightCyan)))
		term.Sleep(stepDelay)
	}
	fmt.Println()
	for i := 0; i <= 10; i++ {
		fmt.Printf("\r%s", console.AdvancedProgressBar(console.BarSpec{
			Current: i, Max: 10, Width: 20,
			Prefix: "Loading", Suffix: "Complete",
			FillGlyph: "#", UnfilledGlyph: "-",
			FillColor:     tok(ansi.Green),
			UnfilledColor: tok(ansi.Gray),
			PercentColor:  tok(ansi.White),
			PrefixColor:   tok(ansi.Yellow),
			SuffixColor:   tok(ansi.LightBlue),
			BracketColor:  tok(ansi.Red),
			ShowPercentage: true, ShowBrackets: true,
			ResetOnCompletion: true,
		}))
		term.Sleep(stepDelay)
	}
	fmt.Println()
	ui.Success("Both bars reached 100%%")

	ui.Section("Labels")
	fmt.Printf("%s%s\n", console.Error("This is an error message!"), tok(ansi.Reset))
	fmt.Printf("%s%s\n", console.Warning("This is a warning message!"), tok(ansi.Reset))

	ui.Section("Typewriter effect")
	fmt.Print(tok(ansi.LightPurple))
	term.TypeText("Typing text effect demonstration...\n", typeMin, typeMax)
	fmt.Print(tok(ansi.Reset))

	ui.Section("Notification")
	fmt.Println(console.Notification(console.NotificationSpec{
		LeftBorder: "[", Inside: "!", RightBorder: "]",
		TypeLabel: "INFO", Text: "This is a notification message!",
		BorderColor: tok(ansi.LightCyan),
		InsideColor: tok(ansi.Green),
		TextColor:   tok(ansi.White),
	}))

	ui.Section("Spinner")
	ui.Info("Spinning for %s...", spinFor)
	term.Spin(spinFor, spinEvery)

	if !skipInteractive {
		ui.Section("Numbered menu")
		if err := runMenuDemo(term, []string{"Option A", "Option B", "Option C"}); err != nil {
			ui.Warn("No valid choice was made")
		}
		term.Pause("Press ENTER to end the demonstration...")
	}

	ui.Footer()
	return nil
}
