// Package console builds colored console strings and runs a small set of
// blocking console interactions.
//
// The package splits into two halves:
//   - Formatters: pure functions returning styled strings (headers, progress
//     bars, notifications, error/warning labels). No side effects, safe for
//     concurrent use.
//   - Terminal: interactive routines (pause-for-enter, typewriter effect,
//     spinner, numbered menu prompt) that own their I/O streams for the
//     duration of a call.
//
// Style tokens are plain strings (typically the constants in pkg/ansi) and
// are concatenated verbatim — the package never inspects or validates them,
// so any escape sequence a terminal understands can be passed through.
//
// Formatters append ansi.Reset where documented; Error and Warning
// deliberately do not, leaving the reset to the caller.
//
// Example usage:
//
//	fmt.Println(console.Header("=", 5, "SETUP", " ", ansi.Cyan, ansi.Yellow, ansi.Green))
//
//	bar := console.ProgressBar(7, 10, 20, ansi.Green, true, ansi.LightCyan)
//	fmt.Print("\r" + bar)
//
//	term := console.NewTerminal()
//	choice, err := term.PromptMenu(console.Menu{
//	    Options:   []string{"Install", "Upgrade", "Quit"},
//	    Separator: ": ",
//	    Prompt:    "Please choose an option:",
//	    Question:  "Your choice: ",
//	})
//
// Interactive routines take their output sink, input source, randomness and
// timing as fields on Terminal so tests can script them; the zero value of
// every unset field falls back to the real console, time.Sleep and a
// time-seeded generator.
//
// Callers must not run two interactive routines concurrently against the
// same streams; output would interleave unpredictably.
package console
