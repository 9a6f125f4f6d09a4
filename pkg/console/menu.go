package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/consoletools/consoletools/pkg/ansi"
)

// NoSelection is the index PromptMenu returns alongside a non-nil error.
const NoSelection = -1

// Menu prompt failures. PromptMenu never lets a parse or I/O fault escape:
// every failure is mapped to one of these sentinels, matchable with
// errors.Is, after a colored diagnostic has been written to the terminal.
var (
	ErrNoOptions           = errors.New("no menu options provided")
	ErrReadFailed          = errors.New("failed to read menu input")
	ErrMalformedInput      = errors.New("menu input is not numeric")
	ErrSelectionOutOfRange = errors.New("menu selection out of range")
	ErrNumericOverflow     = errors.New("menu input exceeds integer range")
)

// Menu describes one numbered-menu prompt: the option labels, the text
// around them, and a color token per rendered field.
type Menu struct {
	// Options are displayed 1-based; the selection is returned 0-based.
	Options []string

	// Separator sits between the displayed number and the option label,
	// e.g. ": ".
	Separator string

	// Prompt is printed above the options; Question is printed below them,
	// immediately before the cursor.
	Prompt   string
	Question string

	PromptColor    string
	NumberColor    string
	SeparatorColor string
	OptionColor    string
	QuestionColor  string
	ErrorColor     string
}

// PromptMenu displays a numbered menu and reads one selection.
//
// The prompt is single-attempt: the first invalid entry prints its
// diagnostic and returns (NoSelection, err) rather than re-prompting.
// Callers wanting iterative correction loop around PromptMenu themselves.
//
// On success the zero-based index of the chosen option is returned. With no
// options the prompt fails immediately without touching the input source.
func (t *Terminal) PromptMenu(menu Menu) (int, error) {
	out := t.out()

	if len(menu.Options) == 0 {
		fmt.Fprintln(out, "No menu options provided.")
		return NoSelection, ErrNoOptions
	}

	fmt.Fprintf(out, "%s%s\n", menu.PromptColor, menu.Prompt)
	for i, option := range menu.Options {
		fmt.Fprintf(out, "%s%d%s%s%s%s%s\n",
			menu.NumberColor, i+1,
			menu.SeparatorColor, menu.Separator,
			menu.OptionColor, option,
			ansi.Reset)
	}
	fmt.Fprintf(out, "%s\n%s%s", menu.QuestionColor, menu.Question, menu.NumberColor)

	line, err := t.in().ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintf(out, "%sInput error. Exiting.\n%s", menu.ErrorColor, ansi.Reset)
		return NoSelection, fmt.Errorf("%w: %v", ErrReadFailed, err)
	}

	choice, err := parseSelection(line, len(menu.Options))
	if err != nil {
		fmt.Fprint(out, menu.ErrorColor)
		switch {
		case errors.Is(err, ErrNumericOverflow):
			fmt.Fprint(out, "The number you entered is out of range. Please try again.\n\n")
		case errors.Is(err, ErrSelectionOutOfRange):
			fmt.Fprintf(out, "Invalid choice. Please enter a number between 1 and %d.\n\n", len(menu.Options))
		default:
			fmt.Fprint(out, "Invalid input. Please enter a numeric value.\n\n")
		}
		fmt.Fprint(out, ansi.Reset)
		return NoSelection, err
	}

	fmt.Fprint(out, ansi.Reset)
	return choice - 1, nil
}

// parseSelection parses a 1-based menu selection from one raw input line,
// distinguishing malformed text, integer overflow and out-of-range values.
func parseSelection(line string, optionCount int) (int, error) {
	choice, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, ErrNumericOverflow
		}
		return 0, ErrMalformedInput
	}
	if choice < 1 || choice > optionCount {
		return 0, ErrSelectionOutOfRange
	}
	return choice, nil
}
