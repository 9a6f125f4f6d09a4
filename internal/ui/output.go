// Package ui provides user interface utilities for the demo's framing output.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

const (
	BoxWidth = 46
)

var (
	// Color/style functions
	Bold   = color.New(color.Bold).SprintFunc()
	Dim    = color.New(color.Faint).SprintFunc()
	Green  = color.New(color.FgGreen).SprintFunc()
	Cyan   = color.New(color.FgCyan).SprintFunc()
	Yellow = color.New(color.FgYellow).SprintFunc()
	Red    = color.New(color.FgRed).SprintFunc()

	// Output destination (defaults to stdout; the demo narrates rather
	// than logs)
	Out io.Writer = os.Stdout
)

// Header prints the top border with "console·tools" branding.
func Header() {
	border := strings.Repeat("─", BoxWidth-16)
	fmt.Fprintf(Out, "  %s %s %s\n", Dim("┌"), Bold("console·tools"), Dim(border))
}

// Footer prints the bottom border.
func Footer() {
	fmt.Fprintf(Out, "  %s\n", Dim("└"+strings.Repeat("─", BoxWidth-1)))
}

// Section prints a titled divider between demo stages.
func Section(title string) {
	fmt.Fprintf(Out, "\n  %s %s\n", Dim("├─"), Bold(title))
}

// Info prints an informational message with a cyan arrow.
func Info(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(Out, "  %s %s\n", Cyan("→"), msg)
}

// Success prints a success message with a green checkmark.
func Success(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(Out, "  %s %s\n", Green("✔"), msg)
}

// Fail prints an error message with a red X.
func Fail(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(Out, "  %s %s\n", Red("✘"), msg)
}

// Warn prints a warning message with a yellow circle.
func Warn(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(Out, "  %s %s\n", Yellow("○"), msg)
}

// DimMsg prints a dimmed message.
func DimMsg(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(Out, "  %s\n", Dim(msg))
}

// BlankLine prints a blank line.
func BlankLine() {
	fmt.Fprintln(Out, "")
}
