// Package ui provides the demo binary's own status output.
//
// This is deliberately separate from pkg/console: pkg/console renders the
// library's caller-styled strings, while this package frames the demo's
// narration with a consistent look:
//   - Section headers and footers with box-drawing characters
//   - Info, success, failure, and warning messages
//   - Dimmed text for secondary information
//
// All output goes to ui.Out (defaults to os.Stdout) to allow testing and
// output redirection. Styling goes through fatih/color, so it honors
// color.NoColor when the demo runs without a TTY or with --no-color.
//
// Example usage:
//
//	ui.Section("Progress bars")
//	ui.Info("Rendering a 20-cell bar")
//	ui.Success("Done")
//	ui.Footer()
package ui
