package console

import "github.com/consoletools/consoletools/pkg/ansi"

// Error returns message prefixed with a light-red "[ERROR]: " label. No
// trailing reset is appended, so the message itself renders light red until
// the caller resets the stream.
func Error(message string) string {
	return ansi.LightRed + "[ERROR]: " + message
}

// Warning returns message prefixed with a light-yellow "[WARNING]: " label.
// Like Error, the caller is responsible for resetting the stream.
func Warning(message string) string {
	return ansi.LightYellow + "[WARNING]: " + message
}
