// Package ansi provides the fixed ANSI color palette used throughout
// consoletools.
package ansi

import (
	"sort"
	"strings"
)

// SGR color codes. Each constant is an opaque style token: it is applied by
// string concatenation and never parsed. The byte values are part of the
// library's output contract and must not change.
const (
	Red    = "\033[31m"
	Orange = "\033[38;5;208m"
	Yellow = "\033[33m"
	Green  = "\033[32m"
	Blue   = "\033[34m"
	Purple = "\033[35m"
	Cyan   = "\033[36m"

	White = "\033[37m"
	Gray  = "\033[90m"
	Black = "\033[30m"

	LightRed    = "\033[91m"
	LightOrange = "\033[38;5;214m"
	LightYellow = "\033[93m"
	LightGreen  = "\033[92m"
	LightBlue   = "\033[94m"
	LightPurple = "\033[95m"
	LightCyan   = "\033[96m"

	// Reset clears all styling previously applied on the stream.
	Reset = "\033[0m"
)

// palette maps canonical color names to their tokens. Initialized once,
// never mutated.
var palette = map[string]string{
	"RED":          Red,
	"ORANGE":       Orange,
	"YELLOW":       Yellow,
	"GREEN":        Green,
	"BLUE":         Blue,
	"PURPLE":       Purple,
	"CYAN":         Cyan,
	"WHITE":        White,
	"GRAY":         Gray,
	"BLACK":        Black,
	"LIGHT_RED":    LightRed,
	"LIGHT_ORANGE": LightOrange,
	"LIGHT_YELLOW": LightYellow,
	"LIGHT_GREEN":  LightGreen,
	"LIGHT_BLUE":   LightBlue,
	"LIGHT_PURPLE": LightPurple,
	"LIGHT_CYAN":   LightCyan,
	"RESET":        Reset,
}

// Lookup returns the style token for a color name. Names are matched
// case-insensitively ("light_red", "LIGHT_RED" and "Light_Red" are
// equivalent). The second return value reports whether the name is known.
func Lookup(name string) (string, bool) {
	token, ok := palette[strings.ToUpper(name)]
	return token, ok
}

// Names returns the canonical palette names in sorted order.
func Names() []string {
	names := make([]string, 0, len(palette))
	for name := range palette {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
