package console

import "strings"

// Repeat returns unit concatenated count times. A count of zero or less
// yields the empty string; units may be multi-byte strings, not just single
// characters.
func Repeat(unit string, count int) string {
	if count <= 0 {
		return ""
	}
	return strings.Repeat(unit, count)
}

// Spacing returns n newline characters, used to open vertical gaps between
// blocks of output. Spacing(0) is the empty string.
func Spacing(n int) string {
	return Repeat("\n", n)
}
