package console

import (
	"strings"

	"github.com/consoletools/consoletools/pkg/ansi"
)

// Header builds a symmetric header line: a repeated line segment on each side
// of the text, separated by a spacing character, each piece independently
// colored. The result always ends with ansi.Reset.
//
//	Header("=", 5, "SETUP", " ", ansi.Cyan, ansi.Yellow, ansi.Green)
//	→ cyan "=====" green " " yellow "SETUP" green " " cyan "=====" reset
func Header(lineChar string, lineCount int, text, spacingChar, lineColor, textColor, spacingColor string) string {
	segment := Repeat(lineChar, lineCount)

	var b strings.Builder
	b.WriteString(lineColor)
	b.WriteString(segment)

	b.WriteString(spacingColor)
	b.WriteString(spacingChar)

	b.WriteString(textColor)
	b.WriteString(text)

	b.WriteString(spacingColor)
	b.WriteString(spacingChar)

	b.WriteString(lineColor)
	b.WriteString(segment)

	b.WriteString(ansi.Reset)
	return b.String()
}

// HeaderSpec describes one AdvancedHeader render. Left and right line
// segments are fully independent: character, count and color.
type HeaderSpec struct {
	LeftChar   string
	LeftCount  int
	RightChar  string
	RightCount int

	Text        string
	SpacingChar string

	LeftColor    string
	RightColor   string
	TextColor    string
	SpacingColor string

	// ResetOnEnd appends ansi.Reset after the right segment. When false the
	// stream is left in the right segment's style so further output can
	// chain onto it.
	ResetOnEnd bool
}

// AdvancedHeader builds an asymmetric header from spec. Negative counts
// degrade to empty segments.
func AdvancedHeader(spec HeaderSpec) string {
	var b strings.Builder
	b.WriteString(spec.LeftColor)
	b.WriteString(Repeat(spec.LeftChar, spec.LeftCount))

	b.WriteString(spec.SpacingColor)
	b.WriteString(spec.SpacingChar)

	b.WriteString(spec.TextColor)
	b.WriteString(spec.Text)

	b.WriteString(spec.SpacingColor)
	b.WriteString(spec.SpacingChar)

	b.WriteString(spec.RightColor)
	b.WriteString(Repeat(spec.RightChar, spec.RightCount))

	if spec.ResetOnEnd {
		b.WriteString(ansi.Reset)
	}
	return b.String()
}
