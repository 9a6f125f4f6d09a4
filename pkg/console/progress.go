package console

import (
	"strconv"
	"strings"

	"github.com/consoletools/consoletools/pkg/ansi"
)

// ProgressBar builds a fixed-glyph progress bar: '#' for the filled portion,
// '-' for the remainder. current is clamped to [0, max]. A max of zero
// renders a fully unfilled bar rather than dividing by zero. When
// showPercentage is set, a space and the truncated percentage follow the bar.
func ProgressBar(current, max, width int, barColor string, showPercentage bool, percentageColor string) string {
	if current > max {
		current = max
	}
	if current < 0 {
		current = 0
	}

	fraction := 0.0
	if max != 0 {
		fraction = float64(current) / float64(max)
	}
	filled := int(fraction * float64(width))
	unfilled := width - filled

	var b strings.Builder
	b.WriteString(barColor)
	b.WriteString(Repeat("#", filled))
	b.WriteString(Repeat("-", unfilled))
	b.WriteString(ansi.Reset)

	if showPercentage {
		b.WriteByte(' ')
		b.WriteString(percentageColor)
		b.WriteString(strconv.Itoa(int(fraction * 100)))
		b.WriteByte('%')
		b.WriteString(ansi.Reset)
	}

	return b.String()
}

// BarSpec describes one AdvancedProgressBar render.
type BarSpec struct {
	Current int
	Max     int
	Width   int

	// Prefix and Suffix are emitted only when non-empty.
	Prefix string
	Suffix string

	// FillGlyph and UnfilledGlyph are repeated to draw the bar body. They
	// are arbitrary strings, not restricted to single characters.
	FillGlyph     string
	UnfilledGlyph string

	FillColor     string
	UnfilledColor string
	PercentColor  string
	PrefixColor   string
	SuffixColor   string
	BracketColor  string

	ShowPercentage bool
	ShowBrackets   bool

	// ResetOnCompletion appends ansi.Reset at the very end of the render.
	ResetOnCompletion bool
}

// AdvancedProgressBar builds a progress bar with caller-chosen glyphs,
// optional enclosing brackets and optional prefix/suffix text, each piece
// independently colored. Current is clamped to [0, Max]; Max == 0 yields a
// fully unfilled bar.
func AdvancedProgressBar(spec BarSpec) string {
	current := spec.Current
	if current < 0 {
		current = 0
	}
	if current > spec.Max {
		current = spec.Max
	}

	fraction := 0.0
	if spec.Max != 0 {
		fraction = float64(current) / float64(spec.Max)
	}
	filled := int(fraction * float64(spec.Width))
	unfilled := spec.Width - filled

	var b strings.Builder

	if spec.Prefix != "" {
		b.WriteString(spec.PrefixColor)
		b.WriteString(spec.Prefix)
	}

	if spec.ShowBrackets {
		b.WriteString(spec.BracketColor)
		b.WriteByte('[')
	}

	b.WriteString(spec.FillColor)
	b.WriteString(Repeat(spec.FillGlyph, filled))

	b.WriteString(spec.UnfilledColor)
	b.WriteString(Repeat(spec.UnfilledGlyph, unfilled))

	if spec.ShowBrackets {
		b.WriteString(spec.BracketColor)
		b.WriteByte(']')
	}

	if spec.ShowPercentage {
		b.WriteString(spec.PercentColor)
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(int(fraction * 100)))
		b.WriteByte('%')
	}

	if spec.Suffix != "" {
		b.WriteByte(' ')
		b.WriteString(spec.SuffixColor)
		b.WriteString(spec.Suffix)
	}

	if spec.ResetOnCompletion {
		b.WriteString(ansi.Reset)
	}

	return b.String()
}
