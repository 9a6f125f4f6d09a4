package console

import (
	"strings"

	"github.com/consoletools/consoletools/pkg/ansi"
)

// NotificationSpec describes one Notification render.
type NotificationSpec struct {
	LeftBorder  string
	Inside      string
	RightBorder string

	// TypeLabel is the notification category shown before the colon,
	// e.g. "INFO" or "ALERT".
	TypeLabel string
	Text      string

	BorderColor string
	InsideColor string
	TextColor   string
}

// Notification builds a one-line notification such as
//
//	[!] INFO: disk space low
//
// Both border glyphs are emitted before the type label; the inside glyph
// sits between them. The result always ends with ansi.Reset.
func Notification(spec NotificationSpec) string {
	var b strings.Builder
	b.WriteString(spec.BorderColor)
	b.WriteString(spec.LeftBorder)

	b.WriteString(spec.InsideColor)
	b.WriteString(spec.Inside)

	b.WriteString(spec.BorderColor)
	b.WriteString(spec.RightBorder)

	b.WriteString(spec.InsideColor)
	b.WriteString(" " + spec.TypeLabel)
	b.WriteString(": ")

	b.WriteString(spec.TextColor)
	b.WriteString(spec.Text)

	b.WriteString(ansi.Reset)
	return b.String()
}
