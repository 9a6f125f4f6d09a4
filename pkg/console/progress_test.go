package console

import (
	"strings"
	"testing"

	"github.com/consoletools/consoletools/pkg/ansi"
)

func TestProgressBar(t *testing.T) {
	tests := []struct {
		name         string
		current, max int
		width        int
		wantFilled   int
		wantPct      string
	}{
		{
			name:    "empty bar",
			current: 0, max: 10, width: 20,
			wantFilled: 0,
			wantPct:    "0%",
		},
		{
			name:    "half full truncates",
			current: 5, max: 10, width: 20,
			wantFilled: 10,
			wantPct:    "50%",
		},
		{
			name:    "full bar",
			current: 10, max: 10, width: 20,
			wantFilled: 20,
			wantPct:    "100%",
		},
		{
			name:    "fraction floors",
			current: 1, max: 3, width: 10,
			wantFilled: 3, // floor(0.333 * 10)
			wantPct:    "33%",
		},
		{
			name:    "negative current clamps to zero",
			current: -5, max: 10, width: 20,
			wantFilled: 0,
			wantPct:    "0%",
		},
		{
			name:    "overshoot clamps to max",
			current: 15, max: 10, width: 20,
			wantFilled: 20,
			wantPct:    "100%",
		},
		{
			name:    "zero max renders unfilled",
			current: 0, max: 0, width: 20,
			wantFilled: 0,
			wantPct:    "0%",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProgressBar(tt.current, tt.max, tt.width, ansi.Green, true, ansi.LightCyan)

			filled := strings.Count(got, "#")
			unfilled := strings.Count(got, "-")
			if filled != tt.wantFilled {
				t.Errorf("filled glyphs = %d, want %d", filled, tt.wantFilled)
			}
			if filled+unfilled != tt.width {
				t.Errorf("filled+unfilled = %d, want width %d", filled+unfilled, tt.width)
			}
			if !strings.HasSuffix(got, " "+ansi.LightCyan+tt.wantPct+ansi.Reset) {
				t.Errorf("percentage suffix missing or wrong in %q, want %q", got, tt.wantPct)
			}
		})
	}

	t.Run("clamped inputs render identically", func(t *testing.T) {
		if ProgressBar(-5, 10, 20, ansi.Green, true, ansi.Cyan) != ProgressBar(0, 10, 20, ansi.Green, true, ansi.Cyan) {
			t.Error("current=-5 should render as current=0")
		}
		if ProgressBar(15, 10, 20, ansi.Green, true, ansi.Cyan) != ProgressBar(10, 10, 20, ansi.Green, true, ansi.Cyan) {
			t.Error("current=15 should render as current=10")
		}
	})

	t.Run("no percentage", func(t *testing.T) {
		got := ProgressBar(5, 10, 10, ansi.Green, false, ansi.Cyan)
		want := ansi.Green + "#####-----" + ansi.Reset
		if got != want {
			t.Errorf("ProgressBar() = %q, want %q", got, want)
		}
	})
}

func TestAdvancedProgressBar(t *testing.T) {
	base := BarSpec{
		Current: 5, Max: 10, Width: 10,
		Prefix: "Loading", Suffix: "Complete",
		FillGlyph: "#", UnfilledGlyph: "-",
		FillColor: ansi.Green, UnfilledColor: ansi.Gray,
		PercentColor: ansi.White, PrefixColor: ansi.Yellow,
		SuffixColor: ansi.LightBlue, BracketColor: ansi.Red,
		ShowPercentage: true, ShowBrackets: true,
		ResetOnCompletion: true,
	}

	t.Run("exact composition", func(t *testing.T) {
		got := AdvancedProgressBar(base)
		want := ansi.Yellow + "Loading" +
			ansi.Red + "[" +
			ansi.Green + "#####" +
			ansi.Gray + "-----" +
			ansi.Red + "]" +
			ansi.White + " 50%" +
			" " + ansi.LightBlue + "Complete" +
			ansi.Reset
		if got != want {
			t.Errorf("AdvancedProgressBar() = %q, want %q", got, want)
		}
	})

	t.Run("zero max renders fully unfilled with 0%", func(t *testing.T) {
		spec := base
		spec.Current, spec.Max = 0, 0
		got := AdvancedProgressBar(spec)
		if strings.Contains(got, "#") {
			t.Errorf("zero max must not fill, got %q", got)
		}
		if strings.Count(got, "-") != spec.Width {
			t.Errorf("expected %d unfilled glyphs, got %q", spec.Width, got)
		}
		if !strings.Contains(got, " 0%") {
			t.Errorf("expected 0%% in %q", got)
		}
	})

	t.Run("empty prefix and suffix are omitted", func(t *testing.T) {
		spec := base
		spec.Prefix, spec.Suffix = "", ""
		got := AdvancedProgressBar(spec)
		if strings.Contains(got, ansi.Yellow) {
			t.Errorf("prefix color emitted despite empty prefix: %q", got)
		}
		if strings.Contains(got, ansi.LightBlue) {
			t.Errorf("suffix color emitted despite empty suffix: %q", got)
		}
	})

	t.Run("no brackets no percentage", func(t *testing.T) {
		spec := base
		spec.Prefix, spec.Suffix = "", ""
		spec.ShowBrackets, spec.ShowPercentage = false, false
		got := AdvancedProgressBar(spec)
		want := ansi.Green + "#####" + ansi.Gray + "-----" + ansi.Reset
		if got != want {
			t.Errorf("AdvancedProgressBar() = %q, want %q", got, want)
		}
	})

	t.Run("multi-rune glyphs", func(t *testing.T) {
		spec := base
		spec.Prefix, spec.Suffix = "", ""
		spec.ShowBrackets, spec.ShowPercentage = false, false
		spec.FillGlyph, spec.UnfilledGlyph = "█", "░"
		got := AdvancedProgressBar(spec)
		if strings.Count(got, "█") != 5 || strings.Count(got, "░") != 5 {
			t.Errorf("glyph counts wrong in %q", got)
		}
	})

	t.Run("no reset on completion", func(t *testing.T) {
		spec := base
		spec.ResetOnCompletion = false
		got := AdvancedProgressBar(spec)
		if strings.HasSuffix(got, ansi.Reset) {
			t.Errorf("ResetOnCompletion=false must not append reset: %q", got)
		}
	})

	t.Run("clamps below zero then above max", func(t *testing.T) {
		spec := base
		spec.Current = -3
		if AdvancedProgressBar(spec) != AdvancedProgressBar(BarSpec{
			Current: 0, Max: base.Max, Width: base.Width,
			Prefix: base.Prefix, Suffix: base.Suffix,
			FillGlyph: base.FillGlyph, UnfilledGlyph: base.UnfilledGlyph,
			FillColor: base.FillColor, UnfilledColor: base.UnfilledColor,
			PercentColor: base.PercentColor, PrefixColor: base.PrefixColor,
			SuffixColor: base.SuffixColor, BracketColor: base.BracketColor,
			ShowPercentage: true, ShowBrackets: true, ResetOnCompletion: true,
		}) {
			t.Error("current=-3 should render as current=0")
		}
	})
}

// Stripping all style tokens from a render must leave exactly the caller's
// structural text, nothing lost and nothing invented.
func TestFormatterRoundTrip(t *testing.T) {
	strip := func(s string, tokens ...string) string {
		for _, tok := range tokens {
			s = strings.ReplaceAll(s, tok, "")
		}
		return s
	}

	t.Run("header", func(t *testing.T) {
		got := strip(
			Header("=", 3, "X", " ", ansi.Cyan, ansi.Yellow, ansi.Green),
			ansi.Cyan, ansi.Yellow, ansi.Green, ansi.Reset,
		)
		if got != "=== X ===" {
			t.Errorf("stripped header = %q, want %q", got, "=== X ===")
		}
	})

	t.Run("progress bar", func(t *testing.T) {
		got := strip(
			ProgressBar(5, 10, 10, ansi.Green, true, ansi.Cyan),
			ansi.Green, ansi.Cyan, ansi.Reset,
		)
		if got != "#####----- 50%" {
			t.Errorf("stripped bar = %q, want %q", got, "#####----- 50%")
		}
	})

	t.Run("notification", func(t *testing.T) {
		got := strip(
			Notification(NotificationSpec{
				LeftBorder: "[", Inside: "!", RightBorder: "]",
				TypeLabel: "INFO", Text: "hello",
				BorderColor: ansi.LightCyan, InsideColor: ansi.Green, TextColor: ansi.White,
			}),
			ansi.LightCyan, ansi.Green, ansi.White, ansi.Reset,
		)
		if got != "[!] INFO: hello" {
			t.Errorf("stripped notification = %q, want %q", got, "[!] INFO: hello")
		}
	})
}
