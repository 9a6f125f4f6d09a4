package ansi

import (
	"testing"
)

func TestTokenValues(t *testing.T) {
	// The escape bytes are a compatibility contract; lock them down.
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{name: "RED", token: Red, want: "\x1b[31m"},
		{name: "ORANGE", token: Orange, want: "\x1b[38;5;208m"},
		{name: "YELLOW", token: Yellow, want: "\x1b[33m"},
		{name: "GREEN", token: Green, want: "\x1b[32m"},
		{name: "BLUE", token: Blue, want: "\x1b[34m"},
		{name: "PURPLE", token: Purple, want: "\x1b[35m"},
		{name: "CYAN", token: Cyan, want: "\x1b[36m"},
		{name: "WHITE", token: White, want: "\x1b[37m"},
		{name: "GRAY", token: Gray, want: "\x1b[90m"},
		{name: "BLACK", token: Black, want: "\x1b[30m"},
		{name: "LIGHT_RED", token: LightRed, want: "\x1b[91m"},
		{name: "LIGHT_ORANGE", token: LightOrange, want: "\x1b[38;5;214m"},
		{name: "LIGHT_YELLOW", token: LightYellow, want: "\x1b[93m"},
		{name: "LIGHT_GREEN", token: LightGreen, want: "\x1b[92m"},
		{name: "LIGHT_BLUE", token: LightBlue, want: "\x1b[94m"},
		{name: "LIGHT_PURPLE", token: LightPurple, want: "\x1b[95m"},
		{name: "LIGHT_CYAN", token: LightCyan, want: "\x1b[96m"},
		{name: "RESET", token: Reset, want: "\x1b[0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.token != tt.want {
				t.Errorf("%s = %q, want %q", tt.name, tt.token, tt.want)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name   string
		arg    string
		want   string
		wantOK bool
	}{
		{name: "canonical name", arg: "LIGHT_RED", want: LightRed, wantOK: true},
		{name: "lowercase name", arg: "light_red", want: LightRed, wantOK: true},
		{name: "mixed case name", arg: "Green", want: Green, wantOK: true},
		{name: "reset", arg: "reset", want: Reset, wantOK: true},
		{name: "unknown name", arg: "MAGENTA", want: "", wantOK: false},
		{name: "empty name", arg: "", want: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Lookup(tt.arg)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Lookup(%q) = (%q, %v), want (%q, %v)", tt.arg, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestNames(t *testing.T) {
	names := Names()

	if len(names) != len(palette) {
		t.Fatalf("Names() returned %d entries, want %d", len(names), len(palette))
	}

	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("Names() not sorted: %q before %q", names[i-1], names[i])
		}
	}

	for _, name := range names {
		if _, ok := Lookup(name); !ok {
			t.Errorf("Names() entry %q not resolvable via Lookup", name)
		}
	}
}
