package console

import (
	"fmt"
	"time"
)

// TypeText writes text to the terminal one rune at a time, pausing between
// runes for a duration drawn uniformly at random from [min, max] inclusive.
// Each rune is written individually so unbuffered sinks show partial output
// immediately. A degenerate range (max <= min) pauses exactly min per rune.
//
// TypeText blocks the calling goroutine for the whole animation; there is no
// cancellation.
func (t *Terminal) TypeText(text string, min, max time.Duration) {
	for _, r := range text {
		fmt.Fprintf(t.out(), "%c", r)
		t.sleep(t.typeDelay(min, max))
	}
}

func (t *Terminal) typeDelay(min, max time.Duration) time.Duration {
	span := max - min
	if span <= 0 {
		return min
	}
	return min + time.Duration(t.rand().Int63n(int64(span)+1))
}
