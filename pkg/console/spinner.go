package console

import (
	"fmt"
	"time"
)

// spinnerFrames is the fixed four-frame cycle drawn in place.
var spinnerFrames = [...]string{"|", "/", "-", "\\"}

// Spin draws a spinner animation on the current line, advancing one frame
// every interval, until at least duration has elapsed on the monotonic
// clock. The line is overwritten in place with a carriage return and cleared
// when the animation finishes.
//
// Spin blocks the calling goroutine for the whole animation.
func (t *Terminal) Spin(duration, interval time.Duration) {
	start := t.now()
	frame := 0

	for {
		fmt.Fprintf(t.out(), "\r%s", spinnerFrames[frame])
		frame = (frame + 1) % len(spinnerFrames)

		t.sleep(interval)
		if t.now().Sub(start) >= duration {
			break
		}
	}

	// Overwrite the last frame and move to the next line.
	fmt.Fprint(t.out(), "\r \n")
}
