package console

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"
)

// LineReader reads one delimited chunk of input. *bufio.Reader satisfies it;
// tests substitute scripted readers.
type LineReader interface {
	ReadString(delim byte) (string, error)
}

// Terminal bundles the console capabilities the interactive routines need.
// Every field is optional: unset fields fall back to the real console,
// time.Sleep, time.Now and a time-seeded random generator. A Terminal owns
// its streams exclusively for the duration of each call; do not run two
// interactive routines against the same streams concurrently.
type Terminal struct {
	// Out receives all rendered output. Defaults to os.Stdout.
	Out io.Writer

	// In supplies user input, one line at a time. Defaults to a buffered
	// reader over os.Stdin.
	In LineReader

	// Rand drives the typewriter effect's delay jitter.
	Rand *rand.Rand

	// Sleep blocks for the given duration. Defaults to time.Sleep.
	Sleep func(time.Duration)

	// Now reads the clock for elapsed-time measurement. time.Now carries a
	// monotonic reading, which is what the spinner relies on.
	Now func() time.Time
}

// NewTerminal returns a Terminal wired to the process console with real
// timing and randomness.
func NewTerminal() *Terminal {
	return &Terminal{
		Out:   os.Stdout,
		In:    bufio.NewReader(os.Stdin),
		Rand:  rand.New(rand.NewSource(time.Now().UnixNano())),
		Sleep: time.Sleep,
		Now:   time.Now,
	}
}

func (t *Terminal) out() io.Writer {
	if t.Out != nil {
		return t.Out
	}
	return os.Stdout
}

func (t *Terminal) in() LineReader {
	if t.In == nil {
		t.In = bufio.NewReader(os.Stdin)
	}
	return t.In
}

func (t *Terminal) rand() *rand.Rand {
	if t.Rand == nil {
		t.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return t.Rand
}

func (t *Terminal) sleep(d time.Duration) {
	if t.Sleep != nil {
		t.Sleep(d)
		return
	}
	time.Sleep(d)
}

func (t *Terminal) now() time.Time {
	if t.Now != nil {
		return t.Now()
	}
	return time.Now()
}

// Pause prints message on its own line and blocks until one line of input
// has been consumed (typically the user pressing Enter). The line's content
// is discarded; a read error also unblocks.
func (t *Terminal) Pause(message string) {
	fmt.Fprintln(t.out(), message)
	_, _ = t.in().ReadString('\n')
}
