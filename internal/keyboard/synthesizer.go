// Package keyboard turns validated key chords into serialized OS key events.
package keyboard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jhead/macos-screen-mcp/internal/keys"
	"github.com/jhead/macos-screen-mcp/internal/platform"
)

// PartialError reports a typing operation that dispatched some characters
// before failing. Sent is the number of characters already delivered to the
// OS; they cannot be taken back, so the caller must know about them.
type PartialError struct {
	Sent int
	Err  error
}

func (e *PartialError) Error() string {
	return fmt.Sprintf("typing aborted after %d character(s): %v", e.Sent, e.Err)
}

func (e *PartialError) Unwrap() error { return e.Err }

// Synthesizer dispatches key chords through an InputInjector. All dispatch is
// serialized on one lock: OS input injection is a shared, globally-ordered
// resource, and interleaving chords from concurrent callers would scramble
// keystroke order. Concurrent callers queue rather than fail fast.
type Synthesizer struct {
	injector platform.InputInjector
	mu       sync.Mutex
}

// NewSynthesizer creates a Synthesizer backed by the given injector.
func NewSynthesizer(injector platform.InputInjector) *Synthesizer {
	return &Synthesizer{injector: injector}
}

// SendKey dispatches a single chord as one down/up pair with modifiers held.
// The chord is already validated; no event is posted for an invalid one.
func (s *Synthesizer) SendKey(chord keys.Chord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.injector.PostChord(chord)
}

// TypeText dispatches each character of text strictly in order, pausing for
// delay between characters. The lock is held for the whole sequence so a
// concurrent SendKey cannot land mid-text. Cancellation is honored between
// characters, never mid-chord. An unsupported character or cancellation
// returns a *PartialError carrying the number of characters already sent.
func (s *Synthesizer) TypeText(ctx context.Context, text string, delay time.Duration) error {
	if delay < 0 {
		return fmt.Errorf("negative inter-key delay %v", delay)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	runes := []rune(text)
	sent := 0
	for _, r := range runes {
		if err := ctx.Err(); err != nil {
			return &PartialError{Sent: sent, Err: err}
		}

		chord, err := keys.ChordForChar(r)
		if err != nil {
			return &PartialError{Sent: sent, Err: err}
		}
		if err := s.injector.PostChord(chord); err != nil {
			return &PartialError{Sent: sent, Err: err}
		}
		sent++

		if delay > 0 && sent < len(runes) {
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return &PartialError{Sent: sent, Err: ctx.Err()}
			}
		}
	}
	return nil
}
