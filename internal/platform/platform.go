package platform

import (
	"github.com/jhead/macos-screen-mcp/internal/keys"
	"github.com/jhead/macos-screen-mcp/internal/model"
)

// WindowServer enumerates on-screen windows from the OS window server.
type WindowServer interface {
	// ListWindows returns all currently on-screen windows in front-to-back
	// order (front first). Implementations must query the OS on every call;
	// the dominant use case is "find the window I just opened", so a stale
	// snapshot is never acceptable.
	ListWindows() ([]model.Window, error)
}

// ScreenCapturer captures a window's visible pixel content.
type ScreenCapturer interface {
	// CaptureWindow captures exactly the target window (no frame shadow,
	// nothing composited in from other windows) at backing resolution, with
	// pixels normalized to RGBA byte order.
	CaptureWindow(windowID int) (*model.CaptureResult, error)
}

// InputInjector posts synthetic keyboard events to the OS input subsystem.
// Events land in whatever window holds input focus; forcing focus is a caller
// responsibility.
type InputInjector interface {
	// PostChord dispatches one key-down/key-up pair with the chord's
	// modifier flags held across both events.
	PostChord(chord keys.Chord) error
}
