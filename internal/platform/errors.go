package platform

import "errors"

// Error taxonomy shared by all platform backends. Callers distinguish these
// with errors.Is; none of them is ever swallowed into an empty result.
var (
	// ErrPermissionDenied means the OS refused a capability (screen
	// recording for enumeration/capture, accessibility for input
	// injection). Fatal to the call and surfaced verbatim.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrWindowNotFound means a window ID stopped resolving between
	// resolution and use.
	ErrWindowNotFound = errors.New("window not found")

	// ErrWindowNotCapturable means the window resolved but cannot produce
	// pixels (minimized or fully off-screen). Reported instead of a blank
	// buffer.
	ErrWindowNotCapturable = errors.New("window not capturable")
)
