//go:build darwin && cgo

package darwin

/*
#cgo LDFLAGS: -framework CoreGraphics -framework ApplicationServices
#include <CoreGraphics/CoreGraphics.h>
#include <ApplicationServices/ApplicationServices.h>

static int cg_has_screen_access() {
    return CGPreflightScreenCaptureAccess();
}

static int cg_request_screen_access() {
    return CGRequestScreenCaptureAccess();
}

static int ax_is_trusted() {
    return AXIsProcessTrusted();
}
*/
import "C"

// HasScreenRecordingPermission reports whether the process may read window
// contents (and window titles) from the window server.
func HasScreenRecordingPermission() bool {
	return C.cg_has_screen_access() != 0
}

// RequestScreenRecordingPermission triggers the OS screen-recording prompt.
// Returns true if access is already (or now) granted; the prompt itself only
// appears once per app.
func RequestScreenRecordingPermission() bool {
	return C.cg_request_screen_access() != 0
}

// HasInputInjectionPermission reports whether the process may post synthetic
// input events.
func HasInputInjectionPermission() bool {
	return C.ax_is_trusted() != 0
}
