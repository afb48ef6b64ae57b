//go:build darwin && cgo

package darwin

/*
#cgo LDFLAGS: -framework CoreGraphics -framework CoreFoundation
#include <CoreGraphics/CoreGraphics.h>
#include <unistd.h>

// Post one key-down/key-up pair with modifier flags held across both events.
static int cg_post_chord(CGKeyCode keyCode, CGEventFlags flags) {
    CGEventRef down = CGEventCreateKeyboardEvent(NULL, keyCode, true);
    CGEventRef up = CGEventCreateKeyboardEvent(NULL, keyCode, false);
    if (!down || !up) {
        if (down) CFRelease(down);
        if (up) CFRelease(up);
        return -1;
    }
    if (flags) {
        CGEventSetFlags(down, flags);
        CGEventSetFlags(up, flags);
    }
    CGEventPost(kCGHIDEventTap, down);
    usleep(10000); // let the down event settle before the up
    CGEventPost(kCGHIDEventTap, up);
    CFRelease(down);
    CFRelease(up);
    return 0;
}
*/
import "C"
import (
	"fmt"

	"github.com/jhead/macos-screen-mcp/internal/keys"
	"github.com/jhead/macos-screen-mcp/internal/platform"
)

// Carbon virtual key codes (Events.h) for every logical key name.
var virtualKeyCodes = map[keys.Key]uint16{
	"a": 0x00, "b": 0x0B, "c": 0x08, "d": 0x02, "e": 0x0E, "f": 0x03,
	"g": 0x05, "h": 0x04, "i": 0x22, "j": 0x26, "k": 0x28, "l": 0x25,
	"m": 0x2E, "n": 0x2D, "o": 0x1F, "p": 0x23, "q": 0x0C, "r": 0x0F,
	"s": 0x01, "t": 0x11, "u": 0x20, "v": 0x09, "w": 0x0D, "x": 0x07,
	"y": 0x10, "z": 0x06,
	"0": 0x1D, "1": 0x12, "2": 0x13, "3": 0x14, "4": 0x15,
	"5": 0x17, "6": 0x16, "7": 0x1A, "8": 0x1C, "9": 0x19,
	keys.KeyReturn: 0x24, keys.KeyTab: 0x30, keys.KeySpace: 0x31,
	keys.KeyDelete: 0x33, keys.KeyEscape: 0x35,
	keys.KeyLeftArrow: 0x7B, keys.KeyRightArrow: 0x7C,
	keys.KeyDownArrow: 0x7D, keys.KeyUpArrow: 0x7E,
	keys.Key(keys.ModCommand): 0x37, keys.Key(keys.ModShift): 0x38,
	keys.Key(keys.ModOption): 0x3A, keys.Key(keys.ModControl): 0x3B,
	keys.Key(keys.ModRightShift): 0x3C, keys.Key(keys.ModRightOption): 0x3D,
	keys.Key(keys.ModRightControl): 0x3E,
}

// Modifier masks. CGEventFlags does not distinguish left from right, so the
// right-hand variants share the base masks.
var modifierMasks = map[keys.Modifier]uint64{
	keys.ModCommand:      uint64(C.kCGEventFlagMaskCommand),
	keys.ModShift:        uint64(C.kCGEventFlagMaskShift),
	keys.ModControl:      uint64(C.kCGEventFlagMaskControl),
	keys.ModOption:       uint64(C.kCGEventFlagMaskAlternate),
	keys.ModRightShift:   uint64(C.kCGEventFlagMaskShift),
	keys.ModRightOption:  uint64(C.kCGEventFlagMaskAlternate),
	keys.ModRightControl: uint64(C.kCGEventFlagMaskControl),
}

// InputInjector implements platform.InputInjector using Quartz key events
// posted to the HID event tap. Events land in whatever window holds focus.
type InputInjector struct{}

// NewInputInjector creates a macOS input injector.
func NewInputInjector() *InputInjector {
	return &InputInjector{}
}

// PostChord dispatches one down/up event pair for the chord.
func (inj *InputInjector) PostChord(chord keys.Chord) error {
	if !HasInputInjectionPermission() {
		return fmt.Errorf("key injection: %w (grant Accessibility under System Settings > Privacy & Security)", platform.ErrPermissionDenied)
	}

	code, ok := virtualKeyCodes[chord.Key]
	if !ok {
		// The keys package validates names at the boundary, so every
		// valid Key must have a code here.
		return fmt.Errorf("%w: no virtual key code for %q", keys.ErrUnsupportedKey, chord.Key)
	}

	var flags uint64
	for _, m := range chord.Modifiers {
		flags |= modifierMasks[m]
	}

	if C.cg_post_chord(C.CGKeyCode(code), C.CGEventFlags(flags)) != 0 {
		return fmt.Errorf("failed to post key event for %q", chord.Key)
	}
	return nil
}
