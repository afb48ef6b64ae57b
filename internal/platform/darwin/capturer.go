//go:build darwin && cgo

package darwin

/*
#cgo LDFLAGS: -framework CoreGraphics -framework CoreFoundation
#include <CoreGraphics/CoreGraphics.h>
#include <stdlib.h>
#include <string.h>

typedef struct {
    unsigned char *data;
    int width;
    int height;
    int bytesPerRow;
    int bgra; // nonzero when pixels are 32-bit little-endian alpha-first (BGRA)
} CaptureBuffer;

#define CG_CAPTURE_OK          0
#define CG_CAPTURE_NO_IMAGE    1
#define CG_CAPTURE_EMPTY       2
#define CG_CAPTURE_NO_DATA     3

// Capture exactly one window at backing resolution, excluding frame shadow.
// kCGWindowListOptionIncludingWindow restricts compositing to the target
// window; kCGWindowImageBestResolution sizes the image in physical pixels on
// scaled displays. Caller frees via cg_free_capture.
static int cg_capture_window(uint32_t windowID, CaptureBuffer *out) {
    CGImageRef image = CGWindowListCreateImage(
        CGRectNull,
        kCGWindowListOptionIncludingWindow,
        (CGWindowID)windowID,
        kCGWindowImageBoundsIgnoreFraming | kCGWindowImageBestResolution);
    if (!image) return CG_CAPTURE_NO_IMAGE;

    size_t width = CGImageGetWidth(image);
    size_t height = CGImageGetHeight(image);
    if (width == 0 || height == 0) {
        CGImageRelease(image);
        return CG_CAPTURE_EMPTY;
    }

    CGDataProviderRef provider = CGImageGetDataProvider(image);
    CFDataRef data = provider ? CGDataProviderCopyData(provider) : NULL;
    if (!data) {
        CGImageRelease(image);
        return CG_CAPTURE_NO_DATA;
    }

    CFIndex length = CFDataGetLength(data);
    unsigned char *buf = malloc(length);
    if (!buf) {
        CFRelease(data);
        CGImageRelease(image);
        return CG_CAPTURE_NO_DATA;
    }
    memcpy(buf, CFDataGetBytePtr(data), length);

    CGBitmapInfo bitmapInfo = CGImageGetBitmapInfo(image);
    CGImageAlphaInfo alphaInfo = bitmapInfo & kCGBitmapAlphaInfoMask;
    int littleEndian = (bitmapInfo & kCGBitmapByteOrderMask) == kCGBitmapByteOrder32Little;
    int alphaFirst = alphaInfo == kCGImageAlphaPremultipliedFirst ||
                     alphaInfo == kCGImageAlphaFirst ||
                     alphaInfo == kCGImageAlphaNoneSkipFirst;

    out->data = buf;
    out->width = (int)width;
    out->height = (int)height;
    out->bytesPerRow = (int)CGImageGetBytesPerRow(image);
    out->bgra = littleEndian && alphaFirst;

    CFRelease(data);
    CGImageRelease(image);
    return CG_CAPTURE_OK;
}

static void cg_free_capture(CaptureBuffer *buf) {
    free(buf->data);
    buf->data = NULL;
}

// Check whether a window ID still resolves to an on-screen window.
static int cg_window_exists(uint32_t windowID) {
    CFArrayRef ids = CFArrayCreate(NULL, (const void *[]){(void *)(uintptr_t)windowID}, 1, NULL);
    CFArrayRef descs = CGWindowListCreateDescriptionFromArray(ids);
    int exists = descs && CFArrayGetCount(descs) > 0;
    if (descs) CFRelease(descs);
    CFRelease(ids);
    return exists;
}
*/
import "C"
import (
	"fmt"
	"unsafe"

	"github.com/jhead/macos-screen-mcp/internal/model"
	"github.com/jhead/macos-screen-mcp/internal/pixel"
	"github.com/jhead/macos-screen-mcp/internal/platform"
)

// Capturer implements platform.ScreenCapturer for macOS.
type Capturer struct{}

// NewCapturer creates a macOS screen capturer.
func NewCapturer() *Capturer {
	return &Capturer{}
}

// CaptureWindow captures the target window's visible content at backing
// resolution and normalizes the pixel buffer to RGBA.
func (c *Capturer) CaptureWindow(windowID int) (*model.CaptureResult, error) {
	if !HasScreenRecordingPermission() {
		return nil, fmt.Errorf("screen capture: %w (grant Screen Recording under System Settings > Privacy & Security)", platform.ErrPermissionDenied)
	}

	var buf C.CaptureBuffer
	rc := C.cg_capture_window(C.uint32_t(windowID), &buf)
	if rc != C.CG_CAPTURE_OK {
		if C.cg_window_exists(C.uint32_t(windowID)) == 0 {
			return nil, fmt.Errorf("window %d: %w", windowID, platform.ErrWindowNotFound)
		}
		return nil, fmt.Errorf("window %d: %w", windowID, platform.ErrWindowNotCapturable)
	}
	defer C.cg_free_capture(&buf)

	width := int(buf.width)
	height := int(buf.height)
	bytesPerRow := int(buf.bytesPerRow)
	src := C.GoBytes(unsafe.Pointer(buf.data), C.int(height*bytesPerRow))

	var pixels []byte
	var err error
	if buf.bgra != 0 {
		pixels, err = pixel.FromBGRA(src, width, height, bytesPerRow)
	} else {
		pixels, err = pixel.FromRGBA(src, width, height, bytesPerRow)
	}
	if err != nil {
		return nil, fmt.Errorf("normalize capture for window %d: %w", windowID, err)
	}

	return &model.CaptureResult{Width: width, Height: height, Pixels: pixels}, nil
}
