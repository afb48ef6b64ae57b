//go:build darwin && cgo

package darwin

/*
#cgo LDFLAGS: -framework CoreGraphics -framework CoreFoundation
#include <CoreGraphics/CoreGraphics.h>
#include <stdlib.h>
#include <string.h>

typedef struct {
    uint32_t windowID;
    int pid;
    int layer;
    int onscreen;
    double x, y, w, h;
    char *title;
    char *owner;
} WindowInfo;

static char *copy_cfstring(CFStringRef s) {
    if (!s) return strdup("");
    CFIndex len = CFStringGetMaximumSizeForEncoding(CFStringGetLength(s), kCFStringEncodingUTF8) + 1;
    char *buf = malloc(len);
    if (!buf) return NULL;
    if (!CFStringGetCString(s, buf, len, kCFStringEncodingUTF8)) {
        buf[0] = '\0';
    }
    return buf;
}

// List all on-screen windows in front-to-back order. Caller frees via
// cg_free_windows. Returns 0 on success.
static int cg_list_windows(WindowInfo **out, int *count) {
    CFArrayRef list = CGWindowListCopyWindowInfo(
        kCGWindowListOptionOnScreenOnly | kCGWindowListOptionExcludeDesktopElements,
        kCGNullWindowID);
    if (!list) return -1;

    CFIndex n = CFArrayGetCount(list);
    WindowInfo *infos = calloc(n > 0 ? n : 1, sizeof(WindowInfo));
    if (!infos) {
        CFRelease(list);
        return -1;
    }

    int written = 0;
    for (CFIndex i = 0; i < n; i++) {
        CFDictionaryRef win = CFArrayGetValueAtIndex(list, i);
        WindowInfo *info = &infos[written];

        CFNumberRef num = CFDictionaryGetValue(win, kCGWindowNumber);
        if (!num) continue;
        int64_t windowID = 0;
        CFNumberGetValue(num, kCFNumberSInt64Type, &windowID);
        info->windowID = (uint32_t)windowID;

        num = CFDictionaryGetValue(win, kCGWindowOwnerPID);
        if (num) CFNumberGetValue(num, kCFNumberIntType, &info->pid);

        num = CFDictionaryGetValue(win, kCGWindowLayer);
        if (num) CFNumberGetValue(num, kCFNumberIntType, &info->layer);

        CFBooleanRef onscreen = CFDictionaryGetValue(win, kCGWindowIsOnscreen);
        info->onscreen = (onscreen == NULL) || CFBooleanGetValue(onscreen);

        CFDictionaryRef boundsDict = CFDictionaryGetValue(win, kCGWindowBounds);
        if (boundsDict) {
            CGRect rect;
            if (CGRectMakeWithDictionaryRepresentation(boundsDict, &rect)) {
                info->x = rect.origin.x;
                info->y = rect.origin.y;
                info->w = rect.size.width;
                info->h = rect.size.height;
            }
        }

        info->title = copy_cfstring(CFDictionaryGetValue(win, kCGWindowName));
        info->owner = copy_cfstring(CFDictionaryGetValue(win, kCGWindowOwnerName));
        written++;
    }

    CFRelease(list);
    *out = infos;
    *count = written;
    return 0;
}

static void cg_free_windows(WindowInfo *infos, int count) {
    if (!infos) return;
    for (int i = 0; i < count; i++) {
        free(infos[i].title);
        free(infos[i].owner);
    }
    free(infos);
}
*/
import "C"
import (
	"fmt"
	"unsafe"

	"github.com/jhead/macos-screen-mcp/internal/model"
	"github.com/jhead/macos-screen-mcp/internal/platform"
)

// WindowServer implements platform.WindowServer against the macOS window
// server.
type WindowServer struct{}

// NewWindowServer creates a macOS window server client.
func NewWindowServer() *WindowServer {
	return &WindowServer{}
}

// ListWindows snapshots all on-screen windows in front-to-back order. The OS
// is queried on every call; nothing is cached between calls.
func (ws *WindowServer) ListWindows() ([]model.Window, error) {
	var cInfos *C.WindowInfo
	var cCount C.int

	if C.cg_list_windows(&cInfos, &cCount) != 0 {
		if !HasScreenRecordingPermission() {
			return nil, fmt.Errorf("window enumeration: %w", platform.ErrPermissionDenied)
		}
		return nil, fmt.Errorf("failed to enumerate windows")
	}
	defer C.cg_free_windows(cInfos, cCount)

	count := int(cCount)
	windows := make([]model.Window, 0, count)
	if count == 0 {
		return windows, nil
	}

	for _, cw := range unsafe.Slice(cInfos, count) {
		if cw.onscreen == 0 {
			continue
		}
		windows = append(windows, model.Window{
			ID:    int(cw.windowID),
			Title: C.GoString(cw.title),
			Owner: C.GoString(cw.owner),
			PID:   int(cw.pid),
			Bounds: [4]int{
				int(cw.x),
				int(cw.y),
				int(cw.w),
				int(cw.h),
			},
			Layer:    int(cw.layer),
			OnScreen: true,
		})
	}
	return windows, nil
}
