//go:build darwin && cgo

package darwin

import "github.com/jhead/macos-screen-mcp/internal/platform"

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		return &platform.Provider{
			WindowServer:  NewWindowServer(),
			Capturer:      NewCapturer(),
			InputInjector: NewInputInjector(),
		}, nil
	}
	platform.RequestPermissionsFunc = func() {
		RequestScreenRecordingPermission()
	}
	platform.PermissionStatusFunc = func() platform.PermissionStatus {
		return platform.PermissionStatus{
			ScreenRecording: HasScreenRecordingPermission(),
			InputInjection:  HasInputInjectionPermission(),
		}
	}
}
