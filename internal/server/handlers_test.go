package server

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhead/macos-screen-mcp/internal/config"
	"github.com/jhead/macos-screen-mcp/internal/keyboard"
	"github.com/jhead/macos-screen-mcp/internal/keys"
	"github.com/jhead/macos-screen-mcp/internal/model"
	"github.com/jhead/macos-screen-mcp/internal/platform"
)

type fakeWindowServer struct {
	windows []model.Window
	err     error
}

func (f *fakeWindowServer) ListWindows() ([]model.Window, error) {
	return f.windows, f.err
}

type fakeCapturer struct {
	result *model.CaptureResult
	err    error
}

func (f *fakeCapturer) CaptureWindow(windowID int) (*model.CaptureResult, error) {
	return f.result, f.err
}

type recordingInjector struct {
	chords []keys.Chord
}

func (r *recordingInjector) PostChord(chord keys.Chord) error {
	r.chords = append(r.chords, chord)
	return nil
}

func newTestServer(t *testing.T) (*Server, *recordingInjector) {
	t.Helper()
	inj := &recordingInjector{}
	capture := &model.CaptureResult{
		Width:  2,
		Height: 2,
		Pixels: make([]byte, 16),
	}
	s := &Server{
		provider: &platform.Provider{
			WindowServer: &fakeWindowServer{windows: []model.Window{
				{ID: 11, Title: "Release Notes", Owner: "Safari"},
				{ID: 22, Title: "Inbox", Owner: "Mail"},
			}},
			Capturer:      &fakeCapturer{result: capture},
			InputInjector: inj,
		},
		synth: keyboard.NewSynthesizer(inj),
		cfg: &config.Config{
			ScreenshotDir: t.TempDir(),
			TypeDelay:     10 * time.Millisecond,
		},
	}
	return s, inj
}

func callRequest(args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func textOf(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	tc, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return tc.Text
}

func TestHandleListWindows(t *testing.T) {
	s, _ := newTestServer(t)
	result, err := s.handleListWindows(context.Background(), callRequest(nil))
	require.NoError(t, err)
	assert.False(t, result.IsError)

	text := textOf(t, result)
	assert.Contains(t, text, "Release Notes")
	assert.Contains(t, text, "Mail")
}

func TestHandleFindWindow_Found(t *testing.T) {
	s, _ := newTestServer(t)
	result, err := s.handleFindWindow(context.Background(), callRequest(map[string]interface{}{
		"title": "inbox",
	}))
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Contains(t, textOf(t, result), "22")
}

func TestHandleFindWindow_NotFound(t *testing.T) {
	s, _ := newTestServer(t)
	result, err := s.handleFindWindow(context.Background(), callRequest(map[string]interface{}{
		"title": "NoSuchApp",
	}))
	require.NoError(t, err, "NotFound is a tool error, not a fault")
	assert.True(t, result.IsError)
	assert.Contains(t, textOf(t, result), "NoSuchApp")
}

func TestHandleFindWindow_OwnerOptOut(t *testing.T) {
	s, _ := newTestServer(t)
	result, err := s.handleFindWindow(context.Background(), callRequest(map[string]interface{}{
		"title":        "safari",
		"search_owner": false,
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestHandleCaptureScreenshot_Base64(t *testing.T) {
	s, _ := newTestServer(t)
	result, err := s.handleCaptureScreenshot(context.Background(), callRequest(map[string]interface{}{
		"window_identifier": "11",
		"format":            "base64",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	img, ok := result.Content[0].(mcp.ImageContent)
	require.True(t, ok, "expected image content")
	assert.Equal(t, "image/png", img.MIMEType)
	assert.NotEmpty(t, img.Data)
}

func TestHandleCaptureScreenshot_BinarySavesFile(t *testing.T) {
	s, _ := newTestServer(t)
	result, err := s.handleCaptureScreenshot(context.Background(), callRequest(map[string]interface{}{
		"window_identifier": "Release Notes",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	text := textOf(t, result)
	assert.Contains(t, text, "window_id: 11")
	assert.Contains(t, text, ".png")
}

func TestHandleCaptureScreenshot_BadFormat(t *testing.T) {
	s, _ := newTestServer(t)
	result, err := s.handleCaptureScreenshot(context.Background(), callRequest(map[string]interface{}{
		"window_identifier": "11",
		"format":            "jpeg",
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestHandleSendKey_ModifiedChord(t *testing.T) {
	s, inj := newTestServer(t)
	result, err := s.handleSendKey(context.Background(), callRequest(map[string]interface{}{
		"key":       "return",
		"modifiers": []interface{}{"command"},
	}))
	require.NoError(t, err)
	assert.False(t, result.IsError)

	require.Len(t, inj.chords, 1)
	assert.Equal(t, keys.KeyReturn, inj.chords[0].Key)
	assert.Equal(t, []keys.Modifier{keys.ModCommand}, inj.chords[0].Modifiers)
}

func TestHandleSendKey_UnsupportedRejectedBeforeDispatch(t *testing.T) {
	s, inj := newTestServer(t)
	result, err := s.handleSendKey(context.Background(), callRequest(map[string]interface{}{
		"key": "f13",
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Empty(t, inj.chords, "no partial dispatch for an unresolvable key")
}

func TestHandleTypeText_Success(t *testing.T) {
	s, inj := newTestServer(t)
	result, err := s.handleTypeText(context.Background(), callRequest(map[string]interface{}{
		"text":  "hi",
		"delay": 0.0,
	}))
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Len(t, inj.chords, 2)
	assert.Contains(t, textOf(t, result), "chars_sent: 2")
}

func TestHandleTypeText_PartialFailureReportsCount(t *testing.T) {
	s, inj := newTestServer(t)
	result, err := s.handleTypeText(context.Background(), callRequest(map[string]interface{}{
		"text":  "ok!",
		"delay": 0.0,
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)

	text := textOf(t, result)
	assert.Contains(t, text, "chars_sent: 2")
	assert.True(t, strings.Contains(text, "partial_failure"))
	assert.Len(t, inj.chords, 2)
}
