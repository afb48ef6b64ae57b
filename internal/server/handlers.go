package server

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"gopkg.in/yaml.v3"

	"github.com/jhead/macos-screen-mcp/internal/keyboard"
	"github.com/jhead/macos-screen-mcp/internal/keys"
	"github.com/jhead/macos-screen-mcp/internal/logger"
	"github.com/jhead/macos-screen-mcp/internal/model"
	"github.com/jhead/macos-screen-mcp/internal/output"
)

// resultText serializes v to YAML for an MCP text result.
func resultText(v interface{}) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

func (s *Server) handleListWindows(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	windows, err := s.provider.WindowServer.ListWindows()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	logger.Debug().Int("count", len(windows)).Msg("listed windows")
	return mcp.NewToolResultText(resultText(windows)), nil
}

func (s *Server) handleFindWindow(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	title := stringParam(params, "title", "")
	searchOwner := boolParam(params, "search_owner", true)

	if title == "" {
		return mcp.NewToolResultError("title is required"), nil
	}

	windows, err := s.provider.WindowServer.ListWindows()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	w, err := model.FindBestMatch(windows, model.Query{Text: title, SearchOwner: searchOwner})
	if errors.Is(err, model.ErrNoMatch) {
		scope := "title"
		if searchOwner {
			scope = "title or owner"
		}
		return mcp.NewToolResultError(fmt.Sprintf("no window found with %s containing %q", scope, title)), nil
	}
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(resultText(w)), nil
}

// screenshotResult is returned for binary-format captures.
type screenshotResult struct {
	WindowID    int    `yaml:"window_id"`
	WindowTitle string `yaml:"window_title,omitempty"`
	Owner       string `yaml:"owner"`
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	Path        string `yaml:"path"`
}

func (s *Server) handleCaptureScreenshot(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	identifier := stringParam(params, "window_identifier", "")
	searchOwner := boolParam(params, "search_owner", true)
	format := stringParam(params, "format", "binary")
	scale := floatParam(params, "scale", 1.0)

	if identifier == "" {
		return mcp.NewToolResultError("window_identifier is required"), nil
	}
	if format != "binary" && format != "base64" {
		return mcp.NewToolResultError(fmt.Sprintf("unsupported format %q (use binary or base64)", format)), nil
	}

	windows, err := s.provider.WindowServer.ListWindows()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	w, err := model.ResolveIdentifier(windows, identifier, searchOwner)
	if errors.Is(err, model.ErrNoMatch) {
		return mcp.NewToolResultError(fmt.Sprintf("no window found matching %q", identifier)), nil
	}
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	capture, err := s.provider.Capturer.CaptureWindow(w.ID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	logger.Debug().
		Int("window_id", w.ID).
		Int("width", capture.Width).
		Int("height", capture.Height).
		Msg("captured window")

	data, err := output.EncodePNG(capture, scale)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if format == "base64" {
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.ImageContent{
					Type:     "image",
					Data:     output.EncodeBase64(data),
					MIMEType: "image/png",
				},
			},
		}, nil
	}

	path, err := s.saveScreenshot(data)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(resultText(screenshotResult{
		WindowID:    w.ID,
		WindowTitle: w.Title,
		Owner:       w.Owner,
		Width:       capture.Width,
		Height:      capture.Height,
		Path:        path,
	})), nil
}

// saveScreenshot writes PNG bytes under the configured screenshots directory
// with a unique timestamped name.
func (s *Server) saveScreenshot(data []byte) (string, error) {
	if err := os.MkdirAll(s.cfg.ScreenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("create screenshot dir: %w", err)
	}
	name := fmt.Sprintf("%s_%s.png",
		time.Now().Format("20060102_150405"),
		uuid.NewString()[:8])
	path := filepath.Join(s.cfg.ScreenshotDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return path, nil
}

// keyResult is returned for successful key dispatch.
type keyResult struct {
	Status    string   `yaml:"status"`
	Key       string   `yaml:"key"`
	Modifiers []string `yaml:"modifiers"`
}

func (s *Server) handleSendKey(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	key := stringParam(params, "key", "")
	modifiers := stringSliceParam(params, "modifiers")

	chord, err := keys.ParseChord(key, modifiers)
	if err != nil {
		// Rejected at the boundary: nothing was dispatched.
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := s.synth.SendKey(chord); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if modifiers == nil {
		modifiers = []string{}
	}
	return mcp.NewToolResultText(resultText(keyResult{
		Status:    "success",
		Key:       string(chord.Key),
		Modifiers: modifiers,
	})), nil
}

// typeResult is returned for typing operations, including partial failures.
type typeResult struct {
	Status    string `yaml:"status"`
	Text      string `yaml:"text,omitempty"`
	CharsSent int    `yaml:"chars_sent"`
	Error     string `yaml:"error,omitempty"`
}

func (s *Server) handleTypeText(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	text := stringParam(params, "text", "")
	delaySec := floatParam(params, "delay", s.cfg.TypeDelay.Seconds())

	if text == "" {
		return mcp.NewToolResultError("text is required"), nil
	}
	if delaySec < 0 {
		return mcp.NewToolResultError("delay must be >= 0"), nil
	}

	delay := time.Duration(delaySec * float64(time.Second))
	err := s.synth.TypeText(ctx, text, delay)
	if err != nil {
		// Partial completion mutated external state; report how far we got
		// so the caller can distinguish "nothing happened" from "some
		// keystrokes landed, then it failed".
		var partial *keyboard.PartialError
		if errors.As(err, &partial) {
			return mcp.NewToolResultError(resultText(typeResult{
				Status:    "partial_failure",
				CharsSent: partial.Sent,
				Error:     partial.Err.Error(),
			})), nil
		}
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(resultText(typeResult{
		Status:    "success",
		Text:      text,
		CharsSent: len([]rune(text)),
	})), nil
}
