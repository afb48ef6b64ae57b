// Package server exposes window discovery, screenshot capture, and keyboard
// synthesis as MCP tools.
package server

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/jhead/macos-screen-mcp/internal/config"
	"github.com/jhead/macos-screen-mcp/internal/keyboard"
	"github.com/jhead/macos-screen-mcp/internal/logger"
	"github.com/jhead/macos-screen-mcp/internal/platform"
)

// Server wraps the MCP server with the platform provider and the shared
// keyboard synthesizer. Keyboard tools funnel through one Synthesizer so
// concurrent invocations queue on its dispatch lock; window listing and
// capture take no lock and may run concurrently.
type Server struct {
	provider *platform.Provider
	synth    *keyboard.Synthesizer
	cfg      *config.Config
	mcp      *mcpserver.MCPServer
}

// New creates and configures an MCP server with all tools registered.
func New(cfg *config.Config) (*Server, error) {
	provider, err := platform.NewProvider()
	if err != nil {
		return nil, err
	}

	s := &Server{
		provider: provider,
		synth:    keyboard.NewSynthesizer(provider.InputInjector),
		cfg:      cfg,
	}

	s.mcp = mcpserver.NewMCPServer(
		"macos-screen-mcp",
		"1.0.0",
	)

	s.registerTools()
	return s, nil
}

// Serve starts the MCP server on the configured transport.
func (s *Server) Serve() error {
	switch s.cfg.Transport {
	case "stdio":
		logger.Info().Msg("serving MCP over stdio")
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		logger.Info().Int("port", s.cfg.Port).Msg("serving MCP over streamable HTTP")
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", s.cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", s.cfg.Transport)
	}
}

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("list_windows",
			mcp.WithDescription("List all visible windows with their ID, title, owner application, and bounds"),
		),
		s.handleListWindows,
	)

	s.mcp.AddTool(
		mcp.NewTool("find_window",
			mcp.WithDescription("Find the best-matching window by title or owner application name. Exact title matches win over owner matches, which win over substring matches."),
			mcp.WithString("title", mcp.Description("Window title or owner name to search for"), mcp.Required()),
			mcp.WithBoolean("search_owner", mcp.Description("Also search owner application names (default: true)")),
		),
		s.handleFindWindow,
	)

	s.mcp.AddTool(
		mcp.NewTool("capture_window_screenshot",
			mcp.WithDescription("Capture a screenshot of a specific window by its title or numeric ID. Returns a PNG."),
			mcp.WithString("window_identifier", mcp.Description("Window title to search for, or a numeric window ID"), mcp.Required()),
			mcp.WithBoolean("search_owner", mcp.Description("Also search owner application names when resolving (default: true)")),
			mcp.WithString("format", mcp.Description("Output format: binary (save to file, return path) or base64 (inline image) (default: binary)")),
			mcp.WithNumber("scale", mcp.Description("Downscale factor in (0,1]; 1.0 keeps backing resolution (default: 1.0)")),
		),
		s.handleCaptureScreenshot,
	)

	s.mcp.AddTool(
		mcp.NewTool("send_key",
			mcp.WithDescription("Send one keyboard key press (down+up) to the active window. Keys: a-z, 0-9, return, tab, space, delete, escape, up_arrow, down_arrow, left_arrow, right_arrow, and modifier keys."),
			mcp.WithString("key", mcp.Description("Key to press (e.g. 'a', 'return', 'space')"), mcp.Required()),
			mcp.WithArray("modifiers", mcp.Description("Modifiers to hold: command, shift, control, option, right_shift, right_option, right_control")),
		),
		s.handleSendKey,
	)

	s.mcp.AddTool(
		mcp.NewTool("type_text",
			mcp.WithDescription("Type a sequence of characters into the active window, one keystroke at a time. Supports letters, digits, space, newline, and tab."),
			mcp.WithString("text", mcp.Description("Text to type"), mcp.Required()),
			mcp.WithNumber("delay", mcp.Description("Delay between keystrokes in seconds (default: 0.1)")),
		),
		s.handleTypeText,
	)
}
