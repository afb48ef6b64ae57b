package cmd

import (
	"fmt"

	"github.com/jhead/macos-screen-mcp/internal/config"
	"github.com/jhead/macos-screen-mcp/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing window and keyboard tools",
	Long: `Start a Model Context Protocol (MCP) server exposing list_windows,
find_window, capture_window_screenshot, send_key, and type_text as tools.

Supported transports:
  stdio             Standard I/O (default, for MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Configuration defaults come from MACOS_SCREEN_MCP_* environment variables;
flags override them.

Examples:
  macos-screen-mcp serve
  macos-screen-mcp serve --transport streamable-http --port 8000`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 0, "HTTP port for streamable-http transport")
	serveCmd.Flags().String("screenshot-dir", "", "Directory for binary-format screenshots")
	serveCmd.Flags().Duration("type-delay", 0, "Default delay between keystrokes for type_text")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if transport, _ := cmd.Flags().GetString("transport"); transport != "" {
		cfg.Transport = transport
	}
	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		cfg.Port = port
	}
	if dir, _ := cmd.Flags().GetString("screenshot-dir"); dir != "" {
		cfg.ScreenshotDir = dir
	}
	if delay, _ := cmd.Flags().GetDuration("type-delay"); delay != 0 {
		if delay < 0 {
			return fmt.Errorf("negative type delay %v", delay)
		}
		cfg.TypeDelay = delay
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}
	return srv.Serve()
}
