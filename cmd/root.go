package cmd

import (
	"fmt"
	"os"

	"github.com/jhead/macos-screen-mcp/internal/logger"
	"github.com/jhead/macos-screen-mcp/internal/output"
	"github.com/jhead/macos-screen-mcp/internal/platform"
	"github.com/jhead/macos-screen-mcp/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "macos-screen-mcp",
	Short: "Window screenshots and keyboard input for AI agents",
	Long:  "Find windows, capture their content, and send keyboard input, exposed as CLI commands and MCP tools.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		level, _ := rootCmd.PersistentFlags().GetString("log-level")
		logger.SetLevel(level)

		if platform.RequestPermissionsFunc != nil {
			platform.RequestPermissionsFunc()
		}

		format, _ := rootCmd.PersistentFlags().GetString("format")
		switch format {
		case "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		default:
			return fmt.Errorf("unsupported format: %s (use yaml or json)", format)
		}

		pretty, _ := rootCmd.PersistentFlags().GetBool("pretty")
		output.PrettyOutput = pretty
		return nil
	}
}
