package cmd

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"

	"github.com/jhead/macos-screen-mcp/internal/model"
	"github.com/jhead/macos-screen-mcp/internal/output"
	"github.com/jhead/macos-screen-mcp/internal/platform"
	"github.com/spf13/cobra"
)

var screenshotCmd = &cobra.Command{
	Use:   "screenshot [window]",
	Short: "Capture a window screenshot",
	Long: `Capture the visible content of a single window as a PNG sized at the
display's backing resolution. The window is resolved by title, owner name, or
numeric window ID.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScreenshot,
}

func init() {
	rootCmd.AddCommand(screenshotCmd)
	screenshotCmd.Flags().String("window", "", "Window title, owner, or ID (alternative to positional arg)")
	screenshotCmd.Flags().Bool("search-owner", true, "Also match against owner application names")
	screenshotCmd.Flags().String("output", "", "Output file path (default: stdout as base64)")
	screenshotCmd.Flags().Float64("scale", 1.0, "Downscale factor in (0,1]; 1.0 keeps backing resolution")
}

func runScreenshot(cmd *cobra.Command, args []string) error {
	identifier, _ := cmd.Flags().GetString("window")
	searchOwner, _ := cmd.Flags().GetBool("search-owner")
	outPath, _ := cmd.Flags().GetString("output")
	scale, _ := cmd.Flags().GetFloat64("scale")
	if len(args) > 0 {
		identifier = args[0]
	}
	if identifier == "" {
		return fmt.Errorf("specify a window as a positional argument or via --window")
	}

	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}

	windows, err := provider.WindowServer.ListWindows()
	if err != nil {
		return err
	}
	w, err := model.ResolveIdentifier(windows, identifier, searchOwner)
	if errors.Is(err, model.ErrNoMatch) {
		return fmt.Errorf("no window found matching %q", identifier)
	}
	if err != nil {
		return err
	}

	capture, err := provider.Capturer.CaptureWindow(w.ID)
	if err != nil {
		return err
	}

	data, err := output.EncodePNG(capture, scale)
	if err != nil {
		return err
	}

	if outPath != "" {
		return os.WriteFile(outPath, data, 0o644)
	}

	// Default: write to stdout as base64 for easy agent consumption.
	encoder := base64.NewEncoder(base64.StdEncoding, os.Stdout)
	if _, err := encoder.Write(data); err != nil {
		return err
	}
	if err := encoder.Close(); err != nil {
		return err
	}
	fmt.Println()
	return nil
}
