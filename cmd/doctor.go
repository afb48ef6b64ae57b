package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/jhead/macos-screen-mcp/internal/platform"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check OS permissions",
	Long: `Check whether the process has the OS capabilities this tool needs:
Screen Recording (window titles and capture) and Accessibility (keyboard
input). Grant both under System Settings > Privacy & Security, then restart
your terminal.`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	if platform.PermissionStatusFunc == nil {
		return platform.ErrUnsupported
	}
	status := platform.PermissionStatusFunc()

	printStatus("Screen Recording", status.ScreenRecording)
	printStatus("Accessibility", status.InputInjection)

	if !status.ScreenRecording || !status.InputInjection {
		return fmt.Errorf("missing permissions; see System Settings > Privacy & Security")
	}
	return nil
}

func printStatus(name string, granted bool) {
	if granted {
		fmt.Printf("%s %s\n", color.GreenString("✓"), name)
	} else {
		fmt.Printf("%s %s\n", color.RedString("✗"), name)
	}
}
