package cmd

import (
	"strings"

	"github.com/jhead/macos-screen-mcp/internal/model"
	"github.com/jhead/macos-screen-mcp/internal/output"
	"github.com/jhead/macos-screen-mcp/internal/platform"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List visible windows",
	Long:  "List all on-screen windows front-to-back with their ID, title, owner application, and bounds.",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().String("owner", "", "Only show windows of this owner application")
	listCmd.Flags().Bool("titled", false, "Only show windows with a non-empty title")
}

func runList(cmd *cobra.Command, args []string) error {
	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}

	owner, _ := cmd.Flags().GetString("owner")
	titled, _ := cmd.Flags().GetBool("titled")

	windows, err := provider.WindowServer.ListWindows()
	if err != nil {
		return err
	}

	filtered := filterWindows(windows, owner, titled)
	return output.Print(filtered)
}

// filterWindows applies the list command's owner and titled filters.
func filterWindows(windows []model.Window, owner string, titled bool) []model.Window {
	filtered := make([]model.Window, 0, len(windows))
	for _, w := range windows {
		if owner != "" && !strings.EqualFold(w.Owner, owner) {
			continue
		}
		if titled && w.Title == "" {
			continue
		}
		filtered = append(filtered, w)
	}
	return filtered
}
