package cmd

import (
	"errors"
	"fmt"

	"github.com/jhead/macos-screen-mcp/internal/model"
	"github.com/jhead/macos-screen-mcp/internal/output"
	"github.com/jhead/macos-screen-mcp/internal/platform"
	"github.com/spf13/cobra"
)

var findCmd = &cobra.Command{
	Use:   "find [title]",
	Short: "Find the best-matching window",
	Long: `Find a window by title or owner application name.

Matching priority (case-insensitive): exact title, exact owner, title
substring, owner substring. Within a tier the frontmost window wins.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFind,
}

func init() {
	rootCmd.AddCommand(findCmd)
	findCmd.Flags().String("title", "", "Title or owner name to search for (alternative to positional arg)")
	findCmd.Flags().Bool("search-owner", true, "Also match against owner application names")
}

func runFind(cmd *cobra.Command, args []string) error {
	title, _ := cmd.Flags().GetString("title")
	searchOwner, _ := cmd.Flags().GetBool("search-owner")
	if len(args) > 0 {
		title = args[0]
	}
	if title == "" {
		return fmt.Errorf("specify a title as a positional argument or via --title")
	}

	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}

	windows, err := provider.WindowServer.ListWindows()
	if err != nil {
		return err
	}

	w, err := model.FindBestMatch(windows, model.Query{Text: title, SearchOwner: searchOwner})
	if errors.Is(err, model.ErrNoMatch) {
		return fmt.Errorf("no window found matching %q", title)
	}
	if err != nil {
		return err
	}
	return output.Print(w)
}
