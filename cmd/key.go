package cmd

import (
	"fmt"

	"github.com/jhead/macos-screen-mcp/internal/keyboard"
	"github.com/jhead/macos-screen-mcp/internal/keys"
	"github.com/jhead/macos-screen-mcp/internal/output"
	"github.com/jhead/macos-screen-mcp/internal/platform"
	"github.com/spf13/cobra"
)

// keyCmdResult is the output of a successful key command.
type keyCmdResult struct {
	OK        bool     `yaml:"ok"                  json:"ok"`
	Key       string   `yaml:"key"                 json:"key"`
	Modifiers []string `yaml:"modifiers,omitempty" json:"modifiers,omitempty"`
}

var keyCmd = &cobra.Command{
	Use:   "key <key>",
	Short: "Press a single key in the active window",
	Long: `Send one key press (down+up) to whichever window currently holds input
focus. Supported keys: a-z, 0-9, return, tab, space, delete, escape,
up_arrow, down_arrow, left_arrow, right_arrow, and modifier keys.`,
	Args: cobra.ExactArgs(1),
	RunE: runKey,
}

func init() {
	rootCmd.AddCommand(keyCmd)
	keyCmd.Flags().StringSlice("modifier", nil, "Modifier to hold (repeatable): command, shift, control, option, right_shift, right_option, right_control")
}

func runKey(cmd *cobra.Command, args []string) error {
	modifiers, _ := cmd.Flags().GetStringSlice("modifier")

	chord, err := keys.ParseChord(args[0], modifiers)
	if err != nil {
		return err
	}

	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}
	if provider.InputInjector == nil {
		return fmt.Errorf("input injection not available on this platform")
	}

	synth := keyboard.NewSynthesizer(provider.InputInjector)
	if err := synth.SendKey(chord); err != nil {
		return err
	}

	return output.Print(keyCmdResult{
		OK:        true,
		Key:       string(chord.Key),
		Modifiers: modifiers,
	})
}
