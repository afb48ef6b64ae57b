package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/jhead/macos-screen-mcp/internal/keyboard"
	"github.com/jhead/macos-screen-mcp/internal/output"
	"github.com/jhead/macos-screen-mcp/internal/platform"
	"github.com/spf13/cobra"
)

// typeCmdResult is the output of the type command. CharsSent is reported on
// both success and partial failure: dispatched keystrokes cannot be undone.
type typeCmdResult struct {
	OK        bool   `yaml:"ok"              json:"ok"`
	Text      string `yaml:"text,omitempty"  json:"text,omitempty"`
	CharsSent int    `yaml:"chars_sent"      json:"chars_sent"`
	Error     string `yaml:"error,omitempty" json:"error,omitempty"`
}

var typeCmd = &cobra.Command{
	Use:   "type [text]",
	Short: "Type text into the active window",
	Long: `Type a sequence of characters into whichever window holds input focus,
one keystroke at a time, strictly in order. Supports letters, digits, space,
newline, and tab; uppercase letters are sent with shift held.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runType,
}

func init() {
	rootCmd.AddCommand(typeCmd)
	typeCmd.Flags().String("text", "", "Text to type (alternative to positional arg)")
	typeCmd.Flags().Duration("delay", 100*time.Millisecond, "Delay between keystrokes")
}

func runType(cmd *cobra.Command, args []string) error {
	text, _ := cmd.Flags().GetString("text")
	delay, _ := cmd.Flags().GetDuration("delay")
	if len(args) > 0 {
		text = args[0]
	}
	if text == "" {
		return fmt.Errorf("specify text as a positional argument or via --text")
	}

	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}
	if provider.InputInjector == nil {
		return fmt.Errorf("input injection not available on this platform")
	}

	synth := keyboard.NewSynthesizer(provider.InputInjector)
	if err := synth.TypeText(cmd.Context(), text, delay); err != nil {
		var partial *keyboard.PartialError
		if errors.As(err, &partial) {
			// Surface how far typing got before failing; those
			// keystrokes already landed in the focused window.
			printErr := output.Print(typeCmdResult{
				OK:        false,
				CharsSent: partial.Sent,
				Error:     partial.Err.Error(),
			})
			if printErr != nil {
				return printErr
			}
		}
		return err
	}

	return output.Print(typeCmdResult{
		OK:        true,
		Text:      text,
		CharsSent: len([]rune(text)),
	})
}
