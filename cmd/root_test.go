package cmd

import "testing"

func TestRootCommand_SubcommandsRegistered(t *testing.T) {
	expected := []string{"list", "find", "screenshot", "key", "type", "serve", "doctor"}
	registered := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		registered[c.Name()] = true
	}
	for _, name := range expected {
		if !registered[name] {
			t.Errorf("expected %q subcommand to be registered", name)
		}
	}
}

func TestRootCommand_PersistentFlags(t *testing.T) {
	for _, name := range []string{"format", "pretty", "log-level"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("expected persistent flag --%s to exist", name)
		}
	}
}
