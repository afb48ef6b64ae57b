package main

import (
	"github.com/jhead/macos-screen-mcp/cmd"

	// Register the macOS platform backend.
	_ "github.com/jhead/macos-screen-mcp/internal/platform/darwin"
)

func main() {
	cmd.Execute()
}
