package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var frontendsCmd = &cobra.Command{
	Use:   "frontends",
	Short: "List available frontends",
	Long:  `Shows every frontend that can run the game.`,
	Run:   runFrontends,
}

func runFrontends(cmd *cobra.Command, args []string) {
	frontends := registry.List()

	if len(frontends) == 0 {
		fmt.Println("No frontends available.")
		return
	}

	fmt.Println("Available frontends:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, f := range frontends {
		maxNameLen = max(maxNameLen, len(f.Name))
	}

	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-----------")

	for _, f := range frontends {
		fmt.Printf("  %-*s  %s\n", maxNameLen, f.Name, f.Description)
	}

	fmt.Println()
	fmt.Println("Run 'breakout --frontend <name>' to use one.")
}
