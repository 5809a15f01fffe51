package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List board variants",
	Long:  `Shows every registered board variant with its size.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	variants := registry.List()

	if len(variants) == 0 {
		fmt.Println("No variants available.")
		return
	}

	fmt.Println("Available boards:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, v := range variants {
		maxIDLen = max(maxIDLen, len(v.ID))
	}

	fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, "ID", "Size", "Title")
	fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, "--", "----", "-----")

	for _, v := range variants {
		size := fmt.Sprintf("%dx%d", v.Width, v.Height)
		fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, v.ID, size, v.Title)
	}

	fmt.Println()
	fmt.Println("Run 'snake play <id>' to play a board.")
}
