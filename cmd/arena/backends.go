package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/haptic-arena/internal/registry"
)

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List haptic backends",
	Long:  `Shows every haptic backend compiled into arena.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		printBackends(cmd.OutOrStdout(), registry.List())
	},
}

func printBackends(w io.Writer, backends []registry.BackendInfo) {
	if len(backends) == 0 {
		fmt.Fprintln(w, "No backends available.")
		return
	}

	fmt.Fprintln(w, "Available backends:")
	fmt.Fprintln(w)

	maxNameLen := 4 // "Name" header
	for _, b := range backends {
		maxNameLen = max(maxNameLen, len(b.Name))
	}

	fmt.Fprintf(w, "  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Fprintf(w, "  %-*s  %s\n", maxNameLen, "----", "-----------")
	for _, b := range backends {
		fmt.Fprintf(w, "  %-*s  %s\n", maxNameLen, b.Name, b.Description)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'arena --backend <name>' to use one.")
}
