package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jrient/text-game/internal/version"
)

func main() {
	root := &cobra.Command{
		Use:   "text-game",
		Short: "Server-authoritative roguelike deck-builder backend",
	}
	root.AddCommand(newServeCommand())
	root.AddCommand(newVersionCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("text-game %s (%s, %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}
