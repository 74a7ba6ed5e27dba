package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/restdeck/restdeck/internal/syncer"
)

var revealCmd = &cobra.Command{
	Use:   "reveal <path>",
	Short: "Open a path in the OS file manager",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := syncer.New(syncer.Options{})
		defer s.Close()

		if err := s.Reveal(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(revealCmd)
}
