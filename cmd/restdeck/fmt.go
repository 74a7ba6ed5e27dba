package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/restdeck/restdeck/internal/syncer"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt <dir>",
	Short: "Normalize a collection's files in place",
	Long: `Load the collection rooted at <dir> and save it straight back.

This rewrites every file in canonical form: 2-space indentation, minimal
keys, filenames derived from display names. Content is unchanged;
identifiers are ephemeral and never touch disk, so a format pass is
lossless. Files for items that no longer exist are left alone.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := syncer.New(syncer.Options{})
		defer s.Close()

		col, err := s.LoadCollection(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if err := s.SaveCollection(col, args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Formatted %s\n", col.SourcePath)
	},
}

func init() {
	rootCmd.AddCommand(fmtCmd)
}
