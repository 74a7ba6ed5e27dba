package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/restdeck/restdeck/internal/syncer"
)

var infoCmd = &cobra.Command{
	Use:   "info <path>",
	Short: "Show existence, modification time, and size for a file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := syncer.New(syncer.Options{})
		defer s.Close()

		info, err := s.FileInfo(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if !info.Exists {
			fmt.Printf("%s: does not exist\n", args[0])
			return
		}

		fmt.Printf("Path: %s\n", args[0])
		fmt.Printf("Size: %s\n", humanSize(info.Size))
		fmt.Printf("Modified: %s\n", info.LastModified.Format("2006-01-02 15:04:05"))
	},
}

// humanSize formats a byte count the way people read them.
func humanSize(size int64) string {
	switch {
	case size > 1024*1024:
		return fmt.Sprintf("%.1f MB", float64(size)/(1024*1024))
	case size > 1024:
		return fmt.Sprintf("%.1f KB", float64(size)/1024)
	default:
		return fmt.Sprintf("%d bytes", size)
	}
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
