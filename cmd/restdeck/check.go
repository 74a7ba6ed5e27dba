package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/restdeck/restdeck/internal/model"
	"github.com/restdeck/restdeck/internal/syncer"
)

var checkCmd = &cobra.Command{
	Use:   "check <dir>",
	Short: "Load a collection and report its contents",
	Long: `Load the collection rooted at <dir> and print a summary tree.

Malformed request files are skipped with a warning; a missing or invalid
_collection.yaml fails the whole check.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := syncer.New(syncer.Options{})
		defer s.Close()

		col, err := s.LoadCollection(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("%s\n", render(styleHeader, col.Name))
		if col.Description != "" {
			fmt.Printf("%s\n", render(styleDim, col.Description))
		}
		if len(col.Variables) > 0 {
			fmt.Printf("Variables: %d\n", len(col.Variables))
		}

		folders, requests := printItems(col.Items, "  ")
		fmt.Printf("\n%d folder(s), %d request(s)\n", folders, requests)
	},
}

// printItems renders one tree level and returns cumulative counts.
func printItems(items []model.Item, indent string) (folders, requests int) {
	for _, item := range items {
		switch it := item.(type) {
		case *model.Folder:
			fmt.Printf("%s%s/\n", indent, it.Name)
			f, r := printItems(it.Items, indent+"  ")
			folders += f + 1
			requests += r
		case *model.RequestItem:
			fmt.Printf("%s%s %s\n", indent, it.Name, render(styleDim, variantLabel(it)))
			requests++
		}
	}
	return folders, requests
}

func variantLabel(item *model.RequestItem) string {
	switch req := item.Request.(type) {
	case *model.HTTPRequest:
		return "[" + strings.ToUpper(req.Method) + "]"
	case *model.GRPCRequest:
		return "[gRPC]"
	default:
		return ""
	}
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
