package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var pinCmd = &cobra.Command{
	Use:   "pin [id]",
	Short: "Toggle a note's pinned flag",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, closeStore, err := openStore()
		if err != nil {
			fatal("failed to open store", err)
		}
		defer closeStore()

		id := args[0]
		if _, ok := store.Get(id); !ok {
			fmt.Fprintf(os.Stderr, "Note not found: %s\n", id)
			os.Exit(1)
		}

		store.TogglePin(id)
		n, _ := store.Get(id)
		if n.Pinned {
			fmt.Printf("Note pinned: %s\n", id)
		} else {
			fmt.Printf("Note unpinned: %s\n", id)
		}
	},
}

func init() {
	rootCmd.AddCommand(pinCmd)
}
