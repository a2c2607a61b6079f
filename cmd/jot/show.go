package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jotkit/jot"
)

var showRender bool

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a note",
	Long:  `Print a note's raw content, or its safe preview markup with --render.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, closeStore, err := openStore()
		if err != nil {
			fatal("failed to open store", err)
		}
		defer closeStore()

		n, ok := store.Get(args[0])
		if !ok {
			fmt.Fprintf(os.Stderr, "Note not found: %s\n", args[0])
			os.Exit(1)
		}

		fmt.Printf("# %s\n", n.DisplayTitle())
		if showRender {
			fmt.Println(jot.Render(n.Content))
			return
		}
		fmt.Println(n.Content)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showRender, "render", false, "Render markup preview instead of raw content")
}
