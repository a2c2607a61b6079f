package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jotkit/jot"
)

var (
	editTitle   string
	editContent string
	editColor   string
)

var editCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Edit a note",
	Long:  `Update a note's title, content, or color tag. Only the given fields change.`,
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

		patch := jot.Patch{}
		if cmd.Flags().Changed("title") {
			patch.Title = &editTitle
		}
		if cmd.Flags().Changed("content") {
			patch.Content = &editContent
		}
		if cmd.Flags().Changed("color") {
			patch.Color = &editColor
		}
		if patch == (jot.Patch{}) {
			fmt.Println("Nothing to change (use --title, --content, or --color)")
			return
		}

		store.UpdateNote(id, patch)
		fmt.Printf("Note updated: %s\n", id)
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVarP(&editTitle, "title", "t", "", "New title")
	editCmd.Flags().StringVarP(&editContent, "content", "c", "", "New content (markdown)")
	editCmd.Flags().StringVar(&editColor, "color", "", "New color tag (empty clears)")
}
