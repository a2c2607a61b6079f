package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jotkit/jot"
)

var (
	newTitle   string
	newContent string
	newColor   string
	newPinned  bool
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a note",
	Long:  `Create a new note, optionally with a title, content, color tag, or pinned flag.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store, closeStore, err := openStore()
		if err != nil {
			fatal("failed to open store", err)
		}
		defer closeStore()

		n := store.CreateNote()

		patch := jot.Patch{}
		if cmd.Flags().Changed("title") {
			patch.Title = &newTitle
		}
		if cmd.Flags().Changed("content") {
			patch.Content = &newContent
		}
		if cmd.Flags().Changed("color") {
			patch.Color = &newColor
		}
		if newPinned {
			patch.Pinned = &newPinned
		}
		if patch != (jot.Patch{}) {
			store.UpdateNote(n.ID, patch)
		}

		fmt.Printf("Note created: %s\n", n.ID)
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().StringVarP(&newTitle, "title", "t", "", "Note title")
	newCmd.Flags().StringVarP(&newContent, "content", "c", "", "Note content (markdown)")
	newCmd.Flags().StringVar(&newColor, "color", "", "Color tag")
	newCmd.Flags().BoolVar(&newPinned, "pin", false, "Create pinned")
}
