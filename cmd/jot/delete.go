package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a note",
	Long: `Delete permanently removes a note from the collection.
Confirmation happens here, not in the store; --yes skips the prompt.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, closeStore, err := openStore()
		if err != nil {
			fatal("failed to open store", err)
		}
		defer closeStore()

		id := args[0]
		n, ok := store.Get(id)
		if !ok {
			fmt.Fprintf(os.Stderr, "Note not found: %s\n", id)
			os.Exit(1)
		}

		if !deleteYes {
			fmt.Printf("Delete %q (%s)? [y/N] ", n.DisplayTitle(), id)
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if strings.ToLower(strings.TrimSpace(answer)) != "y" {
				fmt.Println("Aborted")
				return
			}
		}

		store.DeleteNote(id)
		fmt.Printf("Note deleted: %s\n", id)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip the confirmation prompt")
}
