package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	listQuery string
	listJSON  bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes",
	Long:  `List notes in display order: pinned first, most recently updated first within each group.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store, closeStore, err := openStore()
		if err != nil {
			fatal("failed to open store", err)
		}
		defer closeStore()

		store.SetSearchQuery(listQuery)
		notes := store.VisibleNotes()

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(notes); err != nil {
				fatal("failed to encode JSON", err)
			}
			return
		}

		for _, n := range notes {
			marker := " "
			if n.Pinned {
				marker = "*"
			}
			fmt.Printf("%s %s  %s  (%s)\n", marker, n.ID, n.DisplayTitle(), n.UpdatedAt.Format("2006-01-02 15:04"))
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "Filter notes by title/content substring")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
}
