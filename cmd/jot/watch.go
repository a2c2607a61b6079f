package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the slot for external changes",
	Long: `Watch prints an event whenever the durable slot is rewritten by
another program (an editor, a sync tool) and reloads the collection.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store, closeStore, err := openStore()
		if err != nil {
			fatal("failed to open store", err)
		}
		defer closeStore()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		go func() {
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			<-sigCh
			cancel()
		}()

		events, err := store.Watch(ctx)
		if err != nil {
			fatal("failed to watch slot", err)
		}

		fmt.Println("Watching for external changes (Ctrl-C to stop)...")
		for event := range events {
			fmt.Printf("[%s] %s\n", time.Unix(event.Timestamp, 0).Format("15:04:05"), event)
			store.Reload(ctx)
			fmt.Printf("Reloaded: %d notes\n", store.Len())
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
