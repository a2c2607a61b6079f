package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jotkit/jot"
	"github.com/jotkit/jot/internal/platform"
)

var (
	verbose bool
	dataDir string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "jot",
	Short: "A local, single-user note-taking tool",
	Long: `jot keeps short text/markdown notes in a single local JSON slot.
Edits are coalesced into one durable write after a quiet period; corrupt
or missing data degrades to an empty collection instead of an error.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

const exitFailure = 1

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(exitFailure)
	}
}

// fatal reports a command failure on stderr and exits.
func fatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "jot: %s: %v\n", msg, err)
	os.Exit(exitFailure)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&dataDir, "dir", "", "Data directory (default ~/.jot, or the config file's path)")
}

// openStore wires a store from flags and the optional config file.
// The returned close function flushes pending writes.
func openStore() (*jot.Store, func(), error) {
	cfg, err := platform.LoadConfig(platform.DefaultConfigPath())
	if err != nil {
		return nil, nil, err
	}

	path := dataDir
	if path == "" {
		path = cfg.Path
	}
	if path == "" {
		path = platform.DefaultDataPath()
	}

	opts := []jot.Option{jot.WithLogger(slog.Default())}
	if cfg.QuietPeriodMS > 0 {
		opts = append(opts, jot.WithQuietPeriod(time.Duration(cfg.QuietPeriodMS)*time.Millisecond))
	}

	store, err := jot.New(path, opts...)
	if err != nil {
		return nil, nil, err
	}

	closeFn := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		store.Close(ctx)
	}
	return store, closeFn, nil
}
