package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/madfam/geom-core/pkg/reload"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Reload and re-report a model's info whenever the file changes",
	Args:  cobra.ExactArgs(1),
	Run:   runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 300*time.Millisecond, "quiet period before reacting to a file change")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) {
	filename := args[0]

	a, err := loadAnalyzer(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", filename, err)
		os.Exit(1)
	}
	printInfo(filename, a)

	w, err := reload.New(a, filename, watchDebounce, func(err error) {
		if err != nil {
			fmt.Fprintf(os.Stderr, "\nReload failed: %v\n", err)
			return
		}
		fmt.Println()
		printInfo(filename, a)
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error watching %s: %v\n", filename, err)
		os.Exit(1)
	}
	defer w.Close()
	w.Start()

	fmt.Printf("\nWatching %s for changes. Press Ctrl+C to stop.\n", filename)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
}
