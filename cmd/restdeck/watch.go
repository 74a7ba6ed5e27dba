package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/restdeck/restdeck/internal/syncer"
	"github.com/restdeck/restdeck/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Watch a collection directory for external changes (foreground)",
	Long: `Watch the collection rooted at <dir> and stream classified change
events until interrupted.

Events fire only for genuine external edits: a burst of writes to one
file settles into a single notification, a write whose modification time
has not advanced past the last known value is treated as noise, and
dotfiles are ignored entirely.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := args[0]

		logger := log.New(os.Stderr, "[watch] ", log.LstdFlags)
		if logFile := viper.GetString("watch.log_file"); logFile != "" {
			logger = log.New(&lumberjack.Logger{
				Filename:   logFile,
				MaxSize:    10, // megabytes
				MaxBackups: 3,
				MaxAge:     28, // days
			}, "[watch] ", log.LstdFlags)
		}

		debounce := viper.GetDuration("watch.debounce")
		if debounce <= 0 {
			debounce = 200 * time.Millisecond
		}

		s := syncer.New(syncer.Options{
			Watch: &watcher.Config{
				Debounce:     debounce,
				PollInterval: 50 * time.Millisecond,
				Logger:       logger,
			},
			Logger: logger,
		})
		defer s.Close()

		// Prime the tracker so edits to already-known files classify
		// against their loaded state rather than reading as noise.
		if _, err := s.LoadCollection(dir); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		err := s.WatchCollection(dir, watcher.NotifierFunc(printEvent))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Watching %s\nPress Ctrl+C to stop\n\n", dir)

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig

		fmt.Println("\nStopping")
	},
}

// printEvent writes one classified event to stdout.
func printEvent(e watcher.Event) {
	stamp := time.Now().Format("15:04:05")
	switch e.Type {
	case watcher.Added:
		fmt.Printf("%s %s %s\n", stamp, render(styleAdded, "added   "), e.Path)
	case watcher.Modified:
		fmt.Printf("%s %s %s (mtime %s)\n", stamp, render(styleModified, "modified"),
			e.Path, e.LastModified.Format(time.RFC3339))
	case watcher.Deleted:
		fmt.Printf("%s %s %s\n", stamp, render(styleDeleted, "deleted "), e.Path)
	}
}

func init() {
	watchCmd.Flags().Duration("debounce", 200*time.Millisecond,
		"quiet period before a change burst settles into one event")
	watchCmd.Flags().String("log-file", "",
		"rotate session logs into this file instead of stderr")
	viper.BindPFlag("watch.debounce", watchCmd.Flags().Lookup("debounce"))
	viper.BindPFlag("watch.log_file", watchCmd.Flags().Lookup("log-file"))

	rootCmd.AddCommand(watchCmd)
}
