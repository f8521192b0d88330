package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/Rehan80221/adobe-structure-extractor/format"
)

var (
	watchInput  string
	watchOutput string

	// watchSettle is how long a file must be quiet before processing, so
	// partially copied PDFs are not decoded mid-write.
	watchSettle = 2 * time.Second
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch a directory and process PDFs as they arrive",
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchInput, "input", ".", "directory to watch for PDF files")
	watchCmd.Flags().StringVar(&watchOutput, "output", ".", "directory for JSON output")
}

func runWatch(cmd *cobra.Command, args []string) error {
	if err := os.MkdirAll(watchOutput, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(watchInput); err != nil {
		return fmt.Errorf("watch %s: %w", watchInput, err)
	}
	slog.Info("watching for pdfs", "dir", watchInput, "out", watchOutput)

	pending := make(map[string]time.Time)
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	ctx := cmd.Context()
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Rename) {
				continue
			}
			if !format.HasPDFExtension(event.Name) {
				continue
			}
			pending[event.Name] = time.Now()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watch error", "err", err)

		case <-ticker.C:
			for path, seen := range pending {
				if time.Since(seen) < watchSettle {
					continue
				}
				delete(pending, path)

				if ok, err := format.SniffPDFFile(path); err != nil || !ok {
					slog.Warn("ignoring non-pdf content", "file", path)
					continue
				}
				processOne(path, watchOutput)
			}
		}
	}
}
