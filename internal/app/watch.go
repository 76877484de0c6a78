package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/anthropac/internal/config"
	"github.com/blackwell-systems/anthropac/internal/freelist"
)

// watchDebounce collapses the burst of events an editor emits on save.
const watchDebounce = 150 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch FILE",
	Short: "Re-run the analysis whenever the freelist file changes",
	Long: `Print the analysis of FILE, then print it again every time FILE is
written, replaced, or recreated. Each run reads the whole file and recomputes
every table from scratch.

Read errors while watching are reported and the watch continues, so a file
that is briefly missing during an editor's save does not stop it.
Press Ctrl+C to stop.`,
	Example: `  # Watch a file while entering freelists
  anthropac watch animals.txt

  # Only show the top 10 summary rows on each run
  anthropac watch animals.txt --summary-only --top 10`,
	Args: exactlyOneFile,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(settings.Verbose, cmd.ErrOrStderr())

	// Fail fast on a bad path before starting the watch loop.
	if _, err := freelist.Load(args[0]); err != nil {
		return err
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(cmd.ErrOrStderr(), "Watching %s (press Ctrl+C to stop)\n", args[0])
	return watchFile(ctx, args[0], cmd.OutOrStdout(), cmd.ErrOrStderr(), settings, logger)
}

// watchFile renders the report for path once, then again after every change
// to it, until ctx is cancelled.
func watchFile(ctx context.Context, path string, out, errOut io.Writer, s *config.Settings, logger *log.Logger) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer w.Close()

	// Watch the directory so rename-on-save editors are still seen.
	if err := w.Add(filepath.Dir(absPath)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(absPath), err)
	}

	render := func() {
		lines, err := freelist.Load(path)
		if err != nil {
			PrintError(errOut, err)
			return
		}
		if err := report(out, lines, s, logger); err != nil {
			PrintError(errOut, err)
		}
	}

	render()

	timer := time.NewTimer(watchDebounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			evPath, err := filepath.Abs(ev.Name)
			if err != nil || evPath != absPath {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			logger.Printf("change detected: %s", ev)
			timer.Reset(watchDebounce)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(errOut, "watch: %v\n", err)

		case <-timer.C:
			fmt.Fprintf(out, "\n=== %s changed, re-running analysis ===\n\n", path)
			render()
		}
	}
}
