package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/yaklabco/mdwire/internal/configloader"
	"github.com/yaklabco/mdwire/internal/logging"
	"github.com/yaklabco/mdwire/pkg/fsutil"
)

// debounceWindow coalesces bursts of filesystem events into one re-render.
// Editors commonly emit several events per save.
const debounceWindow = 100 * time.Millisecond

// watchRender renders the inputs, then re-renders whenever one of them
// changes on disk. It returns when the context is cancelled, typically by
// an interrupt.
func watchRender(cmd *cobra.Command, inputs []string, cfg *configloader.Config, outputPath string) error {
	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logging.NewInteractive()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch parent directories rather than the files themselves: editors
	// that save via rename would otherwise detach the watch.
	watched := make(map[string]bool, len(inputs))
	states := make(map[string]*fsutil.FileInfo, len(inputs))
	dirs := make(map[string]bool)
	for _, input := range inputs {
		if input == stdinPath {
			return fmt.Errorf("%w: --watch needs file paths, not stdin", ErrUsage)
		}

		abs, err := filepath.Abs(input)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", input, err)
		}
		watched[abs] = true
		if _, info, err := fsutil.ReadFile(ctx, abs); err == nil {
			states[abs] = info
		}

		dir := filepath.Dir(abs)
		if !dirs[dir] {
			if err := watcher.Add(dir); err != nil {
				return fmt.Errorf("watch %s: %w", dir, err)
			}
			dirs[dir] = true
			logger.Info("watching", logging.FieldWatchDir, dir)
		}
	}

	rerender := func() {
		if err := renderOnce(cmd, inputs, cfg, outputPath); err != nil {
			logger.Error("render failed", logging.FieldError, err)
			return
		}
		logger.Info("rendered", logging.FieldFiles, len(inputs))
	}
	rerender()

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !watched[event.Name] {
				continue
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) &&
				!event.Op.Has(fsnotify.Rename) {
				continue
			}

			// Skip saves that left the content byte-identical.
			if info := states[event.Name]; info != nil {
				changed, err := fsutil.CheckModified(ctx, info)
				if err == nil && !changed {
					continue
				}
			}
			if _, info, err := fsutil.ReadFile(ctx, event.Name); err == nil {
				states[event.Name] = info
			}

			logger.Info("change detected",
				logging.FieldPath, event.Name,
				logging.FieldEvent, event.Op.String(),
			)
			pending = time.After(debounceWindow)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watch error", logging.FieldError, err)

		case <-pending:
			pending = nil
			rerender()
		}
	}
}
