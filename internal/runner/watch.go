package runner

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long Watch waits for a burst of writes to settle.
const DefaultDebounce = 100 * time.Millisecond

// Watch runs generation once and again every time the descriptor file
// changes, until ctx is done. Failed runs are logged and leave the
// previous output in place.
//
// The parent directory is watched rather than the file, so editors that
// save by renaming a temporary file are seen too.
func (r *Runner) Watch(ctx context.Context, debounce time.Duration) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()

	input, err := filepath.Abs(r.config.Input)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", r.config.Input, err)
	}

	if err := w.Add(filepath.Dir(input)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(input), err)
	}

	r.logger.Info("watching descriptor file", slog.String("file", input))
	r.runLogged(ctx)

	timer := time.NewTimer(debounce)
	timer.Stop()

	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}

			if !relevant(ev, input) {
				continue
			}

			r.logger.Debug("descriptor file changed", slog.String("op", ev.Op.String()))
			timer.Reset(debounce)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}

			r.logger.Warn("watcher error", slog.Any("error", err))

		case <-timer.C:
			r.runLogged(ctx)
		}
	}
}

func (r *Runner) runLogged(ctx context.Context) {
	if _, err := r.Run(ctx); err != nil {
		r.logger.Error("run failed", slog.Any("error", err))
	}
}

func relevant(ev fsnotify.Event, input string) bool {
	if ev.Op&(fsnotify.Create|fsnotify.Write) == 0 {
		return false
	}

	name, err := filepath.Abs(ev.Name)
	if err != nil {
		return false
	}

	return name == input
}
