package wheelfile

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/OpenTraceLab/wheelcanvas/internal/logging"
	"github.com/OpenTraceLab/wheelcanvas/pkg/wheelcanvas"
)

// settle is how long a burst of events must stay quiet before a reload.
// Editors and os.WriteFile truncate before writing, which shows up as
// several events on one save.
const settle = 50 * time.Millisecond

// Watch reloads path whenever it changes on disk and passes the result to
// fn. The containing directory is watched so editors that replace the file
// on save are followed. An empty file is taken as a save in progress and
// not reloaded. Watch blocks until ctx is done.
func Watch(ctx context.Context, path string, fn func(wheelcanvas.Props, error)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	if _, err := FormatOf(abs); err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	ctx = logging.AppendCtx(ctx, slog.String(logging.PackageName, "wheelfile"))

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !affects(ev, abs) {
				continue
			}
			slog.DebugContext(ctx, "wheel file changed", "path", abs, "op", ev.Op.String())
			if timer == nil {
				timer = time.NewTimer(settle)
			} else {
				timer.Reset(settle)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			if fi, err := os.Stat(abs); err == nil && fi.Size() == 0 {
				slog.DebugContext(ctx, "wheel file empty, waiting for content", "path", abs)
				continue
			}
			fn(Load(abs))
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.WarnContext(ctx, "watch error", "path", abs, "error", err)
		}
	}
}

// affects reports whether ev changed the contents at path.
func affects(ev fsnotify.Event, path string) bool {
	if filepath.Clean(ev.Name) != path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)
}
