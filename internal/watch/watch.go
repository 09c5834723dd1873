// Package watch turns file system events on the host files into debounced
// regeneration requests.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/specialistvlad/configsnap/internal/ctxlog"
	"github.com/specialistvlad/configsnap/internal/fsutil"
)

// DefaultDebounce is used when Options.Debounce is not set.
const DefaultDebounce = 200 * time.Millisecond

// Options tunes a Watcher.
type Options struct {
	// Debounce is how long the watcher waits after the last relevant event
	// before calling back.
	Debounce time.Duration
	// Extensions limits the files inside watched directories that count as
	// changes. Explicitly named files always count. Empty means every file.
	Extensions []string
}

// Watcher observes a set of files and directories. Directories are watched
// recursively; a file is watched through its parent directory.
type Watcher struct {
	opts  Options
	dirs  []string
	files map[string]struct{}
	roots map[string]struct{}

	ready  chan struct{}
	passes atomic.Int64
}

// New validates paths and prepares a watcher over them. No OS resources are
// held until Run.
func New(paths []string, opts Options) (*Watcher, error) {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	w := &Watcher{
		opts:  opts,
		files: make(map[string]struct{}),
		roots: make(map[string]struct{}),
		ready: make(chan struct{}),
	}

	seen := make(map[string]struct{})
	addDir := func(dir string) {
		if _, ok := seen[dir]; ok {
			return
		}
		seen[dir] = struct{}{}
		w.dirs = append(w.dirs, dir)
	}

	for _, path := range paths {
		path = filepath.Clean(path)
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}
		if !info.IsDir() {
			w.files[path] = struct{}{}
			addDir(filepath.Dir(path))
			continue
		}
		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				w.roots[p] = struct{}{}
				addDir(p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return w, nil
}

// Dirs returns the directories the watcher subscribes to.
func (w *Watcher) Dirs() []string {
	return w.dirs
}

// Ready is closed once Run has subscribed to every directory.
func (w *Watcher) Ready() <-chan struct{} {
	return w.ready
}

// Passes reports how many times Run has called back.
func (w *Watcher) Passes() int64 {
	return w.passes.Load()
}

// Run blocks until ctx is cancelled, calling onChange once per burst of
// relevant events. The underlying watcher is closed before Run returns.
func (w *Watcher) Run(ctx context.Context, onChange func(context.Context)) error {
	logger := ctxlog.FromContext(ctx)

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer fw.Close()

	for _, dir := range w.dirs {
		if err := fw.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}
	close(w.ready)
	logger.Debug("File watcher started.", "dirs", len(w.dirs))

	timer := time.NewTimer(w.opts.Debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debug("File watcher stopped.")
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) && w.underRoot(event.Name) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					w.roots[event.Name] = struct{}{}
					if err := fw.Add(event.Name); err != nil {
						logger.Warn("Failed to watch new directory.", "dir", event.Name, "error", err)
					}
					continue
				}
			}
			if !w.relevant(event) {
				continue
			}
			logger.Debug("Host file changed.", "path", event.Name, "op", event.Op.String())
			timer.Reset(w.opts.Debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("File watcher error.", "error", err)

		case <-timer.C:
			w.passes.Add(1)
			onChange(ctx)
		}
	}
}

func (w *Watcher) underRoot(name string) bool {
	_, ok := w.roots[filepath.Dir(name)]
	return ok
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	name := filepath.Clean(event.Name)
	if _, ok := w.files[name]; ok {
		return true
	}
	if !w.underRoot(name) {
		return false
	}
	return len(w.opts.Extensions) == 0 || fsutil.HasExtension(name, w.opts.Extensions...)
}
