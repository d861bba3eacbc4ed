// Package watch rebuilds macro scripts when they change on disk.
//
// Directories are watched rather than files so that editors which save by
// replacing the file are still noticed.
package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces the burst of events a single save produces.
const DefaultDebounce = 100 * time.Millisecond

// ErrNoPaths is returned when there is nothing to watch.
var ErrNoPaths = errors.New("no paths to watch")

// Handler is called with the scripts that changed, in sorted order.
type Handler func(paths []string)

// Options configures a Watcher.
type Options struct {
	Debounce time.Duration
	// Ignore reports whether a file inside a watched directory is not a
	// script, e.g. generated descriptors.
	Ignore func(path string) bool
	// OnError receives errors from the underlying watcher.
	OnError func(err error)
}

// Watcher reports changed scripts.
type Watcher struct {
	fsw   *fsnotify.Watcher
	opts  Options
	files map[string]bool // explicitly named scripts
	dirs  map[string]bool // directories whose scripts are all watched
}

// New watches paths. A directory covers every script directly inside it; a
// file is watched through its parent directory.
func New(paths []string, opts Options) (*Watcher, error) {
	if len(paths) == 0 {
		return nil, ErrNoPaths
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsw:   fsw,
		opts:  opts,
		files: make(map[string]bool),
		dirs:  make(map[string]bool),
	}

	for _, p := range paths {
		if err := w.add(p); err != nil {
			fsw.Close()
			return nil, err
		}
	}
	return w, nil
}

func (w *Watcher) add(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return err
	}

	dir := abs
	if info.IsDir() {
		w.dirs[abs] = true
	} else {
		w.files[abs] = true
		dir = filepath.Dir(abs)
	}

	// fsnotify ignores repeated adds of the same directory
	return w.fsw.Add(dir)
}

// Wants reports whether a change to path should trigger a rebuild.
func (w *Watcher) Wants(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	if w.files[abs] {
		return true
	}
	if !w.dirs[filepath.Dir(abs)] {
		return false
	}

	base := filepath.Base(abs)
	if strings.HasPrefix(base, ".") || strings.HasSuffix(base, "~") {
		return false
	}
	if w.opts.Ignore != nil && w.opts.Ignore(abs) {
		return false
	}
	if info, err := os.Stat(abs); err == nil && info.IsDir() {
		return false
	}
	return true
}

// Run delivers changed scripts to handle until ctx is done. Events for the
// same file within the debounce window are delivered once.
func (w *Watcher) Run(ctx context.Context, handle Handler) error {
	pending := make(map[string]bool)
	timer := time.NewTimer(w.opts.Debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
				continue
			}
			if !w.Wants(ev.Name) {
				continue
			}
			abs, _ := filepath.Abs(ev.Name)
			pending[abs] = true
			timer.Reset(w.opts.Debounce)

		case <-timer.C:
			paths := make([]string, 0, len(pending))
			for p := range pending {
				paths = append(paths, p)
			}
			clear(pending)
			sort.Strings(paths)
			if len(paths) > 0 {
				handle(paths)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			if w.opts.OnError != nil {
				w.opts.OnError(err)
			}
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
