// Package watcher triggers re-validation when the grammar or a sample file
// changes, with debouncing so editor save bursts collapse into one run.
package watcher

import (
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gobwas/glob"
)

type Watcher struct {
	fsWatcher   *fsnotify.Watcher
	debounce    time.Duration
	pattern     glob.Glob
	grammarName string
	onChange    func()
	callbackMu  sync.Mutex

	pendingMu sync.Mutex
	pending   bool
	timer     *time.Timer
}

// New builds a watcher that calls onChange after the debounce window
// whenever a file matching pattern, or the grammar file itself, changes.
func New(debounce time.Duration, pattern string, onChange func()) (*Watcher, error) {
	if onChange == nil {
		return nil, os.ErrInvalid
	}

	compiled, err := glob.Compile(pattern)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		fsWatcher: fsw,
		debounce:  debounce,
		pattern:   compiled,
		onChange:  onChange,
	}, nil
}

// Watch registers the samples directory and the grammar file's directory.
// The grammar is watched through its parent so rename-over saves are caught.
func (w *Watcher) Watch(samplesDir, grammarPath string) error {
	if err := w.fsWatcher.Add(samplesDir); err != nil {
		return err
	}

	w.grammarName = filepath.Base(grammarPath)
	grammarDir := filepath.Dir(grammarPath)
	if err := w.fsWatcher.Add(grammarDir); err != nil {
		slog.Warn("failed to watch grammar directory", "path", grammarDir, "error", err)
	}

	go w.run()
	return nil
}

func (w *Watcher) Close() error {
	return w.fsWatcher.Close()
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				w.scheduleChange()
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			slog.Error("watcher error", "error", err)
		}
	}
}

func (w *Watcher) relevant(path string) bool {
	name := filepath.Base(path)
	return name == w.grammarName || w.pattern.Match(name)
}

func (w *Watcher) scheduleChange() {
	w.pendingMu.Lock()
	defer w.pendingMu.Unlock()

	w.pending = true
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.flush)
}

func (w *Watcher) flush() {
	w.pendingMu.Lock()
	fire := w.pending
	w.pending = false
	w.pendingMu.Unlock()

	if fire {
		w.callbackMu.Lock()
		defer w.callbackMu.Unlock()
		w.onChange()
	}
}
