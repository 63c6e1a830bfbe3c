package cliapp

import (
	"fmt"
	"log/slog"

	"rtscheck/internal/watcher"
)

// runWatch validates once, then re-runs the whole pipeline every time the
// grammar or a sample file changes. The grammar is recompiled on each cycle
// so grammar edits take effect immediately. Runs until the process is
// terminated externally.
func (a *App) runWatch() int {
	a.runOnce()

	reruns := make(chan struct{}, 1)
	w, err := watcher.New(a.cfg.Watch.Debounce, a.cfg.Pattern, func() {
		select {
		case reruns <- struct{}{}:
		default:
		}
	})
	if err != nil {
		slog.Error("failed to create watcher", "error", err)
		return 1
	}
	defer w.Close()

	if err := w.Watch(a.cfg.SamplesPath, a.cfg.GrammarPath); err != nil {
		slog.Error("failed to start watcher", "error", err)
		return 1
	}

	fmt.Println(statusStyle.Render("\nWatching for changes... (Ctrl+C to stop)"))

	for range reruns {
		fmt.Println()
		a.runOnce()
		fmt.Println(statusStyle.Render("\nWatching for changes... (Ctrl+C to stop)"))
	}
	return 0
}
