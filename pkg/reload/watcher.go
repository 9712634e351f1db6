// Package reload provides a debounced file watcher that reloads an
// Analyzer's mesh whenever its backing file (or, for a .scad source,
// any file in its transitive use/include set) changes on disk.
package reload

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/madfam/geom-core/pkg/analysis"
	"github.com/madfam/geom-core/pkg/ingest"
)

// Watcher watches one model's source file(s) and reloads the given
// Analyzer on every debounced write/create event. A rebuild of the
// spatial index, if one was previously built, is the caller's
// responsibility — reload drops the Analyzer back to Loaded the same
// way any other load call does.
type Watcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration
	onReload func(error)
	reloadFn func() error

	mu    sync.Mutex
	timer *time.Timer
}

// New creates a Watcher for path, reloading into analyzer after each
// burst of filesystem events settles for the debounce duration.
// onReload, if non-nil, is called after every reload attempt with the
// resulting error (nil on success).
//
// A .scad path is watched at every file in its transitive use/include
// set (via ingest.Renderer.ResolveDependencies) and reloaded by
// re-rendering through OpenSCAD and feeding the result through
// LoadSTLFromBytes, matching how loadAnalyzer treats it on first load.
// Any other extension is watched and reloaded as a single binary STL
// file via LoadSTLFromPath.
func New(analyzer *analysis.Analyzer, path string, debounce time.Duration, onReload func(error)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("reload: failed to create watcher: %w", err)
	}

	watchPaths, reloadFn, err := resolveWatchTargets(analyzer, path)
	if err != nil {
		fw.Close()
		return nil, err
	}

	for _, p := range watchPaths {
		if err := fw.Add(p); err != nil {
			fw.Close()
			return nil, fmt.Errorf("reload: failed to watch %s: %w", p, err)
		}
	}

	return &Watcher{
		watcher:  fw,
		debounce: debounce,
		onReload: onReload,
		reloadFn: reloadFn,
	}, nil
}

// resolveWatchTargets decides what to watch and how to reload based on
// path's extension, returning the paths to watch and the reload
// function to call once they settle. An .stl path is made absolute; the
// paths of a .scad source are resolved against its directory as given.
func resolveWatchTargets(analyzer *analysis.Analyzer, path string) ([]string, func() error, error) {
	if strings.EqualFold(filepath.Ext(path), ".scad") {
		dir := filepath.Dir(path)
		base := filepath.Base(path)
		renderer := ingest.NewRenderer(dir)

		deps, err := renderer.ResolveDependencies(base)
		if err != nil {
			return nil, nil, fmt.Errorf("reload: failed to resolve dependencies of %s: %w", path, err)
		}

		reloadFn := func() error {
			buf, err := renderer.RenderToBytes(base)
			if err != nil {
				return err
			}
			return analyzer.LoadSTLFromBytes(buf)
		}
		return deps, reloadFn, nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reload: failed to resolve path %s: %w", path, err)
	}
	reloadFn := func() error {
		return analyzer.LoadSTLFromPath(absPath)
	}
	return []string{absPath}, reloadFn, nil
}

// Start begins watching in the background. It returns immediately;
// call Close to stop.
func (w *Watcher) Start() {
	go func() {
		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
					w.scheduleReload()
				}
			case _, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()
}

func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.triggerReload)
}

func (w *Watcher) triggerReload() {
	err := w.reloadFn()
	if w.onReload != nil {
		w.onReload(err)
	}
}

// Close stops the underlying fsnotify watcher and cancels any pending
// debounced reload.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	return w.watcher.Close()
}
