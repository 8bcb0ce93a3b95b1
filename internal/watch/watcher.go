// Package watch rebuilds the gallery page when the chart folders
// change. The external pipeline drops a burst of PNGs each day; events
// are debounced so one burst triggers one rebuild.
package watch

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is the settle window after the last chart event.
const DefaultDebounce = 500 * time.Millisecond

// BuildFunc performs one rebuild of the page.
type BuildFunc func(ctx context.Context) error

// Watcher monitors chart folders and triggers rebuilds.
type Watcher struct {
	dirs     []string
	debounce time.Duration
	build    BuildFunc
	log      *zap.Logger

	mu      sync.Mutex
	fsw     *fsnotify.Watcher
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// New creates a watcher over dirs. A non-positive debounce uses
// DefaultDebounce.
func New(dirs []string, debounce time.Duration, build BuildFunc, log *zap.Logger) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Watcher{dirs: dirs, debounce: debounce, build: build, log: log}
}

// Start begins watching in a background goroutine. Folders that do not
// exist yet are skipped with a warning; the pipeline may create them
// later, after which a restart picks them up.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	watched := 0
	for _, dir := range w.dirs {
		if err := fsw.Add(dir); err != nil {
			w.log.Warn("cannot watch folder", zap.String("dir", dir), zap.Error(err))
			continue
		}
		watched++
	}
	w.log.Info("watching chart folders",
		zap.Int("watched", watched),
		zap.Int("configured", len(w.dirs)),
		zap.Duration("debounce", w.debounce))

	w.fsw = fsw
	w.stopCh = make(chan struct{})
	w.doneCh = make(chan struct{})
	w.running = true
	go w.loop(ctx)
	return nil
}

// Stop shuts the watcher down and waits for the loop to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	close(w.stopCh)
	done := w.doneCh
	w.mu.Unlock()

	<-done
	_ = w.fsw.Close()
}

func (w *Watcher) loop(ctx context.Context) {
	defer close(w.doneCh)

	// The timer is armed by the first relevant event and re-armed by
	// every subsequent one; it fires once the folder settles.
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !isChartEvent(ev) {
				continue
			}
			w.log.Debug("chart folder changed",
				zap.String("file", ev.Name),
				zap.String("op", ev.Op.String()))
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(w.debounce)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", zap.Error(err))
		case <-timer.C:
			if err := w.build(ctx); err != nil {
				w.log.Error("rebuild failed", zap.Error(err))
				continue
			}
			w.log.Info("page rebuilt after chart change")
		}
	}
}

// isChartEvent reports whether the event concerns a PNG being added,
// rewritten, or removed. Pipeline side-products (CSVs, temp files) do
// not affect the page.
func isChartEvent(ev fsnotify.Event) bool {
	if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	return strings.EqualFold(filepath.Ext(ev.Name), ".png")
}
