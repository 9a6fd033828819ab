package ingest

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// defaultDebounce coalesces the burst of write events editors and
// copy operations produce for a single file.
const defaultDebounce = 500 * time.Millisecond

// Watcher keeps the index in sync with a document directory. New and
// modified files are reingested after a debounce window.
type Watcher struct {
	pipeline *Pipeline
	dir      string
	debounce time.Duration
	watcher  *fsnotify.Watcher
	logger   *slog.Logger

	mu     sync.Mutex
	timers map[string]*time.Timer
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets the quiet period before a changed file is reingested.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// NewWatcher creates a watcher over dir backed by the given pipeline.
func NewWatcher(pipeline *Pipeline, dir string, opts ...WatcherOption) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsWatcher.Add(dir); err != nil {
		fsWatcher.Close()
		return nil, err
	}

	w := &Watcher{
		pipeline: pipeline,
		dir:      dir,
		debounce: defaultDebounce,
		watcher:  fsWatcher,
		logger:   slog.Default().With("component", "watcher"),
		timers:   make(map[string]*time.Timer),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Close stops watching. Pending debounce timers are dropped.
func (w *Watcher) Close() error {
	w.mu.Lock()
	for path, timer := range w.timers {
		timer.Stop()
		delete(w.timers, path)
	}
	w.mu.Unlock()
	return w.watcher.Close()
}

// Run ingests the directory's current contents, then processes file
// events until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	if err := w.pipeline.IngestDir(ctx, w.dir); err != nil {
		return err
	}
	w.logger.Info("watching document directory", "dir", w.dir)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(ctx, event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watch error", "err", err)
		}
	}
}

func (w *Watcher) handleEvent(ctx context.Context, event fsnotify.Event) {
	if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
		return
	}
	if !w.pipeline.converter.Supports(event.Name) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if timer, ok := w.timers[event.Name]; ok {
		timer.Stop()
	}
	path := event.Name
	w.timers[path] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.timers, path)
		w.mu.Unlock()

		if err := w.pipeline.ReingestFile(ctx, path); err != nil {
			w.logger.Error("failed to reingest document", "path", path, "err", err)
			return
		}
		w.logger.Info("reingested document", "path", path)
	})
}
