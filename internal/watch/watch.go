// Package watch reports file system changes, debounced.
package watch

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is the quiet period after the last event before the
// callback runs.
const DefaultDebounce = 100 * time.Millisecond

type Options struct {
	Debounce time.Duration
	Logger   *zap.Logger
}

// Watcher runs a callback once a burst of file system events is over.
// Callbacks never overlap.
type Watcher struct {
	w        *fsnotify.Watcher
	files    map[string]bool
	debounce time.Duration
	logger   *zap.Logger
	callback func(fsnotify.Event)

	mu        sync.Mutex
	timer     *time.Timer
	lastEvent fsnotify.Event
	closed    bool
	done      chan struct{}
}

func newWatcher(opts Options, callback func(fsnotify.Event)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Watcher{
		w:        fw,
		files:    make(map[string]bool),
		debounce: opts.Debounce,
		logger:   opts.Logger.Named("watch"),
		callback: callback,
		done:     make(chan struct{}),
	}, nil
}

// Dir watches root and every directory below it, including the directories
// created later on.
func Dir(root string, opts Options, callback func(fsnotify.Event)) (*Watcher, error) {
	w, err := newWatcher(opts, callback)
	if err != nil {
		return nil, err
	}
	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return w.w.Add(path)
		}
		return nil
	})
	if err != nil {
		w.w.Close()
		return nil, err
	}
	go w.loop()
	return w, nil
}

// Files watches the given files only. Their directories are watched so that
// editors replacing a file on save are followed.
func Files(paths []string, opts Options, callback func(fsnotify.Event)) (*Watcher, error) {
	w, err := newWatcher(opts, callback)
	if err != nil {
		return nil, err
	}
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			w.w.Close()
			return nil, err
		}
		w.files[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		dirs[dir] = true
		if err := w.w.Add(dir); err != nil {
			w.w.Close()
			return nil, err
		}
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.w.Events:
			if !ok {
				return
			}
			w.handle(event)
		case err, ok := <-w.w.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", zap.Error(err))
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if len(w.files) > 0 {
		abs, err := filepath.Abs(event.Name)
		if err != nil || !w.files[abs] {
			return
		}
	} else if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.w.Add(event.Name); err != nil {
				w.logger.Warn("cannot watch new directory", zap.String("path", event.Name), zap.Error(err))
			}
		}
	}
	w.logger.Debug("fs event", zap.String("name", event.Name), zap.Stringer("op", event.Op))

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.lastEvent = event
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.trigger)
}

func (w *Watcher) trigger() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.timer = nil
	w.callback(w.lastEvent)
}

// Close stops the watcher. A pending callback is dropped.
func (w *Watcher) Close() error {
	w.mu.Lock()
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.mu.Unlock()
	err := w.w.Close()
	<-w.done
	return err
}
