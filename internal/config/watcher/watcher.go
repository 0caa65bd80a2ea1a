// Package watcher reloads the configuration when its file changes on
// disk.
//
// The watcher observes the file's directory rather than the file
// itself: editors and package managers typically replace files by
// rename, which would otherwise silently detach the watch. Bursts of
// events are debounced into a single reload.
package watcher

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrWatcherClosed is returned by operations on a closed watcher.
var ErrWatcherClosed = errors.New("watcher closed")

// DefaultDebounce spaces out reloads during event bursts.
const DefaultDebounce = 250 * time.Millisecond

// Loader re-reads the configuration file. It is implemented by
// config.Config.
type Loader interface {
	ParseFile(path string) (int, error)
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period before a reload fires.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithOnReload installs a callback invoked after every reload attempt
// with the reload's outcome.
func WithOnReload(fn func(problems int, err error)) Option {
	return func(w *Watcher) { w.onReload = fn }
}

// Watcher reloads a Loader from one configuration file whenever the
// file is written, created or replaced.
type Watcher struct {
	mu sync.Mutex

	fsw    *fsnotify.Watcher
	path   string
	loader Loader

	debounce time.Duration
	onReload func(problems int, err error)
	timer    *time.Timer

	closeCh chan struct{}
	wg      sync.WaitGroup
	closed  bool
}

// New starts watching path and reloading loader on changes. The
// file's directory must exist; the file itself may not yet.
func New(path string, loader Loader, opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(filepath.Dir(abs)); err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsw:      fsw,
		path:     abs,
		loader:   loader,
		debounce: DefaultDebounce,
		closeCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}

	w.wg.Add(1)
	go w.processLoop()

	return w, nil
}

// Path returns the watched file path.
func (w *Watcher) Path() string { return w.path }

// Close stops watching. Pending debounced reloads are dropped.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
	}
	close(w.closeCh)
	w.mu.Unlock()

	err := w.fsw.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) processLoop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handleEvent(ev)

		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		}
	}
}

func (w *Watcher) handleEvent(ev fsnotify.Event) {
	if filepath.Clean(ev.Name) != w.path {
		return
	}
	if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Rename) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.reload)
}

func (w *Watcher) reload() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.mu.Unlock()

	problems, err := w.loader.ParseFile(w.path)
	if w.onReload != nil {
		w.onReload(problems, err)
	}
}
