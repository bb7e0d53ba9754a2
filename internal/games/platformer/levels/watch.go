package levels

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceWindow is how long a file must stay quiet before it is reported.
const debounceWindow = 100 * time.Millisecond

// Watcher reports changes to level pack files.
type Watcher struct {
	watcher *fsnotify.Watcher
	only    string // When set, only this file is reported
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// Watch watches path for changes. A file path is watched through its parent
// directory so that editors replacing the file on save are still seen.
func Watch(path string, isDir bool) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("levels: creating watcher: %w", err)
	}

	dir, only := path, ""
	if !isDir {
		dir = filepath.Dir(path)
		only = filepath.Clean(path)
	}
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("levels: watching %s: %w", dir, err)
	}

	watcher := &Watcher{
		watcher: w,
		only:    only,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

// run reports a file once no event for it arrived within debounceWindow, so
// a burst of writes yields a single event after the last one.
func (w *Watcher) run() {
	defer close(w.Events)
	defer close(w.Errors)

	timer := time.NewTimer(debounceWindow)
	timer.Stop()
	defer timer.Stop()

	pending := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			pending[event.Name] = time.Now().Add(debounceWindow)
			timer.Reset(debounceWindow)
		case <-timer.C:
			now := time.Now()
			var next time.Duration
			for name, due := range pending {
				if wait := due.Sub(now); wait > 0 {
					if next == 0 || wait < next {
						next = wait
					}
					continue
				}
				delete(pending, name)
				select {
				case w.Events <- name:
				case <-w.closeCh:
					return
				}
			}
			if next > 0 {
				timer.Reset(next)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	if w.only != "" {
		return filepath.Clean(event.Name) == w.only
	}
	return IsLevelFile(event.Name)
}
