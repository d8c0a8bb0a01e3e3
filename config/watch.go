package config

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settleDelay is how long a tuning file must stay quiet before it is reported.
const settleDelay = 100 * time.Millisecond

// Watcher reports tuning files that changed on disk. Events are debounced per
// file: a burst of writes produces one event once the file has been quiet for
// settleDelay, so the reload always sees the last write.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once

	names map[string]bool // base names to report; any tuning file when empty
	delay time.Duration
}

// NewWatcher reports every YAML file written in dirs.
func NewWatcher(dirs ...string) (*Watcher, error) {
	return newWatcher(dirs, nil)
}

// NewFileWatcher reports writes to the one file at path. Other files in the
// same directory are ignored.
func NewFileWatcher(path string) (*Watcher, error) {
	return newWatcher([]string{filepath.Dir(path)}, []string{filepath.Base(path)})
}

func newWatcher(dirs, names []string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		names:   make(map[string]bool, len(names)),
		delay:   settleDelay,
	}
	for _, name := range names {
		watcher.names[name] = true
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

// wants reports whether a change to path should be reported.
func (w *Watcher) wants(path string) bool {
	if len(w.names) > 0 {
		return w.names[filepath.Base(path)]
	}
	return IsTuningFile(path)
}

func (w *Watcher) run() {
	defer close(w.Events)
	defer close(w.Errors)

	pending := make(map[string]*time.Timer)
	settled := make(chan string)
	defer func() {
		for _, t := range pending {
			t.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !w.wants(event.Name) {
				continue
			}
			if t, ok := pending[event.Name]; ok {
				t.Stop()
			}
			name := event.Name
			pending[name] = time.AfterFunc(w.delay, func() {
				select {
				case settled <- name:
				case <-w.closeCh:
				}
			})
		case name := <-settled:
			delete(pending, name)
			select {
			case w.Events <- name:
			case <-w.closeCh:
				return
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

// IsTuningFile reports whether path looks like a YAML tuning file.
func IsTuningFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
