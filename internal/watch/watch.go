// Package watch reloads a source file when it changes on disk.
//
// Editors often save by writing a temporary file and renaming it over the
// original, which drops a watch on the file itself. The watcher therefore
// watches the containing directory and filters events by name.
package watch

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/fsnotify/fsnotify"

	perrors "github.com/zhubert/tsplay/internal/errors"
	"github.com/zhubert/tsplay/internal/logger"
)

// DefaultDebounce collapses the burst of events a single save produces
const DefaultDebounce = 100 * time.Millisecond

// ChangedMsg carries the new contents of the watched file
type ChangedMsg struct {
	Path string
	Code string
	Err  error
}

// Watcher delivers a ChangedMsg each time the file settles after a change
type Watcher struct {
	path     string
	debounce time.Duration
	fs       *fsnotify.Watcher
	events   chan ChangedMsg
	done     chan struct{}
	wg       sync.WaitGroup
	once     sync.Once
}

// New starts watching path
func New(path string, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, perrors.E(perrors.Op("watch.New"), perrors.KindIO, err)
	}

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, perrors.E(perrors.Op("watch.New"), perrors.KindIO, err)
	}
	if err := fs.Add(filepath.Dir(abs)); err != nil {
		fs.Close()
		return nil, perrors.E(perrors.Op("watch.New"), perrors.KindIO, "failed to watch "+filepath.Dir(abs), err)
	}

	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	w := &Watcher{
		path:     abs,
		debounce: debounce,
		fs:       fs,
		events:   make(chan ChangedMsg, 1),
		done:     make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()

	logger.WithComponent("watch").Debug("watching source", "path", abs)
	return w, nil
}

// Path returns the absolute path being watched
func (w *Watcher) Path() string {
	return w.path
}

// Next returns a command that waits for the next change. It yields nil once
// the watcher is closed, which ends the chain.
func (w *Watcher) Next() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-w.events:
			return msg
		case <-w.done:
			return nil
		}
	}
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fs.Close()
		w.wg.Wait()
	})
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	var fire <-chan time.Time
	for {
		select {
		case <-w.done:
			return

		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				fire = time.After(w.debounce)
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.send(ChangedMsg{Path: w.path, Err: perrors.E(perrors.Op("watch.loop"), perrors.KindIO, err)})

		case <-fire:
			fire = nil
			data, err := os.ReadFile(w.path)
			if err != nil {
				w.send(ChangedMsg{Path: w.path, Err: perrors.E(perrors.Op("watch.loop"), perrors.KindIO, err)})
				continue
			}
			w.send(ChangedMsg{Path: w.path, Code: string(data)})
		}
	}
}

// send delivers msg, replacing an undelivered older one
func (w *Watcher) send(msg ChangedMsg) {
	for {
		select {
		case w.events <- msg:
			return
		case <-w.done:
			return
		default:
		}
		select {
		case <-w.events:
		default:
		}
	}
}
