package checklist

import (
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports changes to the checklist library so the viewer can rescan
// without being restarted. Events are debounced: editors tend to fire
// several writes per save.
type Watcher struct {
	fw       *fsnotify.Watcher
	dir      string
	debounce time.Duration

	// Changed receives one signal per settled burst of filesystem events.
	Changed chan struct{}

	stopCh chan struct{}
	doneCh chan struct{}
}

// Watch starts watching the library directory and every aircraft directory
// inside it. New aircraft directories are picked up as they appear.
func Watch(dir string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		fw:       fw,
		dir:      dir,
		debounce: 250 * time.Millisecond,
		Changed:  make(chan struct{}, 1),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	w.addAll()
	go w.run()
	return w, nil
}

// Close stops the watcher. The Changed channel is closed afterwards.
func (w *Watcher) Close() error {
	close(w.stopCh)
	err := w.fw.Close()
	<-w.doneCh
	return err
}

func (w *Watcher) addAll() {
	// The library dir may not exist yet; the caller creates it lazily.
	w.fw.Add(w.dir)
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		if entry.IsDir() {
			w.fw.Add(filepath.Join(w.dir, entry.Name()))
		}
	}
}

func (w *Watcher) run() {
	defer close(w.doneCh)
	defer close(w.Changed)

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-w.stopCh:
			return
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					w.fw.Add(event.Name)
				}
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				timer.Reset(w.debounce)
			}
		case <-timerC:
			timer = nil
			timerC = nil
			select {
			case w.Changed <- struct{}{}:
			default:
			}
		case _, ok := <-w.fw.Errors:
			if !ok {
				return
			}
		}
	}
}
