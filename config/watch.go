package config

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// reloadDebounce coalesces the event bursts editors produce when
// saving a file.
const reloadDebounce = 150 * time.Millisecond

// Watcher reloads a configuration file whenever it changes on disk.
type Watcher struct {
	fsw  *fsnotify.Watcher
	done chan struct{}
}

// Watch watches the config file at path and calls onReload with the
// result of re-reading it after every change. The containing directory
// is watched rather than the file itself, so editors that replace the
// file atomically are still seen. Watcher errors are forwarded to
// onReload with a zero Config.
func Watch(path string, onReload func(Config, error)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "creating config watcher")
	}

	dir := filepath.Dir(path)
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, errors.Wrapf(err, "watching %s", dir)
	}

	w := &Watcher{fsw: fsw, done: make(chan struct{})}
	go w.run(path, onReload)
	return w, nil
}

// Close stops the watcher and waits for the reload goroutine to exit.
func (w *Watcher) Close() error {
	err := w.fsw.Close()
	<-w.done
	return err
}

func (w *Watcher) run(path string, onReload func(Config, error)) {
	defer close(w.done)

	base := filepath.Base(path)

	var (
		timer   *time.Timer
		timerCh <-chan time.Time
	)

	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(reloadDebounce)
				timerCh = timer.C
			} else {
				if !timer.Stop() && timerCh != nil {
					<-timerCh
				}
				timer.Reset(reloadDebounce)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			onReload(Config{}, errors.Wrap(err, "config watcher"))
		case <-timerCh:
			timer = nil
			timerCh = nil
			onReload(Load(path))
		}
	}
}
