package animation

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spaghettifunk/quatkit/engine/core"
)

// Watcher keeps a track in sync with its file on disk.
type Watcher struct {
	path string

	mutex      sync.RWMutex
	current    *Track
	lastLoaded time.Time

	fsnotify *fsnotify.Watcher
}

// NewWatcher loads the track at path and prepares to watch it. The parent
// directory is watched, so editors that replace the file on save are
// followed too.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	t, err := LoadTrack(abs)
	if err != nil {
		return nil, err
	}

	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsWatch.Add(filepath.Dir(abs)); err != nil {
		fsWatch.Close()
		return nil, fmt.Errorf("watching %s: %w", abs, err)
	}

	return &Watcher{
		path:       abs,
		current:    t,
		lastLoaded: time.Now(),
		fsnotify:   fsWatch,
	}, nil
}

// Track returns the last successfully loaded track.
func (w *Watcher) Track() *Track {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.current
}

func (w *Watcher) LastLoaded() time.Time {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.lastLoaded
}

// Run reloads the track whenever its file is created or written and hands
// every successfully loaded track to onReload. A file that fails to load is
// logged and the previous track is kept. Run blocks until ctx is cancelled
// and releases the underlying watcher before returning.
func (w *Watcher) Run(ctx context.Context, onReload func(*Track)) error {
	defer w.fsnotify.Close()

	for {
		select {
		case e, ok := <-w.fsnotify.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(e.Name) != w.path {
				continue
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				if e.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
					core.LogWarn("track file %s was removed, keeping the last loaded track", w.path)
				}
				continue
			}
			t, err := LoadTrack(w.path)
			if err != nil {
				core.LogError("reloading %s: %s", w.path, err)
				continue
			}
			w.mutex.Lock()
			w.current = t
			w.lastLoaded = time.Now()
			w.mutex.Unlock()
			core.LogInfo("reloaded track %q from %s", t.Name, w.path)
			if onReload != nil {
				onReload(t)
			}

		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return nil
			}
			core.LogError(err.Error())

		case <-ctx.Done():
			return nil
		}
	}
}
