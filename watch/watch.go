// Package watch follows an input file and re-emits its content whenever it
// changes, so generated text can be re-parsed as it is edited.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// PollInterval is how often the polling fallback checks the file.
var PollInterval = 200 * time.Millisecond

// Follow sends the file's full content on start and again after every
// change. Unchanged content is not re-sent. The channel is closed when ctx
// is cancelled. Uses fsnotify on the file's directory, which also sees
// editors that replace the file, with polling as a fallback. The watch is
// in place before the initial read, so no write after Follow returns is
// missed.
func Follow(ctx context.Context, path string) (<-chan string, error) {
	watcher := newWatcher(path)

	initial, err := os.ReadFile(path)
	if err != nil {
		if watcher != nil {
			watcher.Close()
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	ch := make(chan string, 1)
	ch <- string(initial)

	f := &follower{path: path, last: string(initial), ch: ch}

	go func() {
		defer close(ch)

		if watcher == nil {
			f.poll(ctx)
			return
		}
		defer watcher.Close()
		f.watch(ctx, watcher)
	}()

	return ch, nil
}

// newWatcher watches the directory of path. It returns nil when fsnotify
// is unavailable, and the caller polls instead.
func newWatcher(path string) *fsnotify.Watcher {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		slog.Debug("fsnotify unavailable, polling", slog.String("path", path), slog.String("error", err.Error()))
		return nil
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		slog.Debug("watch directory failed, polling", slog.String("path", path), slog.String("error", err.Error()))
		return nil
	}
	return watcher
}

type follower struct {
	path string
	last string
	ch   chan<- string
}

func (f *follower) watch(ctx context.Context, watcher *fsnotify.Watcher) {
	base := filepath.Base(f.path)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !f.emit(ctx) {
				return
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("watch error", slog.String("path", f.path), slog.String("error", err.Error()))
		}
	}
}

func (f *follower) poll(ctx context.Context) {
	ticker := time.NewTicker(PollInterval)
	defer ticker.Stop()

	var modTime time.Time
	var size int64 = -1
	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			info, err := os.Stat(f.path)
			if err != nil {
				continue
			}
			if info.ModTime().Equal(modTime) && info.Size() == size {
				continue
			}
			modTime, size = info.ModTime(), info.Size()
			if !f.emit(ctx) {
				return
			}
		}
	}
}

// emit reads the file and sends its content if it changed. It returns
// false once ctx is done.
func (f *follower) emit(ctx context.Context) bool {
	data, err := os.ReadFile(f.path)
	if err != nil {
		// Between a remove and the following create; the create event
		// brings the new content.
		return true
	}
	content := string(data)
	if content == f.last {
		return true
	}
	f.last = content

	select {
	case f.ch <- content:
		return true
	case <-ctx.Done():
		return false
	}
}
