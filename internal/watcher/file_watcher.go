package watcher

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period used when Options.Debounce is zero.
const DefaultDebounce = 500 * time.Millisecond

// Options configures a FileWatcher.
type Options struct {
	Root     string        // Directory watched recursively
	Skip     Filter        // Paths to leave out; nil watches everything
	Debounce time.Duration // Quiet period before firing the callback
	Logger   *slog.Logger
}

// fileWatcher implements FileWatcher interface.
type fileWatcher struct {
	watcher       *fsnotify.Watcher
	root          string
	skip          Filter
	log           *slog.Logger
	debounceTime  time.Duration
	callback      func(paths []string)
	ctx           context.Context
	cancel        context.CancelFunc
	paused        bool
	pausedMu      sync.RWMutex
	accumulated   map[string]bool
	accumulatedMu sync.Mutex
	debounceTimer *time.Timer
	timerMu       sync.Mutex
	stopOnce      sync.Once
	doneCh        chan struct{}
}

// NewFileWatcher creates a watcher for every directory under opts.Root that
// the filter does not skip. A missing or unreadable root is an error.
func NewFileWatcher(opts Options) (FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	fw := &fileWatcher{
		watcher:      watcher,
		root:         filepath.Clean(opts.Root),
		skip:         opts.Skip,
		log:          opts.Logger,
		debounceTime: opts.Debounce,
		accumulated:  make(map[string]bool),
		doneCh:       make(chan struct{}),
	}
	if fw.skip == nil {
		fw.skip = func(string, bool) bool { return false }
	}
	if fw.log == nil {
		fw.log = slog.Default()
	}
	if fw.debounceTime <= 0 {
		fw.debounceTime = DefaultDebounce
	}

	if err := fw.addDirectoriesRecursively(fw.root); err != nil {
		watcher.Close()
		return nil, err
	}

	return fw, nil
}

// Start begins watching for changes.
func (fw *fileWatcher) Start(ctx context.Context, callback func(paths []string)) error {
	if callback == nil {
		return nil
	}

	fw.callback = callback
	fw.ctx, fw.cancel = context.WithCancel(ctx)

	go fw.watch()
	return nil
}

// Stop stops the watcher. It is safe to call more than once.
func (fw *fileWatcher) Stop() error {
	var err error
	fw.stopOnce.Do(func() {
		if fw.cancel != nil {
			fw.cancel()
			<-fw.doneCh
		} else {
			// Never started
			close(fw.doneCh)
		}
		err = fw.watcher.Close()
	})
	return err
}

// Pause stops firing callbacks but continues accumulating events.
func (fw *fileWatcher) Pause() {
	fw.pausedMu.Lock()
	defer fw.pausedMu.Unlock()
	fw.paused = true
}

// Resume resumes firing callbacks and flushes anything accumulated while paused.
func (fw *fileWatcher) Resume() {
	fw.pausedMu.Lock()
	wasPaused := fw.paused
	fw.paused = false
	fw.pausedMu.Unlock()

	if wasPaused {
		fw.flush()
	}
}

// watch is the main event loop.
func (fw *fileWatcher) watch() {
	defer close(fw.doneCh)

	fireCh := make(chan struct{}, 1)

	for {
		select {
		case <-fw.ctx.Done():
			fw.stopDebounceTimer()
			return

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}

			isDir := false
			if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
				isDir = true
			}

			if !fw.shouldProcessEvent(event, isDir) {
				continue
			}

			// New directories are watched from now on
			if isDir && event.Op&fsnotify.Create != 0 {
				if err := fw.addDirectoriesRecursively(event.Name); err != nil {
					fw.log.Warn("failed to watch new directory", "path", event.Name, "error", err)
				}
			}

			fw.accumulatedMu.Lock()
			fw.accumulated[event.Name] = true
			fw.accumulatedMu.Unlock()

			fw.resetDebounceTimer(fireCh)

		case <-fireCh:
			fw.pausedMu.RLock()
			paused := fw.paused
			fw.pausedMu.RUnlock()
			if !paused {
				fw.flush()
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			fw.log.Warn("file watcher error", "error", err)
		}
	}
}

// flush hands the accumulated paths, sorted, to the callback.
func (fw *fileWatcher) flush() {
	fw.accumulatedMu.Lock()
	if len(fw.accumulated) == 0 {
		fw.accumulatedMu.Unlock()
		return
	}
	paths := make([]string, 0, len(fw.accumulated))
	for p := range fw.accumulated {
		paths = append(paths, p)
	}
	fw.accumulated = make(map[string]bool)
	fw.accumulatedMu.Unlock()

	sort.Strings(paths)
	if fw.callback != nil {
		fw.callback(paths)
	}
}

// resetDebounceTimer restarts the quiet period.
func (fw *fileWatcher) resetDebounceTimer(fireCh chan struct{}) {
	fw.timerMu.Lock()
	defer fw.timerMu.Unlock()

	if fw.debounceTimer != nil {
		fw.debounceTimer.Stop()
	}
	fw.debounceTimer = time.AfterFunc(fw.debounceTime, func() {
		select {
		case fireCh <- struct{}{}:
		default:
		}
	})
}

func (fw *fileWatcher) stopDebounceTimer() {
	fw.timerMu.Lock()
	defer fw.timerMu.Unlock()

	if fw.debounceTimer != nil {
		fw.debounceTimer.Stop()
		fw.debounceTimer = nil
	}
}

// shouldProcessEvent drops chmod-only events and skipped paths.
func (fw *fileWatcher) shouldProcessEvent(event fsnotify.Event, isDir bool) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	return !fw.skip(event.Name, isDir)
}

// addDirectoriesRecursively adds every directory under rootPath that is not skipped.
func (fw *fileWatcher) addDirectoriesRecursively(rootPath string) error {
	return filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == rootPath {
				return err
			}
			fw.log.Warn("skipping unreadable directory", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if !d.IsDir() {
			return nil
		}
		if path != fw.root && fw.skip(path, true) {
			return fs.SkipDir
		}

		if err := fw.watcher.Add(path); err != nil {
			fw.log.Warn("failed to watch directory", "path", path, "error", err)
		}
		return nil
	})
}
