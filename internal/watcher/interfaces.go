// Package watcher reports debounced changes under a project root.
package watcher

import "context"

// FileWatcher monitors a directory tree for changes with debouncing and pause/resume support.
type FileWatcher interface {
	// Start begins watching, calling callback with each debounced batch of changed paths.
	Start(ctx context.Context, callback func(paths []string)) error

	// Stop stops the watcher and cleans up resources.
	Stop() error

	// Pause stops firing callbacks but continues accumulating events.
	Pause()

	// Resume resumes firing callbacks. If events accumulated during pause, fires immediately.
	Resume()
}

// Filter reports whether a path is skipped. Skipped directories are not watched
// and events for skipped paths are dropped. isDir is false for removed paths.
type Filter func(path string, isDir bool) bool
