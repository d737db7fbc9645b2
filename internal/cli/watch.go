package cli

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/mvp-joe/project-atlas/internal/config"
	"github.com/mvp-joe/project-atlas/internal/indexer"
	"github.com/mvp-joe/project-atlas/internal/watcher"
)

// watchAndUpdate reruns executeUpdate after every debounced batch of changes
// under the project root until ctx is cancelled. Each run is a full rescan.
// A failed run is logged and watching continues.
func watchAndUpdate(ctx context.Context, cfg *config.Config, opts updateOptions, log *slog.Logger, progress indexer.ProgressReporter, out io.Writer) error {
	rules, err := indexer.NewRules(
		mergeLists(cfg.Paths.IgnoreDirs, opts.ignoreDirs),
		mergeLists(cfg.Paths.IgnoreFiles, opts.ignoreFiles),
	)
	if err != nil {
		return err
	}

	outputs := []string{documentPath(cfg, opts)}
	if opts.htmlPath != "" {
		if htmlPath, err := filepath.Abs(opts.htmlPath); err == nil {
			outputs = append(outputs, htmlPath)
		}
	}

	fw, err := watcher.NewFileWatcher(watcher.Options{
		Root:   opts.root,
		Skip:   watchFilter(opts.root, rules, outputs...),
		Logger: log,
	})
	if err != nil {
		return err
	}
	defer fw.Stop()

	// Buffered to one: a pending rescan already covers later batches.
	pending := make(chan []string, 1)
	if err := fw.Start(ctx, func(paths []string) {
		select {
		case pending <- paths:
		default:
		}
	}); err != nil {
		return err
	}

	log.Info("watching for changes", "root", opts.root)
	for {
		select {
		case <-ctx.Done():
			return nil
		case paths := <-pending:
			fw.Pause()
			log.Info("change detected", "paths", len(paths))
			if err := executeUpdate(ctx, cfg, opts, log, progress, out); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				log.Error("update failed", "error", err)
			}
			fw.Resume()
		}
	}
}

// watchFilter skips hidden entries, anything inside or named as an ignored
// directory, and the files the update itself writes. Ignored files are not
// skipped since they still appear in the tree.
func watchFilter(root string, rules *indexer.Rules, outputs ...string) watcher.Filter {
	written := make(map[string]bool, len(outputs))
	for _, p := range outputs {
		written[filepath.Clean(p)] = true
	}

	return func(path string, isDir bool) bool {
		if written[filepath.Clean(path)] {
			return true
		}
		rel, err := filepath.Rel(root, path)
		if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
			return false
		}

		parts := strings.Split(filepath.ToSlash(rel), "/")
		for i, part := range parts {
			if indexer.IsHidden(part) {
				return true
			}
			if (i < len(parts)-1 || isDir) && rules.IgnoreDir(part) {
				return true
			}
		}
		return false
	}
}
