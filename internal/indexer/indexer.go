package indexer

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/mvp-joe/project-atlas/internal/indexer/parsers"
)

// Index discovers the tree under opts.RootDir and parses every supported
// file once, in folder order. A file that cannot be read or decoded is
// recorded in its FileDetail and never aborts the run; only discovery
// failures on the root and context cancellation are returned.
func Index(ctx context.Context, opts Options, progress ProgressReporter) (*Result, error) {
	return IndexWith(ctx, opts, parsers.DefaultRegistry(), progress)
}

// IndexWith is Index with an explicit parser registry.
func IndexWith(ctx context.Context, opts Options, registry *parsers.Registry, progress ProgressReporter) (*Result, error) {
	startTime := time.Now()
	if progress == nil {
		progress = &NoOpProgressReporter{}
	}
	log := opts.logger()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	progress.OnDiscoveryStart()
	snap, err := Discover(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to discover files: %w", err)
	}
	defer snap.Inventory.Close()
	progress.OnDiscoveryComplete(len(snap.Folders), snap.Inventory.Len())

	total := 0
	for _, f := range snap.Folders {
		for _, name := range f.Files {
			if _, ok := registry.ForFile(name); ok {
				total++
			}
		}
	}
	progress.OnFileProcessingStart(total)

	result := &Result{}
	stats := &result.Stats
	stats.Folders = len(snap.Folders)
	stats.Files = snap.Inventory.Len()

	for _, f := range snap.Folders {
		fr := FolderResult{Folder: f}
		for _, name := range f.Files {
			if _, ok := registry.ForFile(name); !ok {
				continue
			}
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			rel := joinRel(f.Path, name)
			elements, lang, err := registry.ParseFile(ctx, filepath.Join(opts.RootDir, filepath.FromSlash(rel)), snap.Inventory)
			detail := FileDetail{Name: name, Path: rel, Language: lang, Elements: elements}
			if err != nil {
				detail.Err = err
				stats.FilesFailed++
				log.Warn("failed to parse file", "path", rel, "error", err)
			} else {
				stats.FilesParsed++
				stats.Elements += len(elements)
			}
			fr.Details = append(fr.Details, detail)
			progress.OnFileProcessed(rel)
		}
		result.Folders = append(result.Folders, fr)
	}

	stats.Duration = time.Since(startTime)
	log.Debug("scan complete",
		"folders", stats.Folders,
		"files", stats.Files,
		"parsed", stats.FilesParsed,
		"failed", stats.FilesFailed,
		"duration", stats.Duration)
	progress.OnComplete(stats)

	return result, nil
}

func joinRel(dir, name string) string {
	if dir == RootFolder {
		return name
	}
	return dir + "/" + name
}
