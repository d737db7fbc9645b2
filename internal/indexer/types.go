package indexer

import (
	"log/slog"
	"time"

	"github.com/mvp-joe/project-atlas/internal/indexer/extraction"
	"github.com/mvp-joe/project-atlas/internal/indexer/parsers"
)

// RootFolder is the relative path of the scanned root directory.
const RootFolder = "."

// Options configures a scan. Values are copied into each run and never
// mutated by the indexer.
type Options struct {
	// RootDir is the directory to scan.
	RootDir string

	// IgnoreDirs holds directory names (or glob patterns over names) that
	// are never descended into.
	IgnoreDirs []string

	// IgnoreFiles holds file names (or glob patterns over names) that are
	// never listed or parsed.
	IgnoreFiles []string

	// Logger receives warnings about skipped entries. Defaults to slog.Default().
	Logger *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// Folder is one visited directory with its visible, non-ignored files.
type Folder struct {
	// Path is relative to the root with forward slashes; the root is ".".
	Path string

	// Files holds base names in byte order.
	Files []string
}

// Snapshot is the result of discovery: the file inventory plus the folder listing.
type Snapshot struct {
	Inventory *parsers.Inventory
	Folders   []Folder
}

// FileDetail is the parse outcome for one supported file.
type FileDetail struct {
	Name     string
	Path     string
	Language parsers.Language
	Elements []extraction.Element

	// Err is set when the file could not be read or decoded. Elements is
	// empty in that case.
	Err error
}

// FolderResult pairs a folder with the details of its parsed files.
type FolderResult struct {
	Folder
	Details []FileDetail
}

// Stats summarises a run.
type Stats struct {
	Folders     int           `json:"folders"`
	Files       int           `json:"files"`
	FilesParsed int           `json:"files_parsed"`
	FilesFailed int           `json:"files_failed"`
	Elements    int           `json:"elements"`
	Duration    time.Duration `json:"duration"`
}

// Result is the output of Index.
type Result struct {
	Folders []FolderResult
	Stats   Stats
}

// Details returns every file detail across all folders, in folder order.
func (r *Result) Details() []FileDetail {
	var out []FileDetail
	for _, f := range r.Folders {
		out = append(out, f.Details...)
	}
	return out
}
