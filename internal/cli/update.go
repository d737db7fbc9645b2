package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/project-atlas/internal/config"
	"github.com/mvp-joe/project-atlas/internal/document"
	"github.com/mvp-joe/project-atlas/internal/indexer"
	"github.com/mvp-joe/project-atlas/internal/tree"
)

var (
	updateIgnoreDirs  []string
	updateIgnoreFiles []string
	updateOutput      string
	updateHTML        string
	updateQuiet       bool
	updateDryRun      bool
	updateWatch       bool
)

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:   "update [root]",
	Short: "Regenerate the architecture section of the project document",
	Long: `Update scans the project root (default: the current directory), renders
the directory tree and per-file structure, and replaces the content between
the generated-content markers in ARCHITECTURE.md. If the markers are missing
or malformed a new marked block is appended; if the document does not exist
it is created.

Hidden files and folders are always skipped. Ignored directories are shown
collapsed in the tree and never scanned.

Examples:
  # Update ARCHITECTURE.md in the current directory
  atlas update

  # Skip build output and minified bundles
  atlas update --ignore-dir dist --ignore-file '*.min.js'

  # Print the merged document instead of writing it
  atlas update ./myproject --dry-run

  # Also write an HTML preview
  atlas update --html architecture.html

  # Keep the document current while editing
  atlas update --watch
`,
	Args: cobra.MaximumNArgs(1),
	RunE: runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)
	updateCmd.Flags().StringSliceVar(&updateIgnoreDirs, "ignore-dir", nil, "Directory name or glob to collapse and skip (repeatable)")
	updateCmd.Flags().StringSliceVar(&updateIgnoreFiles, "ignore-file", nil, "File name or glob to leave out (repeatable)")
	updateCmd.Flags().StringVarP(&updateOutput, "output", "o", "", "Document path (default from config, relative to root)")
	updateCmd.Flags().StringVar(&updateHTML, "html", "", "Also write an HTML rendering of the document to this path")
	updateCmd.Flags().BoolVarP(&updateQuiet, "quiet", "q", false, "Disable progress output")
	updateCmd.Flags().BoolVar(&updateDryRun, "dry-run", false, "Print the merged document to stdout without writing")
	updateCmd.Flags().BoolVarP(&updateWatch, "watch", "w", false, "Update again whenever files under the root change")
	updateCmd.MarkFlagsMutuallyExclusive("dry-run", "watch")
}

// updateOptions carries the per-run flag values of the update command.
type updateOptions struct {
	root        string
	output      string
	htmlPath    string
	ignoreDirs  []string
	ignoreFiles []string
	dryRun      bool
}

func runUpdate(cmd *cobra.Command, args []string) error {
	root, err := projectRoot(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	log := newLogger(cfg, "update")

	ctx, cancel := signalContext(cmd.Context())
	defer cancel()

	opts := updateOptions{
		root:        root,
		output:      updateOutput,
		htmlPath:    updateHTML,
		ignoreDirs:  updateIgnoreDirs,
		ignoreFiles: updateIgnoreFiles,
		dryRun:      updateDryRun,
	}
	progress := NewCLIProgressReporter(os.Stderr, updateQuiet || updateDryRun)

	if err := executeUpdate(ctx, cfg, opts, log.Logger, progress, cmd.OutOrStdout()); err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("update cancelled")
		}
		return err
	}

	if updateWatch {
		return watchAndUpdate(ctx, cfg, opts, log.Logger, progress, cmd.OutOrStdout())
	}
	return nil
}

// documentPath returns the absolute path of the document to update. A
// relative --output is resolved against the project root.
func documentPath(cfg *config.Config, opts updateOptions) string {
	if opts.output == "" {
		return cfg.DocumentPath(opts.root)
	}
	if filepath.IsAbs(opts.output) {
		return filepath.Clean(opts.output)
	}
	return filepath.Join(opts.root, opts.output)
}

// executeUpdate scans the project, merges the generated section into the
// document and writes it. On success a status line is written to out; on
// dry run the merged document is written to out instead.
func executeUpdate(ctx context.Context, cfg *config.Config, opts updateOptions, log *slog.Logger, progress indexer.ProgressReporter, out io.Writer) error {
	ignoreDirs := mergeLists(cfg.Paths.IgnoreDirs, opts.ignoreDirs)
	ignoreFiles := mergeLists(cfg.Paths.IgnoreFiles, opts.ignoreFiles)

	rules, err := indexer.NewRules(ignoreDirs, ignoreFiles)
	if err != nil {
		return err
	}

	result, err := indexer.Index(ctx, indexer.Options{
		RootDir:     opts.root,
		IgnoreDirs:  ignoreDirs,
		IgnoreFiles: ignoreFiles,
		Logger:      log,
	}, progress)
	if err != nil {
		return err
	}

	rendered := tree.Render(opts.root, rules.IgnoreDir)
	generated := strings.Join(document.Compose(rendered, result.Folders), "\n")

	docPath := documentPath(cfg, opts)
	markers := cfg.Markers()
	existing, err := document.ReadOrNew(docPath, markers)
	if err != nil {
		return err
	}
	merged := markers.Merge(existing, generated)

	if opts.dryRun {
		_, err := io.WriteString(out, merged)
		return err
	}

	if err := document.WriteAtomic(docPath, []byte(merged)); err != nil {
		return err
	}
	log.Info("document written", "path", docPath, "files", result.Stats.Files, "failed", result.Stats.FilesFailed)

	if opts.htmlPath != "" {
		html, err := document.RenderHTML([]byte(merged))
		if err != nil {
			return err
		}
		if err := document.WriteAtomic(opts.htmlPath, html); err != nil {
			return err
		}
		log.Info("html preview written", "path", opts.htmlPath)
	}

	fmt.Fprintf(out, "[OK] %s updated\n", docPath)
	return nil
}
