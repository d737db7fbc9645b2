package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mvp-joe/project-atlas/internal/indexer"
	"github.com/mvp-joe/project-atlas/internal/indexer/extraction"
	"github.com/mvp-joe/project-atlas/internal/indexer/parsers"
)

var (
	parseFormat string
	parseRoot   string
)

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse <file>...",
	Short: "Print the elements extracted from source files",
	Long: `Parse runs the structural parser on each file and prints the extracted
elements. Imports are resolved against the files under --root.

Examples:
  atlas parse src/app.js
  atlas parse --format yaml Sources/App.swift main.py
`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "json", "Output format: json or yaml")
	parseCmd.Flags().StringVar(&parseRoot, "root", ".", "Project root used to resolve imports")
}

// parsedFile is the output record for one parsed file.
type parsedFile struct {
	File     string              `json:"file" yaml:"file"`
	Language parsers.Language    `json:"language,omitempty" yaml:"language,omitempty"`
	Elements []extraction.Record `json:"elements" yaml:"elements"`
	Error    string              `json:"error,omitempty" yaml:"error,omitempty"`
}

func runParse(cmd *cobra.Command, args []string) error {
	root, err := projectRoot([]string{parseRoot})
	if err != nil {
		return err
	}
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	log := newLogger(cfg, "parse")

	snap, err := indexer.Discover(indexer.Options{
		RootDir:     root,
		IgnoreDirs:  cfg.Paths.IgnoreDirs,
		IgnoreFiles: cfg.Paths.IgnoreFiles,
		Logger:      log.Logger,
	})
	if err != nil {
		return err
	}
	defer snap.Inventory.Close()

	return executeParse(cmd.Context(), args, snap.Inventory, parseFormat, cmd.OutOrStdout())
}

// executeParse parses files and writes their records to out. A file that
// cannot be parsed gets an entry with its error; the others are unaffected.
func executeParse(ctx context.Context, files []string, inv *parsers.Inventory, format string, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if format != "json" && format != "yaml" {
		return fmt.Errorf("unsupported format %q (want json or yaml)", format)
	}

	registry := parsers.DefaultRegistry()
	results := make([]parsedFile, 0, len(files))
	for _, file := range files {
		elements, lang, err := registry.ParseFile(ctx, file, inv)
		entry := parsedFile{
			File:     filepath.ToSlash(file),
			Language: lang,
			Elements: extraction.EncodeAll(elements),
		}
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			entry.Error = err.Error()
		}
		results = append(results, entry)
	}

	if format == "yaml" {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	}

	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}
