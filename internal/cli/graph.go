package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/project-atlas/internal/config"
	"github.com/mvp-joe/project-atlas/internal/graph"
	"github.com/mvp-joe/project-atlas/internal/indexer"
)

var (
	graphDOT bool
	graphTop int
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [root]",
	Short: "Summarize the project's file import graph",
	Long: `Graph scans the project, links each parsed file to the project files it
imports, and prints the graph size, the most imported files and any import
cycles. With --dot the graph is printed in Graphviz DOT format instead.

Examples:
  atlas graph
  atlas graph --top 5
  atlas graph --dot | dot -Tsvg > imports.svg
`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGraph,
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().BoolVar(&graphDOT, "dot", false, "Print the graph in DOT format")
	graphCmd.Flags().IntVar(&graphTop, "top", 10, "Number of most imported files to list (0 for all)")
}

func runGraph(cmd *cobra.Command, args []string) error {
	root, err := projectRoot(args)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(cmd.Context())
	defer cancel()

	return executeGraph(ctx, cfg, root, newLogger(cfg, "graph").Logger, graphDOT, graphTop, cmd.OutOrStdout())
}

func executeGraph(ctx context.Context, cfg *config.Config, root string, log *slog.Logger, dot bool, top int, out io.Writer) error {
	result, err := indexer.Index(ctx, indexer.Options{
		RootDir:     root,
		IgnoreDirs:  cfg.Paths.IgnoreDirs,
		IgnoreFiles: cfg.Paths.IgnoreFiles,
		Logger:      log,
	}, nil)
	if err != nil {
		return err
	}

	g, err := graph.Build(result.Folders)
	if err != nil {
		return err
	}
	if dot {
		return g.WriteDOT(out)
	}

	summary, err := g.Summary(top)
	if err != nil {
		return err
	}
	printSummary(out, summary)
	return nil
}

func printSummary(out io.Writer, s *graph.Summary) {
	fmt.Fprintf(out, "Files:      %s\n", formatNumber(s.Files))
	fmt.Fprintf(out, "Imports:    %s\n", formatNumber(s.Edges))
	fmt.Fprintf(out, "Unresolved: %s\n", formatNumber(s.Unresolved))

	if len(s.MostUsed) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Most imported:")
		for _, r := range s.MostUsed {
			fmt.Fprintf(out, "  %4d  %s\n", r.Count, r.ID)
		}
	}

	if len(s.Cycles) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Cycles:")
		for _, c := range s.Cycles {
			fmt.Fprintf(out, "  %s -> %s\n", strings.Join(c, " -> "), c[0])
		}
	}
}
