package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/project-atlas/internal/indexer"
	"github.com/mvp-joe/project-atlas/internal/tree"
)

var treeIgnoreDirs []string

// treeCmd represents the tree command
var treeCmd = &cobra.Command{
	Use:   "tree [root]",
	Short: "Print the project directory tree",
	Long: `Tree prints the directory tree exactly as it appears in the generated
document. Ignored directories are shown with a single "..." child.

Examples:
  atlas tree
  atlas tree ./myproject --ignore-dir vendor
`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTree,
}

func init() {
	rootCmd.AddCommand(treeCmd)
	treeCmd.Flags().StringSliceVar(&treeIgnoreDirs, "ignore-dir", nil, "Directory name or glob to collapse (repeatable)")
}

func runTree(cmd *cobra.Command, args []string) error {
	root, err := projectRoot(args)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	return executeTree(root, mergeLists(cfg.Paths.IgnoreDirs, treeIgnoreDirs), cmd.OutOrStdout())
}

func executeTree(root string, ignoreDirs []string, out io.Writer) error {
	rules, err := indexer.NewRules(ignoreDirs, nil)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, tree.Render(root, rules.IgnoreDir))
	return err
}
