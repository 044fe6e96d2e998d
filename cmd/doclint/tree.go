package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"doclint/internal/comments"
	"doclint/internal/diagfmt"
	"doclint/internal/docparse"
	"doclint/internal/source"
)

var treeCmd = &cobra.Command{
	Use:   "tree [flags] file",
	Short: "Dump the parsed doc comment trees of a file",
	Long:  `Tree parses every documentation comment in a file and prints the node tree, useful for debugging unexpected check results`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTree,
}

func runTree(cmd *cobra.Command, args []string) error {
	path := args[0]

	fileSet := source.NewFileSet()
	fileID, err := fileSet.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	f := fileSet.Get(fileID)

	blocks := comments.Extract(f)
	if len(blocks) == 0 {
		quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
		if !quiet {
			fmt.Fprintf(os.Stderr, "%s: no doc comments\n", path)
		}
		return nil
	}

	for i, c := range blocks {
		if i > 0 {
			fmt.Fprintln(os.Stdout)
		}
		fmt.Fprintf(os.Stdout, "%s:%d:%d\n", path, c.Line, c.Col+1)
		diagfmt.DocTree(os.Stdout, docparse.Parse(c))
	}
	return nil
}
