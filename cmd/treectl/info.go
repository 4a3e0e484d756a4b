package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tjvneste/Tree-visualization/internal/newick"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <newick>",
		Short: "Validate a Newick file and report basic metadata",
		Long: `The info command parses a Newick file and displays basic metadata
including node and leaf counts, depth, and total branch length.

Example:
  treectl info full_alignment.treefile
  treectl info tree.nwk --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

func runInfo(args []string) error {
	path := args[0]

	printVerbose("Loading tree: %s\n", path)
	t, err := newick.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load tree: %w", err)
	}
	stats := t.Stats()

	if jsonOut {
		return printJSON(struct {
			File        string  `json:"file"`
			Nodes       int     `json:"nodes"`
			Leaves      int     `json:"leaves"`
			MaxDepth    int     `json:"max_depth"`
			TotalLength float64 `json:"total_length"`
		}{path, stats.Nodes, stats.Leaves, stats.MaxDepth, stats.TotalLength})
	}

	printInfo("\nTree Information:\n")
	printInfo("  File: %s\n", path)
	if stat, err := os.Stat(path); err == nil {
		printInfo("  Size: %d bytes\n", stat.Size())
	}
	printInfo("  Nodes: %d\n", stats.Nodes)
	printInfo("  Leaves: %d\n", stats.Leaves)
	printInfo("  Max depth: %d\n", stats.MaxDepth)
	printInfo("  Total branch length: %g\n", stats.TotalLength)
	return nil
}
