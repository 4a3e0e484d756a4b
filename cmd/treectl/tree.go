package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tjvneste/Tree-visualization/internal/newick"
	"github.com/tjvneste/Tree-visualization/phylo/printer"
	"github.com/tjvneste/Tree-visualization/phylo/prune"
)

var (
	treeDepth    int
	treeDist     bool
	treeSamples  []string
	treeTypes    []string
	treePrune    bool
	treeDistance float64
)

func init() {
	cmd := newTreeCmd()
	cmd.Flags().IntVar(&treeDepth, "depth", 0, "Maximum depth (0 = unlimited)")
	cmd.Flags().BoolVar(&treeDist, "dist", true, "Show branch lengths")
	cmd.Flags().StringSliceVar(&treeSamples, "sample_strains", nil, "Sample strain leaf names")
	cmd.Flags().StringSliceVar(&treeTypes, "type_strains", nil, "Type strain leaf names")
	cmd.Flags().BoolVar(&treePrune, "prune", false, "Prune by distance before printing")
	cmd.Flags().Float64Var(&treeDistance, "distance", 0.001, "Distance threshold when pruning")
	rootCmd.AddCommand(cmd)
}

func newTreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree <newick>",
		Short: "Display tree structure",
		Long: `The tree command displays an indented view of a Newick tree with leaf
names colored by strain category.

Example:
  treectl tree full_alignment.treefile
  treectl tree tree.nwk --prune --distance 0.0007 --type_strains PPV1_IDT_DEU_1964
  treectl tree tree.nwk --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTreeCmd(args)
		},
	}
	return cmd
}

func runTreeCmd(args []string) error {
	printVerbose("Loading tree: %s\n", args[0])
	t, err := newick.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load tree: %w", err)
	}

	sampleSet := prune.NewStrainSet(treeSamples...)
	typeSet := prune.NewStrainSet(treeTypes...)
	if treePrune {
		prune.ByDistance(t, treeDistance, sampleSet, typeSet)
	} else {
		// Classification only, so categories show up without pruning.
		prune.Classify(t, sampleSet, typeSet)
	}

	opts := printer.DefaultOptions()
	opts.ShowDist = treeDist
	opts.MaxDepth = treeDepth
	opts.Color = !noColor
	if jsonOut {
		opts.Format = printer.FormatJSON
	}

	if err := printer.New(os.Stdout, opts).PrintTree(t); err != nil {
		return fmt.Errorf("failed to display tree: %w", err)
	}
	return nil
}
