package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tjvneste/Tree-visualization/internal/newick"
	"github.com/tjvneste/Tree-visualization/phylo/prune"
)

var (
	exportInput    string
	exportOutput   string
	exportSamples  []string
	exportTypes    []string
	exportDistance float64
	exportStdout   bool
)

func init() {
	cmd := newExportCmd()
	cmd.Flags().StringVarP(&exportInput, "file", "f", "", "Input Newick file")
	cmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output path for the pruned Newick file")
	cmd.Flags().StringSliceVar(&exportSamples, "sample_strains", nil, "Sample strain leaf names")
	cmd.Flags().StringSliceVar(&exportTypes, "type_strains", nil, "Type strain leaf names")
	cmd.Flags().Float64Var(&exportDistance, "distance", 0.001, "Distance threshold to filter on")
	cmd.Flags().BoolVar(&exportStdout, "stdout", false, "Write to stdout instead of file")
	cmd.MarkFlagRequired("file")
	rootCmd.AddCommand(cmd)
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export -f <newick> -o <output.nwk>",
		Short: "Prune a tree and write it back as Newick",
		Long: `The export command runs the same distance pruning as 'prune' but writes
the surviving tree in Newick format instead of rendering it.

Example:
  treectl export -f full_alignment.treefile -o pruned.nwk --distance 0.0007
  treectl export -f tree.nwk --stdout`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport()
		},
	}
	return cmd
}

func runExport() error {
	// Need either output file or stdout
	if exportOutput == "" && !exportStdout {
		return fmt.Errorf("must specify output file or use --stdout")
	}
	if exportOutput != "" && exportStdout {
		return fmt.Errorf("cannot specify both output file and --stdout")
	}

	printVerbose("Loading tree: %s\n", exportInput)
	t, err := newick.Load(exportInput)
	if err != nil {
		return fmt.Errorf("failed to load tree: %w", err)
	}

	prune.ByDistance(t, exportDistance,
		prune.NewStrainSet(exportSamples...),
		prune.NewStrainSet(exportTypes...))

	if exportStdout {
		return newick.Write(os.Stdout, t)
	}
	if err := newick.WriteFile(exportOutput, t); err != nil {
		return fmt.Errorf("failed to write tree: %w", err)
	}
	printInfo("Wrote %s\n", exportOutput)
	return nil
}
