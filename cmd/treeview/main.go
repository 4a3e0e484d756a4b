package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tjvneste/Tree-visualization/cmd/treeview/logger"
	"github.com/tjvneste/Tree-visualization/internal/newick"
	"github.com/tjvneste/Tree-visualization/phylo/prune"
)

var (
	version = "dev"

	debugMode   = flag.Bool("debug", false, "Enable debug logging to ~/.treeview/debug.log")
	showVersion = flag.Bool("version", false, "Show version information")
	distance    = flag.Float64("distance", 0, "Prune leaves below this mean distance (0 disables pruning)")
	samplesFlag = flag.String("sample_strains", "", "Comma-separated sample strain names")
	typesFlag   = flag.String("type_strains", "", "Comma-separated type strain names")
)

func main() {
	flag.Usage = printUsage
	flag.Parse()

	if *showVersion {
		fmt.Printf("treeview %s\n", version)
		os.Exit(0)
	}

	// Initialize logger (must be before any logging calls)
	if err := logger.Init(logger.Options{
		Enabled: *debugMode,
		Level:   slog.LevelDebug,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to init logging: %v\n", err)
	}

	if flag.NArg() != 1 {
		printUsage()
		os.Exit(1)
	}
	path := flag.Arg(0)
	logger.Info("starting treeview", "path", path, "debug", *debugMode)

	t, err := newick.Load(path)
	if err != nil {
		logger.Error("failed to load tree", "path", path, "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sampleSet := prune.NewStrainSet(splitNames(*samplesFlag)...)
	typeSet := prune.NewStrainSet(splitNames(*typesFlag)...)
	if *distance > 0 {
		prune.ByDistance(t, *distance, sampleSet, typeSet)
		logger.Info("pruned tree", "distance", *distance, "leaves", t.Stats().Leaves)
	} else {
		prune.Classify(t, sampleSet, typeSet)
	}

	p := tea.NewProgram(
		NewModel(path, t),
		tea.WithAltScreen(), // Use alternate screen buffer
	)
	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}

	logger.Info("treeview exited normally")
}

// splitNames turns a comma-separated flag value into a name list.
func splitNames(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	return names
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: treeview [options] <newick-file>\n")
	fmt.Fprintf(os.Stderr, "\nInteractive terminal viewer for Newick phylogenetic trees.\n\n")
	fmt.Fprintf(os.Stderr, "Navigation: j/k or arrows scroll, g/G jump to top/bottom, q quits.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
