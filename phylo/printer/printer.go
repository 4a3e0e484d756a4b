// Package printer renders a phylogenetic tree to a terminal or other text
// sink, in an indented text format or as JSON.
package printer

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tjvneste/Tree-visualization/phylo"
)

const DefaultIndentSize = 2

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs human-readable indented text.
	FormatText Format = "text"

	// FormatJSON outputs the tree as a nested JSON document.
	FormatJSON Format = "json"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json).
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per depth level (text format only).
	// Default: 2
	IndentSize int

	// ShowDist includes branch lengths in text output.
	// Default: true
	ShowDist bool

	// MaxDepth limits recursion depth (0 = unlimited).
	// Default: 0 (unlimited)
	MaxDepth int

	// Color enables per-class coloring of leaf names (text format only).
	// Default: true
	Color bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:     FormatText,
		IndentSize: DefaultIndentSize,
		ShowDist:   true,
		Color:      true,
	}
}

// Printer handles formatted output of trees.
type Printer struct {
	writer io.Writer
	opts   Options
}

// New creates a new Printer writing to w.
func New(w io.Writer, opts Options) *Printer {
	return &Printer{writer: w, opts: opts}
}

var (
	typeStrainText = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color("#FFFFFF"))

	sampleStrainText = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#14e05c"))

	defaultLeafText = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#870000"))

	internalText = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// PrintTree writes the whole tree in the configured format.
func (p *Printer) PrintTree(t *phylo.Tree) error {
	if t == nil || t.Root == nil {
		return phylo.ErrEmptyTree
	}
	if p.opts.Format == FormatJSON {
		return p.printJSON(t)
	}
	return p.printText(t.Root, 0)
}

func (p *Printer) printText(n *phylo.Node, depth int) error {
	if p.opts.MaxDepth > 0 && depth > p.opts.MaxDepth {
		return nil
	}
	line := strings.Repeat(" ", depth*p.opts.IndentSize) + p.nodeText(n)
	if _, err := fmt.Fprintln(p.writer, line); err != nil {
		return err
	}
	for _, c := range n.Children {
		if err := p.printText(c, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) nodeText(n *phylo.Node) string {
	name := n.Name
	if name == "" {
		name = "-"
	}
	if p.opts.Color {
		name = p.styleFor(n).Render(name)
	}
	if p.opts.ShowDist && !n.IsRoot() {
		name += ":" + strconv.FormatFloat(n.Dist, 'g', -1, 64)
	}
	return name
}

func (p *Printer) styleFor(n *phylo.Node) lipgloss.Style {
	if !n.IsLeaf() {
		return internalText
	}
	if n.Style == nil {
		return defaultLeafText
	}
	switch n.Style.Class {
	case phylo.ClassTypeStrain:
		return typeStrainText
	case phylo.ClassSampleStrain:
		return sampleStrainText
	default:
		return defaultLeafText
	}
}

// jsonNode is the JSON shape of one tree node.
type jsonNode struct {
	Name     string     `json:"name,omitempty"`
	Dist     float64    `json:"dist"`
	Class    string     `json:"class,omitempty"`
	Children []jsonNode `json:"children,omitempty"`
}

func (p *Printer) printJSON(t *phylo.Tree) error {
	enc := json.NewEncoder(p.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(toJSON(t.Root))
}

func toJSON(n *phylo.Node) jsonNode {
	j := jsonNode{Name: n.Name, Dist: n.Dist}
	if n.Style != nil {
		j.Class = n.Style.Class.String()
	}
	for _, c := range n.Children {
		j.Children = append(j.Children, toJSON(c))
	}
	return j
}
