// Package render draws a classified phylogenetic tree as a rectangular
// phylogram in SVG.
//
// The output document has a fixed physical width (200mm by default, per the
// reference rendering) and a height derived from the leaf count. All
// rendering configuration travels in an explicit Options value; there is no
// package-level style state.
package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tjvneste/Tree-visualization/phylo"
)

const (
	pxPerMM = 96.0 / 25.4

	margin     = 10.0
	titleSpace = 26.0
	legendRow  = 16.0
	edgeColor  = "#3f3f3f"
)

// Options controls the rendered document.
type Options struct {
	// WidthMM is the physical width of the document in millimeters.
	// Default: 200
	WidthMM float64

	// Title is drawn centered above the tree. Empty means no title.
	Title string

	// FontSize is the leaf label size in pixels.
	// Default: 11
	FontSize float64

	// RowHeight is the vertical spacing per leaf in pixels.
	// Default: 18
	RowHeight float64

	// ShowLabels draws leaf names next to their markers.
	// Default: true
	ShowLabels bool

	// Legend draws a marker legend for the three leaf classes below the
	// tree.
	// Default: false
	Legend bool
}

// DefaultOptions returns sensible defaults for rendering.
func DefaultOptions() Options {
	return Options{
		WidthMM:    200,
		FontSize:   11,
		RowHeight:  18,
		ShowLabels: true,
	}
}

// Render writes the tree as an SVG document to w.
func Render(w io.Writer, t *phylo.Tree, opts Options) error {
	if t == nil || t.Root == nil {
		return phylo.ErrEmptyTree
	}
	if opts.WidthMM <= 0 {
		opts.WidthMM = DefaultOptions().WidthMM
	}
	if opts.FontSize <= 0 {
		opts.FontSize = DefaultOptions().FontSize
	}
	if opts.RowHeight <= 0 {
		opts.RowHeight = DefaultOptions().RowHeight
	}

	widthPx := opts.WidthMM * pxPerMM

	topY := margin
	if opts.Title != "" {
		topY += titleSpace
	}

	// Reserve a gutter on the right for leaf labels before laying out the
	// branches.
	probe := computeLayout(t, 0, 0, 1, opts.RowHeight)
	gutter := 0.0
	if opts.ShowLabels {
		gutter = float64(probe.maxLabel)*opts.FontSize*0.62 + 24
	}
	drawWidth := widthPx - 2*margin - gutter
	if drawWidth < 1 {
		drawWidth = 1
	}
	l := computeLayout(t, margin, topY, drawWidth, opts.RowHeight)

	treeBottom := topY + float64(l.leafRows)*opts.RowHeight
	heightPx := treeBottom + margin
	if opts.Legend {
		heightPx += 3*legendRow + legendRow/2
	}

	b := new(strings.Builder)
	fmt.Fprintf(b, `<?xml version="1.0" encoding="UTF-8"?>`+"\n")
	fmt.Fprintf(b,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%gmm" height="%gmm" viewBox="0 0 %.2f %.2f">`+"\n",
		opts.WidthMM, heightPx/pxPerMM, widthPx, heightPx)
	writeDefs(b, t)
	fmt.Fprintf(b, `<rect x="0" y="0" width="%.2f" height="%.2f" fill="#ffffff"/>`+"\n",
		widthPx, heightPx)

	if opts.Title != "" {
		fmt.Fprintf(b,
			`<text x="%.2f" y="%.2f" text-anchor="middle" font-family="sans-serif" font-size="%.1f">%s</text>`+"\n",
			widthPx/2, margin+opts.FontSize+2, opts.FontSize+3, escape(opts.Title))
	}

	writeEdges(b, t, l)
	writeMarkers(b, t, l, opts)
	if opts.Legend {
		writeLegend(b, margin, treeBottom+legendRow, opts)
	}
	b.WriteString("</svg>\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return &phylo.Error{Kind: phylo.ErrKindRender, Msg: "write svg", Err: err}
	}
	return nil
}

// RenderFile renders the tree to path. The document is written to a
// temporary file first and renamed into place, so a failed render leaves no
// partial output behind.
func RenderFile(path string, t *phylo.Tree, opts Options) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".render-*.svg")
	if err != nil {
		return &phylo.Error{Kind: phylo.ErrKindRender, Msg: "create output file", Err: err}
	}
	defer os.Remove(tmp.Name())

	if err := Render(tmp, t, opts); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return &phylo.Error{Kind: phylo.ErrKindRender, Msg: "close output file", Err: err}
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return &phylo.Error{Kind: phylo.ErrKindRender, Msg: "move output into place", Err: err}
	}
	return nil
}

// writeDefs emits one radial gradient per sphere fill color in use, giving
// sphere markers their shaded look.
func writeDefs(b *strings.Builder, t *phylo.Tree) {
	colors := make(map[string]bool)
	t.Walk(func(n *phylo.Node) bool {
		if n.Style != nil && n.Style.Shape == phylo.ShapeSphere {
			colors[n.Style.FillColor] = true
		}
		return true
	})
	if len(colors) == 0 {
		return
	}
	b.WriteString("<defs>\n")
	for color := range colors {
		fmt.Fprintf(b,
			`<radialGradient id="%s" cx="35%%" cy="35%%" r="70%%"><stop offset="0%%" stop-color="#ffffff"/><stop offset="100%%" stop-color="%s"/></radialGradient>`+"\n",
			sphereID(color), color)
	}
	b.WriteString("</defs>\n")
}

// writeEdges draws one elbow connector per non-root node: vertical from the
// parent's y, then horizontal along the node's branch. The node's line
// pattern, when styled, applies to its connector.
func writeEdges(b *strings.Builder, t *phylo.Tree, l *layout) {
	t.Walk(func(n *phylo.Node) bool {
		p := n.Parent()
		if p == nil {
			return true
		}
		dash := ""
		if n.Style != nil {
			switch n.Style.Line {
			case phylo.LineDashed:
				dash = ` stroke-dasharray="6 3"`
			case phylo.LineDotted:
				dash = ` stroke-dasharray="1.5 3"`
			}
		}
		fmt.Fprintf(b,
			`<path d="M %.2f %.2f V %.2f H %.2f" fill="none" stroke="%s" stroke-width="1"%s/>`+"\n",
			l.x[p], l.y[p], l.y[n], l.x[n], edgeColor, dash)
		return true
	})
}

// writeMarkers draws the classified leaf markers and, when enabled, the
// leaf labels.
func writeMarkers(b *strings.Builder, t *phylo.Tree, l *layout, opts Options) {
	t.Walk(func(n *phylo.Node) bool {
		if !n.IsLeaf() {
			return true
		}
		gap := 4.0
		if n.Style != nil {
			writeMarker(b, l.x[n], l.y[n], *n.Style)
			gap += float64(n.Style.Size) / 2
		}
		if opts.ShowLabels && n.Name != "" {
			fmt.Fprintf(b,
				`<text x="%.2f" y="%.2f" font-family="sans-serif" font-size="%.1f">%s</text>`+"\n",
				l.x[n]+gap, l.y[n]+opts.FontSize*0.35,
				opts.FontSize, escape(n.Name))
		}
		return true
	})
}

func writeMarker(b *strings.Builder, x, y float64, s phylo.Style) {
	fill := s.FillColor
	if s.Shape == phylo.ShapeSphere {
		fill = "url(#" + sphereID(s.FillColor) + ")"
	}
	fmt.Fprintf(b, `<circle cx="%.2f" cy="%.2f" r="%.1f" fill="%s"/>`+"\n",
		x, y, float64(s.Size)/2, fill)
}

func writeLegend(b *strings.Builder, x, y float64, opts Options) {
	entries := []struct {
		class phylo.Class
		text  string
	}{
		{phylo.ClassTypeStrain, "type strain"},
		{phylo.ClassSampleStrain, "sample strain"},
		{phylo.ClassDefault, "other"},
	}
	for i, e := range entries {
		row := y + float64(i)*legendRow
		style := phylo.StyleFor(e.class)
		writeMarker(b, x+8, row, style)
		fmt.Fprintf(b,
			`<text x="%.2f" y="%.2f" font-family="sans-serif" font-size="%.1f">%s</text>`+"\n",
			x+20, row+opts.FontSize*0.35, opts.FontSize, escape(e.text))
	}
}

func sphereID(color string) string {
	return "sphere-" + strings.TrimPrefix(color, "#")
}

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escape(s string) string { return escaper.Replace(s) }
