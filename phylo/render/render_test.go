package render_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tjvneste/Tree-visualization/internal/newick"
	"github.com/tjvneste/Tree-visualization/phylo"
	"github.com/tjvneste/Tree-visualization/phylo/prune"
	"github.com/tjvneste/Tree-visualization/phylo/render"
)

func classifiedTree(t *testing.T) *phylo.Tree {
	t.Helper()
	tree, err := newick.ParseString("((A:0.3,B:0.2)N1:0.5,C:0.5)Root;")
	require.NoError(t, err)
	prune.Classify(tree, prune.NewStrainSet("B"), prune.NewStrainSet("A"))
	return tree
}

func renderToString(t *testing.T, tree *phylo.Tree, opts render.Options) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, render.Render(&b, tree, opts))
	return b.String()
}

func TestRenderDocument(t *testing.T) {
	svg := renderToString(t, classifiedTree(t), render.DefaultOptions())

	require.True(t, strings.HasPrefix(svg, `<?xml version="1.0"`))
	require.Contains(t, svg, `width="200mm"`)
	require.Contains(t, svg, `xmlns="http://www.w3.org/2000/svg"`)
	require.Contains(t, svg, "</svg>")
}

func TestRenderMarkers(t *testing.T) {
	svg := renderToString(t, classifiedTree(t), render.DefaultOptions())

	// Type strain A: black circle, size 10, dashed connector.
	require.Contains(t, svg, `fill="#000000"`)
	require.Contains(t, svg, `r="5.0"`)
	require.Contains(t, svg, `stroke-dasharray="6 3"`)

	// Sample strain B: green circle, size 15, dotted connector.
	require.Contains(t, svg, `fill="#14e05c"`)
	require.Contains(t, svg, `r="7.5"`)
	require.Contains(t, svg, `stroke-dasharray="1.5 3"`)

	// Default leaf C: sphere gradient, size 5.
	require.Contains(t, svg, `url(#sphere-darkred)`)
	require.Contains(t, svg, `<radialGradient id="sphere-darkred"`)
	require.Contains(t, svg, `r="2.5"`)
}

func TestRenderLabels(t *testing.T) {
	opts := render.DefaultOptions()
	svg := renderToString(t, classifiedTree(t), opts)
	require.Contains(t, svg, ">A</text>")
	require.Contains(t, svg, ">B</text>")
	require.Contains(t, svg, ">C</text>")

	opts.ShowLabels = false
	svg = renderToString(t, classifiedTree(t), opts)
	require.NotContains(t, svg, ">A</text>")
}

func TestRenderTitleEscaped(t *testing.T) {
	opts := render.DefaultOptions()
	opts.Title = "PPV1 <pruned & styled>"
	svg := renderToString(t, classifiedTree(t), opts)
	require.Contains(t, svg, "PPV1 &lt;pruned &amp; styled&gt;")
}

func TestRenderLegend(t *testing.T) {
	opts := render.DefaultOptions()
	opts.Legend = true
	svg := renderToString(t, classifiedTree(t), opts)
	require.Contains(t, svg, ">type strain</text>")
	require.Contains(t, svg, ">sample strain</text>")
	require.Contains(t, svg, ">other</text>")
}

func TestRenderUnstyledTree(t *testing.T) {
	tree, err := newick.ParseString("(A:0.1,B:0.2)R;")
	require.NoError(t, err)

	// Unclassified trees still render: branches and labels, no markers.
	svg := renderToString(t, tree, render.DefaultOptions())
	require.Contains(t, svg, ">A</text>")
	require.NotContains(t, svg, "<circle")
}

func TestRenderEmptyTree(t *testing.T) {
	var b strings.Builder
	require.ErrorIs(t, render.Render(&b, &phylo.Tree{}, render.DefaultOptions()), phylo.ErrEmptyTree)
}

func TestRenderFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.svg")
	require.NoError(t, render.RenderFile(path, classifiedTree(t), render.DefaultOptions()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "</svg>")
}

func TestRenderFileUnwritablePath(t *testing.T) {
	dir := t.TempDir()
	err := render.RenderFile(filepath.Join(dir, "nope", "out.svg"), classifiedTree(t), render.DefaultOptions())
	require.Error(t, err)

	// No partial output anywhere in the directory.
	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	require.Empty(t, entries)
}
