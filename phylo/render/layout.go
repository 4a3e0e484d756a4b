package render

import (
	"github.com/tjvneste/Tree-visualization/phylo"
)

// layout holds pixel positions for every node of one rendering. x grows
// with cumulative branch length from the root, y is assigned from leaf
// slots top to bottom.
type layout struct {
	x, y     map[*phylo.Node]float64
	leafRows int
	maxLabel int
}

// computeLayout positions every node inside a drawing area that starts at
// (x0, y0) and is width px wide. rowHeight is the vertical distance between
// adjacent leaves.
func computeLayout(t *phylo.Tree, x0, y0, width, rowHeight float64) *layout {
	l := &layout{
		x: make(map[*phylo.Node]float64),
		y: make(map[*phylo.Node]float64),
	}

	// Horizontal: cumulative branch length, scaled to fill width. Trees
	// without branch lengths fall back to uniform depth spacing.
	depth := make(map[*phylo.Node]int)
	dist := make(map[*phylo.Node]float64)
	maxDist, maxDepth := 0.0, 0
	t.Walk(func(n *phylo.Node) bool {
		if p := n.Parent(); p != nil {
			dist[n] = dist[p] + n.Dist
			depth[n] = depth[p] + 1
		}
		if dist[n] > maxDist {
			maxDist = dist[n]
		}
		if depth[n] > maxDepth {
			maxDepth = depth[n]
		}
		if n.IsLeaf() && len(n.Name) > l.maxLabel {
			l.maxLabel = len(n.Name)
		}
		return true
	})
	t.Walk(func(n *phylo.Node) bool {
		switch {
		case maxDist > 0:
			l.x[n] = x0 + dist[n]/maxDist*width
		case maxDepth > 0:
			l.x[n] = x0 + float64(depth[n])/float64(maxDepth)*width
		default:
			l.x[n] = x0
		}
		return true
	})

	// Vertical: leaves take consecutive rows, internal nodes sit midway
	// between their outermost children. Children are positioned before
	// their parent, so a single post-order pass suffices.
	var place func(n *phylo.Node)
	place = func(n *phylo.Node) {
		if n.IsLeaf() {
			l.y[n] = y0 + (float64(l.leafRows)+0.5)*rowHeight
			l.leafRows++
			return
		}
		for _, c := range n.Children {
			place(c)
		}
		first := l.y[n.Children[0]]
		last := l.y[n.Children[len(n.Children)-1]]
		l.y[n] = (first + last) / 2
	}
	place(t.Root)

	return l
}
