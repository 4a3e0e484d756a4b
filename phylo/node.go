package phylo

// Node is a single vertex in a rooted multiway tree. Leaves carry taxon
// names; internal nodes are usually unnamed. Dist is the branch length
// between the node and its parent (zero for the root).
type Node struct {
	Name     string
	Dist     float64
	Children []*Node

	// Style is nil until the classification pass assigns one. Only the
	// rendering layers read it.
	Style *Style

	parent *Node
}

// Tree wraps the root of a loaded tree. The root is never detached.
type Tree struct {
	Root *Node
}

// NewTree returns a tree consisting of a single root node.
func NewTree() *Tree {
	return &Tree{Root: &Node{}}
}

// AddChild appends child to n's children and wires its parent pointer.
// It returns child so construction code can chain.
func (n *Node) AddChild(child *Node) *Node {
	child.parent = n
	n.Children = append(n.Children, child)
	return child
}

// Parent returns the node's parent, or nil for the root and for detached
// nodes.
func (n *Node) Parent() *Node { return n.parent }

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// IsRoot reports whether the node has no parent.
func (n *Node) IsRoot() bool { return n.parent == nil }

// Detach removes n and its entire subtree from the tree. It reports whether
// a detachment happened; the root (and any already-detached node) is left
// alone.
func (n *Node) Detach() bool {
	p := n.parent
	if p == nil {
		return false
	}
	for i, c := range p.Children {
		if c == n {
			p.Children = append(p.Children[:i], p.Children[i+1:]...)
			n.parent = nil
			return true
		}
	}
	return false
}

// Walk visits n and every node below it in preorder (parent before
// children). The child list of each node is read when the walk reaches it,
// so mutations made by visit inside the current subtree are observed.
// Returning false from visit stops the walk.
func (n *Node) Walk(visit func(*Node) bool) bool {
	if !visit(n) {
		return false
	}
	for i := 0; i < len(n.Children); i++ {
		if !n.Children[i].Walk(visit) {
			return false
		}
	}
	return true
}

// Walk traverses the whole tree in preorder. See Node.Walk.
func (t *Tree) Walk(visit func(*Node) bool) {
	if t == nil || t.Root == nil {
		return
	}
	t.Root.Walk(visit)
}

// Leaves returns the tree's leaves in preorder.
func (t *Tree) Leaves() []*Node {
	var leaves []*Node
	t.Walk(func(n *Node) bool {
		if n.IsLeaf() {
			leaves = append(leaves, n)
		}
		return true
	})
	return leaves
}

// Find returns the first node named name in preorder, or nil.
func (t *Tree) Find(name string) *Node {
	var found *Node
	t.Walk(func(n *Node) bool {
		if n.Name == name {
			found = n
			return false
		}
		return true
	})
	return found
}

// Stats summarizes a tree for reporting.
type Stats struct {
	Nodes       int     // total node count, root included
	Leaves      int     // leaf count
	MaxDepth    int     // edges on the longest root-to-leaf path
	TotalLength float64 // sum of all branch lengths
}

// Stats walks the tree once and returns its summary.
func (t *Tree) Stats() Stats {
	var s Stats
	if t == nil || t.Root == nil {
		return s
	}
	var walk func(n *Node, depth int)
	walk = func(n *Node, depth int) {
		s.Nodes++
		s.TotalLength += n.Dist
		if n.IsLeaf() {
			s.Leaves++
			if depth > s.MaxDepth {
				s.MaxDepth = depth
			}
		}
		for _, c := range n.Children {
			walk(c, depth+1)
		}
	}
	walk(t.Root, 0)
	return s
}
