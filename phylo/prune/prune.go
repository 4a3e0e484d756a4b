package prune

import (
	"github.com/tjvneste/Tree-visualization/phylo"
)

// StrainSet is a set of leaf names protected from pruning. A nil StrainSet
// behaves as the empty set, so "no strains supplied" needs no sentinel.
type StrainSet map[string]struct{}

// NewStrainSet builds a set from a list of names, dropping empty strings so
// unnamed internal nodes can never match.
func NewStrainSet(names ...string) StrainSet {
	s := make(StrainSet, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		s[name] = struct{}{}
	}
	return s
}

// Contains reports whether name is in the set. Safe on a nil set.
func (s StrainSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Names returns the set's members in unspecified order.
func (s StrainSet) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	return names
}

// ByDistance prunes t in place and classifies the surviving leaves.
//
// Pass 1 visits every node in preorder. For a node with children, the mean
// of the children's branch lengths is compared against threshold; when the
// mean is strictly below it, every child is detached together with its
// subtree unless that subtree carries a protected name somewhere inside it.
// Detaching removes the whole subtree, so a protected leaf shields each of
// its ancestors up to the node under evaluation. Leaves are skipped (there
// is no mean to take).
// Deletions at a node are visible to the rest of the walk, so deeper nodes
// are evaluated against their already-reduced child lists.
//
// Pass 2 assigns a style to every surviving leaf; see Classify.
//
// The tree must have a root; the root itself is never detached.
func ByDistance(t *phylo.Tree, threshold float64, sampleStrains, typeStrains StrainSet) {
	t.Walk(func(n *phylo.Node) bool {
		if n.IsLeaf() {
			return true
		}
		sum := 0.0
		for _, c := range n.Children {
			sum += c.Dist
		}
		if sum/float64(len(n.Children)) >= threshold {
			return true
		}
		// Detach mutates n.Children, so iterate over a snapshot.
		children := make([]*phylo.Node, len(n.Children))
		copy(children, n.Children)
		for _, c := range children {
			if shieldsProtected(c, sampleStrains, typeStrains) {
				continue
			}
			c.Detach()
		}
		return true
	})

	Classify(t, sampleStrains, typeStrains)
}

// shieldsProtected reports whether n or any node below it carries a name
// from either strain set.
func shieldsProtected(n *phylo.Node, sampleStrains, typeStrains StrainSet) bool {
	found := false
	n.Walk(func(m *phylo.Node) bool {
		if typeStrains.Contains(m.Name) || sampleStrains.Contains(m.Name) {
			found = true
			return false
		}
		return true
	})
	return found
}

// Classify walks the tree in preorder and assigns every leaf exactly one
// style: type strain if its name is in typeStrains (this check wins when a
// name is in both sets), sample strain if in sampleStrains, default
// otherwise. Internal nodes are left unstyled. Running Classify again on an
// unchanged tree reassigns identical styles.
func Classify(t *phylo.Tree, sampleStrains, typeStrains StrainSet) {
	t.Walk(func(n *phylo.Node) bool {
		if !n.IsLeaf() {
			return true
		}
		style := phylo.StyleFor(classOf(n.Name, sampleStrains, typeStrains))
		n.Style = &style
		return true
	})
}

func classOf(name string, sampleStrains, typeStrains StrainSet) phylo.Class {
	switch {
	case typeStrains.Contains(name):
		return phylo.ClassTypeStrain
	case sampleStrains.Contains(name):
		return phylo.ClassSampleStrain
	default:
		return phylo.ClassDefault
	}
}
